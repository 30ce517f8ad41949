package encounter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/visionwow/visionwow/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const encCols = `id, company_id, patient_id, created_at, updated_at, completed_at,
	company_name, branch, employee_number, department, direct_boss, shift,
	entry_time, exit_time, office_phone, extension_number, company_email,
	seniority_years, seniority_months, seniority_weeks, is_plant, is_eventual,
	antecedentes_json, ishihara, campimetry,
	va_od_sc, va_os_sc, va_od_cc, va_os_cc,
	rx_od_sph, rx_od_cyl, rx_od_axis, rx_od_add,
	rx_os_sph, rx_os_cyl, rx_os_axis, rx_os_add,
	dp, lens_type, usage, follow_up_date,
	pay_status, pay_total, pay_method, pay_reference, pay_discount, pay_notes`

func (r *repoPG) Create(ctx context.Context, enc *Encounter) error {
	enc.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO encounter (
			id, company_id, patient_id, completed_at,
			company_name, branch, employee_number, department, direct_boss, shift,
			entry_time, exit_time, office_phone, extension_number, company_email,
			seniority_years, seniority_months, seniority_weeks, is_plant, is_eventual,
			antecedentes_json, ishihara, campimetry,
			va_od_sc, va_os_sc, va_od_cc, va_os_cc,
			rx_od_sph, rx_od_cyl, rx_od_axis, rx_od_add,
			rx_os_sph, rx_os_cyl, rx_os_axis, rx_os_add,
			dp, lens_type, usage, follow_up_date,
			pay_status, pay_total, pay_method, pay_reference, pay_discount, pay_notes
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,
			$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
			$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,
			$31,$32,$33,$34,$35,$36,$37,$38,$39,$40,
			$41,$42,$43,$44,$45
		)`,
		enc.ID, enc.CompanyID, enc.PatientID, enc.CompletedAt,
		enc.CompanyName, enc.Branch, enc.EmployeeNumber, enc.Department, enc.DirectBoss, enc.Shift,
		enc.EntryTime, enc.ExitTime, enc.OfficePhone, enc.ExtensionNumber, enc.CompanyEmail,
		enc.SeniorityYears, enc.SeniorityMonths, enc.SeniorityWeeks, enc.IsPlant, enc.IsEventual,
		enc.AntecedentesJSON, enc.Ishihara, enc.Campimetry,
		enc.VaOdSc, enc.VaOsSc, enc.VaOdCc, enc.VaOsCc,
		enc.RxOdSph, enc.RxOdCyl, enc.RxOdAxis, enc.RxOdAdd,
		enc.RxOsSph, enc.RxOsCyl, enc.RxOsAxis, enc.RxOsAdd,
		enc.Dp, enc.LensType, enc.Usage, enc.FollowUpDate,
		enc.PayStatus, enc.PayTotal, enc.PayMethod, enc.PayReference, enc.PayDiscount, enc.PayNotes,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Encounter, error) {
	return scanEnc(r.conn(ctx).QueryRow(ctx, `SELECT `+encCols+` FROM encounter WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, enc *Encounter) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE encounter SET
			completed_at=$2,
			company_name=$3, branch=$4, employee_number=$5, department=$6, direct_boss=$7, shift=$8,
			entry_time=$9, exit_time=$10, office_phone=$11, extension_number=$12, company_email=$13,
			seniority_years=$14, seniority_months=$15, seniority_weeks=$16, is_plant=$17, is_eventual=$18,
			antecedentes_json=$19, ishihara=$20, campimetry=$21,
			va_od_sc=$22, va_os_sc=$23, va_od_cc=$24, va_os_cc=$25,
			rx_od_sph=$26, rx_od_cyl=$27, rx_od_axis=$28, rx_od_add=$29,
			rx_os_sph=$30, rx_os_cyl=$31, rx_os_axis=$32, rx_os_add=$33,
			dp=$34, lens_type=$35, usage=$36, follow_up_date=$37,
			pay_status=$38, pay_total=$39, pay_method=$40, pay_reference=$41, pay_discount=$42, pay_notes=$43,
			updated_at=NOW()
		WHERE id = $1`,
		enc.ID, enc.CompletedAt,
		enc.CompanyName, enc.Branch, enc.EmployeeNumber, enc.Department, enc.DirectBoss, enc.Shift,
		enc.EntryTime, enc.ExitTime, enc.OfficePhone, enc.ExtensionNumber, enc.CompanyEmail,
		enc.SeniorityYears, enc.SeniorityMonths, enc.SeniorityWeeks, enc.IsPlant, enc.IsEventual,
		enc.AntecedentesJSON, enc.Ishihara, enc.Campimetry,
		enc.VaOdSc, enc.VaOsSc, enc.VaOdCc, enc.VaOsCc,
		enc.RxOdSph, enc.RxOdCyl, enc.RxOdAxis, enc.RxOdAdd,
		enc.RxOsSph, enc.RxOsCyl, enc.RxOsAxis, enc.RxOsAdd,
		enc.Dp, enc.LensType, enc.Usage, enc.FollowUpDate,
		enc.PayStatus, enc.PayTotal, enc.PayMethod, enc.PayReference, enc.PayDiscount, enc.PayNotes,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM encounter WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Encounter, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM encounter`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+encCols+` FROM encounter ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectEncs(rows, total)
}

func (r *repoPG) ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*Encounter, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM encounter WHERE company_id = $1`, companyID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+encCols+` FROM encounter WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectEncs(rows, total)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Encounter, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM encounter WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+encCols+` FROM encounter WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectEncs(rows, total)
}

func (r *repoPG) ListAllByCompany(ctx context.Context, companyID uuid.UUID, from, to *time.Time) ([]*Encounter, error) {
	query := `SELECT ` + encCols + ` FROM encounter WHERE company_id = $1`
	args := []interface{}{companyID}
	if from != nil {
		args = append(args, *from)
		query += ` AND created_at >= $2`
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			query += ` AND created_at < $3`
		} else {
			query += ` AND created_at < $2`
		}
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var encs []*Encounter
	for rows.Next() {
		e, err := scanEnc(rows)
		if err != nil {
			return nil, err
		}
		encs = append(encs, e)
	}
	return encs, rows.Err()
}

func scanEnc(row pgx.Row) (*Encounter, error) {
	var e Encounter
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.PatientID, &e.CreatedAt, &e.UpdatedAt, &e.CompletedAt,
		&e.CompanyName, &e.Branch, &e.EmployeeNumber, &e.Department, &e.DirectBoss, &e.Shift,
		&e.EntryTime, &e.ExitTime, &e.OfficePhone, &e.ExtensionNumber, &e.CompanyEmail,
		&e.SeniorityYears, &e.SeniorityMonths, &e.SeniorityWeeks, &e.IsPlant, &e.IsEventual,
		&e.AntecedentesJSON, &e.Ishihara, &e.Campimetry,
		&e.VaOdSc, &e.VaOsSc, &e.VaOdCc, &e.VaOsCc,
		&e.RxOdSph, &e.RxOdCyl, &e.RxOdAxis, &e.RxOdAdd,
		&e.RxOsSph, &e.RxOsCyl, &e.RxOsAxis, &e.RxOsAdd,
		&e.Dp, &e.LensType, &e.Usage, &e.FollowUpDate,
		&e.PayStatus, &e.PayTotal, &e.PayMethod, &e.PayReference, &e.PayDiscount, &e.PayNotes,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEncs(rows pgx.Rows, total int) ([]*Encounter, int, error) {
	var encs []*Encounter
	for rows.Next() {
		e, err := scanEnc(rows)
		if err != nil {
			return nil, 0, err
		}
		encs = append(encs, e)
	}
	return encs, total, rows.Err()
}
