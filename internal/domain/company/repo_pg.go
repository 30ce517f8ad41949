package company

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/visionwow/visionwow/internal/platform/db"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const companyCols = `id, name, service_type, expected_patients, created_at, updated_at`

func scanCompany(row pgx.Row) (*Company, error) {
	var co Company
	err := row.Scan(&co.ID, &co.Name, &co.ServiceType, &co.ExpectedPatients, &co.CreatedAt, &co.UpdatedAt)
	return &co, err
}

func (r *repoPG) Create(ctx context.Context, co *Company) error {
	co.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO company (id, name, service_type, expected_patients)
		VALUES ($1,$2,$3,$4)`,
		co.ID, co.Name, co.ServiceType, co.ExpectedPatients)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	return scanCompany(r.conn(ctx).QueryRow(ctx, `SELECT `+companyCols+` FROM company WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, co *Company) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE company SET name=$2, service_type=$3, expected_patients=$4, updated_at=NOW()
		WHERE id = $1`,
		co.ID, co.Name, co.ServiceType, co.ExpectedPatients)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM company WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Company, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM company`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+companyCols+` FROM company ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Company
	for rows.Next() {
		co, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, co)
	}
	return items, total, rows.Err()
}
