package encounter

import (
	"time"

	"github.com/google/uuid"
)

// Encounter maps to the encounter table. One row per visit: employment data
// as captured on the paper form, the antecedents checklist blob, the visual
// exam, and payment. Exam and payment fields are free-form strings; the
// reporting layer is expected to tolerate anything entered at the desk.
type Encounter struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	CompanyID   uuid.UUID  `db:"company_id" json:"company_id"`
	PatientID   uuid.UUID  `db:"patient_id" json:"patient_id"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`

	// Employment
	CompanyName     string  `db:"company_name" json:"company_name"`
	Branch          string  `db:"branch" json:"branch"`
	EmployeeNumber  *string `db:"employee_number" json:"employee_number,omitempty"`
	Department      string  `db:"department" json:"department"`
	DirectBoss      string  `db:"direct_boss" json:"direct_boss"`
	Shift           string  `db:"shift" json:"shift"`
	EntryTime       *string `db:"entry_time" json:"entry_time,omitempty"`
	ExitTime        *string `db:"exit_time" json:"exit_time,omitempty"`
	OfficePhone     *string `db:"office_phone" json:"office_phone,omitempty"`
	ExtensionNumber *string `db:"extension_number" json:"extension_number,omitempty"`
	CompanyEmail    string  `db:"company_email" json:"company_email"`
	SeniorityYears  *int    `db:"seniority_years" json:"seniority_years,omitempty"`
	SeniorityMonths *int    `db:"seniority_months" json:"seniority_months,omitempty"`
	SeniorityWeeks  *int    `db:"seniority_weeks" json:"seniority_weeks,omitempty"`
	IsPlant         bool    `db:"is_plant" json:"is_plant"`
	IsEventual      bool    `db:"is_eventual" json:"is_eventual"`

	// Antecedents checklist, stored as JSON
	AntecedentesJSON string `db:"antecedentes_json" json:"antecedentes_json"`

	// Screening tests
	Ishihara   string `db:"ishihara" json:"ishihara"`
	Campimetry string `db:"campimetry" json:"campimetry"`

	// Visual acuity
	VaOdSc string `db:"va_od_sc" json:"va_od_sc"`
	VaOsSc string `db:"va_os_sc" json:"va_os_sc"`
	VaOdCc string `db:"va_od_cc" json:"va_od_cc"`
	VaOsCc string `db:"va_os_cc" json:"va_os_cc"`

	// Refraction
	RxOdSph  string `db:"rx_od_sph" json:"rx_od_sph"`
	RxOdCyl  string `db:"rx_od_cyl" json:"rx_od_cyl"`
	RxOdAxis string `db:"rx_od_axis" json:"rx_od_axis"`
	RxOdAdd  string `db:"rx_od_add" json:"rx_od_add"`
	RxOsSph  string `db:"rx_os_sph" json:"rx_os_sph"`
	RxOsCyl  string `db:"rx_os_cyl" json:"rx_os_cyl"`
	RxOsAxis string `db:"rx_os_axis" json:"rx_os_axis"`
	RxOsAdd  string `db:"rx_os_add" json:"rx_os_add"`
	Dp       string `db:"dp" json:"dp"`

	LensType     string     `db:"lens_type" json:"lens_type"`
	Usage        string     `db:"usage" json:"usage"`
	FollowUpDate *time.Time `db:"follow_up_date" json:"follow_up_date,omitempty"`

	// Payment
	PayStatus    string  `db:"pay_status" json:"pay_status"`
	PayTotal     string  `db:"pay_total" json:"pay_total"`
	PayMethod    string  `db:"pay_method" json:"pay_method"`
	PayReference string  `db:"pay_reference" json:"pay_reference"`
	PayDiscount  *string `db:"pay_discount" json:"pay_discount,omitempty"`
	PayNotes     *string `db:"pay_notes" json:"pay_notes,omitempty"`
}
