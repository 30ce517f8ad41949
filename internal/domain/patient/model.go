package patient

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Patient is a person examined during corporate vision campaigns.
type Patient struct {
	ID                    uuid.UUID  `db:"id" json:"id"`
	FirstName             string     `db:"first_name" json:"first_name"`
	LastName              string     `db:"last_name" json:"last_name"`
	DateOfBirth           *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Sex                   string     `db:"sex" json:"sex,omitempty"`
	HomePhone             *string    `db:"home_phone" json:"home_phone,omitempty"`
	CellPhone             *string    `db:"cell_phone" json:"cell_phone,omitempty"`
	PersonalEmail         *string    `db:"personal_email" json:"personal_email,omitempty"`
	ExternalPatientNumber *string    `db:"external_patient_number" json:"external_patient_number,omitempty"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at" json:"updated_at"`
}

// DisplayName joins the trimmed name parts. Blank names fall back to a
// generic label so printed documents never show an empty line.
func (p *Patient) DisplayName() string {
	var parts []string
	if f := strings.TrimSpace(p.FirstName); f != "" {
		parts = append(parts, f)
	}
	if l := strings.TrimSpace(p.LastName); l != "" {
		parts = append(parts, l)
	}
	if len(parts) == 0 {
		return "Paciente"
	}
	return strings.Join(parts, " ")
}
