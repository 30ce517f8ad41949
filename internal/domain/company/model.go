package company

import (
	"time"

	"github.com/google/uuid"
)

// Company is a corporate client whose employees are examined on site.
type Company struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	ServiceType      string    `db:"service_type" json:"service_type,omitempty"`
	ExpectedPatients *int      `db:"expected_patients" json:"expected_patients,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
