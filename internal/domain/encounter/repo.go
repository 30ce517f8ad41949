package encounter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository provides access to encounter records.
type Repository interface {
	Create(ctx context.Context, enc *Encounter) error
	GetByID(ctx context.Context, id uuid.UUID) (*Encounter, error)
	Update(ctx context.Context, enc *Encounter) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Encounter, int, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*Encounter, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Encounter, int, error)

	// ListAllByCompany returns every encounter of a company ordered by
	// creation time, optionally bounded by [from, to). Reports consume
	// the full set, so no pagination.
	ListAllByCompany(ctx context.Context, companyID uuid.UUID, from, to *time.Time) ([]*Encounter, error)
}
