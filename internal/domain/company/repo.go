package company

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, co *Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*Company, error)
	Update(ctx context.Context, co *Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Company, int, error)
}
