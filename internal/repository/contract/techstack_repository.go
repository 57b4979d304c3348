package contract

import (
	"context"

	"pm-intel-be/internal/entity"

	"github.com/google/uuid"
)

type TechStackRepository interface {
	Create(ctx context.Context, profile *entity.TechStackProfile) error
	Update(ctx context.Context, profile *entity.TechStackProfile) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.TechStackProfile, error)
	FindFirst(ctx context.Context) (*entity.TechStackProfile, error)
}
