package contract

import (
	"context"

	"pm-intel-be/internal/entity"

	"github.com/google/uuid"
)

// OrganisationRepository stores the workspace's single organisation profile.
type OrganisationRepository interface {
	Create(ctx context.Context, org *entity.Organisation) error
	Update(ctx context.Context, org *entity.Organisation) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Organisation, error)
	FindFirst(ctx context.Context) (*entity.Organisation, error)
}
