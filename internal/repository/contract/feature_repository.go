// FILE: internal/repository/contract/feature_repository.go
// Repository interface for roadmap features
package contract

import (
	"context"

	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FeatureRepository interface {
	Create(ctx context.Context, feature *entity.Feature) error
	Update(ctx context.Context, feature *entity.Feature) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.Feature, error)
}
