package contract

import (
	"context"

	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InsightRepository interface {
	Create(ctx context.Context, insight *entity.Insight) error
	Update(ctx context.Context, insight *entity.Insight) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Insight, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.Insight, error)
}
