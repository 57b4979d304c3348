package contract

import (
	"context"

	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserIdeaRepository interface {
	Create(ctx context.Context, idea *entity.UserIdea) error
	Update(ctx context.Context, idea *entity.UserIdea) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserIdea, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.UserIdea, error)
}
