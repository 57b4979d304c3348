// FILE: internal/repository/contract/customer_repository.go
// Repository interfaces for customer intelligence
package contract

import (
	"context"

	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CustomerSegmentRepository interface {
	Create(ctx context.Context, segment *entity.CustomerSegment) error
	Update(ctx context.Context, segment *entity.CustomerSegment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CustomerSegment, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.CustomerSegment, error)
}

type PainPointRepository interface {
	Create(ctx context.Context, point *entity.PainPoint) error
	Update(ctx context.Context, point *entity.PainPoint) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PainPoint, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.PainPoint, error)
}

type JTBDRepository interface {
	Create(ctx context.Context, job *entity.JTBD) error
	Update(ctx context.Context, job *entity.JTBD) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JTBD, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.JTBD, error)
}
