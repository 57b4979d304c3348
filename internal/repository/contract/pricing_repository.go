// FILE: internal/repository/contract/pricing_repository.go
// Repository interfaces for pricing tiers and country configurations
package contract

import (
	"context"

	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PricingTierRepository interface {
	Create(ctx context.Context, tier *entity.PricingTier) error
	Update(ctx context.Context, tier *entity.PricingTier) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PricingTier, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PricingTier, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.PricingTier, error)
}

type CountryRepository interface {
	Create(ctx context.Context, country *entity.CountryConfig) error
	Update(ctx context.Context, country *entity.CountryConfig) error
	Delete(ctx context.Context, code string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CountryConfig, error)
	FindByCode(ctx context.Context, code string) (*entity.CountryConfig, error)
}
