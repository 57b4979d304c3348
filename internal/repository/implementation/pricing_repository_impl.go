// FILE: internal/repository/implementation/pricing_repository_impl.go
// Implementations of PricingTierRepository and CountryRepository
package implementation

import (
	"context"
	"errors"

	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/mapper"
	"pm-intel-be/internal/model"
	"pm-intel-be/internal/repository/contract"
	"pm-intel-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PricingTierRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PricingTierMapper
}

func NewPricingTierRepository(db *gorm.DB) contract.PricingTierRepository {
	return &PricingTierRepositoryImpl{
		db:     db,
		mapper: mapper.NewPricingTierMapper(),
	}
}

func (r *PricingTierRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PricingTierRepositoryImpl) Create(ctx context.Context, tier *entity.PricingTier) error {
	m := r.mapper.ToModel(tier)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tier = *r.mapper.ToEntity(m)
	return nil
}

func (r *PricingTierRepositoryImpl) Update(ctx context.Context, tier *entity.PricingTier) error {
	m := r.mapper.ToModel(tier)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*tier = *r.mapper.ToEntity(m)
	return nil
}

func (r *PricingTierRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PricingTier{}, id).Error
}

func (r *PricingTierRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PricingTier, error) {
	var m model.PricingTier
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PricingTierRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PricingTier, error) {
	var models []*model.PricingTier
	query := r.applySpecifications(r.db.WithContext(ctx).Order("sort_order ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PricingTierRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.PricingTier, error) {
	return r.FindOne(ctx, specification.ByID{ID: id})
}

type CountryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CountryConfigMapper
}

func NewCountryRepository(db *gorm.DB) contract.CountryRepository {
	return &CountryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCountryConfigMapper(),
	}
}

func (r *CountryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CountryRepositoryImpl) Create(ctx context.Context, country *entity.CountryConfig) error {
	m := r.mapper.ToModel(country)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*country = *r.mapper.ToEntity(m)
	return nil
}

func (r *CountryRepositoryImpl) Update(ctx context.Context, country *entity.CountryConfig) error {
	m := r.mapper.ToModel(country)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*country = *r.mapper.ToEntity(m)
	return nil
}

func (r *CountryRepositoryImpl) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).Delete(&model.CountryConfig{}, "code = ?", code).Error
}

func (r *CountryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CountryConfig, error) {
	var models []*model.CountryConfig
	query := r.applySpecifications(r.db.WithContext(ctx).Order("code ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CountryRepositoryImpl) FindByCode(ctx context.Context, code string) (*entity.CountryConfig, error) {
	var m model.CountryConfig
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
