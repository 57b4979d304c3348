// FILE: internal/mapper/pricing_mapper.go
// Mappers for PricingTier and CountryConfig entity <-> model conversion
package mapper

import (
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/model"
)

type PricingTierMapper struct{}

func NewPricingTierMapper() *PricingTierMapper {
	return &PricingTierMapper{}
}

func (m *PricingTierMapper) ToEntity(model *model.PricingTier) *entity.PricingTier {
	if model == nil {
		return nil
	}
	e := &entity.PricingTier{
		Id:           model.Id,
		Name:         model.Name,
		Description:  model.Description,
		MonthlyPrice: model.MonthlyPrice,
		YearlyPrice:  model.YearlyPrice,
		SortOrder:    model.SortOrder,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	fromJSON(model.FeatureIds, &e.FeatureIds)
	return e
}

func (m *PricingTierMapper) ToModel(entity *entity.PricingTier) *model.PricingTier {
	if entity == nil {
		return nil
	}
	mdl := &model.PricingTier{
		Id:           entity.Id,
		Name:         entity.Name,
		Description:  entity.Description,
		MonthlyPrice: entity.MonthlyPrice,
		YearlyPrice:  entity.YearlyPrice,
		SortOrder:    entity.SortOrder,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
	if entity.FeatureIds != nil {
		mdl.FeatureIds = asJSON(entity.FeatureIds)
	}
	return mdl
}

func (m *PricingTierMapper) ToEntities(models []*model.PricingTier) []*entity.PricingTier {
	entities := make([]*entity.PricingTier, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

type CountryConfigMapper struct{}

func NewCountryConfigMapper() *CountryConfigMapper {
	return &CountryConfigMapper{}
}

func (m *CountryConfigMapper) ToEntity(model *model.CountryConfig) *entity.CountryConfig {
	if model == nil {
		return nil
	}
	e := &entity.CountryConfig{
		Code:      model.Code,
		Name:      model.Name,
		Currency:  model.Currency,
		Symbol:    model.Symbol,
		FxRate:    model.FxRate,
		Mode:      entity.PricingMode(model.Mode),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	fromJSON(model.Overrides, &e.Overrides)
	return e
}

func (m *CountryConfigMapper) ToModel(entity *entity.CountryConfig) *model.CountryConfig {
	if entity == nil {
		return nil
	}
	mdl := &model.CountryConfig{
		Code:      entity.Code,
		Name:      entity.Name,
		Currency:  entity.Currency,
		Symbol:    entity.Symbol,
		FxRate:    entity.FxRate,
		Mode:      string(entity.Mode),
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
	if entity.Overrides != nil {
		mdl.Overrides = asJSON(entity.Overrides)
	}
	return mdl
}

func (m *CountryConfigMapper) ToEntities(models []*model.CountryConfig) []*entity.CountryConfig {
	entities := make([]*entity.CountryConfig, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
