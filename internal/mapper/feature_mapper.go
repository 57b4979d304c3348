// FILE: internal/mapper/feature_mapper.go
// Mapper for Feature entity <-> model conversion
package mapper

import (
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/model"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(model *model.Feature) *entity.Feature {
	if model == nil {
		return nil
	}
	e := &entity.Feature{
		Id:            model.Id,
		Title:         model.Title,
		Description:   model.Description,
		Status:        entity.FeatureStatus(model.Status),
		Priority:      entity.Priority(model.Priority),
		StrategicType: entity.StrategicType(model.StrategicType),
		WeightedValue: model.WeightedValue,
		FinalScore:    model.FinalScore,
		Owner:         model.Owner,
		Release:       model.Release,
		ProductArea:   model.ProductArea,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
	fromJSON(model.Dimensions, &e.Dimensions)
	fromJSON(model.DeliveryLinks, &e.DeliveryLinks)
	fromJSON(model.CustomerImpacts, &e.CustomerImpacts)
	fromJSON(model.LinkedInsights, &e.LinkedInsights)
	if len(model.Prd) > 0 {
		var prd entity.FeaturePRD
		fromJSON(model.Prd, &prd)
		e.Prd = &prd
	}
	if len(model.PredictedImpact) > 0 {
		var impact entity.PredictedImpact
		fromJSON(model.PredictedImpact, &impact)
		e.PredictedImpact = &impact
	}
	return e
}

func (m *FeatureMapper) ToModel(entity *entity.Feature) *model.Feature {
	if entity == nil {
		return nil
	}
	mdl := &model.Feature{
		Id:            entity.Id,
		Title:         entity.Title,
		Description:   entity.Description,
		Status:        string(entity.Status),
		Priority:      string(entity.Priority),
		StrategicType: string(entity.StrategicType),
		Dimensions:    asJSON(entity.Dimensions),
		WeightedValue: entity.WeightedValue,
		FinalScore:    entity.FinalScore,
		Owner:         entity.Owner,
		Release:       entity.Release,
		ProductArea:   entity.ProductArea,
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}
	if entity.DeliveryLinks != nil {
		mdl.DeliveryLinks = asJSON(entity.DeliveryLinks)
	}
	if entity.CustomerImpacts != nil {
		mdl.CustomerImpacts = asJSON(entity.CustomerImpacts)
	}
	if entity.LinkedInsights != nil {
		mdl.LinkedInsights = asJSON(entity.LinkedInsights)
	}
	if entity.Prd != nil {
		mdl.Prd = asJSON(entity.Prd)
	}
	if entity.PredictedImpact != nil {
		mdl.PredictedImpact = asJSON(entity.PredictedImpact)
	}
	return mdl
}

func (m *FeatureMapper) ToEntities(models []*model.Feature) []*entity.Feature {
	entities := make([]*entity.Feature, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
