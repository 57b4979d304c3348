// FILE: internal/mapper/customer_mapper.go
// Mappers for customer intelligence entity <-> model conversion
package mapper

import (
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/model"
)

type CustomerSegmentMapper struct{}

func NewCustomerSegmentMapper() *CustomerSegmentMapper {
	return &CustomerSegmentMapper{}
}

func (m *CustomerSegmentMapper) ToEntity(model *model.CustomerSegment) *entity.CustomerSegment {
	if model == nil {
		return nil
	}
	e := &entity.CustomerSegment{
		Id:                   model.Id,
		Name:                 model.Name,
		Description:          model.Description,
		Type:                 entity.SegmentType(model.Type),
		TotalSegmentUsers:    model.TotalSegmentUsers,
		AvgRevenuePerAccount: model.AvgRevenuePerAccount,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
	fromJSON(model.FeatureUsage, &e.FeatureUsage)
	fromJSON(model.Firmographics, &e.Firmographics)
	fromJSON(model.BuyingRoles, &e.BuyingRoles)
	fromJSON(model.Jtbd, &e.Jtbd)
	fromJSON(model.PainPoints, &e.PainPoints)
	fromJSON(model.Stack, &e.Stack)
	fromJSON(model.Pricing, &e.Pricing)
	fromJSON(model.Scores, &e.Scores)
	return e
}

func (m *CustomerSegmentMapper) ToModel(entity *entity.CustomerSegment) *model.CustomerSegment {
	if entity == nil {
		return nil
	}
	mdl := &model.CustomerSegment{
		Id:                   entity.Id,
		Name:                 entity.Name,
		Description:          entity.Description,
		Type:                 string(entity.Type),
		TotalSegmentUsers:    entity.TotalSegmentUsers,
		AvgRevenuePerAccount: entity.AvgRevenuePerAccount,
		Firmographics:        asJSON(entity.Firmographics),
		BuyingRoles:          asJSON(entity.BuyingRoles),
		Jtbd:                 asJSON(entity.Jtbd),
		PainPoints:           asJSON(entity.PainPoints),
		Stack:                asJSON(entity.Stack),
		Pricing:              asJSON(entity.Pricing),
		Scores:               asJSON(entity.Scores),
		CreatedAt:            entity.CreatedAt,
		UpdatedAt:            entity.UpdatedAt,
	}
	if entity.FeatureUsage != nil {
		mdl.FeatureUsage = asJSON(entity.FeatureUsage)
	}
	return mdl
}

func (m *CustomerSegmentMapper) ToEntities(models []*model.CustomerSegment) []*entity.CustomerSegment {
	entities := make([]*entity.CustomerSegment, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

type PainPointMapper struct{}

func NewPainPointMapper() *PainPointMapper {
	return &PainPointMapper{}
}

func (m *PainPointMapper) ToEntity(model *model.PainPoint) *entity.PainPoint {
	if model == nil {
		return nil
	}
	return &entity.PainPoint{
		Id:          model.Id,
		Title:       model.Title,
		Description: model.Description,
		Severity:    model.Severity,
		SignalCount: model.SignalCount,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (m *PainPointMapper) ToModel(entity *entity.PainPoint) *model.PainPoint {
	if entity == nil {
		return nil
	}
	return &model.PainPoint{
		Id:          entity.Id,
		Title:       entity.Title,
		Description: entity.Description,
		Severity:    entity.Severity,
		SignalCount: entity.SignalCount,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (m *PainPointMapper) ToEntities(models []*model.PainPoint) []*entity.PainPoint {
	entities := make([]*entity.PainPoint, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

type JTBDMapper struct{}

func NewJTBDMapper() *JTBDMapper {
	return &JTBDMapper{}
}

func (m *JTBDMapper) ToEntity(model *model.JTBD) *entity.JTBD {
	if model == nil {
		return nil
	}
	return &entity.JTBD{
		Id:        model.Id,
		Job:       model.Job,
		Context:   model.Context,
		Outcome:   model.Outcome,
		Category:  model.Category,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *JTBDMapper) ToModel(entity *entity.JTBD) *model.JTBD {
	if entity == nil {
		return nil
	}
	return &model.JTBD{
		Id:        entity.Id,
		Job:       entity.Job,
		Context:   entity.Context,
		Outcome:   entity.Outcome,
		Category:  entity.Category,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (m *JTBDMapper) ToEntities(models []*model.JTBD) []*entity.JTBD {
	entities := make([]*entity.JTBD, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
