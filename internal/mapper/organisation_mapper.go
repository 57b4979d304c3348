// FILE: internal/mapper/organisation_mapper.go
// Mapper for Organisation entity <-> model conversion
package mapper

import (
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/model"
)

type OrganisationMapper struct{}

func NewOrganisationMapper() *OrganisationMapper {
	return &OrganisationMapper{}
}

func (m *OrganisationMapper) ToEntity(model *model.Organisation) *entity.Organisation {
	if model == nil {
		return nil
	}
	e := &entity.Organisation{
		Id:             model.Id,
		Name:           model.Name,
		PrimaryDomain:  model.PrimaryDomain,
		Industry:       model.Industry,
		Summary:        model.Summary,
		LastEnrichedAt: model.LastEnrichedAt,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
	fromJSON(model.DigitalPresence, &e.DigitalPresence)
	fromJSON(model.Strategy, &e.Strategy)
	fromJSON(model.BusinessModel, &e.BusinessModel)
	fromJSON(model.ProductStrategy, &e.ProductStrategy)
	fromJSON(model.Competitive, &e.Competitive)
	fromJSON(model.Delivery, &e.Delivery)
	fromJSON(model.Compliance, &e.Compliance)
	fromJSON(model.Governance, &e.Governance)
	fromJSON(model.Signals, &e.Signals)
	fromJSON(model.News, &e.News)
	return e
}

func (m *OrganisationMapper) ToModel(entity *entity.Organisation) *model.Organisation {
	if entity == nil {
		return nil
	}
	mdl := &model.Organisation{
		Id:              entity.Id,
		Name:            entity.Name,
		PrimaryDomain:   entity.PrimaryDomain,
		Industry:        entity.Industry,
		Summary:         entity.Summary,
		DigitalPresence: asJSON(entity.DigitalPresence),
		Strategy:        asJSON(entity.Strategy),
		BusinessModel:   asJSON(entity.BusinessModel),
		ProductStrategy: asJSON(entity.ProductStrategy),
		Competitive:     asJSON(entity.Competitive),
		Delivery:        asJSON(entity.Delivery),
		Compliance:      asJSON(entity.Compliance),
		Governance:      asJSON(entity.Governance),
		LastEnrichedAt:  entity.LastEnrichedAt,
		CreatedAt:       entity.CreatedAt,
		UpdatedAt:       entity.UpdatedAt,
	}
	if entity.Signals != nil {
		mdl.Signals = asJSON(entity.Signals)
	}
	if entity.News != nil {
		mdl.News = asJSON(entity.News)
	}
	return mdl
}
