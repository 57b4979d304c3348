package mapper

import (
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/model"
)

type TechStackMapper struct{}

func NewTechStackMapper() *TechStackMapper {
	return &TechStackMapper{}
}

func (m *TechStackMapper) ToEntity(model *model.TechStackProfile) *entity.TechStackProfile {
	if model == nil {
		return nil
	}
	e := &entity.TechStackProfile{
		Id:        model.Id,
		Name:      model.Name,
		Version:   model.Version,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	fromJSON(model.Components, &e.Components)
	return e
}

func (m *TechStackMapper) ToModel(entity *entity.TechStackProfile) *model.TechStackProfile {
	if entity == nil {
		return nil
	}
	mdl := &model.TechStackProfile{
		Id:        entity.Id,
		Name:      entity.Name,
		Version:   entity.Version,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
	if entity.Components != nil {
		mdl.Components = asJSON(entity.Components)
	}
	return mdl
}
