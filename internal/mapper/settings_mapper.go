package mapper

import (
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/model"
)

type SettingsMapper struct{}

func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

func (m *SettingsMapper) ToEntity(model *model.WorkspaceSettings) *entity.WorkspaceSettings {
	if model == nil {
		return nil
	}
	e := &entity.WorkspaceSettings{
		Id:             model.Id,
		YearlyDiscount: model.YearlyDiscount,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
	fromJSON(model.Weights, &e.Weights)
	return e
}

func (m *SettingsMapper) ToModel(entity *entity.WorkspaceSettings) *model.WorkspaceSettings {
	if entity == nil {
		return nil
	}
	return &model.WorkspaceSettings{
		Id:             entity.Id,
		Weights:        asJSON(entity.Weights),
		YearlyDiscount: entity.YearlyDiscount,
		CreatedAt:      entity.CreatedAt,
		UpdatedAt:      entity.UpdatedAt,
	}
}
