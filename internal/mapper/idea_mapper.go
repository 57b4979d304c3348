package mapper

import (
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/model"
)

type UserIdeaMapper struct{}

func NewUserIdeaMapper() *UserIdeaMapper {
	return &UserIdeaMapper{}
}

func (m *UserIdeaMapper) ToEntity(model *model.UserIdea) *entity.UserIdea {
	if model == nil {
		return nil
	}
	return &entity.UserIdea{
		Id:          model.Id,
		Title:       model.Title,
		Description: model.Description,
		Votes:       model.Votes,
		Status:      entity.IdeaStatus(model.Status),
		Category:    model.Category,
		Author:      model.Author,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (m *UserIdeaMapper) ToModel(entity *entity.UserIdea) *model.UserIdea {
	if entity == nil {
		return nil
	}
	return &model.UserIdea{
		Id:          entity.Id,
		Title:       entity.Title,
		Description: entity.Description,
		Votes:       entity.Votes,
		Status:      string(entity.Status),
		Category:    entity.Category,
		Author:      entity.Author,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (m *UserIdeaMapper) ToEntities(models []*model.UserIdea) []*entity.UserIdea {
	entities := make([]*entity.UserIdea, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
