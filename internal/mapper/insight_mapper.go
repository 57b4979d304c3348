package mapper

import (
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/model"
)

type InsightMapper struct{}

func NewInsightMapper() *InsightMapper {
	return &InsightMapper{}
}

func (m *InsightMapper) ToEntity(model *model.Insight) *entity.Insight {
	if model == nil {
		return nil
	}
	e := &entity.Insight{
		Id:        model.Id,
		Customer:  model.Customer,
		Company:   model.Company,
		Content:   model.Content,
		Sentiment: entity.Sentiment(model.Sentiment),
		Date:      model.Date,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	fromJSON(model.Tags, &e.Tags)
	fromJSON(model.LinkedFeatures, &e.LinkedFeatures)
	return e
}

func (m *InsightMapper) ToModel(entity *entity.Insight) *model.Insight {
	if entity == nil {
		return nil
	}
	mdl := &model.Insight{
		Id:        entity.Id,
		Customer:  entity.Customer,
		Company:   entity.Company,
		Content:   entity.Content,
		Sentiment: string(entity.Sentiment),
		Date:      entity.Date,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
	if entity.Tags != nil {
		mdl.Tags = asJSON(entity.Tags)
	}
	if entity.LinkedFeatures != nil {
		mdl.LinkedFeatures = asJSON(entity.LinkedFeatures)
	}
	return mdl
}

func (m *InsightMapper) ToEntities(models []*model.Insight) []*entity.Insight {
	entities := make([]*entity.Insight, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
