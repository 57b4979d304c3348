// FILE: internal/service/insight_service.go
package service

import (
	"context"
	"time"

	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/unitofwork"
	"pm-intel-be/pkg/enrichment"

	"github.com/google/uuid"
)

type IInsightService interface {
	Create(ctx context.Context, req *dto.CreateInsightRequest) (*dto.InsightResponse, error)
	List(ctx context.Context) ([]*dto.InsightResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.InsightResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInsightRequest) (*dto.InsightResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Analyse(ctx context.Context) (*dto.AnalysisResponse, error)
}

type insightService struct {
	uowFactory unitofwork.RepositoryFactory
	engine     *enrichment.Engine
}

func NewInsightService(uowFactory unitofwork.RepositoryFactory, engine *enrichment.Engine) IInsightService {
	return &insightService{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

func (c *insightService) Create(ctx context.Context, req *dto.CreateInsightRequest) (*dto.InsightResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	sentiment := entity.SentimentNeutral
	if req.Sentiment != "" {
		sentiment = entity.Sentiment(req.Sentiment)
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now()
	insight := entity.Insight{
		Id:             uuid.New(),
		Customer:       req.Customer,
		Company:        req.Company,
		Content:        req.Content,
		Sentiment:      sentiment,
		Date:           date,
		Tags:           req.Tags,
		LinkedFeatures: req.LinkedFeatures,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uow.InsightRepository().Create(ctx, &insight); err != nil {
		return nil, err
	}
	return toInsightResponse(&insight), nil
}

func (c *insightService) List(ctx context.Context) ([]*dto.InsightResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	insights, err := uow.InsightRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.InsightResponse, 0, len(insights))
	for _, i := range insights {
		responses = append(responses, toInsightResponse(i))
	}
	return responses, nil
}

func (c *insightService) Show(ctx context.Context, id uuid.UUID) (*dto.InsightResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	insight, err := uow.InsightRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if insight == nil {
		return nil, &dto.UnknownEntityError{Entity: "insight", Id: id.String()}
	}
	return toInsightResponse(insight), nil
}

func (c *insightService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInsightRequest) (*dto.InsightResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	insight, err := uow.InsightRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if insight == nil {
		return nil, &dto.UnknownEntityError{Entity: "insight", Id: id.String()}
	}

	if req.Customer != nil {
		insight.Customer = *req.Customer
	}
	if req.Company != nil {
		insight.Company = *req.Company
	}
	if req.Content != nil {
		insight.Content = *req.Content
	}
	if req.Sentiment != nil {
		insight.Sentiment = entity.Sentiment(*req.Sentiment)
	}
	if req.Tags != nil {
		insight.Tags = *req.Tags
	}
	if req.LinkedFeatures != nil {
		insight.LinkedFeatures = *req.LinkedFeatures
	}

	insight.UpdatedAt = time.Now()
	if err := uow.InsightRepository().Update(ctx, insight); err != nil {
		return nil, err
	}
	return toInsightResponse(insight), nil
}

func (c *insightService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	insight, err := uow.InsightRepository().FindById(ctx, id)
	if err != nil {
		return err
	}
	if insight == nil {
		return &dto.UnknownEntityError{Entity: "insight", Id: id.String()}
	}
	return uow.InsightRepository().Delete(ctx, id)
}

// Analyse runs the whole insight board through the AI boundary synchronously.
// The engine degrades to a tag-derived placeholder when no provider answers.
func (c *insightService) Analyse(ctx context.Context) (*dto.AnalysisResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	insights, err := uow.InsightRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	inputs := make([]enrichment.InsightInput, 0, len(insights))
	for _, i := range insights {
		inputs = append(inputs, enrichment.InsightInput{
			Content:   i.Content,
			Sentiment: string(i.Sentiment),
			Tags:      i.Tags,
		})
	}

	analysis, source, err := c.engine.AnalyseInsights(ctx, inputs)
	if err != nil {
		return nil, err
	}

	return &dto.AnalysisResponse{
		Analysis: *analysis,
		Source:   source,
	}, nil
}

func toInsightResponse(i *entity.Insight) *dto.InsightResponse {
	return &dto.InsightResponse{
		Id:             i.Id,
		Customer:       i.Customer,
		Company:        i.Company,
		Content:        i.Content,
		Sentiment:      string(i.Sentiment),
		Date:           i.Date,
		Tags:           i.Tags,
		LinkedFeatures: i.LinkedFeatures,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
