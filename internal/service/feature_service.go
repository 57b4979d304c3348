// FILE: internal/service/feature_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/memory"
	"pm-intel-be/internal/repository/specification"
	"pm-intel-be/internal/repository/unitofwork"
	"pm-intel-be/pkg/events"
	pktNats "pm-intel-be/pkg/nats"
	"pm-intel-be/pkg/planning"

	"github.com/google/uuid"
)

type IFeatureService interface {
	Create(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	List(ctx context.Context) ([]*dto.FeatureResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.FeatureResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error)
	UpdateDimensions(ctx context.Context, id uuid.UUID, req *dto.UpdateDimensionsRequest) (*dto.FeatureResponse, error)
	AssignRelease(ctx context.Context, id uuid.UUID, req *dto.AssignReleaseRequest) (*dto.FeatureResponse, error)
	AssignStatus(ctx context.Context, id uuid.UUID, req *dto.AssignStatusRequest) (*dto.FeatureResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Roadmap(ctx context.Context, resolution string) (*dto.RoadmapResponse, error)
	RescoreAll(ctx context.Context) (*dto.RescoreAllResponse, error)
	GeneratePrd(ctx context.Context, id uuid.UUID) (*dto.EnrichmentAcceptedResponse, error)
	PredictRevenueImpacts(ctx context.Context) (*dto.EnrichmentAcceptedResponse, error)
}

type featureService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	tokens           *memory.EnrichmentTokenRepository
	eventPublisher   *pktNats.Publisher
}

func NewFeatureService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	tokens *memory.EnrichmentTokenRepository,
	eventPublisher *pktNats.Publisher,
) IFeatureService {
	return &featureService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		tokens:           tokens,
		eventPublisher:   eventPublisher,
	}
}

// currentWeights loads the workspace scoring weights, falling back to the
// defaults when the settings row has not been created yet.
func (c *featureService) currentWeights(ctx context.Context, uow unitofwork.UnitOfWork) entity.ScoringWeights {
	settings, err := uow.SettingsRepository().FindFirst(ctx)
	if err != nil || settings == nil {
		return entity.DefaultScoringWeights()
	}
	return settings.Weights
}

func (c *featureService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if c.eventPublisher == nil {
		return
	}
	// Log error but don't fail the request; the event bus is auxiliary.
	if err := c.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func (c *featureService) Create(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	status := entity.FeatureStatusIdea
	if req.Status != "" {
		status = entity.FeatureStatus(req.Status)
	}
	priority := entity.PriorityMedium
	if req.Priority != "" {
		priority = entity.Priority(req.Priority)
	}
	strategicType := entity.StrategicTypeCore
	if req.StrategicType != "" {
		strategicType = entity.StrategicType(req.StrategicType)
	}

	now := time.Now()
	feature := entity.Feature{
		Id:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		Status:        status,
		Priority:      priority,
		StrategicType: strategicType,
		Dimensions:    req.Dimensions,
		Owner:         req.Owner,
		Release:       req.Release,
		ProductArea:   req.ProductArea,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	planning.Apply(&feature, c.currentWeights(ctx, uow))

	if err := uow.FeatureRepository().Create(ctx, &feature); err != nil {
		return nil, err
	}

	c.publishEvent(ctx, events.TypeFeatureCreated, map[string]interface{}{
		"feature_id": feature.Id,
		"title":      feature.Title,
	})

	return toFeatureResponse(&feature), nil
}

func (c *featureService) List(ctx context.Context) ([]*dto.FeatureResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	features, err := uow.FeatureRepository().FindAll(ctx, specification.OrderByScore{})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.FeatureResponse, 0, len(features))
	for _, f := range features {
		responses = append(responses, toFeatureResponse(f))
	}
	return responses, nil
}

func (c *featureService) Show(ctx context.Context, id uuid.UUID) (*dto.FeatureResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, &dto.UnknownEntityError{Entity: "feature", Id: id.String()}
	}
	return toFeatureResponse(feature), nil
}

func (c *featureService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, &dto.UnknownEntityError{Entity: "feature", Id: id.String()}
	}

	changed := false
	if req.Title != nil && *req.Title != feature.Title {
		feature.Title = *req.Title
		changed = true
	}
	if req.Description != nil && *req.Description != feature.Description {
		feature.Description = *req.Description
		changed = true
	}
	if req.Priority != nil && entity.Priority(*req.Priority) != feature.Priority {
		feature.Priority = entity.Priority(*req.Priority)
		changed = true
	}
	if req.StrategicType != nil && entity.StrategicType(*req.StrategicType) != feature.StrategicType {
		feature.StrategicType = entity.StrategicType(*req.StrategicType)
		changed = true
	}
	if req.Owner != nil && *req.Owner != feature.Owner {
		feature.Owner = *req.Owner
		changed = true
	}
	if req.ProductArea != nil && *req.ProductArea != feature.ProductArea {
		feature.ProductArea = *req.ProductArea
		changed = true
	}

	// No-op patches skip the save so UpdatedAt stays honest.
	if !changed {
		return toFeatureResponse(feature), nil
	}

	feature.UpdatedAt = time.Now()
	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}
	return toFeatureResponse(feature), nil
}

func (c *featureService) UpdateDimensions(ctx context.Context, id uuid.UUID, req *dto.UpdateDimensionsRequest) (*dto.FeatureResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, &dto.UnknownEntityError{Entity: "feature", Id: id.String()}
	}

	feature.Dimensions = req.Dimensions
	planning.Apply(feature, c.currentWeights(ctx, uow))
	feature.UpdatedAt = time.Now()

	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}

	c.publishEvent(ctx, events.TypeFeatureRescored, map[string]interface{}{
		"feature_id":  feature.Id,
		"final_score": feature.FinalScore,
	})

	return toFeatureResponse(feature), nil
}

func (c *featureService) AssignRelease(ctx context.Context, id uuid.UUID, req *dto.AssignReleaseRequest) (*dto.FeatureResponse, error) {
	res, err := planning.ParseResolution(req.Resolution)
	if err != nil {
		return nil, &dto.InvalidResolutionError{Resolution: req.Resolution}
	}
	if !planning.ValidBucket(req.Release, planning.Buckets(res)) {
		return nil, &dto.InvalidBucketError{Release: req.Release, Resolution: string(res)}
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, &dto.UnknownEntityError{Entity: "feature", Id: id.String()}
	}

	if feature.Release == req.Release {
		return toFeatureResponse(feature), nil
	}

	feature.Release = req.Release
	feature.UpdatedAt = time.Now()
	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}

	c.publishEvent(ctx, events.TypeFeatureScheduled, map[string]interface{}{
		"feature_id": feature.Id,
		"release":    feature.Release,
	})

	return toFeatureResponse(feature), nil
}

func (c *featureService) AssignStatus(ctx context.Context, id uuid.UUID, req *dto.AssignStatusRequest) (*dto.FeatureResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, &dto.UnknownEntityError{Entity: "feature", Id: id.String()}
	}

	if feature.Status == entity.FeatureStatus(req.Status) {
		return toFeatureResponse(feature), nil
	}

	feature.Status = entity.FeatureStatus(req.Status)
	feature.UpdatedAt = time.Now()
	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}
	return toFeatureResponse(feature), nil
}

func (c *featureService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindById(ctx, id)
	if err != nil {
		return err
	}
	if feature == nil {
		return &dto.UnknownEntityError{Entity: "feature", Id: id.String()}
	}
	return uow.FeatureRepository().Delete(ctx, id)
}

func (c *featureService) Roadmap(ctx context.Context, resolution string) (*dto.RoadmapResponse, error) {
	res, err := planning.ParseResolution(resolution)
	if err != nil {
		return nil, &dto.InvalidResolutionError{Resolution: resolution}
	}
	buckets := planning.Buckets(res)

	uow := c.uowFactory.NewUnitOfWork(ctx)
	features, err := uow.FeatureRepository().FindAll(ctx, specification.OrderByScore{})
	if err != nil {
		return nil, err
	}

	response := &dto.RoadmapResponse{
		Resolution: string(res),
		Buckets:    buckets,
		Assigned:   make(map[string][]*dto.FeatureResponse),
		Backlog:    []*dto.FeatureResponse{},
	}

	for _, f := range features {
		fr := toFeatureResponse(f)
		if planning.IsBacklog(f.Release, buckets) {
			response.Backlog = append(response.Backlog, fr)
			continue
		}
		response.Assigned[f.Release] = append(response.Assigned[f.Release], fr)
	}

	return response, nil
}

func (c *featureService) RescoreAll(ctx context.Context) (*dto.RescoreAllResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	weights := c.currentWeights(ctx, uow)

	features, err := uow.FeatureRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	rescored := 0
	now := time.Now()
	for _, f := range features {
		before := planning.Score{WeightedValue: f.WeightedValue, FinalScore: f.FinalScore}
		planning.Apply(f, weights)
		if before.WeightedValue == f.WeightedValue && before.FinalScore == f.FinalScore {
			continue
		}
		f.UpdatedAt = now
		if err := uow.FeatureRepository().Update(ctx, f); err != nil {
			return nil, err
		}
		rescored++
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publishEvent(ctx, events.TypeFeatureRescored, map[string]interface{}{
		"rescored": rescored,
	})

	return &dto.RescoreAllResponse{Rescored: rescored}, nil
}

func (c *featureService) GeneratePrd(ctx context.Context, id uuid.UUID) (*dto.EnrichmentAcceptedResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, &dto.UnknownEntityError{Entity: "feature", Id: id.String()}
	}

	token := c.tokens.Issue(dto.EnrichmentKindPrd + ":" + id.String())
	job := dto.EnrichmentJobMessage{
		Kind:     dto.EnrichmentKindPrd,
		TargetId: id,
		Token:    token,
	}
	if err := c.publisherService.PublishEnrichmentJob(ctx, job); err != nil {
		return nil, err
	}
	return &dto.EnrichmentAcceptedResponse{Token: token}, nil
}

func (c *featureService) PredictRevenueImpacts(ctx context.Context) (*dto.EnrichmentAcceptedResponse, error) {
	// Revenue prediction runs over the whole portfolio; the target id is nil.
	token := c.tokens.Issue(dto.EnrichmentKindRevenueImpact + ":" + uuid.Nil.String())
	job := dto.EnrichmentJobMessage{
		Kind:     dto.EnrichmentKindRevenueImpact,
		TargetId: uuid.Nil,
		Token:    token,
	}
	if err := c.publisherService.PublishEnrichmentJob(ctx, job); err != nil {
		return nil, err
	}
	return &dto.EnrichmentAcceptedResponse{Token: token}, nil
}

func toFeatureResponse(f *entity.Feature) *dto.FeatureResponse {
	return &dto.FeatureResponse{
		Id:              f.Id,
		Title:           f.Title,
		Description:     f.Description,
		Status:          string(f.Status),
		Priority:        string(f.Priority),
		StrategicType:   string(f.StrategicType),
		Dimensions:      f.Dimensions,
		WeightedValue:   f.WeightedValue,
		FinalScore:      f.FinalScore,
		Owner:           f.Owner,
		Release:         f.Release,
		ProductArea:     f.ProductArea,
		DeliveryLinks:   f.DeliveryLinks,
		CustomerImpacts: f.CustomerImpacts,
		LinkedInsights:  f.LinkedInsights,
		Prd:             f.Prd,
		PredictedImpact: f.PredictedImpact,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}
