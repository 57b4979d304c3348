// FILE: internal/service/customer_service.go
package service

import (
	"context"
	"time"

	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/memory"
	"pm-intel-be/internal/repository/unitofwork"
	"pm-intel-be/pkg/enrichment"

	"github.com/google/uuid"
)

type ICustomerService interface {
	CreateSegment(ctx context.Context, req *dto.CreateSegmentRequest) (*dto.SegmentResponse, error)
	ListSegments(ctx context.Context) ([]*dto.SegmentResponse, error)
	ShowSegment(ctx context.Context, id uuid.UUID) (*dto.SegmentResponse, error)
	UpdateSegment(ctx context.Context, id uuid.UUID, req *dto.UpdateSegmentRequest) (*dto.SegmentResponse, error)
	DeleteSegment(ctx context.Context, id uuid.UUID) error
	EnrichSegment(ctx context.Context, id uuid.UUID) (*dto.EnrichmentAcceptedResponse, error)

	CreatePainPoint(ctx context.Context, req *dto.CreatePainPointRequest) (*dto.PainPointResponse, error)
	ListPainPoints(ctx context.Context) ([]*dto.PainPointResponse, error)
	DeletePainPoint(ctx context.Context, id uuid.UUID) error

	CreateJTBD(ctx context.Context, req *dto.CreateJTBDRequest) (*dto.JTBDResponse, error)
	ListJTBDs(ctx context.Context) ([]*dto.JTBDResponse, error)
	DeleteJTBD(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	tokens           *memory.EnrichmentTokenRepository
	engine           *enrichment.Engine
}

func NewCustomerService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	tokens *memory.EnrichmentTokenRepository,
	engine *enrichment.Engine,
) ICustomerService {
	return &customerService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		tokens:           tokens,
		engine:           engine,
	}
}

func (c *customerService) CreateSegment(ctx context.Context, req *dto.CreateSegmentRequest) (*dto.SegmentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	segmentType := entity.SegmentTypeCore
	if req.Type != "" {
		segmentType = entity.SegmentType(req.Type)
	}

	now := time.Now()
	segment := entity.CustomerSegment{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Type:        segmentType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.CustomerSegmentRepository().Create(ctx, &segment); err != nil {
		return nil, err
	}
	return toSegmentResponse(&segment), nil
}

func (c *customerService) ListSegments(ctx context.Context) ([]*dto.SegmentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	segments, err := uow.CustomerSegmentRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SegmentResponse, 0, len(segments))
	for _, s := range segments {
		responses = append(responses, toSegmentResponse(s))
	}
	return responses, nil
}

func (c *customerService) ShowSegment(ctx context.Context, id uuid.UUID) (*dto.SegmentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	segment, err := uow.CustomerSegmentRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if segment == nil {
		return nil, &dto.UnknownEntityError{Entity: "segment", Id: id.String()}
	}
	return toSegmentResponse(segment), nil
}

func (c *customerService) UpdateSegment(ctx context.Context, id uuid.UUID, req *dto.UpdateSegmentRequest) (*dto.SegmentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	segment, err := uow.CustomerSegmentRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if segment == nil {
		return nil, &dto.UnknownEntityError{Entity: "segment", Id: id.String()}
	}

	if req.Name != nil {
		segment.Name = *req.Name
	}
	if req.Description != nil {
		segment.Description = *req.Description
	}
	if req.Type != nil {
		segment.Type = entity.SegmentType(*req.Type)
	}
	if req.FeatureUsage != nil {
		segment.FeatureUsage = *req.FeatureUsage
	}
	if req.TotalSegmentUsers != nil {
		segment.TotalSegmentUsers = *req.TotalSegmentUsers
	}
	if req.AvgRevenuePerAccount != nil {
		segment.AvgRevenuePerAccount = *req.AvgRevenuePerAccount
	}
	if req.Firmographics != nil {
		segment.Firmographics = *req.Firmographics
	}
	if req.BuyingRoles != nil {
		segment.BuyingRoles = *req.BuyingRoles
	}
	if req.Jtbd != nil {
		segment.Jtbd = *req.Jtbd
	}
	if req.PainPoints != nil {
		segment.PainPoints = *req.PainPoints
	}
	if req.Stack != nil {
		segment.Stack = *req.Stack
	}
	if req.Pricing != nil {
		segment.Pricing = *req.Pricing
	}
	if req.Scores != nil {
		segment.Scores = *req.Scores
	}

	segment.UpdatedAt = time.Now()
	if err := uow.CustomerSegmentRepository().Update(ctx, segment); err != nil {
		return nil, err
	}
	return toSegmentResponse(segment), nil
}

func (c *customerService) DeleteSegment(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	segment, err := uow.CustomerSegmentRepository().FindById(ctx, id)
	if err != nil {
		return err
	}
	if segment == nil {
		return &dto.UnknownEntityError{Entity: "segment", Id: id.String()}
	}
	return uow.CustomerSegmentRepository().Delete(ctx, id)
}

// EnrichSegment queues AI enrichment of the qualitative segment profile.
func (c *customerService) EnrichSegment(ctx context.Context, id uuid.UUID) (*dto.EnrichmentAcceptedResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	segment, err := uow.CustomerSegmentRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if segment == nil {
		return nil, &dto.UnknownEntityError{Entity: "segment", Id: id.String()}
	}

	token := c.tokens.Issue(dto.EnrichmentKindSegment + ":" + id.String())
	job := dto.EnrichmentJobMessage{
		Kind:     dto.EnrichmentKindSegment,
		TargetId: id,
		Token:    token,
	}
	if err := c.publisherService.PublishEnrichmentJob(ctx, job); err != nil {
		return nil, err
	}
	return &dto.EnrichmentAcceptedResponse{Token: token}, nil
}

func (c *customerService) CreatePainPoint(ctx context.Context, req *dto.CreatePainPointRequest) (*dto.PainPointResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	severity := req.Severity
	if severity == "" {
		severity = "medium"
	}

	now := time.Now()
	point := entity.PainPoint{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Severity:    severity,
		SignalCount: req.SignalCount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.PainPointRepository().Create(ctx, &point); err != nil {
		return nil, err
	}
	return toPainPointResponse(&point), nil
}

func (c *customerService) ListPainPoints(ctx context.Context) ([]*dto.PainPointResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	points, err := uow.PainPointRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.PainPointResponse, 0, len(points))
	for _, p := range points {
		responses = append(responses, toPainPointResponse(p))
	}
	return responses, nil
}

func (c *customerService) DeletePainPoint(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	point, err := uow.PainPointRepository().FindById(ctx, id)
	if err != nil {
		return err
	}
	if point == nil {
		return &dto.UnknownEntityError{Entity: "pain point", Id: id.String()}
	}
	return uow.PainPointRepository().Delete(ctx, id)
}

func (c *customerService) CreateJTBD(ctx context.Context, req *dto.CreateJTBDRequest) (*dto.JTBDResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	category := req.Category
	if category == "" {
		category = "functional"
	}

	now := time.Now()
	job := entity.JTBD{
		Id:        uuid.New(),
		Job:       req.Job,
		Context:   req.Context,
		Outcome:   req.Outcome,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.JTBDRepository().Create(ctx, &job); err != nil {
		return nil, err
	}
	return toJTBDResponse(&job), nil
}

func (c *customerService) ListJTBDs(ctx context.Context) ([]*dto.JTBDResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	jobs, err := uow.JTBDRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.JTBDResponse, 0, len(jobs))
	for _, j := range jobs {
		responses = append(responses, toJTBDResponse(j))
	}
	return responses, nil
}

func (c *customerService) DeleteJTBD(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	job, err := uow.JTBDRepository().FindById(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return &dto.UnknownEntityError{Entity: "jtbd", Id: id.String()}
	}
	return uow.JTBDRepository().Delete(ctx, id)
}

func toSegmentResponse(s *entity.CustomerSegment) *dto.SegmentResponse {
	return &dto.SegmentResponse{
		Id:                   s.Id,
		Name:                 s.Name,
		Description:          s.Description,
		Type:                 string(s.Type),
		FeatureUsage:         s.FeatureUsage,
		TotalSegmentUsers:    s.TotalSegmentUsers,
		AvgRevenuePerAccount: s.AvgRevenuePerAccount,
		Firmographics:        s.Firmographics,
		BuyingRoles:          s.BuyingRoles,
		Jtbd:                 s.Jtbd,
		PainPoints:           s.PainPoints,
		Stack:                s.Stack,
		Pricing:              s.Pricing,
		Scores:               s.Scores,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func toPainPointResponse(p *entity.PainPoint) *dto.PainPointResponse {
	return &dto.PainPointResponse{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Severity:    p.Severity,
		SignalCount: p.SignalCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toJTBDResponse(j *entity.JTBD) *dto.JTBDResponse {
	return &dto.JTBDResponse{
		Id:        j.Id,
		Job:       j.Job,
		Context:   j.Context,
		Outcome:   j.Outcome,
		Category:  j.Category,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}
