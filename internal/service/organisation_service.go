// FILE: internal/service/organisation_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/memory"
	"pm-intel-be/internal/repository/unitofwork"
	"pm-intel-be/pkg/enrichment"

	"github.com/google/uuid"
)

type IOrganisationService interface {
	Get(ctx context.Context) (*dto.OrganisationResponse, error)
	Create(ctx context.Context, req *dto.CreateOrganisationRequest) (*dto.OrganisationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateOrganisationRequest) (*dto.OrganisationResponse, error)
	Enrich(ctx context.Context, id uuid.UUID) (*dto.EnrichmentAcceptedResponse, error)
	VibePrompts(ctx context.Context) (*dto.VibePromptsResponse, error)
}

type organisationService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	tokens           *memory.EnrichmentTokenRepository
	engine           *enrichment.Engine
}

func NewOrganisationService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	tokens *memory.EnrichmentTokenRepository,
	engine *enrichment.Engine,
) IOrganisationService {
	return &organisationService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		tokens:           tokens,
		engine:           engine,
	}
}

// Get returns the workspace's organisation profile. The workspace holds a
// single profile, so no id is taken.
func (c *organisationService) Get(ctx context.Context) (*dto.OrganisationResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	org, err := uow.OrganisationRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, &dto.UnknownEntityError{Entity: "organisation", Id: "workspace"}
	}
	return toOrganisationResponse(org), nil
}

func (c *organisationService) Create(ctx context.Context, req *dto.CreateOrganisationRequest) (*dto.OrganisationResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.OrganisationRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &dto.ConflictError{Message: "organisation profile already exists"}
	}

	now := time.Now()
	org := entity.Organisation{
		Id:            uuid.New(),
		Name:          req.Name,
		PrimaryDomain: req.PrimaryDomain,
		Industry:      req.Industry,
		Summary:       req.Summary,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uow.OrganisationRepository().Create(ctx, &org); err != nil {
		return nil, err
	}
	return toOrganisationResponse(&org), nil
}

func (c *organisationService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateOrganisationRequest) (*dto.OrganisationResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	org, err := uow.OrganisationRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, &dto.UnknownEntityError{Entity: "organisation", Id: id.String()}
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.PrimaryDomain != nil {
		org.PrimaryDomain = *req.PrimaryDomain
	}
	if req.Industry != nil {
		org.Industry = *req.Industry
	}
	if req.Summary != nil {
		org.Summary = *req.Summary
	}

	// Sub-documents replace whole; the strategy view edits one at a time.
	if req.DigitalPresence != nil {
		org.DigitalPresence = *req.DigitalPresence
	}
	if req.Strategy != nil {
		org.Strategy = *req.Strategy
	}
	if req.BusinessModel != nil {
		org.BusinessModel = *req.BusinessModel
	}
	if req.ProductStrategy != nil {
		org.ProductStrategy = *req.ProductStrategy
	}
	if req.Competitive != nil {
		org.Competitive = *req.Competitive
	}
	if req.Delivery != nil {
		org.Delivery = *req.Delivery
	}
	if req.Compliance != nil {
		org.Compliance = *req.Compliance
	}
	if req.Governance != nil {
		org.Governance = *req.Governance
	}

	org.UpdatedAt = time.Now()
	if err := uow.OrganisationRepository().Update(ctx, org); err != nil {
		return nil, err
	}
	return toOrganisationResponse(org), nil
}

// Enrich queues background research for the organisation. Unlike the other
// enrichment kinds there is no placeholder path: with no provider configured
// the request is refused up front.
func (c *organisationService) Enrich(ctx context.Context, id uuid.UUID) (*dto.EnrichmentAcceptedResponse, error) {
	if !c.engine.Enabled() {
		return nil, &dto.EnrichmentUnavailableError{Kind: dto.EnrichmentKindOrganisation}
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	org, err := uow.OrganisationRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, &dto.UnknownEntityError{Entity: "organisation", Id: id.String()}
	}

	token := c.tokens.Issue(dto.EnrichmentKindOrganisation + ":" + id.String())
	job := dto.EnrichmentJobMessage{
		Kind:     dto.EnrichmentKindOrganisation,
		TargetId: id,
		Token:    token,
	}
	if err := c.publisherService.PublishEnrichmentJob(ctx, job); err != nil {
		return nil, err
	}
	return &dto.EnrichmentAcceptedResponse{Token: token}, nil
}

// VibePrompts generates the layered build-prompt set from the organisation
// summary and the current feature list, synchronously.
func (c *organisationService) VibePrompts(ctx context.Context) (*dto.VibePromptsResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	var sb strings.Builder
	if org, err := uow.OrganisationRepository().FindFirst(ctx); err == nil && org != nil {
		sb.WriteString(fmt.Sprintf("Product: %s (%s)\n%s\n", org.Name, org.Industry, org.Summary))
	}
	if features, err := uow.FeatureRepository().FindAll(ctx); err == nil {
		for _, f := range features {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", f.Title, f.Description))
		}
	}

	prompts, source, err := c.engine.GenerateVibePrompts(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	return &dto.VibePromptsResponse{
		Prompts: *prompts,
		Source:  source,
	}, nil
}

func toOrganisationResponse(o *entity.Organisation) *dto.OrganisationResponse {
	return &dto.OrganisationResponse{
		Id:              o.Id,
		Name:            o.Name,
		PrimaryDomain:   o.PrimaryDomain,
		Industry:        o.Industry,
		Summary:         o.Summary,
		DigitalPresence: o.DigitalPresence,
		Strategy:        o.Strategy,
		BusinessModel:   o.BusinessModel,
		ProductStrategy: o.ProductStrategy,
		Competitive:     o.Competitive,
		Delivery:        o.Delivery,
		Compliance:      o.Compliance,
		Governance:      o.Governance,
		Signals:         o.Signals,
		News:            o.News,
		LastEnrichedAt:  o.LastEnrichedAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
