// FILE: internal/service/portal_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/pkg/mailer"
	"pm-intel-be/internal/repository/unitofwork"
	"pm-intel-be/pkg/events"
	pktNats "pm-intel-be/pkg/nats"

	"github.com/google/uuid"
)

type IPortalService interface {
	ListIdeas(ctx context.Context) ([]*dto.IdeaResponse, error)
	SubmitIdea(ctx context.Context, req *dto.SubmitIdeaRequest) (*dto.IdeaResponse, error)
	Vote(ctx context.Context, id uuid.UUID) (*dto.IdeaResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateIdeaStatusRequest) (*dto.IdeaResponse, error)
	DeleteIdea(ctx context.Context, id uuid.UUID) error
}

type portalService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewPortalService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
) IPortalService {
	return &portalService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (c *portalService) ListIdeas(ctx context.Context) ([]*dto.IdeaResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	ideas, err := uow.UserIdeaRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.IdeaResponse, 0, len(ideas))
	for _, idea := range ideas {
		responses = append(responses, toIdeaResponse(idea))
	}
	return responses, nil
}

// SubmitIdea records a portal submission. New ideas always start with the
// submitter's own vote and in under-consideration.
func (c *portalService) SubmitIdea(ctx context.Context, req *dto.SubmitIdeaRequest) (*dto.IdeaResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	author := req.Author
	if author == "" {
		author = "You"
	}

	now := time.Now()
	idea := entity.UserIdea{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Votes:       1,
		Status:      entity.IdeaStatusUnderConsideration,
		Category:    "User Request",
		Author:      author,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.UserIdeaRepository().Create(ctx, &idea); err != nil {
		return nil, err
	}

	// Confirmation mail is auxiliary; a broken SMTP setup must not lose ideas.
	if req.AuthorEmail != "" {
		if err := c.emailService.SendIdeaReceived(req.AuthorEmail, idea.Title); err != nil {
			fmt.Printf("[WARN] Idea confirmation mail failed: %v\n", err)
		}
	}

	if c.eventPublisher != nil {
		evt := events.New(events.TypeIdeaSubmitted, map[string]interface{}{
			"idea_id": idea.Id,
			"title":   idea.Title,
		})
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish IDEA_SUBMITTED event: %v\n", err)
		}
	}

	return toIdeaResponse(&idea), nil
}

// Vote bumps the counter by one. There is no voter identity, so repeat votes
// from the same client simply count again.
func (c *portalService) Vote(ctx context.Context, id uuid.UUID) (*dto.IdeaResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	idea, err := uow.UserIdeaRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, &dto.UnknownEntityError{Entity: "idea", Id: id.String()}
	}

	idea.Votes++
	idea.UpdatedAt = time.Now()
	if err := uow.UserIdeaRepository().Update(ctx, idea); err != nil {
		return nil, err
	}

	if c.eventPublisher != nil {
		evt := events.New(events.TypeIdeaVoted, map[string]interface{}{
			"idea_id": idea.Id,
			"votes":   idea.Votes,
		})
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish IDEA_VOTED event: %v\n", err)
		}
	}

	return toIdeaResponse(idea), nil
}

func (c *portalService) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateIdeaStatusRequest) (*dto.IdeaResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	idea, err := uow.UserIdeaRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, &dto.UnknownEntityError{Entity: "idea", Id: id.String()}
	}

	if idea.Status == entity.IdeaStatus(req.Status) {
		return toIdeaResponse(idea), nil
	}

	idea.Status = entity.IdeaStatus(req.Status)
	idea.UpdatedAt = time.Now()
	if err := uow.UserIdeaRepository().Update(ctx, idea); err != nil {
		return nil, err
	}
	return toIdeaResponse(idea), nil
}

func (c *portalService) DeleteIdea(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	idea, err := uow.UserIdeaRepository().FindById(ctx, id)
	if err != nil {
		return err
	}
	if idea == nil {
		return &dto.UnknownEntityError{Entity: "idea", Id: id.String()}
	}
	return uow.UserIdeaRepository().Delete(ctx, id)
}

func toIdeaResponse(i *entity.UserIdea) *dto.IdeaResponse {
	return &dto.IdeaResponse{
		Id:          i.Id,
		Title:       i.Title,
		Description: i.Description,
		Votes:       i.Votes,
		Status:      string(i.Status),
		Category:    i.Category,
		Author:      i.Author,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
