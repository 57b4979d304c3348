// FILE: internal/service/techstack_service.go
package service

import (
	"context"
	"time"

	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITechStackService interface {
	Get(ctx context.Context) (*dto.TechStackResponse, error)
	Upsert(ctx context.Context, req *dto.UpsertTechStackRequest) (*dto.TechStackResponse, error)
	AddComponent(ctx context.Context, req *dto.AddComponentRequest) (*dto.TechStackResponse, error)
	UpdateComponent(ctx context.Context, componentId string, req *dto.UpdateComponentRequest) (*dto.TechStackResponse, error)
	RemoveComponent(ctx context.Context, componentId string) (*dto.TechStackResponse, error)
}

type techStackService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTechStackService(uowFactory unitofwork.RepositoryFactory) ITechStackService {
	return &techStackService{
		uowFactory: uowFactory,
	}
}

func (c *techStackService) Get(ctx context.Context) (*dto.TechStackResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.TechStackRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &dto.UnknownEntityError{Entity: "tech stack", Id: "workspace"}
	}
	return toTechStackResponse(profile), nil
}

// Upsert replaces the single workspace registry, creating it on first write.
func (c *techStackService) Upsert(ctx context.Context, req *dto.UpsertTechStackRequest) (*dto.TechStackResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.TechStackRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if profile == nil {
		profile = &entity.TechStackProfile{
			Id:        uuid.New(),
			CreatedAt: now,
		}
		profile.Name = req.Name
		profile.Version = req.Version
		profile.Components = req.Components
		profile.UpdatedAt = now
		if err := uow.TechStackRepository().Create(ctx, profile); err != nil {
			return nil, err
		}
		return toTechStackResponse(profile), nil
	}

	profile.Name = req.Name
	profile.Version = req.Version
	profile.Components = req.Components
	profile.UpdatedAt = now
	if err := uow.TechStackRepository().Update(ctx, profile); err != nil {
		return nil, err
	}
	return toTechStackResponse(profile), nil
}

func (c *techStackService) AddComponent(ctx context.Context, req *dto.AddComponentRequest) (*dto.TechStackResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.TechStackRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &dto.UnknownEntityError{Entity: "tech stack", Id: "workspace"}
	}

	status := req.Status
	if status == "" {
		status = entity.TechStatusApproved
	}
	profile.Components = append(profile.Components, entity.TechStackComponent{
		Id:       uuid.New().String(),
		Category: req.Category,
		ToolName: req.ToolName,
		Version:  req.Version,
		Status:   status,
		IsCustom: req.IsCustom,
	})
	profile.UpdatedAt = time.Now()

	if err := uow.TechStackRepository().Update(ctx, profile); err != nil {
		return nil, err
	}
	return toTechStackResponse(profile), nil
}

func (c *techStackService) UpdateComponent(ctx context.Context, componentId string, req *dto.UpdateComponentRequest) (*dto.TechStackResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.TechStackRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &dto.UnknownEntityError{Entity: "tech stack", Id: "workspace"}
	}

	changed := false
	found := false
	for i := range profile.Components {
		if profile.Components[i].Id != componentId {
			continue
		}
		found = true
		if req.Version != nil && profile.Components[i].Version != *req.Version {
			profile.Components[i].Version = *req.Version
			changed = true
		}
		if req.Status != nil && profile.Components[i].Status != *req.Status {
			profile.Components[i].Status = *req.Status
			changed = true
		}
		break
	}
	if !found {
		return nil, &dto.UnknownEntityError{Entity: "tech component", Id: componentId}
	}

	// No-op patches skip the save so UpdatedAt stays honest.
	if changed {
		profile.UpdatedAt = time.Now()
		if err := uow.TechStackRepository().Update(ctx, profile); err != nil {
			return nil, err
		}
	}
	return toTechStackResponse(profile), nil
}

func (c *techStackService) RemoveComponent(ctx context.Context, componentId string) (*dto.TechStackResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.TechStackRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &dto.UnknownEntityError{Entity: "tech stack", Id: "workspace"}
	}

	kept := profile.Components[:0]
	for _, comp := range profile.Components {
		if comp.Id != componentId {
			kept = append(kept, comp)
		}
	}
	if len(kept) == len(profile.Components) {
		return nil, &dto.UnknownEntityError{Entity: "tech component", Id: componentId}
	}
	profile.Components = kept
	profile.UpdatedAt = time.Now()

	if err := uow.TechStackRepository().Update(ctx, profile); err != nil {
		return nil, err
	}
	return toTechStackResponse(profile), nil
}

func toTechStackResponse(p *entity.TechStackProfile) *dto.TechStackResponse {
	return &dto.TechStackResponse{
		Id:         p.Id,
		Name:       p.Name,
		Version:    p.Version,
		Components: p.Components,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
