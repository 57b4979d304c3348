// FILE: internal/service/settings_service.go
package service

import (
	"context"
	"time"

	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type settingsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory) ISettingsService {
	return &settingsService{
		uowFactory: uowFactory,
	}
}

// Get returns the workspace settings, creating the default row on first read.
func (c *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	settings, err := c.getOrCreate(ctx, uow)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// Update patches weights and/or the yearly discount. Changing weights does
// NOT rescore existing features; the new weights apply on the next dimension
// edit or an explicit rescore-all.
func (c *settingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	settings, err := c.getOrCreate(ctx, uow)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Weights != nil && *req.Weights != settings.Weights {
		settings.Weights = *req.Weights
		changed = true
	}
	if req.YearlyDiscount != nil && *req.YearlyDiscount != settings.YearlyDiscount {
		settings.YearlyDiscount = *req.YearlyDiscount
		changed = true
	}

	if !changed {
		return toSettingsResponse(settings), nil
	}

	settings.UpdatedAt = time.Now()
	if err := uow.SettingsRepository().Update(ctx, settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func (c *settingsService) getOrCreate(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.WorkspaceSettings, error) {
	settings, err := uow.SettingsRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	now := time.Now()
	settings = &entity.WorkspaceSettings{
		Id:             uuid.New(),
		Weights:        entity.DefaultScoringWeights(),
		YearlyDiscount: entity.DefaultYearlyDiscount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uow.SettingsRepository().Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func toSettingsResponse(s *entity.WorkspaceSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Id:             s.Id,
		Weights:        s.Weights,
		YearlyDiscount: s.YearlyDiscount,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
