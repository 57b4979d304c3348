package dto

import (
	"time"

	"pm-intel-be/internal/entity"

	"github.com/google/uuid"
)

type UpsertTechStackRequest struct {
	Name       string                      `json:"name" validate:"required"`
	Version    string                      `json:"version,omitempty"`
	Components []entity.TechStackComponent `json:"components" validate:"dive"`
}

type AddComponentRequest struct {
	Category string                     `json:"category" validate:"required"`
	ToolName string                     `json:"toolName" validate:"required"`
	Version  string                     `json:"version,omitempty"`
	Status   entity.TechComponentStatus `json:"status,omitempty" validate:"omitempty,oneof=approved deprecated blocked required"`
	IsCustom bool                       `json:"isCustom,omitempty"`
}

type UpdateComponentRequest struct {
	Version *string                     `json:"version,omitempty"`
	Status  *entity.TechComponentStatus `json:"status,omitempty" validate:"omitempty,oneof=approved deprecated blocked required"`
}

type TechStackResponse struct {
	Id         uuid.UUID                   `json:"id"`
	Name       string                      `json:"name"`
	Version    string                      `json:"version"`
	Components []entity.TechStackComponent `json:"components"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}
