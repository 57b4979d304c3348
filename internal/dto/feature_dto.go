// FILE: internal/dto/feature_dto.go
// DTOs for roadmap feature CRUD, scoring and scheduling
package dto

import (
	"time"

	"pm-intel-be/internal/entity"

	"github.com/google/uuid"
)

// CreateFeatureRequest adds a new feature. Scores and derived values are
// never accepted here; a fresh feature starts from its dimensions.
type CreateFeatureRequest struct {
	Title         string            `json:"title" validate:"required"`
	Description   string            `json:"description,omitempty"`
	Status        string            `json:"status,omitempty" validate:"omitempty,oneof=idea discovery planned in-progress released archived"`
	Priority      string            `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	StrategicType string            `json:"strategicType,omitempty" validate:"omitempty,oneof=core expansion experimental foundation"`
	Dimensions    entity.Dimensions `json:"dimensions"`
	Owner         string            `json:"owner,omitempty"`
	Release       string            `json:"release,omitempty"`
	ProductArea   string            `json:"productArea,omitempty"`
}

// UpdateFeatureRequest patches descriptive fields. Dimensions, release and
// status have dedicated endpoints because they carry recompute rules.
type UpdateFeatureRequest struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Priority      *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	StrategicType *string `json:"strategicType,omitempty" validate:"omitempty,oneof=core expansion experimental foundation"`
	Owner         *string `json:"owner,omitempty"`
	ProductArea   *string `json:"productArea,omitempty"`
}

// UpdateDimensionsRequest replaces the scored dimensions wholesale and
// triggers a rescore with the weights in effect right now.
type UpdateDimensionsRequest struct {
	Dimensions entity.Dimensions `json:"dimensions" validate:"required"`
}

// AssignReleaseRequest moves a feature to a roadmap bucket (or "Backlog").
type AssignReleaseRequest struct {
	Release    string `json:"release" validate:"required"`
	Resolution string `json:"resolution,omitempty" validate:"omitempty,oneof=year quarter month week"`
}

// AssignStatusRequest moves a feature across the kanban board.
type AssignStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=idea discovery planned in-progress released archived"`
}

type FeatureResponse struct {
	Id            uuid.UUID         `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Status        string            `json:"status"`
	Priority      string            `json:"priority"`
	StrategicType string            `json:"strategicType"`
	Dimensions    entity.Dimensions `json:"dimensions"`
	WeightedValue float64           `json:"weightedValue"`
	FinalScore    float64           `json:"finalScore"`
	Owner         string            `json:"owner"`
	Release       string            `json:"release"`
	ProductArea   string            `json:"productArea"`

	DeliveryLinks   []entity.DeliveryLink   `json:"deliveryLinks,omitempty"`
	CustomerImpacts []entity.CustomerImpact `json:"customerImpacts,omitempty"`
	LinkedInsights  []string                `json:"linkedInsights,omitempty"`

	Prd             *entity.FeaturePRD      `json:"prd,omitempty"`
	PredictedImpact *entity.PredictedImpact `json:"predictedImpact,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoadmapResponse groups features into the bucket sequence of the requested
// resolution. Backlog holds everything whose release is absent from it.
type RoadmapResponse struct {
	Resolution string                        `json:"resolution"`
	Buckets    []string                      `json:"buckets"`
	Assigned   map[string][]*FeatureResponse `json:"assigned"`
	Backlog    []*FeatureResponse            `json:"backlog"`
}

type RescoreAllResponse struct {
	Rescored int `json:"rescored"`
}
