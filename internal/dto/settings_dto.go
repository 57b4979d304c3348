package dto

import (
	"time"

	"pm-intel-be/internal/entity"

	"github.com/google/uuid"
)

// UpdateSettingsRequest replaces the workspace configuration. Weights are
// free-form fractions; they are not required to sum to one.
type UpdateSettingsRequest struct {
	Weights        *entity.ScoringWeights `json:"weights,omitempty"`
	YearlyDiscount *float64               `json:"yearlyDiscount,omitempty" validate:"omitempty,gte=0,lt=1"`
}

type SettingsResponse struct {
	Id             uuid.UUID             `json:"id"`
	Weights        entity.ScoringWeights `json:"weights"`
	YearlyDiscount float64               `json:"yearlyDiscount"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}
