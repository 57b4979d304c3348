// FILE: internal/entity/settings_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScoringWeights is the contribution of each scored dimension to a feature's
// weighted value. Process-wide configuration: changing it does NOT rescore
// existing features; only a dimension edit or an explicit rescore-all applies
// the weights in effect at that moment.
type ScoringWeights struct {
	CustomerValue float64 `json:"customerValue" validate:"gte=0"`
	Competitive   float64 `json:"competitive" validate:"gte=0"`
	Financial     float64 `json:"financial" validate:"gte=0"`
	Strategic     float64 `json:"strategic" validate:"gte=0"`
	CaseStudy     float64 `json:"caseStudy" validate:"gte=0"`
}

// DefaultScoringWeights mirror the reference dashboard defaults.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		CustomerValue: 0.30,
		Competitive:   0.25,
		Financial:     0.25,
		Strategic:     0.15,
		CaseStudy:     0.05,
	}
}

// WorkspaceSettings is the single-row workspace configuration backing the
// account view: scoring weights plus the global yearly pricing discount.
type WorkspaceSettings struct {
	Id             uuid.UUID
	Weights        ScoringWeights
	YearlyDiscount float64 // fraction, e.g. 0.2
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

const DefaultYearlyDiscount = 0.2
