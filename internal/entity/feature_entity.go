// FILE: internal/entity/feature_entity.go
// Domain entity for roadmap features
package entity

import (
	"time"

	"github.com/google/uuid"
)

type FeatureStatus string
type Priority string
type StrategicType string

const (
	FeatureStatusIdea       FeatureStatus = "idea"
	FeatureStatusDiscovery  FeatureStatus = "discovery"
	FeatureStatusPlanned    FeatureStatus = "planned"
	FeatureStatusInProgress FeatureStatus = "in-progress"
	FeatureStatusReleased   FeatureStatus = "released"
	FeatureStatusArchived   FeatureStatus = "archived"

	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"

	StrategicTypeCore         StrategicType = "core"
	StrategicTypeExpansion    StrategicType = "expansion"
	StrategicTypeExperimental StrategicType = "experimental"
	StrategicTypeFoundation   StrategicType = "foundation"

	// ReleaseBacklog is the canonical unscheduled bucket label.
	ReleaseBacklog = "Backlog"
)

// Dimensions holds the five scored inputs plus effort divisor and confidence.
// The five score fields are conventionally 1-10; effort 0 means "not estimated"
// and disables division; confidence is 0..1.
type Dimensions struct {
	CustomerValue int     `json:"customerValue" validate:"gte=0"`
	Competitive   int     `json:"competitive" validate:"gte=0"`
	Financial     int     `json:"financial" validate:"gte=0"`
	Strategic     int     `json:"strategic" validate:"gte=0"`
	CaseStudy     int     `json:"caseStudy" validate:"gte=0"`
	Effort        float64 `json:"effort" validate:"gte=0"`
	Confidence    float64 `json:"confidence" validate:"gte=0,lte=1"`
}

// FeaturePRD is the AI-generated requirements segment attached to a feature.
type FeaturePRD struct {
	ProblemStatement string   `json:"problemStatement"`
	Vision           string   `json:"vision"`
	TargetUsers      []string `json:"targetUsers"`
	SuccessMetrics   []string `json:"successMetrics"`
	Requirements     []string `json:"requirements"`
}

// PredictedImpact is the AI-predicted revenue effect of shipping a feature.
type PredictedImpact struct {
	ArrDelta      float64 `json:"arrDelta"`      // USD
	RetentionLift float64 `json:"retentionLift"` // percentage
	ExpansionProb float64 `json:"expansionProb"` // percentage
	Confidence    float64 `json:"confidence"`    // 0-1
}

type DeliveryLink struct {
	System string `json:"system"` // jira, linear, github, azure_devops
	Id     string `json:"id"`
	Url    string `json:"url"`
}

type CustomerImpact struct {
	Segment string  `json:"segment"`
	Score   float64 `json:"score"`
	Notes   string  `json:"notes,omitempty"`
}

// Feature is a roadmap work item. WeightedValue and FinalScore are cached
// derived fields: they are recomputed from Dimensions and the workspace
// scoring weights and must never be accepted from callers.
type Feature struct {
	Id            uuid.UUID
	Title         string
	Description   string
	Status        FeatureStatus
	Priority      Priority
	StrategicType StrategicType

	Dimensions    Dimensions
	WeightedValue float64
	FinalScore    float64

	Owner       string
	Release     string
	ProductArea string

	DeliveryLinks   []DeliveryLink
	CustomerImpacts []CustomerImpact
	LinkedInsights  []string

	Prd             *FeaturePRD
	PredictedImpact *PredictedImpact

	CreatedAt time.Time
	UpdatedAt time.Time
}
