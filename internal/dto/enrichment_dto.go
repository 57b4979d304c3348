// FILE: internal/dto/enrichment_dto.go
// DTOs for AI enrichment requests and results
package dto

import (
	"pm-intel-be/internal/entity"

	"github.com/google/uuid"
)

// EnrichmentAcceptedResponse is returned when an async enrichment job has been
// queued. The token identifies the request; a newer request for the same
// target supersedes it.
type EnrichmentAcceptedResponse struct {
	Token uuid.UUID `json:"token"`
}

type AnalysisResponse struct {
	Analysis entity.AIAnalysis `json:"analysis"`
	Source   string            `json:"source"` // gemini | openai | placeholder
}

type PrdResponse struct {
	FeatureId uuid.UUID         `json:"featureId"`
	Prd       entity.FeaturePRD `json:"prd"`
	Source    string            `json:"source"`
}

type RevenueImpactResponse struct {
	Impacts []entity.RevenueImpact `json:"impacts"`
	Source  string                 `json:"source"`
}

type SegmentEnrichmentResponse struct {
	Segment *SegmentResponse `json:"segment"`
	Source  string           `json:"source"`
}

type VibePromptsResponse struct {
	Prompts entity.VibePromptSet `json:"prompts"`
	Source  string               `json:"source"`
}
