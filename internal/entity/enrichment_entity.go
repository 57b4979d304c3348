// FILE: internal/entity/enrichment_entity.go
// Structured results returned across the AI enrichment boundary
package entity

// SuggestedFeature is a partial feature proposed by insight analysis.
type SuggestedFeature struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// AIAnalysis is the structured result of analysing the insight board.
type AIAnalysis struct {
	Summary           string             `json:"summary"`
	KeyThemes         []string           `json:"keyThemes"`
	SuggestedFeatures []SuggestedFeature `json:"suggestedFeatures"`
}

// RevenueImpact pairs a feature id with its predicted impact.
type RevenueImpact struct {
	FeatureId string          `json:"featureId"`
	Impact    PredictedImpact `json:"impact"`
}

// VibePromptSet is a layered set of build prompts for an AI coding tool.
type VibePromptSet struct {
	ProductSummary string `json:"productSummary"`
	Architecture   string `json:"architecture"`
	Frontend       string `json:"frontend"`
	Backend        string `json:"backend"`
	DataModel      string `json:"dataModel"`
	Infra          string `json:"infra"`
	Ai             string `json:"ai,omitempty"`
}
