package enrichment

import (
	"fmt"

	"pm-intel-be/internal/entity"
)

// Deterministic stand-ins used when no AI provider is reachable. They are
// labelled SourcePlaceholder so the UI can flag them as non-AI content.

func placeholderAnalysis(insights []InsightInput) *entity.AIAnalysis {
	themes := make([]string, 0, 4)
	seen := map[string]bool{}
	for _, in := range insights {
		for _, tag := range in.Tags {
			if !seen[tag] && len(themes) < 4 {
				seen[tag] = true
				themes = append(themes, tag)
			}
		}
	}
	if len(themes) == 0 {
		themes = []string{"general feedback"}
	}
	return &entity.AIAnalysis{
		Summary:   fmt.Sprintf("Collected %d insights. Connect an AI provider for a full analysis.", len(insights)),
		KeyThemes: themes,
		SuggestedFeatures: []entity.SuggestedFeature{
			{
				Title:       "Review recurring feedback themes",
				Description: "The most frequent tags across the insight board warrant a dedicated discovery pass.",
				Priority:    entity.PriorityMedium,
			},
		},
	}
}

func placeholderPrd(title string) *entity.FeaturePRD {
	return &entity.FeaturePRD{
		ProblemStatement: fmt.Sprintf("Users currently lack %q and work around it manually.", title),
		Vision:           fmt.Sprintf("Deliver %q as a first-class capability.", title),
		TargetUsers:      []string{"Primary workspace users"},
		SuccessMetrics:   []string{"Adoption within 30 days of release", "Reduction in related support tickets"},
		Requirements:     []string{"Define the core workflow", "Cover the empty and error states", "Instrument usage analytics"},
	}
}

func placeholderRevenueImpacts(features []FeatureInput) []entity.RevenueImpact {
	impacts := make([]entity.RevenueImpact, 0, len(features))
	for _, f := range features {
		impacts = append(impacts, entity.RevenueImpact{
			FeatureId: f.Id,
			Impact: entity.PredictedImpact{
				ArrDelta:      0,
				RetentionLift: 0,
				ExpansionProb: 0,
				Confidence:    0,
			},
		})
	}
	return impacts
}

func placeholderSegmentProfile(name string) *SegmentProfile {
	return &SegmentProfile{
		Firmographics: entity.Firmographics{
			Industry:    "Unknown",
			CompanySize: "Unknown",
			RevenueBand: "Unknown",
			Geography:   "Unknown",
			GrowthStage: "Unknown",
		},
		Jtbd: entity.SegmentJtbd{
			Primary: fmt.Sprintf("Understand what the %q segment is hiring the product to do.", name),
		},
		PainPoints: entity.SegmentPainPoints{
			TopProblems: []string{"Profile not yet researched"},
			Urgency:     "medium",
		},
		Scores: entity.SegmentScores{
			RevenuePotential:    3,
			GrowthPotential:     3,
			StrategicImportance: 3,
			EaseOfAcquisition:   3,
			ProductFit:          3,
		},
	}
}

func placeholderVibePrompts(productContext string) *entity.VibePromptSet {
	return &entity.VibePromptSet{
		ProductSummary: productContext,
		Architecture:   "Describe a conventional three-tier web architecture for the product above.",
		Frontend:       "Build a single-page dashboard covering the product's core views.",
		Backend:        "Build a REST API backing the dashboard's entities and operations.",
		DataModel:      "Design a relational schema for the product's entities.",
		Infra:          "Provision a managed Postgres instance and a container runtime.",
	}
}
