package planning

import (
	"testing"

	"pm-intel-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func defaultWeights() entity.ScoringWeights {
	return entity.DefaultScoringWeights()
}

func TestRecompute(t *testing.T) {
	tests := []struct {
		name     string
		dims     entity.Dimensions
		weights  entity.ScoringWeights
		wantWV   float64
		wantRICE float64
	}{
		{
			name: "reference scenario",
			dims: entity.Dimensions{
				CustomerValue: 8, Competitive: 4, Financial: 3,
				Strategic: 6, CaseStudy: 2, Effort: 2, Confidence: 0.9,
			},
			weights:  defaultWeights(),
			wantWV:   5.15,
			wantRICE: 2.58,
		},
		{
			name: "zero effort falls back to weighted value",
			dims: entity.Dimensions{
				CustomerValue: 8, Competitive: 4, Financial: 3,
				Strategic: 6, CaseStudy: 2, Effort: 0,
			},
			weights:  defaultWeights(),
			wantWV:   5.15,
			wantRICE: 5.15,
		},
		{
			name:     "all zeros is legal",
			dims:     entity.Dimensions{},
			weights:  defaultWeights(),
			wantWV:   0,
			wantRICE: 0,
		},
		{
			name: "zero weights yield zero score",
			dims: entity.Dimensions{
				CustomerValue: 10, Competitive: 10, Financial: 10,
				Strategic: 10, CaseStudy: 10, Effort: 5,
			},
			weights:  entity.ScoringWeights{},
			wantWV:   0,
			wantRICE: 0,
		},
		{
			name: "effort and confidence excluded from weighted sum",
			dims: entity.Dimensions{
				CustomerValue: 1, Effort: 100, Confidence: 1,
			},
			weights:  entity.ScoringWeights{CustomerValue: 1},
			wantWV:   1,
			wantRICE: 0.01,
		},
		{
			name: "final score rounds half up at hundredths",
			dims: entity.Dimensions{
				CustomerValue: 1, Effort: 3,
			},
			weights:  entity.ScoringWeights{CustomerValue: 1},
			wantWV:   1,
			wantRICE: 0.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recompute(tt.dims, tt.weights)
			assert.InDelta(t, tt.wantWV, got.WeightedValue, 1e-9)
			assert.Equal(t, tt.wantRICE, got.FinalScore)
		})
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	dims := entity.Dimensions{
		CustomerValue: 7, Competitive: 3, Financial: 9,
		Strategic: 2, CaseStudy: 5, Effort: 4, Confidence: 0.5,
	}
	first := Recompute(dims, defaultWeights())
	second := Recompute(dims, defaultWeights())
	assert.Equal(t, first, second)
}

func TestApply(t *testing.T) {
	f := &entity.Feature{
		Dimensions: entity.Dimensions{
			CustomerValue: 8, Competitive: 4, Financial: 3,
			Strategic: 6, CaseStudy: 2, Effort: 2,
		},
		// Stale cached values must be overwritten.
		WeightedValue: 99,
		FinalScore:    99,
	}
	Apply(f, defaultWeights())
	assert.InDelta(t, 5.15, f.WeightedValue, 1e-9)
	assert.Equal(t, 2.58, f.FinalScore)
}
