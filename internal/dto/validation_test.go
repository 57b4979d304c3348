package dto

import (
	"testing"

	"pm-intel-be/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegativeWeightsRejected(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(UpdateSettingsRequest{
		Weights: &entity.ScoringWeights{CustomerValue: -5, Competitive: -1},
	})
	require.Error(t, err)
	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	assert.Len(t, verrs, 2)

	assert.NoError(t, validate.Struct(UpdateSettingsRequest{
		Weights: &entity.ScoringWeights{
			CustomerValue: 0.30, Competitive: 0.25, Financial: 0.25,
			Strategic: 0.15, CaseStudy: 0.05,
		},
	}))

	// Zero weights are legal; they just zero the score.
	assert.NoError(t, validate.Struct(UpdateSettingsRequest{
		Weights: &entity.ScoringWeights{},
	}))
}

func TestDimensionBoundsRejected(t *testing.T) {
	validate := validator.New()

	cases := []struct {
		name string
		dims entity.Dimensions
		ok   bool
	}{
		{"valid", entity.Dimensions{CustomerValue: 8, Competitive: 4, Financial: 3, Strategic: 6, CaseStudy: 2, Effort: 2, Confidence: 0.9}, true},
		{"zero effort legal", entity.Dimensions{CustomerValue: 5, Confidence: 0.5}, true},
		{"negative effort", entity.Dimensions{Effort: -1, Confidence: 0.5}, false},
		{"confidence above one", entity.Dimensions{Effort: 2, Confidence: 1.2}, false},
		{"negative confidence", entity.Dimensions{Effort: 2, Confidence: -0.1}, false},
		{"negative dimension", entity.Dimensions{CustomerValue: -3, Effort: 2, Confidence: 0.5}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(CreateFeatureRequest{Title: "x", Dimensions: tc.dims})
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
