// Package planning holds the pure scoring and roadmap-scheduling rules.
// Everything here is side-effect free; services merge results back into
// entities and stamp timestamps themselves.
package planning

import (
	"math"

	"pm-intel-be/internal/entity"
)

// Score is the derived pair cached on every feature.
type Score struct {
	WeightedValue float64
	FinalScore    float64
}

// Recompute derives the weighted value and final priority score from the five
// scored dimensions and the effort divisor. Effort and confidence are excluded
// from the weighted sum. Effort 0 falls back to the raw weighted value instead
// of dividing. FinalScore is rounded half-up at the hundredths digit.
func Recompute(d entity.Dimensions, w entity.ScoringWeights) Score {
	wv := float64(d.CustomerValue)*w.CustomerValue +
		float64(d.Competitive)*w.Competitive +
		float64(d.Financial)*w.Financial +
		float64(d.Strategic)*w.Strategic +
		float64(d.CaseStudy)*w.CaseStudy

	final := wv
	if d.Effort > 0 {
		final = wv / d.Effort
	}

	return Score{
		WeightedValue: wv,
		FinalScore:    round2(final),
	}
}

// Apply merges a fresh Score into the feature in place.
func Apply(f *entity.Feature, w entity.ScoringWeights) {
	s := Recompute(f.Dimensions, w)
	f.WeightedValue = s.WeightedValue
	f.FinalScore = s.FinalScore
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
