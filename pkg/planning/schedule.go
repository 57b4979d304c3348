package planning

import (
	"fmt"

	"pm-intel-be/internal/entity"
)

// Resolution selects the granularity of the roadmap bucket sequence.
type Resolution string

const (
	ResolutionYear    Resolution = "year"
	ResolutionQuarter Resolution = "quarter"
	ResolutionMonth   Resolution = "month"
	ResolutionWeek    Resolution = "week"
)

// The roadmap window is fixed: one year of history, three years of
// projection, anchored at 2024 like the reference dashboard.
const (
	windowStartYear = 2023
	windowEndYear   = 2027
)

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ParseResolution validates a caller-supplied resolution, defaulting to
// quarter, which is the reference default view.
func ParseResolution(s string) (Resolution, error) {
	switch Resolution(s) {
	case ResolutionYear, ResolutionQuarter, ResolutionMonth, ResolutionWeek:
		return Resolution(s), nil
	case "":
		return ResolutionQuarter, nil
	}
	return "", fmt.Errorf("unknown roadmap resolution %q", s)
}

// Buckets generates the ordered time-bucket label sequence for a resolution:
// "2024", "Q2 2024", "Mar 2025" or "W14 2026".
func Buckets(res Resolution) []string {
	var buckets []string
	for y := windowStartYear; y <= windowEndYear; y++ {
		switch res {
		case ResolutionYear:
			buckets = append(buckets, fmt.Sprintf("%d", y))
		case ResolutionQuarter:
			for q := 1; q <= 4; q++ {
				buckets = append(buckets, fmt.Sprintf("Q%d %d", q, y))
			}
		case ResolutionMonth:
			for _, m := range monthLabels {
				buckets = append(buckets, fmt.Sprintf("%s %d", m, y))
			}
		case ResolutionWeek:
			for w := 1; w <= 52; w++ {
				buckets = append(buckets, fmt.Sprintf("W%d %d", w, y))
			}
		}
	}
	return buckets
}

// IsBacklog reports whether a feature belongs in the backlog for the given
// bucket sequence: release unset, the literal "Backlog", or any label absent
// from the sequence. A feature scheduled under one resolution can therefore
// fall into backlog when the resolution changes; that is reference behavior
// and callers must not "fix" it by rewriting the stored release.
func IsBacklog(release string, buckets []string) bool {
	if release == "" || release == entity.ReleaseBacklog {
		return true
	}
	for _, b := range buckets {
		if b == release {
			return false
		}
	}
	return true
}

// ValidBucket reports whether a label is assignable: a member of the bucket
// sequence or the backlog literal.
func ValidBucket(label string, buckets []string) bool {
	if label == entity.ReleaseBacklog {
		return true
	}
	return !IsBacklog(label, buckets)
}
