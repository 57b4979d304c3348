package dto

import "github.com/google/uuid"

// Enrichment job kinds carried on the internal queue.
const (
	EnrichmentKindPrd           = "prd"
	EnrichmentKindRevenueImpact = "revenue-impact"
	EnrichmentKindSegment       = "segments"
	EnrichmentKindOrganisation  = "organisation"
)

// EnrichmentJobMessage is the payload queued for the background worker. The
// token binds the job to the request that issued it: a worker holding a
// superseded token drops its result.
type EnrichmentJobMessage struct {
	Kind     string    `json:"kind"`
	TargetId uuid.UUID `json:"targetId"`
	Token    uuid.UUID `json:"token"`
}
