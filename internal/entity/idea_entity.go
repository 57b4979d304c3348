// FILE: internal/entity/idea_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type IdeaStatus string

const (
	IdeaStatusUnderConsideration IdeaStatus = "under-consideration"
	IdeaStatusPlanned            IdeaStatus = "planned"
	IdeaStatusNotNow             IdeaStatus = "not-now"
)

// UserIdea is a feedback-portal submission. Votes are monotonic and
// unbounded; there is no voter identity and therefore no de-duplication.
type UserIdea struct {
	Id          uuid.UUID
	Title       string
	Description string
	Votes       int
	Status      IdeaStatus
	Category    string
	Author      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
