package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "FEATURE_RESCORED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes published by the dashboard services.
const (
	TypeFeatureCreated    = "FEATURE_CREATED"
	TypeFeatureRescored   = "FEATURE_RESCORED"
	TypeFeatureScheduled  = "FEATURE_SCHEDULED"
	TypeIdeaSubmitted     = "IDEA_SUBMITTED"
	TypeIdeaVoted         = "IDEA_VOTED"
	TypePriceChanged      = "PRICE_CHANGED"
	TypeEnrichmentApplied = "ENRICHMENT_APPLIED"
)

// New builds a BaseEvent stamped now.
func New(eventType string, data map[string]interface{}) Event {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
