// FILE: internal/entity/insight_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Insight is a captured piece of customer feedback.
type Insight struct {
	Id             uuid.UUID
	Customer       string
	Company        string
	Content        string
	Sentiment      Sentiment
	Date           time.Time
	Tags           []string
	LinkedFeatures []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
