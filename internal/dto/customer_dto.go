// FILE: internal/dto/customer_dto.go
// DTOs for customer intelligence (segments, pain points, JTBD)
package dto

import (
	"time"

	"pm-intel-be/internal/entity"

	"github.com/google/uuid"
)

type CreateSegmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty" validate:"omitempty,oneof=core growth experimental legacy"`
}

type UpdateSegmentRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty" validate:"omitempty,oneof=core growth experimental legacy"`

	FeatureUsage         *[]entity.FeatureUsageMetric `json:"featureUsage,omitempty"`
	TotalSegmentUsers    *int                         `json:"totalSegmentUsers,omitempty"`
	AvgRevenuePerAccount *float64                     `json:"avgRevenuePerAccount,omitempty"`

	Firmographics *entity.Firmographics     `json:"firmographics,omitempty"`
	BuyingRoles   *entity.BuyingRoles       `json:"buyingRoles,omitempty"`
	Jtbd          *entity.SegmentJtbd       `json:"jtbd,omitempty"`
	PainPoints    *entity.SegmentPainPoints `json:"painPoints,omitempty"`
	Stack         *entity.SegmentStack      `json:"stack,omitempty"`
	Pricing       *entity.SegmentPricing    `json:"pricing,omitempty"`
	Scores        *entity.SegmentScores     `json:"scores,omitempty"`
}

type SegmentResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`

	FeatureUsage         []entity.FeatureUsageMetric `json:"featureUsage,omitempty"`
	TotalSegmentUsers    int                         `json:"totalSegmentUsers"`
	AvgRevenuePerAccount float64                     `json:"avgRevenuePerAccount"`

	Firmographics entity.Firmographics     `json:"firmographics"`
	BuyingRoles   entity.BuyingRoles       `json:"buyingRoles"`
	Jtbd          entity.SegmentJtbd       `json:"jtbd"`
	PainPoints    entity.SegmentPainPoints `json:"painPoints"`
	Stack         entity.SegmentStack      `json:"stack"`
	Pricing       entity.SegmentPricing    `json:"pricing"`
	Scores        entity.SegmentScores     `json:"scores"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreatePainPointRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Severity    string `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	SignalCount int    `json:"signalCount" validate:"gte=0"`
}

type PainPointResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	SignalCount int       `json:"signalCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateJTBDRequest struct {
	Job      string `json:"job" validate:"required"`
	Context  string `json:"context,omitempty"`
	Outcome  string `json:"outcome,omitempty"`
	Category string `json:"category,omitempty" validate:"omitempty,oneof=functional emotional social"`
}

type JTBDResponse struct {
	Id        uuid.UUID `json:"id"`
	Job       string    `json:"job"`
	Context   string    `json:"context"`
	Outcome   string    `json:"outcome"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
