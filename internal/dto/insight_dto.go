package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInsightRequest struct {
	Customer       string    `json:"customer,omitempty"`
	Company        string    `json:"company,omitempty"`
	Content        string    `json:"content" validate:"required"`
	Sentiment      string    `json:"sentiment,omitempty" validate:"omitempty,oneof=positive neutral negative"`
	Date           time.Time `json:"date,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	LinkedFeatures []string  `json:"linkedFeatures,omitempty"`
}

type UpdateInsightRequest struct {
	Customer       *string   `json:"customer,omitempty"`
	Company        *string   `json:"company,omitempty"`
	Content        *string   `json:"content,omitempty"`
	Sentiment      *string   `json:"sentiment,omitempty" validate:"omitempty,oneof=positive neutral negative"`
	Tags           *[]string `json:"tags,omitempty"`
	LinkedFeatures *[]string `json:"linkedFeatures,omitempty"`
}

type InsightResponse struct {
	Id             uuid.UUID `json:"id"`
	Customer       string    `json:"customer"`
	Company        string    `json:"company"`
	Content        string    `json:"content"`
	Sentiment      string    `json:"sentiment"`
	Date           time.Time `json:"date"`
	Tags           []string  `json:"tags,omitempty"`
	LinkedFeatures []string  `json:"linkedFeatures,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
