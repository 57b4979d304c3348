// FILE: internal/dto/pricing_dto.go
// DTOs for pricing tiers, country configuration and the localized price matrix
package dto

import (
	"time"

	"pm-intel-be/internal/entity"

	"github.com/google/uuid"
)

type CreateTierRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description,omitempty"`
	MonthlyPrice float64 `json:"monthlyPrice" validate:"gte=0"`
	SortOrder    int     `json:"sortOrder"`
}

type UpdateTierRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	SortOrder   *int    `json:"sortOrder,omitempty"`
}

// SetPriceRequest edits a price. With a country code and that country in
// localized mode the edit lands in the country override; otherwise it edits
// the USD master.
type SetPriceRequest struct {
	Period      string  `json:"period" validate:"required,oneof=monthly yearly"`
	Value       float64 `json:"value"`
	CountryCode string  `json:"countryCode,omitempty"`
}

// AddTierFeatureRequest attaches a feature to a tier's bundle.
type AddTierFeatureRequest struct {
	FeatureId uuid.UUID `json:"featureId" validate:"required"`
}

type TierResponse struct {
	Id           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	MonthlyPrice float64     `json:"monthlyPrice"`
	YearlyPrice  float64     `json:"yearlyPrice"`
	FeatureIds   []uuid.UUID `json:"featureIds"`
	SortOrder    int         `json:"sortOrder"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type UpsertCountryRequest struct {
	Code     string  `json:"code" validate:"required,min=2,max=5"`
	Name     string  `json:"name" validate:"required"`
	Currency string  `json:"currency" validate:"required"`
	Symbol   string  `json:"symbol,omitempty"`
	FxRate   float64 `json:"fxRate" validate:"gt=0"`
	Mode     string  `json:"mode" validate:"required,oneof=universal localized"`
}

type CountryResponse struct {
	Code      string                          `json:"code"`
	Name      string                          `json:"name"`
	Currency  string                          `json:"currency"`
	Symbol    string                          `json:"symbol"`
	FxRate    float64                         `json:"fxRate"`
	Mode      string                          `json:"mode"`
	Overrides map[string]entity.PriceOverride `json:"overrides,omitempty"`
	CreatedAt time.Time                       `json:"createdAt"`
	UpdatedAt time.Time                       `json:"updatedAt"`
}

// TierPriceResponse is one cell of the localized price matrix.
type TierPriceResponse struct {
	TierId           uuid.UUID `json:"tierId"`
	TierName         string    `json:"tierName"`
	Monthly          float64   `json:"monthly"`
	Yearly           float64   `json:"yearly"`
	Overridden       bool      `json:"overridden"`
	MasterMonthly    float64   `json:"masterMonthly"`
	MasterYearly     float64   `json:"masterYearly"`
	CurrencySymbol   string    `json:"currencySymbol"`
	CurrencyCode     string    `json:"currencyCode"`
	ConversionSource string    `json:"conversionSource"` // override | fx
}

// CountryPricingResponse is the full per-country view of the pricing page.
type CountryPricingResponse struct {
	Country CountryResponse      `json:"country"`
	Tiers   []*TierPriceResponse `json:"tiers"`
}
