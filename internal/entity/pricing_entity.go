// FILE: internal/entity/pricing_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type BillingPeriod string
type PricingMode string

const (
	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodYearly  BillingPeriod = "yearly"

	PricingModeUniversal PricingMode = "universal"
	PricingModeLocalized PricingMode = "localized"
)

// PricingTier bundles referenced features at a master USD price point.
// FeatureIds are weak references into the feature collection: a feature may
// appear in any number of tiers but at most once per tier, and deleting a
// feature does not cascade here.
type PricingTier struct {
	Id           uuid.UUID
	Name         string
	Description  string
	MonthlyPrice float64 // USD master
	YearlyPrice  float64 // USD master
	FeatureIds   []uuid.UUID
	SortOrder    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PriceOverride is a manual local-currency price for one tier in one country.
type PriceOverride struct {
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// CountryConfig holds currency metadata and the pricing strategy for one
// country. Overrides only have meaning while Mode is localized; in universal
// mode the displayed local price is always round(master * FxRate).
type CountryConfig struct {
	Code      string // ISO-ish code, primary key
	Name      string
	Currency  string
	Symbol    string
	FxRate    float64 // USD basis
	Mode      PricingMode
	Overrides map[string]PriceOverride // tier id -> override
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *CountryConfig) OverrideFor(tierId uuid.UUID) (PriceOverride, bool) {
	if c.Overrides == nil {
		return PriceOverride{}, false
	}
	o, ok := c.Overrides[tierId.String()]
	return o, ok
}
