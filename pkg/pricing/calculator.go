// Package pricing resolves displayed tier prices per country and billing
// period and applies master/override price edits. The master price is always
// USD; localized countries may pin a manual local-currency override per tier.
package pricing

import (
	"math"

	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/entity"
)

// DisplayPrice resolves the price shown for a tier in a country. A localized
// country with an override for the tier wins verbatim (already local
// currency); everything else converts the USD master through the FX rate.
// Universal mode ignores stale override rows entirely.
func DisplayPrice(tier *entity.PricingTier, country *entity.CountryConfig, period entity.BillingPeriod) float64 {
	if country.Mode == entity.PricingModeLocalized {
		if o, ok := country.OverrideFor(tier.Id); ok {
			if period == entity.BillingPeriodYearly {
				return o.Yearly
			}
			return o.Monthly
		}
	}
	return math.Round(basePrice(tier, period) * country.FxRate)
}

// MasterEquivalent is the FX-converted master price, shown alongside a local
// override so editors can see the variance.
func MasterEquivalent(tier *entity.PricingTier, country *entity.CountryConfig, period entity.BillingPeriod) float64 {
	return math.Round(basePrice(tier, period) * country.FxRate)
}

// DeriveYearly computes the discounted yearly price from a monthly price.
func DeriveYearly(monthly, yearlyDiscount float64) float64 {
	return math.Round(monthly * 12 * (1 - yearlyDiscount))
}

// SetMasterPrice applies a price edit in universal mode: the value is the new
// USD master for the period. A monthly edit auto-derives the yearly price; a
// yearly edit leaves monthly untouched.
func SetMasterPrice(tier *entity.PricingTier, period entity.BillingPeriod, value, yearlyDiscount float64) error {
	if err := validatePrice(value); err != nil {
		return err
	}
	if period == entity.BillingPeriodYearly {
		tier.YearlyPrice = value
		return nil
	}
	tier.MonthlyPrice = value
	tier.YearlyPrice = DeriveYearly(value, yearlyDiscount)
	return nil
}

// SetOverridePrice applies a price edit in localized mode: the value is a
// local-currency override for the tier in this country. The monthly→yearly
// derivation uses the same global discount, not a per-country one.
func SetOverridePrice(country *entity.CountryConfig, tier *entity.PricingTier, period entity.BillingPeriod, value, yearlyDiscount float64) error {
	if err := validatePrice(value); err != nil {
		return err
	}
	if country.Overrides == nil {
		country.Overrides = make(map[string]entity.PriceOverride)
	}
	o := country.Overrides[tier.Id.String()]
	if period == entity.BillingPeriodYearly {
		o.Yearly = value
	} else {
		o.Monthly = value
		o.Yearly = DeriveYearly(value, yearlyDiscount)
	}
	country.Overrides[tier.Id.String()] = o
	return nil
}

func basePrice(tier *entity.PricingTier, period entity.BillingPeriod) float64 {
	if period == entity.BillingPeriodYearly {
		return tier.YearlyPrice
	}
	return tier.MonthlyPrice
}

func validatePrice(v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return &dto.InvalidPriceError{Value: v}
	}
	return nil
}
