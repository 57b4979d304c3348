package pricing

import (
	"testing"

	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const discount = entity.DefaultYearlyDiscount

func starterTier() *entity.PricingTier {
	return &entity.PricingTier{
		Id:           uuid.New(),
		Name:         "Starter",
		MonthlyPrice: 49,
		YearlyPrice:  470,
	}
}

func TestDeriveYearly(t *testing.T) {
	tests := []struct {
		monthly float64
		want    float64
	}{
		{49, 470},
		{199, 1910},
		{999, 9590},
		{0, 0},
		// 12 × 0.8 = 9.6, rounds to nearest integer.
		{1, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveYearly(tt.monthly, discount))
	}
}

func TestSetMasterPrice(t *testing.T) {
	t.Run("monthly edit derives yearly", func(t *testing.T) {
		tier := starterTier()
		require.NoError(t, SetMasterPrice(tier, entity.BillingPeriodMonthly, 59, discount))
		assert.Equal(t, 59.0, tier.MonthlyPrice)
		assert.Equal(t, 566.0, tier.YearlyPrice)
	})

	t.Run("yearly edit leaves monthly untouched", func(t *testing.T) {
		tier := starterTier()
		require.NoError(t, SetMasterPrice(tier, entity.BillingPeriodYearly, 500, discount))
		assert.Equal(t, 49.0, tier.MonthlyPrice)
		assert.Equal(t, 500.0, tier.YearlyPrice)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		tier := starterTier()
		err := SetMasterPrice(tier, entity.BillingPeriodMonthly, -1, discount)
		var priceErr *dto.InvalidPriceError
		require.ErrorAs(t, err, &priceErr)
		// Rejected edits mutate nothing.
		assert.Equal(t, 49.0, tier.MonthlyPrice)
		assert.Equal(t, 470.0, tier.YearlyPrice)
	})
}

func TestSetOverridePrice(t *testing.T) {
	tier := starterTier()
	country := &entity.CountryConfig{
		Code:   "GB",
		Name:   "United Kingdom",
		FxRate: 0.78,
		Mode:   entity.PricingModeLocalized,
	}

	require.NoError(t, SetOverridePrice(country, tier, entity.BillingPeriodMonthly, 39, discount))
	o, ok := country.OverrideFor(tier.Id)
	require.True(t, ok)
	assert.Equal(t, 39.0, o.Monthly)
	assert.Equal(t, 374.0, o.Yearly)

	// Yearly edit inside the override keeps the monthly value.
	require.NoError(t, SetOverridePrice(country, tier, entity.BillingPeriodYearly, 380, discount))
	o, _ = country.OverrideFor(tier.Id)
	assert.Equal(t, 39.0, o.Monthly)
	assert.Equal(t, 380.0, o.Yearly)
}

func TestDisplayPrice(t *testing.T) {
	tier := starterTier()

	us := &entity.CountryConfig{Code: "US", FxRate: 1, Mode: entity.PricingModeUniversal}
	assert.Equal(t, 49.0, DisplayPrice(tier, us, entity.BillingPeriodMonthly))
	assert.Equal(t, 470.0, DisplayPrice(tier, us, entity.BillingPeriodYearly))

	// FX conversion rounds to whole units.
	jp := &entity.CountryConfig{Code: "JP", FxRate: 151.2, Mode: entity.PricingModeUniversal}
	assert.Equal(t, 7409.0, DisplayPrice(tier, jp, entity.BillingPeriodMonthly))

	// Localized country with an override wins verbatim.
	gb := &entity.CountryConfig{
		Code: "GB", FxRate: 0.78, Mode: entity.PricingModeLocalized,
		Overrides: map[string]entity.PriceOverride{
			tier.Id.String(): {Monthly: 39, Yearly: 380},
		},
	}
	assert.Equal(t, 39.0, DisplayPrice(tier, gb, entity.BillingPeriodMonthly))
	assert.Equal(t, 380.0, DisplayPrice(tier, gb, entity.BillingPeriodYearly))

	// Localized without an override for this tier falls back to FX.
	other := starterTier()
	assert.Equal(t, 38.0, DisplayPrice(other, gb, entity.BillingPeriodMonthly))
}

func TestDisplayPriceUniversalIgnoresStaleOverride(t *testing.T) {
	tier := starterTier()
	// A country switched back to universal keeps its override rows around;
	// they must not leak into the displayed price.
	country := &entity.CountryConfig{
		Code: "GB", FxRate: 0.78, Mode: entity.PricingModeUniversal,
		Overrides: map[string]entity.PriceOverride{
			tier.Id.String(): {Monthly: 39, Yearly: 380},
		},
	}
	assert.Equal(t, 38.0, DisplayPrice(tier, country, entity.BillingPeriodMonthly))
	assert.Equal(t, 367.0, DisplayPrice(tier, country, entity.BillingPeriodYearly))
}
