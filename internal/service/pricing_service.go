// FILE: internal/service/pricing_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/unitofwork"
	"pm-intel-be/pkg/events"
	pktNats "pm-intel-be/pkg/nats"
	"pm-intel-be/pkg/pricing"

	"github.com/google/uuid"
)

type IPricingService interface {
	CreateTier(ctx context.Context, req *dto.CreateTierRequest) (*dto.TierResponse, error)
	ListTiers(ctx context.Context) ([]*dto.TierResponse, error)
	UpdateTier(ctx context.Context, id uuid.UUID, req *dto.UpdateTierRequest) (*dto.TierResponse, error)
	DeleteTier(ctx context.Context, id uuid.UUID) error
	SetPrice(ctx context.Context, tierId uuid.UUID, req *dto.SetPriceRequest) (*dto.TierResponse, error)
	AddTierFeature(ctx context.Context, tierId uuid.UUID, req *dto.AddTierFeatureRequest) (*dto.TierResponse, error)
	RemoveTierFeature(ctx context.Context, tierId uuid.UUID, featureId uuid.UUID) (*dto.TierResponse, error)
	UpsertCountry(ctx context.Context, req *dto.UpsertCountryRequest) (*dto.CountryResponse, error)
	ListCountries(ctx context.Context) ([]*dto.CountryResponse, error)
	DeleteCountry(ctx context.Context, code string) error
	CountryPricing(ctx context.Context, code string) (*dto.CountryPricingResponse, error)
}

type pricingService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewPricingService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IPricingService {
	return &pricingService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (c *pricingService) yearlyDiscount(ctx context.Context, uow unitofwork.UnitOfWork) float64 {
	settings, err := uow.SettingsRepository().FindFirst(ctx)
	if err != nil || settings == nil {
		return entity.DefaultYearlyDiscount
	}
	return settings.YearlyDiscount
}

func (c *pricingService) publishPriceChanged(ctx context.Context, data map[string]interface{}) {
	if c.eventPublisher == nil {
		return
	}
	if err := c.eventPublisher.Publish(ctx, events.New(events.TypePriceChanged, data)); err != nil {
		fmt.Printf("[WARN] Failed to publish PRICE_CHANGED event: %v\n", err)
	}
}

func (c *pricingService) CreateTier(ctx context.Context, req *dto.CreateTierRequest) (*dto.TierResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	tier := entity.PricingTier{
		Id:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		MonthlyPrice: req.MonthlyPrice,
		YearlyPrice:  pricing.DeriveYearly(req.MonthlyPrice, c.yearlyDiscount(ctx, uow)),
		FeatureIds:   []uuid.UUID{},
		SortOrder:    req.SortOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uow.PricingTierRepository().Create(ctx, &tier); err != nil {
		return nil, err
	}
	return toTierResponse(&tier), nil
}

func (c *pricingService) ListTiers(ctx context.Context) ([]*dto.TierResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	tiers, err := uow.PricingTierRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TierResponse, 0, len(tiers))
	for _, t := range tiers {
		responses = append(responses, toTierResponse(t))
	}
	return responses, nil
}

func (c *pricingService) UpdateTier(ctx context.Context, id uuid.UUID, req *dto.UpdateTierRequest) (*dto.TierResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	tier, err := uow.PricingTierRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, &dto.UnknownEntityError{Entity: "pricing tier", Id: id.String()}
	}

	changed := false
	if req.Name != nil && *req.Name != tier.Name {
		tier.Name = *req.Name
		changed = true
	}
	if req.Description != nil && *req.Description != tier.Description {
		tier.Description = *req.Description
		changed = true
	}
	if req.SortOrder != nil && *req.SortOrder != tier.SortOrder {
		tier.SortOrder = *req.SortOrder
		changed = true
	}

	if !changed {
		return toTierResponse(tier), nil
	}

	tier.UpdatedAt = time.Now()
	if err := uow.PricingTierRepository().Update(ctx, tier); err != nil {
		return nil, err
	}
	return toTierResponse(tier), nil
}

func (c *pricingService) DeleteTier(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	tier, err := uow.PricingTierRepository().FindById(ctx, id)
	if err != nil {
		return err
	}
	if tier == nil {
		return &dto.UnknownEntityError{Entity: "pricing tier", Id: id.String()}
	}
	return uow.PricingTierRepository().Delete(ctx, id)
}

// SetPrice routes a price edit: with a country code and that country in
// localized mode it lands in the country override, otherwise it edits the
// USD master (and a monthly edit re-derives yearly from the global discount).
func (c *pricingService) SetPrice(ctx context.Context, tierId uuid.UUID, req *dto.SetPriceRequest) (*dto.TierResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	tier, err := uow.PricingTierRepository().FindById(ctx, tierId)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, &dto.UnknownEntityError{Entity: "pricing tier", Id: tierId.String()}
	}

	period := entity.BillingPeriod(req.Period)
	discount := c.yearlyDiscount(ctx, uow)

	if req.CountryCode != "" {
		country, err := uow.CountryRepository().FindByCode(ctx, strings.ToUpper(req.CountryCode))
		if err != nil {
			return nil, err
		}
		if country == nil {
			return nil, &dto.UnknownEntityError{Entity: "country", Id: req.CountryCode}
		}
		if country.Mode == entity.PricingModeLocalized {
			if err := pricing.SetOverridePrice(country, tier, period, req.Value, discount); err != nil {
				return nil, err
			}
			country.UpdatedAt = time.Now()
			if err := uow.CountryRepository().Update(ctx, country); err != nil {
				return nil, err
			}
			c.publishPriceChanged(ctx, map[string]interface{}{
				"tier_id": tier.Id,
				"country": country.Code,
				"period":  req.Period,
				"value":   req.Value,
			})
			return toTierResponse(tier), nil
		}
		// Universal-mode country: the edit falls through to the master price.
	}

	if err := pricing.SetMasterPrice(tier, period, req.Value, discount); err != nil {
		return nil, err
	}
	tier.UpdatedAt = time.Now()
	if err := uow.PricingTierRepository().Update(ctx, tier); err != nil {
		return nil, err
	}

	c.publishPriceChanged(ctx, map[string]interface{}{
		"tier_id": tier.Id,
		"period":  req.Period,
		"value":   req.Value,
	})
	return toTierResponse(tier), nil
}

func (c *pricingService) AddTierFeature(ctx context.Context, tierId uuid.UUID, req *dto.AddTierFeatureRequest) (*dto.TierResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	tier, err := uow.PricingTierRepository().FindById(ctx, tierId)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, &dto.UnknownEntityError{Entity: "pricing tier", Id: tierId.String()}
	}

	feature, err := uow.FeatureRepository().FindById(ctx, req.FeatureId)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, &dto.UnknownEntityError{Entity: "feature", Id: req.FeatureId.String()}
	}

	for _, fid := range tier.FeatureIds {
		if fid == req.FeatureId {
			return nil, &dto.ConflictError{
				Message: fmt.Sprintf("feature %s already attached to tier %s", req.FeatureId, tier.Name),
			}
		}
	}

	tier.FeatureIds = append(tier.FeatureIds, req.FeatureId)
	tier.UpdatedAt = time.Now()
	if err := uow.PricingTierRepository().Update(ctx, tier); err != nil {
		return nil, err
	}
	return toTierResponse(tier), nil
}

func (c *pricingService) RemoveTierFeature(ctx context.Context, tierId uuid.UUID, featureId uuid.UUID) (*dto.TierResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	tier, err := uow.PricingTierRepository().FindById(ctx, tierId)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, &dto.UnknownEntityError{Entity: "pricing tier", Id: tierId.String()}
	}

	kept := tier.FeatureIds[:0]
	removed := false
	for _, fid := range tier.FeatureIds {
		if fid == featureId {
			removed = true
			continue
		}
		kept = append(kept, fid)
	}
	if !removed {
		return nil, &dto.UnknownEntityError{Entity: "tier feature", Id: featureId.String()}
	}

	tier.FeatureIds = kept
	tier.UpdatedAt = time.Now()
	if err := uow.PricingTierRepository().Update(ctx, tier); err != nil {
		return nil, err
	}
	return toTierResponse(tier), nil
}

func (c *pricingService) UpsertCountry(ctx context.Context, req *dto.UpsertCountryRequest) (*dto.CountryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	code := strings.ToUpper(req.Code)

	country, err := uow.CountryRepository().FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if country == nil {
		country = &entity.CountryConfig{
			Code:      code,
			Overrides: map[string]entity.PriceOverride{},
			CreatedAt: now,
		}
		country.Name = req.Name
		country.Currency = req.Currency
		country.Symbol = req.Symbol
		country.FxRate = req.FxRate
		country.Mode = entity.PricingMode(req.Mode)
		country.UpdatedAt = now
		if err := uow.CountryRepository().Create(ctx, country); err != nil {
			return nil, err
		}
		return toCountryResponse(country), nil
	}

	country.Name = req.Name
	country.Currency = req.Currency
	country.Symbol = req.Symbol
	country.FxRate = req.FxRate
	// Switching back to universal does NOT drop recorded overrides; they are
	// simply ignored until the country is localized again.
	country.Mode = entity.PricingMode(req.Mode)
	country.UpdatedAt = now
	if err := uow.CountryRepository().Update(ctx, country); err != nil {
		return nil, err
	}
	return toCountryResponse(country), nil
}

func (c *pricingService) ListCountries(ctx context.Context) ([]*dto.CountryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	countries, err := uow.CountryRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CountryResponse, 0, len(countries))
	for _, country := range countries {
		responses = append(responses, toCountryResponse(country))
	}
	return responses, nil
}

func (c *pricingService) DeleteCountry(ctx context.Context, code string) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	code = strings.ToUpper(code)
	country, err := uow.CountryRepository().FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if country == nil {
		return &dto.UnknownEntityError{Entity: "country", Id: code}
	}
	return uow.CountryRepository().Delete(ctx, code)
}

// CountryPricing assembles the localized price matrix for one country: every
// tier resolved through its override or the FX conversion.
func (c *pricingService) CountryPricing(ctx context.Context, code string) (*dto.CountryPricingResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	country, err := uow.CountryRepository().FindByCode(ctx, strings.ToUpper(code))
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, &dto.UnknownEntityError{Entity: "country", Id: code}
	}

	tiers, err := uow.PricingTierRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := &dto.CountryPricingResponse{
		Country: *toCountryResponse(country),
		Tiers:   make([]*dto.TierPriceResponse, 0, len(tiers)),
	}

	for _, tier := range tiers {
		_, overridden := country.OverrideFor(tier.Id)
		overridden = overridden && country.Mode == entity.PricingModeLocalized

		source := "fx"
		if overridden {
			source = "override"
		}

		response.Tiers = append(response.Tiers, &dto.TierPriceResponse{
			TierId:           tier.Id,
			TierName:         tier.Name,
			Monthly:          pricing.DisplayPrice(tier, country, entity.BillingPeriodMonthly),
			Yearly:           pricing.DisplayPrice(tier, country, entity.BillingPeriodYearly),
			Overridden:       overridden,
			MasterMonthly:    pricing.MasterEquivalent(tier, country, entity.BillingPeriodMonthly),
			MasterYearly:     pricing.MasterEquivalent(tier, country, entity.BillingPeriodYearly),
			CurrencySymbol:   country.Symbol,
			CurrencyCode:     country.Currency,
			ConversionSource: source,
		})
	}

	return response, nil
}

func toTierResponse(t *entity.PricingTier) *dto.TierResponse {
	return &dto.TierResponse{
		Id:           t.Id,
		Name:         t.Name,
		Description:  t.Description,
		MonthlyPrice: t.MonthlyPrice,
		YearlyPrice:  t.YearlyPrice,
		FeatureIds:   t.FeatureIds,
		SortOrder:    t.SortOrder,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toCountryResponse(c *entity.CountryConfig) *dto.CountryResponse {
	return &dto.CountryResponse{
		Code:      c.Code,
		Name:      c.Name,
		Currency:  c.Currency,
		Symbol:    c.Symbol,
		FxRate:    c.FxRate,
		Mode:      string(c.Mode),
		Overrides: c.Overrides,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
