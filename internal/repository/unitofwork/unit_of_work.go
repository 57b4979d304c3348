package unitofwork

import (
	"context"

	"pm-intel-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FeatureRepository() contract.FeatureRepository
	PricingTierRepository() contract.PricingTierRepository
	CountryRepository() contract.CountryRepository
	UserIdeaRepository() contract.UserIdeaRepository
	InsightRepository() contract.InsightRepository

	OrganisationRepository() contract.OrganisationRepository
	CustomerSegmentRepository() contract.CustomerSegmentRepository
	PainPointRepository() contract.PainPointRepository
	JTBDRepository() contract.JTBDRepository
	TechStackRepository() contract.TechStackRepository
	SettingsRepository() contract.SettingsRepository
}
