package unitofwork

import (
	"context"
	"fmt"

	"pm-intel-be/internal/repository/contract"
	"pm-intel-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // the active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) FeatureRepository() contract.FeatureRepository {
	return implementation.NewFeatureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PricingTierRepository() contract.PricingTierRepository {
	return implementation.NewPricingTierRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CountryRepository() contract.CountryRepository {
	return implementation.NewCountryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UserIdeaRepository() contract.UserIdeaRepository {
	return implementation.NewUserIdeaRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InsightRepository() contract.InsightRepository {
	return implementation.NewInsightRepository(u.getDB())
}

func (u *UnitOfWorkImpl) OrganisationRepository() contract.OrganisationRepository {
	return implementation.NewOrganisationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CustomerSegmentRepository() contract.CustomerSegmentRepository {
	return implementation.NewCustomerSegmentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PainPointRepository() contract.PainPointRepository {
	return implementation.NewPainPointRepository(u.getDB())
}

func (u *UnitOfWorkImpl) JTBDRepository() contract.JTBDRepository {
	return implementation.NewJTBDRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TechStackRepository() contract.TechStackRepository {
	return implementation.NewTechStackRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SettingsRepository() contract.SettingsRepository {
	return implementation.NewSettingsRepository(u.getDB())
}
