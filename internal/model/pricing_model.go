// FILE: internal/model/pricing_model.go
// GORM models for pricing tiers and per-country pricing configuration
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PricingTier stores the USD master prices. FeatureIds is a jsonb array of
// weak references into features; membership rules are enforced in the service.
type PricingTier struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string         `gorm:"type:varchar(100);not null"`
	Description  string         `gorm:"type:text"`
	MonthlyPrice float64        `gorm:"not null;default:0"`
	YearlyPrice  float64        `gorm:"not null;default:0"`
	FeatureIds   datatypes.JSON `gorm:"type:jsonb"`
	SortOrder    int            `gorm:"default:0"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

func (PricingTier) TableName() string {
	return "pricing_tiers"
}

// CountryConfig keys on the country code. Overrides is a jsonb map of tier id
// to local-currency price pair; rows persist across mode switches.
type CountryConfig struct {
	Code      string         `gorm:"type:varchar(5);primaryKey"`
	Name      string         `gorm:"type:varchar(100);not null"`
	Currency  string         `gorm:"type:varchar(10);not null"`
	Symbol    string         `gorm:"type:varchar(5)"`
	FxRate    float64        `gorm:"not null;default:1"`
	Mode      string         `gorm:"type:varchar(20);not null;default:'universal'"`
	Overrides datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (CountryConfig) TableName() string {
	return "country_configs"
}
