// FILE: internal/entity/customer_entity.go
// Customer intelligence entities (segments, pain points, JTBD)
package entity

import (
	"time"

	"github.com/google/uuid"
)

type SegmentType string

const (
	SegmentTypeCore         SegmentType = "core"
	SegmentTypeGrowth       SegmentType = "growth"
	SegmentTypeExperimental SegmentType = "experimental"
	SegmentTypeLegacy       SegmentType = "legacy"
)

// FeatureUsageMetric references a feature by id (weak reference).
type FeatureUsageMetric struct {
	FeatureId           string  `json:"featureId"`
	FeatureTitle        string  `json:"featureTitle"`
	UsagePercent        float64 `json:"usagePercent"`
	AvgDailyActiveUsers float64 `json:"avgDailyActiveUsers,omitempty"`
	RetentionRate       float64 `json:"retentionRate,omitempty"`
}

type Firmographics struct {
	Industry    string `json:"industry"`
	SubIndustry string `json:"subIndustry,omitempty"`
	CompanySize string `json:"companySize"`
	RevenueBand string `json:"revenueBand"`
	Geography   string `json:"geography"`
	GrowthStage string `json:"growthStage"`
}

type BuyingRoles struct {
	EconomicBuyer     string `json:"economicBuyer"`
	TechnicalBuyer    string `json:"technicalBuyer"`
	Champion          string `json:"champion"`
	EndUser           string `json:"endUser"`
	StakeholdersCount int    `json:"stakeholdersCount"`
}

type JtbdDrivers struct {
	Emotional  string `json:"emotional"`
	Functional string `json:"functional"`
	Social     string `json:"social"`
}

type SegmentJtbd struct {
	Primary   string      `json:"primary"`
	Secondary []string    `json:"secondary"`
	Drivers   JtbdDrivers `json:"drivers"`
}

type SegmentPainPoints struct {
	TopProblems    []string `json:"topProblems"`
	Workarounds    string   `json:"workarounds"`
	CostOfInaction string   `json:"costOfInaction"`
	Urgency        string   `json:"urgency"` // low, medium, high, critical
}

type SegmentStack struct {
	CurrentTools         []string `json:"currentTools"`
	IntegrationsExpected []string `json:"integrationsExpected"`
	DataMaturity         string   `json:"dataMaturity"`
}

type SegmentPricing struct {
	BudgetRange string `json:"budgetRange"`
	Preference  string `json:"preference"`
	Sensitivity string `json:"sensitivity"`
}

// SegmentScores are 1-5 ratings.
type SegmentScores struct {
	RevenuePotential    float64 `json:"revenuePotential"`
	GrowthPotential     float64 `json:"growthPotential"`
	StrategicImportance float64 `json:"strategicImportance"`
	EaseOfAcquisition   float64 `json:"easeOfAcquisition"`
	ProductFit          float64 `json:"productFit"`
}

type CustomerSegment struct {
	Id          uuid.UUID
	Name        string
	Description string
	Type        SegmentType

	FeatureUsage         []FeatureUsageMetric
	TotalSegmentUsers    int
	AvgRevenuePerAccount float64

	Firmographics Firmographics
	BuyingRoles   BuyingRoles
	Jtbd          SegmentJtbd
	PainPoints    SegmentPainPoints
	Stack         SegmentStack
	Pricing       SegmentPricing
	Scores        SegmentScores

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PainPoint struct {
	Id          uuid.UUID
	Title       string
	Description string
	Severity    string // low, medium, high, critical
	SignalCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type JTBD struct {
	Id        uuid.UUID
	Job       string
	Context   string
	Outcome   string
	Category  string // functional, emotional, social
	CreatedAt time.Time
	UpdatedAt time.Time
}
