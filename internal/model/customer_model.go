// FILE: internal/model/customer_model.go
// GORM models for customer intelligence (segments, pain points, JTBD)
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CustomerSegment struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Type        string    `gorm:"type:varchar(20);not null;default:'core'"`

	FeatureUsage         datatypes.JSON `gorm:"type:jsonb"`
	TotalSegmentUsers    int            `gorm:"default:0"`
	AvgRevenuePerAccount float64        `gorm:"default:0"`

	Firmographics datatypes.JSON `gorm:"type:jsonb"`
	BuyingRoles   datatypes.JSON `gorm:"type:jsonb"`
	Jtbd          datatypes.JSON `gorm:"type:jsonb"`
	PainPoints    datatypes.JSON `gorm:"type:jsonb"`
	Stack         datatypes.JSON `gorm:"type:jsonb"`
	Pricing       datatypes.JSON `gorm:"type:jsonb"`
	Scores        datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (CustomerSegment) TableName() string {
	return "customer_segments"
}

type PainPoint struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Severity    string    `gorm:"type:varchar(10);not null;default:'medium'"`
	SignalCount int       `gorm:"default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (PainPoint) TableName() string {
	return "pain_points"
}

type JTBD struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Job       string    `gorm:"type:text;not null"`
	Context   string    `gorm:"type:text"`
	Outcome   string    `gorm:"type:text"`
	Category  string    `gorm:"type:varchar(20);not null;default:'functional'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (JTBD) TableName() string {
	return "jtbds"
}
