// FILE: internal/model/feature_model.go
// GORM model for the features (roadmap work items) table
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Feature persists a roadmap work item. Scored dimensions and the AI-generated
// documents live in jsonb columns; the derived scores are plain columns so the
// prioritization list can sort on them in SQL.
type Feature struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(20);not null;default:'idea';index"`
	Priority      string    `gorm:"type:varchar(20);not null;default:'medium'"`
	StrategicType string    `gorm:"type:varchar(20);not null;default:'core'"`

	Dimensions    datatypes.JSON `gorm:"type:jsonb;not null"`
	WeightedValue float64        `gorm:"not null;default:0"`
	FinalScore    float64        `gorm:"not null;default:0;index"`

	Owner       string `gorm:"type:varchar(100)"`
	Release     string `gorm:"type:varchar(50);index"`
	ProductArea string `gorm:"type:varchar(100)"`

	DeliveryLinks   datatypes.JSON `gorm:"type:jsonb"`
	CustomerImpacts datatypes.JSON `gorm:"type:jsonb"`
	LinkedInsights  datatypes.JSON `gorm:"type:jsonb"`

	Prd             datatypes.JSON `gorm:"type:jsonb"`
	PredictedImpact datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Feature) TableName() string {
	return "features"
}
