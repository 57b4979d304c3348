package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Insight is a captured piece of customer feedback.
type Insight struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Customer       string         `gorm:"type:varchar(100)"`
	Company        string         `gorm:"type:varchar(100)"`
	Content        string         `gorm:"type:text;not null"`
	Sentiment      string         `gorm:"type:varchar(10);not null;default:'neutral'"`
	Date           time.Time      `gorm:"index"`
	Tags           datatypes.JSON `gorm:"type:jsonb"`
	LinkedFeatures datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (Insight) TableName() string {
	return "insights"
}
