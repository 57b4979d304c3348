package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkspaceSettings is the single-row workspace configuration.
type WorkspaceSettings struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Weights        datatypes.JSON `gorm:"type:jsonb;not null"`
	YearlyDiscount float64        `gorm:"not null;default:0.2"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (WorkspaceSettings) TableName() string {
	return "workspace_settings"
}
