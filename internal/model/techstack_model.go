package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TechStackProfile is the approved-technology registry (single row per
// workspace in practice).
type TechStackProfile struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string         `gorm:"type:varchar(100);not null"`
	Version    string         `gorm:"type:varchar(20)"`
	Components datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (TechStackProfile) TableName() string {
	return "tech_stack_profiles"
}
