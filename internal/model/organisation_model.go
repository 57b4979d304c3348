// FILE: internal/model/organisation_model.go
// GORM model for the organisation intelligence profile (single-row document)
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Organisation holds the workspace's own company profile. The structured
// sub-documents are jsonb; they are edited whole from the strategy view and
// never queried field-by-field.
type Organisation struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	PrimaryDomain string    `gorm:"type:varchar(255)"`
	Industry      string    `gorm:"type:varchar(100)"`
	Summary       string    `gorm:"type:text"`

	DigitalPresence datatypes.JSON `gorm:"type:jsonb"`
	Strategy        datatypes.JSON `gorm:"type:jsonb"`
	BusinessModel   datatypes.JSON `gorm:"type:jsonb"`
	ProductStrategy datatypes.JSON `gorm:"type:jsonb"`
	Competitive     datatypes.JSON `gorm:"type:jsonb"`
	Delivery        datatypes.JSON `gorm:"type:jsonb"`
	Compliance      datatypes.JSON `gorm:"type:jsonb"`
	Governance      datatypes.JSON `gorm:"type:jsonb"`

	Signals datatypes.JSON `gorm:"type:jsonb"`
	News    datatypes.JSON `gorm:"type:jsonb"`

	LastEnrichedAt *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Organisation) TableName() string {
	return "organisations"
}
