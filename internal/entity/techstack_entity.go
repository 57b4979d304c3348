// FILE: internal/entity/techstack_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type TechComponentStatus string

const (
	TechStatusApproved   TechComponentStatus = "approved"
	TechStatusDeprecated TechComponentStatus = "deprecated"
	TechStatusBlocked    TechComponentStatus = "blocked"
	TechStatusRequired   TechComponentStatus = "required"
)

type TechStackComponent struct {
	Id       string              `json:"id"`
	Category string              `json:"category"`
	ToolName string              `json:"toolName"`
	Version  string              `json:"version"`
	Status   TechComponentStatus `json:"status"`
	IsCustom bool                `json:"isCustom,omitempty"`
}

// TechStackProfile is the approved-technology registry for the workspace.
type TechStackProfile struct {
	Id         uuid.UUID
	Name       string
	Version    string
	Components []TechStackComponent
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
