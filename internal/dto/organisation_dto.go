// FILE: internal/dto/organisation_dto.go
// DTOs for the organisation intelligence profile
package dto

import (
	"time"

	"pm-intel-be/internal/entity"

	"github.com/google/uuid"
)

type CreateOrganisationRequest struct {
	Name          string `json:"name" validate:"required"`
	PrimaryDomain string `json:"primaryDomain,omitempty"`
	Industry      string `json:"industry,omitempty"`
	Summary       string `json:"summary,omitempty"`
}

// UpdateOrganisationRequest patches the profile. Sub-documents are replaced
// whole when present; the strategy view edits one section at a time.
type UpdateOrganisationRequest struct {
	Name          *string `json:"name,omitempty"`
	PrimaryDomain *string `json:"primaryDomain,omitempty"`
	Industry      *string `json:"industry,omitempty"`
	Summary       *string `json:"summary,omitempty"`

	DigitalPresence *entity.DigitalPresence    `json:"digitalPresence,omitempty"`
	Strategy        *entity.CompanyStrategy    `json:"strategy,omitempty"`
	BusinessModel   *entity.BusinessModel      `json:"businessModel,omitempty"`
	ProductStrategy *entity.ProductStrategy    `json:"productStrategy,omitempty"`
	Competitive     *entity.CompetitiveProfile `json:"competitive,omitempty"`
	Delivery        *entity.DeliveryProfile    `json:"delivery,omitempty"`
	Compliance      *entity.ComplianceProfile  `json:"compliance,omitempty"`
	Governance      *entity.GovernanceProfile  `json:"governance,omitempty"`
}

type OrganisationResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	PrimaryDomain string    `json:"primaryDomain"`
	Industry      string    `json:"industry"`
	Summary       string    `json:"summary"`

	DigitalPresence entity.DigitalPresence    `json:"digitalPresence"`
	Strategy        entity.CompanyStrategy    `json:"strategy"`
	BusinessModel   entity.BusinessModel      `json:"businessModel"`
	ProductStrategy entity.ProductStrategy    `json:"productStrategy"`
	Competitive     entity.CompetitiveProfile `json:"competitive"`
	Delivery        entity.DeliveryProfile    `json:"delivery"`
	Compliance      entity.ComplianceProfile  `json:"compliance"`
	Governance      entity.GovernanceProfile  `json:"governance"`

	Signals []entity.OrganisationSignal `json:"signals,omitempty"`
	News    []entity.OrganisationNews   `json:"news,omitempty"`

	LastEnrichedAt *time.Time `json:"lastEnrichedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
