// FILE: internal/entity/organisation_entity.go
// Organisation intelligence profile document
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Link struct {
	Title string `json:"title"`
	Url   string `json:"url"`
}

type DigitalPresence struct {
	Website    string `json:"website"`
	Linkedin   string `json:"linkedin,omitempty"`
	Youtube    string `json:"youtube,omitempty"`
	Twitter    string `json:"twitter,omitempty"`
	ExtraLinks []Link `json:"extraLinks"`
}

type CompanyStrategy struct {
	Vision            string   `json:"vision"`
	Mission           string   `json:"mission"`
	SuccessDefinition string   `json:"successDefinition"`
	Priorities        []string `json:"priorities"`
	StrategicBets     string   `json:"strategicBets"`
}

type BusinessModel struct {
	RevenueStreams         string `json:"revenueStreams"`
	AcquisitionVsRetention string `json:"acquisitionVsRetention"`
	ArrTarget              string `json:"arrTarget"`
	CacLtv                 string `json:"cacLtv"`
}

type ProductStrategy struct {
	Positioning     string `json:"positioning"`
	Differentiators string `json:"differentiators"`
	NonNegotiables  string `json:"nonNegotiables"`
	StrategicFocus  string `json:"strategicFocus"`
}

type CompetitiveProfile struct {
	TopCompetitors []string `json:"topCompetitors"`
	Weaknesses     string   `json:"weaknesses"`
	Strengths      string   `json:"strengths"`
	Threats        string   `json:"threats"`
}

type DeliveryProfile struct {
	Constraints        string `json:"constraints"`
	TechDebtPriorities string `json:"techDebtPriorities"`
	CapacityAllocation string `json:"capacityAllocation"`
}

type ComplianceProfile struct {
	Regulatory         string `json:"regulatory"`
	SecurityPriorities string `json:"securityPriorities"`
}

type GovernanceProfile struct {
	DecisionMakers  string `json:"decisionMakers"`
	ReviewFrequency string `json:"reviewFrequency"`
	ChangeTriggers  string `json:"changeTriggers"`
}

type OrganisationSignal struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

type OrganisationNews struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Url      string `json:"url"`
}

type Organisation struct {
	Id            uuid.UUID
	Name          string
	PrimaryDomain string
	Industry      string
	Summary       string

	DigitalPresence DigitalPresence
	Strategy        CompanyStrategy
	BusinessModel   BusinessModel
	ProductStrategy ProductStrategy
	Competitive     CompetitiveProfile
	Delivery        DeliveryProfile
	Compliance      ComplianceProfile
	Governance      GovernanceProfile

	Signals []OrganisationSignal
	News    []OrganisationNews

	LastEnrichedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
