package mapper

import (
	"testing"
	"time"

	"pm-intel-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureMapperRoundTrip(t *testing.T) {
	m := NewFeatureMapper()
	now := time.Now().Truncate(time.Second)

	f := &entity.Feature{
		Id:            uuid.New(),
		Title:         "SSO with SAML",
		Description:   "Enterprise single sign-on",
		Status:        entity.FeatureStatusInProgress,
		Priority:      entity.PriorityCritical,
		StrategicType: entity.StrategicTypeExpansion,
		Dimensions: entity.Dimensions{
			CustomerValue: 9, Competitive: 8, Financial: 8,
			Strategic: 9, CaseStudy: 6, Effort: 5, Confidence: 0.9,
		},
		WeightedValue: 8.45,
		FinalScore:    1.69,
		Release:       "Q3 2024",
		DeliveryLinks: []entity.DeliveryLink{
			{System: "jira", Id: "PLAT-42", Url: "https://jira.example.com/PLAT-42"},
		},
		Prd: &entity.FeaturePRD{
			ProblemStatement: "Security reviews block enterprise rollout",
			Requirements:     []string{"SAML 2.0", "SCIM provisioning"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	got := m.ToEntity(m.ToModel(f))
	require.NotNil(t, got)

	assert.Equal(t, f.Id, got.Id)
	assert.Equal(t, f.Status, got.Status)
	assert.Equal(t, f.Dimensions, got.Dimensions)
	assert.Equal(t, f.DeliveryLinks, got.DeliveryLinks)
	require.NotNil(t, got.Prd)
	assert.Equal(t, *f.Prd, *got.Prd)
	assert.Nil(t, got.PredictedImpact)
}

func TestFeatureMapperNilDocumentsStayNil(t *testing.T) {
	m := NewFeatureMapper()

	f := &entity.Feature{
		Id:     uuid.New(),
		Title:  "Bare feature",
		Status: entity.FeatureStatusIdea,
	}

	got := m.ToEntity(m.ToModel(f))
	require.NotNil(t, got)
	assert.Nil(t, got.Prd)
	assert.Nil(t, got.PredictedImpact)
	assert.Nil(t, got.DeliveryLinks)
}

func TestFeatureMapperNilSafe(t *testing.T) {
	m := NewFeatureMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}
