package enrichment

import (
	"context"
	"errors"
	"testing"

	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/pkg/logger"
	"pm-intel-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	response string
	err      error
	calls    int
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

var _ logger.ILogger = nopLogger{}

func TestGeneratePrdTrimsMarkdownFence(t *testing.T) {
	primary := &stubProvider{response: "```json\n{\"problemStatement\": \"ps\", \"vision\": \"v\", \"targetUsers\": [\"u\"], \"successMetrics\": [\"m\"], \"requirements\": [\"r\"]}\n```"}
	engine := NewEngine(primary, nil, nil, nopLogger{})

	prd, source, err := engine.GeneratePrd(context.Background(), "Exports", "CSV exports")
	require.NoError(t, err)
	assert.Equal(t, SourceGemini, source)
	assert.Equal(t, "ps", prd.ProblemStatement)
	assert.Equal(t, []string{"u"}, prd.TargetUsers)
}

func TestFallbackProviderUsedWhenPrimaryFails(t *testing.T) {
	primary := &stubProvider{err: errors.New("quota exceeded")}
	fallback := &stubProvider{response: `{"problemStatement": "ps", "vision": "v", "targetUsers": [], "successMetrics": [], "requirements": []}`}
	engine := NewEngine(primary, fallback, nil, nopLogger{})

	_, source, err := engine.GeneratePrd(context.Background(), "Exports", "")
	require.NoError(t, err)
	assert.Equal(t, SourceOpenAI, source)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestPlaceholderWhenAllProvidersFail(t *testing.T) {
	primary := &stubProvider{err: errors.New("down")}
	fallback := &stubProvider{err: errors.New("also down")}
	engine := NewEngine(primary, fallback, nil, nopLogger{})

	prd, source, err := engine.GeneratePrd(context.Background(), "Exports", "")
	require.NoError(t, err)
	assert.Equal(t, SourcePlaceholder, source)
	assert.NotEmpty(t, prd.ProblemStatement)
}

func TestPlaceholderWhenDisabled(t *testing.T) {
	engine := NewEngine(nil, nil, nil, nopLogger{})

	analysis, source, err := engine.AnalyseInsights(context.Background(), []InsightInput{
		{Content: "too slow", Sentiment: "negative", Tags: []string{"performance"}},
	})
	require.NoError(t, err)
	assert.Equal(t, SourcePlaceholder, source)
	assert.Contains(t, analysis.KeyThemes, "performance")
}

func TestEnrichOrganisationRefusesWhenDisabled(t *testing.T) {
	// Organisation research has no placeholder on purpose: a fabricated
	// company profile is worse than an explicit error.
	engine := NewEngine(nil, nil, nil, nopLogger{})

	_, _, err := engine.EnrichOrganisation(context.Background(), "Acme", "acme.io")
	var unavailable *dto.EnrichmentUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "organisation", unavailable.Kind)
}

func TestEnrichOrganisationPropagatesProviderError(t *testing.T) {
	primary := &stubProvider{err: errors.New("down")}
	engine := NewEngine(primary, nil, nil, nopLogger{})

	_, _, err := engine.EnrichOrganisation(context.Background(), "Acme", "acme.io")
	assert.Error(t, err)
}

func TestPlaceholderRevenueImpactsCoverEveryFeature(t *testing.T) {
	engine := NewEngine(nil, nil, nil, nopLogger{})

	impacts, source, err := engine.PredictRevenueImpact(context.Background(), []FeatureInput{
		{Id: "a", Title: "A"},
		{Id: "b", Title: "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, SourcePlaceholder, source)
	require.Len(t, impacts, 2)
	assert.Equal(t, "a", impacts[0].FeatureId)
	assert.Equal(t, 0.0, impacts[0].Impact.Confidence)
}

func TestTrimJSONFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  {\"a\":1}  ", "{\"a\":1}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(trimJSONFence([]byte(tt.in))))
	}
}
