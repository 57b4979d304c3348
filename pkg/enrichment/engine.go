// Package enrichment is the AI boundary of the dashboard. Every operation
// returns structured data plus the source that produced it: the primary
// provider, the fallback provider, or a deterministic placeholder. Only
// organisation research refuses to run without a provider; everything else
// degrades silently so the dashboard keeps working offline.
package enrichment

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"pm-intel-be/internal/constant"
	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/pkg/logger"
	"pm-intel-be/pkg/llm"

	"github.com/redis/go-redis/v9"
)

const (
	SourceGemini      = "gemini"
	SourceOpenAI      = "openai"
	SourcePlaceholder = "placeholder"

	cacheTTL = 15 * time.Minute
)

// OrganisationProfile is the research result applied onto an organisation.
type OrganisationProfile struct {
	Summary         string                      `json:"summary"`
	Industry        string                      `json:"industry"`
	Strategy        entity.CompanyStrategy      `json:"strategy"`
	BusinessModel   entity.BusinessModel        `json:"businessModel"`
	ProductStrategy entity.ProductStrategy      `json:"productStrategy"`
	Competitive     entity.CompetitiveProfile   `json:"competitive"`
	Signals         []entity.OrganisationSignal `json:"signals"`
	News            []entity.OrganisationNews   `json:"news"`
}

// SegmentProfile is the qualitative part of a customer segment filled by AI.
type SegmentProfile struct {
	Firmographics entity.Firmographics     `json:"firmographics"`
	BuyingRoles   entity.BuyingRoles       `json:"buyingRoles"`
	Jtbd          entity.SegmentJtbd       `json:"jtbd"`
	PainPoints    entity.SegmentPainPoints `json:"painPoints"`
	Stack         entity.SegmentStack      `json:"stack"`
	Pricing       entity.SegmentPricing    `json:"pricing"`
	Scores        entity.SegmentScores     `json:"scores"`
}

// InsightInput is the slice of the insight board handed to analysis.
type InsightInput struct {
	Content   string   `json:"content"`
	Sentiment string   `json:"sentiment"`
	Tags      []string `json:"tags,omitempty"`
}

// FeatureInput identifies a feature for revenue prediction.
type FeatureInput struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Engine struct {
	primary  llm.LLMProvider // nil when not configured
	fallback llm.LLMProvider
	cache    *redis.Client // optional response cache
	log      logger.ILogger
}

func NewEngine(primary, fallback llm.LLMProvider, cache *redis.Client, log logger.ILogger) *Engine {
	return &Engine{
		primary:  primary,
		fallback: fallback,
		cache:    cache,
		log:      log,
	}
}

// Enabled reports whether at least one provider is configured.
func (e *Engine) Enabled() bool {
	return e.primary != nil || e.fallback != nil
}

// AnalyseInsights summarises the feedback board into themes and suggestions.
func (e *Engine) AnalyseInsights(ctx context.Context, insights []InsightInput) (*entity.AIAnalysis, string, error) {
	var out entity.AIAnalysis
	prompt := fmt.Sprintf(constant.AnalyseInsightsPrompt, mustJSON(insights))
	source, err := e.generate(ctx, "analysis", prompt, &out)
	if err != nil {
		e.log.Warn("enrichment", "insight analysis fell back to placeholder", map[string]interface{}{"error": err.Error()})
		return placeholderAnalysis(insights), SourcePlaceholder, nil
	}
	return &out, source, nil
}

// GeneratePrd drafts a requirements document for one feature.
func (e *Engine) GeneratePrd(ctx context.Context, title, description string) (*entity.FeaturePRD, string, error) {
	var out entity.FeaturePRD
	prompt := fmt.Sprintf(constant.GeneratePrdPrompt, title, description)
	source, err := e.generate(ctx, "prd", prompt, &out)
	if err != nil {
		e.log.Warn("enrichment", "prd generation fell back to placeholder", map[string]interface{}{"feature": title, "error": err.Error()})
		return placeholderPrd(title), SourcePlaceholder, nil
	}
	return &out, source, nil
}

// PredictRevenueImpact estimates revenue effects for the given features.
func (e *Engine) PredictRevenueImpact(ctx context.Context, features []FeatureInput) ([]entity.RevenueImpact, string, error) {
	var out []entity.RevenueImpact
	prompt := fmt.Sprintf(constant.PredictRevenueImpactPrompt, mustJSON(features))
	source, err := e.generate(ctx, "revenue-impact", prompt, &out)
	if err != nil {
		e.log.Warn("enrichment", "revenue prediction fell back to placeholder", map[string]interface{}{"error": err.Error()})
		return placeholderRevenueImpacts(features), SourcePlaceholder, nil
	}
	return out, source, nil
}

// EnrichSegment fills in the qualitative profile of a customer segment.
func (e *Engine) EnrichSegment(ctx context.Context, name, description string) (*SegmentProfile, string, error) {
	var out SegmentProfile
	prompt := fmt.Sprintf(constant.EnrichSegmentPrompt, name, description)
	source, err := e.generate(ctx, "segments", prompt, &out)
	if err != nil {
		e.log.Warn("enrichment", "segment enrichment fell back to placeholder", map[string]interface{}{"segment": name, "error": err.Error()})
		return placeholderSegmentProfile(name), SourcePlaceholder, nil
	}
	return &out, source, nil
}

// GenerateVibePrompts produces layered build prompts from the product context.
func (e *Engine) GenerateVibePrompts(ctx context.Context, productContext string) (*entity.VibePromptSet, string, error) {
	var out entity.VibePromptSet
	prompt := fmt.Sprintf(constant.GenerateVibePromptsPrompt, productContext)
	source, err := e.generate(ctx, "vibe-prompts", prompt, &out)
	if err != nil {
		e.log.Warn("enrichment", "vibe prompt generation fell back to placeholder", map[string]interface{}{"error": err.Error()})
		return placeholderVibePrompts(productContext), SourcePlaceholder, nil
	}
	return &out, source, nil
}

// EnrichOrganisation researches a company. Unlike the other operations it has
// no placeholder: without a provider the caller gets a 503-class error, so the
// UI can distinguish "AI off" from "AI guessed".
func (e *Engine) EnrichOrganisation(ctx context.Context, name, domain string) (*OrganisationProfile, string, error) {
	if !e.Enabled() {
		return nil, "", &dto.EnrichmentUnavailableError{Kind: "organisation"}
	}
	var out OrganisationProfile
	prompt := fmt.Sprintf(constant.EnrichOrganisationPrompt, name, domain)
	source, err := e.generate(ctx, "organisation", prompt, &out)
	if err != nil {
		return nil, "", err
	}
	return &out, source, nil
}

// generate runs the provider chain: cache, primary, fallback. The response is
// cleaned of markdown fences and unmarshalled into out.
func (e *Engine) generate(ctx context.Context, kind, prompt string, out interface{}) (string, error) {
	if !e.Enabled() {
		return "", &dto.EnrichmentUnavailableError{Kind: kind}
	}

	cacheKey := fmt.Sprintf("enrichment:%s:%x", kind, sha256.Sum256([]byte(prompt)))
	if e.cache != nil {
		if cached, err := e.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var envelope cachedResult
			if json.Unmarshal(cached, &envelope) == nil && json.Unmarshal(envelope.Body, out) == nil {
				return envelope.Source, nil
			}
		}
	}

	body, source, err := e.callProviders(ctx, kind, prompt)
	if err != nil {
		return "", err
	}

	cleaned := trimJSONFence(body)
	if err := json.Unmarshal(cleaned, out); err != nil {
		return "", fmt.Errorf("parse %s response: %w | raw: %s", kind, err, string(cleaned))
	}

	if e.cache != nil {
		envelope, _ := json.Marshal(cachedResult{Source: source, Body: cleaned})
		// Cache failures are invisible; the next request just pays again.
		_ = e.cache.Set(ctx, cacheKey, envelope, cacheTTL).Err()
	}
	return source, nil
}

type cachedResult struct {
	Source string          `json:"source"`
	Body   json.RawMessage `json:"body"`
}

func (e *Engine) callProviders(ctx context.Context, kind, prompt string) ([]byte, string, error) {
	if e.primary != nil {
		text, err := e.primary.Generate(ctx, prompt, llm.WithTemperature(0.4))
		if err == nil {
			return []byte(text), SourceGemini, nil
		}
		e.log.Warn("enrichment", "primary provider failed, trying fallback", map[string]interface{}{"kind": kind, "error": err.Error()})
	}
	if e.fallback != nil {
		text, err := e.fallback.Generate(ctx, prompt, llm.WithTemperature(0.4))
		if err == nil {
			return []byte(text), SourceOpenAI, nil
		}
		return nil, "", fmt.Errorf("all providers failed for %s: %w", kind, err)
	}
	return nil, "", fmt.Errorf("no provider succeeded for %s", kind)
}

// trimJSONFence strips the markdown code fences models wrap JSON in.
func trimJSONFence(body []byte) []byte {
	body = bytes.TrimSpace(body)
	body = bytes.TrimPrefix(body, []byte("```json"))
	body = bytes.TrimPrefix(body, []byte("```"))
	body = bytes.TrimSuffix(body, []byte("```"))
	return bytes.TrimSpace(body)
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
