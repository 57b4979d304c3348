package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleModel  = "model"
	ChatMessageRoleSystem = "system"

	// AnalyseInsightsPrompt summarises the feedback board. %s is the
	// serialized insight list.
	AnalyseInsightsPrompt = `
You are a product analyst. Analyse the following customer feedback insights.

Insights:
%s

Instructions:
1. Summarise the overall picture in 2-3 sentences.
2. Extract the recurring themes.
3. Propose up to 3 concrete product features that would address the feedback, each with a priority (low, medium, high, critical).
4. Output MUST be valid JSON matching exactly:
{"summary": "...", "keyThemes": ["..."], "suggestedFeatures": [{"title": "...", "description": "...", "priority": "medium"}]}
No other text.
`

	// GeneratePrdPrompt drafts a requirements document for one feature.
	// %s placeholders: feature title, feature description.
	GeneratePrdPrompt = `
You are a senior product manager. Draft a concise PRD for this feature.

Feature: %s
Description: %s

Output MUST be valid JSON matching exactly:
{"problemStatement": "...", "vision": "...", "targetUsers": ["..."], "successMetrics": ["..."], "requirements": ["..."]}
No other text.
`

	// PredictRevenueImpactPrompt estimates revenue effects for a feature list.
	// %s is the serialized feature list (id, title, description).
	PredictRevenueImpactPrompt = `
You are a revenue analyst for a B2B SaaS product. Estimate the revenue impact of shipping each feature below.

Features:
%s

For every feature return: arrDelta (annual recurring revenue delta in USD), retentionLift (percentage points), expansionProb (percentage), confidence (0 to 1).
Output MUST be valid JSON matching exactly:
[{"featureId": "...", "impact": {"arrDelta": 0, "retentionLift": 0, "expansionProb": 0, "confidence": 0}}]
No other text.
`

	// EnrichSegmentPrompt fills in the qualitative profile of a customer
	// segment. %s placeholders: segment name, segment description.
	EnrichSegmentPrompt = `
You are a customer research analyst. Build a detailed profile for this customer segment.

Segment: %s
Description: %s

Output MUST be valid JSON matching exactly:
{"firmographics": {"industry": "...", "companySize": "...", "revenueBand": "...", "geography": "...", "growthStage": "..."},
 "buyingRoles": {"economicBuyer": "...", "technicalBuyer": "...", "champion": "...", "endUser": "...", "stakeholdersCount": 0},
 "jtbd": {"primary": "...", "secondary": ["..."], "drivers": {"emotional": "...", "functional": "...", "social": "..."}},
 "painPoints": {"topProblems": ["..."], "workarounds": "...", "costOfInaction": "...", "urgency": "medium"},
 "stack": {"currentTools": ["..."], "integrationsExpected": ["..."], "dataMaturity": "..."},
 "pricing": {"budgetRange": "...", "preference": "...", "sensitivity": "..."},
 "scores": {"revenuePotential": 3, "growthPotential": 3, "strategicImportance": 3, "easeOfAcquisition": 3, "productFit": 3}}
No other text.
`

	// GenerateVibePromptsPrompt produces layered build prompts from the
	// roadmap. %s is the serialized product context (org summary + features).
	GenerateVibePromptsPrompt = `
You are a staff engineer preparing build prompts for an AI coding tool.

Product context:
%s

Produce one prompt per layer, each self-contained and implementation-ready.
Output MUST be valid JSON matching exactly:
{"productSummary": "...", "architecture": "...", "frontend": "...", "backend": "...", "dataModel": "...", "infra": "...", "ai": "..."}
No other text.
`

	// EnrichOrganisationPrompt researches a company from its name and domain.
	// %s placeholders: organisation name, primary domain.
	EnrichOrganisationPrompt = `
You are a market intelligence researcher. Build a company profile.

Company: %s
Domain: %s

Output MUST be valid JSON matching exactly:
{"summary": "...", "industry": "...",
 "strategy": {"vision": "...", "mission": "...", "successDefinition": "...", "priorities": ["..."], "strategicBets": "..."},
 "businessModel": {"revenueStreams": "...", "acquisitionVsRetention": "...", "arrTarget": "...", "cacLtv": "..."},
 "productStrategy": {"positioning": "...", "differentiators": "...", "nonNegotiables": "...", "strategicFocus": "..."},
 "competitive": {"topCompetitors": ["..."], "weaknesses": "...", "strengths": "...", "threats": "..."},
 "signals": [{"type": "...", "value": "...", "confidence": 0.5, "source": "..."}],
 "news": [{"headline": "...", "summary": "...", "category": "...", "date": "2026-01-01", "url": "..."}]}
No other text.
`
)
