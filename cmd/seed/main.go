// Seeds a demo workspace: default settings, three pricing tiers, four
// countries (one localized with an override), a handful of features across
// the roadmap, and starter insights and portal ideas.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/implementation"
	"pm-intel-be/pkg/database"
	"pm-intel-be/pkg/planning"
	"pm-intel-be/pkg/pricing"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	now := time.Now()

	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	// 1. Workspace settings
	settingsRepo := implementation.NewSettingsRepository(db)
	settings, err := settingsRepo.FindFirst(ctx)
	if err != nil {
		log.Fatalf("Error: settings lookup failed: %v", err)
	}
	if settings == nil {
		settings = &entity.WorkspaceSettings{
			Id:             uuid.New(),
			Weights:        entity.DefaultScoringWeights(),
			YearlyDiscount: entity.DefaultYearlyDiscount,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := settingsRepo.Create(ctx, settings); err != nil {
			log.Fatalf("Error: settings seed failed: %v", err)
		}
		log.Printf("%s workspace settings", green("Seeded"))
	}

	// 2. Pricing tiers
	tierRepo := implementation.NewPricingTierRepository(db)
	tiers := []struct {
		name    string
		desc    string
		monthly float64
		order   int
	}{
		{"Starter", "For small teams getting started", 49, 1},
		{"Pro", "For growing product organisations", 199, 2},
		{"Enterprise", "Advanced controls and dedicated support", 999, 3},
	}

	existingTiers, _ := tierRepo.FindAll(ctx)
	tierIds := map[string]uuid.UUID{}
	if len(existingTiers) == 0 {
		for _, t := range tiers {
			tier := entity.PricingTier{
				Id:           uuid.New(),
				Name:         t.name,
				Description:  t.desc,
				MonthlyPrice: t.monthly,
				YearlyPrice:  pricing.DeriveYearly(t.monthly, settings.YearlyDiscount),
				FeatureIds:   []uuid.UUID{},
				SortOrder:    t.order,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := tierRepo.Create(ctx, &tier); err != nil {
				log.Fatalf("Error: tier seed failed: %v", err)
			}
			tierIds[t.name] = tier.Id
			log.Printf("%s tier %s (%v/%v USD)", green("Seeded"), cyan(t.name), tier.MonthlyPrice, tier.YearlyPrice)
		}
	} else {
		for _, t := range existingTiers {
			tierIds[t.Name] = t.Id
		}
	}

	// 3. Countries. GB is localized with a manual Starter override; the rest
	// convert through FX.
	countryRepo := implementation.NewCountryRepository(db)
	countries := []entity.CountryConfig{
		{Code: "US", Name: "United States", Currency: "USD", Symbol: "$", FxRate: 1, Mode: entity.PricingModeUniversal},
		{Code: "GB", Name: "United Kingdom", Currency: "GBP", Symbol: "£", FxRate: 0.78, Mode: entity.PricingModeLocalized},
		{Code: "EU", Name: "Eurozone", Currency: "EUR", Symbol: "€", FxRate: 0.92, Mode: entity.PricingModeUniversal},
		{Code: "JP", Name: "Japan", Currency: "JPY", Symbol: "¥", FxRate: 151.2, Mode: entity.PricingModeUniversal},
	}
	for i := range countries {
		c := countries[i]
		existing, _ := countryRepo.FindByCode(ctx, c.Code)
		if existing != nil {
			continue
		}
		c.Overrides = map[string]entity.PriceOverride{}
		if c.Code == "GB" {
			if starterId, ok := tierIds["Starter"]; ok {
				c.Overrides[starterId.String()] = entity.PriceOverride{Monthly: 39, Yearly: 380}
			}
		}
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := countryRepo.Create(ctx, &c); err != nil {
			log.Fatalf("Error: country seed failed: %v", err)
		}
		log.Printf("%s country %s (%s, fx %v)", green("Seeded"), cyan(c.Code), c.Mode, c.FxRate)
	}

	// 4. Features
	featureRepo := implementation.NewFeatureRepository(db)
	existingFeatures, _ := featureRepo.FindAll(ctx)
	if len(existingFeatures) == 0 {
		features := []entity.Feature{
			{
				Title:         "Usage-based billing alerts",
				Description:   "Notify admins before plans hit usage caps.",
				Status:        entity.FeatureStatusPlanned,
				Priority:      entity.PriorityHigh,
				StrategicType: entity.StrategicTypeCore,
				Dimensions:    entity.Dimensions{CustomerValue: 8, Competitive: 6, Financial: 7, Strategic: 6, CaseStudy: 4, Effort: 3, Confidence: 0.8},
				Owner:         "Dana",
				Release:       "Q2 2024",
				ProductArea:   "Billing",
			},
			{
				Title:         "SSO with SAML",
				Description:   "Enterprise single sign-on via SAML identity providers.",
				Status:        entity.FeatureStatusInProgress,
				Priority:      entity.PriorityCritical,
				StrategicType: entity.StrategicTypeExpansion,
				Dimensions:    entity.Dimensions{CustomerValue: 9, Competitive: 8, Financial: 8, Strategic: 9, CaseStudy: 6, Effort: 5, Confidence: 0.9},
				Owner:         "Marco",
				Release:       "Q3 2024",
				ProductArea:   "Platform",
			},
			{
				Title:         "AI meeting summaries",
				Description:   "Summarise customer calls into linked insights.",
				Status:        entity.FeatureStatusDiscovery,
				Priority:      entity.PriorityMedium,
				StrategicType: entity.StrategicTypeExperimental,
				Dimensions:    entity.Dimensions{CustomerValue: 7, Competitive: 7, Financial: 5, Strategic: 7, CaseStudy: 3, Effort: 4, Confidence: 0.6},
				Owner:         "Priya",
				Release:       entity.ReleaseBacklog,
				ProductArea:   "Intelligence",
			},
		}
		for i := range features {
			f := features[i]
			f.Id = uuid.New()
			planning.Apply(&f, settings.Weights)
			f.CreatedAt = now
			f.UpdatedAt = now
			if err := featureRepo.Create(ctx, &f); err != nil {
				log.Fatalf("Error: feature seed failed: %v", err)
			}
			log.Printf("%s feature %s (score %v)", green("Seeded"), cyan(f.Title), f.FinalScore)
		}
	}

	// 5. Insights
	insightRepo := implementation.NewInsightRepository(db)
	existingInsights, _ := insightRepo.FindAll(ctx)
	if len(existingInsights) == 0 {
		insights := []entity.Insight{
			{
				Customer:  "Ana Flores",
				Company:   "Northwind",
				Content:   "Billing surprises are the top complaint from our finance team.",
				Sentiment: entity.SentimentNegative,
				Tags:      []string{"billing", "alerts"},
			},
			{
				Customer:  "Jon Park",
				Company:   "Contoso",
				Content:   "Security review blocked rollout until SSO lands.",
				Sentiment: entity.SentimentNeutral,
				Tags:      []string{"security", "sso"},
			},
		}
		for i := range insights {
			ins := insights[i]
			ins.Id = uuid.New()
			ins.Date = now
			ins.CreatedAt = now
			ins.UpdatedAt = now
			if err := insightRepo.Create(ctx, &ins); err != nil {
				log.Fatalf("Error: insight seed failed: %v", err)
			}
		}
		log.Printf("%s %d insights", green("Seeded"), len(insights))
	}

	// 6. Portal ideas
	ideaRepo := implementation.NewUserIdeaRepository(db)
	existingIdeas, _ := ideaRepo.FindAll(ctx)
	if len(existingIdeas) == 0 {
		ideas := []entity.UserIdea{
			{Title: "Dark mode", Description: "The dashboard at night is blinding.", Votes: 14, Status: entity.IdeaStatusPlanned, Category: "User Request", Author: "mika"},
			{Title: "Slack notifications", Description: "Ping a channel when a roadmap item ships.", Votes: 7, Status: entity.IdeaStatusUnderConsideration, Category: "User Request", Author: "jordan"},
		}
		for i := range ideas {
			idea := ideas[i]
			idea.Id = uuid.New()
			idea.CreatedAt = now
			idea.UpdatedAt = now
			if err := ideaRepo.Create(ctx, &idea); err != nil {
				log.Fatalf("Error: idea seed failed: %v", err)
			}
		}
		log.Printf("%s %d portal ideas", green("Seeded"), len(ideas))
	}

	color.Green("✅ Seed complete")
}
