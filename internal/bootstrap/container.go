package bootstrap

import (
	"context"
	"log"

	"pm-intel-be/internal/config"
	"pm-intel-be/internal/controller"
	"pm-intel-be/internal/pkg/logger"
	"pm-intel-be/internal/pkg/mailer"
	"pm-intel-be/internal/repository/memory"
	"pm-intel-be/internal/repository/unitofwork"
	"pm-intel-be/internal/service"
	"pm-intel-be/pkg/enrichment"
	"pm-intel-be/pkg/llm"
	"pm-intel-be/pkg/llm/factory"

	pktNats "pm-intel-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	FeatureController      controller.IFeatureController
	PricingController      controller.IPricingController
	PortalController       controller.IPortalController
	InsightController      controller.IInsightController
	OrganisationController controller.IOrganisationController
	CustomerController     controller.ICustomerController
	TechStackController    controller.ITechStackController
	SettingsController     controller.ISettingsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS (optional; the services nil-check the publisher)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Redis (optional response cache for the enrichment engine)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// 3. AI Boundary
	// Gemini is primary, OpenAI the fallback. Either (or both) may be absent;
	// the engine degrades to placeholders when neither answers.
	var primaryProvider, fallbackProvider llm.LLMProvider
	if cfg.Ai.Enabled {
		if p, err := factory.NewLLMProvider("gemini", cfg.Keys.GoogleGemini, cfg.Ai.PrimaryModel); err != nil {
			log.Printf("[WARN] Gemini provider unavailable: %v", err)
		} else {
			primaryProvider = p
			log.Printf("[INFO] Using primary LLM provider: gemini (%s)", cfg.Ai.PrimaryModel)
		}
		if p, err := factory.NewLLMProvider("openai", cfg.Keys.OpenAI, cfg.Ai.FallbackModel); err != nil {
			log.Printf("[WARN] OpenAI fallback unavailable: %v", err)
		} else {
			fallbackProvider = p
			log.Printf("[INFO] Using fallback LLM provider: openai (%s)", cfg.Ai.FallbackModel)
		}
	} else {
		log.Println("[INFO] AI enrichment disabled by configuration")
	}

	engine := enrichment.NewEngine(primaryProvider, fallbackProvider, rdb, sysLogger)
	tokenRepo := memory.NewEnrichmentTokenRepository()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.EnrichmentTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EnrichmentTopic,
		uowFactory,
		engine,
		tokenRepo,
	)

	featureService := service.NewFeatureService(uowFactory, publisherService, tokenRepo, natsPub)
	pricingService := service.NewPricingService(uowFactory, natsPub)
	portalService := service.NewPortalService(uowFactory, emailService, natsPub)
	insightService := service.NewInsightService(uowFactory, engine)
	organisationService := service.NewOrganisationService(uowFactory, publisherService, tokenRepo, engine)
	customerService := service.NewCustomerService(uowFactory, publisherService, tokenRepo, engine)
	techStackService := service.NewTechStackService(uowFactory)
	settingsService := service.NewSettingsService(uowFactory)

	// 5. Controllers
	return &Container{
		FeatureController:      controller.NewFeatureController(featureService),
		PricingController:      controller.NewPricingController(pricingService),
		PortalController:       controller.NewPortalController(portalService),
		InsightController:      controller.NewInsightController(insightService),
		OrganisationController: controller.NewOrganisationController(organisationService),
		CustomerController:     controller.NewCustomerController(customerService),
		TechStackController:    controller.NewTechStackController(techStackService),
		SettingsController:     controller.NewSettingsController(settingsService),

		ConsumerService: consumerService,
	}
}
