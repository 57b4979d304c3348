package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/entity"
	"pm-intel-be/internal/repository/memory"
	"pm-intel-be/internal/repository/specification"
	"pm-intel-be/internal/repository/unitofwork"
	"pm-intel-be/internal/service"
	"pm-intel-be/pkg/database"
	"pm-intel-be/pkg/planning"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.FeatureRepository())
	assert.NotNil(t, uow.PricingTierRepository())
	assert.NotNil(t, uow.SettingsRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Feature Round Trip", func(t *testing.T) {
		ctx := context.Background()
		now := time.Now()

		feature := &entity.Feature{
			Id:            uuid.New(),
			Title:         "integration-" + uuid.New().String(),
			Description:   "Round-trip check including jsonb columns",
			Status:        entity.FeatureStatusIdea,
			Priority:      entity.PriorityMedium,
			StrategicType: entity.StrategicTypeCore,
			Dimensions: entity.Dimensions{
				CustomerValue: 8, Competitive: 6, Financial: 7,
				Strategic: 6, CaseStudy: 4, Effort: 3, Confidence: 0.8,
			},
			Release:   "Q2 2024",
			CreatedAt: now,
			UpdatedAt: now,
		}
		planning.Apply(feature, entity.DefaultScoringWeights())

		require.NoError(t, uow.FeatureRepository().Create(ctx, feature))
		defer func() {
			assert.NoError(t, uow.FeatureRepository().Delete(ctx, feature.Id))
		}()

		loaded, err := uow.FeatureRepository().FindById(ctx, feature.Id)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, feature.Title, loaded.Title)
		assert.Equal(t, feature.Dimensions, loaded.Dimensions)
		assert.Equal(t, feature.FinalScore, loaded.FinalScore)

		// Spec-driven query path
		found, err := uow.FeatureRepository().FindAll(ctx,
			specification.ByRelease{Release: "Q2 2024"},
			specification.OrderByScore{},
		)
		require.NoError(t, err)
		assert.NotEmpty(t, found)
	})

	t.Run("No-op Release Assignment Keeps UpdatedAt", func(t *testing.T) {
		ctx := context.Background()
		featureService := service.NewFeatureService(uowFactory, nil, memory.NewEnrichmentTokenRepository(), nil)

		created, err := featureService.Create(ctx, &dto.CreateFeatureRequest{
			Title:       "noop-" + uuid.New().String(),
			Description: "Timestamp honesty check",
			Release:     "Q2 2024",
		})
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, featureService.Delete(ctx, created.Id))
		}()

		same, err := featureService.AssignRelease(ctx, created.Id, &dto.AssignReleaseRequest{
			Release: "Q2 2024", Resolution: "quarter",
		})
		require.NoError(t, err)
		assert.Equal(t, created.UpdatedAt, same.UpdatedAt)

		moved, err := featureService.AssignRelease(ctx, created.Id, &dto.AssignReleaseRequest{
			Release: "Q3 2024", Resolution: "quarter",
		})
		require.NoError(t, err)
		assert.True(t, moved.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("Country Override Round Trip", func(t *testing.T) {
		ctx := context.Background()
		tierId := uuid.New()

		country := &entity.CountryConfig{
			Code:     "ZZ",
			Name:     "Testland",
			Currency: "ZZD",
			Symbol:   "z",
			FxRate:   2.5,
			Mode:     entity.PricingModeLocalized,
			Overrides: map[string]entity.PriceOverride{
				tierId.String(): {Monthly: 39, Yearly: 380},
			},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		require.NoError(t, uow.CountryRepository().Create(ctx, country))
		defer func() {
			assert.NoError(t, uow.CountryRepository().Delete(ctx, "ZZ"))
		}()

		loaded, err := uow.CountryRepository().FindByCode(ctx, "ZZ")
		require.NoError(t, err)
		require.NotNil(t, loaded)

		o, ok := loaded.OverrideFor(tierId)
		require.True(t, ok)
		assert.Equal(t, 39.0, o.Monthly)
		assert.Equal(t, 380.0, o.Yearly)
	})
}
