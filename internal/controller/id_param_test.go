package controller

import (
	"net/http/httptest"
	"testing"

	"pm-intel-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Malformed ids must be rejected before the service layer sees them;
// otherwise they parse to the nil uuid and surface as a misleading 404.
func TestMalformedIdParamReturnsBadRequest(t *testing.T) {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")

	// nil services are safe here: every request fails at the id parse.
	NewFeatureController(nil).RegisterRoutes(api)
	NewPricingController(nil).RegisterRoutes(api)
	NewPortalController(nil).RegisterRoutes(api)
	NewInsightController(nil).RegisterRoutes(api)
	NewCustomerController(nil).RegisterRoutes(api)

	cases := []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/api/feature/v1/not-a-uuid"},
		{fiber.MethodDelete, "/api/feature/v1/42"},
		{fiber.MethodPost, "/api/feature/v1/not-a-uuid/prd"},
		{fiber.MethodPut, "/api/pricing/v1/tiers/not-a-uuid/price"},
		{fiber.MethodDelete, "/api/pricing/v1/tiers/not-a-uuid/features/also-bad"},
		{fiber.MethodPost, "/api/portal/v1/ideas/not-a-uuid/vote"},
		{fiber.MethodGet, "/api/insight/v1/not-a-uuid"},
		{fiber.MethodDelete, "/api/customer/v1/segments/not-a-uuid"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, res.StatusCode, "%s %s", tc.method, tc.path)
	}
}
