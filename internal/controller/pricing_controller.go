// FILE: internal/controller/pricing_controller.go
package controller

import (
	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/pkg/serverutils"
	"pm-intel-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPricingController interface {
	RegisterRoutes(r fiber.Router)
	CreateTier(ctx *fiber.Ctx) error
	ListTiers(ctx *fiber.Ctx) error
	UpdateTier(ctx *fiber.Ctx) error
	DeleteTier(ctx *fiber.Ctx) error
	SetPrice(ctx *fiber.Ctx) error
	AddTierFeature(ctx *fiber.Ctx) error
	RemoveTierFeature(ctx *fiber.Ctx) error
	UpsertCountry(ctx *fiber.Ctx) error
	ListCountries(ctx *fiber.Ctx) error
	DeleteCountry(ctx *fiber.Ctx) error
	CountryPricing(ctx *fiber.Ctx) error
}

type pricingController struct {
	pricingService service.IPricingService
}

func NewPricingController(pricingService service.IPricingService) IPricingController {
	return &pricingController{
		pricingService: pricingService,
	}
}

func (c *pricingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pricing/v1")
	h.Post("tiers", c.CreateTier)
	h.Get("tiers", c.ListTiers)
	h.Put("tiers/:id", c.UpdateTier)
	h.Delete("tiers/:id", c.DeleteTier)
	h.Put("tiers/:id/price", c.SetPrice)
	h.Post("tiers/:id/features", c.AddTierFeature)
	h.Delete("tiers/:id/features/:featureId", c.RemoveTierFeature)
	h.Put("countries", c.UpsertCountry)
	h.Get("countries", c.ListCountries)
	h.Get("countries/:code", c.CountryPricing)
	h.Delete("countries/:code", c.DeleteCountry)
}

func (c *pricingController) CreateTier(ctx *fiber.Ctx) error {
	var req dto.CreateTierRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.pricingService.CreateTier(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create tier", res))
}

func (c *pricingController) ListTiers(ctx *fiber.Ctx) error {
	res, err := c.pricingService.ListTiers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list tiers", res))
}

func (c *pricingController) UpdateTier(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateTierRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.pricingService.UpdateTier(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update tier", res))
}

func (c *pricingController) DeleteTier(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	if err := c.pricingService.DeleteTier(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete tier", nil))
}

func (c *pricingController) SetPrice(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.SetPriceRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.pricingService.SetPrice(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success set price", res))
}

func (c *pricingController) AddTierFeature(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.AddTierFeatureRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.pricingService.AddTierFeature(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success attach feature", res))
}

func (c *pricingController) RemoveTierFeature(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	featureId, err := uuid.Parse(ctx.Params("featureId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	res, err := c.pricingService.RemoveTierFeature(ctx.Context(), id, featureId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success detach feature", res))
}

func (c *pricingController) UpsertCountry(ctx *fiber.Ctx) error {
	var req dto.UpsertCountryRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.pricingService.UpsertCountry(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success upsert country", res))
}

func (c *pricingController) ListCountries(ctx *fiber.Ctx) error {
	res, err := c.pricingService.ListCountries(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list countries", res))
}

func (c *pricingController) DeleteCountry(ctx *fiber.Ctx) error {
	if err := c.pricingService.DeleteCountry(ctx.Context(), ctx.Params("code")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete country", nil))
}

func (c *pricingController) CountryPricing(ctx *fiber.Ctx) error {
	res, err := c.pricingService.CountryPricing(ctx.Context(), ctx.Params("code"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success resolve country pricing", res))
}
