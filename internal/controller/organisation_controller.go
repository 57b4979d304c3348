// FILE: internal/controller/organisation_controller.go
package controller

import (
	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/pkg/serverutils"
	"pm-intel-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOrganisationController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Enrich(ctx *fiber.Ctx) error
	VibePrompts(ctx *fiber.Ctx) error
}

type organisationController struct {
	organisationService service.IOrganisationService
}

func NewOrganisationController(organisationService service.IOrganisationService) IOrganisationController {
	return &organisationController{
		organisationService: organisationService,
	}
}

func (c *organisationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/organisation/v1")
	h.Get("vibe-prompts", c.VibePrompts)
	h.Get("", c.Get)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Post(":id/enrich", c.Enrich)
}

func (c *organisationController) Get(ctx *fiber.Ctx) error {
	res, err := c.organisationService.Get(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show organisation", res))
}

func (c *organisationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateOrganisationRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.organisationService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create organisation", res))
}

func (c *organisationController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateOrganisationRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.organisationService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update organisation", res))
}

func (c *organisationController) Enrich(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	res, err := c.organisationService.Enrich(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Organisation enrichment queued", res))
}

func (c *organisationController) VibePrompts(ctx *fiber.Ctx) error {
	res, err := c.organisationService.VibePrompts(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate build prompts", res))
}
