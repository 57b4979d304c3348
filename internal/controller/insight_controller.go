// FILE: internal/controller/insight_controller.go
package controller

import (
	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/pkg/serverutils"
	"pm-intel-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInsightController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Analyse(ctx *fiber.Ctx) error
}

type insightController struct {
	insightService service.IInsightService
}

func NewInsightController(insightService service.IInsightService) IInsightController {
	return &insightController{
		insightService: insightService,
	}
}

func (c *insightController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insight/v1")
	h.Post("analyse", c.Analyse)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *insightController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateInsightRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.insightService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create insight", res))
}

func (c *insightController) List(ctx *fiber.Ctx) error {
	res, err := c.insightService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list insights", res))
}

func (c *insightController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	res, err := c.insightService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show insight", res))
}

func (c *insightController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateInsightRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.insightService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update insight", res))
}

func (c *insightController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	if err := c.insightService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete insight", nil))
}

func (c *insightController) Analyse(ctx *fiber.Ctx) error {
	res, err := c.insightService.Analyse(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success analyse insights", res))
}
