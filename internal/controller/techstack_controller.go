// FILE: internal/controller/techstack_controller.go
package controller

import (
	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/pkg/serverutils"
	"pm-intel-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITechStackController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Upsert(ctx *fiber.Ctx) error
	AddComponent(ctx *fiber.Ctx) error
	UpdateComponent(ctx *fiber.Ctx) error
	RemoveComponent(ctx *fiber.Ctx) error
}

type techStackController struct {
	techStackService service.ITechStackService
}

func NewTechStackController(techStackService service.ITechStackService) ITechStackController {
	return &techStackController{
		techStackService: techStackService,
	}
}

func (c *techStackController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/techstack/v1")
	h.Get("", c.Get)
	h.Put("", c.Upsert)
	h.Post("components", c.AddComponent)
	h.Put("components/:id", c.UpdateComponent)
	h.Delete("components/:id", c.RemoveComponent)
}

func (c *techStackController) Get(ctx *fiber.Ctx) error {
	res, err := c.techStackService.Get(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show tech stack", res))
}

func (c *techStackController) Upsert(ctx *fiber.Ctx) error {
	var req dto.UpsertTechStackRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.techStackService.Upsert(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success upsert tech stack", res))
}

func (c *techStackController) AddComponent(ctx *fiber.Ctx) error {
	var req dto.AddComponentRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.techStackService.AddComponent(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add component", res))
}

func (c *techStackController) UpdateComponent(ctx *fiber.Ctx) error {
	var req dto.UpdateComponentRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.techStackService.UpdateComponent(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update component", res))
}

func (c *techStackController) RemoveComponent(ctx *fiber.Ctx) error {
	res, err := c.techStackService.RemoveComponent(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove component", res))
}
