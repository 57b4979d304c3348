// FILE: internal/controller/customer_controller.go
package controller

import (
	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/pkg/serverutils"
	"pm-intel-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICustomerController interface {
	RegisterRoutes(r fiber.Router)
	CreateSegment(ctx *fiber.Ctx) error
	ListSegments(ctx *fiber.Ctx) error
	ShowSegment(ctx *fiber.Ctx) error
	UpdateSegment(ctx *fiber.Ctx) error
	DeleteSegment(ctx *fiber.Ctx) error
	EnrichSegment(ctx *fiber.Ctx) error
	CreatePainPoint(ctx *fiber.Ctx) error
	ListPainPoints(ctx *fiber.Ctx) error
	DeletePainPoint(ctx *fiber.Ctx) error
	CreateJTBD(ctx *fiber.Ctx) error
	ListJTBDs(ctx *fiber.Ctx) error
	DeleteJTBD(ctx *fiber.Ctx) error
}

type customerController struct {
	customerService service.ICustomerService
}

func NewCustomerController(customerService service.ICustomerService) ICustomerController {
	return &customerController{
		customerService: customerService,
	}
}

func (c *customerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/customer/v1")
	h.Post("segments", c.CreateSegment)
	h.Get("segments", c.ListSegments)
	h.Get("segments/:id", c.ShowSegment)
	h.Put("segments/:id", c.UpdateSegment)
	h.Delete("segments/:id", c.DeleteSegment)
	h.Post("segments/:id/enrich", c.EnrichSegment)
	h.Post("pain-points", c.CreatePainPoint)
	h.Get("pain-points", c.ListPainPoints)
	h.Delete("pain-points/:id", c.DeletePainPoint)
	h.Post("jtbd", c.CreateJTBD)
	h.Get("jtbd", c.ListJTBDs)
	h.Delete("jtbd/:id", c.DeleteJTBD)
}

func (c *customerController) CreateSegment(ctx *fiber.Ctx) error {
	var req dto.CreateSegmentRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.customerService.CreateSegment(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create segment", res))
}

func (c *customerController) ListSegments(ctx *fiber.Ctx) error {
	res, err := c.customerService.ListSegments(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list segments", res))
}

func (c *customerController) ShowSegment(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	res, err := c.customerService.ShowSegment(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show segment", res))
}

func (c *customerController) UpdateSegment(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateSegmentRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.customerService.UpdateSegment(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update segment", res))
}

func (c *customerController) DeleteSegment(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	if err := c.customerService.DeleteSegment(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete segment", nil))
}

func (c *customerController) EnrichSegment(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	res, err := c.customerService.EnrichSegment(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Segment enrichment queued", res))
}

func (c *customerController) CreatePainPoint(ctx *fiber.Ctx) error {
	var req dto.CreatePainPointRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.customerService.CreatePainPoint(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create pain point", res))
}

func (c *customerController) ListPainPoints(ctx *fiber.Ctx) error {
	res, err := c.customerService.ListPainPoints(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list pain points", res))
}

func (c *customerController) DeletePainPoint(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	if err := c.customerService.DeletePainPoint(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete pain point", nil))
}

func (c *customerController) CreateJTBD(ctx *fiber.Ctx) error {
	var req dto.CreateJTBDRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.customerService.CreateJTBD(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create jtbd", res))
}

func (c *customerController) ListJTBDs(ctx *fiber.Ctx) error {
	res, err := c.customerService.ListJTBDs(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list jtbd", res))
}

func (c *customerController) DeleteJTBD(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	if err := c.customerService.DeleteJTBD(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete jtbd", nil))
}
