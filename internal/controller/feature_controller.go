// FILE: internal/controller/feature_controller.go
package controller

import (
	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/pkg/serverutils"
	"pm-intel-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFeatureController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	UpdateDimensions(ctx *fiber.Ctx) error
	AssignRelease(ctx *fiber.Ctx) error
	AssignStatus(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Roadmap(ctx *fiber.Ctx) error
	RescoreAll(ctx *fiber.Ctx) error
	GeneratePrd(ctx *fiber.Ctx) error
	PredictRevenueImpacts(ctx *fiber.Ctx) error
}

type featureController struct {
	featureService service.IFeatureService
}

func NewFeatureController(featureService service.IFeatureService) IFeatureController {
	return &featureController{
		featureService: featureService,
	}
}

func (c *featureController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/feature/v1")
	h.Get("roadmap", c.Roadmap)
	// Rescoring rewrites every stored score, so it sits behind auth.
	h.Post("rescore-all", serverutils.JwtMiddleware, c.RescoreAll)
	h.Post("predict-revenue", c.PredictRevenueImpacts)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Put(":id/dimensions", c.UpdateDimensions)
	h.Put(":id/release", c.AssignRelease)
	h.Put(":id/status", c.AssignStatus)
	h.Post(":id/prd", c.GeneratePrd)
	h.Delete(":id", c.Delete)
}

func (c *featureController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFeatureRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.featureService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create feature", res))
}

func (c *featureController) List(ctx *fiber.Ctx) error {
	res, err := c.featureService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list features", res))
}

func (c *featureController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	res, err := c.featureService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show feature", res))
}

func (c *featureController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateFeatureRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.featureService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update feature", res))
}

func (c *featureController) UpdateDimensions(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateDimensionsRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.featureService.UpdateDimensions(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update dimensions", res))
}

func (c *featureController) AssignRelease(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.AssignReleaseRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.featureService.AssignRelease(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success assign release", res))
}

func (c *featureController) AssignStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.AssignStatusRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.featureService.AssignStatus(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success assign status", res))
}

func (c *featureController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	if err := c.featureService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete feature", nil))
}

func (c *featureController) Roadmap(ctx *fiber.Ctx) error {
	resolution := ctx.Query("resolution")

	res, err := c.featureService.Roadmap(ctx.Context(), resolution)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success build roadmap", res))
}

func (c *featureController) RescoreAll(ctx *fiber.Ctx) error {
	res, err := c.featureService.RescoreAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success rescore features", res))
}

func (c *featureController) GeneratePrd(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	res, err := c.featureService.GeneratePrd(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("PRD generation queued", res))
}

func (c *featureController) PredictRevenueImpacts(ctx *fiber.Ctx) error {
	res, err := c.featureService.PredictRevenueImpacts(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Revenue prediction queued", res))
}
