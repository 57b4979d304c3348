// FILE: internal/controller/portal_controller.go
package controller

import (
	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/pkg/serverutils"
	"pm-intel-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPortalController interface {
	RegisterRoutes(r fiber.Router)
	ListIdeas(ctx *fiber.Ctx) error
	SubmitIdea(ctx *fiber.Ctx) error
	Vote(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	DeleteIdea(ctx *fiber.Ctx) error
}

type portalController struct {
	portalService service.IPortalService
}

func NewPortalController(portalService service.IPortalService) IPortalController {
	return &portalController{
		portalService: portalService,
	}
}

// The portal is the public surface: listing, submitting and voting are open.
// Status moderation is an internal operation and sits behind auth.
func (c *portalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/portal/v1")
	h.Get("ideas", c.ListIdeas)
	h.Post("ideas", c.SubmitIdea)
	h.Post("ideas/:id/vote", c.Vote)
	h.Put("ideas/:id/status", serverutils.JwtMiddleware, c.UpdateStatus)
	h.Delete("ideas/:id", serverutils.JwtMiddleware, c.DeleteIdea)
}

func (c *portalController) ListIdeas(ctx *fiber.Ctx) error {
	res, err := c.portalService.ListIdeas(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list ideas", res))
}

func (c *portalController) SubmitIdea(ctx *fiber.Ctx) error {
	var req dto.SubmitIdeaRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.portalService.SubmitIdea(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success submit idea", res))
}

func (c *portalController) Vote(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	res, err := c.portalService.Vote(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success vote idea", res))
}

func (c *portalController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateIdeaStatusRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.portalService.UpdateStatus(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update idea status", res))
}

func (c *portalController) DeleteIdea(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	if err := c.portalService.DeleteIdea(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete idea", nil))
}
