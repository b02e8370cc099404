package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/dto"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/pkg/serverutils"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/service"
)

type IPacketController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	TogglePin(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	SetFocus(ctx *fiber.Ctx) error
}

type packetController struct {
	packetService service.IPacketService
}

func NewPacketController(packetService service.IPacketService) IPacketController {
	return &packetController{
		packetService: packetService,
	}
}

func (c *packetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/packet/v1")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Put("focus", c.SetFocus)
	h.Put(":id/pin", c.TogglePin)
	h.Delete(":id", c.Delete)
}

func (c *packetController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePacketRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.packetService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create packet", res))
}

func (c *packetController) List(ctx *fiber.Ctx) error {
	res := c.packetService.List(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success list packets", res))
}

func (c *packetController) TogglePin(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid packet id")
	}

	res, err := c.packetService.TogglePin(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPacketNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Packet not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle pin", res))
}

func (c *packetController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid packet id")
	}

	if err := c.packetService.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrPacketNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Packet not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete packet", nil))
}

func (c *packetController) SetFocus(ctx *fiber.Ctx) error {
	var req dto.SetFocusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.packetService.SetFocus(ctx.Context(), &req); err != nil {
		if errors.Is(err, service.ErrPacketNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Packet not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success set focus", nil))
}
