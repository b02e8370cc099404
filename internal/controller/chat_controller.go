package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/dto"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/pkg/serverutils"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	Summarize(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	tutorService service.ITutorService
}

func NewChatController(tutorService service.ITutorService) IChatController {
	return &chatController{
		tutorService: tutorService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Get("", c.History)
	h.Post("", c.Send)
	h.Post("summarize", c.Summarize)
	h.Delete("", c.Clear)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tutorService.SendChat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) Summarize(ctx *fiber.Ctx) error {
	res, err := c.tutorService.SummarizeFocus(ctx.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoPacketsInFocus) {
			return fiber.NewError(fiber.StatusBadRequest, "No packets in focus")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success summarize focus", res))
}

func (c *chatController) Clear(ctx *fiber.Ctx) error {
	c.tutorService.ClearChat(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear chat", nil))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	res := c.tutorService.History(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success show chat history", res))
}
