package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/dto"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/pkg/serverutils"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/service"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	SaveKey(ctx *fiber.Ctx) error
	SaveDraft(ctx *fiber.Ctx) error
}

type settingsController struct {
	sessionService service.ISessionService
}

func NewSettingsController(sessionService service.ISessionService) ISettingsController {
	return &settingsController{
		sessionService: sessionService,
	}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Get("", c.Show)
	h.Put("key", c.SaveKey)
	h.Put("draft", c.SaveDraft)
}

func (c *settingsController) Show(ctx *fiber.Ctx) error {
	res := c.sessionService.Snapshot(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *settingsController) SaveKey(ctx *fiber.Ctx) error {
	var req dto.SaveKeyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	c.sessionService.SaveApiKey(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse[any]("Success save api key", nil))
}

func (c *settingsController) SaveDraft(ctx *fiber.Ctx) error {
	var req dto.SaveDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	c.sessionService.SaveDraft(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse[any]("Success save draft", nil))
}
