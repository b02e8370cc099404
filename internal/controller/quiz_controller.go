package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/dto"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/pkg/serverutils"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/service"
)

type IQuizController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Answer(ctx *fiber.Ctx) error
}

type quizController struct {
	quizService service.IQuizService
}

func NewQuizController(quizService service.IQuizService) IQuizController {
	return &quizController{
		quizService: quizService,
	}
}

func (c *quizController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quiz/v1")
	h.Get("", c.Show)
	h.Post("generate", c.Generate)
	h.Post(":index/answer", c.Answer)
}

func (c *quizController) Generate(ctx *fiber.Ctx) error {
	res := c.quizService.Generate(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success generate quiz", res))
}

func (c *quizController) Show(ctx *fiber.Ctx) error {
	res := c.quizService.Get(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success show quiz", res))
}

func (c *quizController) Answer(ctx *fiber.Ctx) error {
	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid quiz item index")
	}

	var req dto.AnswerQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.quizService.Answer(ctx.Context(), index, &req)
	if err != nil {
		if errors.Is(err, service.ErrQuizItemNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Quiz item not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer quiz item", res))
}
