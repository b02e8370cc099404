package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/pkg/logger"
)

// ErrorHandlerMiddleware converts errors escaping controllers into the JSON
// envelope. fiber.Error keeps its status; everything else is a 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
