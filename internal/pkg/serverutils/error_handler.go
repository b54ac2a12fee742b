package serverutils

import (
	"errors"

	"notes-app-be/internal/pkg/apperror"
	"notes-app-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Internal server error"

// ErrorHandlerMiddleware turns errors returned further down the chain into
// JSON error responses.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return HandleError(ctx, err, log)
	}
}

// HandleError writes err as {"error": msg}. Internal failures are logged with
// their cause and only the fixed message reaches the client.
func HandleError(ctx *fiber.Ctx, err error, log logger.ILogger) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == apperror.ErrInternal {
			log.Error("HTTP", appErr.Message, map[string]interface{}{
				"error":  err,
				"method": ctx.Method(),
				"path":   ctx.Path(),
			})
		}
		return ctx.Status(appErr.Status()).JSON(ErrorResponse(appErr.Message))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
	}

	log.Error("HTTP", "unhandled error", map[string]interface{}{
		"error":  err,
		"method": ctx.Method(),
		"path":   ctx.Path(),
	})
	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(internalErrorMessage))
}
