package serverutils

import (
	"strings"

	"notes-app-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// MethodNotAllowed answers any verb that reached it with 405 and an Allow
// header. Register it with All after the path's real handlers.
func MethodNotAllowed(allowed ...string) fiber.Handler {
	allow := strings.Join(allowed, ", ")
	return func(ctx *fiber.Ctx) error {
		ctx.Set(fiber.HeaderAllow, allow)
		return apperror.MethodNotAllowed("Method " + ctx.Method() + " Not Allowed")
	}
}
