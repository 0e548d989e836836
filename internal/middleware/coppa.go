package middleware

import (
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/coppa"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/treectx"
	"github.com/gofiber/fiber/v2"
)

// COPPAGuard rejects content mutations from accounts blocked by age policy.
// The gate fails open on lookup errors, so a backend hiccup never locks out
// a legitimate user.
func COPPAGuard(gate *coppa.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := treectx.GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if gate.IsBlocked(c.UserContext(), userID) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Account restricted by age policy",
			})
		}

		return c.Next()
	}
}
