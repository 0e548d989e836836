package middleware

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TreeRequired resolves the tree a request operates on from the X-Tree-ID
// header (query param as backward compat) and stores it in context locals.
func TreeRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("X-Tree-ID")
		if raw == "" {
			raw = c.Query("tree_id")
		}
		if raw == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "X-Tree-ID header is required",
			})
		}

		treeID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Invalid X-Tree-ID: " + raw,
			})
		}

		var tree models.Tree
		if err := db.Select("id").First(&tree, "id = ?", treeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
					Error:   true,
					Message: "Tree not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Failed to resolve tree",
			})
		}

		c.Locals("tree_id", treeID)
		return c.Next()
	}
}
