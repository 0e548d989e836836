package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/treectx"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UpdateHandler struct {
	updateService     *services.UpdateService
	moderationService *services.ModerationService
}

func NewUpdateHandler(updateService *services.UpdateService, moderationService *services.ModerationService) *UpdateHandler {
	return &UpdateHandler{updateService: updateService, moderationService: moderationService}
}

func (h *UpdateHandler) CreateUpdate(c *fiber.Ctx) error {
	treeID := treectx.GetTreeID(c)
	userID, err := treectx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	update, err := h.updateService.CreateUpdate(treeID, userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrContentRejected) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrPersonNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(update)
}

func (h *UpdateHandler) EditUpdate(c *fiber.Ctx) error {
	treeID := treectx.GetTreeID(c)
	userID, err := treectx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	updateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid update ID",
		})
	}

	var req dto.EditUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	update, err := h.updateService.EditUpdate(treeID, updateID, userID, &req)
	if err != nil {
		return h.mapUpdateError(c, err)
	}

	return c.JSON(update)
}

func (h *UpdateHandler) DeleteUpdate(c *fiber.Ctx) error {
	treeID := treectx.GetTreeID(c)
	userID, err := treectx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	updateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid update ID",
		})
	}

	if err := h.updateService.DeleteUpdate(treeID, updateID, userID); err != nil {
		return h.mapUpdateError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Update deleted successfully"})
}

// SetTagVisibility hides or unhides a tagged update on the caller's wall.
func (h *UpdateHandler) SetTagVisibility(c *fiber.Ctx) error {
	treeID := treectx.GetTreeID(c)
	userID, err := treectx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	updateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid update ID",
		})
	}

	var req dto.HideTaggedUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.updateService.SetTagHidden(treeID, updateID, userID, req.Hidden); err != nil {
		if errors.Is(err, services.ErrNotTagged) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return h.mapUpdateError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Tag visibility updated"})
}

// Wall returns the visible updates for one person, with per-update
// permissions for the viewer. include_tagged=false limits the wall to the
// person's own posts.
func (h *UpdateHandler) Wall(c *fiber.Ctx) error {
	treeID := treectx.GetTreeID(c)
	userID, err := treectx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	personID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid person ID",
		})
	}

	includeTagged := c.QueryBool("include_tagged", true)
	blocked := h.moderationService.BlockedSet(c.UserContext(), &userID)

	wall, err := h.updateService.Wall(c.UserContext(), treeID, personID, &userID, includeTagged, blocked)
	if err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch wall",
		})
	}

	return c.JSON(wall)
}

func (h *UpdateHandler) Feed(c *fiber.Ctx) error {
	treeID := treectx.GetTreeID(c)
	userID, err := treectx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	blocked := h.moderationService.BlockedSet(c.UserContext(), &userID)

	updates, err := h.updateService.Feed(c.UserContext(), treeID, blocked)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch feed",
		})
	}

	return c.JSON(fiber.Map{"updates": updates})
}

func (h *UpdateHandler) mapUpdateError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUpdateNotFound), errors.Is(err, services.ErrPersonNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrNotUpdateAuthor):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrContentRejected):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
}
