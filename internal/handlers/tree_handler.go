package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/treectx"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/visibility"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TreeHandler struct {
	treeService       *services.TreeService
	moderationService *services.ModerationService
}

func NewTreeHandler(treeService *services.TreeService, moderationService *services.ModerationService) *TreeHandler {
	return &TreeHandler{treeService: treeService, moderationService: moderationService}
}

func (h *TreeHandler) CreateTree(c *fiber.Ctx) error {
	userID, err := treectx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateTreeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	tree, err := h.treeService.CreateTree(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(tree)
}

// ListPeople returns the tree's people filtered through the viewer's
// blocklist: blocked linked profiles come back as placeholders.
func (h *TreeHandler) ListPeople(c *fiber.Ctx) error {
	treeID := treectx.GetTreeID(c)
	userID, err := treectx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	people, err := h.treeService.ListPeople(treeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch people",
		})
	}

	blocked := h.moderationService.BlockedSet(c.UserContext(), &userID)
	return c.JSON(fiber.Map{"people": visibility.RedactPeople(people, blocked)})
}

func (h *TreeHandler) CreatePerson(c *fiber.Ctx) error {
	treeID := treectx.GetTreeID(c)
	userID, err := treectx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	person, err := h.treeService.CreatePerson(treeID, userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(person)
}

func (h *TreeHandler) ClaimPerson(c *fiber.Ctx) error {
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

	person, err := h.treeService.ClaimPerson(treeID, personID, userID)
	if err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrAlreadyClaimed) || errors.Is(err, services.ErrAlreadyInTree) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to claim profile",
		})
	}

	return c.JSON(person)
}

func (h *TreeHandler) UpdatePerson(c *fiber.Ctx) error {
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

	var req dto.UpdatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	person, err := h.treeService.UpdatePerson(treeID, personID, userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrNotProfileOwner) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(person)
}
