package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"union-portal/internal/domain"
	"union-portal/internal/middleware"
	"union-portal/internal/service/wall"
)

type WallHandler struct {
	wallService wall.Service
}

func NewWallHandler(wallService wall.Service) *WallHandler {
	return &WallHandler{wallService: wallService}
}

func (h *WallHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateWallMessageInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	message, err := h.wallService.Submit(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

func (h *WallHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.wallService.ListPublic(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *WallHandler) AdminList(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.wallService.ListAll(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *WallHandler) SetHidden(c *fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("messageId"))
	if err != nil {
		return middleware.BadRequest("Invalid message ID")
	}

	var input struct {
		Hidden bool `json:"hidden"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.wallService.SetHidden(c.Context(), messageID, input.Hidden); err != nil {
		if errors.Is(err, wall.ErrMessageNotFound) {
			return middleware.NotFound("Wall message not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *WallHandler) Delete(c *fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("messageId"))
	if err != nil {
		return middleware.BadRequest("Invalid message ID")
	}

	if err := h.wallService.Delete(c.Context(), messageID); err != nil {
		if errors.Is(err, wall.ErrMessageNotFound) {
			return middleware.NotFound("Wall message not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
