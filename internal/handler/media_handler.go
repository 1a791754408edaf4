package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"union-portal/internal/middleware"
	"union-portal/internal/service/media"
)

type MediaHandler struct {
	mediaService media.Service
}

func NewMediaHandler(mediaService media.Service) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	if file.Size > 10*1024*1024 {
		return middleware.BadRequest("File size must be less than 10MB")
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	var commentID *uuid.UUID
	if raw := c.FormValue("comment_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.BadRequest("Invalid comment ID")
		}
		commentID = &id
	}

	var wallMessageID *uuid.UUID
	if raw := c.FormValue("wall_message_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.BadRequest("Invalid wall message ID")
		}
		wallMessageID = &id
	}

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	uploaded, err := h.mediaService.Upload(c.Context(), commentID, wallMessageID, file.Filename, file.Size, mimeType, fileReader)
	if err != nil {
		if errors.Is(err, media.ErrStorageUnavailable) {
			return middleware.ServiceUnavailable("Media uploads are temporarily unavailable")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(uploaded)
}

func (h *MediaHandler) Get(c *fiber.Ctx) error {
	mediaID, err := uuid.Parse(c.Params("mediaId"))
	if err != nil {
		return middleware.BadRequest("Invalid media ID")
	}

	found, err := h.mediaService.GetByID(c.Context(), mediaID)
	if err != nil {
		if errors.Is(err, media.ErrMediaNotFound) {
			return middleware.NotFound("Media not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	mediaID, err := uuid.Parse(c.Params("mediaId"))
	if err != nil {
		return middleware.BadRequest("Invalid media ID")
	}

	if err := h.mediaService.Delete(c.Context(), mediaID); err != nil {
		if errors.Is(err, media.ErrMediaNotFound) {
			return middleware.NotFound("Media not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
