package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"union-portal/internal/domain"
	"union-portal/internal/middleware"
	"union-portal/internal/service/application"
)

type ApplicationHandler struct {
	applicationService application.Service
}

func NewApplicationHandler(applicationService application.Service) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var input domain.CreateApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	app, err := h.applicationService.Submit(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var status *domain.ApplicationStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.ApplicationStatus(raw)
		if !s.IsValid() {
			return middleware.BadRequest("Unknown application status")
		}
		status = &s
	}

	result, err := h.applicationService.List(c.Context(), status, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return middleware.BadRequest("Invalid application ID")
	}

	var input domain.UpdateApplicationStatusInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	app, err := h.applicationService.UpdateStatus(c.Context(), appID, input.Status)
	if err != nil {
		if errors.Is(err, application.ErrApplicationNotFound) {
			return middleware.NotFound("Application not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(app)
}
