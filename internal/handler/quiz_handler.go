package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"union-portal/internal/domain"
	"union-portal/internal/middleware"
	"union-portal/internal/service/quiz"
)

type QuizHandler struct {
	quizService quiz.Service
}

func NewQuizHandler(quizService quiz.Service) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

func (h *QuizHandler) Definition(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.quizService.Definition())
}

func (h *QuizHandler) Submit(c *fiber.Ctx) error {
	var input domain.SubmitQuizInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.quizService.Submit(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *QuizHandler) Chat(c *fiber.Ctx) error {
	var input domain.ChatInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	reply, err := h.quizService.Chat(c.Context(), input)
	if err != nil {
		if errors.Is(err, quiz.ErrNoResult) {
			return middleware.BadRequest("Complete the quiz before chatting with the advisor")
		}
		if errors.Is(err, quiz.ErrAdvisorUnavailable) {
			return middleware.ServiceUnavailable("The advisor is temporarily unavailable")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(reply)
}

func (h *QuizHandler) State(c *fiber.Ctx) error {
	clientID := c.Params("clientId")
	if clientID == "" {
		return middleware.BadRequest("Client ID is required")
	}

	state, err := h.quizService.State(c.Context(), clientID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(state)
}
