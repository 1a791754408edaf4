package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"union-portal/internal/domain"
	"union-portal/internal/middleware"
	"union-portal/internal/service/post"
)

type PostHandler struct {
	postService post.Service
}

func NewPostHandler(postService post.Service) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	var input domain.CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.postService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, post.ErrSlugTaken) {
			return fiber.NewError(fiber.StatusConflict, "Slug already in use")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.postService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PostHandler) Get(c *fiber.Ctx) error {
	slug := c.Params("slug")

	found, err := h.postService.GetBySlug(c.Context(), slug)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return middleware.NotFound("Post not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	if err := h.postService.Delete(c.Context(), postID); err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return middleware.NotFound("Post not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
