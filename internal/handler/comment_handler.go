package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"union-portal/internal/domain"
	"union-portal/internal/middleware"
	"union-portal/internal/service/comment"
	"union-portal/internal/service/post"
)

type CommentHandler struct {
	commentService comment.Service
	postService    post.Service
}

func NewCommentHandler(commentService comment.Service, postService post.Service) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		postService:    postService,
	}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	found, err := h.postService.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return middleware.NotFound("Post not found")
		}
		return err
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.commentService.Submit(c.Context(), found.ID, input)
	if err != nil {
		if errors.Is(err, comment.ErrStoreUnavailable) {
			return middleware.ServiceUnavailable("Could not save your comment, please try again")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	found, err := h.postService.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return middleware.NotFound("Post not found")
		}
		return err
	}

	tree, err := h.commentService.ListTree(c.Context(), found.ID)
	if err != nil {
		if errors.Is(err, comment.ErrStoreUnavailable) {
			return middleware.ServiceUnavailable("Comments are temporarily unavailable")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"comments": tree})
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	if err := h.commentService.Delete(c.Context(), commentID); err != nil {
		if errors.Is(err, comment.ErrCommentNotFound) {
			return middleware.NotFound("Comment not found")
		}
		if errors.Is(err, comment.ErrStoreUnavailable) {
			return middleware.ServiceUnavailable("Could not delete the comment, please try again")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
