package handler

import (
	"github.com/gofiber/fiber/v2"

	"union-portal/internal/domain"
	"union-portal/internal/service"
)

type Handlers struct {
	Auth        *AuthHandler
	Post        *PostHandler
	Comment     *CommentHandler
	Wall        *WallHandler
	Application *ApplicationHandler
	Quiz        *QuizHandler
	Media       *MediaHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(services.Auth),
		Post:        NewPostHandler(services.Post),
		Comment:     NewCommentHandler(services.Comment, services.Post),
		Wall:        NewWallHandler(services.Wall),
		Application: NewApplicationHandler(services.Application),
		Quiz:        NewQuizHandler(services.Quiz),
		Media:       NewMediaHandler(services.Media),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
