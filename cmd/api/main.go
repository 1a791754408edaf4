package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"union-portal/internal/config"
	"union-portal/internal/handler"
	"union-portal/internal/middleware"
	"union-portal/internal/repository"
	"union-portal/internal/service"
	"union-portal/internal/service/quiz"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (media upload will not work)", err)
	}

	quizDef, err := quiz.LoadDefinition(cfg.QuizDefinitionPath)
	if err != nil {
		log.Fatalf("Failed to load quiz definition: %v", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, quizDef, cfg)
	handlers := handler.NewHandlers(services)

	if err := services.Auth.EnsureAdmin(context.Background()); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", h.Auth.Login)

	posts := v1.Group("/posts")
	posts.Get("/", h.Post.List)
	posts.Get("/:slug", h.Post.Get)
	posts.Get("/:slug/comments", h.Comment.List)
	posts.Post("/:slug/comments", h.Comment.Create)

	wallGroup := v1.Group("/wall")
	wallGroup.Get("/", h.Wall.List)
	wallGroup.Post("/", h.Wall.Create)

	applications := v1.Group("/applications")
	applications.Post("/", h.Application.Submit)

	quizGroup := v1.Group("/quiz")
	quizGroup.Get("/", h.Quiz.Definition)
	quizGroup.Post("/submit", h.Quiz.Submit)
	quizGroup.Post("/chat", h.Quiz.Chat)
	quizGroup.Get("/state/:clientId", h.Quiz.State)

	media := v1.Group("/media")
	media.Post("/", h.Media.Upload)
	media.Get("/:mediaId", h.Media.Get)

	admin := v1.Group("/admin", middleware.AuthRequired(services.Auth))
	admin.Get("/me", h.Auth.Me)

	adminPosts := admin.Group("/posts", middleware.RequireRole("admin"))
	adminPosts.Post("/", h.Post.Create)
	adminPosts.Delete("/:postId", h.Post.Delete)

	adminComments := admin.Group("/comments", middleware.RequireRole("moderator"))
	adminComments.Delete("/:commentId", h.Comment.Delete)

	adminWall := admin.Group("/wall", middleware.RequireRole("moderator"))
	adminWall.Get("/", h.Wall.AdminList)
	adminWall.Patch("/:messageId/hidden", h.Wall.SetHidden)
	adminWall.Delete("/:messageId", h.Wall.Delete)

	adminApplications := admin.Group("/applications", middleware.RequireRole("admin"))
	adminApplications.Get("/", h.Application.List)
	adminApplications.Patch("/:applicationId/status", h.Application.UpdateStatus)

	adminMedia := admin.Group("/media", middleware.RequireRole("moderator"))
	adminMedia.Delete("/:mediaId", h.Media.Delete)
}
