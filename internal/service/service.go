package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"union-portal/internal/config"
	"union-portal/internal/domain"
	"union-portal/internal/pkg/genai"
	"union-portal/internal/pkg/sheets"
	"union-portal/internal/repository"
	"union-portal/internal/service/application"
	"union-portal/internal/service/auth"
	"union-portal/internal/service/comment"
	"union-portal/internal/service/email"
	"union-portal/internal/service/media"
	"union-portal/internal/service/moderation"
	"union-portal/internal/service/post"
	"union-portal/internal/service/quiz"
	"union-portal/internal/service/wall"
)

type Services struct {
	Auth        auth.Service
	Post        post.Service
	Comment     comment.Service
	Wall        wall.Service
	Application application.Service
	Quiz        quiz.Service
	Media       media.Service
	Email       email.Service
	Gate        *moderation.Gate
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, quizDef *domain.QuizDefinition, cfg *config.Config) *Services {
	aiClient := genai.NewClient(cfg.GenAIBaseURL, cfg.GenAIAPIKey, cfg.GenAIModel)
	classifier := moderation.NewGenAIClassifier(aiClient, cfg)
	gate := moderation.NewGate(classifier, cfg)

	sheetClient := sheets.NewClient(cfg.SheetWebhookURL, cfg.SheetWebhookToken, cfg.SheetTimeout)

	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, cfg)
	mediaService := media.NewService(repos.Media, minioClient, cfg)
	commentService := comment.NewService(repos.Comment, gate, mediaService, redisClient)
	postService := post.NewService(repos.Post, repos.Comment, mediaService, redisClient)
	wallService := wall.NewService(repos.Wall, gate, mediaService)
	applicationService := application.NewService(repos.Application, sheetClient, emailService)
	quizService := quiz.NewService(quizDef, aiClient, redisClient, cfg.QuizStateTTL)

	return &Services{
		Auth:        authService,
		Post:        postService,
		Comment:     commentService,
		Wall:        wallService,
		Application: applicationService,
		Quiz:        quizService,
		Media:       mediaService,
		Email:       emailService,
		Gate:        gate,
	}
}
