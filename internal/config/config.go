package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string

	DatabaseURL string

	RedisURL string

	JWTSecret       string
	JWTAccessExpiry time.Duration

	MinIOEndpoint       string
	MinIOPublicEndpoint string
	MinIOAccessKey      string
	MinIOSecretKey      string
	MinIOBucket         string
	MinIOUseSSL         bool
	MinIOPublicUseSSL   bool

	CORSOrigins string

	ResendAPIKey string
	FromEmail    string

	// Generative AI backend, shared by the moderation classifier and the
	// quiz advisor.
	GenAIBaseURL string
	GenAIAPIKey  string
	GenAIModel   string

	// Moderation gate. Thresholds map to the classifier's per-category
	// sensitivity; OnClassifierError selects fail-open ("accept") or
	// fail-closed ("reject") behavior when the classifier is unreachable.
	ModerationOnError      string
	ModerationTimeout      time.Duration
	ModerationRetries      int
	HateSpeechThreshold    string
	DangerousThreshold     string
	HarassmentThreshold    string
	SexuallyExplicitThresh string

	// Recruitment spreadsheet webhook (Apps-Script style endpoint).
	SheetWebhookURL   string
	SheetWebhookToken string
	SheetTimeout      time.Duration

	QuizDefinitionPath string
	QuizStateTTL       time.Duration

	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTAccessExpiry: getDurationEnv("JWT_ACCESS_EXPIRY", 12*time.Hour),

		MinIOEndpoint:       getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOPublicEndpoint: getEnv("MINIO_PUBLIC_ENDPOINT", getEnv("MINIO_ENDPOINT", "localhost:9000")),
		MinIOAccessKey:      getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey:      getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:         getEnv("MINIO_BUCKET", "union-media"),
		MinIOUseSSL:         getBoolEnv("MINIO_USE_SSL", false),
		MinIOPublicUseSSL:   getBoolEnv("MINIO_PUBLIC_USE_SSL", true),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@example.com"),

		GenAIBaseURL: getEnv("GENAI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GenAIAPIKey:  getEnv("GENAI_API_KEY", ""),
		GenAIModel:   getEnv("GENAI_MODEL", "gemini-1.5-flash"),

		ModerationOnError:      getEnv("MODERATION_ON_ERROR", "accept"),
		ModerationTimeout:      getDurationEnv("MODERATION_TIMEOUT", 5*time.Second),
		ModerationRetries:      getIntEnv("MODERATION_RETRIES", 1),
		HateSpeechThreshold:    getEnv("MODERATION_HATE_SPEECH", "BLOCK_LOW_AND_ABOVE"),
		DangerousThreshold:     getEnv("MODERATION_DANGEROUS", "BLOCK_LOW_AND_ABOVE"),
		HarassmentThreshold:    getEnv("MODERATION_HARASSMENT", "BLOCK_LOW_AND_ABOVE"),
		SexuallyExplicitThresh: getEnv("MODERATION_SEXUALLY_EXPLICIT", "BLOCK_LOW_AND_ABOVE"),

		SheetWebhookURL:   getEnv("SHEET_WEBHOOK_URL", ""),
		SheetWebhookToken: getEnv("SHEET_WEBHOOK_TOKEN", ""),
		SheetTimeout:      getDurationEnv("SHEET_TIMEOUT", 10*time.Second),

		QuizDefinitionPath: getEnv("QUIZ_DEFINITION_PATH", "./quiz/personality.yaml"),
		QuizStateTTL:       getDurationEnv("QUIZ_STATE_TTL", 30*24*time.Hour),

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
