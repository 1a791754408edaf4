package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"union-portal/internal/config"
	"union-portal/internal/domain"
	"union-portal/internal/repository"
)

var (
	ErrMediaNotFound      = errors.New("media not found")
	ErrStorageUnavailable = errors.New("media storage unavailable")
)

type Service interface {
	Upload(ctx context.Context, commentID, wallMessageID *uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Media, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByComment(ctx context.Context, commentID uuid.UUID) error
	DeleteByWallMessage(ctx context.Context, messageID uuid.UUID) error
}

type service struct {
	mediaRepo   repository.MediaRepository
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(mediaRepo repository.MediaRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		mediaRepo:   mediaRepo,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) Upload(ctx context.Context, commentID, wallMessageID *uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Media, error) {
	// The server boots without MinIO (connect failures only warn); uploads
	// are declined cleanly until it comes back.
	if s.minioClient == nil {
		return nil, ErrStorageUnavailable
	}

	mediaID := uuid.New()
	storagePath := fmt.Sprintf("media/%s/%s", time.Now().Format("2006/01"), mediaID.String())

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	media := &domain.Media{
		ID:            mediaID,
		CommentID:     commentID,
		WallMessageID: wallMessageID,
		FileName:      fileName,
		FileSize:      fileSize,
		MimeType:      mimeType,
		StoragePath:   storagePath,
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	media.URL = s.getPublicURL(storagePath)
	return media, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, ErrMediaNotFound
	}
	media.URL = s.getPublicURL(media.StoragePath)
	return media, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if media == nil {
		return ErrMediaNotFound
	}
	return s.remove(ctx, *media)
}

func (s *service) DeleteByComment(ctx context.Context, commentID uuid.UUID) error {
	media, err := s.mediaRepo.ListByComment(ctx, commentID)
	if err != nil {
		return err
	}
	return s.removeAll(ctx, media)
}

func (s *service) DeleteByWallMessage(ctx context.Context, messageID uuid.UUID) error {
	media, err := s.mediaRepo.ListByWallMessage(ctx, messageID)
	if err != nil {
		return err
	}
	return s.removeAll(ctx, media)
}

func (s *service) removeAll(ctx context.Context, media []domain.Media) error {
	for _, m := range media {
		if err := s.remove(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) remove(ctx context.Context, media domain.Media) error {
	if s.minioClient != nil {
		err := s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, media.StoragePath, minio.RemoveObjectOptions{})
		if err != nil {
			log.Printf("Failed to remove object %s: %v", media.StoragePath, err)
		}
	}
	return s.mediaRepo.Delete(ctx, media.ID)
}

func (s *service) getPublicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   s.cfg.MinIOPublicEndpoint,
		Path:   fmt.Sprintf("/%s/%s", s.cfg.MinIOBucket, storagePath),
	}
	return u.String()
}
