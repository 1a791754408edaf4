package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"union-portal/internal/domain"
)

type MediaRepository interface {
	Create(ctx context.Context, media *domain.Media) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	ListByComment(ctx context.Context, commentID uuid.UUID) ([]domain.Media, error)
	ListByWallMessage(ctx context.Context, messageID uuid.UUID) ([]domain.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type mediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *domain.Media) error {
	query := `
		INSERT INTO media (media_id, comment_id, wall_message_id, file_name, file_size, mime_type, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		media.ID, media.CommentID, media.WallMessageID, media.FileName, media.FileSize, media.MimeType, media.StoragePath,
	).Scan(&media.CreatedAt)
}

func (r *mediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	var media domain.Media
	query := `SELECT * FROM media WHERE media_id = $1`
	err := r.db.GetContext(ctx, &media, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) ListByComment(ctx context.Context, commentID uuid.UUID) ([]domain.Media, error) {
	var media []domain.Media
	query := `SELECT * FROM media WHERE comment_id = $1`
	if err := r.db.SelectContext(ctx, &media, query, commentID); err != nil {
		return nil, err
	}
	return media, nil
}

func (r *mediaRepository) ListByWallMessage(ctx context.Context, messageID uuid.UUID) ([]domain.Media, error) {
	var media []domain.Media
	query := `SELECT * FROM media WHERE wall_message_id = $1`
	if err := r.db.SelectContext(ctx, &media, query, messageID); err != nil {
		return nil, err
	}
	return media, nil
}

func (r *mediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM media WHERE media_id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
