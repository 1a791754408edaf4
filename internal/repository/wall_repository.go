package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"union-portal/internal/domain"
)

type WallRepository interface {
	Create(ctx context.Context, message *domain.WallMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WallMessage, error)
	List(ctx context.Context, includeHidden bool, params domain.PaginationParams) ([]domain.WallMessage, int64, error)
	SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type wallRepository struct {
	db *sqlx.DB
}

func NewWallRepository(db *sqlx.DB) WallRepository {
	return &wallRepository{db: db}
}

func (r *wallRepository) Create(ctx context.Context, message *domain.WallMessage) error {
	query := `
		INSERT INTO wall_messages (message_id, nickname, body, hidden)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		message.ID, message.Nickname, message.Body, message.Hidden,
	).Scan(&message.CreatedAt)
}

func (r *wallRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WallMessage, error) {
	var message domain.WallMessage
	query := `SELECT * FROM wall_messages WHERE message_id = $1`
	err := r.db.GetContext(ctx, &message, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *wallRepository) List(ctx context.Context, includeHidden bool, params domain.PaginationParams) ([]domain.WallMessage, int64, error) {
	params.Validate()

	filter := `WHERE hidden = FALSE`
	if includeHidden {
		filter = ``
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM wall_messages `+filter); err != nil {
		return nil, 0, err
	}

	var messages []domain.WallMessage
	query := `SELECT * FROM wall_messages ` + filter + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	if err := r.db.SelectContext(ctx, &messages, query, params.PageSize, params.Offset()); err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *wallRepository) SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	query := `UPDATE wall_messages SET hidden = $2 WHERE message_id = $1`
	_, err := r.db.ExecContext(ctx, query, id, hidden)
	return err
}

func (r *wallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM wall_messages WHERE message_id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
