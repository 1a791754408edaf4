package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"union-portal/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPost(ctx context.Context, postID uuid.UUID) error
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (comment_id, post_id, parent_id, author, is_anonymous, body)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.PostID, comment.ParentID, comment.Author, comment.IsAnonymous, comment.Body,
	).Scan(&comment.CreatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	query := `SELECT * FROM comments WHERE comment_id = $1`
	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	var comments []domain.Comment
	query := `SELECT * FROM comments WHERE post_id = $1`
	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM comments WHERE comment_id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *commentRepository) DeleteByPost(ctx context.Context, postID uuid.UUID) error {
	query := `DELETE FROM comments WHERE post_id = $1`
	_, err := r.db.ExecContext(ctx, query, postID)
	return err
}
