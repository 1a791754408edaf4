package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"union-portal/internal/domain"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	List(ctx context.Context, status *domain.ApplicationStatus, params domain.PaginationParams) ([]domain.Application, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error
}

type applicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (application_id, full_name, email, student_id, department, motivation, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		app.ID, app.FullName, app.Email, app.StudentID, app.Department, app.Motivation, app.Status,
	).Scan(&app.CreatedAt, &app.UpdatedAt)
}

func (r *applicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	var app domain.Application
	query := `SELECT * FROM applications WHERE application_id = $1`
	err := r.db.GetContext(ctx, &app, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) List(ctx context.Context, status *domain.ApplicationStatus, params domain.PaginationParams) ([]domain.Application, int64, error) {
	params.Validate()

	countQuery := `SELECT COUNT(*) FROM applications`
	listQuery := `SELECT * FROM applications ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	args := []interface{}{params.PageSize, params.Offset()}

	var total int64
	if status != nil {
		countQuery = `SELECT COUNT(*) FROM applications WHERE status = $1`
		listQuery = `SELECT * FROM applications WHERE status = $3 ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, err
		}
		args = append(args, *status)
	} else {
		if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
			return nil, 0, err
		}
	}

	var apps []domain.Application
	if err := r.db.SelectContext(ctx, &apps, listQuery, args...); err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status = $2, updated_at = NOW() WHERE application_id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}
