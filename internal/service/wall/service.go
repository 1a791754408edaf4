package wall

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"union-portal/internal/domain"
	"union-portal/internal/repository"
)

var ErrMessageNotFound = errors.New("wall message not found")

const (
	minBodyLength = 5
	maxBodyLength = 500
)

// Moderator is the same gate comments pass through; the wall reuses it so
// one policy covers everything user-submitted.
type Moderator interface {
	Check(ctx context.Context, body string) domain.ModerationDecision
}

// MediaCleaner removes stored objects attached to a wall message.
type MediaCleaner interface {
	DeleteByWallMessage(ctx context.Context, messageID uuid.UUID) error
}

type Service interface {
	Submit(ctx context.Context, input domain.CreateWallMessageInput) (*domain.WallMessage, error)
	ListPublic(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.WallMessage], error)
	ListAll(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.WallMessage], error)
	SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	wallRepo     repository.WallRepository
	gate         Moderator
	mediaCleaner MediaCleaner
}

func NewService(wallRepo repository.WallRepository, gate Moderator, mediaCleaner MediaCleaner) Service {
	return &service{
		wallRepo:     wallRepo,
		gate:         gate,
		mediaCleaner: mediaCleaner,
	}
}

func (s *service) Submit(ctx context.Context, input domain.CreateWallMessageInput) (*domain.WallMessage, error) {
	var issues []domain.FieldIssue

	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		issues = append(issues, domain.FieldIssue{Field: "nickname", Message: "nickname is required"})
	}

	body := strings.TrimSpace(input.Body)
	if bodyLen := utf8.RuneCountInString(body); bodyLen < minBodyLength {
		issues = append(issues, domain.FieldIssue{Field: "body", Message: "message is too short"})
	} else if bodyLen > maxBodyLength {
		issues = append(issues, domain.FieldIssue{Field: "body", Message: "message is too long"})
	}

	if len(issues) > 0 {
		return nil, domain.NewValidationError(issues...)
	}

	decision := s.gate.Check(ctx, body)
	if !decision.IsSafe {
		return nil, &domain.ModerationRejectedError{Reason: decision.Reason}
	}

	message := &domain.WallMessage{
		ID:       uuid.New(),
		Nickname: nickname,
		Body:     body,
	}
	if err := s.wallRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *service) ListPublic(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.WallMessage], error) {
	return s.list(ctx, false, params)
}

func (s *service) ListAll(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.WallMessage], error) {
	return s.list(ctx, true, params)
}

func (s *service) list(ctx context.Context, includeHidden bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.WallMessage], error) {
	messages, total, err := s.wallRepo.List(ctx, includeHidden, params)
	if err != nil {
		return domain.PaginatedResponse[domain.WallMessage]{}, err
	}
	params.Validate()
	return domain.NewPaginatedResponse(messages, params.Page, params.PageSize, total), nil
}

func (s *service) SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	message, err := s.wallRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if message == nil {
		return ErrMessageNotFound
	}
	return s.wallRepo.SetHidden(ctx, id, hidden)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	message, err := s.wallRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if message == nil {
		return ErrMessageNotFound
	}

	if s.mediaCleaner != nil {
		if err := s.mediaCleaner.DeleteByWallMessage(ctx, id); err != nil {
			return err
		}
	}
	return s.wallRepo.Delete(ctx, id)
}
