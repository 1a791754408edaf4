package comment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"union-portal/internal/domain"
	"union-portal/internal/repository"
)

var (
	ErrStoreUnavailable = errors.New("comment store unavailable")
	ErrCommentNotFound  = errors.New("comment not found")
)

const minBodyLength = 5

// Moderator is the gate every submission passes before persistence.
type Moderator interface {
	Check(ctx context.Context, body string) domain.ModerationDecision
}

// MediaCleaner removes stored objects attached to a comment when the
// comment is deleted.
type MediaCleaner interface {
	DeleteByComment(ctx context.Context, commentID uuid.UUID) error
}

type Service interface {
	Submit(ctx context.Context, postID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error)
	ListTree(ctx context.Context, postID uuid.UUID) ([]*domain.CommentNode, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	commentRepo  repository.CommentRepository
	gate         Moderator
	mediaCleaner MediaCleaner
	redis        *redis.Client
}

func NewService(commentRepo repository.CommentRepository, gate Moderator, mediaCleaner MediaCleaner, redis *redis.Client) Service {
	return &service{
		commentRepo:  commentRepo,
		gate:         gate,
		mediaCleaner: mediaCleaner,
		redis:        redis,
	}
}

// Submit validates, moderates, masks anonymity and persists a comment, in
// that order. Nothing is written unless every step before the insert
// passes; the insert itself is the only write.
func (s *service) Submit(ctx context.Context, postID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			log.Printf("Failed to look up parent comment %s: %v", *input.ParentID, err)
			return nil, ErrStoreUnavailable
		}
		if parent == nil || parent.PostID != postID {
			return nil, domain.NewValidationError(domain.FieldIssue{
				Field:   "parent_id",
				Message: "referenced comment does not exist",
			})
		}
	}

	decision := s.gate.Check(ctx, input.Body)
	if !decision.IsSafe {
		return nil, &domain.ModerationRejectedError{Reason: decision.Reason}
	}

	comment := &domain.Comment{
		ID:          uuid.New(),
		PostID:      postID,
		ParentID:    input.ParentID,
		IsAnonymous: input.IsAnonymous,
		Body:        strings.TrimSpace(input.Body),
	}
	// Anonymity is enforced here, at write time: once the row is stored
	// there is no author identity left to recover.
	if !input.IsAnonymous {
		author := strings.TrimSpace(input.Author)
		comment.Author = &author
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		log.Printf("Failed to persist comment: %v", err)
		return nil, ErrStoreUnavailable
	}

	s.invalidateTree(ctx, postID)

	return comment, nil
}

// ListTree returns the full forest for a post. The whole tree is
// materialized on every call; there is no pagination or depth limit.
func (s *service) ListTree(ctx context.Context, postID uuid.UUID) ([]*domain.CommentNode, error) {
	rows, err := s.cachedRows(ctx, postID)
	if err != nil {
		return nil, ErrStoreUnavailable
	}
	return BuildTree(rows, time.Now().UTC()), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return ErrStoreUnavailable
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	// Attached media goes first so a failed object delete leaves the row
	// (and another delete attempt) in place. Children are left alone and
	// become orphans the tree builder drops.
	if s.mediaCleaner != nil {
		if err := s.mediaCleaner.DeleteByComment(ctx, id); err != nil {
			return err
		}
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return ErrStoreUnavailable
	}

	s.invalidateTree(ctx, comment.PostID)
	return nil
}

func validate(input domain.CreateCommentInput) error {
	var issues []domain.FieldIssue

	// Length limits count characters, not bytes; much of the audience
	// writes accented or CJK text.
	body := strings.TrimSpace(input.Body)
	if body == "" {
		issues = append(issues, domain.FieldIssue{Field: "body", Message: "body is required"})
	} else if utf8.RuneCountInString(body) < minBodyLength {
		issues = append(issues, domain.FieldIssue{Field: "body", Message: fmt.Sprintf("body must be at least %d characters", minBodyLength)})
	}

	if !input.IsAnonymous && strings.TrimSpace(input.Author) == "" {
		issues = append(issues, domain.FieldIssue{Field: "author", Message: "author is required unless anonymous"})
	}

	if len(issues) > 0 {
		return domain.NewValidationError(issues...)
	}
	return nil
}

func (s *service) cachedRows(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	cacheKey := fmt.Sprintf("comments:rows:%s", postID)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var rows []domain.Comment
			if json.Unmarshal([]byte(cached), &rows) == nil {
				return rows, nil
			}
		}
	}

	rows, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if rowsJSON, err := json.Marshal(rows); err == nil {
			_ = s.redis.Set(ctx, cacheKey, rowsJSON, 5*time.Minute).Err()
		}
	}

	return rows, nil
}

func (s *service) invalidateTree(ctx context.Context, postID uuid.UUID) {
	if s.redis == nil {
		return
	}
	_ = s.redis.Del(ctx, fmt.Sprintf("comments:rows:%s", postID)).Err()
}
