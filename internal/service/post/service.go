package post

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"union-portal/internal/domain"
	"union-portal/internal/repository"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrSlugTaken    = errors.New("slug already in use")
)

// MediaCleaner removes stored objects attached to a comment.
type MediaCleaner interface {
	DeleteByComment(ctx context.Context, commentID uuid.UUID) error
}

type Service interface {
	Create(ctx context.Context, input domain.CreatePostInput) (*domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Post], error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	mediaCleaner MediaCleaner
	redis        *redis.Client
}

func NewService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, mediaCleaner MediaCleaner, redis *redis.Client) Service {
	return &service{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		mediaCleaner: mediaCleaner,
		redis:        redis,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreatePostInput) (*domain.Post, error) {
	var issues []domain.FieldIssue
	if strings.TrimSpace(input.Title) == "" {
		issues = append(issues, domain.FieldIssue{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(input.Body) == "" {
		issues = append(issues, domain.FieldIssue{Field: "body", Message: "body is required"})
	}
	slug := strings.TrimSpace(strings.ToLower(input.Slug))
	if slug == "" {
		issues = append(issues, domain.FieldIssue{Field: "slug", Message: "slug is required"})
	}
	if len(issues) > 0 {
		return nil, domain.NewValidationError(issues...)
	}

	existing, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	post := &domain.Post{
		ID:     uuid.New(),
		Slug:   slug,
		Title:  strings.TrimSpace(input.Title),
		Body:   input.Body,
		Author: strings.TrimSpace(input.Author),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetBySlug is the hot path: every page view and comment submission resolves
// the post through it, so the row is cached for a few minutes.
func (s *service) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	cacheKey := "posts:slug:" + slug

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var post domain.Post
			if json.Unmarshal([]byte(cached), &post) == nil {
				return &post, nil
			}
		}
	}

	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if s.redis != nil {
		if postJSON, err := json.Marshal(post); err == nil {
			_ = s.redis.Set(ctx, cacheKey, postJSON, 5*time.Minute).Err()
		}
	}

	return post, nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Post], error) {
	posts, total, err := s.postRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Post]{}, err
	}
	params.Validate()
	return domain.NewPaginatedResponse(posts, params.Page, params.PageSize, total), nil
}

// Delete removes a post, its comments and their attached media. Wall and
// application data are unrelated and untouched.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return err
	}
	if s.mediaCleaner != nil {
		for _, c := range comments {
			if err := s.mediaCleaner.DeleteByComment(ctx, c.ID); err != nil {
				return err
			}
		}
	}

	if err := s.commentRepo.DeleteByPost(ctx, id); err != nil {
		return err
	}
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.redis != nil {
		_ = s.redis.Del(ctx, "comments:rows:"+id.String(), "posts:slug:"+post.Slug).Err()
	}
	return nil
}
