package comment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"union-portal/internal/config"
	"union-portal/internal/domain"
	"union-portal/internal/mocks"
	"union-portal/internal/service/comment"
	"union-portal/internal/service/moderation"
)

func gateWith(classifier moderation.Classifier, onError string) *moderation.Gate {
	return moderation.NewGate(classifier, &config.Config{
		ModerationOnError: onError,
		ModerationTimeout: time.Second,
		ModerationRetries: 1,
	})
}

func safeDecision() domain.ModerationDecision {
	return domain.ModerationDecision{IsSafe: true}
}

func TestSubmit_Validation(t *testing.T) {
	mockRepo := new(mocks.CommentRepository)
	gate := new(mocks.Moderator)
	svc := comment.NewService(mockRepo, gate, nil, nil)

	ctx := context.Background()
	postID := uuid.New()

	t.Run("short body and missing author", func(t *testing.T) {
		_, err := svc.Submit(ctx, postID, domain.CreateCommentInput{Body: "hey"})

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Issues, 2)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("minimum length counts characters not bytes", func(t *testing.T) {
		// "chào" is 4 characters but 5 bytes; it must still fail the
		// 5-character minimum.
		_, err := svc.Submit(ctx, postID, domain.CreateCommentInput{
			Author: "Linh",
			Body:   "chào",
		})

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "body", validationErr.Issues[0].Field)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("five accented characters pass", func(t *testing.T) {
		gate.On("Check", ctx, mock.Anything).Return(safeDecision()).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()

		_, err := svc.Submit(ctx, postID, domain.CreateCommentInput{
			Author: "Linh",
			Body:   "chào!",
		})

		require.NoError(t, err)
	})

	t.Run("anonymous needs no author", func(t *testing.T) {
		gate.On("Check", ctx, mock.Anything).Return(safeDecision()).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.IsAnonymous && c.Author == nil
		})).Return(nil).Once()

		created, err := svc.Submit(ctx, postID, domain.CreateCommentInput{
			Body:        "long enough body",
			IsAnonymous: true,
		})

		require.NoError(t, err)
		assert.Nil(t, created.Author)
		mockRepo.AssertExpectations(t)
	})

	t.Run("anonymity nulls a submitted author", func(t *testing.T) {
		gate.On("Check", ctx, mock.Anything).Return(safeDecision()).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.Author == nil
		})).Return(nil).Once()

		created, err := svc.Submit(ctx, postID, domain.CreateCommentInput{
			Author:      "Jane",
			Body:        "long enough body",
			IsAnonymous: true,
		})

		require.NoError(t, err)
		assert.Nil(t, created.Author)
	})
}

func TestSubmit_ParentMustExist(t *testing.T) {
	mockRepo := new(mocks.CommentRepository)
	gate := new(mocks.Moderator)
	svc := comment.NewService(mockRepo, gate, nil, nil)

	ctx := context.Background()
	postID := uuid.New()
	parentID := uuid.New()

	mockRepo.On("GetByID", ctx, parentID).Return(nil, nil).Once()

	_, err := svc.Submit(ctx, postID, domain.CreateCommentInput{
		Author:   "Bob",
		Body:     "replying to nothing",
		ParentID: &parentID,
	})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "parent_id", validationErr.Issues[0].Field)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestSubmit_ModerationReject(t *testing.T) {
	mockRepo := new(mocks.CommentRepository)
	classifier := new(mocks.Classifier)
	svc := comment.NewService(mockRepo, gateWith(classifier, moderation.OnErrorAccept), nil, nil)

	ctx := context.Background()

	classifier.On("Classify", mock.Anything, mock.Anything).
		Return(domain.ModerationDecision{IsSafe: false, Reason: "spam"}, nil).Once()

	_, err := svc.Submit(ctx, uuid.New(), domain.CreateCommentInput{
		Author: "Bob",
		Body:   "buy cheap watches",
	})

	var moderationErr *domain.ModerationRejectedError
	require.ErrorAs(t, err, &moderationErr)
	assert.Equal(t, "spam", moderationErr.Reason)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestSubmit_ClassifierDownFailOpen(t *testing.T) {
	mockRepo := new(mocks.CommentRepository)
	classifier := new(mocks.Classifier)
	svc := comment.NewService(mockRepo, gateWith(classifier, moderation.OnErrorAccept), nil, nil)

	ctx := context.Background()

	classifier.On("Classify", mock.Anything, mock.Anything).
		Return(domain.ModerationDecision{}, errors.New("connection refused"))
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()

	created, err := svc.Submit(ctx, uuid.New(), domain.CreateCommentInput{
		Author: "Bob",
		Body:   "a perfectly fine comment",
	})

	require.NoError(t, err)
	assert.NotNil(t, created)
	mockRepo.AssertExpectations(t)
}

func TestSubmit_StoreDown(t *testing.T) {
	mockRepo := new(mocks.CommentRepository)
	gate := new(mocks.Moderator)
	svc := comment.NewService(mockRepo, gate, nil, nil)

	ctx := context.Background()

	gate.On("Check", ctx, mock.Anything).Return(safeDecision()).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Comment")).
		Return(errors.New("dial tcp: connection refused")).Once()

	_, err := svc.Submit(ctx, uuid.New(), domain.CreateCommentInput{
		Author: "Bob",
		Body:   "a perfectly fine comment",
	})

	assert.ErrorIs(t, err, comment.ErrStoreUnavailable)
}

func TestListTree_ExcludesRejectedBody(t *testing.T) {
	mockRepo := new(mocks.CommentRepository)
	classifier := new(mocks.Classifier)
	svc := comment.NewService(mockRepo, gateWith(classifier, moderation.OnErrorAccept), nil, nil)

	ctx := context.Background()
	postID := uuid.New()

	classifier.On("Classify", mock.Anything, mock.Anything).
		Return(domain.ModerationDecision{IsSafe: false, Reason: "spam"}, nil).Once()

	_, err := svc.Submit(ctx, postID, domain.CreateCommentInput{Author: "Bob", Body: "rejected body"})
	require.Error(t, err)

	mockRepo.On("ListByPost", ctx, postID).Return([]domain.Comment{}, nil).Once()

	tree, err := svc.ListTree(ctx, postID)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	commentID := uuid.New()
	postID := uuid.New()

	existing := &domain.Comment{ID: commentID, PostID: postID}

	t.Run("removes attached media first", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		cleaner := new(mocks.MediaCleaner)
		svc := comment.NewService(mockRepo, new(mocks.Moderator), cleaner, nil)

		mockRepo.On("GetByID", ctx, commentID).Return(existing, nil).Once()
		cleaner.On("DeleteByComment", ctx, commentID).Return(nil).Once()
		mockRepo.On("Delete", ctx, commentID).Return(nil).Once()

		require.NoError(t, svc.Delete(ctx, commentID))
		cleaner.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown comment", func(t *testing.T) {
		mockRepo := new(mocks.CommentRepository)
		svc := comment.NewService(mockRepo, new(mocks.Moderator), nil, nil)

		mockRepo.On("GetByID", ctx, commentID).Return(nil, nil).Once()

		assert.ErrorIs(t, svc.Delete(ctx, commentID), comment.ErrCommentNotFound)
	})
}
