package wall_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"union-portal/internal/domain"
	"union-portal/internal/mocks"
	"union-portal/internal/service/wall"
)

func TestWallSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mocks.WallRepository)
		gate := new(mocks.Moderator)
		svc := wall.NewService(mockRepo, gate, nil)

		gate.On("Check", ctx, "hello from the A80 wall").
			Return(domain.ModerationDecision{IsSafe: true}).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(m *domain.WallMessage) bool {
			return m.Nickname == "zx" && !m.Hidden
		})).Return(nil).Once()

		message, err := svc.Submit(ctx, domain.CreateWallMessageInput{
			Nickname: "zx",
			Body:     "hello from the A80 wall",
		})

		require.NoError(t, err)
		assert.Equal(t, "zx", message.Nickname)
		mockRepo.AssertExpectations(t)
	})

	t.Run("moderation reject", func(t *testing.T) {
		mockRepo := new(mocks.WallRepository)
		gate := new(mocks.Moderator)
		svc := wall.NewService(mockRepo, gate, nil)

		gate.On("Check", ctx, mock.Anything).
			Return(domain.ModerationDecision{IsSafe: false, Reason: "contains harassment"}).Once()

		_, err := svc.Submit(ctx, domain.CreateWallMessageInput{
			Nickname: "zx",
			Body:     "something awful here",
		})

		var moderationErr *domain.ModerationRejectedError
		require.ErrorAs(t, err, &moderationErr)
		assert.Equal(t, "contains harassment", moderationErr.Reason)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("validation", func(t *testing.T) {
		svc := wall.NewService(new(mocks.WallRepository), new(mocks.Moderator), nil)

		_, err := svc.Submit(ctx, domain.CreateWallMessageInput{Body: "hi"})

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Issues, 2)
	})

	t.Run("lengths count characters not bytes", func(t *testing.T) {
		mockRepo := new(mocks.WallRepository)
		gate := new(mocks.Moderator)
		svc := wall.NewService(mockRepo, gate, nil)

		// 4 characters, 5 bytes: under the minimum.
		_, err := svc.Submit(ctx, domain.CreateWallMessageInput{Nickname: "ln", Body: "chào"})

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "body", validationErr.Issues[0].Field)

		// 500 characters, 1000 bytes: exactly at the maximum, accepted.
		gate.On("Check", ctx, mock.Anything).
			Return(domain.ModerationDecision{IsSafe: true}).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.WallMessage")).Return(nil).Once()

		_, err = svc.Submit(ctx, domain.CreateWallMessageInput{
			Nickname: "ln",
			Body:     strings.Repeat("à", 500),
		})
		require.NoError(t, err)
	})
}

func TestWallModeration(t *testing.T) {
	ctx := context.Background()
	messageID := uuid.New()

	t.Run("hide existing", func(t *testing.T) {
		mockRepo := new(mocks.WallRepository)
		svc := wall.NewService(mockRepo, new(mocks.Moderator), nil)

		mockRepo.On("GetByID", ctx, messageID).
			Return(&domain.WallMessage{ID: messageID}, nil).Once()
		mockRepo.On("SetHidden", ctx, messageID, true).Return(nil).Once()

		require.NoError(t, svc.SetHidden(ctx, messageID, true))
		mockRepo.AssertExpectations(t)
	})

	t.Run("hide unknown", func(t *testing.T) {
		mockRepo := new(mocks.WallRepository)
		svc := wall.NewService(mockRepo, new(mocks.Moderator), nil)

		mockRepo.On("GetByID", ctx, messageID).Return(nil, nil).Once()

		assert.ErrorIs(t, svc.SetHidden(ctx, messageID, true), wall.ErrMessageNotFound)
	})

	t.Run("delete cleans attached media", func(t *testing.T) {
		mockRepo := new(mocks.WallRepository)
		cleaner := new(mocks.MediaCleaner)
		svc := wall.NewService(mockRepo, new(mocks.Moderator), cleaner)

		mockRepo.On("GetByID", ctx, messageID).
			Return(&domain.WallMessage{ID: messageID}, nil).Once()
		cleaner.On("DeleteByWallMessage", ctx, messageID).Return(nil).Once()
		mockRepo.On("Delete", ctx, messageID).Return(nil).Once()

		require.NoError(t, svc.Delete(ctx, messageID))
		cleaner.AssertExpectations(t)
	})
}
