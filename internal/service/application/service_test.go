package application_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"union-portal/internal/domain"
	"union-portal/internal/mocks"
	"union-portal/internal/service/application"
)

func validInput() domain.CreateApplicationInput {
	return domain.CreateApplicationInput{
		FullName:   "Dana Lee",
		Email:      "dana@example.edu",
		StudentID:  "20250042",
		Department: "events",
		Motivation: "I want to help organize the orientation week events.",
	}
}

func TestApplicationSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and forwards to sheet", func(t *testing.T) {
		mockRepo := new(mocks.ApplicationRepository)
		sheet := new(mocks.SheetAppender)
		emailSvc := new(mocks.EmailService)
		svc := application.NewService(mockRepo, sheet, emailSvc)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Application) bool {
			return a.FullName == "Dana Lee" && a.Status == domain.ApplicationReceived
		})).Return(nil).Once()
		sheet.On("Append", ctx, mock.AnythingOfType("domain.Application")).Return(nil).Once()
		emailSvc.On("SendApplicationReceived", mock.Anything, "dana@example.edu", "Dana Lee").Return(nil).Maybe()

		app, err := svc.Submit(ctx, validInput())

		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationReceived, app.Status)
		mockRepo.AssertExpectations(t)
		sheet.AssertExpectations(t)
	})

	t.Run("sheet failure does not fail the submission", func(t *testing.T) {
		mockRepo := new(mocks.ApplicationRepository)
		sheet := new(mocks.SheetAppender)
		svc := application.NewService(mockRepo, sheet, nil)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Once()
		sheet.On("Append", ctx, mock.AnythingOfType("domain.Application")).
			Return(assert.AnError).Once()

		_, err := svc.Submit(ctx, validInput())
		assert.NoError(t, err)
	})

	t.Run("field issues reported together", func(t *testing.T) {
		svc := application.NewService(new(mocks.ApplicationRepository), nil, nil)

		_, err := svc.Submit(ctx, domain.CreateApplicationInput{
			Email:      "not-an-email",
			Motivation: "too short",
		})

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)

		fields := make([]string, 0, len(validationErr.Issues))
		for _, issue := range validationErr.Issues {
			fields = append(fields, issue.Field)
		}
		assert.ElementsMatch(t, []string{"full_name", "email", "student_id", "department", "motivation"}, fields)
	})

	t.Run("motivation length counts characters not bytes", func(t *testing.T) {
		mockRepo := new(mocks.ApplicationRepository)
		svc := application.NewService(mockRepo, nil, nil)

		// 19 characters in 38 bytes: still too short.
		input := validInput()
		input.Motivation = strings.Repeat("à", 19)

		_, err := svc.Submit(ctx, input)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "motivation", validationErr.Issues[0].Field)

		// One more character clears the minimum.
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Once()
		input.Motivation = strings.Repeat("à", 20)

		_, err = svc.Submit(ctx, input)
		require.NoError(t, err)
	})
}

func TestApplicationUpdateStatus(t *testing.T) {
	ctx := context.Background()
	appID := uuid.New()

	existing := &domain.Application{
		ID:        appID,
		FullName:  "Dana Lee",
		Email:     "dana@example.edu",
		Status:    domain.ApplicationReceived,
		CreatedAt: time.Now(),
	}

	t.Run("accepted sends notification", func(t *testing.T) {
		mockRepo := new(mocks.ApplicationRepository)
		emailSvc := new(mocks.EmailService)
		svc := application.NewService(mockRepo, nil, emailSvc)

		mockRepo.On("GetByID", ctx, appID).Return(existing, nil).Once()
		mockRepo.On("UpdateStatus", ctx, appID, domain.ApplicationAccepted).Return(nil).Once()
		emailSvc.On("SendApplicationStatus", mock.Anything, "dana@example.edu", "Dana Lee", "accepted").Return(nil).Maybe()

		app, err := svc.UpdateStatus(ctx, appID, domain.ApplicationAccepted)

		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationAccepted, app.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := application.NewService(new(mocks.ApplicationRepository), nil, nil)

		_, err := svc.UpdateStatus(ctx, appID, "archived")

		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("unknown application", func(t *testing.T) {
		mockRepo := new(mocks.ApplicationRepository)
		svc := application.NewService(mockRepo, nil, nil)

		mockRepo.On("GetByID", ctx, appID).Return(nil, nil).Once()

		_, err := svc.UpdateStatus(ctx, appID, domain.ApplicationReviewing)
		assert.ErrorIs(t, err, application.ErrApplicationNotFound)
	})
}
