package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"union-portal/internal/domain"
)

type Classifier struct {
	mock.Mock
}

func (m *Classifier) Classify(ctx context.Context, text string) (domain.ModerationDecision, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(domain.ModerationDecision), args.Error(1)
}

type Moderator struct {
	mock.Mock
}

func (m *Moderator) Check(ctx context.Context, body string) domain.ModerationDecision {
	args := m.Called(ctx, body)
	return args.Get(0).(domain.ModerationDecision)
}
