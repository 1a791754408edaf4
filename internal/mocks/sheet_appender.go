package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"union-portal/internal/domain"
)

type SheetAppender struct {
	mock.Mock
}

func (m *SheetAppender) Append(ctx context.Context, app domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
