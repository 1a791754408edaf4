package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"union-portal/internal/domain"
)

type WallRepository struct {
	mock.Mock
}

func (m *WallRepository) Create(ctx context.Context, message *domain.WallMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *WallRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WallMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WallMessage), args.Error(1)
}

func (m *WallRepository) List(ctx context.Context, includeHidden bool, params domain.PaginationParams) ([]domain.WallMessage, int64, error) {
	args := m.Called(ctx, includeHidden, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.WallMessage), args.Get(1).(int64), args.Error(2)
}

func (m *WallRepository) SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	args := m.Called(ctx, id, hidden)
	return args.Error(0)
}

func (m *WallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
