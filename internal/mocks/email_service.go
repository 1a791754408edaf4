package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendApplicationReceived(ctx context.Context, toEmail, fullName string) error {
	args := m.Called(ctx, toEmail, fullName)
	return args.Error(0)
}

func (m *EmailService) SendApplicationStatus(ctx context.Context, toEmail, fullName, status string) error {
	args := m.Called(ctx, toEmail, fullName, status)
	return args.Error(0)
}
