package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"payment-tracker/internal/domain/models"
)

type AuthRepositoryMock struct {
	mock.Mock
}

func (m *AuthRepositoryMock) SaveUser(ctx context.Context, login string, password []byte) error {
	args := m.Called(ctx, login, password)
	return args.Error(0)
}

func (m *AuthRepositoryMock) LoginUser(ctx context.Context, inputType, input string) (models.User, error) {
	args := m.Called(ctx, inputType, input)
	return args.Get(0).(models.User), args.Error(1)
}
