package unit

import (
	"context"
	"testing"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"payment-tracker/internal/domain/models"
	"payment-tracker/internal/lib/jwt"
	"payment-tracker/internal/middlewares"
	"payment-tracker/internal/repository"
	"payment-tracker/internal/services"
	"payment-tracker/internal/tests/mocks"
)

func TestAuthService_Login_RegistersNewUserAndStoresTokens(t *testing.T) {
	// Arrange
	ctx := context.Background()
	username := "newuser"
	password := "strongPass"

	authRepo := new(mocks.AuthRepositoryMock)
	redisMock := new(mocks.RedisClientMock)
	jwtGen := jwt.NewGenerator("secret", 0, 0)
	service := services.NewAuthService(slog.Default(), authRepo, redisMock, jwtGen)

	authRepo.On("LoginUser", ctx, "username", username).
		Return(models.User{}, repository.ErrUserNotFound).Once()
	authRepo.On("SaveUser", ctx, username, mock.Anything).
		Return(nil).Once()
	storedHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	userID := uuid.New()
	authRepo.On("LoginUser", ctx, "username", username).
		Return(models.User{ID: userID, Username: username, Password: storedHash}, nil).Once()
	redisMock.On("StoreRefreshToken", userID.String(), mock.Anything).
		Return(nil).Once()

	// Act
	access, refresh, err := service.Login(ctx, username, password)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	authRepo.AssertExpectations(t)
	redisMock.AssertExpectations(t)
}

func TestAuthService_Login_ReturnsInvalidCredentialsForWrongPassword(t *testing.T) {
	// Arrange
	ctx := context.Background()
	username := "existing"
	password := "correctPass"

	authRepo := new(mocks.AuthRepositoryMock)
	redisMock := new(mocks.RedisClientMock)
	jwtGen := jwt.NewGenerator("secret", 0, 0)
	service := services.NewAuthService(slog.Default(), authRepo, redisMock, jwtGen)

	storedHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	authRepo.On("LoginUser", ctx, "username", username).
		Return(models.User{ID: uuid.New(), Username: username, Password: storedHash}, nil).Once()

	// Act
	access, refresh, err := service.Login(ctx, username, "wrongPass1")

	// Assert
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Empty(t, access)
	assert.Empty(t, refresh)
	authRepo.AssertExpectations(t)
	redisMock.AssertExpectations(t)
}

func TestAuthService_Login_RejectsShortPassword(t *testing.T) {
	// Arrange
	ctx := context.Background()
	authRepo := new(mocks.AuthRepositoryMock)
	redisMock := new(mocks.RedisClientMock)
	jwtGen := jwt.NewGenerator("secret", 0, 0)
	service := services.NewAuthService(slog.Default(), authRepo, redisMock, jwtGen)

	// Act
	_, _, err := service.Login(ctx, "someuser", "short")

	// Assert
	assert.ErrorIs(t, err, middlewares.ErrPasswordTooShort)
	authRepo.AssertNotCalled(t, "LoginUser", mock.Anything, mock.Anything, mock.Anything)
}
