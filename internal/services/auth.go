package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"payment-tracker/internal/domain/models"
	"payment-tracker/internal/lib/jwt"
	"payment-tracker/internal/middlewares"
	"payment-tracker/internal/repository"
)

type AuthService struct {
	log            *slog.Logger
	authRepository AuthRepository
	redis          RedisClient
	jwtGen         *jwt.Generator
}

type AuthRepository interface {
	SaveUser(ctx context.Context, login string, password []byte) error
	LoginUser(ctx context.Context, inputType, input string) (models.User, error)
}

type RedisClient interface {
	StoreRefreshToken(userID, refreshToken string) error
}

var (
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrUserAlreadyExists         = errors.New("user already exists")
	ErrFailedToGenerateTokens    = errors.New("failed to generate tokens")
	ErrFailedToStoreRefreshToken = errors.New("failed to store refresh token")
)

func NewAuthService(log *slog.Logger, authRepository AuthRepository, redis RedisClient,
	jwtGen *jwt.Generator) *AuthService {
	return &AuthService{
		log:            log,
		authRepository: authRepository,
		redis:          redis,
		jwtGen:         jwtGen,
	}
}

// Login authenticates the user, registering them on first contact.
func (s *AuthService) Login(ctx context.Context, username, password string) (accessToken string, refreshToken string,
	err error) {
	const op = "auth.Login"

	log := s.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	if err := middlewares.CheckInput(username, password); err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.authRepository.LoginUser(ctx, "username", username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Info("user not found, registering")

			passHash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if hashErr != nil {
				return "", "", fmt.Errorf("%s: %w", op, hashErr)
			}

			err := s.authRepository.SaveUser(ctx, username, passHash)
			if err != nil {
				if errors.Is(err, repository.ErrUserAlreadyExists) {
					return "", "", fmt.Errorf("%s: %w", op, ErrUserAlreadyExists)
				}
				return "", "", fmt.Errorf("%s: %w", op, err)
			}

			log.Info("user registered")

			user, err = s.authRepository.LoginUser(ctx, "username", username)
			if err != nil {
				return "", "", fmt.Errorf("%s: %w", op, err)
			}
		} else {
			log.Error("failed to login user", slog.String("error", err.Error()))
			return "", "", fmt.Errorf("%s: %w", op, err)
		}
	}

	err = bcrypt.CompareHashAndPassword(user.Password, []byte(password))
	if err != nil {
		log.Info("invalid credentials")
		return "", "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	accessToken, refreshToken, err = s.jwtGen.GeneratePair(user.ID.String())
	if err != nil {
		log.Error("failed to generate tokens", slog.String("error", err.Error()))
		return "", "", fmt.Errorf("%s: %w", op, ErrFailedToGenerateTokens)
	}

	if err := s.redis.StoreRefreshToken(user.ID.String(), refreshToken); err != nil {
		log.Error("failed to store refresh token", slog.String("error", err.Error()))
		return "", "", fmt.Errorf("%s: %w", op, ErrFailedToStoreRefreshToken)
	}

	log.Info("user logged in")

	return accessToken, refreshToken, nil
}
