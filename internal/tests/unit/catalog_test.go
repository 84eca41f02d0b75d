package unit

import (
	"context"
	"errors"
	"testing"

	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payment-tracker/internal/domain/models"
	"payment-tracker/internal/repository"
	"payment-tracker/internal/services"
	"payment-tracker/internal/tests/mocks"
)

func TestCatalogService_CreateItem_DefaultsCurrencyToUSD(t *testing.T) {
	// Arrange
	ctx := context.Background()
	itemID := uuid.New()

	repo := new(mocks.CatalogRepositoryMock)
	repo.On("SaveItem", ctx, mock.MatchedBy(func(item models.Item) bool {
		return item.Currency == "USD" && item.Name == "Premium subscription"
	})).Return(itemID, nil).Once()

	service := services.NewCatalogService(slog.Default(), repo)

	// Act
	id, err := service.CreateItem(ctx, models.Item{
		Name:        "Premium subscription",
		Description: "One year of premium access",
		Value:       decimal.RequireFromString("49.99"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, itemID, id)
	repo.AssertExpectations(t)
}

func TestCatalogService_CreateItem_RejectsMissingFields(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.CatalogRepositoryMock)
	service := services.NewCatalogService(slog.Default(), repo)

	// Act
	_, err := service.CreateItem(ctx, models.Item{
		Name:  "no description or value",
		Value: decimal.Zero,
	})

	// Assert
	assert.ErrorIs(t, err, services.ErrInvalidItem)
	repo.AssertNotCalled(t, "SaveItem", mock.Anything, mock.Anything)
}

func TestCatalogService_CreateItem_RejectsNonPositiveValue(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.CatalogRepositoryMock)
	service := services.NewCatalogService(slog.Default(), repo)

	// Act
	_, err := service.CreateItem(ctx, models.Item{
		Name:        "freebie",
		Description: "costs nothing",
		Value:       decimal.RequireFromString("-1.00"),
	})

	// Assert
	assert.ErrorIs(t, err, services.ErrInvalidItem)
	repo.AssertNotCalled(t, "SaveItem", mock.Anything, mock.Anything)
}

func TestCatalogService_UpdateItem_PropagatesNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	item := models.Item{
		ID:          uuid.New(),
		Name:        "Premium subscription",
		Description: "One year of premium access",
		Value:       decimal.RequireFromString("49.99"),
		Currency:    "USD",
	}

	repo := new(mocks.CatalogRepositoryMock)
	repo.On("UpdateItem", ctx, item).
		Return(repository.ErrItemNotFound).Once()

	service := services.NewCatalogService(slog.Default(), repo)

	// Act
	err := service.UpdateItem(ctx, item)

	// Assert
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
	repo.AssertExpectations(t)
}

func TestCatalogService_DeleteItem_PropagatesRepositoryError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	itemID := uuid.New()
	repoErr := errors.New("db down")

	repo := new(mocks.CatalogRepositoryMock)
	repo.On("DeleteItem", ctx, itemID).
		Return(repoErr).Once()

	service := services.NewCatalogService(slog.Default(), repo)

	// Act
	err := service.DeleteItem(ctx, itemID)

	// Assert
	assert.ErrorContains(t, err, "db down")
	repo.AssertExpectations(t)
}
