package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"payment-tracker/internal/domain/models"
)

type CatalogRepositoryMock struct {
	mock.Mock
}

func (m *CatalogRepositoryMock) SaveItem(ctx context.Context, item models.Item) (uuid.UUID, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *CatalogRepositoryMock) GetItemByID(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(models.Item), args.Error(1)
}

func (m *CatalogRepositoryMock) ListItems(ctx context.Context) ([]models.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *CatalogRepositoryMock) UpdateItem(ctx context.Context, item models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CatalogRepositoryMock) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}
