package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"payment-tracker/internal/domain/models"
)

type PaymentRepositoryMock struct {
	mock.Mock
}

func (m *PaymentRepositoryMock) CreateCheckout(ctx context.Context, trx models.PaymentTransaction, items []models.PurchasedItem) (uuid.UUID, error) {
	args := m.Called(ctx, trx, items)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *PaymentRepositoryMock) GetTransactionByID(ctx context.Context, userID, trxID uuid.UUID) (models.PaymentTransaction, error) {
	args := m.Called(ctx, userID, trxID)
	return args.Get(0).(models.PaymentTransaction), args.Error(1)
}

func (m *PaymentRepositoryMock) ListUserTransactions(ctx context.Context, userID uuid.UUID) ([]models.PaymentTransaction, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.PaymentTransaction), args.Error(1)
}

func (m *PaymentRepositoryMock) ApplyGatewayUpdate(ctx context.Context, userID, trxID uuid.UUID, transactionID string, status models.PaymentStatus) error {
	args := m.Called(ctx, userID, trxID, transactionID, status)
	return args.Error(0)
}

func (m *PaymentRepositoryMock) DeleteTransaction(ctx context.Context, userID, trxID uuid.UUID) error {
	args := m.Called(ctx, userID, trxID)
	return args.Error(0)
}

func (m *PaymentRepositoryMock) ListUserPurchases(ctx context.Context, userID uuid.UUID) ([]models.PurchasedItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.PurchasedItem), args.Error(1)
}

func (m *PaymentRepositoryMock) SaveTransactionError(ctx context.Context, trxErr models.PaymentTransactionError) (uuid.UUID, error) {
	args := m.Called(ctx, trxErr)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *PaymentRepositoryMock) ListUserTransactionErrors(ctx context.Context, userID uuid.UUID) ([]models.PaymentTransactionError, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.PaymentTransactionError), args.Error(1)
}

func (m *PaymentRepositoryMock) GetItemByID(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(models.Item), args.Error(1)
}
