package unit

import (
	"context"
	"testing"

	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payment-tracker/internal/domain/dto"
	"payment-tracker/internal/domain/models"
	"payment-tracker/internal/repository"
	"payment-tracker/internal/services"
	"payment-tracker/internal/tests/mocks"
)

func TestPaymentService_Checkout_RejectsEmptyRequest(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.PaymentRepositoryMock)
	service := services.NewPaymentService(slog.Default(), repo)

	// Act
	_, err := service.Checkout(ctx, uuid.New(), dto.CheckoutRequest{})

	// Assert
	assert.ErrorIs(t, err, services.ErrEmptyCheckout)
	repo.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_Checkout_RejectsNonPositiveQuantity(t *testing.T) {
	// Arrange
	ctx := context.Background()
	price := 10.0
	repo := new(mocks.PaymentRepositoryMock)
	service := services.NewPaymentService(slog.Default(), repo)

	// Act
	_, err := service.Checkout(ctx, uuid.New(), dto.CheckoutRequest{
		Items: []dto.CheckoutItem{{Price: &price, Quantity: 0}},
	})

	// Assert
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)
	repo.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_Checkout_CapturesCatalogPriceAtPurchaseTime(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	trxID := uuid.New()

	repo := new(mocks.PaymentRepositoryMock)
	repo.On("GetItemByID", ctx, itemID).
		Return(models.Item{
			ID:       itemID,
			Name:     "Premium subscription",
			Value:    decimal.RequireFromString("49.99"),
			Currency: "USD",
		}, nil).Once()
	repo.On("CreateCheckout", ctx,
		mock.MatchedBy(func(trx models.PaymentTransaction) bool {
			return trx.UserID == userID &&
				trx.Status == models.StatusCheckout &&
				trx.Value.Equal(decimal.RequireFromString("99.98"))
		}),
		mock.MatchedBy(func(items []models.PurchasedItem) bool {
			return len(items) == 1 &&
				items[0].Price != nil && *items[0].Price == 49.99 &&
				items[0].Quantity == 2
		}),
	).Return(trxID, nil).Once()

	service := services.NewPaymentService(slog.Default(), repo)

	// Act
	id, err := service.Checkout(ctx, userID, dto.CheckoutRequest{
		Items: []dto.CheckoutItem{{ItemID: &itemID, Quantity: 2}},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, trxID, id)
	repo.AssertExpectations(t)
}

func TestPaymentService_Checkout_IgnoresClientPriceForCatalogLine(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	trxID := uuid.New()
	bogus := 0.01

	repo := new(mocks.PaymentRepositoryMock)
	repo.On("GetItemByID", ctx, itemID).
		Return(models.Item{
			ID:       itemID,
			Name:     "Premium subscription",
			Value:    decimal.RequireFromString("49.99"),
			Currency: "USD",
		}, nil).Once()
	repo.On("CreateCheckout", ctx,
		mock.MatchedBy(func(trx models.PaymentTransaction) bool {
			return trx.Value.Equal(decimal.RequireFromString("49.99"))
		}),
		mock.MatchedBy(func(items []models.PurchasedItem) bool {
			return len(items) == 1 &&
				items[0].Price != nil && *items[0].Price == 49.99
		}),
	).Return(trxID, nil).Once()

	service := services.NewPaymentService(slog.Default(), repo)

	// Act
	id, err := service.Checkout(ctx, userID, dto.CheckoutRequest{
		Items: []dto.CheckoutItem{{ItemID: &itemID, Price: &bogus, Quantity: 1}},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, trxID, id)
	repo.AssertExpectations(t)
}

func TestPaymentService_Checkout_RejectsUnpricedNonCatalogLine(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.PaymentRepositoryMock)
	service := services.NewPaymentService(slog.Default(), repo)

	// Act
	_, err := service.Checkout(ctx, uuid.New(), dto.CheckoutRequest{
		Items: []dto.CheckoutItem{{
			Related:  &models.RelatedRef{Kind: "course", ID: 42},
			Quantity: 1,
		}},
	})

	// Assert
	assert.ErrorIs(t, err, services.ErrUnpricedItem)
	repo.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_HandleGatewayUpdate_RejectsUnknownStatus(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.PaymentRepositoryMock)
	service := services.NewPaymentService(slog.Default(), repo)

	// Act
	err := service.HandleGatewayUpdate(ctx, uuid.New(), uuid.New(), "8HE6490274025303K", "refunded-ish")

	// Assert
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
	repo.AssertNotCalled(t, "ApplyGatewayUpdate",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_HandleGatewayUpdate_AppliesValidStatus(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userID := uuid.New()
	trxID := uuid.New()

	repo := new(mocks.PaymentRepositoryMock)
	repo.On("ApplyGatewayUpdate", ctx, userID, trxID, "8HE6490274025303K", models.StatusCompleted).
		Return(nil).Once()

	service := services.NewPaymentService(slog.Default(), repo)

	// Act
	err := service.HandleGatewayUpdate(ctx, userID, trxID, "8HE6490274025303K", "completed")

	// Assert
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPaymentService_HandleGatewayUpdate_ScopedToCaller(t *testing.T) {
	// Arrange
	ctx := context.Background()
	strangerID := uuid.New()
	trxID := uuid.New()

	repo := new(mocks.PaymentRepositoryMock)
	repo.On("ApplyGatewayUpdate", ctx, strangerID, trxID, "8HE6490274025303K", models.StatusCompleted).
		Return(repository.ErrTransactionNotFound).Once()

	service := services.NewPaymentService(slog.Default(), repo)

	// Act
	err := service.HandleGatewayUpdate(ctx, strangerID, trxID, "8HE6490274025303K", "completed")

	// Assert
	assert.ErrorIs(t, err, repository.ErrTransactionNotFound)
	repo.AssertExpectations(t)
}

func TestPaymentService_DeleteTransaction_PropagatesRestraint(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userID := uuid.New()
	trxID := uuid.New()

	repo := new(mocks.PaymentRepositoryMock)
	repo.On("DeleteTransaction", ctx, userID, trxID).
		Return(repository.ErrTransactionHasPurchases).Once()

	service := services.NewPaymentService(slog.Default(), repo)

	// Act
	err := service.DeleteTransaction(ctx, userID, trxID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTransactionHasPurchases)
	repo.AssertExpectations(t)
}

func TestPaymentService_RecordError_PassesFieldsThrough(t *testing.T) {
	// Arrange
	ctx := context.Background()
	userID := uuid.New()
	trxID := uuid.New()
	errorID := uuid.New()

	repo := new(mocks.PaymentRepositoryMock)
	repo.On("SaveTransactionError", ctx, mock.MatchedBy(func(e models.PaymentTransactionError) bool {
		return e.UserID == userID &&
			e.APIURL == "https://api-3t.paypal.com/nvp" &&
			e.RequestData == "METHOD=DoExpressCheckoutPayment" &&
			e.Response == "ACK=Failure" &&
			e.TransactionID != nil && *e.TransactionID == trxID
	})).Return(errorID, nil).Once()

	service := services.NewPaymentService(slog.Default(), repo)

	// Act
	id, err := service.RecordError(ctx, userID, dto.ErrorReportRequest{
		APIURL:        "https://api-3t.paypal.com/nvp",
		RequestData:   "METHOD=DoExpressCheckoutPayment",
		Response:      "ACK=Failure",
		TransactionID: &trxID,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, errorID, id)
	repo.AssertExpectations(t)
}
