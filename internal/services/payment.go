package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"payment-tracker/internal/domain/dto"
	"payment-tracker/internal/domain/models"
)

type PaymentService struct {
	log               *slog.Logger
	paymentRepository PaymentRepository
}

type PaymentRepository interface {
	CreateCheckout(ctx context.Context, trx models.PaymentTransaction, items []models.PurchasedItem) (uuid.UUID, error)
	GetTransactionByID(ctx context.Context, userID, trxID uuid.UUID) (models.PaymentTransaction, error)
	ListUserTransactions(ctx context.Context, userID uuid.UUID) ([]models.PaymentTransaction, error)
	ApplyGatewayUpdate(ctx context.Context, userID, trxID uuid.UUID, transactionID string, status models.PaymentStatus) error
	DeleteTransaction(ctx context.Context, userID, trxID uuid.UUID) error
	ListUserPurchases(ctx context.Context, userID uuid.UUID) ([]models.PurchasedItem, error)
	SaveTransactionError(ctx context.Context, trxErr models.PaymentTransactionError) (uuid.UUID, error)
	ListUserTransactionErrors(ctx context.Context, userID uuid.UUID) ([]models.PaymentTransactionError, error)
	GetItemByID(ctx context.Context, itemID uuid.UUID) (models.Item, error)
}

var (
	ErrEmptyCheckout   = errors.New("checkout requires at least one item")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrUnpricedItem    = errors.New("item without catalog reference requires a price")
	ErrInvalidStatus   = errors.New("unknown payment status")
)

func NewPaymentService(log *slog.Logger, paymentRepository PaymentRepository) *PaymentService {
	return &PaymentService{
		log:               log,
		paymentRepository: paymentRepository,
	}
}

// Checkout opens a transaction in status "checkout" and records one
// purchased item per request line. Prices are captured now: a catalog
// item's current value is copied onto the purchase, so later catalog
// edits never rewrite purchase history. A client-supplied price counts
// only for non-catalog lines; catalog lines always take the catalog
// value.
func (s *PaymentService) Checkout(ctx context.Context, userID uuid.UUID, req dto.CheckoutRequest) (uuid.UUID, error) {
	const op = "services.PaymentService.Checkout"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	if len(req.Items) == 0 {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrEmptyCheckout)
	}

	total := decimal.Zero
	purchases := make([]models.PurchasedItem, 0, len(req.Items))

	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidQuantity)
		}

		var price *float64
		var lineValue decimal.Decimal
		if line.ItemID != nil {
			item, err := s.paymentRepository.GetItemByID(ctx, *line.ItemID)
			if err != nil {
				return uuid.Nil, fmt.Errorf("%s: %w", op, err)
			}
			lineValue = item.Value
			v := item.Value.InexactFloat64()
			price = &v
		} else {
			if line.Price == nil {
				return uuid.Nil, fmt.Errorf("%s: %w", op, ErrUnpricedItem)
			}
			price = line.Price
			lineValue = decimal.NewFromFloat(*line.Price)
		}

		total = total.Add(lineValue.Mul(decimal.NewFromInt(int64(line.Quantity))))

		purchases = append(purchases, models.PurchasedItem{
			UserID:     userID,
			Identifier: line.Identifier,
			ItemID:     line.ItemID,
			Related:    line.Related,
			Price:      price,
			Quantity:   line.Quantity,
		})
	}

	trx := models.PaymentTransaction{
		UserID:  userID,
		Related: req.Related,
		Value:   total.Round(2),
		Status:  models.StatusCheckout,
	}

	trxID, err := s.paymentRepository.CreateCheckout(ctx, trx, purchases)
	if err != nil {
		log.Error("failed to create checkout", slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("checkout created", slog.String("trx_id", trxID.String()))

	return trxID, nil
}

func (s *PaymentService) GetTransaction(ctx context.Context, userID, trxID uuid.UUID) (models.PaymentTransaction, error) {
	const op = "services.PaymentService.GetTransaction"

	trx, err := s.paymentRepository.GetTransactionByID(ctx, userID, trxID)
	if err != nil {
		return models.PaymentTransaction{}, fmt.Errorf("%s: %w", op, err)
	}

	return trx, nil
}

func (s *PaymentService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.PaymentTransaction, error) {
	const op = "services.PaymentService.ListTransactions"

	trxs, err := s.paymentRepository.ListUserTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return trxs, nil
}

// HandleGatewayUpdate applies the gateway callback result to one of the
// user's own transactions. Only set membership is checked here;
// transition policy belongs to the gateway integration.
func (s *PaymentService) HandleGatewayUpdate(ctx context.Context, userID, trxID uuid.UUID, transactionID, status string) error {
	const op = "services.PaymentService.HandleGatewayUpdate"

	log := s.log.With(
		slog.String("op", op),
		slog.String("trx_id", trxID.String()),
		slog.String("status", status),
	)

	paymentStatus := models.PaymentStatus(status)
	if !paymentStatus.IsValid() {
		return fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	if err := s.paymentRepository.ApplyGatewayUpdate(ctx, userID, trxID, transactionID, paymentStatus); err != nil {
		log.Error("failed to apply gateway update", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gateway update applied")

	return nil
}

func (s *PaymentService) DeleteTransaction(ctx context.Context, userID, trxID uuid.UUID) error {
	const op = "services.PaymentService.DeleteTransaction"

	log := s.log.With(
		slog.String("op", op),
		slog.String("trx_id", trxID.String()),
	)

	if err := s.paymentRepository.DeleteTransaction(ctx, userID, trxID); err != nil {
		log.Error("failed to delete transaction", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("transaction deleted")

	return nil
}

func (s *PaymentService) ListPurchases(ctx context.Context, userID uuid.UUID) ([]models.PurchasedItem, error) {
	const op = "services.PaymentService.ListPurchases"

	purchases, err := s.paymentRepository.ListUserPurchases(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return purchases, nil
}

// RecordError appends a gateway failure to the audit log. There is no
// update counterpart anywhere: once written, an error row stays as is.
func (s *PaymentService) RecordError(ctx context.Context, userID uuid.UUID, req dto.ErrorReportRequest) (uuid.UUID, error) {
	const op = "services.PaymentService.RecordError"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	id, err := s.paymentRepository.SaveTransactionError(ctx, models.PaymentTransactionError{
		UserID:        userID,
		APIURL:        req.APIURL,
		RequestData:   req.RequestData,
		Response:      req.Response,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		log.Error("failed to record transaction error", slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("transaction error recorded", slog.String("error_id", id.String()))

	return id, nil
}

func (s *PaymentService) ListErrors(ctx context.Context, userID uuid.UUID) ([]models.PaymentTransactionError, error) {
	const op = "services.PaymentService.ListErrors"

	trxErrs, err := s.paymentRepository.ListUserTransactionErrors(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return trxErrs, nil
}
