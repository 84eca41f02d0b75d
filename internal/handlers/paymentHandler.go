package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"payment-tracker/internal/domain/dto"
	"payment-tracker/internal/domain/models"
	"payment-tracker/internal/repository"
	"payment-tracker/internal/services"
)

type PaymentService interface {
	Checkout(ctx context.Context, userID uuid.UUID, req dto.CheckoutRequest) (uuid.UUID, error)
	GetTransaction(ctx context.Context, userID, trxID uuid.UUID) (models.PaymentTransaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.PaymentTransaction, error)
	HandleGatewayUpdate(ctx context.Context, userID, trxID uuid.UUID, transactionID, status string) error
	DeleteTransaction(ctx context.Context, userID, trxID uuid.UUID) error
	ListPurchases(ctx context.Context, userID uuid.UUID) ([]models.PurchasedItem, error)
	RecordError(ctx context.Context, userID uuid.UUID, req dto.ErrorReportRequest) (uuid.UUID, error)
	ListErrors(ctx context.Context, userID uuid.UUID) ([]models.PaymentTransactionError, error)
}

type PaymentHandler struct {
	log            *slog.Logger
	paymentService PaymentService
}

func NewPaymentHandler(log *slog.Logger, paymentService PaymentService) *PaymentHandler {
	return &PaymentHandler{
		log:            log,
		paymentService: paymentService,
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(userIDVal.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return uuid.Nil, false
	}
	return userID, true
}

// Checkout
// @Summary Open a payment transaction with its purchased items
// @Description Creates the transaction in status "checkout" and captures each item's price at purchase time.
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param checkout body dto.CheckoutRequest true "Checkout lines"
// @Success 201 {object} map[string]string "Created"
// @Failure 400 {object} dto.ErrorResponse "Bad request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input dto.CheckoutRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trxID, err := h.paymentService.Checkout(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCheckout),
			errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrUnpricedItem),
			errors.Is(err, repository.ErrItemNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": trxID.String()})
}

// GetTransaction
// @Summary Get one payment transaction
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.PaymentTransaction
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /api/transactions/{id} [get]
func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	trxID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	trx, err := h.paymentService.GetTransaction(c.Request.Context(), userID, trxID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, trx)
}

// ListTransactions
// @Summary List the user's payment transactions
// @Description Ordered by creation date descending, ties broken by gateway transaction id.
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.PaymentTransaction
// @Router /api/transactions [get]
func (h *PaymentHandler) ListTransactions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	trxs, err := h.paymentService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, trxs)
}

// GatewayUpdate
// @Summary Record the gateway callback result on a transaction
// @Description Sets the gateway-issued transaction id and status. The creation date never changes.
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param update body dto.GatewayUpdateRequest true "Gateway result"
// @Success 200 {string} string "Updated"
// @Failure 400 {object} dto.ErrorResponse "Bad request"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /api/transactions/{id}/status [post]
func (h *PaymentHandler) GatewayUpdate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	trxID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	var input dto.GatewayUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.paymentService.HandleGatewayUpdate(c.Request.Context(), userID, trxID, input.TransactionID, input.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// DeleteTransaction
// @Summary Delete a payment transaction
// @Description Refused with 409 while purchased items still reference the transaction.
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {string} string "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 409 {object} dto.ErrorResponse "Transaction has purchased items"
// @Router /api/transactions/{id} [delete]
func (h *PaymentHandler) DeleteTransaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	trxID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	err = h.paymentService.DeleteTransaction(c.Request.Context(), userID, trxID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionHasPurchases) {
			c.JSON(http.StatusConflict, gin.H{"error": "Transaction has purchased items"})
			return
		}
		if errors.Is(err, repository.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// ListPurchases
// @Summary List the user's purchased items
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.PurchasedItem
// @Router /api/purchases [get]
func (h *PaymentHandler) ListPurchases(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	purchases, err := h.paymentService.ListPurchases(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, purchases)
}

// RecordError
// @Summary Append a gateway failure to the audit log
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param report body dto.ErrorReportRequest true "Failure details"
// @Success 201 {object} map[string]string "Created"
// @Failure 400 {object} dto.ErrorResponse "Bad request"
// @Router /api/errors [post]
func (h *PaymentHandler) RecordError(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input dto.ErrorReportRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.paymentService.RecordError(c.Request.Context(), userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// ListErrors
// @Summary List the user's gateway failure records
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.PaymentTransactionError
// @Router /api/errors [get]
func (h *PaymentHandler) ListErrors(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	trxErrs, err := h.paymentService.ListErrors(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, trxErrs)
}
