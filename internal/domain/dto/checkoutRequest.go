package dto

import (
	"github.com/google/uuid"

	"payment-tracker/internal/domain/models"
)

// swagger:model
type CheckoutItem struct {
	ItemID     *uuid.UUID         `json:"item_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	Identifier string             `json:"identifier" example:"shipping"`
	Related    *models.RelatedRef `json:"related,omitempty"`
	Price      *float64           `json:"price,omitempty" example:"49.99"`
	Quantity   int                `json:"quantity" example:"2"`
}

// swagger:model
type CheckoutRequest struct {
	Related *models.RelatedRef `json:"related,omitempty"`
	Items   []CheckoutItem     `json:"items"`
}
