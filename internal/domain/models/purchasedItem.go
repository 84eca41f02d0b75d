package models

import (
	"github.com/google/uuid"
)

// PurchasedItem records which user bought what within a transaction.
// Price is the amount at the time of the purchase, kept separately from
// the Item's current value since catalog prices change later.
type PurchasedItem struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	UserID        uuid.UUID   `json:"user_id" db:"user_id"`
	Identifier    string      `json:"identifier" db:"identifier"` // groups rows of the same kind, e.g. for shipping totals
	TransactionID uuid.UUID   `json:"transaction_id" db:"transaction_id"`
	ItemID        *uuid.UUID  `json:"item_id,omitempty" db:"item_id"`
	Related       *RelatedRef `json:"related,omitempty"`
	Price         *float64    `json:"price,omitempty" db:"price"`
	Quantity      int         `json:"quantity" db:"quantity"` // must be > 0
}
