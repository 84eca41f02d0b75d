package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentTransaction is one gateway payment attempt and its outcome.
// TransactionID and Status come from the gateway callback flow.
// CreationDate is set once on insert and never touched again; Date moves
// on every save.
type PaymentTransaction struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`
	Related       *RelatedRef     `json:"related,omitempty"`
	CreationDate  time.Time       `json:"creation_date" db:"creation_date"`
	Date          time.Time       `json:"date" db:"date"`
	TransactionID string          `json:"transaction_id" db:"transaction_id"`
	Value         decimal.Decimal `json:"value" db:"value"`
	Status        PaymentStatus   `json:"status" db:"status"`
}
