package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentTransactionError is a write-once audit row for a failed gateway
// call. Nothing in the repo updates or deletes these; the repository
// deliberately has no methods for either.
type PaymentTransactionError struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Date          time.Time  `json:"date" db:"date"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	APIURL        string     `json:"api_url" db:"api_url"`
	RequestData   string     `json:"request_data" db:"request_data"`
	Response      string     `json:"response" db:"response"`
	TransactionID *uuid.UUID `json:"transaction_id,omitempty" db:"transaction_id"` // set when a transaction already existed at failure time
}
