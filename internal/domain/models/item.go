package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a sellable catalog entry. Value/Currency describe the current
// price; the price actually paid is captured on PurchasedItem.
type Item struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Identifier  string          `json:"identifier" db:"identifier"` // optional external code
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Value       decimal.Decimal `json:"value" db:"value"`
	Currency    string          `json:"currency" db:"currency"` // defaults to USD
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
