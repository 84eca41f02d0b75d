package dto

import "github.com/shopspring/decimal"

// swagger:model
type ItemRequest struct {
	Identifier  string          `json:"identifier" example:"sku-001"`
	Name        string          `json:"name" example:"Premium subscription"`
	Description string          `json:"description" example:"One year of premium access"`
	Value       decimal.Decimal `json:"value" example:"49.99"`
	Currency    string          `json:"currency" example:"USD"`
}
