package dto

import "github.com/google/uuid"

// swagger:model
type ErrorReportRequest struct {
	APIURL        string     `json:"api_url" example:"https://api-3t.paypal.com/nvp"`
	RequestData   string     `json:"request_data" example:"METHOD=SetExpressCheckout&..."`
	Response      string     `json:"response" example:"ACK=Failure&L_ERRORCODE0=10002"`
	TransactionID *uuid.UUID `json:"transaction_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
}
