package dto

// swagger:model
type GatewayUpdateRequest struct {
	TransactionID string `json:"transaction_id" example:"8HE6490274025303K"`
	Status        string `json:"status" example:"completed"`
}
