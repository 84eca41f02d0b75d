package models

// PaymentStatus is the gateway's vocabulary for a transaction's state.
// Transitions between statuses are decided by the gateway callback flow,
// not here; we only reject values outside the set.
type PaymentStatus string

const (
	StatusCheckout  PaymentStatus = "checkout"
	StatusPending   PaymentStatus = "pending"
	StatusCanceled  PaymentStatus = "canceled"
	StatusCompleted PaymentStatus = "completed"
	StatusError     PaymentStatus = "error"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusCheckout, StatusPending, StatusCanceled, StatusCompleted, StatusError:
		return true
	}
	return false
}
