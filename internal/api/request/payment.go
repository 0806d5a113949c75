package request

import "github.com/1mikez1/BonusTracker-sub001/internal/money"

// CreatePaymentRequest represents the request body for recording a payment to
// a partner. PaidAt is optional and defaults to now.
type CreatePaymentRequest struct {
	Amount money.Amount `json:"amount"`
	Note   string       `json:"note,omitempty"`
	PaidAt string       `json:"paidAt,omitempty"`
}
