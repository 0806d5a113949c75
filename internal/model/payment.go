package model

import (
	"time"

	"github.com/1mikez1/BonusTracker-sub001/internal/money"
)

// Payment records money paid out to a partner. Rows are append-only in the
// scope of the ledger: no edit or void is modeled here.
type Payment struct {
	ID        string       `json:"id"`
	PartnerID string       `json:"partnerId"`
	Amount    money.Amount `json:"amount"`
	Note      string       `json:"note,omitempty"`
	PaidAt    time.Time    `json:"paidAt"`
}
