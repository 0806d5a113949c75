package model

import (
	"time"

	"github.com/1mikez1/BonusTracker-sub001/internal/money"
)

// PartnerBalanceSnapshot is a persisted daily capture of one partner's
// computed balance, written by the history capture job. It gives the
// dashboard an audit trail of how a balance moved over time without the
// ledger itself ever caching anything.
type PartnerBalanceSnapshot struct {
	ID           string       `json:"id"`
	PartnerID    string       `json:"partnerId"`
	Date         time.Time    `json:"date"`
	TotalProfit  money.Amount `json:"totalProfit"`
	PartnerShare money.Amount `json:"partnerShare"`
	OwnerShare   money.Amount `json:"ownerShare"`
	TotalPaid    money.Amount `json:"totalPaid"`
	Balance      money.Amount `json:"balance"`
	ClientCount  int          `json:"clientCount"`
	CapturedAt   time.Time    `json:"capturedAt"`
}
