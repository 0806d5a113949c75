package model

import (
	"time"

	"github.com/1mikez1/BonusTracker-sub001/internal/money"
)

// Client app lifecycle statuses. The ledger sums profit across all statuses;
// apps that have not monetized simply carry zero profit.
const (
	AppStatusRequested  = "requested"
	AppStatusRegistered = "registered"
	AppStatusDeposited  = "deposited"
	AppStatusCompleted  = "completed"
	AppStatusPaid       = "paid"
	AppStatusCancelled  = "cancelled"
)

// ClientApp represents one client's engagement with one promotional app.
// ProfitUS is the realized profit in cents; a NULL column scans to zero.
type ClientApp struct {
	ID        string       `json:"id"`
	ClientID  string       `json:"clientId"`
	AppName   string       `json:"appName"`
	Status    string       `json:"status"`
	ProfitUS  money.Amount `json:"profitUs"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
