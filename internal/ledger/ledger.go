// Package ledger implements the partner profit-sharing computation: resolving
// effective splits, building per-client breakdowns, netting balances against
// payments, and aggregating the cross-partner ledger view.
//
// Every function here is a pure computation over an in-memory Snapshot. The
// package performs no I/O, never mutates its inputs, and recomputes fully on
// every call; callers re-run it whenever the snapshot changes.
package ledger

import (
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/money"
)

// Snapshot is the full data set the ledger computes over, fetched in one pass
// by the repository layer. The ledger never queries storage directly.
type Snapshot struct {
	Partners    []model.Partner
	Assignments []model.Assignment
	ClientApps  []model.ClientApp
	Payments    []model.Payment

	// ClientNames maps client ID to display name for breakdown lines.
	// Missing entries render as the bare client ID.
	ClientNames map[string]string
}

// ClientBreakdownLine is one client's profit and computed shares under a
// given partner. Derived, never persisted.
type ClientBreakdownLine struct {
	ClientID     string       `json:"clientId"`
	ClientName   string       `json:"clientName"`
	TotalProfit  money.Amount `json:"totalProfit"`
	SplitPartner float64      `json:"splitPartner"`
	SplitOwner   float64      `json:"splitOwner"`
	PartnerShare money.Amount `json:"partnerShare"`
	OwnerShare   money.Amount `json:"ownerShare"`
	Override     bool         `json:"override"`
}

// PartnerBalance is a partner's aggregate position: share of client profit
// netted against payments already made. Derived, never persisted directly.
type PartnerBalance struct {
	PartnerID    string       `json:"partnerId"`
	TotalProfit  money.Amount `json:"totalProfit"`
	PartnerShare money.Amount `json:"partnerShare"`
	OwnerShare   money.Amount `json:"ownerShare"`
	TotalPaid    money.Amount `json:"totalPaid"`
	Balance      money.Amount `json:"balance"`
}
