package ledger

import (
	"sort"
	"strings"

	"github.com/1mikez1/BonusTracker-sub001/internal/money"
)

// Sortable ledger columns.
const (
	SortByName    = "name"
	SortByClients = "clients"
	SortByProfit  = "profit"
	SortByShare   = "share"
	SortByPaid    = "paid"
	SortByBalance = "balance"
)

// Row is one partner's entry in the cross-partner ledger view.
type Row struct {
	PartnerBalance
	PartnerName string `json:"partnerName"`
	ClientCount int    `json:"clientCount"`
	Status      string `json:"status"`
}

// Totals aggregates the rows currently in view for the summary footer.
type Totals struct {
	TotalProfit  money.Amount `json:"totalProfit"`
	PartnerShare money.Amount `json:"partnerShare"`
	TotalPaid    money.Amount `json:"totalPaid"`
	Balance      money.Amount `json:"balance"`
	ClientCount  int          `json:"clientCount"`
}

// Ledger is the aggregated view over every partner in a snapshot. Filter and
// Sort return new Ledger values; the receiver is never modified.
type Ledger struct {
	Rows []Row
}

// BuildLedger computes a Row for every partner in the snapshot, in snapshot
// partner order. Sorting defaults to descending balance via SortRows.
func BuildLedger(snapshot Snapshot) Ledger {
	rows := make([]Row, 0, len(snapshot.Partners))
	for _, partner := range snapshot.Partners {
		balance := CalculateBalance(partner, snapshot.Assignments, snapshot.ClientApps, snapshot.Payments)

		clientCount := 0
		for _, assignment := range snapshot.Assignments {
			if assignment.PartnerID == partner.ID {
				clientCount++
			}
		}

		rows = append(rows, Row{
			PartnerBalance: balance,
			PartnerName:    partner.Name,
			ClientCount:    clientCount,
			Status:         Classify(balance),
		})
	}
	return Ledger{Rows: rows}
}

// Filter narrows the ledger to rows matching a partner-name query
// (case-insensitive substring) and a settlement status. Empty arguments leave
// the corresponding dimension unfiltered. The three statuses partition the
// partner set: every row matches exactly one of due, settled, advance.
func (l Ledger) Filter(query, status string) Ledger {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := Ledger{Rows: []Row{}}
	for _, row := range l.Rows {
		if query != "" && !strings.Contains(strings.ToLower(row.PartnerName), query) {
			continue
		}
		if status != "" && row.Status != status {
			continue
		}
		filtered.Rows = append(filtered.Rows, row)
	}
	return filtered
}

// SortRows orders the ledger by the given column. Unknown columns fall back to
// the default of descending balance. The sort is stable, so rows that compare
// equal keep their snapshot order.
func (l Ledger) SortRows(column string, descending bool) Ledger {
	sorted := Ledger{Rows: make([]Row, len(l.Rows))}
	copy(sorted.Rows, l.Rows)

	var less func(a, b Row) bool
	switch column {
	case SortByName:
		less = func(a, b Row) bool {
			return strings.ToLower(a.PartnerName) < strings.ToLower(b.PartnerName)
		}
	case SortByClients:
		less = func(a, b Row) bool { return a.ClientCount < b.ClientCount }
	case SortByProfit:
		less = func(a, b Row) bool { return a.TotalProfit < b.TotalProfit }
	case SortByShare:
		less = func(a, b Row) bool { return a.PartnerShare < b.PartnerShare }
	case SortByPaid:
		less = func(a, b Row) bool { return a.TotalPaid < b.TotalPaid }
	default:
		less = func(a, b Row) bool { return a.Balance < b.Balance }
		if column != SortByBalance {
			descending = true
		}
	}

	sort.SliceStable(sorted.Rows, func(i, j int) bool {
		if descending {
			return less(sorted.Rows[j], sorted.Rows[i])
		}
		return less(sorted.Rows[i], sorted.Rows[j])
	})
	return sorted
}

// Totals sums the rows currently in view.
func (l Ledger) Totals() Totals {
	totals := Totals{}
	for _, row := range l.Rows {
		totals.TotalProfit = totals.TotalProfit.Add(row.TotalProfit)
		totals.PartnerShare = totals.PartnerShare.Add(row.PartnerShare)
		totals.TotalPaid = totals.TotalPaid.Add(row.TotalPaid)
		totals.Balance = totals.Balance.Add(row.Balance)
		totals.ClientCount += row.ClientCount
	}
	return totals
}
