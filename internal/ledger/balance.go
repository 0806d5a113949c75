package ledger

import "github.com/1mikez1/BonusTracker-sub001/internal/model"

// Balance status classifications driven by the balance sign. The UI relies on
// this convention: positive means the partner is owed money, negative means
// the partner has been paid ahead of their share.
const (
	StatusDue     = "due"
	StatusSettled = "settled"
	StatusAdvance = "advance"
)

// CalculateBalance aggregates the partner's breakdown into share totals and
// nets them against payments recorded for that partner.
//
// A partner with no assignments or no payments yields an all-zero balance.
// Running this twice over an unchanged snapshot yields identical results.
func CalculateBalance(
	partner model.Partner,
	assignments []model.Assignment,
	apps []model.ClientApp,
	payments []model.Payment,
) PartnerBalance {
	balance := PartnerBalance{PartnerID: partner.ID}

	for _, line := range BuildBreakdown(partner, assignments, apps, nil) {
		balance.TotalProfit = balance.TotalProfit.Add(line.TotalProfit)
		balance.PartnerShare = balance.PartnerShare.Add(line.PartnerShare)
		balance.OwnerShare = balance.OwnerShare.Add(line.OwnerShare)
	}

	for _, payment := range payments {
		if payment.PartnerID == partner.ID {
			balance.TotalPaid = balance.TotalPaid.Add(payment.Amount)
		}
	}

	balance.Balance = balance.PartnerShare.Sub(balance.TotalPaid)
	return balance
}

// Classify maps a computed balance to its settlement status.
func Classify(balance PartnerBalance) string {
	switch {
	case balance.Balance > 0:
		return StatusDue
	case balance.Balance < 0:
		return StatusAdvance
	default:
		return StatusSettled
	}
}
