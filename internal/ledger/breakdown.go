package ledger

import (
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/money"
)

// BuildBreakdown produces one ClientBreakdownLine per assignment belonging to
// the given partner, in assignment input order.
//
// Each client's profit is the sum of every ClientApp record referencing that
// client, regardless of lifecycle status; apps that have not monetized carry
// zero profit and contribute nothing. A client with no app records yields a
// zero line, not an error.
//
// The partner share is the split fraction applied to the profit total, rounded
// to the cent; the owner share is computed as the remainder so that
// partnerShare + ownerShare == totalProfit holds exactly for every line.
func BuildBreakdown(
	partner model.Partner,
	assignments []model.Assignment,
	apps []model.ClientApp,
	clientNames map[string]string,
) []ClientBreakdownLine {
	profitByClient := make(map[string]money.Amount, len(apps))
	for _, app := range apps {
		profitByClient[app.ClientID] = profitByClient[app.ClientID].Add(app.ProfitUS)
	}

	lines := []ClientBreakdownLine{}
	for _, assignment := range assignments {
		if assignment.PartnerID != partner.ID {
			continue
		}

		split := ResolveSplit(assignment, partner)
		totalProfit := profitByClient[assignment.ClientID]
		partnerShare := totalProfit.Mul(split.Partner)

		name := clientNames[assignment.ClientID]
		if name == "" {
			name = assignment.ClientID
		}

		lines = append(lines, ClientBreakdownLine{
			ClientID:     assignment.ClientID,
			ClientName:   name,
			TotalProfit:  totalProfit,
			SplitPartner: split.Partner,
			SplitOwner:   split.Owner,
			PartnerShare: partnerShare,
			OwnerShare:   totalProfit.Sub(partnerShare),
			Override:     assignment.Override != nil,
		})
	}

	return lines
}
