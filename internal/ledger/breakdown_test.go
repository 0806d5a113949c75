package ledger_test

import (
	"testing"

	"github.com/1mikez1/BonusTracker-sub001/internal/ledger"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/money"
)

func app(clientID string, profit money.Amount) model.ClientApp {
	return model.ClientApp{
		ClientID: clientID,
		AppName:  "Test App",
		Status:   model.AppStatusCompleted,
		ProfitUS: profit,
	}
}

// TestBuildBreakdown_DefaultSplit verifies the per-client line computation
// for a partner using its default split.
//
// WHY: This is the reference scenario for the whole ledger: two profit
// records summed for one client, 30/70 split applied, shares reconciling
// exactly to the profit total.
func TestBuildBreakdown_DefaultSplit(t *testing.T) {
	partner := model.Partner{ID: "p1", Name: "P", DefaultSplitPartner: 0.30, DefaultSplitOwner: 0.70}
	assignments := []model.Assignment{
		{ID: "a1", ClientID: "c1", PartnerID: "p1"},
	}
	apps := []model.ClientApp{
		app("c1", money.FromCents(10000)),
		app("c1", money.FromCents(5000)),
	}

	lines := ledger.BuildBreakdown(partner, assignments, apps, map[string]string{"c1": "Client C"})

	if len(lines) != 1 {
		t.Fatalf("Expected 1 breakdown line, got %d", len(lines))
	}

	line := lines[0]
	if line.TotalProfit != money.FromCents(15000) {
		t.Errorf("Expected totalProfit 150.00, got %s", line.TotalProfit)
	}
	if line.PartnerShare != money.FromCents(4500) {
		t.Errorf("Expected partnerShare 45.00, got %s", line.PartnerShare)
	}
	if line.OwnerShare != money.FromCents(10500) {
		t.Errorf("Expected ownerShare 105.00, got %s", line.OwnerShare)
	}
	if line.Override {
		t.Error("Expected override flag false for default split")
	}
	if line.ClientName != "Client C" {
		t.Errorf("Expected client name 'Client C', got %q", line.ClientName)
	}
}

// TestBuildBreakdown_OverrideSplit verifies that a per-client override
// supersedes the partner default and is flagged on the line.
func TestBuildBreakdown_OverrideSplit(t *testing.T) {
	partner := model.Partner{ID: "p1", Name: "P", DefaultSplitPartner: 0.30, DefaultSplitOwner: 0.70}
	assignments := []model.Assignment{
		{ID: "a1", ClientID: "d1", PartnerID: "p1", Override: &model.Split{Partner: 0.50, Owner: 0.50}},
	}
	apps := []model.ClientApp{app("d1", money.FromCents(20000))}

	lines := ledger.BuildBreakdown(partner, assignments, apps, nil)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 breakdown line, got %d", len(lines))
	}

	line := lines[0]
	if line.PartnerShare != money.FromCents(10000) {
		t.Errorf("Expected partnerShare 100.00, got %s", line.PartnerShare)
	}
	if !line.Override {
		t.Error("Expected override flag true")
	}
	if line.SplitPartner != 0.50 || line.SplitOwner != 0.50 {
		t.Errorf("Expected line split 0.50/0.50, got %.2f/%.2f", line.SplitPartner, line.SplitOwner)
	}
}

// TestBuildBreakdown_EdgeCases covers the no-error contract: empty inputs,
// clients without profit records, and profit from other partners' clients.
func TestBuildBreakdown_EdgeCases(t *testing.T) {
	partner := model.Partner{ID: "p1", Name: "P", DefaultSplitPartner: 0.30, DefaultSplitOwner: 0.70}

	t.Run("client with no profit records yields a zero line", func(t *testing.T) {
		assignments := []model.Assignment{{ID: "a1", ClientID: "c1", PartnerID: "p1"}}

		lines := ledger.BuildBreakdown(partner, assignments, nil, nil)

		if len(lines) != 1 {
			t.Fatalf("Expected 1 line, got %d", len(lines))
		}
		if lines[0].TotalProfit != 0 || lines[0].PartnerShare != 0 || lines[0].OwnerShare != 0 {
			t.Errorf("Expected all-zero line, got %+v", lines[0])
		}
	})

	t.Run("ignores assignments belonging to other partners", func(t *testing.T) {
		assignments := []model.Assignment{
			{ID: "a1", ClientID: "c1", PartnerID: "p1"},
			{ID: "a2", ClientID: "c2", PartnerID: "p2"},
		}
		apps := []model.ClientApp{app("c1", money.FromCents(100)), app("c2", money.FromCents(9999))}

		lines := ledger.BuildBreakdown(partner, assignments, apps, nil)

		if len(lines) != 1 {
			t.Fatalf("Expected 1 line for partner p1, got %d", len(lines))
		}
		if lines[0].ClientID != "c1" {
			t.Errorf("Expected line for c1, got %s", lines[0].ClientID)
		}
	})

	t.Run("no assignments yields empty slice not nil error", func(t *testing.T) {
		lines := ledger.BuildBreakdown(partner, nil, nil, nil)
		if len(lines) != 0 {
			t.Errorf("Expected 0 lines, got %d", len(lines))
		}
	})

	t.Run("missing client name falls back to client ID", func(t *testing.T) {
		assignments := []model.Assignment{{ID: "a1", ClientID: "c1", PartnerID: "p1"}}

		lines := ledger.BuildBreakdown(partner, assignments, nil, map[string]string{})

		if lines[0].ClientName != "c1" {
			t.Errorf("Expected fallback name 'c1', got %q", lines[0].ClientName)
		}
	})
}

// TestBuildBreakdown_SharesReconcile checks the reconciliation invariant:
// partnerShare + ownerShare == totalProfit for every line, including awkward
// fractions where cent rounding would otherwise drift.
func TestBuildBreakdown_SharesReconcile(t *testing.T) {
	tests := []struct {
		name         string
		splitPartner float64
		splitOwner   float64
		profitCents  int64
	}{
		{name: "thirds do not divide cents evenly", splitPartner: 1.0 / 3.0, splitOwner: 2.0 / 3.0, profitCents: 10000},
		{name: "odd cent total", splitPartner: 0.5, splitOwner: 0.5, profitCents: 101},
		{name: "tiny profit", splitPartner: 0.33, splitOwner: 0.67, profitCents: 1},
		{name: "negative profit", splitPartner: 0.30, splitOwner: 0.70, profitCents: -5001},
		{name: "zero profit", splitPartner: 0.30, splitOwner: 0.70, profitCents: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			partner := model.Partner{
				ID:                  "p1",
				DefaultSplitPartner: tt.splitPartner,
				DefaultSplitOwner:   tt.splitOwner,
			}
			assignments := []model.Assignment{{ID: "a1", ClientID: "c1", PartnerID: "p1"}}
			apps := []model.ClientApp{app("c1", money.FromCents(tt.profitCents))}

			lines := ledger.BuildBreakdown(partner, assignments, apps, nil)

			line := lines[0]
			if got := line.PartnerShare.Add(line.OwnerShare); got != line.TotalProfit {
				t.Errorf("Shares do not reconcile: %s + %s != %s",
					line.PartnerShare, line.OwnerShare, line.TotalProfit)
			}
		})
	}
}

// TestBuildBreakdown_StableOrder verifies lines come out in assignment input
// order, which the dashboard relies on for consistent rendering.
func TestBuildBreakdown_StableOrder(t *testing.T) {
	partner := model.Partner{ID: "p1", DefaultSplitPartner: 0.30, DefaultSplitOwner: 0.70}
	assignments := []model.Assignment{
		{ID: "a1", ClientID: "c3", PartnerID: "p1"},
		{ID: "a2", ClientID: "c1", PartnerID: "p1"},
		{ID: "a3", ClientID: "c2", PartnerID: "p1"},
	}

	lines := ledger.BuildBreakdown(partner, assignments, nil, nil)

	want := []string{"c3", "c1", "c2"}
	for i, clientID := range want {
		if lines[i].ClientID != clientID {
			t.Errorf("Expected line %d for %s, got %s", i, clientID, lines[i].ClientID)
		}
	}
}
