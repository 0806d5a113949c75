package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/1mikez1/BonusTracker-sub001/internal/testutil"
)

// TestBalanceHistoryService_CaptureBalances tests persisting the computed
// ledger as daily history rows.
//
// WHY: History is the only record of how balances moved; the live ledger
// always shows the present. The capture must write one row per partner and
// re-capturing a date must overwrite, not duplicate.
func TestBalanceHistoryService_CaptureBalances(t *testing.T) {
	t.Run("writes one row per partner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBalanceHistoryService(t, db)

		alice := testutil.NewPartner().WithName("Alice").WithDefaultSplit(0.3, 0.7).Build(t, db)
		bob := testutil.CreatePartner(t, db, "Bob")
		client := testutil.CreateClient(t, db, "Client")
		testutil.CreateAssignment(t, db, client.ID, alice.ID)
		testutil.CreateClientApp(t, db, client.ID, 10000)

		date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		if err := svc.CaptureBalances(context.Background(), date); err != nil {
			t.Fatalf("CaptureBalances() returned unexpected error: %v", err)
		}

		aliceHistory, err := svc.GetHistory(alice.ID, date, date)
		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}
		if len(aliceHistory) != 1 {
			t.Fatalf("Expected 1 history row for Alice, got %d", len(aliceHistory))
		}
		if aliceHistory[0].PartnerShare.Cents() != 3000 {
			t.Errorf("Expected captured share 3000 cents, got %d", aliceHistory[0].PartnerShare.Cents())
		}

		bobHistory, err := svc.GetHistory(bob.ID, date, date)
		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}
		if len(bobHistory) != 1 {
			t.Fatalf("Expected 1 history row for Bob, got %d", len(bobHistory))
		}
		if bobHistory[0].Balance.Cents() != 0 {
			t.Errorf("Expected zero captured balance for idle partner, got %d", bobHistory[0].Balance.Cents())
		}
	})

	t.Run("re-capturing a date overwrites the earlier rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBalanceHistoryService(t, db)

		partner := testutil.NewPartner().WithName("Alice").WithDefaultSplit(0.3, 0.7).Build(t, db)
		client := testutil.CreateClient(t, db, "Client")
		testutil.CreateAssignment(t, db, client.ID, partner.ID)

		date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		if err := svc.CaptureBalances(context.Background(), date); err != nil {
			t.Fatalf("CaptureBalances() returned unexpected error: %v", err)
		}

		// Profit lands after the first capture; the re-run must replace it.
		testutil.CreateClientApp(t, db, client.ID, 10000)
		if err := svc.CaptureBalances(context.Background(), date); err != nil {
			t.Fatalf("Second CaptureBalances() returned unexpected error: %v", err)
		}

		history, err := svc.GetHistory(partner.ID, date, date)
		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}
		if len(history) != 1 {
			t.Fatalf("Expected 1 history row after re-capture, got %d", len(history))
		}
		if history[0].PartnerShare.Cents() != 3000 {
			t.Errorf("Expected overwritten share 3000 cents, got %d", history[0].PartnerShare.Cents())
		}
	})
}

// TestBalanceHistoryService_GetHistory tests the date-range read path.
//
// WHY: The dashboard charts a window of history; rows outside the range must
// be excluded and results come back oldest first.
func TestBalanceHistoryService_GetHistory(t *testing.T) {
	t.Run("filters by range and orders by date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBalanceHistoryService(t, db)

		partner := testutil.CreatePartner(t, db, "Alice")

		dates := []time.Time{
			time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		}
		for _, d := range dates {
			if err := svc.CaptureBalances(context.Background(), d); err != nil {
				t.Fatalf("CaptureBalances() returned unexpected error: %v", err)
			}
		}

		history, err := svc.GetHistory(partner.ID, dates[0], dates[1])
		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}

		if len(history) != 2 {
			t.Fatalf("Expected 2 rows in range, got %d", len(history))
		}
		if !history[0].Date.Before(history[1].Date) {
			t.Errorf("Expected oldest first, got %v then %v", history[0].Date, history[1].Date)
		}
	})
}
