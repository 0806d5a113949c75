package repository_test

import (
	"context"
	"testing"

	"github.com/1mikez1/BonusTracker-sub001/internal/testutil"
)

// TestSnapshotRepository_LoadSnapshot tests the concurrent all-tables fetch.
//
// WHY: Every ledger computation starts from one snapshot. It must carry all
// five collections plus the client name lookup, and a single failed read must
// fail the whole load rather than return a partial snapshot.
func TestSnapshotRepository_LoadSnapshot(t *testing.T) {
	t.Run("loads all collections and the name lookup", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := testutil.NewTestSnapshotRepository(t, db)

		partner := testutil.CreatePartner(t, db, "Alice")
		client := testutil.CreateClient(t, db, "Client One")
		testutil.CreateAssignment(t, db, client.ID, partner.ID)
		testutil.CreateClientApp(t, db, client.ID, 5000)
		testutil.CreatePayment(t, db, partner.ID, 1000)

		snapshot, err := repo.LoadSnapshot(context.Background())
		if err != nil {
			t.Fatalf("LoadSnapshot() returned unexpected error: %v", err)
		}

		if len(snapshot.Partners) != 1 {
			t.Errorf("Expected 1 partner, got %d", len(snapshot.Partners))
		}
		if len(snapshot.Assignments) != 1 {
			t.Errorf("Expected 1 assignment, got %d", len(snapshot.Assignments))
		}
		if len(snapshot.ClientApps) != 1 {
			t.Errorf("Expected 1 client app, got %d", len(snapshot.ClientApps))
		}
		if len(snapshot.Payments) != 1 {
			t.Errorf("Expected 1 payment, got %d", len(snapshot.Payments))
		}
		if snapshot.ClientNames[client.ID] != "Client One" {
			t.Errorf("Expected client name lookup, got %q", snapshot.ClientNames[client.ID])
		}
	})

	t.Run("empty database loads an empty snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := testutil.NewTestSnapshotRepository(t, db)

		snapshot, err := repo.LoadSnapshot(context.Background())
		if err != nil {
			t.Fatalf("LoadSnapshot() returned unexpected error: %v", err)
		}

		if len(snapshot.Partners) != 0 || len(snapshot.Assignments) != 0 ||
			len(snapshot.ClientApps) != 0 || len(snapshot.Payments) != 0 {
			t.Errorf("Expected empty snapshot, got %+v", snapshot)
		}
	})

	t.Run("fails entirely when the database is closed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := testutil.NewTestSnapshotRepository(t, db)

		db.Close()

		if _, err := repo.LoadSnapshot(context.Background()); err == nil {
			t.Error("Expected error when database is closed, got nil")
		}
	})
}
