package service_test

import (
	"errors"
	"testing"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/request"
	"github.com/1mikez1/BonusTracker-sub001/internal/apperrors"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/testutil"
)

// TestPartnerService_GetPartners tests partner listing and the name filter.
//
// WHY: The partner list feeds the ledger's name column and the dashboard's
// partner picker. The query filter must match case-insensitively on
// substrings.
func TestPartnerService_GetPartners(t *testing.T) {
	t.Run("returns empty slice when no partners exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPartnerService(t, db)

		partners, err := svc.GetPartners(model.PartnerFilter{})
		if err != nil {
			t.Fatalf("GetPartners() returned unexpected error: %v", err)
		}
		if len(partners) != 0 {
			t.Errorf("Expected empty slice, got %d partners", len(partners))
		}
	})

	t.Run("filters by case-insensitive substring", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPartnerService(t, db)

		testutil.CreatePartner(t, db, "Alice Anderson")
		testutil.CreatePartner(t, db, "Bob Brown")

		partners, err := svc.GetPartners(model.PartnerFilter{Query: "aLiCe"})
		if err != nil {
			t.Fatalf("GetPartners() returned unexpected error: %v", err)
		}

		if len(partners) != 1 {
			t.Fatalf("Expected 1 partner, got %d", len(partners))
		}
		if partners[0].Name != "Alice Anderson" {
			t.Errorf("Expected 'Alice Anderson', got %q", partners[0].Name)
		}
	})
}

// TestPartnerService_CreatePartner tests the partner write path.
//
// WHY: A partner's default split is resolved by every future ledger
// computation; creation must persist the pair exactly as given.
func TestPartnerService_CreatePartner(t *testing.T) {
	t.Run("creates partner and assigns an ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPartnerService(t, db)

		partner, err := svc.CreatePartner(request.CreatePartnerRequest{
			Name:                "Alice",
			DefaultSplitPartner: 0.35,
			DefaultSplitOwner:   0.65,
			Contact:             "alice@example.com",
			Notes:               "met at conference",
		})
		if err != nil {
			t.Fatalf("CreatePartner() returned unexpected error: %v", err)
		}

		if partner.ID == "" {
			t.Error("Expected generated ID")
		}

		stored, err := svc.GetPartner(partner.ID)
		if err != nil {
			t.Fatalf("GetPartner() returned unexpected error: %v", err)
		}
		if stored.DefaultSplitPartner != 0.35 || stored.DefaultSplitOwner != 0.65 {
			t.Errorf("Expected stored split 0.35/0.65, got %v/%v",
				stored.DefaultSplitPartner, stored.DefaultSplitOwner)
		}
		if stored.Contact != "alice@example.com" {
			t.Errorf("Expected contact round-trip, got %q", stored.Contact)
		}
	})
}

// TestPartnerService_UpdatePartner tests partial partner updates.
//
// WHY: Editing a default split changes how future ledger computations divide
// profit for every client without an override. Fields omitted from the
// request must stay untouched.
func TestPartnerService_UpdatePartner(t *testing.T) {
	t.Run("updates only the provided fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPartnerService(t, db)

		partner := testutil.NewPartner().
			WithName("Alice").
			WithDefaultSplit(0.3, 0.7).
			WithNotes("original").
			Build(t, db)

		name := "Alice Anderson"
		updated, err := svc.UpdatePartner(partner.ID, request.UpdatePartnerRequest{
			Name: &name,
		})
		if err != nil {
			t.Fatalf("UpdatePartner() returned unexpected error: %v", err)
		}

		if updated.Name != "Alice Anderson" {
			t.Errorf("Expected updated name, got %q", updated.Name)
		}
		if updated.DefaultSplitPartner != 0.3 {
			t.Errorf("Expected split unchanged, got %v", updated.DefaultSplitPartner)
		}
		if updated.Notes != "original" {
			t.Errorf("Expected notes unchanged, got %q", updated.Notes)
		}
	})

	t.Run("updates the split pair together", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPartnerService(t, db)

		partner := testutil.NewPartner().WithDefaultSplit(0.3, 0.7).Build(t, db)

		p, o := 0.45, 0.55
		updated, err := svc.UpdatePartner(partner.ID, request.UpdatePartnerRequest{
			DefaultSplitPartner: &p,
			DefaultSplitOwner:   &o,
		})
		if err != nil {
			t.Fatalf("UpdatePartner() returned unexpected error: %v", err)
		}

		if updated.DefaultSplitPartner != 0.45 || updated.DefaultSplitOwner != 0.55 {
			t.Errorf("Expected 0.45/0.55, got %v/%v",
				updated.DefaultSplitPartner, updated.DefaultSplitOwner)
		}
	})

	t.Run("returns not found for unknown partner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPartnerService(t, db)

		name := "Ghost"
		_, err := svc.UpdatePartner(testutil.MakeID(), request.UpdatePartnerRequest{Name: &name})
		if !errors.Is(err, apperrors.ErrPartnerNotFound) {
			t.Errorf("Expected ErrPartnerNotFound, got %v", err)
		}
	})
}
