package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/request"
	"github.com/1mikez1/BonusTracker-sub001/internal/apperrors"
	"github.com/1mikez1/BonusTracker-sub001/internal/autoassign"
	"github.com/1mikez1/BonusTracker-sub001/internal/testutil"
)

// TestAssignmentService_AssignClient tests linking clients to partners.
//
// WHY: Assignments are what route profit to partners. The one-active-
// assignment-per-client rule must hold at the database level, and dangling
// references to missing clients or partners must be rejected before insert.
func TestAssignmentService_AssignClient(t *testing.T) {
	t.Run("creates assignment with default terms", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssignmentService(t, db)

		partner := testutil.CreatePartner(t, db, "Alice")
		client := testutil.CreateClient(t, db, "Client")

		assignment, err := svc.AssignClient(request.CreateAssignmentRequest{
			ClientID:  client.ID,
			PartnerID: partner.ID,
		})
		if err != nil {
			t.Fatalf("AssignClient() returned unexpected error: %v", err)
		}

		if assignment.ClientID != client.ID || assignment.PartnerID != partner.ID {
			t.Errorf("Assignment links wrong pair: %+v", assignment)
		}
		if assignment.Override != nil {
			t.Error("Expected no override on default assignment")
		}
	})

	t.Run("creates assignment with override pair", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssignmentService(t, db)

		partner := testutil.CreatePartner(t, db, "Alice")
		client := testutil.CreateClient(t, db, "Client")

		p, o := 0.5, 0.5
		assignment, err := svc.AssignClient(request.CreateAssignmentRequest{
			ClientID:             client.ID,
			PartnerID:            partner.ID,
			SplitPartnerOverride: &p,
			SplitOwnerOverride:   &o,
		})
		if err != nil {
			t.Fatalf("AssignClient() returned unexpected error: %v", err)
		}

		if assignment.Override == nil {
			t.Fatal("Expected override to be set")
		}
		if assignment.Override.Partner != 0.5 || assignment.Override.Owner != 0.5 {
			t.Errorf("Expected 0.5/0.5 override, got %+v", assignment.Override)
		}

		// Round-trip through the repository to verify persistence.
		stored, err := svc.GetAssignments()
		if err != nil {
			t.Fatalf("GetAssignments() returned unexpected error: %v", err)
		}
		if len(stored) != 1 || stored[0].Override == nil {
			t.Fatalf("Expected 1 stored assignment with override, got %+v", stored)
		}
	})

	t.Run("rejects second active assignment for the same client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssignmentService(t, db)

		alice := testutil.CreatePartner(t, db, "Alice")
		bob := testutil.CreatePartner(t, db, "Bob")
		client := testutil.CreateClient(t, db, "Client")

		if _, err := svc.AssignClient(request.CreateAssignmentRequest{
			ClientID: client.ID, PartnerID: alice.ID,
		}); err != nil {
			t.Fatalf("First AssignClient() returned unexpected error: %v", err)
		}

		_, err := svc.AssignClient(request.CreateAssignmentRequest{
			ClientID: client.ID, PartnerID: bob.ID,
		})
		if !errors.Is(err, apperrors.ErrClientAlreadyAssigned) {
			t.Errorf("Expected ErrClientAlreadyAssigned, got %v", err)
		}
	})

	t.Run("rejects unknown client and unknown partner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssignmentService(t, db)

		partner := testutil.CreatePartner(t, db, "Alice")
		client := testutil.CreateClient(t, db, "Client")

		_, err := svc.AssignClient(request.CreateAssignmentRequest{
			ClientID: testutil.MakeID(), PartnerID: partner.ID,
		})
		if !errors.Is(err, apperrors.ErrClientNotFound) {
			t.Errorf("Expected ErrClientNotFound, got %v", err)
		}

		_, err = svc.AssignClient(request.CreateAssignmentRequest{
			ClientID: client.ID, PartnerID: testutil.MakeID(),
		})
		if !errors.Is(err, apperrors.ErrPartnerNotFound) {
			t.Errorf("Expected ErrPartnerNotFound, got %v", err)
		}
	})
}

// TestAssignmentService_UpdateOverride tests setting and clearing override terms.
//
// WHY: Overrides change how future profit is divided without touching
// recorded history. Clearing one must revert the client to partner defaults,
// which the ledger resolves at read time.
func TestAssignmentService_UpdateOverride(t *testing.T) {
	t.Run("sets and clears the override pair", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssignmentService(t, db)

		partner := testutil.CreatePartner(t, db, "Alice")
		client := testutil.CreateClient(t, db, "Client")
		assignment := testutil.CreateAssignment(t, db, client.ID, partner.ID)

		p, o := 0.6, 0.4
		if err := svc.UpdateOverride(assignment.ID, request.UpdateOverrideRequest{
			SplitPartnerOverride: &p,
			SplitOwnerOverride:   &o,
		}); err != nil {
			t.Fatalf("UpdateOverride() returned unexpected error: %v", err)
		}

		stored, err := svc.GetAssignments()
		if err != nil {
			t.Fatalf("GetAssignments() returned unexpected error: %v", err)
		}
		if stored[0].Override == nil || stored[0].Override.Partner != 0.6 {
			t.Fatalf("Expected stored override 0.6/0.4, got %+v", stored[0].Override)
		}

		// Clearing reverts the client to partner defaults.
		if err := svc.UpdateOverride(assignment.ID, request.UpdateOverrideRequest{}); err != nil {
			t.Fatalf("UpdateOverride() clear returned unexpected error: %v", err)
		}

		stored, err = svc.GetAssignments()
		if err != nil {
			t.Fatalf("GetAssignments() returned unexpected error: %v", err)
		}
		if stored[0].Override != nil {
			t.Errorf("Expected override cleared, got %+v", stored[0].Override)
		}
	})

	t.Run("returns not found for unknown assignment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssignmentService(t, db)

		err := svc.UpdateOverride(testutil.MakeID(), request.UpdateOverrideRequest{})
		if !errors.Is(err, apperrors.ErrAssignmentNotFound) {
			t.Errorf("Expected ErrAssignmentNotFound, got %v", err)
		}
	})
}

// TestAssignmentService_Unassign tests removing an active assignment.
//
// WHY: Unassigning must free the client for reassignment while leaving its
// profit history untouched.
func TestAssignmentService_Unassign(t *testing.T) {
	t.Run("removes the assignment and frees the client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssignmentService(t, db)

		alice := testutil.CreatePartner(t, db, "Alice")
		bob := testutil.CreatePartner(t, db, "Bob")
		client := testutil.CreateClient(t, db, "Client")
		assignment := testutil.CreateAssignment(t, db, client.ID, alice.ID)

		if err := svc.Unassign(assignment.ID); err != nil {
			t.Fatalf("Unassign() returned unexpected error: %v", err)
		}

		// The client can now be assigned to someone else.
		if _, err := svc.AssignClient(request.CreateAssignmentRequest{
			ClientID: client.ID, PartnerID: bob.ID,
		}); err != nil {
			t.Errorf("Expected reassignment to succeed, got %v", err)
		}
	})

	t.Run("returns not found for unknown assignment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssignmentService(t, db)

		if err := svc.Unassign(testutil.MakeID()); !errors.Is(err, apperrors.ErrAssignmentNotFound) {
			t.Errorf("Expected ErrAssignmentNotFound, got %v", err)
		}
	})
}

// TestAssignmentService_AutoAssign tests the external auto-assignment trigger.
//
// WHY: The procedure is opaque and remote. The service must send exactly the
// unassigned clients, relay the outcomes verbatim, and fail cleanly when no
// endpoint is configured.
func TestAssignmentService_AutoAssign(t *testing.T) {
	t.Run("posts unassigned clients and relays outcomes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		partner := testutil.CreatePartner(t, db, "Alice")
		assigned := testutil.CreateClient(t, db, "Assigned")
		testutil.CreateAssignment(t, db, assigned.ID, partner.ID)
		unassigned := testutil.CreateClient(t, db, "Unassigned")

		var received autoassign.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
				t.Errorf("Failed to decode request: %v", err)
			}
			//nolint:errcheck // Test response
			json.NewEncoder(w).Encode(autoassign.Response{
				Outcomes: []autoassign.Outcome{{ClientID: unassigned.ID, Assigned: true}},
			})
		}))
		defer server.Close()

		svc := testutil.NewTestAssignmentServiceWithAutoAssign(t, db, server.URL)

		outcomes, err := svc.AutoAssign(context.Background())
		if err != nil {
			t.Fatalf("AutoAssign() returned unexpected error: %v", err)
		}

		if len(received.ClientIDs) != 1 || received.ClientIDs[0] != unassigned.ID {
			t.Errorf("Expected only the unassigned client to be sent, got %v", received.ClientIDs)
		}
		if len(outcomes) != 1 || !outcomes[0].Assigned {
			t.Errorf("Expected one assigned outcome, got %+v", outcomes)
		}
	})

	t.Run("fails when no endpoint is configured", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssignmentService(t, db)

		_, err := svc.AutoAssign(context.Background())
		if !errors.Is(err, apperrors.ErrAutoAssignNotConfigured) {
			t.Errorf("Expected ErrAutoAssignNotConfigured, got %v", err)
		}
	})

	t.Run("propagates procedure errors", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.CreateClient(t, db, "Unassigned")

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			msg := "partner pool exhausted"
			//nolint:errcheck // Test response
			json.NewEncoder(w).Encode(autoassign.Response{Error: &msg})
		}))
		defer server.Close()

		svc := testutil.NewTestAssignmentServiceWithAutoAssign(t, db, server.URL)

		if _, err := svc.AutoAssign(context.Background()); err == nil {
			t.Error("Expected error from procedure, got nil")
		}
	})
}
