package service_test

import (
	"errors"
	"testing"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/request"
	"github.com/1mikez1/BonusTracker-sub001/internal/apperrors"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/money"
	"github.com/1mikez1/BonusTracker-sub001/internal/testutil"
)

// TestClientService_GetClients tests the client registry listing and the
// unassigned filter.
//
// WHY: The unassigned filter is the candidate set for auto-assignment; a
// client with an active assignment leaking into it would get double-assigned.
func TestClientService_GetClients(t *testing.T) {
	t.Run("unassigned filter excludes assigned clients", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestClientService(t, db)

		partner := testutil.CreatePartner(t, db, "Alice")
		assigned := testutil.CreateClient(t, db, "Assigned")
		testutil.CreateAssignment(t, db, assigned.ID, partner.ID)
		free := testutil.CreateClient(t, db, "Free")

		clients, err := svc.GetClients(model.ClientFilter{UnassignedOnly: true})
		if err != nil {
			t.Fatalf("GetClients() returned unexpected error: %v", err)
		}

		if len(clients) != 1 {
			t.Fatalf("Expected 1 unassigned client, got %d", len(clients))
		}
		if clients[0].ID != free.ID {
			t.Errorf("Expected the free client, got %q", clients[0].Name)
		}

		all, err := svc.GetClients(model.ClientFilter{})
		if err != nil {
			t.Fatalf("GetClients() returned unexpected error: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("Expected 2 clients without filter, got %d", len(all))
		}
	})
}

// TestClientService_AddClientApp tests recording promotional app engagements.
//
// WHY: App records carry the profit that the whole ledger divides. They must
// land on an existing client and round-trip the profit amount exactly.
func TestClientService_AddClientApp(t *testing.T) {
	t.Run("records app with profit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestClientService(t, db)

		client := testutil.CreateClient(t, db, "Client")

		app, err := svc.AddClientApp(request.CreateClientAppRequest{
			ClientID: client.ID,
			AppName:  "CasinoX",
			Status:   model.AppStatusCompleted,
			ProfitUS: money.FromCents(12345),
		})
		if err != nil {
			t.Fatalf("AddClientApp() returned unexpected error: %v", err)
		}

		apps, err := svc.GetClientApps(client.ID)
		if err != nil {
			t.Fatalf("GetClientApps() returned unexpected error: %v", err)
		}
		if len(apps) != 1 {
			t.Fatalf("Expected 1 app record, got %d", len(apps))
		}
		if apps[0].ID != app.ID || apps[0].ProfitUS.Cents() != 12345 {
			t.Errorf("Expected profit 12345 cents to round-trip, got %+v", apps[0])
		}
	})

	t.Run("rejects unknown client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestClientService(t, db)

		_, err := svc.AddClientApp(request.CreateClientAppRequest{
			ClientID: testutil.MakeID(),
			AppName:  "CasinoX",
			Status:   model.AppStatusRequested,
		})
		if !errors.Is(err, apperrors.ErrClientNotFound) {
			t.Errorf("Expected ErrClientNotFound, got %v", err)
		}
	})
}

// TestClientService_RegisterClient tests client creation.
func TestClientService_RegisterClient(t *testing.T) {
	t.Run("creates client and assigns an ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestClientService(t, db)

		client, err := svc.RegisterClient(request.CreateClientRequest{Name: "New Client"})
		if err != nil {
			t.Fatalf("RegisterClient() returned unexpected error: %v", err)
		}
		if client.ID == "" {
			t.Error("Expected generated ID")
		}

		clients, err := svc.GetClients(model.ClientFilter{})
		if err != nil {
			t.Fatalf("GetClients() returned unexpected error: %v", err)
		}
		if len(clients) != 1 || clients[0].Name != "New Client" {
			t.Errorf("Expected the new client to be listed, got %+v", clients)
		}
	})
}
