package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/1mikez1/BonusTracker-sub001/internal/autoassign"
	"github.com/1mikez1/BonusTracker-sub001/internal/repository"
	"github.com/1mikez1/BonusTracker-sub001/internal/secure"
	"github.com/1mikez1/BonusTracker-sub001/internal/service"
)

// NewTestVault returns a pass-through vault, so repositories read and write
// contact info as plaintext. Encryption round-trips are covered by the
// secure package's own tests.
func NewTestVault(t *testing.T) *secure.Vault {
	t.Helper()

	vault, err := secure.NewVault("")
	if err != nil {
		t.Fatalf("Failed to create test vault: %v", err)
	}
	return vault
}

func NewTestPartnerService(t *testing.T, db *sql.DB) *service.PartnerService {
	t.Helper()

	partnerRepo := repository.NewPartnerRepository(db, NewTestVault(t))

	return service.NewPartnerService(partnerRepo)
}

func NewTestClientService(t *testing.T, db *sql.DB) *service.ClientService {
	t.Helper()

	clientRepo := repository.NewClientRepository(db)
	clientAppRepo := repository.NewClientAppRepository(db)

	return service.NewClientService(clientRepo, clientAppRepo)
}

// NewTestAssignmentService builds an AssignmentService with no configured
// auto-assignment endpoint. Tests exercising the trigger pass their own
// endpoint via NewTestAssignmentServiceWithAutoAssign.
func NewTestAssignmentService(t *testing.T, db *sql.DB) *service.AssignmentService {
	t.Helper()

	return NewTestAssignmentServiceWithAutoAssign(t, db, "")
}

func NewTestAssignmentServiceWithAutoAssign(t *testing.T, db *sql.DB, endpoint string) *service.AssignmentService {
	t.Helper()

	assignmentRepo := repository.NewAssignmentRepository(db)
	clientRepo := repository.NewClientRepository(db)
	partnerRepo := repository.NewPartnerRepository(db, NewTestVault(t))

	return service.NewAssignmentService(
		assignmentRepo,
		clientRepo,
		partnerRepo,
		autoassign.NewClient(endpoint),
	)
}

func NewTestPaymentService(t *testing.T, db *sql.DB) *service.PaymentService {
	t.Helper()

	paymentRepo := repository.NewPaymentRepository(db)
	partnerRepo := repository.NewPartnerRepository(db, NewTestVault(t))

	return service.NewPaymentService(paymentRepo, partnerRepo)
}

func NewTestSnapshotRepository(t *testing.T, db *sql.DB) *repository.SnapshotRepository {
	t.Helper()

	return repository.NewSnapshotRepository(
		repository.NewPartnerRepository(db, NewTestVault(t)),
		repository.NewClientRepository(db),
		repository.NewAssignmentRepository(db),
		repository.NewClientAppRepository(db),
		repository.NewPaymentRepository(db),
	)
}

func NewTestLedgerService(t *testing.T, db *sql.DB) *service.LedgerService {
	t.Helper()

	snapshotRepo := NewTestSnapshotRepository(t, db)
	partnerRepo := repository.NewPartnerRepository(db, NewTestVault(t))

	return service.NewLedgerService(snapshotRepo, partnerRepo)
}

func NewTestBalanceHistoryService(t *testing.T, db *sql.DB) *service.BalanceHistoryService {
	t.Helper()

	snapshotRepo := NewTestSnapshotRepository(t, db)
	historyRepo := repository.NewBalanceHistoryRepository(db)

	return service.NewBalanceHistoryService(snapshotRepo, historyRepo)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeName generates a unique name for testing.
//
// Example usage:
//
//	name := testutil.MakeName("Partner")
//	// Returns: "Partner ABC123"
func MakeName(base string) string {
	if base == "" {
		base = "Name"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
