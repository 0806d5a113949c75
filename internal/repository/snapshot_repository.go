package repository

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/1mikez1/BonusTracker-sub001/internal/ledger"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
)

// SnapshotRepository loads the full ledger snapshot: partners, assignments,
// client apps, payments, and the client-name lookup. The five reads run
// concurrently; the ledger itself stays synchronous and pure over the result.
type SnapshotRepository struct {
	partnerRepo    *PartnerRepository
	clientRepo     *ClientRepository
	assignmentRepo *AssignmentRepository
	clientAppRepo  *ClientAppRepository
	paymentRepo    *PaymentRepository
}

// NewSnapshotRepository creates a SnapshotRepository composed of the
// individual table repositories.
func NewSnapshotRepository(
	partnerRepo *PartnerRepository,
	clientRepo *ClientRepository,
	assignmentRepo *AssignmentRepository,
	clientAppRepo *ClientAppRepository,
	paymentRepo *PaymentRepository,
) *SnapshotRepository {
	return &SnapshotRepository{
		partnerRepo:    partnerRepo,
		clientRepo:     clientRepo,
		assignmentRepo: assignmentRepo,
		clientAppRepo:  clientAppRepo,
		paymentRepo:    paymentRepo,
	}
}

// LoadSnapshot fetches all collections the ledger computes over. Any single
// failed read fails the whole load; a partial snapshot would silently skew
// every balance.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context) (ledger.Snapshot, error) {
	var snapshot ledger.Snapshot

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		partners, err := r.partnerRepo.GetPartners(model.PartnerFilter{})
		if err != nil {
			return fmt.Errorf("snapshot partners: %w", err)
		}
		snapshot.Partners = partners
		return nil
	})

	g.Go(func() error {
		assignments, err := r.assignmentRepo.GetAssignments()
		if err != nil {
			return fmt.Errorf("snapshot assignments: %w", err)
		}
		snapshot.Assignments = assignments
		return nil
	})

	g.Go(func() error {
		apps, err := r.clientAppRepo.GetClientApps()
		if err != nil {
			return fmt.Errorf("snapshot client apps: %w", err)
		}
		snapshot.ClientApps = apps
		return nil
	})

	g.Go(func() error {
		payments, err := r.paymentRepo.GetPayments()
		if err != nil {
			return fmt.Errorf("snapshot payments: %w", err)
		}
		snapshot.Payments = payments
		return nil
	})

	g.Go(func() error {
		names, err := r.clientRepo.GetClientNames()
		if err != nil {
			return fmt.Errorf("snapshot client names: %w", err)
		}
		snapshot.ClientNames = names
		return nil
	})

	if err := g.Wait(); err != nil {
		return ledger.Snapshot{}, err
	}

	return snapshot, nil
}
