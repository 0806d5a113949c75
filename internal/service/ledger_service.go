package service

import (
	"context"

	"github.com/1mikez1/BonusTracker-sub001/internal/ledger"
	"github.com/1mikez1/BonusTracker-sub001/internal/repository"
)

// LedgerService runs the profit-sharing computation over a freshly loaded
// snapshot. Nothing is cached between calls: the ledger recomputes in full
// whenever the dashboard asks, so new assignments, profit records, and
// payments are picked up automatically.
type LedgerService struct {
	snapshotRepo *repository.SnapshotRepository
	partnerRepo  *repository.PartnerRepository
}

// NewLedgerService creates a new LedgerService with the provided repository dependencies.
func NewLedgerService(
	snapshotRepo *repository.SnapshotRepository,
	partnerRepo *repository.PartnerRepository,
) *LedgerService {
	return &LedgerService{
		snapshotRepo: snapshotRepo,
		partnerRepo:  partnerRepo,
	}
}

// LedgerView is the aggregator output for the dashboard: filtered, sorted
// rows plus totals over the filtered set.
type LedgerView struct {
	Rows   []ledger.Row  `json:"rows"`
	Totals ledger.Totals `json:"totals"`
}

// GetLedger computes the cross-partner ledger view. Empty query and status
// leave those dimensions unfiltered; an empty sort column falls back to
// descending balance.
func (s *LedgerService) GetLedger(ctx context.Context, query, status, sortColumn string, descending bool) (LedgerView, error) {
	snapshot, err := s.snapshotRepo.LoadSnapshot(ctx)
	if err != nil {
		return LedgerView{}, err
	}

	view := ledger.BuildLedger(snapshot).
		Filter(query, status).
		SortRows(sortColumn, descending)

	return LedgerView{Rows: view.Rows, Totals: view.Totals()}, nil
}

// GetPartnerBreakdown computes the per-client breakdown for one partner.
func (s *LedgerService) GetPartnerBreakdown(ctx context.Context, partnerID string) ([]ledger.ClientBreakdownLine, error) {
	partner, err := s.partnerRepo.GetPartnerOnID(partnerID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.snapshotRepo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return ledger.BuildBreakdown(partner, snapshot.Assignments, snapshot.ClientApps, snapshot.ClientNames), nil
}

// GetPartnerBalance computes one partner's aggregate balance.
func (s *LedgerService) GetPartnerBalance(ctx context.Context, partnerID string) (ledger.PartnerBalance, string, error) {
	partner, err := s.partnerRepo.GetPartnerOnID(partnerID)
	if err != nil {
		return ledger.PartnerBalance{}, "", err
	}

	snapshot, err := s.snapshotRepo.LoadSnapshot(ctx)
	if err != nil {
		return ledger.PartnerBalance{}, "", err
	}

	balance := ledger.CalculateBalance(partner, snapshot.Assignments, snapshot.ClientApps, snapshot.Payments)
	return balance, ledger.Classify(balance), nil
}
