package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/1mikez1/BonusTracker-sub001/internal/ledger"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/repository"
)

// BalanceHistoryService captures the computed ledger into the
// partner_balance_history table, giving the dashboard an audit trail of how
// each balance moved over time. The ledger itself stays stateless; this is a
// write-behind record of its output, not a cache it ever reads.
type BalanceHistoryService struct {
	snapshotRepo *repository.SnapshotRepository
	historyRepo  *repository.BalanceHistoryRepository
}

// NewBalanceHistoryService creates a new BalanceHistoryService with the provided repository dependencies.
func NewBalanceHistoryService(
	snapshotRepo *repository.SnapshotRepository,
	historyRepo *repository.BalanceHistoryRepository,
) *BalanceHistoryService {
	return &BalanceHistoryService{
		snapshotRepo: snapshotRepo,
		historyRepo:  historyRepo,
	}
}

// CaptureBalances computes the current ledger and writes one history row per
// partner for the given date. Re-capturing the same date overwrites the
// earlier rows.
func (s *BalanceHistoryService) CaptureBalances(ctx context.Context, date time.Time) error {
	snapshot, err := s.snapshotRepo.LoadSnapshot(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, row := range ledger.BuildLedger(snapshot).Rows {
		snap := model.PartnerBalanceSnapshot{
			ID:           uuid.New().String(),
			PartnerID:    row.PartnerID,
			Date:         date,
			TotalProfit:  row.TotalProfit,
			PartnerShare: row.PartnerShare,
			OwnerShare:   row.OwnerShare,
			TotalPaid:    row.TotalPaid,
			Balance:      row.Balance,
			ClientCount:  row.ClientCount,
			CapturedAt:   now,
		}
		if err := s.historyRepo.UpsertSnapshot(snap); err != nil {
			return fmt.Errorf("capture balance for partner %s: %w", row.PartnerID, err)
		}
	}

	return nil
}

// RunDailyCapture is the cron entry point: captures today's balances and
// logs failures instead of propagating them, since there is no caller to
// report to.
func (s *BalanceHistoryService) RunDailyCapture() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if err := s.CaptureBalances(ctx, today); err != nil {
		log.Printf("daily balance capture failed: %v", err)
		return
	}
	log.Printf("daily balance capture completed for %s", today.Format("2006-01-02"))
}

// GetHistory lists a partner's captured balances within the date range.
func (s *BalanceHistoryService) GetHistory(partnerID string, startDate, endDate time.Time) ([]model.PartnerBalanceSnapshot, error) {
	return s.historyRepo.GetHistoryOnPartnerID(partnerID, startDate, endDate)
}
