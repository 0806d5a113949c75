package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/1mikez1/BonusTracker-sub001/internal/model"
)

// BalanceHistoryRepository provides data access methods for the
// partner_balance_history table, the persisted daily captures of computed
// balances.
type BalanceHistoryRepository struct {
	db *sql.DB
}

// NewBalanceHistoryRepository creates a new BalanceHistoryRepository with the provided database connection.
func NewBalanceHistoryRepository(db *sql.DB) *BalanceHistoryRepository {
	return &BalanceHistoryRepository{db: db}
}

// UpsertSnapshot writes one partner's balance capture for a date. Re-running
// the capture job on the same date overwrites the earlier row, so the job is
// safe to trigger manually after a cron run.
func (r *BalanceHistoryRepository) UpsertSnapshot(snap model.PartnerBalanceSnapshot) error {
	query := `
		INSERT INTO partner_balance_history
			(id, partner_id, date, total_profit, partner_share, owner_share, total_paid, balance, client_count, captured_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(partner_id, date) DO UPDATE SET
			total_profit = excluded.total_profit,
			partner_share = excluded.partner_share,
			owner_share = excluded.owner_share,
			total_paid = excluded.total_paid,
			balance = excluded.balance,
			client_count = excluded.client_count,
			captured_at = excluded.captured_at
	`
	_, err := r.db.Exec(query,
		snap.ID,
		snap.PartnerID,
		snap.Date.UTC().Format("2006-01-02"),
		snap.TotalProfit.Cents(),
		snap.PartnerShare.Cents(),
		snap.OwnerShare.Cents(),
		snap.TotalPaid.Cents(),
		snap.Balance.Cents(),
		snap.ClientCount,
		snap.CapturedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert balance history: %w", err)
	}

	return nil
}

// GetHistoryOnPartnerID retrieves a partner's balance captures within the
// given date range, oldest first.
func (r *BalanceHistoryRepository) GetHistoryOnPartnerID(partnerID string, startDate, endDate time.Time) ([]model.PartnerBalanceSnapshot, error) {
	query := `
          SELECT id, partner_id, date, total_profit, partner_share, owner_share, total_paid, balance, client_count, captured_at
          FROM partner_balance_history
          WHERE partner_id = ? AND date >= ? AND date <= ?
          ORDER BY date
      `
	rows, err := r.db.Query(query,
		partnerID,
		startDate.UTC().Format("2006-01-02"),
		endDate.UTC().Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query partner_balance_history table: %w", err)
	}
	defer rows.Close()

	history := []model.PartnerBalanceSnapshot{}

	for rows.Next() {
		var s model.PartnerBalanceSnapshot
		var date, capturedAt string

		err := rows.Scan(
			&s.ID,
			&s.PartnerID,
			&date,
			&s.TotalProfit,
			&s.PartnerShare,
			&s.OwnerShare,
			&s.TotalPaid,
			&s.Balance,
			&s.ClientCount,
			&capturedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan partner_balance_history results: %w", err)
		}

		if s.Date, err = ParseTime(date); err != nil {
			return nil, fmt.Errorf("failed to parse history date: %w", err)
		}
		if s.CapturedAt, err = ParseTime(capturedAt); err != nil {
			return nil, fmt.Errorf("failed to parse history captured_at: %w", err)
		}

		history = append(history, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partner_balance_history table: %w", err)
	}

	return history, nil
}
