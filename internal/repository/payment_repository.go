package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/1mikez1/BonusTracker-sub001/internal/model"
)

// PaymentRepository provides data access methods for the partner_payment
// table. Payments are append-only; there is no update or delete here.
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new PaymentRepository with the provided database connection.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// GetPayments retrieves all payments in payment order.
func (r *PaymentRepository) GetPayments() ([]model.Payment, error) {
	return r.queryPayments(`
          SELECT id, partner_id, amount, note, paid_at
          FROM partner_payment
          ORDER BY paid_at, id
      `)
}

// GetPaymentsOnPartnerID retrieves all payments made to one partner.
func (r *PaymentRepository) GetPaymentsOnPartnerID(partnerID string) ([]model.Payment, error) {
	return r.queryPayments(`
          SELECT id, partner_id, amount, note, paid_at
          FROM partner_payment
          WHERE partner_id = ?
          ORDER BY paid_at, id
      `, partnerID)
}

// CreatePayment appends a new payment row.
func (r *PaymentRepository) CreatePayment(payment model.Payment) error {
	query := `
		INSERT INTO partner_payment (id, partner_id, amount, note, paid_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		payment.ID,
		payment.PartnerID,
		payment.Amount.Cents(),
		payment.Note,
		payment.PaidAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) queryPayments(query string, args ...any) ([]model.Payment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query partner_payment table: %w", err)
	}
	defer rows.Close()

	payments := []model.Payment{}

	for rows.Next() {
		var p model.Payment
		var note sql.NullString
		var paidAt string

		err := rows.Scan(&p.ID, &p.PartnerID, &p.Amount, &note, &paidAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan partner_payment table results: %w", err)
		}

		p.Note = note.String
		if p.PaidAt, err = ParseTime(paidAt); err != nil {
			return nil, fmt.Errorf("failed to parse payment paid_at: %w", err)
		}

		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partner_payment table: %w", err)
	}

	return payments, nil
}
