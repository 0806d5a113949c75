package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/1mikez1/BonusTracker-sub001/internal/apperrors"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
)

// AssignmentRepository provides data access methods for the
// client_partner_assignment table. The override split pair maps two nullable
// columns onto the optional model.Split, so a half-written pair can never
// leak into the ledger.
type AssignmentRepository struct {
	db *sql.DB
}

// NewAssignmentRepository creates a new AssignmentRepository with the provided database connection.
func NewAssignmentRepository(db *sql.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

const assignmentColumns = `id, client_id, partner_id, split_partner_override, split_owner_override, created_at`

// GetAssignments retrieves all active assignments in insertion order.
func (r *AssignmentRepository) GetAssignments() ([]model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM client_partner_assignment ORDER BY created_at, id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query client_partner_assignment table: %w", err)
	}
	defer rows.Close()

	assignments := []model.Assignment{}

	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client_partner_assignment table: %w", err)
	}

	return assignments, nil
}

// GetAssignmentOnClientID retrieves a client's active assignment, if any.
func (r *AssignmentRepository) GetAssignmentOnClientID(clientID string) (model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM client_partner_assignment WHERE client_id = ?`

	assignment, err := scanAssignment(r.db.QueryRow(query, clientID))
	if err == sql.ErrNoRows {
		return model.Assignment{}, apperrors.ErrAssignmentNotFound
	}
	if err != nil {
		return model.Assignment{}, err
	}

	return assignment, nil
}

// CreateAssignment inserts a new assignment. The unique index on client_id
// rejects a second active assignment for the same client.
func (r *AssignmentRepository) CreateAssignment(assignment model.Assignment) error {
	var splitPartner, splitOwner any
	if assignment.Override != nil {
		splitPartner = assignment.Override.Partner
		splitOwner = assignment.Override.Owner
	}

	query := `
		INSERT INTO client_partner_assignment (id, client_id, partner_id, split_partner_override, split_owner_override, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		assignment.ID,
		assignment.ClientID,
		assignment.PartnerID,
		splitPartner,
		splitOwner,
		assignment.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrClientAlreadyAssigned
		}
		return fmt.Errorf("failed to insert assignment: %w", err)
	}

	return nil
}

// UpdateOverride sets or clears the per-client override split pair.
// A nil override reverts the client to the partner's default terms.
func (r *AssignmentRepository) UpdateOverride(assignmentID string, override *model.Split) error {
	var splitPartner, splitOwner any
	if override != nil {
		splitPartner = override.Partner
		splitOwner = override.Owner
	}

	query := `
		UPDATE client_partner_assignment
		SET split_partner_override = ?, split_owner_override = ?
		WHERE id = ?
	`
	result, err := r.db.Exec(query, splitPartner, splitOwner, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to update assignment override: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

// DeleteAssignment removes a client's active assignment.
func (r *AssignmentRepository) DeleteAssignment(assignmentID string) error {
	result, err := r.db.Exec(`DELETE FROM client_partner_assignment WHERE id = ?`, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

func scanAssignment(row scanner) (model.Assignment, error) {
	var a model.Assignment
	var splitPartner, splitOwner sql.NullFloat64
	var createdAt string

	err := row.Scan(
		&a.ID,
		&a.ClientID,
		&a.PartnerID,
		&splitPartner,
		&splitOwner,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return model.Assignment{}, err
	}
	if err != nil {
		return model.Assignment{}, fmt.Errorf("failed to scan assignment table results: %w", err)
	}

	// Both columns present means an override; anything else means default
	// terms. The write path never stores just one half of the pair.
	if splitPartner.Valid && splitOwner.Valid {
		a.Override = &model.Split{Partner: splitPartner.Float64, Owner: splitOwner.Float64}
	}
	if a.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Assignment{}, fmt.Errorf("failed to parse assignment created_at: %w", err)
	}

	return a, nil
}
