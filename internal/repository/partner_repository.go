package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/1mikez1/BonusTracker-sub001/internal/apperrors"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/secure"
)

// PartnerRepository provides data access methods for the partner table.
// Contact info runs through the vault on the way in and out; a nil vault
// stores plaintext.
type PartnerRepository struct {
	db    *sql.DB
	vault *secure.Vault
}

// NewPartnerRepository creates a new PartnerRepository with the provided database connection.
func NewPartnerRepository(db *sql.DB, vault *secure.Vault) *PartnerRepository {
	return &PartnerRepository{db: db, vault: vault}
}

// GetPartners retrieves partners from the database based on filter criteria.
// Returns an empty slice if no partners match.
func (r *PartnerRepository) GetPartners(filter model.PartnerFilter) ([]model.Partner, error) {
	query := `
          SELECT id, name, default_split_partner, default_split_owner, contact, notes, created_at
          FROM partner
          WHERE 1=1
      `
	var args []any

	if filter.Query != "" {
		query += " AND LOWER(name) LIKE '%' || LOWER(?) || '%'"
		args = append(args, filter.Query)
	}

	query += " ORDER BY created_at, id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query partner table: %w", err)
	}
	defer rows.Close()

	partners := []model.Partner{}

	for rows.Next() {
		partner, err := r.scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, partner)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partner table: %w", err)
	}

	return partners, nil
}

// GetPartnerOnID retrieves a single partner by ID.
func (r *PartnerRepository) GetPartnerOnID(partnerID string) (model.Partner, error) {
	query := `
          SELECT id, name, default_split_partner, default_split_owner, contact, notes, created_at
          FROM partner
          WHERE id = ?
      `
	row := r.db.QueryRow(query, partnerID)

	partner, err := r.scanPartner(row)
	if err == sql.ErrNoRows {
		return model.Partner{}, apperrors.ErrPartnerNotFound
	}
	if err != nil {
		return model.Partner{}, err
	}

	return partner, nil
}

// CreatePartner inserts a new partner row. The caller has already validated
// that the default split pair sums to 1.
func (r *PartnerRepository) CreatePartner(partner model.Partner) error {
	contact, err := r.vault.Encrypt(partner.Contact)
	if err != nil {
		return fmt.Errorf("failed to encrypt partner contact: %w", err)
	}

	query := `
		INSERT INTO partner (id, name, default_split_partner, default_split_owner, contact, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query,
		partner.ID,
		partner.Name,
		partner.DefaultSplitPartner,
		partner.DefaultSplitOwner,
		contact,
		partner.Notes,
		partner.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert partner: %w", err)
	}

	return nil
}

// UpdatePartner updates name, splits, contact and notes for an existing partner.
func (r *PartnerRepository) UpdatePartner(partner model.Partner) error {
	contact, err := r.vault.Encrypt(partner.Contact)
	if err != nil {
		return fmt.Errorf("failed to encrypt partner contact: %w", err)
	}

	query := `
		UPDATE partner
		SET name = ?, default_split_partner = ?, default_split_owner = ?, contact = ?, notes = ?
		WHERE id = ?
	`
	result, err := r.db.Exec(query,
		partner.Name,
		partner.DefaultSplitPartner,
		partner.DefaultSplitOwner,
		contact,
		partner.Notes,
		partner.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update partner: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPartnerNotFound
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (r *PartnerRepository) scanPartner(row scanner) (model.Partner, error) {
	var p model.Partner
	var contact, notes sql.NullString
	var createdAt string

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.DefaultSplitPartner,
		&p.DefaultSplitOwner,
		&contact,
		&notes,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return model.Partner{}, err
	}
	if err != nil {
		return model.Partner{}, fmt.Errorf("failed to scan partner table results: %w", err)
	}

	p.Contact = r.vault.Decrypt(contact.String)
	p.Notes = notes.String
	if p.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Partner{}, fmt.Errorf("failed to parse partner created_at: %w", err)
	}

	return p, nil
}
