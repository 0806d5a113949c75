package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/1mikez1/BonusTracker-sub001/internal/apperrors"
	"github.com/1mikez1/BonusTracker-sub001/internal/model"
)

// ClientRepository provides data access methods for the client table.
type ClientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new ClientRepository with the provided database connection.
func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// GetClients retrieves clients from the database based on filter criteria.
// With UnassignedOnly set, only clients without an active assignment are
// returned, which is the input set for the auto-assignment procedure.
func (r *ClientRepository) GetClients(filter model.ClientFilter) ([]model.Client, error) {
	query := `
          SELECT c.id, c.name, c.created_at
          FROM client c
      `
	if filter.UnassignedOnly {
		query += `
          LEFT JOIN client_partner_assignment a ON a.client_id = c.id
          WHERE a.id IS NULL
      `
	}
	query += " ORDER BY c.created_at, c.id"

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query client table: %w", err)
	}
	defer rows.Close()

	clients := []model.Client{}

	for rows.Next() {
		var c model.Client
		var createdAt string

		if err := rows.Scan(&c.ID, &c.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan client table results: %w", err)
		}
		if c.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse client created_at: %w", err)
		}

		clients = append(clients, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client table: %w", err)
	}

	return clients, nil
}

// GetClientOnID retrieves a single client by ID.
func (r *ClientRepository) GetClientOnID(clientID string) (model.Client, error) {
	query := `SELECT c.id, c.name, c.created_at FROM client c WHERE c.id = ?`

	var c model.Client
	var createdAt string

	err := r.db.QueryRow(query, clientID).Scan(&c.ID, &c.Name, &createdAt)
	if err == sql.ErrNoRows {
		return model.Client{}, apperrors.ErrClientNotFound
	}
	if err != nil {
		return model.Client{}, fmt.Errorf("failed to query client: %w", err)
	}
	if c.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Client{}, fmt.Errorf("failed to parse client created_at: %w", err)
	}

	return c, nil
}

// GetClientNames returns a lookup table of client ID to display name for the
// ledger's breakdown lines.
func (r *ClientRepository) GetClientNames() (map[string]string, error) {
	rows, err := r.db.Query(`SELECT id, name FROM client`)
	if err != nil {
		return nil, fmt.Errorf("failed to query client names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan client name results: %w", err)
		}
		names[id] = name
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client names: %w", err)
	}

	return names, nil
}

// CreateClient inserts a new client row.
func (r *ClientRepository) CreateClient(client model.Client) error {
	query := `INSERT INTO client (id, name, created_at) VALUES (?, ?, ?)`

	_, err := r.db.Exec(query, client.ID, client.Name, client.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}

	return nil
}
