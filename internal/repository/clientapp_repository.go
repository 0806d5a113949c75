package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/1mikez1/BonusTracker-sub001/internal/model"
)

// ClientAppRepository provides data access methods for the client_app table,
// the profit-bearing records the ledger sums per client.
type ClientAppRepository struct {
	db *sql.DB
}

// NewClientAppRepository creates a new ClientAppRepository with the provided database connection.
func NewClientAppRepository(db *sql.DB) *ClientAppRepository {
	return &ClientAppRepository{db: db}
}

// GetClientApps retrieves all client app records. A NULL profit_us column
// scans to zero; not-yet-monetized apps contribute nothing to the ledger.
func (r *ClientAppRepository) GetClientApps() ([]model.ClientApp, error) {
	query := `
          SELECT id, client_id, app_name, status, profit_us, created_at, updated_at
          FROM client_app
          ORDER BY created_at, id
      `
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query client_app table: %w", err)
	}
	defer rows.Close()

	apps := []model.ClientApp{}

	for rows.Next() {
		app, err := scanClientApp(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client_app table: %w", err)
	}

	return apps, nil
}

// GetClientAppsOnClientID retrieves all app records for one client.
func (r *ClientAppRepository) GetClientAppsOnClientID(clientID string) ([]model.ClientApp, error) {
	query := `
          SELECT id, client_id, app_name, status, profit_us, created_at, updated_at
          FROM client_app
          WHERE client_id = ?
          ORDER BY created_at, id
      `
	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query client_app table: %w", err)
	}
	defer rows.Close()

	apps := []model.ClientApp{}

	for rows.Next() {
		app, err := scanClientApp(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client_app table: %w", err)
	}

	return apps, nil
}

// CreateClientApp inserts a new client app record.
func (r *ClientAppRepository) CreateClientApp(app model.ClientApp) error {
	query := `
		INSERT INTO client_app (id, client_id, app_name, status, profit_us, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		app.ID,
		app.ClientID,
		app.AppName,
		app.Status,
		app.ProfitUS.Cents(),
		app.CreatedAt.UTC().Format(time.RFC3339),
		app.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert client app: %w", err)
	}

	return nil
}

func scanClientApp(row *sql.Rows) (model.ClientApp, error) {
	var a model.ClientApp
	var createdAt, updatedAt string

	err := row.Scan(
		&a.ID,
		&a.ClientID,
		&a.AppName,
		&a.Status,
		&a.ProfitUS,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return model.ClientApp{}, fmt.Errorf("failed to scan client_app table results: %w", err)
	}

	if a.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.ClientApp{}, fmt.Errorf("failed to parse client_app created_at: %w", err)
	}
	if a.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.ClientApp{}, fmt.Errorf("failed to parse client_app updated_at: %w", err)
	}

	return a, nil
}
