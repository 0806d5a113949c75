package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Partner table
		CREATE TABLE partner (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			default_split_partner FLOAT NOT NULL,
			default_split_owner FLOAT NOT NULL,
			contact TEXT,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Client table
		CREATE TABLE client (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- One active assignment per client, enforced by the unique index
		CREATE TABLE client_partner_assignment (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			client_id VARCHAR(36) NOT NULL,
			partner_id VARCHAR(36) NOT NULL,
			split_partner_override FLOAT,
			split_owner_override FLOAT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(client_id) REFERENCES client(id) ON DELETE CASCADE,
			FOREIGN KEY(partner_id) REFERENCES partner(id) ON DELETE CASCADE,
			CONSTRAINT unique_client_assignment UNIQUE (client_id)
		);

		-- Client app records
		CREATE TABLE client_app (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			client_id VARCHAR(36) NOT NULL,
			app_name VARCHAR(100) NOT NULL,
			status VARCHAR(10) NOT NULL,
			profit_us INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(client_id) REFERENCES client(id) ON DELETE CASCADE
		);

		-- Partner payment trail
		CREATE TABLE partner_payment (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			partner_id VARCHAR(36) NOT NULL,
			amount INTEGER NOT NULL,
			note TEXT,
			paid_at DATETIME NOT NULL,
			FOREIGN KEY(partner_id) REFERENCES partner(id) ON DELETE CASCADE
		);

		-- Daily balance captures
		CREATE TABLE partner_balance_history (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			partner_id VARCHAR(36) NOT NULL,
			date DATE NOT NULL,
			total_profit INTEGER NOT NULL,
			partner_share INTEGER NOT NULL,
			owner_share INTEGER NOT NULL,
			total_paid INTEGER NOT NULL,
			balance INTEGER NOT NULL,
			client_count INTEGER NOT NULL,
			captured_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(partner_id) REFERENCES partner(id) ON DELETE CASCADE,
			CONSTRAINT unique_partner_date UNIQUE (partner_id, date)
		);

		CREATE INDEX idx_assignment_partner ON client_partner_assignment(partner_id);
		CREATE INDEX idx_client_app_client ON client_app(client_id);
		CREATE INDEX idx_payment_partner ON partner_payment(partner_id);
		CREATE INDEX idx_balance_history_partner ON partner_balance_history(partner_id, date);
	`

	_, err := db.Exec(schema)
	return err
}
