package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/1mikez1/BonusTracker-sub001/internal/model"
	"github.com/1mikez1/BonusTracker-sub001/internal/money"
)

// PartnerBuilder provides a fluent interface for creating test partners.
//
// Example usage:
//
//	// Simple creation with defaults
//	partner := testutil.NewPartner().Build(t, db)
//
//	// Customized partner
//	partner := testutil.NewPartner().
//	    WithName("Alice").
//	    WithDefaultSplit(0.4, 0.6).
//	    Build(t, db)
type PartnerBuilder struct {
	ID                  string
	Name                string
	DefaultSplitPartner float64
	DefaultSplitOwner   float64
	Contact             string
	Notes               string
	CreatedAt           time.Time
}

// NewPartner creates a PartnerBuilder with sensible defaults.
func NewPartner() *PartnerBuilder {
	return &PartnerBuilder{
		ID:                  MakeID(),
		Name:                MakeName("Test Partner"),
		DefaultSplitPartner: 0.3,
		DefaultSplitOwner:   0.7,
		CreatedAt:           time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *PartnerBuilder) WithID(id string) *PartnerBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *PartnerBuilder) WithName(name string) *PartnerBuilder {
	b.Name = name
	return b
}

// WithDefaultSplit sets the default split pair.
func (b *PartnerBuilder) WithDefaultSplit(partner, owner float64) *PartnerBuilder {
	b.DefaultSplitPartner = partner
	b.DefaultSplitOwner = owner
	return b
}

// WithContact sets the contact info.
func (b *PartnerBuilder) WithContact(contact string) *PartnerBuilder {
	b.Contact = contact
	return b
}

// WithNotes sets the notes.
func (b *PartnerBuilder) WithNotes(notes string) *PartnerBuilder {
	b.Notes = notes
	return b
}

// Build creates the partner in the database and returns it.
// Contact is stored as given; tests exercising encryption at rest go through
// PartnerRepository instead.
func (b *PartnerBuilder) Build(t *testing.T, db *sql.DB) model.Partner {
	t.Helper()

	query := `
		INSERT INTO partner (id, name, default_split_partner, default_split_owner, contact, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.Name, b.DefaultSplitPartner, b.DefaultSplitOwner,
		b.Contact, b.Notes, b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test partner: %v", err)
	}

	return model.Partner{
		ID:                  b.ID,
		Name:                b.Name,
		DefaultSplitPartner: b.DefaultSplitPartner,
		DefaultSplitOwner:   b.DefaultSplitOwner,
		Contact:             b.Contact,
		Notes:               b.Notes,
		CreatedAt:           b.CreatedAt,
	}
}

// Convenience functions

// CreatePartner creates a partner with the given name and default values.
//
// Example usage:
//
//	partner := testutil.CreatePartner(t, db, "Alice")
func CreatePartner(t *testing.T, db *sql.DB, name string) model.Partner {
	t.Helper()
	return NewPartner().WithName(name).Build(t, db)
}

// ClientBuilder provides a fluent interface for creating test clients.
type ClientBuilder struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// NewClient creates a ClientBuilder with sensible defaults.
func NewClient() *ClientBuilder {
	return &ClientBuilder{
		ID:        MakeID(),
		Name:      MakeName("Test Client"),
		CreatedAt: time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *ClientBuilder) WithID(id string) *ClientBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *ClientBuilder) WithName(name string) *ClientBuilder {
	b.Name = name
	return b
}

// Build creates the client in the database and returns it.
func (b *ClientBuilder) Build(t *testing.T, db *sql.DB) model.Client {
	t.Helper()

	query := `INSERT INTO client (id, name, created_at) VALUES (?, ?, ?)`

	_, err := db.Exec(query, b.ID, b.Name, b.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}

	return model.Client{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
	}
}

// CreateClient creates a client with the given name and default values.
func CreateClient(t *testing.T, db *sql.DB, name string) model.Client {
	t.Helper()
	return NewClient().WithName(name).Build(t, db)
}

// AssignmentBuilder provides a fluent interface for creating test assignments.
//
// Example usage:
//
//	assignment := testutil.NewAssignment(client.ID, partner.ID).
//	    WithOverride(0.5, 0.5).
//	    Build(t, db)
type AssignmentBuilder struct {
	ID        string
	ClientID  string
	PartnerID string
	Override  *model.Split
	CreatedAt time.Time
}

// NewAssignment creates an AssignmentBuilder linking the given client and partner.
func NewAssignment(clientID, partnerID string) *AssignmentBuilder {
	return &AssignmentBuilder{
		ID:        MakeID(),
		ClientID:  clientID,
		PartnerID: partnerID,
		CreatedAt: time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *AssignmentBuilder) WithID(id string) *AssignmentBuilder {
	b.ID = id
	return b
}

// WithOverride sets a per-client override split pair.
func (b *AssignmentBuilder) WithOverride(partner, owner float64) *AssignmentBuilder {
	b.Override = &model.Split{Partner: partner, Owner: owner}
	return b
}

// Build creates the assignment in the database and returns it.
func (b *AssignmentBuilder) Build(t *testing.T, db *sql.DB) model.Assignment {
	t.Helper()

	var overridePartner, overrideOwner interface{}
	if b.Override != nil {
		overridePartner = b.Override.Partner
		overrideOwner = b.Override.Owner
	}

	query := `
		INSERT INTO client_partner_assignment
			(id, client_id, partner_id, split_partner_override, split_owner_override, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.ClientID, b.PartnerID,
		overridePartner, overrideOwner, b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test assignment: %v", err)
	}

	return model.Assignment{
		ID:        b.ID,
		ClientID:  b.ClientID,
		PartnerID: b.PartnerID,
		Override:  b.Override,
		CreatedAt: b.CreatedAt,
	}
}

// CreateAssignment links a client to a partner with default terms.
func CreateAssignment(t *testing.T, db *sql.DB, clientID, partnerID string) model.Assignment {
	t.Helper()
	return NewAssignment(clientID, partnerID).Build(t, db)
}

// ClientAppBuilder provides a fluent interface for creating test client app records.
//
// Example usage:
//
//	app := testutil.NewClientApp(client.ID).
//	    WithProfit(money.FromCents(15000)).
//	    WithStatus(model.AppStatusPaid).
//	    Build(t, db)
type ClientAppBuilder struct {
	ID        string
	ClientID  string
	AppName   string
	Status    string
	ProfitUS  money.Amount
	CreatedAt time.Time
}

// NewClientApp creates a ClientAppBuilder for the given client.
func NewClientApp(clientID string) *ClientAppBuilder {
	return &ClientAppBuilder{
		ID:        MakeID(),
		ClientID:  clientID,
		AppName:   MakeName("Test App"),
		Status:    model.AppStatusCompleted,
		CreatedAt: time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *ClientAppBuilder) WithID(id string) *ClientAppBuilder {
	b.ID = id
	return b
}

// WithAppName sets the promotional app name.
func (b *ClientAppBuilder) WithAppName(name string) *ClientAppBuilder {
	b.AppName = name
	return b
}

// WithStatus sets the lifecycle status.
func (b *ClientAppBuilder) WithStatus(status string) *ClientAppBuilder {
	b.Status = status
	return b
}

// WithProfit sets the realized profit.
func (b *ClientAppBuilder) WithProfit(profit money.Amount) *ClientAppBuilder {
	b.ProfitUS = profit
	return b
}

// Build creates the client app record in the database and returns it.
func (b *ClientAppBuilder) Build(t *testing.T, db *sql.DB) model.ClientApp {
	t.Helper()

	query := `
		INSERT INTO client_app (id, client_id, app_name, status, profit_us, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	created := b.CreatedAt.Format(time.RFC3339)
	_, err := db.Exec(query,
		b.ID, b.ClientID, b.AppName, b.Status, b.ProfitUS.Cents(), created, created,
	)
	if err != nil {
		t.Fatalf("Failed to create test client app: %v", err)
	}

	return model.ClientApp{
		ID:        b.ID,
		ClientID:  b.ClientID,
		AppName:   b.AppName,
		Status:    b.Status,
		ProfitUS:  b.ProfitUS,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

// CreateClientApp records a completed app with the given profit in cents.
func CreateClientApp(t *testing.T, db *sql.DB, clientID string, profitCents int64) model.ClientApp {
	t.Helper()
	return NewClientApp(clientID).WithProfit(money.FromCents(profitCents)).Build(t, db)
}

// PaymentBuilder provides a fluent interface for creating test payments.
type PaymentBuilder struct {
	ID        string
	PartnerID string
	Amount    money.Amount
	Note      string
	PaidAt    time.Time
}

// NewPayment creates a PaymentBuilder for the given partner.
func NewPayment(partnerID string) *PaymentBuilder {
	return &PaymentBuilder{
		ID:        MakeID(),
		PartnerID: partnerID,
		Amount:    money.FromCents(1000),
		PaidAt:    time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *PaymentBuilder) WithID(id string) *PaymentBuilder {
	b.ID = id
	return b
}

// WithAmount sets the payment amount.
func (b *PaymentBuilder) WithAmount(amount money.Amount) *PaymentBuilder {
	b.Amount = amount
	return b
}

// WithNote sets the payment note.
func (b *PaymentBuilder) WithNote(note string) *PaymentBuilder {
	b.Note = note
	return b
}

// WithPaidAt sets the payment timestamp.
func (b *PaymentBuilder) WithPaidAt(paidAt time.Time) *PaymentBuilder {
	b.PaidAt = paidAt
	return b
}

// Build creates the payment in the database and returns it.
func (b *PaymentBuilder) Build(t *testing.T, db *sql.DB) model.Payment {
	t.Helper()

	query := `
		INSERT INTO partner_payment (id, partner_id, amount, note, paid_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.PartnerID, b.Amount.Cents(), b.Note, b.PaidAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test payment: %v", err)
	}

	return model.Payment{
		ID:        b.ID,
		PartnerID: b.PartnerID,
		Amount:    b.Amount,
		Note:      b.Note,
		PaidAt:    b.PaidAt,
	}
}

// CreatePayment records a payment of the given amount in cents.
func CreatePayment(t *testing.T, db *sql.DB, partnerID string, amountCents int64) model.Payment {
	t.Helper()
	return NewPayment(partnerID).WithAmount(money.FromCents(amountCents)).Build(t, db)
}
