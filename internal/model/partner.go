package model

import "time"

// Partner represents a revenue-sharing counterparty from the database.
// DefaultSplitPartner and DefaultSplitOwner are fractions in [0,1] that sum
// to 1; the pair is validated when a partner is created or edited, never by
// the ledger computation that reads it.
type Partner struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	DefaultSplitPartner float64   `json:"defaultSplitPartner"`
	DefaultSplitOwner   float64   `json:"defaultSplitOwner"`
	Contact             string    `json:"contact,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// PartnerFilter for querying partners.
type PartnerFilter struct {
	Query string // case-insensitive substring match on name
}
