package model

import "time"

// Split is a partner/owner pair of profit fractions. The pair must sum to 1;
// that invariant is enforced at write time by validation, and read paths pass
// stored values through untouched.
type Split struct {
	Partner float64 `json:"partner"`
	Owner   float64 `json:"owner"`
}

// Assignment links exactly one client to exactly one partner. A client has at
// most one active assignment at a time (unique index on client_id).
//
// Override, when non-nil, supersedes the partner's default split for this
// client. Modeling the override as a single optional pair rather than two
// independently-nullable columns keeps the both-or-neither rule structural.
type Assignment struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	PartnerID string    `json:"partnerId"`
	Override  *Split    `json:"override,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
