package model

import "time"

// Client represents a bonus-hunting client tracked by the dashboard.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientFilter for querying clients.
type ClientFilter struct {
	// UnassignedOnly restricts results to clients with no active assignment.
	UnassignedOnly bool
}
