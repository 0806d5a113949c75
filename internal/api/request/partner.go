package request

// CreatePartnerRequest represents the request body for creating a partner
type CreatePartnerRequest struct {
	Name                string  `json:"name"`
	DefaultSplitPartner float64 `json:"defaultSplitPartner"`
	DefaultSplitOwner   float64 `json:"defaultSplitOwner"`
	Contact             string  `json:"contact,omitempty"`
	Notes               string  `json:"notes,omitempty"`
}

// UpdatePartnerRequest represents a partial partner update. Split fields must
// be provided together or not at all.
type UpdatePartnerRequest struct {
	Name                *string  `json:"name,omitempty"`
	DefaultSplitPartner *float64 `json:"defaultSplitPartner,omitempty"`
	DefaultSplitOwner   *float64 `json:"defaultSplitOwner,omitempty"`
	Contact             *string  `json:"contact,omitempty"`
	Notes               *string  `json:"notes,omitempty"`
}
