package request

// CreateAssignmentRequest links a client to a partner, optionally with a
// per-client override split pair (both fields or neither).
type CreateAssignmentRequest struct {
	ClientID             string   `json:"clientId"`
	PartnerID            string   `json:"partnerId"`
	SplitPartnerOverride *float64 `json:"splitPartnerOverride,omitempty"`
	SplitOwnerOverride   *float64 `json:"splitOwnerOverride,omitempty"`
}

// UpdateOverrideRequest sets or clears an assignment's override split.
// Omitting both fields clears the override, reverting to partner defaults.
type UpdateOverrideRequest struct {
	SplitPartnerOverride *float64 `json:"splitPartnerOverride,omitempty"`
	SplitOwnerOverride   *float64 `json:"splitOwnerOverride,omitempty"`
}
