package autoassign

// Request is the payload sent to the auto-assignment procedure: the clients
// that currently have no active partner assignment.
type Request struct {
	ClientIDs []string `json:"clientIds"`
}

// Outcome is the procedure's verdict for one client. The procedure owns the
// assignment decision entirely; this service only relays the result and
// re-reads the assignment table afterward.
type Outcome struct {
	ClientID string `json:"clientId"`
	Assigned bool   `json:"assigned"`
}

// Response represents the raw JSON response from the auto-assignment endpoint.
type Response struct {
	Outcomes []Outcome `json:"outcomes"`
	Error    *string   `json:"error"`
}
