// Package autoassign calls the external procedure that assigns unlinked
// clients to partners. The procedure is opaque: it decides assignments
// server-side and writes them to the shared database; this client only
// reports per-client outcomes.
package autoassign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client invokes the remote auto-assignment procedure over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates an auto-assignment client for the given endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Configured reports whether an endpoint URL was provided.
func (c *Client) Configured() bool {
	return c != nil && c.endpoint != ""
}

// AssignClients posts the unassigned client IDs to the procedure and returns
// its per-client outcomes verbatim.
func (c *Client) AssignClients(ctx context.Context, clientIDs []string) ([]Outcome, error) {
	payload, err := json.Marshal(Request{ClientIDs: clientIDs})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal auto-assign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build auto-assign request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auto-assign request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read auto-assign response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auto-assign endpoint returned %d: %s", resp.StatusCode, body)
	}

	var parsed Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse auto-assign response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("auto-assign procedure error: %s", *parsed.Error)
	}

	return parsed.Outcomes, nil
}
