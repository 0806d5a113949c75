package request

import "github.com/1mikez1/BonusTracker-sub001/internal/money"

// CreateClientRequest represents the request body for registering a client
type CreateClientRequest struct {
	Name string `json:"name"`
}

// CreateClientAppRequest records a client's engagement with a promotional app.
type CreateClientAppRequest struct {
	ClientID string       `json:"clientId"`
	AppName  string       `json:"appName"`
	Status   string       `json:"status"`
	ProfitUS money.Amount `json:"profitUs"`
}
