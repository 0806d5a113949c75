package validation

import (
	"strings"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/request"
)

func ValidateCreatePayment(req request.CreatePaymentRequest) error {
	errors := make(map[string]string)

	if req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	if len(req.Note) > 500 {
		errors["note"] = "note must be 500 characters or less"
	}

	if req.PaidAt != "" {
		if _, err := ParseTime(req.PaidAt); err != nil {
			errors["paidAt"] = "paidAt must be YYYY-MM-DD or RFC3339"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCreateClient(req request.CreateClientRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCreateClientApp(req request.CreateClientAppRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.ClientID); err != nil {
		errors["clientId"] = err.Error()
	}
	if strings.TrimSpace(req.AppName) == "" {
		errors["appName"] = "appName is required"
	}
	if !validAppStatuses[req.Status] {
		errors["status"] = "unknown status"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
