package validation

import (
	"strings"

	"github.com/1mikez1/BonusTracker-sub001/internal/api/request"
)

func ValidateCreatePartner(req request.CreatePartnerRequest) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if err := ValidateSplitPair(req.DefaultSplitPartner, req.DefaultSplitOwner); err != nil {
		errors["defaultSplit"] = err.Error()
	}

	// Optional but has constraints
	if len(req.Notes) > 500 {
		errors["notes"] = "notes must be 500 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdatePartner(req request.UpdatePartnerRequest) error {
	errors := make(map[string]string)

	// Only validate provided fields
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	// The split pair changes atomically or not at all.
	switch {
	case req.DefaultSplitPartner != nil && req.DefaultSplitOwner != nil:
		if err := ValidateSplitPair(*req.DefaultSplitPartner, *req.DefaultSplitOwner); err != nil {
			errors["defaultSplit"] = err.Error()
		}
	case req.DefaultSplitPartner != nil || req.DefaultSplitOwner != nil:
		errors["defaultSplit"] = "both split fields must be provided together"
	}

	if req.Notes != nil && len(*req.Notes) > 500 {
		errors["notes"] = "notes must be 500 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
