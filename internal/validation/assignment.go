package validation

import "github.com/1mikez1/BonusTracker-sub001/internal/api/request"

func ValidateCreateAssignment(req request.CreateAssignmentRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.ClientID); err != nil {
		errors["clientId"] = err.Error()
	}
	if err := ValidateUUID(req.PartnerID); err != nil {
		errors["partnerId"] = err.Error()
	}

	switch {
	case req.SplitPartnerOverride != nil && req.SplitOwnerOverride != nil:
		if err := ValidateSplitPair(*req.SplitPartnerOverride, *req.SplitOwnerOverride); err != nil {
			errors["override"] = err.Error()
		}
	case req.SplitPartnerOverride != nil || req.SplitOwnerOverride != nil:
		errors["override"] = "both override fields must be provided together"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateOverride(req request.UpdateOverrideRequest) error {
	errors := make(map[string]string)

	switch {
	case req.SplitPartnerOverride != nil && req.SplitOwnerOverride != nil:
		if err := ValidateSplitPair(*req.SplitPartnerOverride, *req.SplitOwnerOverride); err != nil {
			errors["override"] = err.Error()
		}
	case req.SplitPartnerOverride != nil || req.SplitOwnerOverride != nil:
		errors["override"] = "both override fields must be provided together"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
