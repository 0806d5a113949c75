package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPartnerNotFound indicates that a partner with the given ID does not exist.
	ErrPartnerNotFound = errors.New("partner not found")

	// ErrClientNotFound indicates that a client with the given ID does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrAssignmentNotFound indicates that a client has no active partner assignment.
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrPaymentNotFound indicates that a payment with the given ID does not exist.
	ErrPaymentNotFound = errors.New("payment not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidSplitPair indicates that a partner/owner split pair does not sum to 1.
	// Split pairs are only checked on the write path; the ledger reads them as stored.
	ErrInvalidSplitPair = errors.New("split pair must sum to 1")

	// ErrClientAlreadyAssigned indicates that the client already has an active
	// assignment to another partner; a client has at most one partner at a time.
	ErrClientAlreadyAssigned = errors.New("client already assigned to a partner")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNonPositiveAmount indicates that a payment amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. They indicate an operation failed, but not due to missing
// entities or validation issues.
var (
	// Partner operation errors
	ErrFailedToRetrievePartners = errors.New("failed to retrieve partners")
	ErrFailedToRetrievePartner  = errors.New("failed to retrieve partner")
	ErrFailedToCreatePartner    = errors.New("failed to create partner")
	ErrFailedToUpdatePartner    = errors.New("failed to update partner")

	// Ledger operation errors
	ErrFailedToLoadSnapshot    = errors.New("failed to load ledger snapshot")
	ErrFailedToGetBreakdown    = errors.New("failed to get partner breakdown")
	ErrFailedToGetBalance      = errors.New("failed to get partner balance")
	ErrFailedToGetLedger       = errors.New("failed to get ledger overview")
	ErrFailedToCaptureSnapshot = errors.New("failed to capture balance snapshot")
	ErrFailedToGetHistory      = errors.New("failed to get balance history")

	// Assignment operation errors
	ErrFailedToRetrieveClients     = errors.New("failed to retrieve clients")
	ErrFailedToRetrieveAssignments = errors.New("failed to retrieve assignments")
	ErrFailedToCreateAssignment    = errors.New("failed to create assignment")
	ErrFailedToUpdateAssignment    = errors.New("failed to update assignment")
	ErrFailedToRemoveAssignment    = errors.New("failed to remove assignment")
	ErrFailedToAutoAssign          = errors.New("failed to run auto-assignment")
	ErrAutoAssignNotConfigured     = errors.New("auto-assignment endpoint not configured")

	// Payment operation errors
	ErrFailedToRecordPayment    = errors.New("failed to record payment")
	ErrFailedToRetrievePayments = errors.New("failed to retrieve payments")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
