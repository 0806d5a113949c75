package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrInvalidUUID  = fmt.Errorf("invalid UUID format")
	ErrInvalidSplit = fmt.Errorf("split pair must sum to 1")
	ErrEmptySlice   = fmt.Errorf("slice cannot be empty")
)

// splitTolerance absorbs float noise when checking that a pair sums to 1.
const splitTolerance = 1e-4

// Error collects per-field validation failures.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}

// ValidateUUIDs validates a slice of UUIDs
func ValidateUUIDs(ids []string) error {
	if len(ids) == 0 {
		return ErrEmptySlice
	}
	for _, id := range ids {
		if err := ValidateUUID(id); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSplitPair enforces the 100% invariant on the write path: both
// fractions in [0,1] and summing to 1 within tolerance. Read paths never
// re-check this.
func ValidateSplitPair(partner, owner float64) error {
	if partner < 0 || partner > 1 || owner < 0 || owner > 1 {
		return fmt.Errorf("%w: fractions must be within [0,1]", ErrInvalidSplit)
	}
	if math.Abs(partner+owner-1) > splitTolerance {
		return fmt.Errorf("%w: got %.4f + %.4f", ErrInvalidSplit, partner, owner)
	}
	return nil
}
