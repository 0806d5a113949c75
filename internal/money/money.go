// Package money provides a fixed-point currency amount stored as integer cents.
// All ledger arithmetic runs on Amount so that shares reconcile exactly across
// many clients instead of accumulating floating-point drift.
package money

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a currency value in cents. The zero value is zero currency.
type Amount int64

// FromFloat converts a decimal currency value (e.g. 45.50) to cents,
// rounding half away from zero.
func FromFloat(v float64) Amount {
	return Amount(math.Round(v * 100))
}

// FromCents wraps a raw cent count.
func FromCents(cents int64) Amount {
	return Amount(cents)
}

// Parse converts a decimal string such as "150.00", "-30.5" or "80" to cents.
// At most two fraction digits are accepted.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two fraction digits", s)
	}
	// Right-pad the fraction to cents: "5" means 50 cents.
	frac += strings.Repeat("0", 2-len(frac))

	wholeVal, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	fracVal, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	cents := wholeVal*100 + fracVal
	if negative {
		cents = -cents
	}
	return Amount(cents), nil
}

// Cents returns the raw cent count.
func (a Amount) Cents() int64 {
	return int64(a)
}

// Float returns the amount as a float64 decimal value, for display only.
func (a Amount) Float() float64 {
	return float64(a) / 100
}

// Mul multiplies the amount by a fraction, rounding half away from zero.
// Used for applying split percentages to profit totals.
func (a Amount) Mul(fraction float64) Amount {
	return Amount(math.Round(float64(a) * fraction))
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return a + b
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return a - b
}

// String formats the amount with two fraction digits, e.g. "-30.00".
func (a Amount) String() string {
	sign := ""
	cents := int64(a)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON renders the amount as a JSON number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*a = 0
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer; amounts are persisted as integer cents.
func (a Amount) Value() (driver.Value, error) {
	return int64(a), nil
}

// Scan implements sql.Scanner. NULL scans to zero, matching the ledger rule
// that missing profit contributes nothing.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = 0
	case int64:
		*a = Amount(v)
	case float64:
		*a = FromFloat(v)
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*a = parsed
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*a = parsed
	default:
		return fmt.Errorf("cannot scan %T into money.Amount", src)
	}
	return nil
}
