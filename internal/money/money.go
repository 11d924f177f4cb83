package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Billplz amounts are integers in sen; 100 sen = RM 1.
const minorPerMajor = 100

var (
	ErrNegative  = errors.New("amount must not be negative")
	ErrPrecision = errors.New("amount has more than 2 decimal places")
	ErrTooLarge  = errors.New("amount is too large")
)

var maxMinor = decimal.NewFromInt(math.MaxInt64)

// ToMinor converts a ringgit amount such as "12.34" or "RM 12.34" into sen.
func ToMinor(major string) (int64, error) {
	s := strings.TrimSpace(major)
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(s, "RM"), "rm"))

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", major, err)
	}
	if d.IsNegative() {
		return 0, ErrNegative
	}

	minor := d.Mul(decimal.NewFromInt(minorPerMajor))
	if !minor.Equal(minor.Truncate(0)) {
		return 0, ErrPrecision
	}
	if minor.GreaterThan(maxMinor) {
		return 0, ErrTooLarge
	}
	return minor.IntPart(), nil
}

// FormatMinor renders sen as a ringgit string with two decimals.
func FormatMinor(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
