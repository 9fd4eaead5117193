package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Proposal is a pickup offer persisted by the remote store
type Proposal struct {
	ID         int64
	CreatedAt  time.Time
	Location   string
	StartTime  time.Time
	EndTime    time.Time
	Fee        *Fee    // nil means free
	GiverID    *string // nil until a giver is bound
	AcquirerID *string // nil until an acquirer is bound
}

// Submission is the payload used to create a Proposal. It has no id until the
// store accepts it. Giver and acquirer ids are not part of it.
type Submission struct {
	Location  string
	StartTime time.Time
	EndTime   time.Time
	Fee       *Fee
}

// Filter restricts a list query. A nil AcquirerID lists everything.
type Filter struct {
	AcquirerID *string
}

// Credentials are supplied by the caller and passed through untouched
type Credentials struct {
	APIKey string
	Token  string
}

// Fee is a non-negative amount held in hundredths of the currency unit.
type Fee struct {
	cents int64
}

const centsPerUnit = 100

// NewFee builds a Fee from a number of cents. Negative values are rejected
// when the fee is encoded.
func NewFee(cents int64) Fee {
	return Fee{cents: cents}
}

// FeeFromFloat rounds f to the nearest cent.
func FeeFromFloat(f float64) (Fee, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fee{}, fmt.Errorf("%w: %v", ErrInvalidFee, f)
	}
	if f < 0 {
		return Fee{}, fmt.Errorf("%w: %v", ErrNegativeFee, f)
	}
	scaled := math.Round(f * centsPerUnit)
	if scaled > math.MaxInt64 {
		return Fee{}, fmt.Errorf("%w: %v out of range", ErrInvalidFee, f)
	}
	return Fee{cents: int64(scaled)}, nil
}

// ParseFee parses decimal text such as "12", "12.5" or "12.50".
// More than two fractional digits is an error.
func ParseFee(s string) (Fee, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fee{}, fmt.Errorf("%w: empty", ErrInvalidFee)
	}
	if strings.HasPrefix(s, "-") {
		return Fee{}, fmt.Errorf("%w: %s", ErrNegativeFee, s)
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if hasFrac && (fracPart == "" || len(fracPart) > 2) {
		return Fee{}, fmt.Errorf("%w: %q needs one or two decimal digits", ErrInvalidFee, s)
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return Fee{}, fmt.Errorf("%w: %q", ErrInvalidFee, s)
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Fee{}, fmt.Errorf("%w: %v", ErrInvalidFee, err)
	}
	if units > math.MaxInt64/centsPerUnit-1 {
		return Fee{}, fmt.Errorf("%w: %s out of range", ErrInvalidFee, s)
	}

	var frac int64
	if hasFrac {
		if len(fracPart) == 1 {
			fracPart += "0"
		}
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return Fee{}, fmt.Errorf("%w: %q", ErrInvalidFee, s)
		}
	}

	return Fee{cents: units*centsPerUnit + frac}, nil
}

// Cents returns the fixed-point value
func (f Fee) Cents() int64 {
	return f.cents
}

// Float64 converts to floating point. Use it only at output boundaries.
func (f Fee) Float64() float64 {
	return float64(f.cents) / centsPerUnit
}

// IsZero reports a fee of exactly 0, which is distinct from no fee.
func (f Fee) IsZero() bool {
	return f.cents == 0
}

func (f Fee) String() string {
	sign := ""
	c := f.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/centsPerUnit, c%centsPerUnit)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
