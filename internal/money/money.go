// Package money provides the numeric type used for balances and bill
// amounts. An Amount is an exact decimal that can also be NaN or an
// infinity, which is what free-text numeric input coerces to when it does
// not parse or falls outside the float64 range.
package money

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxFinite is the largest magnitude an Amount holds before it becomes
// an infinity.
var maxFinite = decimal.NewFromFloat(math.MaxFloat64)

// Amount is a signed decimal amount, NaN, or ±Infinity.
// The zero value is 0.
type Amount struct {
	d   decimal.Decimal
	nan bool
	inf int8 // -1 or +1 for an infinity, 0 when finite
}

// Zero is the settled amount.
var Zero = Amount{}

// NaN returns the not-a-number amount.
func NaN() Amount {
	return Amount{nan: true}
}

func infinity(sign int) Amount {
	if sign < 0 {
		return Amount{inf: -1}
	}
	return Amount{inf: 1}
}

// FromInt returns an Amount for a whole number.
func FromInt(v int64) Amount {
	return Amount{d: decimal.NewFromInt(v)}
}

// Parse coerces free text to an Amount the way a form field does:
// surrounding whitespace is ignored, blank text is 0, and anything that
// is not a number is NaN. Values past the float64 range become ±Infinity
// and values too small for it become 0. Parse never fails.
func Parse(text string) Amount {
	s := strings.TrimSpace(text)
	if s == "" {
		return Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return NaN()
	}

	// The exponent in s is unbounded, so the range check runs on the
	// float before the decimal is ever rescaled.
	f, err := strconv.ParseFloat(s, 64)
	switch {
	case math.IsInf(f, 0):
		return infinity(int(math.Copysign(1, f)))
	case err != nil:
		return NaN()
	case f == 0:
		return Zero
	}
	return Amount{d: d}
}

// bounded turns a decimal result outside the float64 range into an
// infinity.
func bounded(d decimal.Decimal) Amount {
	if d.Abs().GreaterThan(maxFinite) {
		return infinity(d.Sign())
	}
	return Amount{d: d}
}

// IsNaN reports whether a is NaN.
func (a Amount) IsNaN() bool {
	return a.nan
}

// Sub returns a - b. NaN in either operand yields NaN, as does
// subtracting an infinity from itself.
func (a Amount) Sub(b Amount) Amount {
	switch {
	case a.nan || b.nan:
		return NaN()
	case a.inf != 0 && b.inf != 0:
		if a.inf == b.inf {
			return NaN()
		}
		return a
	case a.inf != 0:
		return a
	case b.inf != 0:
		return infinity(-int(b.inf))
	}
	return bounded(a.d.Sub(b.d))
}

// Abs returns |a|. NaN stays NaN.
func (a Amount) Abs() Amount {
	switch {
	case a.nan:
		return a
	case a.inf != 0:
		return infinity(1)
	}
	return Amount{d: a.d.Abs()}
}

// cmp orders two amounts that are not NaN.
func (a Amount) cmp(b Amount) int {
	if a.inf != 0 || b.inf != 0 {
		switch {
		case a.inf < b.inf:
			return -1
		case a.inf > b.inf:
			return 1
		}
		return 0
	}
	return a.d.Cmp(b.d)
}

// GreaterThan reports a > b. Every comparison involving NaN is false.
func (a Amount) GreaterThan(b Amount) bool {
	if a.nan || b.nan {
		return false
	}
	return a.cmp(b) > 0
}

// LessThan reports a < b. Every comparison involving NaN is false.
func (a Amount) LessThan(b Amount) bool {
	if a.nan || b.nan {
		return false
	}
	return a.cmp(b) < 0
}

// Equal reports a == b. NaN is not equal to anything, itself included.
func (a Amount) Equal(b Amount) bool {
	if a.nan || b.nan {
		return false
	}
	return a.cmp(b) == 0
}

// String renders the amount without trailing zeros, or "NaN", or
// "Infinity" with its sign.
func (a Amount) String() string {
	switch {
	case a.nan:
		return "NaN"
	case a.inf > 0:
		return "Infinity"
	case a.inf < 0:
		return "-Infinity"
	}
	return a.d.String()
}
