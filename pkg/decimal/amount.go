package decimal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a token amount already scaled down from its on-chain fixed-point form.
type Amount struct {
	decimal.Decimal
}

// FromUnits converts a base-10 integer string holding a fixed-point amount into an Amount,
// moving the decimal point left by decimals places. Negative decimals are treated as zero.
func FromUnits(raw string, decimals int32) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid fixed-point amount %q: %w", raw, err)
	}
	if !d.Equal(d.Truncate(0)) {
		return Amount{}, fmt.Errorf("invalid fixed-point amount %q: not an integer", raw)
	}
	if decimals < 0 {
		decimals = 0
	}
	return Amount{d.Shift(-decimals)}, nil
}

// NewAmountFromString parses a plain decimal string such as "0.45".
func NewAmountFromString(value string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

// Zero returns a zero Amount
func Zero() Amount {
	return Amount{decimal.Zero}
}

// String renders the amount without trailing fractional zeros and without a bare decimal point.
func (a Amount) String() string {
	return a.Decimal.String()
}

// Grouped renders the amount like String with the integer part grouped in thousands.
func (a Amount) Grouped() string {
	return Commify(a.String())
}

// Float64 returns the nearest float64; used for time estimates only, never for display amounts.
func (a Amount) Float64() float64 {
	return a.Decimal.InexactFloat64()
}

// Commify inserts a comma every three digits of the integer part of a decimal string.
// The fractional part is left untouched.
func Commify(value string) string {
	sign := ""
	if strings.HasPrefix(value, "-") {
		sign, value = "-", value[1:]
	}
	whole, frac, hasFrac := strings.Cut(value, ".")

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := sign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}
