package decimal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a euro amount with full decimal precision; rounding only happens on display.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

const (
	maxIntegerDigits  = 12
	maxFractionDigits = 10
)

var (
	plainAmount   = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	spanishAmount = regexp.MustCompile(`^-?(\d{1,3}(\.\d{3})+|\d+),\d+$`)
)

// ParseMoney parses an amount typed either with a dot decimal separator ("40000.50")
// or in Spanish notation ("40.000,50"). Only plain digits are accepted: no exponents,
// at most 12 integer and 10 fractional digits. Blank input is an error.
func ParseMoney(value string) (Money, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimSuffix(s, "€")
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("empty amount")
	}
	if strings.Contains(s, ",") {
		if !spanishAmount.MatchString(s) {
			return Money{}, fmt.Errorf("parse amount %q: not a plain decimal number", value)
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else if !plainAmount.MatchString(s) {
		return Money{}, fmt.Errorf("parse amount %q: not a plain decimal number", value)
	}

	intPart, frac, _ := strings.Cut(strings.TrimPrefix(s, "-"), ".")
	if len(intPart) > maxIntegerDigits || len(frac) > maxFractionDigits {
		return Money{}, fmt.Errorf("parse amount %q: too many digits", value)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", value, err)
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Daily converts an annual amount to a daily amount over a 365-day year
func (m Money) Daily() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(365))}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with two decimals and a dot separator
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount in Spanish notation, e.g. "131.506,85 €".
func (m Money) Format() string {
	return m.FormatNumber() + " €"
}

// FormatNumber renders the amount with "." thousands grouping and "," decimals, no symbol.
func (m Money) FormatNumber() string {
	fixed := m.Decimal.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}
