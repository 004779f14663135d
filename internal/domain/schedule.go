package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidSchedule is returned when a bracket table or rule set is malformed.
var ErrInvalidSchedule = errors.New("invalid tax schedule")

// TaxBracket is one marginal band [Min, Max). The last bracket of a schedule is Unbounded.
type TaxBracket struct {
	Min       decimal.Decimal `yaml:"min" json:"min"`
	Max       decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Unbounded bool            `yaml:"unbounded,omitempty" json:"unbounded,omitempty"`
}

// Width returns Max-Min, or zero for the unbounded bracket.
func (b TaxBracket) Width() decimal.Decimal {
	if b.Unbounded {
		return decimal.Zero
	}
	return b.Max.Sub(b.Min)
}

// TaxRules is a named, versioned configuration of the severance tax treatment.
type TaxRules struct {
	Name            string          `yaml:"name" json:"name"`
	Description     string          `yaml:"description,omitempty" json:"description,omitempty"`
	Brackets        []TaxBracket    `yaml:"brackets" json:"brackets"`
	ExemptThreshold decimal.Decimal `yaml:"exempt_threshold" json:"exempt_threshold"`
	ReductionFactor decimal.Decimal `yaml:"reduction_factor" json:"reduction_factor"`
	// LegalFullyExempt treats the statutory minimum severance as entirely exempt
	// instead of sending it through the exemption threshold.
	LegalFullyExempt bool `yaml:"legal_fully_exempt,omitempty" json:"legal_fully_exempt,omitempty"`
}

// Validate checks that brackets start at zero, are contiguous and ascending, end with a
// single unbounded bracket, and that every rate and the reduction factor lie in [0,1].
func (r *TaxRules) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSchedule)
	}
	if len(r.Brackets) == 0 {
		return fmt.Errorf("%w: %s has no brackets", ErrInvalidSchedule, r.Name)
	}
	if !r.Brackets[0].Min.IsZero() {
		return fmt.Errorf("%w: %s first bracket must start at 0", ErrInvalidSchedule, r.Name)
	}
	one := decimal.NewFromInt(1)
	for i, b := range r.Brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: %s bracket %d rate %s outside [0,1]", ErrInvalidSchedule, r.Name, i, b.Rate)
		}
		last := i == len(r.Brackets)-1
		if b.Unbounded != last {
			return fmt.Errorf("%w: %s only the last bracket may be unbounded", ErrInvalidSchedule, r.Name)
		}
		if !last {
			if !b.Max.GreaterThan(b.Min) {
				return fmt.Errorf("%w: %s bracket %d is empty", ErrInvalidSchedule, r.Name, i)
			}
			if !r.Brackets[i+1].Min.Equal(b.Max) {
				return fmt.Errorf("%w: %s bracket %d is not contiguous with the next", ErrInvalidSchedule, r.Name, i)
			}
		}
	}
	if r.ExemptThreshold.IsNegative() {
		return fmt.Errorf("%w: %s exempt threshold cannot be negative", ErrInvalidSchedule, r.Name)
	}
	if r.ReductionFactor.IsNegative() || r.ReductionFactor.GreaterThan(one) {
		return fmt.Errorf("%w: %s reduction factor %s outside [0,1]", ErrInvalidSchedule, r.Name, r.ReductionFactor)
	}
	return nil
}
