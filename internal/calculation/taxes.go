package calculation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/indemniza/severance-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Income tax (IRPF) uses one approximate schedule combining the state and regional
//    halves; no autonomous-community variants.
//
// 2. Severance up to 180 000 € is exempt. Only the excess is taxed, and under the
//    "reduced" rules only 70% of that excess enters the taxable base.
//
// 3. Two schedules exist: a 45% top rate from 60 000 € and a 47% top rate above 300 000 €.

// Rule set names.
const (
	RulesReduced    = "reduced"
	RulesFullExcess = "full-excess"

	DefaultRulesName = RulesReduced
)

// ErrUnknownRules is returned when a rule set name is not registered.
var ErrUnknownRules = errors.New("unknown tax rules")

func bracket(min, max int64, rate string) domain.TaxBracket {
	return domain.TaxBracket{Min: decimal.NewFromInt(min), Max: decimal.NewFromInt(max), Rate: decimal.RequireFromString(rate)}
}

func topBracket(min int64, rate string) domain.TaxBracket {
	return domain.TaxBracket{Min: decimal.NewFromInt(min), Rate: decimal.RequireFromString(rate), Unbounded: true}
}

// ScheduleTop45 returns the IRPF schedule whose top marginal rate is 45% above 60 000 €.
func ScheduleTop45() []domain.TaxBracket {
	return []domain.TaxBracket{
		bracket(0, 12450, "0.19"),
		bracket(12450, 20200, "0.24"),
		bracket(20200, 35200, "0.30"),
		bracket(35200, 60000, "0.37"),
		topBracket(60000, "0.45"),
	}
}

// ScheduleTop47 returns the IRPF schedule with an extra 47% band above 300 000 €.
func ScheduleTop47() []domain.TaxBracket {
	return []domain.TaxBracket{
		bracket(0, 12450, "0.19"),
		bracket(12450, 20200, "0.24"),
		bracket(20200, 35200, "0.30"),
		bracket(35200, 60000, "0.37"),
		bracket(60000, 300000, "0.45"),
		topBracket(300000, "0.47"),
	}
}

var exemptThreshold = decimal.NewFromInt(180000)

var builtInRules = map[string]func() domain.TaxRules{
	RulesReduced: func() domain.TaxRules {
		return domain.TaxRules{
			Name:            RulesReduced,
			Description:     "180 000 € exempt; 70% of the excess taxed; top rate 45%",
			Brackets:        ScheduleTop45(),
			ExemptThreshold: exemptThreshold,
			ReductionFactor: decimal.RequireFromString("0.70"),
		}
	},
	RulesFullExcess: func() domain.TaxRules {
		return domain.TaxRules{
			Name:             RulesFullExcess,
			Description:      "180 000 € exempt; the whole excess taxed; top rate 47%; statutory severance fully exempt",
			Brackets:         ScheduleTop47(),
			ExemptThreshold:  exemptThreshold,
			ReductionFactor:  decimal.NewFromInt(1),
			LegalFullyExempt: true,
		}
	},
}

// RulesByName returns a fresh copy of a built-in rule set.
func RulesByName(name string) (domain.TaxRules, error) {
	build, ok := builtInRules[name]
	if !ok {
		return domain.TaxRules{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownRules, name, AvailableRulesNames())
	}
	return build(), nil
}

// DefaultRules returns the canonical rule set.
func DefaultRules() domain.TaxRules {
	return builtInRules[DefaultRulesName]()
}

// AvailableRulesNames lists the built-in rule set names, sorted.
func AvailableRulesNames() []string {
	names := make([]string, 0, len(builtInRules))
	for n := range builtInRules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AvailableRules returns every built-in rule set, sorted by name.
func AvailableRules() []domain.TaxRules {
	names := AvailableRulesNames()
	rules := make([]domain.TaxRules, 0, len(names))
	for _, n := range names {
		rules = append(rules, builtInRules[n]())
	}
	return rules
}

// TaxCalculator applies a progressive bracket table.
type TaxCalculator struct {
	Brackets []domain.TaxBracket
}

// NewTaxCalculator creates a calculator over the given brackets
func NewTaxCalculator(brackets []domain.TaxBracket) *TaxCalculator {
	return &TaxCalculator{Brackets: brackets}
}

// ComputeTax walks the brackets in order, taxing each fully consumed band at its width
// and the band where the base runs out at the remainder. A base <= 0 owes nothing.
func (tc *TaxCalculator) ComputeTax(base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}

	tax := decimal.Zero
	remaining := base
	for _, b := range tc.Brackets {
		if !remaining.IsPositive() {
			break
		}
		width := b.Width()
		if b.Unbounded || remaining.LessThanOrEqual(width) {
			tax = tax.Add(remaining.Mul(b.Rate))
			break
		}
		tax = tax.Add(width.Mul(b.Rate))
		remaining = remaining.Sub(width)
	}
	return tax
}

// MarginalRate returns the rate of the bracket the last euro of base falls into.
func (tc *TaxCalculator) MarginalRate(base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() || len(tc.Brackets) == 0 {
		return decimal.Zero
	}
	for _, b := range tc.Brackets {
		if b.Unbounded || base.LessThanOrEqual(b.Max) {
			return b.Rate
		}
	}
	return tc.Brackets[len(tc.Brackets)-1].Rate
}

// EffectiveRate returns tax/base, or zero for a non-positive base.
func (tc *TaxCalculator) EffectiveRate(base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	return tc.ComputeTax(base).Div(base)
}
