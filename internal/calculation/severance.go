package calculation

import (
	"github.com/indemniza/severance-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// SeveranceSplitter applies the exemption threshold and reduction factor of a rule set.
type SeveranceSplitter struct {
	Rules   domain.TaxRules
	TaxCalc *TaxCalculator
}

// NewSeveranceSplitter creates a splitter for rules, taxing with their bracket table
func NewSeveranceSplitter(rules domain.TaxRules) *SeveranceSplitter {
	return &SeveranceSplitter{
		Rules:   rules,
		TaxCalc: NewTaxCalculator(rules.Brackets),
	}
}

// Split exempts gross up to the threshold, reduces the excess by the reduction factor and
// taxes the result.
func (s *SeveranceSplitter) Split(gross decimal.Decimal) domain.SeveranceBreakdown {
	exempt := decimal.Min(gross, s.Rules.ExemptThreshold)
	excess := decimal.Max(decimal.Zero, gross.Sub(s.Rules.ExemptThreshold))
	taxableBase := excess.Mul(s.Rules.ReductionFactor)
	tax := s.TaxCalc.ComputeTax(taxableBase)

	return domain.SeveranceBreakdown{
		Gross:       gross,
		Exempt:      exempt,
		Excess:      excess,
		TaxableBase: taxableBase,
		Tax:         tax,
		Net:         gross.Sub(tax),
	}
}

// FlatTax taxes the whole amount through the brackets with no exemption or reduction.
func (s *SeveranceSplitter) FlatTax(amount decimal.Decimal) domain.SeveranceBreakdown {
	tax := s.TaxCalc.ComputeTax(amount)
	return domain.SeveranceBreakdown{
		Gross:       amount,
		Exempt:      decimal.Zero,
		Excess:      amount,
		TaxableBase: amount,
		Tax:         tax,
		Net:         amount.Sub(tax),
	}
}

// FullyExempt returns a breakdown in which nothing is taxed.
func (s *SeveranceSplitter) FullyExempt(gross decimal.Decimal) domain.SeveranceBreakdown {
	return domain.SeveranceBreakdown{
		Gross:       gross,
		Exempt:      gross,
		Excess:      decimal.Zero,
		TaxableBase: decimal.Zero,
		Tax:         decimal.Zero,
		Net:         gross,
	}
}
