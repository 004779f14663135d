package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SeveranceBreakdown splits one gross amount into its exempt and taxed parts.
//
//	Gross = Exempt + Excess
//	TaxableBase = Excess x reduction factor
//	Net = Gross - Tax
type SeveranceBreakdown struct {
	Gross       decimal.Decimal `yaml:"gross" json:"gross"`
	Exempt      decimal.Decimal `yaml:"exempt" json:"exempt"`
	Excess      decimal.Decimal `yaml:"excess" json:"excess"`
	TaxableBase decimal.Decimal `yaml:"taxable_base" json:"taxable_base"`
	Tax         decimal.Decimal `yaml:"tax" json:"tax"`
	Net         decimal.Decimal `yaml:"net" json:"net"`
}

// CheckInvariants returns an error describing the first broken breakdown identity.
func (b SeveranceBreakdown) CheckInvariants() error {
	if !b.Exempt.Add(b.Excess).Equal(b.Gross) {
		return fmt.Errorf("exempt %s + excess %s != gross %s", b.Exempt, b.Excess, b.Gross)
	}
	if !b.Gross.Sub(b.Tax).Equal(b.Net) {
		return fmt.Errorf("gross %s - tax %s != net %s", b.Gross, b.Tax, b.Net)
	}
	if b.Tax.IsNegative() {
		return fmt.Errorf("negative tax %s", b.Tax)
	}
	if b.TaxableBase.GreaterThan(b.Excess) {
		return fmt.Errorf("taxable base %s exceeds excess %s", b.TaxableBase, b.Excess)
	}
	return nil
}
