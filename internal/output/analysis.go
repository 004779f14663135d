package output

import (
	"github.com/indemniza/severance-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Summary holds the headline figures of a result, whatever its scenario.
type Summary struct {
	Scenario domain.ScenarioKind
	Label    string
	Gross    decimal.Decimal
	Tax      decimal.Decimal
	Net      decimal.Decimal
	// Monthly and Months are only set for the temporary income bands.
	Monthly decimal.Decimal
	Months  int
	Note    string
}

// Summarize extracts the amounts a reader looks at first.
// Extracted from the console and CSV formatters for testability.
func Summarize(r *domain.CalculationResult) Summary {
	s := Summary{Scenario: r.ScenarioKind, Label: r.ScenarioKind.Description()}
	switch v := r.Scenario().(type) {
	case domain.BelowRetentionAge:
		s.Gross = v.Totals.GlobalGross
		s.Net = v.Totals.GlobalNet
		s.Tax = s.Gross.Sub(s.Net)
		s.Note = "statutory severance plus the taxed difference up to the voluntary offer"
	case domain.SeniorUncapped:
		s.Gross = v.Breakdown.Gross
		s.Tax = v.Breakdown.Tax
		s.Net = v.Breakdown.Net
		if v.AppliedGross.LessThan(v.UncappedGross) {
			s.Note = "capped"
		}
	case domain.SeniorMidBand:
		s.setIncome(v.TemporaryIncome)
	case domain.SeniorLateBand:
		s.setIncome(v.TemporaryIncome)
	case domain.Ineligible:
		s.Note = v.Reason.Message()
	}
	return s
}

func (s *Summary) setIncome(ti domain.TemporaryIncome) {
	s.Gross = ti.TotalPayment
	s.Net = ti.TotalPayment
	s.Monthly = ti.MonthlyPayment
	s.Months = ti.Months
	s.Note = "gross amounts; temporary income is not split for tax"
}
