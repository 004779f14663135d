package output

import (
	"bytes"
	"encoding/csv"

	"github.com/indemniza/severance-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVDetailedExporter writes every intermediate amount of one result as
// Section,Item,Value rows. Amounts are plain decimals with 2 places.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "csv" }

func (c CSVDetailedExporter) Format(result *domain.CalculationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Item", "Value"}); err != nil {
		return nil, err
	}
	for _, row := range detailRows(result) {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

type rowBuilder [][]string

func (rb *rowBuilder) add(section, item, value string) {
	*rb = append(*rb, []string{section, item, value})
}

func (rb *rowBuilder) amount(section, item string, d decimal.Decimal) {
	rb.add(section, item, d.StringFixed(2))
}

func (rb *rowBuilder) breakdown(section string, b domain.SeveranceBreakdown) {
	rb.amount(section, "Gross", b.Gross)
	rb.amount(section, "Exempt", b.Exempt)
	rb.amount(section, "Excess", b.Excess)
	rb.amount(section, "TaxableBase", b.TaxableBase)
	rb.amount(section, "Tax", b.Tax)
	rb.amount(section, "Net", b.Net)
}

func (rb *rowBuilder) income(ti domain.TemporaryIncome) {
	rb.amount("TemporaryIncome", "MonthlySalary", ti.MonthlySalary)
	rb.add("TemporaryIncome", "Rate", ti.Rate.String())
	rb.amount("TemporaryIncome", "MonthlyPayment", ti.MonthlyPayment)
	rb.add("TemporaryIncome", "EndDate", FormatDate(ti.EndDate))
	rb.add("TemporaryIncome", "Months", intToString(ti.Months))
	rb.amount("TemporaryIncome", "TotalPayment", ti.TotalPayment)
}

func (rb *rowBuilder) tranches(section string, lt domain.LegalTranches) {
	rb.amount(section, "PreReformGross", lt.PreReformGross)
	rb.amount(section, "PostReformGross", lt.PostReformGross)
	rb.amount(section, "TotalGross", lt.TotalGross)
}

func (rb *rowBuilder) totals(t domain.CombinedTotals) {
	rb.amount("Totals", "VoluntaryGross", t.VoluntaryGross)
	rb.amount("Totals", "VoluntaryNet", t.VoluntaryNet)
	rb.amount("Totals", "LegalGross", t.LegalGross)
	rb.amount("Totals", "LegalNet", t.LegalNet)
	rb.amount("Totals", "DifferenceGross", t.DifferenceGross)
	rb.amount("Totals", "DifferenceNet", t.DifferenceNet)
	rb.amount("Totals", "GlobalGross", t.GlobalGross)
	rb.amount("Totals", "GlobalNet", t.GlobalNet)
}

func detailRows(r *domain.CalculationResult) [][]string {
	var rb rowBuilder
	rb.add("Employee", "Name", r.Name)
	rb.add("Employee", "BirthDate", FormatDate(r.BirthDate))
	rb.add("Employee", "HireDate", FormatDate(r.HireDate))
	rb.add("Employee", "TerminationDate", FormatDate(r.TerminationDate))
	rb.add("Employee", "Age", intToString(r.Age))
	rb.add("Employee", "TenureYears", r.TenureYears.StringFixed(4))
	rb.amount("Salary", "Base", r.BaseSalary)
	rb.amount("Salary", "Supplements", r.Supplements)
	rb.amount("Salary", "WithSupplements", r.SalaryWithSupplements)
	rb.amount("Salary", "WithoutSupplements", r.SalaryWithoutSupplements)
	rb.add("Result", "Rules", r.RulesName)
	rb.add("Result", "Scenario", string(r.ScenarioKind))
	rb.add("Result", "Eligible", boolToString(r.IsEligible()))

	switch s := r.Scenario().(type) {
	case domain.BelowRetentionAge:
		rb.add("Voluntary", "UsesSupplements", boolToString(s.Voluntary.UsesSupplements))
		rb.breakdown("Voluntary", s.Voluntary.SelectedBreakdown)
		rb.breakdown("VoluntaryWithSupplements", s.Voluntary.WithSupplements)
		rb.breakdown("VoluntaryWithoutSupplements", s.Voluntary.WithoutSupplements)
		rb.add("Legal", "PreReformTenure", s.Legal.PreReformTenure.StringFixed(4))
		rb.add("Legal", "PostReformTenure", s.Legal.PostReformTenure.StringFixed(4))
		rb.amount("Legal", "PreReformGross", s.Legal.SelectedTranches.PreReformGross)
		rb.amount("Legal", "PostReformGross", s.Legal.SelectedTranches.PostReformGross)
		rb.tranches("LegalWithSupplements", s.Legal.WithSupplements)
		rb.tranches("LegalWithoutSupplements", s.Legal.WithoutSupplements)
		rb.breakdown("Legal", s.Legal.Breakdown)
		rb.amount("Difference", "Gross", s.Difference.Gross)
		rb.breakdown("DifferenceSplit", s.Difference.Split)
		rb.breakdown("DifferenceFlatTax", s.Difference.FlatTax)
		rb.totals(s.Totals)
	case domain.SeniorUncapped:
		rb.amount("Senior", "UncappedGross", s.UncappedGross)
		rb.amount("Senior", "StatutoryCap", s.StatutoryCap)
		rb.amount("Senior", "AbsoluteCap", s.AbsoluteCap)
		rb.amount("Senior", "AppliedGross", s.AppliedGross)
		rb.breakdown("Senior", s.Breakdown)
	case domain.SeniorMidBand:
		rb.income(s.TemporaryIncome)
	case domain.SeniorLateBand:
		rb.income(s.TemporaryIncome)
	case domain.Ineligible:
		rb.add("Ineligible", "Reason", string(s.Reason))
	}
	return rb
}
