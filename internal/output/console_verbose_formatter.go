package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/indemniza/severance-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full severance report, one section per sub-calculation.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, rule(81))
	fmt.Fprintln(&buf, "SEVERANCE CALCULATION REPORT")
	fmt.Fprintln(&buf, rule(81))
	fmt.Fprintf(&buf, "Generated: %s\n", FormatTimestamp(result.GeneratedAt))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "EMPLOYEE DATA")
	fmt.Fprintln(&buf, rule(45))
	if result.Name != "" {
		fmt.Fprintf(&buf, "Name:                          %s\n", result.Name)
	}
	fmt.Fprintf(&buf, "Birth date:                    %s\n", FormatDate(result.BirthDate))
	fmt.Fprintf(&buf, "Hire date:                     %s\n", FormatDate(result.HireDate))
	fmt.Fprintf(&buf, "Termination date:              %s\n", FormatDate(result.TerminationDate))
	fmt.Fprintf(&buf, "Age at termination:            %d\n", result.Age)
	fmt.Fprintf(&buf, "Tenure (years):                %s\n", FormatYears(result.TenureYears))
	fmt.Fprintf(&buf, "Base salary:                   %s\n", FormatCurrency(result.BaseSalary))
	fmt.Fprintf(&buf, "Supplements:                   %s\n", FormatCurrency(result.Supplements))
	fmt.Fprintf(&buf, "Salary with supplements:       %s\n", FormatCurrency(result.SalaryWithSupplements))
	fmt.Fprintf(&buf, "Salary without supplements:    %s\n", FormatCurrency(result.SalaryWithoutSupplements))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "SCENARIO: %s\n", strings.ToUpper(result.ScenarioKind.Description()))
	fmt.Fprintln(&buf, rule(45))

	switch s := result.Scenario().(type) {
	case domain.BelowRetentionAge:
		writeBelowRetentionAge(&buf, s)
	case domain.SeniorUncapped:
		writeSeniorUncapped(&buf, s)
	case domain.SeniorMidBand:
		writeTemporaryIncome(&buf, s.TemporaryIncome)
	case domain.SeniorLateBand:
		writeTemporaryIncome(&buf, s.TemporaryIncome)
	case domain.Ineligible:
		fmt.Fprintln(&buf, s.Reason.Message())
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "NOTES:")
	notes := result.Assumptions
	if len(notes) == 0 {
		notes = DefaultNotes
	}
	for _, n := range notes {
		fmt.Fprintf(&buf, "• %s\n", n)
	}
	return buf.Bytes(), nil
}

func writeBreakdown(w io.Writer, title string, b domain.SeveranceBreakdown) {
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintf(w, "  Gross:                       %s\n", FormatCurrency(b.Gross))
	fmt.Fprintf(w, "  Exempt:                      %s\n", FormatCurrency(b.Exempt))
	fmt.Fprintf(w, "  Excess over exemption:       %s\n", FormatCurrency(b.Excess))
	fmt.Fprintf(w, "  Taxable base:                %s\n", FormatCurrency(b.TaxableBase))
	fmt.Fprintf(w, "  Income tax:                  %s\n", FormatCurrency(b.Tax))
	fmt.Fprintf(w, "  Net:                         %s\n", FormatCurrency(b.Net))
}

func writeBelowRetentionAge(w io.Writer, s domain.BelowRetentionAge) {
	salaryLabel := "without supplements"
	if s.Voluntary.UsesSupplements {
		salaryLabel = "with supplements"
	}
	writeBreakdown(w, fmt.Sprintf("Voluntary exit (%d days per year, salary %s)", s.Voluntary.DaysPerYear, salaryLabel), s.Voluntary.SelectedBreakdown)
	fmt.Fprintln(w)

	l := s.Legal
	fmt.Fprintf(w, "Statutory severance (reform date %s)\n", FormatDate(l.ReformDate))
	fmt.Fprintf(w, "  Before reform: %s years x %d days = %s\n", FormatYears(l.PreReformTenure), l.PreReformDaysPerYear, FormatCurrency(l.SelectedTranches.PreReformGross))
	fmt.Fprintf(w, "  After reform:  %s years x %d days = %s\n", FormatYears(l.PostReformTenure), l.PostReformDaysPerYear, FormatCurrency(l.SelectedTranches.PostReformGross))
	writeBreakdown(w, "Statutory severance taxation", l.Breakdown)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Difference (voluntary minus statutory): %s\n", FormatCurrency(s.Difference.Gross))
	writeBreakdown(w, "  with exemption", s.Difference.Split)
	writeBreakdown(w, "  fully taxed", s.Difference.FlatTax)
	fmt.Fprintln(w)

	t := s.Totals
	fmt.Fprintln(w, "TOTALS")
	fmt.Fprintf(w, "  Voluntary gross / net:       %s / %s\n", FormatCurrency(t.VoluntaryGross), FormatCurrency(t.VoluntaryNet))
	fmt.Fprintf(w, "  Statutory gross / net:       %s / %s\n", FormatCurrency(t.LegalGross), FormatCurrency(t.LegalNet))
	fmt.Fprintf(w, "  Difference gross / net:      %s / %s\n", FormatCurrency(t.DifferenceGross), FormatCurrency(t.DifferenceNet))
	fmt.Fprintf(w, "  Global gross / net:          %s / %s\n", FormatCurrency(t.GlobalGross), FormatCurrency(t.GlobalNet))
}

func writeSeniorUncapped(w io.Writer, s domain.SeniorUncapped) {
	fmt.Fprintf(w, "Severance at %d days per year:  %s\n", s.DaysPerYear, FormatCurrency(s.UncappedGross))
	fmt.Fprintf(w, "24-month cap:                  %s\n", FormatCurrency(s.StatutoryCap))
	fmt.Fprintf(w, "Absolute cap:                  %s\n", FormatCurrency(s.AbsoluteCap))
	fmt.Fprintf(w, "Applied amount:                %s\n", FormatCurrency(s.AppliedGross))
	writeBreakdown(w, "Taxation", s.Breakdown)
}

func writeTemporaryIncome(w io.Writer, ti domain.TemporaryIncome) {
	fmt.Fprintf(w, "Monthly salary:                %s\n", FormatCurrency(ti.MonthlySalary))
	fmt.Fprintf(w, "Rate:                          %s\n", FormatPercentage(ti.Rate))
	fmt.Fprintf(w, "Monthly payment:               %s\n", FormatCurrency(ti.MonthlyPayment))
	fmt.Fprintf(w, "Paid until:                    %s (%d months)\n", FormatDate(ti.EndDate), ti.Months)
	fmt.Fprintf(w, "Total payment (gross):         %s\n", FormatCurrency(ti.TotalPayment))
}
