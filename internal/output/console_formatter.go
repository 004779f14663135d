package output

import (
	"bytes"
	"fmt"

	"github.com/indemniza/severance-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	s := Summarize(result)

	fmt.Fprintln(&buf, "SEVERANCE SUMMARY")
	fmt.Fprintln(&buf, rule(32))
	if result.Name != "" {
		fmt.Fprintf(&buf, "Employee: %s\n", result.Name)
	}
	fmt.Fprintf(&buf, "Age %d, tenure %s years, rules %s\n", result.Age, FormatYears(result.TenureYears), result.RulesName)
	fmt.Fprintf(&buf, "Scenario: %s\n", s.Label)
	switch s.Scenario {
	case domain.KindIneligible:
		fmt.Fprintf(&buf, "%s\n", s.Note)
	case domain.KindSeniorMidBand, domain.KindSeniorLateBand:
		fmt.Fprintf(&buf, "Monthly=%s Months=%d Total=%s\n", FormatCurrency(s.Monthly), s.Months, FormatCurrency(s.Gross))
	default:
		fmt.Fprintf(&buf, "Gross=%s Tax=%s Net=%s\n", FormatCurrency(s.Gross), FormatCurrency(s.Tax), FormatCurrency(s.Net))
	}
	return buf.Bytes(), nil
}
