package output

import (
	"fmt"

	"github.com/indemniza/severance-calculator/internal/domain"
)

// DefaultNotes lists the calculation assumptions rendered in detailed outputs.
var DefaultNotes = []string{
	"Tenure is measured in days divided by 365.25.",
	"Daily salary is the annual salary divided by 365.",
	"Statutory severance accrues 45 days per year until 12/02/2012 and 33 days per year afterwards.",
	"Figures are estimates and do not replace professional advice.",
}

// GenerateNotes adds the tax treatment of the rule set used to DefaultNotes.
func GenerateNotes(rules domain.TaxRules) []string {
	notes := []string{
		fmt.Sprintf("Tax rules %q: %s.", rules.Name, rules.Description),
		fmt.Sprintf("Severance up to %s is exempt; %s of the excess enters the taxable base.",
			FormatCurrency(rules.ExemptThreshold), FormatPercentage(rules.ReductionFactor)),
	}
	if rules.LegalFullyExempt {
		notes = append(notes, "Statutory severance is fully exempt.")
	}
	if n := len(rules.Brackets); n > 0 {
		top := rules.Brackets[n-1]
		notes = append(notes, fmt.Sprintf("Income tax: %d brackets, top rate %s above %s.",
			n, FormatPercentage(top.Rate), FormatCurrency(top.Min)))
	}
	return append(notes, DefaultNotes...)
}
