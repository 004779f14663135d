package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	calc "github.com/indemniza/severance-calculator/internal/calculation"
	"github.com/indemniza/severance-calculator/internal/output"
)

// Prints the bracket tax and the severance split for a few gross amounts under every
// built-in rule set. Extra amounts can be passed as arguments.
func main() {
	amounts := []string{"12450", "35000", "60000", "180000", "230000", "400000"}
	if len(os.Args) > 1 {
		amounts = os.Args[1:]
	}

	for _, rules := range calc.AvailableRules() {
		fmt.Printf("== %s ==\n", rules.Name)
		splitter := calc.NewSeveranceSplitter(rules)
		for _, a := range amounts {
			gross, err := decimal.NewFromString(a)
			if err != nil {
				fmt.Fprintf(os.Stderr, "skipping %q: %v\n", a, err)
				continue
			}
			b := splitter.Split(gross)
			fmt.Printf("%14s  bracket tax %14s  marginal %7s  | taxable %14s  tax %14s  net %14s\n",
				output.FormatCurrency(gross),
				output.FormatCurrency(splitter.TaxCalc.ComputeTax(gross)),
				output.FormatPercentage(splitter.TaxCalc.MarginalRate(gross)),
				output.FormatCurrency(b.TaxableBase),
				output.FormatCurrency(b.Tax),
				output.FormatCurrency(b.Net))
		}
		fmt.Println()
	}
}
