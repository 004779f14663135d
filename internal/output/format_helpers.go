package output

import (
	"strconv"
	"strings"
	"time"

	"github.com/indemniza/severance-calculator/pkg/dateutil"
	money "github.com/indemniza/severance-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as euros in Spanish notation, e.g. "131.506,85 €".
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a fraction (0.75) as a percentage with 2 decimals ("75,00%").
func FormatPercentage(fraction decimal.Decimal) string {
	return money.NewMoneyFromDecimal(fraction.Mul(decimalHundred)).FormatNumber() + "%"
}

// FormatYears formats a tenure in years with 2 decimals in Spanish notation.
func FormatYears(years decimal.Decimal) string {
	return money.NewMoneyFromDecimal(years).FormatNumber()
}

// FormatDate formats a calendar date as dd/mm/yyyy.
func FormatDate(t time.Time) string { return dateutil.FormatDate(t) }

// FormatTimestamp formats the generation time of a report.
func FormatTimestamp(t time.Time) string { return t.Format("02/01/2006 15:04") }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func rule(width int) string { return strings.Repeat("=", width) }
