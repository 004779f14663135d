package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/indemniza/severance-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"years": FormatYears,
	"date":  FormatDate,
	"stamp": FormatTimestamp,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer

	notes := result.Assumptions
	if len(notes) == 0 {
		notes = DefaultNotes
	}

	data := struct {
		Result  *domain.CalculationResult
		Summary Summary
		Notes   []string
	}{result, Summarize(result), notes}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
