package output

import (
	"bytes"
	"encoding/csv"

	"github.com/indemniza/severance-calculator/internal/domain"
)

// CSVSummarizer implements the batch summary CSV output (one row per case, in file order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) FormatBatch(batch *domain.BatchResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Scenario", "Age", "TenureYears", "Gross", "Tax", "Net", "MonthlyPayment", "Months", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range batch.Entries {
		if e.Result == nil {
			if err := w.Write([]string{e.Name, "", "", "", "", "", "", "", "", e.Error}); err != nil {
				return nil, err
			}
			continue
		}
		s := Summarize(e.Result)
		row := []string{
			e.Name,
			string(s.Scenario),
			intToString(e.Result.Age),
			e.Result.TenureYears.StringFixed(2),
			s.Gross.StringFixed(2),
			s.Tax.StringFixed(2),
			s.Net.StringFixed(2),
			s.Monthly.StringFixed(2),
			intToString(s.Months),
			"",
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
