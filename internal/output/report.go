package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/indemniza/severance-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render formats a result with the named formatter.
func Render(result *domain.CalculationResult, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(result)
}

// GenerateReport writes a result to a timestamped file in dir and returns its path.
func GenerateReport(result *domain.CalculationResult, format, dir string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", unsupported(format)
	}
	return WriteFormatted(f, result, dir, Extension(f.Name()))
}

// batchFormats lists the formats that can render a whole batch.
var batchFormats = []string{"console", "console-lite", "csv", "json", "yaml"}

// RenderBatch formats a batch result. Text formats concatenate the per-case reports;
// csv is one summary row per case.
func RenderBatch(batch *domain.BatchResult, format string) ([]byte, error) {
	switch n := NormalizeFormatName(format); n {
	case "json":
		return json.MarshalIndent(batch, "", "  ")
	case "yaml":
		return yaml.Marshal(batch)
	case "csv":
		return CSVSummarizer{}.FormatBatch(batch)
	case "console", "console-lite":
		f := GetFormatterByName(n)
		var buf bytes.Buffer
		for i, e := range batch.Entries {
			if i > 0 {
				fmt.Fprintln(&buf)
			}
			if e.Result == nil {
				fmt.Fprintf(&buf, "%s: ERROR %s\n", e.Name, e.Error)
				continue
			}
			out, err := f.Format(e.Result)
			if err != nil {
				return nil, fmt.Errorf("format %s: %w", e.Name, err)
			}
			buf.Write(out)
		}
		fmt.Fprintf(&buf, "\n%d cases, %d failed\n", len(batch.Entries), batch.Failed())
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q for batch output. Try one of: %s", ErrUnsupportedFormat, format, strings.Join(batchFormats, ", "))
	}
}

// GenerateBatchReport writes a batch result to a timestamped file in dir and returns its path.
func GenerateBatchReport(batch *domain.BatchResult, format, dir string) (string, error) {
	data, err := RenderBatch(batch, format)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dir, ReportFilename(Extension(format)))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
