package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/indemniza/severance-calculator/internal/calculation"
	"github.com/indemniza/severance-calculator/internal/output"
)

func TestGenerateReport_AllFormats(t *testing.T) {
	calculation.SetNowFunc(func() time.Time { return time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC) })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })

	batch := runExampleBatch(t)
	result := batch.Entries[0].Result
	if result == nil {
		t.Fatalf("first example case failed: %s", batch.Entries[0].Error)
	}
	result.Assumptions = output.GenerateNotes(calculation.DefaultRules())

	for _, format := range output.AvailableFormatterNames() {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			path, err := output.GenerateReport(result, format, dir)
			if err != nil {
				t.Fatalf("GenerateReport(%s) error: %v", format, err)
			}
			if filepath.Dir(path) != dir {
				t.Fatalf("report written outside %s: %s", dir, path)
			}
			if !strings.HasSuffix(path, "."+output.Extension(format)) {
				t.Fatalf("unexpected extension for %s: %s", format, path)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read report: %v", err)
			}
			if len(data) == 0 {
				t.Fatalf("expected non-empty %s report", format)
			}
		})
	}
}

func TestGenerateBatchReport_CSV(t *testing.T) {
	dir := t.TempDir()
	path, err := output.GenerateBatchReport(runExampleBatch(t), "csv", dir)
	if err != nil {
		t.Fatalf("GenerateBatchReport error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header plus 6 rows, got %d lines:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[6], "Typo in hire date,") || !strings.Contains(lines[6], "hire_date") {
		t.Fatalf("failed case row missing its error: %s", lines[6])
	}
}
