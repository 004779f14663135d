package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCalcCommand(t *testing.T) {
	out, err := run(t, "calc",
		"--name", "Ana",
		"--birth", "01/01/1970",
		"--hire", "01/01/2000",
		"--termination", "01/01/2024",
		"--salary", "40.000,00")
	require.NoError(t, err)
	assert.Contains(t, out, "SEVERANCE CALCULATION REPORT")
	assert.Contains(t, out, "131.506,85 €")
	assert.Contains(t, out, "70,00% of the excess")
}

func TestCalcCommand_FormatAndRules(t *testing.T) {
	out, err := run(t, "calc",
		"--birth", "01/06/1966",
		"--hire", "01/01/2000",
		"--termination", "01/01/2024",
		"--salary", "36000",
		"--rules", "full-excess",
		"--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"scenario": "senior_mid_band"`)
	assert.Contains(t, out, `"rules": "full-excess"`)
}

func TestCalcCommand_Errors(t *testing.T) {
	_, err := run(t, "calc", "--birth", "1970-01-01", "--hire", "01/01/2000", "--termination", "01/01/2024", "--salary", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "birth_date")

	_, err = run(t, "calc", "--birth", "01/01/1970")
	require.Error(t, err)

	_, err = run(t, "calc", "--birth", "01/01/1970", "--hire", "01/01/2000", "--termination", "01/01/2024", "--salary", "1", "--rules", "nope")
	require.Error(t, err)

	_, err = run(t, "calc", "--birth", "01/01/1970", "--hire", "01/01/2000", "--termination", "01/01/2024", "--salary", "1", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestCalcCommand_WritesReport(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "calc",
		"--birth", "01/01/1970",
		"--hire", "01/01/2000",
		"--termination", "01/01/2024",
		"--salary", "40000",
		"--format", "html",
		"--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to ")

	matches, err := filepath.Glob(filepath.Join(dir, "indemnizacion_*.html"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestExampleThenBatch(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cases.yaml")
	out, err := run(t, "example", file)
	require.NoError(t, err)
	assert.Contains(t, out, file)
	_, err = os.Stat(file)
	require.NoError(t, err)

	out, err = run(t, "batch", file, "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "Name,Scenario"))

	out, err = run(t, "batch", file, "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "6 cases, 0 failed")

	_, err = run(t, "batch", file, "--format", "html")
	require.Error(t, err)
}

func TestBatchCommand_MissingFile(t *testing.T) {
	_, err := run(t, "batch", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestRulesCommand(t *testing.T) {
	out, err := run(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "reduced (default)")
	assert.Contains(t, out, "full-excess")
	assert.Contains(t, out, "180.000,00 €")
	assert.Contains(t, out, "and above")
}
