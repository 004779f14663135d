package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/indemniza/severance-calculator/internal/calculation"
	"github.com/indemniza/severance-calculator/internal/domain"
	"github.com/indemniza/severance-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() domain.RawInput {
	return domain.RawInput{
		Name:            "Ana",
		BirthDate:       "01/01/1970",
		HireDate:        "01/01/2000",
		TerminationDate: "01/01/2024",
		BaseSalary:      "40000",
		Supplements:     "0",
	}
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestParseRawInput_Success(t *testing.T) {
	profile, err := NewInputParser().ParseRawInput(validRaw())
	require.NoError(t, err)

	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, dateutil.Date(1970, time.January, 1), profile.BirthDate)
	assert.Equal(t, dateutil.Date(2000, time.January, 1), profile.HireDate)
	assert.Equal(t, dateutil.Date(2024, time.January, 1), profile.TerminationDate)
	assert.True(t, decimal.NewFromInt(40000).Equal(profile.BaseSalary))
	assert.True(t, profile.Supplements.IsZero())
}

func TestParseRawInput_SpanishAmounts(t *testing.T) {
	raw := validRaw()
	raw.BaseSalary = "52.000,75"
	raw.Supplements = " 3.100,40 € "

	profile, err := NewInputParser().ParseRawInput(raw)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("52000.75").Equal(profile.BaseSalary))
	assert.True(t, decimal.RequireFromString("3100.40").Equal(profile.Supplements))
}

func TestParseRawInput_SameDayHireAndTermination(t *testing.T) {
	raw := validRaw()
	raw.HireDate = raw.TerminationDate

	profile, err := NewInputParser().ParseRawInput(raw)
	require.NoError(t, err)
	assert.True(t, profile.TenureYears().IsZero())
}

func TestParseRawInput_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RawInput)
		field  string
		target error
	}{
		{"malformed birth date", func(r *domain.RawInput) { r.BirthDate = "1970-01-01" }, FieldBirthDate, ErrInvalidDateFormat},
		{"impossible hire date", func(r *domain.RawInput) { r.HireDate = "31/02/2000" }, FieldHireDate, ErrInvalidDateFormat},
		{"empty termination date", func(r *domain.RawInput) { r.TerminationDate = "" }, FieldTerminationDate, ErrInvalidDateFormat},
		{"two-digit year", func(r *domain.RawInput) { r.TerminationDate = "01/01/24" }, FieldTerminationDate, ErrInvalidDateFormat},
		{"empty salary", func(r *domain.RawInput) { r.BaseSalary = "" }, FieldBaseSalary, ErrInvalidNumericInput},
		{"non-numeric salary", func(r *domain.RawInput) { r.BaseSalary = "forty" }, FieldBaseSalary, ErrInvalidNumericInput},
		{"negative salary", func(r *domain.RawInput) { r.BaseSalary = "-1" }, FieldBaseSalary, ErrInvalidNumericInput},
		{"exponent salary", func(r *domain.RawInput) { r.BaseSalary = "1e300000" }, FieldBaseSalary, ErrInvalidNumericInput},
		{"empty supplements", func(r *domain.RawInput) { r.Supplements = "  " }, FieldSupplements, ErrInvalidNumericInput},
		{"negative supplements", func(r *domain.RawInput) { r.Supplements = "-250,00" }, FieldSupplements, ErrInvalidNumericInput},
		{"termination before hire", func(r *domain.RawInput) { r.TerminationDate = "31/12/1999" }, FieldTerminationDate, ErrInvalidDateRange},
		{"hire before birth", func(r *domain.RawInput) { r.HireDate = "31/12/1969" }, FieldHireDate, ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)

			profile, err := NewInputParser().ParseRawInput(raw)
			require.Error(t, err)
			assert.Nil(t, profile)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Equal(t, tt.field, FieldOf(err))

			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Contains(t, fe.Error(), tt.field)
		})
	}
}

func TestFieldOf_NonFieldError(t *testing.T) {
	assert.Equal(t, "", FieldOf(errors.New("boom")))
	assert.Equal(t, "", FieldOf(nil))
}

func TestLoadBatchFile_Success(t *testing.T) {
	batch, err := NewInputParser().LoadBatchFile(filepath.Join("testdata", "batch.yaml"))
	require.NoError(t, err)

	assert.Equal(t, calculation.RulesFullExcess, batch.RulesName)
	require.Len(t, batch.Cases, 3)

	ana := batch.Cases[0]
	assert.Equal(t, "Ana", ana.Name)
	require.NoError(t, ana.InputError)
	require.NotNil(t, ana.Profile)
	assert.True(t, decimal.NewFromInt(40000).Equal(ana.Profile.BaseSalary))

	luis := batch.Cases[1]
	assert.Nil(t, luis.Profile)
	assert.ErrorIs(t, luis.InputError, ErrInvalidDateFormat)
	assert.Equal(t, FieldHireDate, FieldOf(luis.InputError))

	unnamed := batch.Cases[2]
	assert.Equal(t, "case 3", unnamed.Name)
	require.NotNil(t, unnamed.Profile)
	assert.Equal(t, "case 3", unnamed.Profile.Name)
	assert.True(t, decimal.RequireFromString("1500.50").Equal(unnamed.Profile.Supplements))
}

func TestLoadBatchFile_FileNotFound(t *testing.T) {
	_, err := NewInputParser().LoadBatchFile("nonexistent.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParseBatch_Invalid(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.ParseBatch([]byte("cases: [unterminated"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")

	_, err = parser.ParseBatch([]byte("rules: reduced\ncases: []\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no cases")
}

func TestLoadRulesFile(t *testing.T) {
	parser := NewInputParser()

	rules, err := parser.LoadRulesFile(filepath.Join("testdata", "rules.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "flat-20", rules.Name)
	require.Len(t, rules.Brackets, 1)
	assert.True(t, decimal.RequireFromString("0.20").Equal(rules.Brackets[0].Rate))
	assert.True(t, decimal.NewFromInt(100000).Equal(rules.ExemptThreshold))

	_, err = parser.LoadRulesFile(filepath.Join("testdata", "rules_invalid.yaml"))
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)

	_, err = parser.LoadRulesFile("missing.yaml")
	assert.Error(t, err)
}

func TestResolveRules(t *testing.T) {
	parser := NewInputParser()

	rules, err := parser.ResolveRules("", "")
	require.NoError(t, err)
	assert.Equal(t, calculation.DefaultRulesName, rules.Name)

	rules, err = parser.ResolveRules(calculation.RulesFullExcess, "")
	require.NoError(t, err)
	assert.True(t, rules.LegalFullyExempt)

	rules, err = parser.ResolveRules(calculation.RulesFullExcess, filepath.Join("testdata", "rules.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "flat-20", rules.Name)

	_, err = parser.ResolveRules("nope", "")
	assert.ErrorIs(t, err, calculation.ErrUnknownRules)
}

func TestWriteExampleBatch_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, parser.WriteExampleBatch(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	batch, err := parser.LoadBatchFile(path)
	require.NoError(t, err)
	require.Len(t, batch.Cases, len(parser.CreateExampleBatch().Cases))
	for _, c := range batch.Cases {
		assert.NoError(t, c.InputError, c.Name)
	}

	engine := calculation.NewCalculationEngine()
	seen := map[domain.ScenarioKind]bool{}
	for _, c := range batch.Cases {
		seen[engine.Calculate(c.Profile).ScenarioKind] = true
	}
	assert.Len(t, seen, 5, "example batch should exercise every scenario kind reachable from input")
}
