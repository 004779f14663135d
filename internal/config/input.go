package config

import (
	"fmt"
	"os"
	"time"

	"github.com/indemniza/severance-calculator/internal/calculation"
	"github.com/indemniza/severance-calculator/internal/domain"
	"github.com/indemniza/severance-calculator/pkg/dateutil"
	money "github.com/indemniza/severance-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Field names used in FieldError, matching the YAML/JSON keys of domain.RawInput.
const (
	FieldBirthDate       = "birth_date"
	FieldHireDate        = "hire_date"
	FieldTerminationDate = "termination_date"
	FieldBaseSalary      = "base_salary"
	FieldSupplements     = "supplements"
)

// BatchFile is the on-disk layout of a batch of cases.
type BatchFile struct {
	Rules string            `yaml:"rules,omitempty"`
	Cases []domain.RawInput `yaml:"cases"`
}

// InputParser handles parsing and validation of raw input
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// ParseRawInput validates the five form fields and builds a profile. Validation is
// all-or-nothing: the first failing field is reported as a *FieldError.
func (ip *InputParser) ParseRawInput(raw domain.RawInput) (*domain.EmployeeProfile, error) {
	birth, err := parseDateField(FieldBirthDate, raw.BirthDate)
	if err != nil {
		return nil, err
	}
	hire, err := parseDateField(FieldHireDate, raw.HireDate)
	if err != nil {
		return nil, err
	}
	termination, err := parseDateField(FieldTerminationDate, raw.TerminationDate)
	if err != nil {
		return nil, err
	}
	base, err := parseAmountField(FieldBaseSalary, raw.BaseSalary)
	if err != nil {
		return nil, err
	}
	supplements, err := parseAmountField(FieldSupplements, raw.Supplements)
	if err != nil {
		return nil, err
	}

	profile := &domain.EmployeeProfile{
		Name:            raw.Name,
		BirthDate:       birth,
		HireDate:        hire,
		TerminationDate: termination,
		BaseSalary:      base,
		Supplements:     supplements,
	}
	if err := ip.ValidateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ValidateProfile checks the ordering of the dates and the sign of the amounts.
func (ip *InputParser) ValidateProfile(p *domain.EmployeeProfile) error {
	if p.HireDate.Before(p.BirthDate) {
		return &FieldError{
			Field: FieldHireDate,
			Value: dateutil.FormatDate(p.HireDate),
			Err:   fmt.Errorf("%w: hire date precedes birth date %s", ErrInvalidDateRange, dateutil.FormatDate(p.BirthDate)),
		}
	}
	if p.TerminationDate.Before(p.HireDate) {
		return &FieldError{
			Field: FieldTerminationDate,
			Value: dateutil.FormatDate(p.TerminationDate),
			Err:   fmt.Errorf("%w: termination date precedes hire date %s", ErrInvalidDateRange, dateutil.FormatDate(p.HireDate)),
		}
	}
	if p.BaseSalary.IsNegative() {
		return &FieldError{Field: FieldBaseSalary, Value: p.BaseSalary.String(), Err: fmt.Errorf("%w: must not be negative", ErrInvalidNumericInput)}
	}
	if p.Supplements.IsNegative() {
		return &FieldError{Field: FieldSupplements, Value: p.Supplements.String(), Err: fmt.Errorf("%w: must not be negative", ErrInvalidNumericInput)}
	}
	return nil
}

func parseDateField(field, value string) (time.Time, error) {
	t, err := dateutil.ParseDate(value)
	if err != nil {
		return time.Time{}, &FieldError{Field: field, Err: err}
	}
	return t, nil
}

func parseAmountField(field, value string) (decimal.Decimal, error) {
	m, err := money.ParseMoney(value)
	if err != nil {
		return decimal.Decimal{}, &FieldError{Field: field, Value: value, Err: fmt.Errorf("%w: %v", ErrInvalidNumericInput, err)}
	}
	if m.IsNegative() {
		return decimal.Decimal{}, &FieldError{Field: field, Value: value, Err: fmt.Errorf("%w: must not be negative", ErrInvalidNumericInput)}
	}
	return m.Decimal, nil
}

// LoadBatchFile loads a YAML batch file. Cases that fail validation are kept with their
// error so a batch run can report them next to the successful ones.
func (ip *InputParser) LoadBatchFile(filename string) (*domain.BatchInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseBatch(data)
}

// ParseBatch parses the YAML content of a batch file.
func (ip *InputParser) ParseBatch(data []byte) (*domain.BatchInput, error) {
	var file BatchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Cases) == 0 {
		return nil, fmt.Errorf("no cases provided")
	}

	batch := &domain.BatchInput{
		RulesName: file.Rules,
		Cases:     make([]domain.BatchCase, 0, len(file.Cases)),
	}
	for i, raw := range file.Cases {
		name := raw.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		c := domain.BatchCase{Name: name, Input: raw}
		c.Profile, c.InputError = ip.ParseRawInput(raw)
		if c.Profile != nil {
			c.Profile.Name = name
		}
		batch.Cases = append(batch.Cases, c)
	}
	return batch, nil
}

// LoadRulesFile loads a custom rule set from YAML and validates it.
func (ip *InputParser) LoadRulesFile(filename string) (domain.TaxRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.TaxRules{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var rules domain.TaxRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return domain.TaxRules{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return domain.TaxRules{}, fmt.Errorf("rules validation failed: %w", err)
	}
	return rules, nil
}

// ResolveRules picks the rule set for a run: a rules file wins over a built-in name,
// and an empty name selects the default rules.
func (ip *InputParser) ResolveRules(name, filename string) (domain.TaxRules, error) {
	if filename != "" {
		return ip.LoadRulesFile(filename)
	}
	if name == "" {
		name = calculation.DefaultRulesName
	}
	return calculation.RulesByName(name)
}

// CreateExampleBatch returns a batch covering every scenario, used by the example command.
func (ip *InputParser) CreateExampleBatch() *BatchFile {
	return &BatchFile{
		Rules: calculation.DefaultRulesName,
		Cases: []domain.RawInput{
			{Name: "Below retention age", BirthDate: "01/01/1970", HireDate: "01/01/2000", TerminationDate: "01/01/2024", BaseSalary: "40000", Supplements: "0"},
			{Name: "Below retention age with supplements", BirthDate: "15/03/1975", HireDate: "01/09/2003", TerminationDate: "30/06/2024", BaseSalary: "52.000,00", Supplements: "3.100,40"},
			{Name: "Senior mid band", BirthDate: "01/06/1966", HireDate: "01/01/2000", TerminationDate: "01/01/2024", BaseSalary: "36000", Supplements: "0"},
			{Name: "Senior late band", BirthDate: "01/06/1964", HireDate: "01/01/2000", TerminationDate: "01/01/2024", BaseSalary: "36000", Supplements: "0"},
			{Name: "Senior uncapped", BirthDate: "01/01/1960", HireDate: "01/01/2012", TerminationDate: "01/01/2024", BaseSalary: "60000", Supplements: "0"},
			{Name: "Insufficient tenure", BirthDate: "01/06/1966", HireDate: "01/01/2019", TerminationDate: "01/01/2024", BaseSalary: "36000", Supplements: "0"},
		},
	}
}

// WriteExampleBatch writes CreateExampleBatch to filename as YAML.
func (ip *InputParser) WriteExampleBatch(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleBatch())
	if err != nil {
		return fmt.Errorf("failed to marshal example batch: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
