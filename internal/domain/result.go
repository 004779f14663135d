package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationResult is the complete, immutable outcome of one calculation. Exactly one
// scenario pointer matching ScenarioKind is set. Values keep full precision so the result
// can be re-rendered or exported without recomputation.
type CalculationResult struct {
	Name            string    `yaml:"name,omitempty" json:"name,omitempty"`
	GeneratedAt     time.Time `yaml:"generated_at" json:"generated_at"`
	RulesName       string    `yaml:"rules" json:"rules"`
	BirthDate       time.Time `yaml:"birth_date" json:"birth_date"`
	HireDate        time.Time `yaml:"hire_date" json:"hire_date"`
	TerminationDate time.Time `yaml:"termination_date" json:"termination_date"`

	BaseSalary               decimal.Decimal `yaml:"base_salary" json:"base_salary"`
	Supplements              decimal.Decimal `yaml:"supplements" json:"supplements"`
	SalaryWithSupplements    decimal.Decimal `yaml:"salary_with_supplements" json:"salary_with_supplements"`
	SalaryWithoutSupplements decimal.Decimal `yaml:"salary_without_supplements" json:"salary_without_supplements"`

	Age         int             `yaml:"age" json:"age"`
	TenureYears decimal.Decimal `yaml:"tenure_years" json:"tenure_years"`

	ScenarioKind      ScenarioKind       `yaml:"scenario" json:"scenario"`
	BelowRetentionAge *BelowRetentionAge `yaml:"below_retention_age,omitempty" json:"below_retention_age,omitempty"`
	SeniorUncapped    *SeniorUncapped    `yaml:"senior_uncapped,omitempty" json:"senior_uncapped,omitempty"`
	SeniorMidBand     *SeniorMidBand     `yaml:"senior_mid_band,omitempty" json:"senior_mid_band,omitempty"`
	SeniorLateBand    *SeniorLateBand    `yaml:"senior_late_band,omitempty" json:"senior_late_band,omitempty"`
	Ineligible        *Ineligible        `yaml:"ineligible,omitempty" json:"ineligible,omitempty"`

	// Assumptions are the notes printed with a report; filled by the caller.
	Assumptions []string `yaml:"assumptions,omitempty" json:"assumptions,omitempty"`
}

// Scenario returns the populated scenario payload as the sum type.
func (r *CalculationResult) Scenario() Scenario {
	switch r.ScenarioKind {
	case KindBelowRetentionAge:
		if r.BelowRetentionAge != nil {
			return *r.BelowRetentionAge
		}
	case KindSeniorUncapped:
		if r.SeniorUncapped != nil {
			return *r.SeniorUncapped
		}
	case KindSeniorMidBand:
		if r.SeniorMidBand != nil {
			return *r.SeniorMidBand
		}
	case KindSeniorLateBand:
		if r.SeniorLateBand != nil {
			return *r.SeniorLateBand
		}
	case KindIneligible:
		if r.Ineligible != nil {
			return *r.Ineligible
		}
	}
	return nil
}

// SetScenario stores s in the matching payload field and sets ScenarioKind.
func (r *CalculationResult) SetScenario(s Scenario) {
	r.BelowRetentionAge, r.SeniorUncapped, r.SeniorMidBand, r.SeniorLateBand, r.Ineligible = nil, nil, nil, nil, nil
	r.ScenarioKind = s.Kind()
	switch v := s.(type) {
	case BelowRetentionAge:
		r.BelowRetentionAge = &v
	case SeniorUncapped:
		r.SeniorUncapped = &v
	case SeniorMidBand:
		r.SeniorMidBand = &v
	case SeniorLateBand:
		r.SeniorLateBand = &v
	case Ineligible:
		r.Ineligible = &v
	}
}

// IsEligible reports whether any compensation applies.
func (r *CalculationResult) IsEligible() bool {
	return r.ScenarioKind != KindIneligible
}

// BatchEntry is one case of a batch run: either a result or the validation error.
type BatchEntry struct {
	Name   string             `yaml:"name" json:"name"`
	Result *CalculationResult `yaml:"result,omitempty" json:"result,omitempty"`
	Error  string             `yaml:"error,omitempty" json:"error,omitempty"`
}

// BatchResult collects the outcome of every case in a batch file.
type BatchResult struct {
	RulesName string       `yaml:"rules" json:"rules"`
	Entries   []BatchEntry `yaml:"entries" json:"entries"`
}

// Failed counts entries that did not produce a result.
func (b *BatchResult) Failed() int {
	n := 0
	for _, e := range b.Entries {
		if e.Result == nil {
			n++
		}
	}
	return n
}

// BatchCase is one parsed case of a batch file. InputError is set instead of Profile
// when the raw input failed validation.
type BatchCase struct {
	Name       string
	Input      RawInput
	Profile    *EmployeeProfile
	InputError error
}

// BatchInput is a parsed batch file.
type BatchInput struct {
	RulesName string
	Cases     []BatchCase
}
