package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScenarioKind tags the compensation scenario selected for an employee.
type ScenarioKind string

const (
	KindBelowRetentionAge ScenarioKind = "below_retention_age"
	KindSeniorUncapped    ScenarioKind = "senior_uncapped"
	KindSeniorMidBand     ScenarioKind = "senior_mid_band"
	KindSeniorLateBand    ScenarioKind = "senior_late_band"
	KindIneligible        ScenarioKind = "ineligible"
)

// Description returns a short human label for the scenario.
func (k ScenarioKind) Description() string {
	switch k {
	case KindBelowRetentionAge:
		return "Under 55: voluntary exit vs. statutory severance"
	case KindSeniorUncapped:
		return "61 or older: capped lump-sum severance"
	case KindSeniorMidBand:
		return "55 to 58: temporary income at 75% until age 63"
	case KindSeniorLateBand:
		return "59 to 60: temporary income at 80% until age 63"
	case KindIneligible:
		return "Not eligible"
	default:
		return string(k)
	}
}

// IneligibleReason explains why no compensation scenario applies.
type IneligibleReason string

const (
	ReasonInsufficientTenure IneligibleReason = "insufficient_tenure"
	ReasonNoMatchingBand     IneligibleReason = "no_matching_band"
)

// Message returns the user-facing explanation of the reason.
func (r IneligibleReason) Message() string {
	switch r {
	case ReasonInsufficientTenure:
		return "At least 10 years of tenure are required to qualify as a senior worker."
	case ReasonNoMatchingBand:
		return "The employee does not meet the conditions of any early-retirement band."
	default:
		return string(r)
	}
}

// Scenario is the closed set of outcomes produced by eligibility resolution.
// Only the types in this package implement it.
type Scenario interface {
	Kind() ScenarioKind
	isScenario()
}

// VoluntarySeverance is the 50 days-per-year voluntary-exit amount on both salary bases.
type VoluntarySeverance struct {
	DaysPerYear        int                `yaml:"days_per_year" json:"days_per_year"`
	WithSupplements    SeveranceBreakdown `yaml:"with_supplements" json:"with_supplements"`
	WithoutSupplements SeveranceBreakdown `yaml:"without_supplements" json:"without_supplements"`
	UsesSupplements    bool               `yaml:"uses_supplements" json:"uses_supplements"`
	SelectedBreakdown  SeveranceBreakdown `yaml:"selected" json:"selected"`
}

// LegalTranches are the statutory severance amounts before and after the reform date.
type LegalTranches struct {
	PreReformGross  decimal.Decimal `yaml:"pre_reform_gross" json:"pre_reform_gross"`
	PostReformGross decimal.Decimal `yaml:"post_reform_gross" json:"post_reform_gross"`
	TotalGross      decimal.Decimal `yaml:"total_gross" json:"total_gross"`
}

// LegalSeverance is the statutory minimum severance split across the reform date.
type LegalSeverance struct {
	ReformDate            time.Time          `yaml:"reform_date" json:"reform_date"`
	PreReformDaysPerYear  int                `yaml:"pre_reform_days_per_year" json:"pre_reform_days_per_year"`
	PostReformDaysPerYear int                `yaml:"post_reform_days_per_year" json:"post_reform_days_per_year"`
	PreReformTenure       decimal.Decimal    `yaml:"pre_reform_tenure" json:"pre_reform_tenure"`
	PostReformTenure      decimal.Decimal    `yaml:"post_reform_tenure" json:"post_reform_tenure"`
	WithSupplements       LegalTranches      `yaml:"with_supplements" json:"with_supplements"`
	WithoutSupplements    LegalTranches      `yaml:"without_supplements" json:"without_supplements"`
	SelectedTranches      LegalTranches      `yaml:"selected_tranches" json:"selected_tranches"`
	Breakdown             SeveranceBreakdown `yaml:"breakdown" json:"breakdown"`
}

// DifferenceSeverance is the voluntary amount above the legal minimum, taxed two ways:
// through the exemption split and flat through the brackets with no exemption.
type DifferenceSeverance struct {
	Gross   decimal.Decimal    `yaml:"gross" json:"gross"`
	Split   SeveranceBreakdown `yaml:"split" json:"split"`
	FlatTax SeveranceBreakdown `yaml:"flat_tax" json:"flat_tax"`
}

// CombinedTotals are the before/after tax totals per column and legal + difference overall.
type CombinedTotals struct {
	VoluntaryGross  decimal.Decimal `yaml:"voluntary_gross" json:"voluntary_gross"`
	VoluntaryNet    decimal.Decimal `yaml:"voluntary_net" json:"voluntary_net"`
	LegalGross      decimal.Decimal `yaml:"legal_gross" json:"legal_gross"`
	LegalNet        decimal.Decimal `yaml:"legal_net" json:"legal_net"`
	DifferenceGross decimal.Decimal `yaml:"difference_gross" json:"difference_gross"`
	DifferenceNet   decimal.Decimal `yaml:"difference_net" json:"difference_net"`
	GlobalGross     decimal.Decimal `yaml:"global_gross" json:"global_gross"`
	GlobalNet       decimal.Decimal `yaml:"global_net" json:"global_net"`
}

// BelowRetentionAge applies when the employee is younger than 55.
type BelowRetentionAge struct {
	Voluntary  VoluntarySeverance  `yaml:"voluntary" json:"voluntary"`
	Legal      LegalSeverance      `yaml:"legal" json:"legal"`
	Difference DifferenceSeverance `yaml:"difference" json:"difference"`
	Totals     CombinedTotals      `yaml:"totals" json:"totals"`
}

// SeniorUncapped applies at 61 or older with at least 10 years of tenure.
type SeniorUncapped struct {
	DaysPerYear   int                `yaml:"days_per_year" json:"days_per_year"`
	UncappedGross decimal.Decimal    `yaml:"uncapped_gross" json:"uncapped_gross"`
	StatutoryCap  decimal.Decimal    `yaml:"statutory_cap" json:"statutory_cap"`
	AbsoluteCap   decimal.Decimal    `yaml:"absolute_cap" json:"absolute_cap"`
	AppliedGross  decimal.Decimal    `yaml:"applied_gross" json:"applied_gross"`
	Breakdown     SeveranceBreakdown `yaml:"breakdown" json:"breakdown"`
}

// TemporaryIncome is a monthly payment stream from termination until the end date.
type TemporaryIncome struct {
	MonthlySalary  decimal.Decimal `yaml:"monthly_salary" json:"monthly_salary"`
	Rate           decimal.Decimal `yaml:"rate" json:"rate"`
	MonthlyPayment decimal.Decimal `yaml:"monthly_payment" json:"monthly_payment"`
	EndDate        time.Time       `yaml:"end_date" json:"end_date"`
	Months         int             `yaml:"months" json:"months"`
	TotalPayment   decimal.Decimal `yaml:"total_payment" json:"total_payment"`
}

// SeniorMidBand applies from 55 to 58 inclusive with at least 10 years of tenure.
type SeniorMidBand struct {
	TemporaryIncome `yaml:",inline"`
}

// SeniorLateBand applies from 59 to 60 inclusive with at least 10 years of tenure.
type SeniorLateBand struct {
	TemporaryIncome `yaml:",inline"`
}

// Ineligible carries no amounts, only the reason.
type Ineligible struct {
	Reason IneligibleReason `yaml:"reason" json:"reason"`
}

func (BelowRetentionAge) Kind() ScenarioKind { return KindBelowRetentionAge }
func (SeniorUncapped) Kind() ScenarioKind    { return KindSeniorUncapped }
func (SeniorMidBand) Kind() ScenarioKind     { return KindSeniorMidBand }
func (SeniorLateBand) Kind() ScenarioKind    { return KindSeniorLateBand }
func (Ineligible) Kind() ScenarioKind        { return KindIneligible }

func (BelowRetentionAge) isScenario() {}
func (SeniorUncapped) isScenario()    {}
func (SeniorMidBand) isScenario()     {}
func (SeniorLateBand) isScenario()    {}
func (Ineligible) isScenario()        {}
