package calculation

import (
	"context"
	"fmt"

	"github.com/indemniza/severance-calculator/internal/domain"
	"github.com/indemniza/severance-calculator/pkg/dateutil"
)

// CalculationEngine orchestrates the severance calculation for one rule set.
// It holds no per-call state and is safe for concurrent use.
type CalculationEngine struct {
	Rules    domain.TaxRules
	TaxCalc  *TaxCalculator
	Splitter *SeveranceSplitter
	Resolver *EligibilityResolver
	Debug    bool // Enable debug output for detailed calculations
	Logger   Logger
}

// NewCalculationEngine creates a new calculation engine with the default rules
func NewCalculationEngine() *CalculationEngine {
	return newEngine(DefaultRules())
}

// NewCalculationEngineWithRules creates an engine for a validated custom or named rule set
func NewCalculationEngineWithRules(rules domain.TaxRules) (*CalculationEngine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return newEngine(rules), nil
}

// NewCalculationEngineForRules creates an engine for a built-in rule set name
func NewCalculationEngineForRules(name string) (*CalculationEngine, error) {
	rules, err := RulesByName(name)
	if err != nil {
		return nil, err
	}
	return NewCalculationEngineWithRules(rules)
}

func newEngine(rules domain.TaxRules) *CalculationEngine {
	splitter := NewSeveranceSplitter(rules)
	return &CalculationEngine{
		Rules:    rules,
		TaxCalc:  splitter.TaxCalc,
		Splitter: splitter,
		Resolver: NewEligibilityResolver(splitter),
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate runs the full pipeline for a validated profile and assembles the result.
func (ce *CalculationEngine) Calculate(profile *domain.EmployeeProfile) *domain.CalculationResult {
	result := &domain.CalculationResult{
		Name:                     profile.Name,
		GeneratedAt:              nowFunc(),
		RulesName:                ce.Rules.Name,
		BirthDate:                profile.BirthDate,
		HireDate:                 profile.HireDate,
		TerminationDate:          profile.TerminationDate,
		BaseSalary:               profile.BaseSalary,
		Supplements:              profile.Supplements,
		SalaryWithSupplements:    profile.TotalSalaryWithSupplements(),
		SalaryWithoutSupplements: profile.TotalSalaryWithoutSupplements(),
		Age:                      profile.Age(),
		TenureYears:              profile.TenureYears(),
	}
	result.SetScenario(ce.Resolver.Resolve(profile))

	ce.Logger.Infof("severance calculated: name=%q rules=%s age=%d tenure=%s scenario=%s",
		profile.Name, ce.Rules.Name, result.Age, result.TenureYears.StringFixed(2), result.ScenarioKind)
	if ce.Debug {
		ce.logBreakdown(result)
	}
	return result
}

// RunBatch calculates every valid case of a batch; invalid cases are reported, not fatal.
// It stops early with ctx.Err() when the context is cancelled.
func (ce *CalculationEngine) RunBatch(ctx context.Context, batch *domain.BatchInput) (*domain.BatchResult, error) {
	out := &domain.BatchResult{
		RulesName: ce.Rules.Name,
		Entries:   make([]domain.BatchEntry, 0, len(batch.Cases)),
	}
	for i, c := range batch.Cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch cancelled after %d of %d cases: %w", i, len(batch.Cases), err)
		}
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		if c.InputError != nil || c.Profile == nil {
			msg := "missing profile"
			if c.InputError != nil {
				msg = c.InputError.Error()
			}
			ce.Logger.Warnf("skipping %s: %s", name, msg)
			out.Entries = append(out.Entries, domain.BatchEntry{Name: name, Error: msg})
			continue
		}
		res := ce.Calculate(c.Profile)
		res.Name = name
		out.Entries = append(out.Entries, domain.BatchEntry{Name: name, Result: res})
	}
	return out, nil
}

func (ce *CalculationEngine) logBreakdown(r *domain.CalculationResult) {
	ce.Logger.Debugf("SEVERANCE CALCULATION BREAKDOWN")
	ce.Logger.Debugf("===============================")
	ce.Logger.Debugf("Birth / hire / termination: %s / %s / %s",
		dateutil.FormatDate(r.BirthDate), dateutil.FormatDate(r.HireDate), dateutil.FormatDate(r.TerminationDate))
	ce.Logger.Debugf("Age: %d  Tenure: %s years", r.Age, r.TenureYears.StringFixed(4))
	ce.Logger.Debugf("Salary with / without supplements: %s / %s",
		r.SalaryWithSupplements.StringFixed(2), r.SalaryWithoutSupplements.StringFixed(2))
	ce.Logger.Debugf("Scenario: %s", r.ScenarioKind)

	switch s := r.Scenario().(type) {
	case domain.BelowRetentionAge:
		ce.logSplit("Voluntary", s.Voluntary.SelectedBreakdown)
		ce.Logger.Debugf("Legal tranches: pre-reform %s, post-reform %s",
			s.Legal.SelectedTranches.PreReformGross.StringFixed(2), s.Legal.SelectedTranches.PostReformGross.StringFixed(2))
		ce.logSplit("Legal", s.Legal.Breakdown)
		ce.logSplit("Difference (split)", s.Difference.Split)
		ce.logSplit("Difference (flat)", s.Difference.FlatTax)
		ce.Logger.Debugf("Global gross / net: %s / %s", s.Totals.GlobalGross.StringFixed(2), s.Totals.GlobalNet.StringFixed(2))
	case domain.SeniorUncapped:
		ce.Logger.Debugf("Uncapped %s, 24-month cap %s, absolute cap %s -> applied %s",
			s.UncappedGross.StringFixed(2), s.StatutoryCap.StringFixed(2), s.AbsoluteCap.StringFixed(2), s.AppliedGross.StringFixed(2))
		ce.logSplit("Applied", s.Breakdown)
	case domain.SeniorMidBand:
		ce.logIncome(s.TemporaryIncome)
	case domain.SeniorLateBand:
		ce.logIncome(s.TemporaryIncome)
	case domain.Ineligible:
		ce.Logger.Debugf("Ineligible: %s", s.Reason)
	}
}

func (ce *CalculationEngine) logSplit(label string, b domain.SeveranceBreakdown) {
	ce.Logger.Debugf("%s: gross %s exempt %s excess %s base %s tax %s net %s", label,
		b.Gross.StringFixed(2), b.Exempt.StringFixed(2), b.Excess.StringFixed(2),
		b.TaxableBase.StringFixed(2), b.Tax.StringFixed(2), b.Net.StringFixed(2))
}

func (ce *CalculationEngine) logIncome(ti domain.TemporaryIncome) {
	ce.Logger.Debugf("Monthly salary %s x %s = %s for %d months until %s -> %s",
		ti.MonthlySalary.StringFixed(2), ti.Rate.String(), ti.MonthlyPayment.StringFixed(2),
		ti.Months, dateutil.FormatDate(ti.EndDate), ti.TotalPayment.StringFixed(2))
}
