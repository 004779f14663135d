package calculation

import (
	"time"

	"github.com/indemniza/severance-calculator/internal/domain"
	"github.com/indemniza/severance-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Eligibility thresholds (ages in whole years at termination, tenure in years).
const (
	RetentionAge         = 55
	UncappedMinAge       = 61
	MidBandMaxAge        = 58
	LateBandMinAge       = 59
	LateBandMaxAge       = 60
	MinSeniorTenureYears = 10
	IncomeEndAge         = 63
)

// Days of salary per year of tenure for each kind of severance.
const (
	VoluntaryDaysPerYear  = 50
	PreReformDaysPerYear  = 45
	PostReformDaysPerYear = 33
	UncappedDaysPerYear   = 30
	StatutoryCapMonths    = 24
)

var (
	// ReformDate is the day the statutory severance rate dropped from 45 to 33 days per year.
	ReformDate = dateutil.Date(2012, time.February, 12)

	daysPerSalaryYear = decimal.NewFromInt(365)
	monthsPerYear     = decimal.NewFromInt(12)
	absoluteCap       = decimal.NewFromInt(75000)
	midBandRate       = decimal.RequireFromString("0.75")
	lateBandRate      = decimal.RequireFromString("0.80")
	minSeniorTenure   = decimal.NewFromInt(MinSeniorTenureYears)
)

// Eligibility is the outcome of the age/tenure decision before any amount is computed.
type Eligibility struct {
	Kind   domain.ScenarioKind
	Reason domain.IneligibleReason
}

// Classify selects exactly one scenario for (age, tenure). Rules are checked in order and
// the first match wins; the final case keeps the function total.
func Classify(age int, tenureYears decimal.Decimal) Eligibility {
	seniorTenure := tenureYears.GreaterThanOrEqual(minSeniorTenure)
	switch {
	case age < RetentionAge:
		return Eligibility{Kind: domain.KindBelowRetentionAge}
	case age >= UncappedMinAge && seniorTenure:
		return Eligibility{Kind: domain.KindSeniorUncapped}
	case !seniorTenure:
		return Eligibility{Kind: domain.KindIneligible, Reason: domain.ReasonInsufficientTenure}
	case age <= MidBandMaxAge:
		return Eligibility{Kind: domain.KindSeniorMidBand}
	case age >= LateBandMinAge && age <= LateBandMaxAge:
		return Eligibility{Kind: domain.KindSeniorLateBand}
	default:
		return Eligibility{Kind: domain.KindIneligible, Reason: domain.ReasonNoMatchingBand}
	}
}

// EligibilityResolver turns an employee profile into a fully computed scenario.
type EligibilityResolver struct {
	Splitter *SeveranceSplitter
}

// NewEligibilityResolver creates a resolver that splits amounts with splitter
func NewEligibilityResolver(splitter *SeveranceSplitter) *EligibilityResolver {
	return &EligibilityResolver{Splitter: splitter}
}

// Resolve classifies the profile and computes the amounts of the selected scenario.
func (er *EligibilityResolver) Resolve(p *domain.EmployeeProfile) domain.Scenario {
	age := p.Age()
	tenure := p.TenureYears()

	e := Classify(age, tenure)
	switch e.Kind {
	case domain.KindBelowRetentionAge:
		return er.belowRetentionAge(p, tenure)
	case domain.KindSeniorUncapped:
		return er.seniorUncapped(p, tenure)
	case domain.KindSeniorMidBand:
		return domain.SeniorMidBand{TemporaryIncome: temporaryIncome(p, midBandRate)}
	case domain.KindSeniorLateBand:
		return domain.SeniorLateBand{TemporaryIncome: temporaryIncome(p, lateBandRate)}
	default:
		return domain.Ineligible{Reason: e.Reason}
	}
}

// severanceGross is salary/365 x days x tenure, dividing last to keep precision.
func severanceGross(annualSalary decimal.Decimal, daysPerYear int, tenureYears decimal.Decimal) decimal.Decimal {
	return annualSalary.Mul(decimal.NewFromInt(int64(daysPerYear))).Mul(tenureYears).Div(daysPerSalaryYear)
}

// reformTenures clips the employment interval at ReformDate. Each tranche is at least 0.
func reformTenures(hire, termination time.Time) (before, after decimal.Decimal) {
	before, after = decimal.Zero, decimal.Zero
	if hire.Before(ReformDate) {
		before = dateutil.TenureYears(hire, dateutil.Earlier(termination, ReformDate))
		if termination.After(ReformDate) {
			after = dateutil.TenureYears(ReformDate, termination)
		}
	} else {
		after = dateutil.TenureYears(hire, termination)
	}
	return decimal.Max(before, decimal.Zero), decimal.Max(after, decimal.Zero)
}

func legalTranches(annualSalary, before, after decimal.Decimal) domain.LegalTranches {
	pre := severanceGross(annualSalary, PreReformDaysPerYear, before)
	post := severanceGross(annualSalary, PostReformDaysPerYear, after)
	return domain.LegalTranches{
		PreReformGross:  pre,
		PostReformGross: post,
		TotalGross:      pre.Add(post),
	}
}

func (er *EligibilityResolver) belowRetentionAge(p *domain.EmployeeProfile, tenure decimal.Decimal) domain.BelowRetentionAge {
	withSupp := p.TotalSalaryWithSupplements()
	withoutSupp := p.TotalSalaryWithoutSupplements()
	usesSupp := p.HasSupplements()

	voluntary := domain.VoluntarySeverance{
		DaysPerYear:        VoluntaryDaysPerYear,
		WithSupplements:    er.Splitter.Split(severanceGross(withSupp, VoluntaryDaysPerYear, tenure)),
		WithoutSupplements: er.Splitter.Split(severanceGross(withoutSupp, VoluntaryDaysPerYear, tenure)),
		UsesSupplements:    usesSupp,
	}
	voluntary.SelectedBreakdown = voluntary.WithoutSupplements
	if usesSupp {
		voluntary.SelectedBreakdown = voluntary.WithSupplements
	}

	before, after := reformTenures(p.HireDate, p.TerminationDate)
	legal := domain.LegalSeverance{
		ReformDate:            ReformDate,
		PreReformDaysPerYear:  PreReformDaysPerYear,
		PostReformDaysPerYear: PostReformDaysPerYear,
		PreReformTenure:       before,
		PostReformTenure:      after,
		WithSupplements:       legalTranches(withSupp, before, after),
		WithoutSupplements:    legalTranches(withoutSupp, before, after),
	}
	legal.SelectedTranches = legal.WithoutSupplements
	if usesSupp {
		legal.SelectedTranches = legal.WithSupplements
	}
	if er.Splitter.Rules.LegalFullyExempt {
		legal.Breakdown = er.Splitter.FullyExempt(legal.SelectedTranches.TotalGross)
	} else {
		legal.Breakdown = er.Splitter.Split(legal.SelectedTranches.TotalGross)
	}

	diffGross := decimal.Max(decimal.Zero, voluntary.SelectedBreakdown.Gross.Sub(legal.Breakdown.Gross))
	difference := domain.DifferenceSeverance{
		Gross:   diffGross,
		Split:   er.Splitter.Split(diffGross),
		FlatTax: er.Splitter.FlatTax(diffGross),
	}

	totals := domain.CombinedTotals{
		VoluntaryGross:  voluntary.SelectedBreakdown.Gross,
		VoluntaryNet:    voluntary.SelectedBreakdown.Net,
		LegalGross:      legal.Breakdown.Gross,
		LegalNet:        legal.Breakdown.Net,
		DifferenceGross: diffGross,
		DifferenceNet:   difference.FlatTax.Net,
		GlobalGross:     legal.Breakdown.Gross.Add(diffGross),
		GlobalNet:       legal.Breakdown.Net.Add(difference.FlatTax.Net),
	}

	return domain.BelowRetentionAge{
		Voluntary:  voluntary,
		Legal:      legal,
		Difference: difference,
		Totals:     totals,
	}
}

func (er *EligibilityResolver) seniorUncapped(p *domain.EmployeeProfile, tenure decimal.Decimal) domain.SeniorUncapped {
	salary := p.TotalSalaryWithSupplements()
	uncapped := severanceGross(salary, UncappedDaysPerYear, tenure)
	statutoryCap := salary.Mul(decimal.NewFromInt(StatutoryCapMonths)).Div(monthsPerYear)
	applied := decimal.Min(uncapped, statutoryCap, absoluteCap)

	return domain.SeniorUncapped{
		DaysPerYear:   UncappedDaysPerYear,
		UncappedGross: uncapped,
		StatutoryCap:  statutoryCap,
		AbsoluteCap:   absoluteCap,
		AppliedGross:  applied,
		Breakdown:     er.Splitter.Split(applied),
	}
}

// temporaryIncome pays rate x monthly salary for every whole month from termination until
// the employee turns IncomeEndAge.
func temporaryIncome(p *domain.EmployeeProfile, rate decimal.Decimal) domain.TemporaryIncome {
	monthly := p.TotalSalaryWithSupplements().Div(monthsPerYear)
	payment := monthly.Mul(rate)
	end := dateutil.AddYears(p.BirthDate, IncomeEndAge)
	months := dateutil.MonthsBetween(p.TerminationDate, end)

	return domain.TemporaryIncome{
		MonthlySalary:  monthly,
		Rate:           rate,
		MonthlyPayment: payment,
		EndDate:        end,
		Months:         months,
		TotalPayment:   payment.Mul(decimal.NewFromInt(int64(months))),
	}
}
