package calculation

import (
	"testing"
	"time"

	"github.com/indemniza/severance-calculator/internal/domain"
	"github.com/indemniza/severance-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		age    int
		tenure string
		kind   domain.ScenarioKind
		reason domain.IneligibleReason
	}{
		{"young with no tenure", 25, "0", domain.KindBelowRetentionAge, ""},
		{"54 with long tenure", 54, "30", domain.KindBelowRetentionAge, ""},
		{"55 with ten years", 55, "10", domain.KindSeniorMidBand, ""},
		{"58 with ten years", 58, "15", domain.KindSeniorMidBand, ""},
		{"59 with ten years", 59, "10", domain.KindSeniorLateBand, ""},
		{"60 with thirty years", 60, "30", domain.KindSeniorLateBand, ""},
		{"61 with ten years", 61, "10", domain.KindSeniorUncapped, ""},
		{"70 with thirty years", 70, "30", domain.KindSeniorUncapped, ""},
		{"55 just short of ten years", 55, "9.9", domain.KindIneligible, domain.ReasonInsufficientTenure},
		{"59 with five years", 59, "5", domain.KindIneligible, domain.ReasonInsufficientTenure},
		{"61 with five years", 61, "5", domain.KindIneligible, domain.ReasonInsufficientTenure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Classify(tt.age, dec(tt.tenure))
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, tt.reason, e.Reason)
		})
	}
}

func TestClassify_Total(t *testing.T) {
	valid := map[domain.ScenarioKind]bool{
		domain.KindBelowRetentionAge: true,
		domain.KindSeniorUncapped:    true,
		domain.KindSeniorMidBand:     true,
		domain.KindSeniorLateBand:    true,
		domain.KindIneligible:        true,
	}
	tenures := []string{"0", "5", "9.9", "10", "15", "30"}

	for age := 0; age <= 80; age++ {
		for _, tn := range tenures {
			e := Classify(age, dec(tn))
			assert.True(t, valid[e.Kind], "age %d tenure %s: unknown kind %q", age, tn, e.Kind)
			if e.Kind == domain.KindIneligible {
				assert.NotEmpty(t, e.Reason, "age %d tenure %s", age, tn)
			} else {
				assert.Empty(t, e.Reason, "age %d tenure %s", age, tn)
			}
			if age < RetentionAge {
				assert.Equal(t, domain.KindBelowRetentionAge, e.Kind)
			}
		}
	}
}

func TestReformTenures(t *testing.T) {
	tolerance := dec("0.0000000001")

	t.Run("hired after the reform", func(t *testing.T) {
		hire := dateutil.Date(2015, time.March, 1)
		term := dateutil.Date(2024, time.March, 1)
		before, after := reformTenures(hire, term)
		assert.True(t, before.IsZero())
		assert.True(t, after.Equal(dateutil.TenureYears(hire, term)))
	})

	t.Run("terminated before the reform", func(t *testing.T) {
		hire := dateutil.Date(2000, time.January, 1)
		term := dateutil.Date(2010, time.January, 1)
		before, after := reformTenures(hire, term)
		assert.True(t, after.IsZero())
		assert.True(t, before.Equal(dateutil.TenureYears(hire, term)))
	})

	t.Run("straddles the reform", func(t *testing.T) {
		hire := dateutil.Date(2000, time.January, 1)
		term := dateutil.Date(2024, time.January, 1)
		before, after := reformTenures(hire, term)
		assert.True(t, before.IsPositive())
		assert.True(t, after.IsPositive())
		total := dateutil.TenureYears(hire, term)
		assert.True(t, before.Add(after).Sub(total).Abs().LessThan(tolerance),
			"tranches %s + %s should add up to %s", before, after, total)
	})

	t.Run("inverted range is clamped", func(t *testing.T) {
		before, after := reformTenures(dateutil.Date(2020, time.January, 1), dateutil.Date(2019, time.January, 1))
		assert.False(t, before.IsNegative())
		assert.False(t, after.IsNegative())
	})
}

func TestSeveranceGross(t *testing.T) {
	got := severanceGross(dec("40000"), VoluntaryDaysPerYear, decimal.NewFromInt(24))
	assert.Equal(t, "131506.85", got.StringFixed(2))

	got = severanceGross(dec("60000"), UncappedDaysPerYear, decimal.NewFromInt(12))
	assert.Equal(t, "59178.08", got.StringFixed(2))

	assert.True(t, severanceGross(dec("60000"), UncappedDaysPerYear, decimal.Zero).IsZero())
}

func TestTemporaryIncome(t *testing.T) {
	p := &domain.EmployeeProfile{
		BirthDate:       dateutil.Date(1966, time.June, 1),
		HireDate:        dateutil.Date(2000, time.January, 1),
		TerminationDate: dateutil.Date(2024, time.January, 1),
		BaseSalary:      dec("30000"),
		Supplements:     dec("6000"),
	}

	ti := temporaryIncome(p, midBandRate)
	assert.True(t, dec("3000").Equal(ti.MonthlySalary))
	assert.True(t, dec("2250").Equal(ti.MonthlyPayment))
	assert.Equal(t, dateutil.Date(2029, time.June, 1), ti.EndDate)
	assert.Equal(t, 65, ti.Months)
	assert.True(t, dec("146250").Equal(ti.TotalPayment), "total = %s", ti.TotalPayment)
}
