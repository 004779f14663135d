package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeTax_Top45(t *testing.T) {
	calculator := NewTaxCalculator(ScheduleTop45())

	tests := []struct {
		name     string
		base     decimal.Decimal
		expected decimal.Decimal
	}{
		{"zero base", decimal.Zero, decimal.Zero},
		{"negative base owes nothing", dec("-500"), decimal.Zero},
		{"first bracket boundary", dec("12450"), dec("2365.50")},
		{"second bracket", dec("20200"), dec("4225.50")},      // 2365.50 + 7750*0.24
		{"third bracket", dec("35000"), dec("8665.50")},       // 4225.50 + 14800*0.30
		{"fourth bracket end", dec("60000"), dec("17901.50")}, // 8725.50 + 24800*0.37
		{"top bracket", dec("100000"), dec("35901.50")},       // 17901.50 + 40000*0.45
		{"very large base", dec("400000"), dec("170901.50")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := calculator.ComputeTax(tt.base)
			assert.True(t, tt.expected.Equal(tax), "ComputeTax(%s) = %s, want %s", tt.base, tax, tt.expected)
		})
	}
}

func TestComputeTax_Top47(t *testing.T) {
	calculator := NewTaxCalculator(ScheduleTop47())

	// Identical to the 45% schedule up to 300 000.
	top45 := NewTaxCalculator(ScheduleTop45())
	for _, base := range []string{"1000", "12450", "50000", "60000", "299999.99", "300000"} {
		b := dec(base)
		assert.True(t, top45.ComputeTax(b).Equal(calculator.ComputeTax(b)), "schedules diverge at %s", base)
	}

	tax := calculator.ComputeTax(dec("400000"))
	assert.True(t, dec("172901.50").Equal(tax), "got %s", tax) // 125901.50 + 100000*0.47
}

func TestComputeTax_StrictlyIncreasingAndContinuous(t *testing.T) {
	for _, rules := range AvailableRules() {
		t.Run(rules.Name, func(t *testing.T) {
			calculator := NewTaxCalculator(rules.Brackets)

			prev := calculator.ComputeTax(decimal.Zero)
			for base := int64(500); base <= 500000; base += 500 {
				cur := calculator.ComputeTax(decimal.NewFromInt(base))
				require.True(t, cur.GreaterThan(prev), "tax not increasing at %d", base)
				prev = cur
			}

			eps := dec("0.01")
			for _, b := range rules.Brackets[1:] {
				below := calculator.ComputeTax(b.Min.Sub(eps))
				at := calculator.ComputeTax(b.Min)
				gap := at.Sub(below)
				assert.True(t, gap.LessThanOrEqual(eps), "jump of %s at bracket boundary %s", gap, b.Min)
			}
		})
	}
}

func TestMarginalAndEffectiveRate(t *testing.T) {
	calculator := NewTaxCalculator(ScheduleTop45())

	assert.True(t, dec("0.19").Equal(calculator.MarginalRate(dec("12450"))))
	assert.True(t, dec("0.24").Equal(calculator.MarginalRate(dec("12451"))))
	assert.True(t, dec("0.45").Equal(calculator.MarginalRate(dec("1000000"))))
	assert.True(t, calculator.MarginalRate(decimal.Zero).IsZero())

	assert.True(t, calculator.EffectiveRate(decimal.Zero).IsZero())
	assert.True(t, dec("0.19").Equal(calculator.EffectiveRate(dec("10000"))))
	eff := calculator.EffectiveRate(dec("100000"))
	assert.True(t, eff.LessThan(dec("0.45")), "effective rate %s should stay below the top rate", eff)
}

func TestRulesByName(t *testing.T) {
	reduced, err := RulesByName(RulesReduced)
	require.NoError(t, err)
	assert.Equal(t, RulesReduced, reduced.Name)
	assert.True(t, dec("0.70").Equal(reduced.ReductionFactor))
	assert.False(t, reduced.LegalFullyExempt)
	require.NoError(t, reduced.Validate())

	full, err := RulesByName(RulesFullExcess)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(full.ReductionFactor))
	assert.True(t, full.LegalFullyExempt)
	require.NoError(t, full.Validate())

	_, err = RulesByName("flat-rate")
	assert.ErrorIs(t, err, ErrUnknownRules)

	assert.Equal(t, []string{RulesFullExcess, RulesReduced}, AvailableRulesNames())
	assert.Equal(t, RulesReduced, DefaultRules().Name)
}

func TestRulesByName_ReturnsIndependentCopies(t *testing.T) {
	a, err := RulesByName(RulesReduced)
	require.NoError(t, err)
	a.Brackets[0].Rate = dec("0.99")

	b, err := RulesByName(RulesReduced)
	require.NoError(t, err)
	assert.True(t, dec("0.19").Equal(b.Brackets[0].Rate))
}
