package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEmployeeProfile_Age(t *testing.T) {
	birthDate := time.Date(1963, 6, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		terminationDate time.Time
		expected        int
		desc            string
	}{
		{time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), 61, "day before birthday"},
		{time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 62, "on birthday"},
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 62, "end of year"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			profile := &EmployeeProfile{BirthDate: birthDate, TerminationDate: tc.terminationDate}
			assert.Equal(t, tc.expected, profile.Age())
		})
	}
}

func TestEmployeeProfile_TenureYears(t *testing.T) {
	hireDate := time.Date(1985, 3, 20, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		terminationDate time.Time
		expected        string
		desc            string
	}{
		{time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC), "39.9973", "day before anniversary"},
		{time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), "40.0000", "on anniversary"},
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "40.7830", "end of year"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			profile := &EmployeeProfile{HireDate: hireDate, TerminationDate: tc.terminationDate}
			assert.Equal(t, tc.expected, profile.TenureYears().StringFixed(4))
		})
	}
}

func TestEmployeeProfile_SalaryTotals(t *testing.T) {
	profile := &EmployeeProfile{
		BaseSalary:  decimal.NewFromInt(40000),
		Supplements: decimal.NewFromInt(5000),
	}
	assert.True(t, profile.TotalSalaryWithSupplements().Equal(decimal.NewFromInt(45000)))
	assert.True(t, profile.TotalSalaryWithoutSupplements().Equal(decimal.NewFromInt(40000)))
	assert.True(t, profile.HasSupplements())

	profile.Supplements = decimal.Zero
	assert.False(t, profile.HasSupplements())
	assert.True(t, profile.TotalSalaryWithSupplements().Equal(profile.TotalSalaryWithoutSupplements()))
}
