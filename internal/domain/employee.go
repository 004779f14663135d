package domain

import (
	"time"

	"github.com/indemniza/severance-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// EmployeeProfile is the validated input of one severance calculation.
// Dates are UTC midnight; salaries are annual, non-negative euro amounts.
type EmployeeProfile struct {
	Name            string          `yaml:"name,omitempty" json:"name,omitempty"`
	BirthDate       time.Time       `yaml:"birth_date" json:"birth_date"`
	HireDate        time.Time       `yaml:"hire_date" json:"hire_date"`
	TerminationDate time.Time       `yaml:"termination_date" json:"termination_date"`
	BaseSalary      decimal.Decimal `yaml:"base_salary" json:"base_salary"`
	Supplements     decimal.Decimal `yaml:"supplements" json:"supplements"`
}

// TotalSalaryWithSupplements returns base salary plus annual supplements
func (e *EmployeeProfile) TotalSalaryWithSupplements() decimal.Decimal {
	return e.BaseSalary.Add(e.Supplements)
}

// TotalSalaryWithoutSupplements returns the base salary only
func (e *EmployeeProfile) TotalSalaryWithoutSupplements() decimal.Decimal {
	return e.BaseSalary
}

// HasSupplements reports whether supplements are strictly positive
func (e *EmployeeProfile) HasSupplements() bool {
	return e.Supplements.IsPositive()
}

// Age calculates the employee's age in whole years on the termination date
func (e *EmployeeProfile) Age() int {
	return dateutil.Age(e.BirthDate, e.TerminationDate)
}

// TenureYears calculates years of service from hire to termination
func (e *EmployeeProfile) TenureYears() decimal.Decimal {
	return dateutil.TenureYears(e.HireDate, e.TerminationDate)
}

// RawInput is the unvalidated form data: three dd/mm/yyyy dates and two amounts as typed.
type RawInput struct {
	Name            string `yaml:"name,omitempty" json:"name,omitempty"`
	BirthDate       string `yaml:"birth_date" json:"birth_date"`
	HireDate        string `yaml:"hire_date" json:"hire_date"`
	TerminationDate string `yaml:"termination_date" json:"termination_date"`
	BaseSalary      string `yaml:"base_salary" json:"base_salary"`
	Supplements     string `yaml:"supplements" json:"supplements"`
}
