package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RetirementContributionKind discriminates how an employee's retirement
// funding input is expressed.
type RetirementContributionKind string

const (
	RetirementNone        RetirementContributionKind = ""
	RetirementPercentage  RetirementContributionKind = "percentage"
	RetirementFixedAmount RetirementContributionKind = "fixed"
)

// RetirementContribution is a tagged union: either a percentage of monthly
// salary or a fixed monthly amount, never both.
type RetirementContribution struct {
	Kind  RetirementContributionKind `yaml:"kind" json:"kind"`
	Value decimal.Decimal            `yaml:"value" json:"value"`
}

// RetirementPercentageOf expresses the contribution as a fraction of salary.
func RetirementPercentageOf(fraction decimal.Decimal) RetirementContribution {
	return RetirementContribution{Kind: RetirementPercentage, Value: fraction}
}

// RetirementFixed expresses the contribution as a fixed monthly amount.
func RetirementFixed(amount decimal.Decimal) RetirementContribution {
	return RetirementContribution{Kind: RetirementFixedAmount, Value: amount}
}

// MonthlyAmount resolves the contribution against a monthly salary.
func (rc RetirementContribution) MonthlyAmount(monthlySalary decimal.Decimal) decimal.Decimal {
	switch rc.Kind {
	case RetirementPercentage:
		return monthlySalary.Mul(rc.Value)
	case RetirementFixedAmount:
		return rc.Value
	default:
		return decimal.Zero
	}
}

func (rc RetirementContribution) validate() error {
	switch rc.Kind {
	case RetirementNone:
		if !rc.Value.IsZero() {
			return fmt.Errorf("retirement contribution value %s set without a kind", rc.Value)
		}
	case RetirementPercentage:
		if rc.Value.LessThan(decimal.Zero) || rc.Value.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("retirement contribution percentage must be between 0 and 1, got %s", rc.Value)
		}
	case RetirementFixedAmount:
		if rc.Value.LessThan(decimal.Zero) {
			return fmt.Errorf("retirement contribution amount cannot be negative: %s", rc.Value)
		}
	default:
		return fmt.Errorf("unknown retirement contribution kind %q", rc.Kind)
	}
	return nil
}

// Employee carries the facts needed to calculate one employee's payslip.
// Salary is monthly unless SalaryIsAnnual is set. Dependents counts medical
// aid dependants excluding the main member. HoursWorked, when present, drives
// part-time proration of the employment incentive.
type Employee struct {
	Name                string          `yaml:"name" json:"name"`
	Age                 int             `yaml:"age" json:"age"`
	Salary              decimal.Decimal `yaml:"salary" json:"salary"`
	SalaryIsAnnual      bool            `yaml:"salary_is_annual,omitempty" json:"salary_is_annual,omitempty"`
	MedicalAidMember    bool            `yaml:"medical_aid_member,omitempty" json:"medical_aid_member,omitempty"`
	Dependents          int             `yaml:"dependents,omitempty" json:"dependents,omitempty"`
	MedicalContribution decimal.Decimal `yaml:"medical_contribution,omitempty" json:"medical_contribution,omitempty"`

	Retirement                     RetirementContribution `yaml:"retirement,omitempty" json:"retirement,omitempty"`
	EmployerRetirementContribution decimal.Decimal        `yaml:"employer_retirement_contribution,omitempty" json:"employer_retirement_contribution,omitempty"`
	EmployerMedicalContribution    decimal.Decimal        `yaml:"employer_medical_contribution,omitempty" json:"employer_medical_contribution,omitempty"`
	OtherDeductions                decimal.Decimal        `yaml:"other_deductions,omitempty" json:"other_deductions,omitempty"`

	EmploymentMonths  int              `yaml:"employment_months,omitempty" json:"employment_months,omitempty"`
	FirstTimeEmployee bool             `yaml:"first_time_employee,omitempty" json:"first_time_employee,omitempty"`
	WorksInSEZ        bool             `yaml:"works_in_sez,omitempty" json:"works_in_sez,omitempty"`
	HoursWorked       *decimal.Decimal `yaml:"hours_worked,omitempty" json:"hours_worked,omitempty"`

	// AnnualPayroll is the employer's total annual payroll used for the levy
	// exemption test. Zero means "use this employee's annual salary".
	AnnualPayroll decimal.Decimal `yaml:"annual_payroll,omitempty" json:"annual_payroll,omitempty"`
}

// MonthlySalary normalizes the salary to a monthly figure.
func (e *Employee) MonthlySalary() decimal.Decimal {
	if e.SalaryIsAnnual {
		return e.Salary.Div(decimal.NewFromInt(12))
	}
	return e.Salary
}

// AnnualSalary normalizes the salary to an annual figure.
func (e *Employee) AnnualSalary() decimal.Decimal {
	if e.SalaryIsAnnual {
		return e.Salary
	}
	return e.Salary.Mul(decimal.NewFromInt(12))
}

// MedicalAidMembers is the number of covered members including the main
// member, or zero when the employee has no cover.
func (e *Employee) MedicalAidMembers() int {
	if !e.MedicalAidMember {
		return 0
	}
	return 1 + e.Dependents
}

// Validate checks the employee facts for malformed input. Business
// ineligibility (incentive gates) is not validated here; those are normal
// calculation outcomes.
func (e *Employee) Validate() error {
	if e.Age < 0 || e.Age > 150 {
		return fmt.Errorf("age must be between 0 and 150, got %d", e.Age)
	}
	if e.Salary.LessThan(decimal.Zero) {
		return fmt.Errorf("salary cannot be negative: %s", e.Salary)
	}
	if e.Dependents < 0 {
		return fmt.Errorf("dependent count cannot be negative: %d", e.Dependents)
	}
	if e.EmploymentMonths < 0 {
		return fmt.Errorf("employment month count cannot be negative: %d", e.EmploymentMonths)
	}
	if e.MedicalContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("medical contribution cannot be negative: %s", e.MedicalContribution)
	}
	if e.EmployerMedicalContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("employer medical contribution cannot be negative: %s", e.EmployerMedicalContribution)
	}
	if e.EmployerRetirementContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("employer retirement contribution cannot be negative: %s", e.EmployerRetirementContribution)
	}
	if e.OtherDeductions.LessThan(decimal.Zero) {
		return fmt.Errorf("other deductions cannot be negative: %s", e.OtherDeductions)
	}
	if e.HoursWorked != nil && e.HoursWorked.LessThan(decimal.Zero) {
		return fmt.Errorf("hours worked cannot be negative: %s", e.HoursWorked)
	}
	if e.AnnualPayroll.LessThan(decimal.Zero) {
		return fmt.Errorf("annual payroll cannot be negative: %s", e.AnnualPayroll)
	}
	if err := e.Retirement.validate(); err != nil {
		return err
	}
	return nil
}

// PayrollInput is a batch of employees to run against one tax year, typically
// loaded from a YAML file.
type PayrollInput struct {
	TaxYear int `yaml:"tax_year" json:"tax_year"`
	// CompanyAnnualPayroll, when set, is applied to every employee that does
	// not carry its own payroll figure.
	CompanyAnnualPayroll decimal.Decimal `yaml:"company_annual_payroll,omitempty" json:"company_annual_payroll,omitempty"`
	Employees            []Employee      `yaml:"employees" json:"employees"`
}
