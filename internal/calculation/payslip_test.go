package calculation

import (
	"fmt"
	"testing"

	"github.com/JacquesBronk/satax/internal/domain"
	"github.com/JacquesBronk/satax/internal/taxyears"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payslipCalculatorForYear(t *testing.T, year int) *PayslipCalculator {
	t.Helper()
	cfg, err := taxyears.ForYear(year)
	require.NoError(t, err)
	return NewPayslipCalculator(cfg)
}

func TestPayslipCalculator_SimpleEmployee(t *testing.T) {
	calc := payslipCalculatorForYear(t, 2024)

	payslip, err := calc.CalculatePayslip(&domain.Employee{
		Name:   "Sipho Dlamini",
		Age:    30,
		Salary: decimal.NewFromInt(20000),
	})
	require.NoError(t, err)

	assert.True(t, payslip.MonthlyGross.Equal(decimal.NewFromInt(20000)))
	assert.True(t, payslip.AnnualGross.Equal(decimal.NewFromInt(240000)))

	// 240000 -> 42678 + 26% x 2899 - 17235 = 26196.74 annually.
	assert.True(t, payslip.PAYE.MonthlyTax.Equal(decimal.RequireFromString("2183.06")),
		"paye: got %s", payslip.PAYE.MonthlyTax)
	assert.True(t, payslip.UIF.EmployeeAmount.Equal(decimal.RequireFromString("177.12")))
	assert.True(t, payslip.UIF.CeilingApplied)

	// No payroll figure on the record, so the levy test runs on the annual
	// salary, which is under the exemption threshold.
	assert.True(t, payslip.SDL.Exempt)
	assert.True(t, payslip.SDL.Amount.IsZero())

	assert.False(t, payslip.ETI.Eligible)

	assert.True(t, payslip.TotalDeductions.Equal(decimal.RequireFromString("2360.18")),
		"deductions: got %s", payslip.TotalDeductions)
	assert.True(t, payslip.NetPay.Equal(decimal.RequireFromString("17639.82")),
		"net pay: got %s", payslip.NetPay)
	assert.True(t, payslip.TotalEmployerContributions.Equal(decimal.RequireFromString("177.12")))
	assert.True(t, payslip.CostToCompany.Equal(decimal.RequireFromString("20177.12")),
		"cost to company: got %s", payslip.CostToCompany)
	assert.True(t, payslip.NetPayeAfterIncentive.Equal(payslip.PAYE.MonthlyTax))
}

func TestPayslipCalculator_AnnualSalaryNormalization(t *testing.T) {
	calc := payslipCalculatorForYear(t, 2024)

	fromAnnual, err := calc.CalculatePayslip(&domain.Employee{
		Name:           "a",
		Age:            30,
		Salary:         decimal.NewFromInt(240000),
		SalaryIsAnnual: true,
	})
	require.NoError(t, err)

	fromMonthly, err := calc.CalculatePayslip(&domain.Employee{
		Name:   "b",
		Age:    30,
		Salary: decimal.NewFromInt(20000),
	})
	require.NoError(t, err)

	assert.True(t, fromAnnual.MonthlyGross.Equal(fromMonthly.MonthlyGross))
	assert.True(t, fromAnnual.NetPay.Equal(fromMonthly.NetPay))
	assert.True(t, fromAnnual.CostToCompany.Equal(fromMonthly.CostToCompany))
}

func TestPayslipCalculator_RetirementPercentage(t *testing.T) {
	calc := payslipCalculatorForYear(t, 2024)

	payslip, err := calc.CalculatePayslip(&domain.Employee{
		Name:       "Thandi Nkosi",
		Age:        40,
		Salary:     decimal.NewFromInt(30000),
		Retirement: domain.RetirementPercentageOf(decimal.RequireFromString("0.05")),
	})
	require.NoError(t, err)

	// 5% of 30000 = 1500/month, 18000/year, fully deductible.
	assert.True(t, payslip.RetirementContribution.Equal(decimal.NewFromInt(1500)))
	assert.True(t, payslip.PAYE.RetirementDeduction.Equal(decimal.NewFromInt(18000)))
	// Taxable 342000 -> 69951.74 - 17235 = 52716.74 -> 4393.06/month.
	assert.True(t, payslip.PAYE.MonthlyTax.Equal(decimal.RequireFromString("4393.06")),
		"paye: got %s", payslip.PAYE.MonthlyTax)

	// 4393.06 + 177.12 + 1500
	assert.True(t, payslip.TotalDeductions.Equal(decimal.RequireFromString("6070.18")),
		"deductions: got %s", payslip.TotalDeductions)
	assert.True(t, payslip.NetPay.Equal(decimal.RequireFromString("23929.82")))
}

func TestPayslipCalculator_IncentiveOffsetsPaye(t *testing.T) {
	calc := payslipCalculatorForYear(t, 2024)

	payslip, err := calc.CalculatePayslip(&domain.Employee{
		Name:              "Lerato Mokoena",
		Age:               22,
		Salary:            decimal.NewFromInt(4000),
		FirstTimeEmployee: true,
		EmploymentMonths:  3,
	})
	require.NoError(t, err)

	// Annual 48000 is below the under-65 threshold: no PAYE at all.
	assert.True(t, payslip.PAYE.MonthlyTax.IsZero())
	assert.True(t, payslip.ETI.Eligible)
	assert.True(t, payslip.ETI.MonthlyAmount.Equal(decimal.NewFromInt(1500)))
	// The incentive never drives the remittance below zero.
	assert.True(t, payslip.NetPayeAfterIncentive.IsZero())
}

func TestPayslipCalculator_SdlOnCompanyPayroll(t *testing.T) {
	calc := payslipCalculatorForYear(t, 2024)

	payslip, err := calc.CalculatePayslip(&domain.Employee{
		Name:          "Anele Khumalo",
		Age:           35,
		Salary:        decimal.NewFromInt(20000),
		AnnualPayroll: decimal.NewFromInt(600000),
	})
	require.NoError(t, err)

	assert.False(t, payslip.SDL.Exempt)
	assert.True(t, payslip.SDL.Amount.Equal(decimal.NewFromInt(200)),
		"sdl: got %s", payslip.SDL.Amount)
	// UIF employer 177.12 + SDL 200.
	assert.True(t, payslip.TotalEmployerContributions.Equal(decimal.RequireFromString("377.12")))
}

func TestPayslipCalculator_MedicalCreditNotDoubleCounted(t *testing.T) {
	calc := payslipCalculatorForYear(t, 2024)

	payslip, err := calc.CalculatePayslip(&domain.Employee{
		Name:                "Pieter van Wyk",
		Age:                 45,
		Salary:              decimal.NewFromInt(30000),
		MedicalAidMember:    true,
		Dependents:          2,
		MedicalContribution: decimal.NewFromInt(2500),
	})
	require.NoError(t, err)

	// Credit reduces PAYE inside the tax calculation only.
	assert.True(t, payslip.PAYE.MedicalAidCredit.Equal(decimal.NewFromInt(11688)),
		"credit: got %s", payslip.PAYE.MedicalAidCredit)
	// The premium itself is a deduction at face value.
	expected := payslip.PAYE.MonthlyTax.
		Add(payslip.UIF.EmployeeAmount).
		Add(decimal.NewFromInt(2500))
	assert.True(t, payslip.TotalDeductions.Equal(expected),
		"deductions: got %s, want %s", payslip.TotalDeductions, expected)
}

func TestPayslipCalculator_ValidationFailures(t *testing.T) {
	calc := payslipCalculatorForYear(t, 2024)

	tests := []struct {
		name     string
		employee *domain.Employee
		wantErr  string
	}{
		{"nil employee", nil, "employee record is required"},
		{
			"negative salary",
			&domain.Employee{Name: "x", Age: 30, Salary: decimal.NewFromInt(-1)},
			"salary cannot be negative",
		},
		{
			"age out of range",
			&domain.Employee{Name: "x", Age: 151, Salary: decimal.NewFromInt(10000)},
			"age must be between",
		},
		{
			"negative dependents",
			&domain.Employee{Name: "x", Age: 30, Salary: decimal.NewFromInt(10000), Dependents: -1},
			"dependent count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.CalculatePayslip(tt.employee)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPayslipCalculator_CalculateBatch(t *testing.T) {
	calc := payslipCalculatorForYear(t, 2024)

	employees := make([]*domain.Employee, 40)
	for i := range employees {
		employees[i] = &domain.Employee{
			Name:   fmt.Sprintf("employee-%02d", i),
			Age:    25 + i%30,
			Salary: decimal.NewFromInt(int64(8000 + 500*i)),
		}
	}

	payslips, summary, err := calc.CalculateBatch(employees)
	require.NoError(t, err)
	require.Len(t, payslips, 40)

	// Results come back in input order regardless of scheduling.
	for i, p := range payslips {
		assert.Equal(t, employees[i].Name, p.EmployeeName)
	}

	assert.Equal(t, 40, summary.EmployeeCount)

	totalNet := decimal.Zero
	totalGross := decimal.Zero
	for _, p := range payslips {
		totalNet = totalNet.Add(p.NetPay)
		totalGross = totalGross.Add(p.MonthlyGross)
	}
	assert.True(t, summary.TotalNetPay.Equal(totalNet))
	assert.True(t, summary.TotalMonthlyGross.Equal(totalGross))
}

func TestPayslipCalculator_BatchFailsOnBadEmployee(t *testing.T) {
	calc := payslipCalculatorForYear(t, 2024)

	employees := []*domain.Employee{
		{Name: "good", Age: 30, Salary: decimal.NewFromInt(10000)},
		{Name: "bad", Age: 30, Salary: decimal.NewFromInt(-10000)},
	}

	_, _, err := calc.CalculateBatch(employees)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch employee 1")
	assert.Contains(t, err.Error(), "salary cannot be negative")
}

func TestPayslipCalculator_Deterministic(t *testing.T) {
	calc := payslipCalculatorForYear(t, 2024)

	employee := &domain.Employee{
		Name:             "repeatable",
		Age:              33,
		Salary:           decimal.RequireFromString("23456.78"),
		MedicalAidMember: true,
		Dependents:       1,
		Retirement:       domain.RetirementFixed(decimal.NewFromInt(2000)),
	}

	first, err := calc.CalculatePayslip(employee)
	require.NoError(t, err)
	second, err := calc.CalculatePayslip(employee)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
