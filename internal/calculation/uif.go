package calculation

import (
	"fmt"

	"github.com/JacquesBronk/satax/internal/domain"
	"github.com/shopspring/decimal"
)

// UifCalculator computes unemployment insurance contributions. Employee and
// employer amounts are rounded independently, never derived from half of a
// combined total.
type UifCalculator struct {
	cfg domain.UifConfig
}

// NewUifCalculator creates a UIF calculator from a year's contribution rules.
func NewUifCalculator(cfg domain.UifConfig) *UifCalculator {
	return &UifCalculator{cfg: cfg}
}

// CalculateMonthly computes both contribution halves on a monthly salary. The
// ceiling flag is raised only when the salary strictly exceeds the ceiling.
func (uc *UifCalculator) CalculateMonthly(monthlySalary decimal.Decimal) (domain.UifResult, error) {
	if monthlySalary.LessThan(decimal.Zero) {
		return domain.UifResult{}, fmt.Errorf("monthly salary cannot be negative: %s", monthlySalary)
	}
	return uc.calculate(monthlySalary, uc.cfg.MonthlyCeiling), nil
}

// CalculateAnnual is CalculateMonthly against the annual ceiling.
func (uc *UifCalculator) CalculateAnnual(annualSalary decimal.Decimal) (domain.UifResult, error) {
	if annualSalary.LessThan(decimal.Zero) {
		return domain.UifResult{}, fmt.Errorf("annual salary cannot be negative: %s", annualSalary)
	}
	return uc.calculate(annualSalary, uc.cfg.AnnualCeiling()), nil
}

func (uc *UifCalculator) calculate(salary, ceiling decimal.Decimal) domain.UifResult {
	base := decimal.Min(salary, ceiling)
	return domain.UifResult{
		ContributionBase: base,
		EmployeeAmount:   RoundToCent(base.Mul(uc.cfg.EmployeeRate)),
		EmployerAmount:   RoundToCent(base.Mul(uc.cfg.EmployerRate)),
		CeilingApplied:   salary.GreaterThan(ceiling),
	}
}
