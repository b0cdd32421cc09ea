package calculation

import (
	"fmt"

	"github.com/JacquesBronk/satax/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// fullTimeMonthlyHours is the baseline below which the incentive is
	// prorated by actual hours worked.
	fullTimeMonthlyHours = 160
	// maxMonthlyHours caps a supplied hours figure at 31 days x 24 hours.
	maxMonthlyHours = 744
	// incentiveExpiryMonths ends the incentive for non first-time employees.
	incentiveExpiryMonths = 24
	// firstYearMonths splits the year-one and year-two incentive rates.
	firstYearMonths = 12
)

// EtiCalculator computes the employment tax incentive. Failing an eligibility
// gate is a normal outcome carrying a zero amount and a reason, not an error;
// the only error is a missing employee record.
type EtiCalculator struct {
	cfg domain.EtiConfig
}

// NewEtiCalculator creates an incentive calculator from a year's rules.
func NewEtiCalculator(cfg domain.EtiConfig) *EtiCalculator {
	return &EtiCalculator{cfg: cfg}
}

// Calculate evaluates the eligibility gates in statutory order (first failing
// gate wins) and, for a qualifying employee, the banded amount. The result is
// truncated to a whole rand, not rounded.
func (ec *EtiCalculator) Calculate(e *domain.Employee) (domain.EtiResult, error) {
	if e == nil {
		return domain.EtiResult{}, fmt.Errorf("employee record is required")
	}

	salary := e.MonthlySalary()

	// Employees in a special economic zone bypass the age gate entirely.
	if !e.WorksInSEZ && (e.Age < ec.cfg.MinAge || e.Age > ec.cfg.MaxAge) {
		return ineligible(domain.EtiReasonAgeOutOfRange), nil
	}
	if salary.GreaterThan(ec.cfg.MaxQualifyingSalary) {
		return ineligible(domain.EtiReasonSalaryAboveMaximum), nil
	}
	if !e.FirstTimeEmployee && e.EmploymentMonths >= incentiveExpiryMonths {
		return ineligible(domain.EtiReasonPeriodExpired), nil
	}

	band, ok := ec.bandFor(salary)
	if !ok {
		return ineligible(domain.EtiReasonNoQualifyingBand), nil
	}

	amount := ec.bandAmount(band, salary, e.EmploymentMonths)

	if e.HoursWorked != nil {
		hours := decimal.Min(*e.HoursWorked, decimal.NewFromInt(maxMonthlyHours))
		baseline := decimal.NewFromInt(fullTimeMonthlyHours)
		if hours.LessThan(baseline) {
			amount = amount.Mul(hours).Div(baseline)
		}
	}

	return domain.EtiResult{Eligible: true, MonthlyAmount: TruncateToRand(amount)}, nil
}

// CalculateBatch evaluates each employee in input order and aggregates the
// eligible count and total incentive.
func (ec *EtiCalculator) CalculateBatch(employees []*domain.Employee) ([]domain.EtiResult, domain.EtiBatchSummary, error) {
	results := make([]domain.EtiResult, len(employees))
	summary := domain.EtiBatchSummary{EmployeeCount: len(employees), TotalAmount: decimal.Zero}
	for i, e := range employees {
		result, err := ec.Calculate(e)
		if err != nil {
			return nil, domain.EtiBatchSummary{}, fmt.Errorf("employee %d: %w", i, err)
		}
		results[i] = result
		if result.Eligible {
			summary.EligibleCount++
			summary.TotalAmount = summary.TotalAmount.Add(result.MonthlyAmount)
		}
	}
	return results, summary, nil
}

// bandFor finds the first band containing the salary, both ends inclusive.
func (ec *EtiCalculator) bandFor(salary decimal.Decimal) (domain.EtiBand, bool) {
	for _, b := range ec.cfg.Bands {
		if b.Contains(salary) {
			return b, true
		}
	}
	return domain.EtiBand{}, false
}

// bandAmount resolves a band to a monthly amount before proration. The year
// one rate applies for the first twelve employment months, the year two rate
// afterwards. A percentage based band pays a fraction of salary capped at the
// band amount; a band with a reduction rate tapers linearly from the band
// floor and never goes below zero.
func (ec *EtiCalculator) bandAmount(band domain.EtiBand, salary decimal.Decimal, employmentMonths int) decimal.Decimal {
	base := band.FirstYearAmount
	percentage := ec.cfg.FirstYearPercentage
	if employmentMonths >= firstYearMonths {
		base = band.SecondYearAmount
		percentage = ec.cfg.SecondYearPercentage
	}

	switch {
	case band.PercentageBased:
		return decimal.Min(salary.Mul(percentage), base)
	case band.ReductionRate != nil:
		reduced := base.Sub(salary.Sub(band.MinSalary).Mul(*band.ReductionRate))
		if reduced.LessThan(decimal.Zero) {
			return decimal.Zero
		}
		return reduced
	default:
		return base
	}
}

func ineligible(reason string) domain.EtiResult {
	return domain.EtiResult{Eligible: false, Reason: reason, MonthlyAmount: decimal.Zero}
}
