package calculation

import (
	"fmt"

	"github.com/JacquesBronk/satax/internal/domain"
	"github.com/shopspring/decimal"
)

// SdlCalculator computes the employer-only skills development levy.
type SdlCalculator struct {
	cfg domain.SdlConfig
}

// NewSdlCalculator creates an SDL calculator from a year's levy rules.
func NewSdlCalculator(cfg domain.SdlConfig) *SdlCalculator {
	return &SdlCalculator{cfg: cfg}
}

// Calculate computes the levy on an income figure. The exemption is decided
// against the employer's annual payroll: a payroll at or below the threshold
// owes nothing (the threshold itself is in the exempt range).
func (sc *SdlCalculator) Calculate(income, annualPayroll decimal.Decimal) (domain.SdlResult, error) {
	if income.LessThan(decimal.Zero) {
		return domain.SdlResult{}, fmt.Errorf("income cannot be negative: %s", income)
	}
	if annualPayroll.LessThan(decimal.Zero) {
		return domain.SdlResult{}, fmt.Errorf("annual payroll cannot be negative: %s", annualPayroll)
	}
	if annualPayroll.LessThanOrEqual(sc.cfg.ExemptionThreshold) {
		return domain.SdlResult{Amount: decimal.Zero, Exempt: true}, nil
	}
	return domain.SdlResult{Amount: RoundToCent(income.Mul(sc.cfg.Rate))}, nil
}

// CalculateAnnual computes the levy on an annual payroll figure, which is
// both the levy base and the exemption test figure.
func (sc *SdlCalculator) CalculateAnnual(annualPayroll decimal.Decimal) (domain.SdlResult, error) {
	return sc.Calculate(annualPayroll, annualPayroll)
}

// CalculateBulk decides the exemption once against the aggregate payroll and
// reports the levy per employee in input order plus the total.
func (sc *SdlCalculator) CalculateBulk(annualSalaries []decimal.Decimal) (domain.SdlBatchResult, error) {
	total := decimal.Zero
	for i, s := range annualSalaries {
		if s.LessThan(decimal.Zero) {
			return domain.SdlBatchResult{}, fmt.Errorf("annual salary at index %d cannot be negative: %s", i, s)
		}
		total = total.Add(s)
	}

	result := domain.SdlBatchResult{
		TotalPayroll: total,
		PerEmployee:  make([]decimal.Decimal, len(annualSalaries)),
	}
	if total.LessThanOrEqual(sc.cfg.ExemptionThreshold) {
		result.Exempt = true
		for i := range result.PerEmployee {
			result.PerEmployee[i] = decimal.Zero
		}
		result.Total = decimal.Zero
		return result, nil
	}

	for i, s := range annualSalaries {
		amount := RoundToCent(s.Mul(sc.cfg.Rate))
		result.PerEmployee[i] = amount
		result.Total = result.Total.Add(amount)
	}
	return result, nil
}
