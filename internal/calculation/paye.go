package calculation

import (
	"fmt"

	"github.com/JacquesBronk/satax/internal/domain"
	"github.com/shopspring/decimal"
)

// PayeCalculator computes annual and monthly PAYE liability from a year's
// bracket, rebate, threshold and medical credit tables.
type PayeCalculator struct {
	cfg *domain.TaxYearConfiguration
}

// NewPayeCalculator creates a PAYE calculator over a tax year configuration.
func NewPayeCalculator(cfg *domain.TaxYearConfiguration) *PayeCalculator {
	return &PayeCalculator{cfg: cfg}
}

// Calculate computes the PAYE liability for an annual taxable income.
// medicalMembers is the number of medical aid members including the main
// member; zero means no cover and no credit.
//
// The monthly figure is the cent-rounded annual liability divided by twelve
// and rounded again, never a separate per-month computation; twelve monthly
// amounts may therefore differ from the annual figure by a few cents.
func (pc *PayeCalculator) Calculate(annualIncome decimal.Decimal, age int, medicalMembers int) (domain.PayeResult, error) {
	if annualIncome.LessThan(decimal.Zero) {
		return domain.PayeResult{}, fmt.Errorf("annual taxable income cannot be negative: %s", annualIncome)
	}
	if age < 0 || age > 150 {
		return domain.PayeResult{}, fmt.Errorf("age must be between 0 and 150, got %d", age)
	}
	if medicalMembers < 0 {
		return domain.PayeResult{}, fmt.Errorf("medical aid member count cannot be negative: %d", medicalMembers)
	}

	gross := pc.grossTax(annualIncome)
	rebates := pc.totalRebates(age)
	credit := pc.cfg.MedicalAidCredit.AnnualCredit(medicalMembers)

	net := gross.Sub(rebates).Sub(credit)
	if net.LessThan(decimal.Zero) {
		net = decimal.Zero
	}

	// The age threshold is authoritative: at or below it no tax is owed,
	// whatever the bracket arithmetic produced.
	belowThreshold := false
	if threshold, ok := pc.thresholdFor(age); ok && annualIncome.LessThanOrEqual(threshold.Amount) {
		net = decimal.Zero
		belowThreshold = true
	}

	annual := RoundToCent(net)
	monthly := RoundToCent(annual.Div(decimal.NewFromInt(12)))

	return domain.PayeResult{
		TaxYear:             pc.cfg.Year,
		AnnualTaxableIncome: annualIncome,
		GrossAnnualTax:      RoundToCent(gross),
		TotalRebates:        rebates,
		MedicalAidCredit:    credit,
		AnnualTax:           annual,
		MonthlyTax:          monthly,
		BelowTaxThreshold:   belowThreshold,
	}, nil
}

// CalculateWithRetirement deducts the allowable retirement contribution from
// taxable income before the standard calculation. The deduction is capped at
// the lesser of the configured percentage of income and the annual cap.
func (pc *PayeCalculator) CalculateWithRetirement(annualIncome, annualRetirementContribution decimal.Decimal, age int, medicalMembers int) (domain.PayeResult, error) {
	if annualRetirementContribution.LessThan(decimal.Zero) {
		return domain.PayeResult{}, fmt.Errorf("retirement contribution cannot be negative: %s", annualRetirementContribution)
	}
	if annualIncome.LessThan(decimal.Zero) {
		return domain.PayeResult{}, fmt.Errorf("annual taxable income cannot be negative: %s", annualIncome)
	}

	limits := pc.cfg.RetirementLimits
	allowed := decimal.Min(annualIncome.Mul(limits.MaxPercentageOfIncome), limits.AnnualCap)
	deduction := decimal.Min(annualRetirementContribution, allowed)

	result, err := pc.Calculate(annualIncome.Sub(deduction), age, medicalMembers)
	if err != nil {
		return domain.PayeResult{}, err
	}
	result.RetirementDeduction = deduction
	result.AnnualTaxableIncome = annualIncome
	return result, nil
}

// grossTax evaluates the progressive table. The containing bracket's base tax
// already accumulates the tax of every lower bracket, so only that bracket is
// applied: base + rate x (income - min), with the taxed slice clamped to the
// bracket width.
func (pc *PayeCalculator) grossTax(income decimal.Decimal) decimal.Decimal {
	bracket := pc.cfg.Brackets[0]
	for _, b := range pc.cfg.Brackets {
		if income.GreaterThanOrEqual(b.Min) {
			bracket = b
			continue
		}
		break
	}

	slice := income.Sub(bracket.Min)
	if bracket.Max != nil {
		slice = decimal.Min(slice, bracket.Max.Sub(bracket.Min))
	}
	if slice.LessThan(decimal.Zero) {
		slice = decimal.Zero
	}
	return bracket.BaseTax.Add(slice.Mul(bracket.Rate))
}

func (pc *PayeCalculator) totalRebates(age int) decimal.Decimal {
	total := decimal.Zero
	for _, r := range pc.cfg.Rebates {
		if r.AppliesTo(age) {
			total = total.Add(r.Amount)
		}
	}
	return total
}

func (pc *PayeCalculator) thresholdFor(age int) (domain.TaxThreshold, bool) {
	for _, t := range pc.cfg.Thresholds {
		if t.AppliesTo(age) {
			return t, true
		}
	}
	return domain.TaxThreshold{}, false
}
