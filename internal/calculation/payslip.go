package calculation

import (
	"fmt"
	"sync"

	"github.com/JacquesBronk/satax/internal/domain"
	"github.com/shopspring/decimal"
)

// PayslipCalculator orchestrates the four statutory engines over one tax year
// configuration and composes their results into payslips.
type PayslipCalculator struct {
	cfg  *domain.TaxYearConfiguration
	paye *PayeCalculator
	uif  *UifCalculator
	sdl  *SdlCalculator
	eti  *EtiCalculator
}

// NewPayslipCalculator creates a payslip calculator for a tax year. The
// configuration is shared by reference and never mutated.
func NewPayslipCalculator(cfg *domain.TaxYearConfiguration) *PayslipCalculator {
	return &PayslipCalculator{
		cfg:  cfg,
		paye: NewPayeCalculator(cfg),
		uif:  NewUifCalculator(cfg.UIF),
		sdl:  NewSdlCalculator(cfg.SDL),
		eti:  NewEtiCalculator(cfg.ETI),
	}
}

// CalculatePayslip runs the engines for one employee and derives the monthly
// gross-to-net and cost-to-company totals. The medical aid credit reduces
// PAYE inside the tax calculation and is not subtracted again here.
func (pc *PayslipCalculator) CalculatePayslip(e *domain.Employee) (*domain.Payslip, error) {
	if e == nil {
		return nil, fmt.Errorf("employee record is required")
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("employee %q: %w", e.Name, err)
	}

	monthlyGross := e.MonthlySalary()
	annualGross := e.AnnualSalary()
	twelve := decimal.NewFromInt(12)

	monthlyRetirement := e.Retirement.MonthlyAmount(monthlyGross)
	annualRetirement := monthlyRetirement.Mul(twelve)

	paye, err := pc.paye.CalculateWithRetirement(annualGross, annualRetirement, e.Age, e.MedicalAidMembers())
	if err != nil {
		return nil, fmt.Errorf("employee %q: paye: %w", e.Name, err)
	}

	uif, err := pc.uif.CalculateMonthly(monthlyGross)
	if err != nil {
		return nil, fmt.Errorf("employee %q: uif: %w", e.Name, err)
	}

	payroll := e.AnnualPayroll
	if payroll.IsZero() {
		payroll = annualGross
	}
	sdl, err := pc.sdl.Calculate(monthlyGross, payroll)
	if err != nil {
		return nil, fmt.Errorf("employee %q: sdl: %w", e.Name, err)
	}

	eti, err := pc.eti.Calculate(e)
	if err != nil {
		return nil, fmt.Errorf("employee %q: eti: %w", e.Name, err)
	}

	deductions := paye.MonthlyTax.
		Add(uif.EmployeeAmount).
		Add(monthlyRetirement).
		Add(e.MedicalContribution).
		Add(e.OtherDeductions)

	employer := uif.EmployerAmount.
		Add(sdl.Amount).
		Add(e.EmployerRetirementContribution).
		Add(e.EmployerMedicalContribution)

	netIncentiveAdjusted := paye.MonthlyTax.Sub(eti.MonthlyAmount)
	if netIncentiveAdjusted.LessThan(decimal.Zero) {
		netIncentiveAdjusted = decimal.Zero
	}

	return &domain.Payslip{
		EmployeeName: e.Name,
		TaxYear:      pc.cfg.Year,
		MonthlyGross: monthlyGross,
		AnnualGross:  annualGross,
		PAYE:         paye,
		UIF:          uif,
		SDL:          sdl,
		ETI:          eti,

		RetirementContribution: monthlyRetirement,
		MedicalContribution:    e.MedicalContribution,
		OtherDeductions:        e.OtherDeductions,

		TotalDeductions:            deductions,
		TotalEmployerContributions: employer,
		NetPay:                     monthlyGross.Sub(deductions),
		CostToCompany:              monthlyGross.Add(employer),
		NetPayeAfterIncentive:      netIncentiveAdjusted,
	}, nil
}

// CalculateBatch computes payslips for every employee and a run summary.
// Employees are independent, so the batch fans out across goroutines; results
// are written by input index and returned in input order. A single failing
// employee fails the whole batch.
func (pc *PayslipCalculator) CalculateBatch(employees []*domain.Employee) ([]*domain.Payslip, *domain.PayrollRunSummary, error) {
	payslips := make([]*domain.Payslip, len(employees))
	errs := make([]error, len(employees))

	var wg sync.WaitGroup
	for i, e := range employees {
		wg.Add(1)
		go func(i int, e *domain.Employee) {
			defer wg.Done()
			payslips[i], errs[i] = pc.CalculatePayslip(e)
		}(i, e)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, nil, fmt.Errorf("batch employee %d: %w", i, err)
		}
	}

	summary := &domain.PayrollRunSummary{
		TaxYear:       pc.cfg.Year,
		EmployeeCount: len(payslips),
	}
	for _, p := range payslips {
		summary.TotalMonthlyGross = summary.TotalMonthlyGross.Add(p.MonthlyGross)
		summary.TotalPAYE = summary.TotalPAYE.Add(p.PAYE.MonthlyTax)
		summary.TotalUIFEmployee = summary.TotalUIFEmployee.Add(p.UIF.EmployeeAmount)
		summary.TotalUIFEmployer = summary.TotalUIFEmployer.Add(p.UIF.EmployerAmount)
		summary.TotalSDL = summary.TotalSDL.Add(p.SDL.Amount)
		summary.TotalETI = summary.TotalETI.Add(p.ETI.MonthlyAmount)
		if p.ETI.Eligible {
			summary.EligibleEtiCount++
		}
		summary.TotalDeductions = summary.TotalDeductions.Add(p.TotalDeductions)
		summary.TotalEmployerContributions = summary.TotalEmployerContributions.Add(p.TotalEmployerContributions)
		summary.TotalNetPay = summary.TotalNetPay.Add(p.NetPay)
		summary.TotalCostToCompany = summary.TotalCostToCompany.Add(p.CostToCompany)
		summary.TotalNetPayeAfterIncentive = summary.TotalNetPayeAfterIncentive.Add(p.NetPayeAfterIncentive)
	}

	return payslips, summary, nil
}
