package domain

import "github.com/shopspring/decimal"

// PayeResult is the outcome of one income tax calculation. Values are final,
// cent-rounded amounts; the result is never mutated after construction.
type PayeResult struct {
	TaxYear                int             `json:"tax_year" yaml:"tax_year"`
	AnnualTaxableIncome    decimal.Decimal `json:"annual_taxable_income" yaml:"annual_taxable_income"`
	RetirementDeduction    decimal.Decimal `json:"retirement_deduction" yaml:"retirement_deduction"`
	GrossAnnualTax         decimal.Decimal `json:"gross_annual_tax" yaml:"gross_annual_tax"`
	TotalRebates           decimal.Decimal `json:"total_rebates" yaml:"total_rebates"`
	MedicalAidCredit       decimal.Decimal `json:"medical_aid_credit" yaml:"medical_aid_credit"`
	AnnualTax              decimal.Decimal `json:"annual_tax" yaml:"annual_tax"`
	MonthlyTax             decimal.Decimal `json:"monthly_tax" yaml:"monthly_tax"`
	BelowTaxThreshold      bool            `json:"below_tax_threshold" yaml:"below_tax_threshold"`
}

// UifResult carries both halves of an unemployment insurance contribution,
// each rounded independently. CeilingApplied is true only when the salary
// strictly exceeded the ceiling.
type UifResult struct {
	ContributionBase decimal.Decimal `json:"contribution_base" yaml:"contribution_base"`
	EmployeeAmount   decimal.Decimal `json:"employee_amount" yaml:"employee_amount"`
	EmployerAmount   decimal.Decimal `json:"employer_amount" yaml:"employer_amount"`
	CeilingApplied   bool            `json:"ceiling_applied" yaml:"ceiling_applied"`
}

// Total is the combined employee and employer contribution.
func (u UifResult) Total() decimal.Decimal {
	return u.EmployeeAmount.Add(u.EmployerAmount)
}

// SdlResult is a skills development levy outcome for one income figure.
type SdlResult struct {
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
	Exempt bool            `json:"exempt" yaml:"exempt"`
}

// SdlBatchResult is the bulk levy outcome across an employer's payroll. The
// exemption is decided once against the aggregate payroll; per-employee
// amounts are listed in input order.
type SdlBatchResult struct {
	TotalPayroll decimal.Decimal   `json:"total_payroll" yaml:"total_payroll"`
	Exempt       bool              `json:"exempt" yaml:"exempt"`
	PerEmployee  []decimal.Decimal `json:"per_employee" yaml:"per_employee"`
	Total        decimal.Decimal   `json:"total" yaml:"total"`
}

// Machine-checkable reasons for an employment incentive ineligibility
// outcome. An ineligible employee is a valid, fully computed result with a
// zero amount, not an error.
const (
	EtiReasonAgeOutOfRange      = "age out of range"
	EtiReasonSalaryAboveMaximum = "salary above maximum"
	EtiReasonPeriodExpired      = "incentive period expired"
	EtiReasonNoQualifyingBand   = "no qualifying band"
)

// EtiResult is an employment tax incentive outcome. MonthlyAmount is a whole
// rand figure, truncated toward zero. Reason is empty when Eligible is true.
type EtiResult struct {
	Eligible      bool            `json:"eligible" yaml:"eligible"`
	Reason        string          `json:"reason,omitempty" yaml:"reason,omitempty"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount" yaml:"monthly_amount"`
}

// EtiBatchSummary aggregates an incentive batch run.
type EtiBatchSummary struct {
	EmployeeCount int             `json:"employee_count" yaml:"employee_count"`
	EligibleCount int             `json:"eligible_count" yaml:"eligible_count"`
	TotalAmount   decimal.Decimal `json:"total_amount" yaml:"total_amount"`
}

// Payslip composes the four engine results for one employee into the monthly
// gross-to-net and cost-to-company view.
type Payslip struct {
	EmployeeName string `json:"employee_name" yaml:"employee_name"`
	TaxYear      int    `json:"tax_year" yaml:"tax_year"`

	MonthlyGross decimal.Decimal `json:"monthly_gross" yaml:"monthly_gross"`
	AnnualGross  decimal.Decimal `json:"annual_gross" yaml:"annual_gross"`

	PAYE PayeResult `json:"paye" yaml:"paye"`
	UIF  UifResult  `json:"uif" yaml:"uif"`
	SDL  SdlResult  `json:"sdl" yaml:"sdl"`
	ETI  EtiResult  `json:"eti" yaml:"eti"`

	RetirementContribution decimal.Decimal `json:"retirement_contribution" yaml:"retirement_contribution"`
	MedicalContribution    decimal.Decimal `json:"medical_contribution" yaml:"medical_contribution"`
	OtherDeductions        decimal.Decimal `json:"other_deductions" yaml:"other_deductions"`

	TotalDeductions            decimal.Decimal `json:"total_deductions" yaml:"total_deductions"`
	TotalEmployerContributions decimal.Decimal `json:"total_employer_contributions" yaml:"total_employer_contributions"`
	NetPay                     decimal.Decimal `json:"net_pay" yaml:"net_pay"`
	CostToCompany              decimal.Decimal `json:"cost_to_company" yaml:"cost_to_company"`
	NetPayeAfterIncentive      decimal.Decimal `json:"net_paye_after_incentive" yaml:"net_paye_after_incentive"`
}

// PayrollRunSummary sums every numeric payslip field across a batch. It holds
// no cross-employee logic beyond addition.
type PayrollRunSummary struct {
	TaxYear       int `json:"tax_year" yaml:"tax_year"`
	EmployeeCount int `json:"employee_count" yaml:"employee_count"`

	TotalMonthlyGross          decimal.Decimal `json:"total_monthly_gross" yaml:"total_monthly_gross"`
	TotalPAYE                  decimal.Decimal `json:"total_paye" yaml:"total_paye"`
	TotalUIFEmployee           decimal.Decimal `json:"total_uif_employee" yaml:"total_uif_employee"`
	TotalUIFEmployer           decimal.Decimal `json:"total_uif_employer" yaml:"total_uif_employer"`
	TotalSDL                   decimal.Decimal `json:"total_sdl" yaml:"total_sdl"`
	EligibleEtiCount           int             `json:"eligible_eti_count" yaml:"eligible_eti_count"`
	TotalETI                   decimal.Decimal `json:"total_eti" yaml:"total_eti"`
	TotalDeductions            decimal.Decimal `json:"total_deductions" yaml:"total_deductions"`
	TotalEmployerContributions decimal.Decimal `json:"total_employer_contributions" yaml:"total_employer_contributions"`
	TotalNetPay                decimal.Decimal `json:"total_net_pay" yaml:"total_net_pay"`
	TotalCostToCompany         decimal.Decimal `json:"total_cost_to_company" yaml:"total_cost_to_company"`
	TotalNetPayeAfterIncentive decimal.Decimal `json:"total_net_paye_after_incentive" yaml:"total_net_paye_after_incentive"`
}
