package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TaxYearConfiguration bundles every statutory table for a single tax year.
// Instances are built once at process start and are read-only afterwards; the
// calculation engines never mutate them, which makes a single instance safe to
// share across concurrent calculations.
type TaxYearConfiguration struct {
	Year             int              `yaml:"year" json:"year"`
	ValidFrom        time.Time        `yaml:"valid_from" json:"valid_from"`
	ValidTo          time.Time        `yaml:"valid_to" json:"valid_to"`
	Brackets         []TaxBracket     `yaml:"brackets" json:"brackets"`
	Rebates          []TaxRebate      `yaml:"rebates" json:"rebates"`
	Thresholds       []TaxThreshold   `yaml:"thresholds" json:"thresholds"`
	MedicalAidCredit MedicalAidCredit `yaml:"medical_aid_credit" json:"medical_aid_credit"`
	UIF              UifConfig        `yaml:"uif" json:"uif"`
	SDL              SdlConfig        `yaml:"sdl" json:"sdl"`
	ETI              EtiConfig        `yaml:"eti" json:"eti"`
	RetirementLimits RetirementLimits `yaml:"retirement_limits" json:"retirement_limits"`
}

// TaxBracket is one row of the progressive PAYE table. Max is nil for the top
// bracket ("no maximum" is distinct from "maximum is zero"). BaseTax already
// encodes the cumulative tax of all lower brackets, so the tax owed in the
// containing bracket is BaseTax + Rate x (income - Min).
type TaxBracket struct {
	Min     decimal.Decimal  `yaml:"min" json:"min"`
	Max     *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	BaseTax decimal.Decimal  `yaml:"base_tax" json:"base_tax"`
	Rate    decimal.Decimal  `yaml:"rate" json:"rate"`
}

// Contains reports whether income falls inside this bracket's range.
func (b TaxBracket) Contains(income decimal.Decimal) bool {
	if income.LessThan(b.Min) {
		return false
	}
	return b.Max == nil || income.LessThanOrEqual(*b.Max)
}

// TaxRebate is a fixed annual amount subtracted from gross tax. MinAge is nil
// for the unconditional (primary) rebate.
type TaxRebate struct {
	Kind   string          `yaml:"kind" json:"kind"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	MinAge *int            `yaml:"min_age,omitempty" json:"min_age,omitempty"`
}

// AppliesTo reports whether the rebate applies at the given age.
func (r TaxRebate) AppliesTo(age int) bool {
	return r.MinAge == nil || age >= *r.MinAge
}

// TaxThreshold is the no-tax income floor for one age band. Exactly one
// threshold must match any age in 0..150 across a configuration.
type TaxThreshold struct {
	MinAge *int            `yaml:"min_age,omitempty" json:"min_age,omitempty"`
	MaxAge *int            `yaml:"max_age,omitempty" json:"max_age,omitempty"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// AppliesTo reports whether the threshold's age band contains the given age.
func (t TaxThreshold) AppliesTo(age int) bool {
	if t.MinAge != nil && age < *t.MinAge {
		return false
	}
	if t.MaxAge != nil && age > *t.MaxAge {
		return false
	}
	return true
}

// MedicalAidCredit holds the monthly medical scheme fees tax credit amounts.
// Credits are derived from the number of covered members: the main member,
// the first dependant, and each additional dependant.
type MedicalAidCredit struct {
	MainMember          decimal.Decimal `yaml:"main_member" json:"main_member"`
	FirstDependent      decimal.Decimal `yaml:"first_dependent" json:"first_dependent"`
	AdditionalDependent decimal.Decimal `yaml:"additional_dependent" json:"additional_dependent"`
}

// MonthlyCredit returns the credit for the given number of covered members
// (main member included). Zero members means no cover and no credit.
func (m MedicalAidCredit) MonthlyCredit(members int) decimal.Decimal {
	if members <= 0 {
		return decimal.Zero
	}
	credit := m.MainMember
	if members >= 2 {
		credit = credit.Add(m.FirstDependent)
	}
	if members > 2 {
		additional := decimal.NewFromInt(int64(members - 2))
		credit = credit.Add(m.AdditionalDependent.Mul(additional))
	}
	return credit
}

// AnnualCredit is the monthly credit over a full tax year.
func (m MedicalAidCredit) AnnualCredit(members int) decimal.Decimal {
	return m.MonthlyCredit(members).Mul(decimal.NewFromInt(12))
}

// UifConfig holds the unemployment insurance contribution rules.
type UifConfig struct {
	EmployeeRate   decimal.Decimal `yaml:"employee_rate" json:"employee_rate"`
	EmployerRate   decimal.Decimal `yaml:"employer_rate" json:"employer_rate"`
	MonthlyCeiling decimal.Decimal `yaml:"monthly_ceiling" json:"monthly_ceiling"`
}

// AnnualCeiling is the contribution ceiling over a full year.
func (u UifConfig) AnnualCeiling() decimal.Decimal {
	return u.MonthlyCeiling.Mul(decimal.NewFromInt(12))
}

// SdlConfig holds the skills development levy rules. Employers whose annual
// payroll is at or below the exemption threshold owe nothing.
type SdlConfig struct {
	Rate               decimal.Decimal `yaml:"rate" json:"rate"`
	ExemptionThreshold decimal.Decimal `yaml:"exemption_threshold" json:"exemption_threshold"`
}

// EtiBand is one salary band of the employment tax incentive table. Bands
// partition [0, MaxQualifyingSalary] without gaps and are evaluated first
// match wins. PercentageBased marks the low tier whose amount is a percentage
// of salary (capped at the band amount) rather than a flat amount; whether a
// band is percentage based is configuration data, not an engine rule.
type EtiBand struct {
	MinSalary        decimal.Decimal  `yaml:"min_salary" json:"min_salary"`
	MaxSalary        decimal.Decimal  `yaml:"max_salary" json:"max_salary"`
	FirstYearAmount  decimal.Decimal  `yaml:"first_year_amount" json:"first_year_amount"`
	SecondYearAmount decimal.Decimal  `yaml:"second_year_amount" json:"second_year_amount"`
	ReductionRate    *decimal.Decimal `yaml:"reduction_rate,omitempty" json:"reduction_rate,omitempty"`
	PercentageBased  bool             `yaml:"percentage_based,omitempty" json:"percentage_based,omitempty"`
}

// Contains reports whether the salary falls inside the band, both ends inclusive.
func (b EtiBand) Contains(salary decimal.Decimal) bool {
	return salary.GreaterThanOrEqual(b.MinSalary) && salary.LessThanOrEqual(b.MaxSalary)
}

// EtiConfig holds the employment tax incentive rules for a year.
type EtiConfig struct {
	MinAge               int             `yaml:"min_age" json:"min_age"`
	MaxAge               int             `yaml:"max_age" json:"max_age"`
	MaxQualifyingSalary  decimal.Decimal `yaml:"max_qualifying_salary" json:"max_qualifying_salary"`
	FirstYearPercentage  decimal.Decimal `yaml:"first_year_percentage,omitempty" json:"first_year_percentage,omitempty"`
	SecondYearPercentage decimal.Decimal `yaml:"second_year_percentage,omitempty" json:"second_year_percentage,omitempty"`
	Bands                []EtiBand       `yaml:"bands" json:"bands"`
}

// RetirementLimits caps the deductible retirement contribution for PAYE.
type RetirementLimits struct {
	MaxPercentageOfIncome decimal.Decimal `yaml:"max_percentage_of_income" json:"max_percentage_of_income"`
	AnnualCap             decimal.Decimal `yaml:"annual_cap" json:"annual_cap"`
}

// Validate checks the structural invariants of a year's tables. It is meant to
// run once at construction time; query paths assume a valid configuration.
func (c *TaxYearConfiguration) Validate() error {
	if len(c.Brackets) == 0 {
		return fmt.Errorf("tax year %d: at least one tax bracket is required", c.Year)
	}
	if !c.Brackets[0].Min.IsZero() {
		return fmt.Errorf("tax year %d: first bracket must start at zero, got %s", c.Year, c.Brackets[0].Min)
	}
	one := decimal.NewFromInt(1)
	for i, b := range c.Brackets {
		last := i == len(c.Brackets)-1
		if b.Max == nil {
			if !last {
				return fmt.Errorf("tax year %d: only the last bracket may be unbounded (bracket %d)", c.Year, i)
			}
			continue
		}
		if last {
			return fmt.Errorf("tax year %d: last bracket must be unbounded", c.Year)
		}
		if b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("tax year %d: bracket %d max %s must exceed min %s", c.Year, i, b.Max, b.Min)
		}
		if next := c.Brackets[i+1].Min; !next.Equal(b.Max.Add(one)) {
			return fmt.Errorf("tax year %d: bracket %d min %s is not contiguous with previous max %s", c.Year, i+1, next, b.Max)
		}
	}

	if len(c.Rebates) == 0 {
		return fmt.Errorf("tax year %d: at least one rebate is required", c.Year)
	}
	unconditional := false
	for _, r := range c.Rebates {
		if r.MinAge == nil {
			unconditional = true
		}
	}
	if !unconditional {
		return fmt.Errorf("tax year %d: an unconditional rebate is required", c.Year)
	}

	for age := 0; age <= 150; age++ {
		matches := 0
		for _, t := range c.Thresholds {
			if t.AppliesTo(age) {
				matches++
			}
		}
		if matches != 1 {
			return fmt.Errorf("tax year %d: age %d matches %d thresholds, want exactly 1", c.Year, age, matches)
		}
	}

	if len(c.ETI.Bands) == 0 {
		return fmt.Errorf("tax year %d: at least one incentive band is required", c.Year)
	}
	if !c.ETI.Bands[0].MinSalary.IsZero() {
		return fmt.Errorf("tax year %d: first incentive band must start at zero", c.Year)
	}
	for i, b := range c.ETI.Bands {
		if b.MaxSalary.LessThanOrEqual(b.MinSalary) {
			return fmt.Errorf("tax year %d: incentive band %d max %s must exceed min %s", c.Year, i, b.MaxSalary, b.MinSalary)
		}
		if i > 0 && !b.MinSalary.Equal(c.ETI.Bands[i-1].MaxSalary) {
			return fmt.Errorf("tax year %d: incentive band %d min %s leaves a gap after %s", c.Year, i, b.MinSalary, c.ETI.Bands[i-1].MaxSalary)
		}
		if b.PercentageBased && (c.ETI.FirstYearPercentage.IsZero() || c.ETI.SecondYearPercentage.IsZero()) {
			return fmt.Errorf("tax year %d: incentive band %d is percentage based but no percentages are configured", c.Year, i)
		}
	}
	if last := c.ETI.Bands[len(c.ETI.Bands)-1]; !last.MaxSalary.Equal(c.ETI.MaxQualifyingSalary) {
		return fmt.Errorf("tax year %d: incentive bands end at %s but max qualifying salary is %s", c.Year, last.MaxSalary, c.ETI.MaxQualifyingSalary)
	}

	return nil
}
