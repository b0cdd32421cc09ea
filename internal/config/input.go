// Package config loads and validates payroll input files. Engine-level
// validation still applies downstream; this layer catches file-shaped
// mistakes (missing employees, duplicate names, absent tax year) before any
// calculation starts.
package config

import (
	"fmt"
	"os"

	"github.com/JacquesBronk/satax/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of payroll input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a payroll batch from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PayrollInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse unmarshals and validates a payroll batch.
func (ip *InputParser) Parse(data []byte) (*domain.PayrollInput, error) {
	var input domain.PayrollInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	// A company-wide payroll figure propagates to employees that carry none
	// of their own, so the levy exemption is evaluated consistently.
	if !input.CompanyAnnualPayroll.IsZero() {
		for i := range input.Employees {
			if input.Employees[i].AnnualPayroll.IsZero() {
				input.Employees[i].AnnualPayroll = input.CompanyAnnualPayroll
			}
		}
	}

	return &input, nil
}

// ValidateInput validates the batch shape and each employee's facts.
func (ip *InputParser) ValidateInput(input *domain.PayrollInput) error {
	if input.TaxYear <= 0 {
		return fmt.Errorf("tax_year is required")
	}
	if len(input.Employees) == 0 {
		return fmt.Errorf("at least one employee is required")
	}
	if input.CompanyAnnualPayroll.LessThan(decimal.Zero) {
		return fmt.Errorf("company annual payroll cannot be negative: %s", input.CompanyAnnualPayroll)
	}

	seen := make(map[string]bool, len(input.Employees))
	for i := range input.Employees {
		e := &input.Employees[i]
		if e.Name == "" {
			return fmt.Errorf("employee %d: name is required", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("employee %d: duplicate name %q", i, e.Name)
		}
		seen[e.Name] = true
		if e.Salary.IsZero() {
			return fmt.Errorf("employee %q: salary is required", e.Name)
		}
		if err := e.Validate(); err != nil {
			return fmt.Errorf("employee %q: %w", e.Name, err)
		}
	}
	return nil
}
