// Package output renders payroll run results as console, JSON, or CSV
// reports.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/JacquesBronk/satax/internal/domain"
)

// ReportGenerator renders payslips and a run summary in a chosen format.
type ReportGenerator struct {
	out io.Writer
}

// NewReportGenerator creates a report generator writing to out.
func NewReportGenerator(out io.Writer) *ReportGenerator {
	return &ReportGenerator{out: out}
}

// Generate renders the payroll run in the requested format.
func (rg *ReportGenerator) Generate(payslips []*domain.Payslip, summary *domain.PayrollRunSummary, format string) error {
	switch format {
	case "console":
		return rg.generateConsole(payslips, summary)
	case "json":
		return rg.generateJSON(payslips, summary)
	case "csv":
		return rg.generateCSV(payslips)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (rg *ReportGenerator) generateConsole(payslips []*domain.Payslip, summary *domain.PayrollRunSummary) error {
	fmt.Fprintln(rg.out, titleStyle.Render(fmt.Sprintf("PAYROLL RUN - TAX YEAR %d", summary.TaxYear)))
	fmt.Fprintln(rg.out)

	for _, p := range payslips {
		fmt.Fprintln(rg.out, sectionStyle.Render(p.EmployeeName))
		rg.line("Monthly gross", FormatRand(p.MonthlyGross))
		rg.line("PAYE", FormatRand(p.PAYE.MonthlyTax))
		rg.line("UIF (employee)", FormatRand(p.UIF.EmployeeAmount))
		rg.line("Retirement", FormatRand(p.RetirementContribution))
		rg.line("Medical aid", FormatRand(p.MedicalContribution))
		rg.line("Other deductions", FormatRand(p.OtherDeductions))
		rg.line("Total deductions", FormatRand(p.TotalDeductions))
		rg.line("Net pay", FormatRand(p.NetPay))
		rg.line("UIF (employer)", FormatRand(p.UIF.EmployerAmount))
		rg.line("SDL", FormatRand(p.SDL.Amount))
		if p.ETI.Eligible {
			rg.line("ETI", FormatRand(p.ETI.MonthlyAmount))
		} else {
			rg.line("ETI", mutedStyle.Render("not eligible: "+p.ETI.Reason))
		}
		rg.line("Cost to company", FormatRand(p.CostToCompany))
		rg.line("PAYE after incentive", FormatRand(p.NetPayeAfterIncentive))
		fmt.Fprintln(rg.out)
	}

	fmt.Fprintln(rg.out, sectionStyle.Render(fmt.Sprintf("SUMMARY (%d employees)", summary.EmployeeCount)))
	rg.line("Total gross", FormatRand(summary.TotalMonthlyGross))
	rg.line("Total PAYE", FormatRand(summary.TotalPAYE))
	rg.line("Total UIF", FormatRand(summary.TotalUIFEmployee.Add(summary.TotalUIFEmployer)))
	rg.line("Total SDL", FormatRand(summary.TotalSDL))
	rg.line("Total ETI", fmt.Sprintf("%s (%d eligible)", FormatRand(summary.TotalETI), summary.EligibleEtiCount))
	rg.line("Total net pay", FormatRand(summary.TotalNetPay))
	rg.line("Total cost to company", FormatRand(summary.TotalCostToCompany))
	rg.line("PAYE after incentive", FormatRand(summary.TotalNetPayeAfterIncentive))
	return nil
}

func (rg *ReportGenerator) line(label, value string) {
	fmt.Fprintf(rg.out, "%s %s\n", labelStyle.Render(label), valueStyle.Render(value))
}

func (rg *ReportGenerator) generateJSON(payslips []*domain.Payslip, summary *domain.PayrollRunSummary) error {
	report := struct {
		Payslips []*domain.Payslip         `json:"payslips"`
		Summary  *domain.PayrollRunSummary `json:"summary"`
	}{Payslips: payslips, Summary: summary}

	enc := json.NewEncoder(rg.out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func (rg *ReportGenerator) generateCSV(payslips []*domain.Payslip) error {
	w := csv.NewWriter(rg.out)
	header := []string{
		"employee", "tax_year", "monthly_gross", "paye", "uif_employee",
		"uif_employer", "sdl", "eti", "eti_eligible", "total_deductions",
		"net_pay", "cost_to_company", "paye_after_incentive",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range payslips {
		row := []string{
			p.EmployeeName,
			strconv.Itoa(p.TaxYear),
			p.MonthlyGross.StringFixed(2),
			p.PAYE.MonthlyTax.StringFixed(2),
			p.UIF.EmployeeAmount.StringFixed(2),
			p.UIF.EmployerAmount.StringFixed(2),
			p.SDL.Amount.StringFixed(2),
			p.ETI.MonthlyAmount.StringFixed(0),
			strconv.FormatBool(p.ETI.Eligible),
			p.TotalDeductions.StringFixed(2),
			p.NetPay.StringFixed(2),
			p.CostToCompany.StringFixed(2),
			p.NetPayeAfterIncentive.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", p.EmployeeName, err)
		}
	}
	w.Flush()
	return w.Error()
}
