package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/JacquesBronk/satax/internal/calculation"
	"github.com/JacquesBronk/satax/internal/config"
	"github.com/JacquesBronk/satax/internal/domain"
	"github.com/JacquesBronk/satax/internal/output"
	"github.com/JacquesBronk/satax/internal/taxyears"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "satax %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "satax",
	Short: "South African payroll tax calculator CLI",
	Long:  "Statutory payroll calculator: PAYE, UIF, SDL, ETI and full payslips per tax year",
}

var payslipCmd = &cobra.Command{
	Use:   "payslip [input-file]",
	Short: "Calculate payslips for a batch of employees",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]
		format, _ := cmd.Flags().GetString("format")

		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return fmt.Errorf("error loading input: %w", err)
		}

		cfg, err := taxyears.ForYear(input.TaxYear)
		if err != nil {
			return err
		}

		employees := make([]*domain.Employee, len(input.Employees))
		for i := range input.Employees {
			employees[i] = &input.Employees[i]
		}

		calculator := calculation.NewPayslipCalculator(cfg)
		payslips, summary, err := calculator.CalculateBatch(employees)
		if err != nil {
			return fmt.Errorf("error calculating payroll: %w", err)
		}

		generator := output.NewReportGenerator(os.Stdout)
		return generator.Generate(payslips, summary, format)
	},
}

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List supported tax years",
	Run: func(cmd *cobra.Command, args []string) {
		for _, year := range taxyears.SupportedYears() {
			cfg, err := taxyears.ForYear(year)
			if err != nil {
				log.Printf("WARN: %v", err)
				continue
			}
			fmt.Fprintf(os.Stdout, "%d  (%s to %s)\n", year,
				cfg.ValidFrom.Format("2006-01-02"), cfg.ValidTo.Format("2006-01-02"))
		}
	},
}

func main() {
	payslipCmd.Flags().String("format", "console", "Report format: console, json, or csv")

	rootCmd.AddCommand(payslipCmd)
	rootCmd.AddCommand(yearsCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
