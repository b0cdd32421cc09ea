// Package calculation implements the statutory payroll engines: PAYE income
// tax, UIF and SDL contributions, the employment tax incentive, and the
// payslip aggregator that composes them. Every engine is a pure function of
// its inputs and an immutable tax year configuration, so all operations are
// safe to call concurrently without synchronization.
package calculation

import "github.com/shopspring/decimal"

// STATUTORY ROUNDING:
//
// PAYE, UIF and SDL amounts round half away from zero to the cent. The
// employment tax incentive is different: its amount truncates toward zero to
// a whole rand. The two policies are never interchangeable.

// RoundToCent rounds half away from zero to two decimal places.
func RoundToCent(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// TruncateToRand drops the fractional part toward zero, leaving a whole rand
// amount. Used only for the employment tax incentive.
func TruncateToRand(amount decimal.Decimal) decimal.Decimal {
	return amount.Truncate(0)
}
