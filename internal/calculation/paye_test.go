package calculation

import (
	"testing"

	"github.com/JacquesBronk/satax/internal/taxyears"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayeCalculator_Calculate2024(t *testing.T) {
	cfg, err := taxyears.ForYear(2024)
	require.NoError(t, err)
	calc := NewPayeCalculator(cfg)

	tests := []struct {
		name           string
		annualIncome   string
		age            int
		medicalMembers int
		wantAnnual     string
		wantMonthly    string
	}{
		{
			name:         "mid bracket income",
			annualIncome: "250000",
			age:          30,
			wantAnnual:   "28796.74",
			wantMonthly:  "2399.73",
		},
		{
			name:         "first bracket income",
			annualIncome: "150000",
			age:          30,
			wantAnnual:   "9765", // 150000*0.18 - 17235
			wantMonthly:  "813.75",
		},
		{
			name:         "top bracket income",
			annualIncome: "2000000",
			age:          30,
			wantAnnual:   "709603.55",
			wantMonthly:  "59133.63",
		},
		{
			name:         "secondary rebate at 65",
			annualIncome: "300000",
			age:          65,
			wantAnnual:   "32352.74",
			wantMonthly:  "2696.06",
		},
		{
			name:           "medical credit for three members",
			annualIncome:   "300000",
			age:            30,
			medicalMembers: 3,
			wantAnnual:     "30108.74", // 59031.74 - 17235 - 974*12
			wantMonthly:    "2509.06",
		},
		{
			name:         "zero income",
			annualIncome: "0",
			age:          30,
			wantAnnual:   "0",
			wantMonthly:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Calculate(decimal.RequireFromString(tt.annualIncome), tt.age, tt.medicalMembers)
			require.NoError(t, err)
			assert.True(t, result.AnnualTax.Equal(decimal.RequireFromString(tt.wantAnnual)),
				"annual tax: got %s, want %s", result.AnnualTax, tt.wantAnnual)
			assert.True(t, result.MonthlyTax.Equal(decimal.RequireFromString(tt.wantMonthly)),
				"monthly tax: got %s, want %s", result.MonthlyTax, tt.wantMonthly)
		})
	}
}

func TestPayeCalculator_TaxThreshold(t *testing.T) {
	cfg, err := taxyears.ForYear(2024)
	require.NoError(t, err)
	calc := NewPayeCalculator(cfg)

	tests := []struct {
		name         string
		annualIncome string
		age          int
		wantZero     bool
	}{
		{"below threshold under 65", "90000", 30, true},
		{"at threshold under 65", "95750", 30, true},
		{"just above threshold under 65", "95751", 30, false},
		{"at threshold 65 to 74", "148217", 65, true},
		{"at threshold 75 plus", "165689", 80, true},
		// Without the threshold override the rebates alone would leave a
		// residual few cents at this income.
		{"threshold overrides bracket arithmetic", "148217", 70, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Calculate(decimal.RequireFromString(tt.annualIncome), tt.age, 0)
			require.NoError(t, err)
			if tt.wantZero {
				assert.True(t, result.AnnualTax.IsZero(), "annual tax should be zero, got %s", result.AnnualTax)
				assert.True(t, result.BelowTaxThreshold)
			} else {
				assert.True(t, result.AnnualTax.GreaterThan(decimal.Zero), "annual tax should be positive, got %s", result.AnnualTax)
				assert.False(t, result.BelowTaxThreshold)
			}
		})
	}
}

func TestPayeCalculator_BracketBoundaryContinuity(t *testing.T) {
	for _, year := range taxyears.SupportedYears() {
		cfg, err := taxyears.ForYear(year)
		require.NoError(t, err)
		calc := NewPayeCalculator(cfg)

		for i, b := range cfg.Brackets {
			if b.Max == nil {
				continue
			}
			// Tax at a bracket's max, computed inside that bracket, must
			// equal the next bracket's base tax.
			atMax := calc.grossTax(*b.Max)
			next := cfg.Brackets[i+1]
			assert.True(t, atMax.Equal(next.BaseTax),
				"year %d bracket %d: tax at max %s = %s, next base %s", year, i, b.Max, atMax, next.BaseTax)
		}
	}
}

func TestPayeCalculator_CalculateWithRetirement(t *testing.T) {
	cfg, err := taxyears.ForYear(2024)
	require.NoError(t, err)
	calc := NewPayeCalculator(cfg)

	t.Run("deduction capped at percentage of income", func(t *testing.T) {
		result, err := calc.CalculateWithRetirement(
			decimal.NewFromInt(400000), decimal.NewFromInt(150000), 40, 0)
		require.NoError(t, err)
		// 27.5% of 400000 = 110000 < 350000 cap, and below the 150000 contributed.
		assert.True(t, result.RetirementDeduction.Equal(decimal.NewFromInt(110000)),
			"deduction: got %s", result.RetirementDeduction)
		assert.True(t, result.AnnualTax.Equal(decimal.RequireFromString("39196.74")),
			"annual tax: got %s", result.AnnualTax)
		// The result reports the original income, not the reduced one.
		assert.True(t, result.AnnualTaxableIncome.Equal(decimal.NewFromInt(400000)))
	})

	t.Run("deduction capped at annual cap", func(t *testing.T) {
		result, err := calc.CalculateWithRetirement(
			decimal.NewFromInt(2000000), decimal.NewFromInt(600000), 40, 0)
		require.NoError(t, err)
		// 27.5% of 2000000 = 550000, capped at 350000.
		assert.True(t, result.RetirementDeduction.Equal(decimal.NewFromInt(350000)),
			"deduction: got %s", result.RetirementDeduction)
	})

	t.Run("full contribution deductible when under both caps", func(t *testing.T) {
		result, err := calc.CalculateWithRetirement(
			decimal.NewFromInt(400000), decimal.NewFromInt(50000), 40, 0)
		require.NoError(t, err)
		assert.True(t, result.RetirementDeduction.Equal(decimal.NewFromInt(50000)),
			"deduction: got %s", result.RetirementDeduction)
	})

	t.Run("negative contribution rejected", func(t *testing.T) {
		_, err := calc.CalculateWithRetirement(
			decimal.NewFromInt(400000), decimal.NewFromInt(-1), 40, 0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "retirement contribution")
	})
}

func TestPayeCalculator_MonthlyAnnualDrift(t *testing.T) {
	cfg, err := taxyears.ForYear(2024)
	require.NoError(t, err)
	calc := NewPayeCalculator(cfg)

	// Monthly figures derive from the annual liability, so twelve months may
	// drift from the annual figure by at most 12 half-cents.
	maxDrift := decimal.RequireFromString("0.12")
	twelve := decimal.NewFromInt(12)

	for _, income := range []string{"100001", "250000", "333333.33", "987654.32", "1817001"} {
		result, err := calc.Calculate(decimal.RequireFromString(income), 40, 2)
		require.NoError(t, err)
		drift := result.MonthlyTax.Mul(twelve).Sub(result.AnnualTax).Abs()
		assert.True(t, drift.LessThanOrEqual(maxDrift),
			"income %s: drift %s exceeds %s", income, drift, maxDrift)
	}
}

func TestPayeCalculator_InputValidation(t *testing.T) {
	cfg, err := taxyears.ForYear(2024)
	require.NoError(t, err)
	calc := NewPayeCalculator(cfg)

	tests := []struct {
		name    string
		income  string
		age     int
		members int
		wantErr string
	}{
		{"negative income", "-1", 30, 0, "annual taxable income"},
		{"negative age", "100000", -1, 0, "age"},
		{"age above 150", "100000", 151, 0, "age"},
		{"negative members", "100000", 30, -1, "medical aid member count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Calculate(decimal.RequireFromString(tt.income), tt.age, tt.members)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPayeCalculator_Idempotent(t *testing.T) {
	cfg, err := taxyears.ForYear(2024)
	require.NoError(t, err)
	calc := NewPayeCalculator(cfg)

	income := decimal.RequireFromString("345678.90")
	first, err := calc.Calculate(income, 50, 4)
	require.NoError(t, err)
	second, err := calc.Calculate(income, 50, 4)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
