package taxyears

import (
	"time"

	"github.com/JacquesBronk/satax/internal/domain"
)

// year2026 is the 2025/26 tax year (1 March 2025 - 28 February 2026). PAYE
// tables were again carried over unchanged; the employment tax incentive was
// restructured: the qualifying salary cap rose to 7,500 and the lowest band
// became a percentage of salary (60% in year one, 30% in year two) instead of
// a flat amount.
func year2026() *domain.TaxYearConfiguration {
	cfg := year2024()
	cfg.Year = 2026
	cfg.ValidFrom = date(2025, time.March, 1)
	cfg.ValidTo = date(2026, time.February, 28)
	cfg.ETI = domain.EtiConfig{
		MinAge:               18,
		MaxAge:               29,
		MaxQualifyingSalary:  d("7500"),
		FirstYearPercentage:  d("0.60"),
		SecondYearPercentage: d("0.30"),
		Bands: []domain.EtiBand{
			{MinSalary: d("0"), MaxSalary: d("2500"), FirstYearAmount: d("1500"), SecondYearAmount: d("750"), PercentageBased: true},
			{MinSalary: d("2500"), MaxSalary: d("5500"), FirstYearAmount: d("1500"), SecondYearAmount: d("750")},
			{MinSalary: d("5500"), MaxSalary: d("7500"), FirstYearAmount: d("1500"), SecondYearAmount: d("750"), ReductionRate: dp("0.75")},
		},
	}
	return cfg
}
