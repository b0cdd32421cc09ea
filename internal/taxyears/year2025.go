package taxyears

import (
	"time"

	"github.com/JacquesBronk/satax/internal/domain"
)

// year2025 is the 2024/25 tax year (1 March 2024 - 28 February 2025). The
// published tables were carried over from 2023/24 unchanged.
func year2025() *domain.TaxYearConfiguration {
	cfg := year2024()
	cfg.Year = 2025
	cfg.ValidFrom = date(2024, time.March, 1)
	cfg.ValidTo = date(2025, time.February, 28)
	return cfg
}
