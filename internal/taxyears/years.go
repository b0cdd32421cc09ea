// Package taxyears holds the statutory rate tables per supported tax year.
// The numeric literals are externally owned compliance data and must match
// the published tables exactly; the engines treat them as opaque
// configuration.
package taxyears

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/JacquesBronk/satax/internal/domain"
)

// ErrUnsupportedYear is returned by ForYear for years outside the supported
// set. The wrapped message lists the valid years.
var ErrUnsupportedYear = errors.New("unsupported tax year")

// configurations is built once at package initialization and read-only
// afterwards. Every table is validated at construction; a malformed table is
// a programming error, not a runtime condition.
var configurations = mustBuild()

func mustBuild() map[int]*domain.TaxYearConfiguration {
	years := []*domain.TaxYearConfiguration{
		year2023(),
		year2024(),
		year2025(),
		year2026(),
	}
	byYear := make(map[int]*domain.TaxYearConfiguration, len(years))
	for _, cfg := range years {
		if err := cfg.Validate(); err != nil {
			panic(fmt.Sprintf("invalid tax year table: %v", err))
		}
		if _, dup := byYear[cfg.Year]; dup {
			panic(fmt.Sprintf("duplicate tax year table for %d", cfg.Year))
		}
		byYear[cfg.Year] = cfg
	}
	return byYear
}

// SupportedYears lists the supported tax years in ascending order.
func SupportedYears() []int {
	years := make([]int, 0, len(configurations))
	for y := range configurations {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ForYear resolves the configuration for a tax year. The returned
// configuration is shared and must not be mutated.
func ForYear(year int) (*domain.TaxYearConfiguration, error) {
	cfg, ok := configurations[year]
	if !ok {
		valid := make([]string, 0, len(configurations))
		for _, y := range SupportedYears() {
			valid = append(valid, fmt.Sprintf("%d", y))
		}
		return nil, fmt.Errorf("%w: %d, valid years are %s", ErrUnsupportedYear, year, strings.Join(valid, ", "))
	}
	return cfg, nil
}
