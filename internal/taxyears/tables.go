package taxyears

import (
	"time"

	"github.com/shopspring/decimal"
)

// Literal helpers keep the year tables readable. RequireFromString panics on
// malformed literals, which surfaces a bad table at package init.
func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func dp(value string) *decimal.Decimal {
	v := decimal.RequireFromString(value)
	return &v
}

func age(a int) *int {
	return &a
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Rebate kinds as published: primary applies to everyone, secondary from age
// 65, tertiary from age 75.
const (
	rebatePrimary   = "primary"
	rebateSecondary = "secondary"
	rebateTertiary  = "tertiary"
)
