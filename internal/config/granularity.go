package config

import (
	"fmt"
	"strings"
)

// Granularity is the depth of date-based folder nesting applied while
// organizing.
type Granularity string

const (
	// GranularityNone leaves files where they are.
	GranularityNone Granularity = "none"
	// GranularityYear places files under <root>/YYYY.
	GranularityYear Granularity = "year"
	// GranularityYearMonth places files under <root>/YYYY/MM.
	GranularityYearMonth Granularity = "year_month"
	// GranularityYearMonthDay places files under <root>/YYYY/MM/DD.
	GranularityYearMonthDay Granularity = "year_month_day"
)

// ParseGranularity normalizes and validates a granularity value.
func ParseGranularity(value string) (Granularity, error) {
	switch Granularity(strings.ToLower(strings.TrimSpace(value))) {
	case GranularityNone, "":
		return GranularityNone, nil
	case GranularityYear:
		return GranularityYear, nil
	case GranularityYearMonth:
		return GranularityYearMonth, nil
	case GranularityYearMonthDay:
		return GranularityYearMonthDay, nil
	default:
		return GranularityNone, fmt.Errorf("organize granularity: unsupported value %q", value)
	}
}

// OrganizeGranularity returns the parsed granularity from the organize
// section. Validate guarantees this cannot fail after Load.
func (c *Config) OrganizeGranularity() Granularity {
	g, err := ParseGranularity(c.Organize.Granularity)
	if err != nil {
		return GranularityNone
	}
	return g
}
