package growth

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// defaultTenureYears is assumed when a span cannot be parsed.
const defaultTenureYears = 3

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// tenureYears estimates the years covered by a free-form span like
// "2018–2021" or "2019 – Present". Two years give their difference, a single
// year with "present" counts up to the current year, anything else falls back
// to the default.
func tenureYears(span string) float64 {
	years := yearRe.FindAllString(span, -1)
	switch {
	case len(years) >= 2:
		start, err1 := strconv.Atoi(years[0])
		end, err2 := strconv.Atoi(years[len(years)-1])
		if err1 != nil || err2 != nil || end < start {
			return defaultTenureYears
		}
		return float64(end - start)
	case len(years) == 1 && strings.Contains(strings.ToLower(span), "present"):
		start, err := strconv.Atoi(years[0])
		if err != nil {
			return defaultTenureYears
		}
		if d := time.Now().Year() - start; d >= 0 {
			return float64(d)
		}
		return defaultTenureYears
	default:
		return defaultTenureYears
	}
}

