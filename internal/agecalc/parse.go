package agecalc

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/mohammadusama1497-dot/Age-Calculator/internal/config"
)

// dateLayouts are tried in order for fully specified inputs.
var dateLayouts = []string{
	config.DateFormatFullDash,
	config.DateFormatFullBasic,
	config.DateFormatRFC3339,
	config.DateFormatFullT,
}

// ParseDate parses a date-of-birth string. Besides the fixed layouts it
// accepts year-first (YYYY-MM-DD) and day-first (DD-MM-YYYY) dates with
// '-', '/', '.' or space separators. Values that do not name a real
// calendar date (Feb 30, month 13) are rejected. The result carries no
// time-of-day component.
func ParseDate(value string) (time.Time, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return time.Time{}, errors.New(config.ErrDateParse)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return dateOnly(t), nil
		}
	}

	// Split on any non-digit run so separators stay flexible.
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if len(parts) != 3 {
		return time.Time{}, errors.New(config.ErrDateParse)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, errors.New(config.ErrDateParse)
		}
		nums[i] = n
	}

	var year, month, day int
	switch {
	case len(parts[0]) == 4: // year-first
		year, month, day = nums[0], nums[1], nums[2]
	case len(parts[2]) == 4: // day-first
		day, month, year = nums[0], nums[1], nums[2]
	default:
		return time.Time{}, errors.New(config.ErrDateParse)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Round-trip check: time.Date normalizes impossible dates, so any
	// component drift means the input was not a real calendar date.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, errors.New(config.ErrDateParse)
	}

	return t, nil
}
