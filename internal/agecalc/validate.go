package agecalc

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mohammadusama1497-dot/Age-Calculator/internal/config"
)

// Field identifies a form input in a validation failure.
type Field string

const (
	FieldName Field = "name"
	FieldDOB  Field = "date_of_birth"
)

// Reason classifies why a field was rejected. Reasons are stable codes;
// rendering them as user-facing text is the caller's concern.
type Reason string

const (
	ReasonEmptyName    Reason = "empty_name"
	ReasonNameTooShort Reason = "name_too_short"
	ReasonMissingDate  Reason = "missing_date"
	ReasonFutureDate   Reason = "future_date"
	ReasonDateTooOld   Reason = "date_too_old"
)

// FieldError pairs a rejected field with its reason code.
type FieldError struct {
	Field  Field
	Reason Reason
}

// Validate checks the name and date of birth against the reference date.
// A zero dob means no date was supplied. It returns every applicable
// failure (at most one per field); an empty result means the input is
// valid. Comparisons are date-only: the time of day of both dob and now
// is ignored. Pure function of its inputs.
func Validate(name string, dob, now time.Time) []FieldError {
	var errs []FieldError

	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		errs = append(errs, FieldError{Field: FieldName, Reason: ReasonEmptyName})
	case utf8.RuneCountInString(trimmed) < config.MinNameRunes:
		errs = append(errs, FieldError{Field: FieldName, Reason: ReasonNameTooShort})
	}

	today := dateOnly(now)
	switch {
	case dob.IsZero():
		errs = append(errs, FieldError{Field: FieldDOB, Reason: ReasonMissingDate})
	case dateOnly(dob).After(today):
		errs = append(errs, FieldError{Field: FieldDOB, Reason: ReasonFutureDate})
	case dateOnly(dob).Before(today.AddDate(-config.MaxAgeYears, 0, 0)):
		// Strictly older than exactly MaxAgeYears before now is rejected;
		// the boundary date itself is accepted.
		errs = append(errs, FieldError{Field: FieldDOB, Reason: ReasonDateTooOld})
	}

	return errs
}

// dateOnly strips the time-of-day component and pins the location, so that
// dates entered in different zones compare by calendar date only.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
