package agecalc

import "time"

// Age is the elapsed time between two calendar dates, expressed in whole
// years, months and days. For birth <= now all fields are non-negative,
// Months is at most 11 and Days never exceeds the length of the borrowed
// month.
type Age struct {
	Years  int
	Months int
	Days   int
}

// AgeBetween computes the calendar difference between birth and now.
// It is defined only for birth <= now; callers guarantee that via Validate.
//
// The subtraction works per component with borrowing: a negative day
// difference borrows the actual length of the month preceding now (so
// leap-February and 28/29/30/31-day months are all handled), and a negative
// month difference borrows 12 months from the years.
//
// When the birth day exceeds the borrowed month's length (e.g. born
// Jan 31, now Mar 1) the single borrow still leaves the days negative. The
// monthly anniversary then clamps to the last day of that short month, so
// the remaining distance is exactly now's day-of-month.
//
// Time of day and timezone offsets are ignored; only the calendar date
// components participate.
func AgeBetween(birth, now time.Time) Age {
	years := now.Year() - birth.Year()
	months := int(now.Month()) - int(birth.Month())
	days := now.Day() - birth.Day()

	if days < 0 {
		months--
		days += daysInMonth(now.Year(), now.Month()-1)
		if days < 0 {
			days = now.Day()
		}
	}
	if months < 0 {
		years--
		months += 12
	}

	return Age{Years: years, Months: months, Days: days}
}

// NextBirthday returns the date of the next birthday on or after now,
// together with the age the person turns on that date. For leaplings in a
// non-leap year, Go's time.Date normalizes Feb 29 to Mar 1.
func NextBirthday(now, birth time.Time) (time.Time, int) {
	loc := now.Location()

	candidate := time.Date(now.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if candidate.Before(todayStart) {
		candidate = time.Date(now.Year()+1, birth.Month(), birth.Day(), 0, 0, 0, 0, loc)
	}

	return candidate, candidate.Year() - birth.Year()
}

// daysInMonth returns the number of days in the given month, leap years
// included. Day 0 of the following month normalizes to the last day.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
