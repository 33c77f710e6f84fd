package agecalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestAgeBetween verifies the core calendar subtraction, including the
// borrow behavior around February and variable month lengths.
func TestAgeBetween(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		now   time.Time
		want  Age
		desc  string
	}{
		{
			name:  "Same day",
			birth: date(1990, 6, 15),
			now:   date(1990, 6, 15),
			want:  Age{0, 0, 0},
			desc:  "Birth date equal to now must yield a zero age",
		},
		{
			name:  "Exact year boundary",
			birth: date(1990, 6, 15),
			now:   date(2025, 6, 15),
			want:  Age{35, 0, 0},
			desc:  "Birthday itself completes the year with no remainder",
		},
		{
			name:  "Day before birthday",
			birth: date(1990, 6, 15),
			now:   date(2025, 6, 14),
			want:  Age{34, 11, 30},
			desc:  "One day short of the birthday borrows from May (31 days)",
		},
		{
			name:  "Simple positive components",
			birth: date(2000, 3, 10),
			now:   date(2024, 7, 25),
			want:  Age{24, 4, 15},
			desc:  "No borrowing needed when all components are non-negative",
		},
		{
			name:  "Borrow across year boundary",
			birth: date(1999, 12, 31),
			now:   date(2000, 1, 1),
			want:  Age{0, 0, 1},
			desc:  "Days borrow from December (31), months borrow from years",
		},
		{
			name:  "Leapling before anniversary in leap year",
			birth: date(2000, 2, 29),
			now:   date(2024, 2, 28),
			want:  Age{23, 11, 30},
			desc:  "Borrows from January (31 days): 28-29+31=30 days, 11 months",
		},
		{
			name:  "Leapling on anniversary in leap year",
			birth: date(2000, 2, 29),
			now:   date(2024, 2, 29),
			want:  Age{24, 0, 0},
			desc:  "Feb 29 exists in 2024, so the anniversary completes cleanly",
		},
		{
			name:  "Borrowed month is leap February",
			birth: date(2020, 2, 10),
			now:   date(2020, 3, 5),
			want:  Age{0, 0, 24},
			desc:  "Borrows 29 days from February 2020: 5-10+29=24",
		},
		{
			name:  "Borrowed month is non-leap February",
			birth: date(2021, 2, 10),
			now:   date(2021, 3, 5),
			want:  Age{0, 0, 23},
			desc:  "Borrows 28 days from February 2021: 5-10+28=23",
		},
		{
			name:  "Month-end clamp (Jan 31 to Mar 1)",
			birth: date(2020, 1, 31),
			now:   date(2020, 3, 1),
			want:  Age{0, 1, 1},
			desc:  "The February anniversary clamps to Feb 29, leaving 1 month 1 day",
		},
		{
			name:  "Month-end clamp in non-leap year",
			birth: date(2021, 1, 31),
			now:   date(2021, 3, 1),
			want:  Age{0, 1, 1},
			desc:  "Same clamp with 28-day February: anniversary Feb 28, 1 day left",
		},
		{
			name:  "Time of day ignored",
			birth: time.Date(1990, 6, 15, 23, 59, 0, 0, time.UTC),
			now:   time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC),
			want:  Age{35, 0, 0},
			desc:  "Only calendar components participate in the subtraction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AgeBetween(tt.birth, tt.now)
			assert.Equal(t, tt.want, got, tt.desc)
		})
	}
}

// TestAgeBetween_Invariants sweeps a date range and checks the result
// bounds the data model promises.
func TestAgeBetween_Invariants(t *testing.T) {
	birth := date(2000, 2, 29)
	for offset := 0; offset < 1500; offset++ {
		now := date(2020, 1, 1).AddDate(0, 0, offset)
		got := AgeBetween(birth, now)

		assert.GreaterOrEqual(t, got.Years, 0)
		assert.GreaterOrEqual(t, got.Months, 0)
		assert.GreaterOrEqual(t, got.Days, 0)
		assert.LessOrEqual(t, got.Months, 11)
		assert.LessOrEqual(t, got.Days, 31)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2020, time.February, 29},
		{2021, time.February, 28},
		{2000, time.February, 29}, // divisible by 400
		{1900, time.February, 28}, // divisible by 100 but not 400
		{2021, time.January, 31},
		{2021, time.April, 30},
		{2021, time.December, 31},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, daysInMonth(tt.year, tt.month),
			"days in %v %d", tt.month, tt.year)
	}

	// Month underflow: month 0 normalizes to December of the previous year.
	assert.Equal(t, 31, daysInMonth(2021, time.Month(0)))
}

// TestNextBirthday verifies the projection used for calendar export.
func TestNextBirthday(t *testing.T) {
	// Reference "Now": June 15th, 2025 (Non-Leap Year)
	now := date(2025, 6, 15)

	tests := []struct {
		name     string
		birth    time.Time
		wantDate time.Time
		wantAge  int
	}{
		{
			name:     "Already passed this year",
			birth:    date(1990, 1, 1),
			wantDate: date(2026, 1, 1),
			wantAge:  36,
		},
		{
			name:     "Still ahead this year",
			birth:    date(1990, 12, 31),
			wantDate: date(2025, 12, 31),
			wantAge:  35,
		},
		{
			name:     "Today counts as next occurrence",
			birth:    date(1990, 6, 15),
			wantDate: date(2025, 6, 15),
			wantAge:  35,
		},
		{
			name:     "Leapling in non-leap year normalizes to Mar 1",
			birth:    date(2000, 2, 29),
			wantDate: date(2026, 3, 1),
			wantAge:  26,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, age := NextBirthday(now, tt.birth)
			assert.Equal(t, tt.wantDate, next)
			assert.Equal(t, tt.wantAge, age)
		})
	}
}

func TestNextBirthday_LeapYearContext(t *testing.T) {
	// In a leap year, Feb 29 exists and must be preserved.
	now := date(2024, 1, 1)
	next, age := NextBirthday(now, date(2000, 2, 29))

	assert.Equal(t, date(2024, 2, 29), next)
	assert.Equal(t, 24, age)
}
