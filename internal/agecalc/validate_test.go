package agecalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestValidate covers the per-field rules and the boundary dates.
// Reference "Now": June 15th, 2025.
func TestValidate(t *testing.T) {
	now := date(2025, 6, 15)

	tests := []struct {
		name  string
		input string
		dob   time.Time
		want  []FieldError
		desc  string
	}{
		{
			name:  "Valid input",
			input: "Alice",
			dob:   date(1990, 6, 15),
			want:  nil,
			desc:  "Well-formed name and date produce no errors",
		},
		{
			name:  "Empty name",
			input: "",
			dob:   date(1990, 6, 15),
			want:  []FieldError{{FieldName, ReasonEmptyName}},
		},
		{
			name:  "Whitespace-only name",
			input: "   \t ",
			dob:   date(1990, 6, 15),
			want:  []FieldError{{FieldName, ReasonEmptyName}},
			desc:  "Surrounding whitespace is trimmed before the emptiness check",
		},
		{
			name:  "Single-character name",
			input: "A",
			dob:   date(1990, 6, 15),
			want:  []FieldError{{FieldName, ReasonNameTooShort}},
		},
		{
			name:  "Two-character name accepted",
			input: "Al",
			dob:   date(1990, 6, 15),
			want:  nil,
		},
		{
			name:  "Multibyte name length counted in runes",
			input: "Ál",
			dob:   date(1990, 6, 15),
			want:  nil,
			desc:  "Two runes, three bytes: must pass the length check",
		},
		{
			name:  "Missing date",
			input: "Alice",
			dob:   time.Time{},
			want:  []FieldError{{FieldDOB, ReasonMissingDate}},
		},
		{
			name:  "Date one day in the future",
			input: "Alice",
			dob:   date(2025, 6, 16),
			want:  []FieldError{{FieldDOB, ReasonFutureDate}},
		},
		{
			name:  "Today is not a future date",
			input: "Alice",
			dob:   date(2025, 6, 15),
			want:  nil,
		},
		{
			name:  "Future by time of day only",
			input: "Alice",
			dob:   time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC),
			want:  nil,
			desc:  "Date-only comparison: a later time of day today is fine",
		},
		{
			name:  "Exactly 120 years accepted",
			input: "Alice",
			dob:   date(1905, 6, 15),
			want:  nil,
		},
		{
			name:  "One day past 120 years rejected",
			input: "Alice",
			dob:   date(1905, 6, 14),
			want:  []FieldError{{FieldDOB, ReasonDateTooOld}},
		},
		{
			name:  "121 years rejected",
			input: "Alice",
			dob:   date(1904, 6, 15),
			want:  []FieldError{{FieldDOB, ReasonDateTooOld}},
		},
		{
			name:  "Both fields invalid",
			input: "",
			dob:   date(2026, 1, 1),
			want: []FieldError{
				{FieldName, ReasonEmptyName},
				{FieldDOB, ReasonFutureDate},
			},
			desc: "All applicable errors are collected, not just the first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.input, tt.dob, now)
			assert.Equal(t, tt.want, got, tt.desc)
		})
	}
}

// TestValidate_Pure double-checks that Validate has no hidden clock
// dependency: the same inputs always give the same answer.
func TestValidate_Pure(t *testing.T) {
	now := date(2025, 6, 15)
	dob := date(2025, 6, 16)

	first := Validate("Bob", dob, now)
	second := Validate("Bob", dob, now)
	assert.Equal(t, first, second)

	// Moving the reference date changes the verdict; the clock is an input.
	assert.Empty(t, Validate("Bob", dob, date(2025, 6, 17)))
}
