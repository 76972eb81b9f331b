package ledger

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewDate_Normalizes(t *testing.T) {
	if got, want := NewDate(2024, 3, 0), NewDate(2024, 2, 29); got != want {
		t.Errorf("NewDate(2024, 3, 0) = %v, want %v", got, want)
	}
	if got, want := NewDate(2023, 13, 1), NewDate(2024, 1, 1); got != want {
		t.Errorf("NewDate(2023, 13, 1) = %v, want %v", got, want)
	}
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, 2, 29)
	b := NewDate(2024, 3, 1)
	if !a.Before(b) || b.Before(a) || a.After(b) || !b.After(a) {
		t.Errorf("%v and %v are not ordered", a, b)
	}
	if a.Compare(a) != 0 {
		t.Errorf("%v.Compare(itself) = %d, want 0", a, a.Compare(a))
	}
}

func TestDate_StartEndOf(t *testing.T) {
	d := NewDate(2024, time.February, 15)
	tests := []struct {
		period     Period
		start, end Date
	}{
		{Daily, d, d},
		{Monthly, NewDate(2024, 2, 1), NewDate(2024, 2, 29)},
		{Yearly, NewDate(2024, 1, 1), NewDate(2024, 12, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			if got := d.StartOf(tt.period); got != tt.start {
				t.Errorf("StartOf(%v) = %v, want %v", tt.period, got, tt.start)
			}
			if got := d.EndOf(tt.period); got != tt.end {
				t.Errorf("EndOf(%v) = %v, want %v", tt.period, got, tt.end)
			}
		})
	}
}

func TestDecodeDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2024-03-15", NewDate(2024, time.March, 15), false},
		{"2024-02-29", NewDate(2024, time.February, 29), false},
		{"2023-02-29", Date{}, true}, // not a leap year
		{"2024-3-15", Date{}, true},
		{"24-03-15", Date{}, true},
		{"2024/03/15", Date{}, true},
		{" 2024-03-15", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := DecodeDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("DecodeDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("DecodeDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	today := NewDate(2024, time.March, 15)

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// Standard ISO Format
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{" 2025-07-01 ", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},

		// Relative Duration Format
		{"0d", today, false},
		{"-1d", NewDate(2024, time.March, 14), false},
		{"+1d", NewDate(2024, time.March, 16), false},
		{"1d", Date{}, true},
		{"-1m", NewDate(2024, time.February, 15), false},
		{"-1y", NewDate(2023, time.March, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input, today)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Date
		wantErr  bool
	}{
		{"valid date", `"2025-07-31"`, NewDate(2025, 7, 31), false},
		{"lenient date is refused", `"2025-7-31"`, Date{}, true},
		{"not a string", `20250731`, Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			err := json.Unmarshal([]byte(tt.json), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("json.Unmarshal(%s) error = %v, wantErr %v", tt.json, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", tt.json, got, tt.expected)
			}
		})
	}
}
