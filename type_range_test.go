package ledger

import (
	"testing"
)

func TestRange_Contains(t *testing.T) {
	r := Range{NewDate(2024, 2, 1), NewDate(2024, 2, 29)}
	tests := []struct {
		d    Date
		want bool
	}{
		{NewDate(2024, 1, 31), false},
		{NewDate(2024, 2, 1), true},
		{NewDate(2024, 2, 15), true},
		{NewDate(2024, 2, 29), true},
		{NewDate(2024, 3, 1), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.d); got != tt.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tt.d, got, tt.want)
		}
	}
}

func TestPeriod_Previous(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		on     Date
		want   Range
	}{
		{"month in leap year", Monthly, NewDate(2024, 3, 15), Range{NewDate(2024, 2, 1), NewDate(2024, 2, 29)}},
		{"month across years", Monthly, NewDate(2024, 1, 1), Range{NewDate(2023, 12, 1), NewDate(2023, 12, 31)}},
		{"month from the 31st", Monthly, NewDate(2024, 5, 31), Range{NewDate(2024, 4, 1), NewDate(2024, 4, 30)}},
		{"year", Yearly, NewDate(2024, 12, 31), Range{NewDate(2023, 1, 1), NewDate(2023, 12, 31)}},
		{"day", Daily, NewDate(2024, 3, 1), Range{NewDate(2024, 2, 29), NewDate(2024, 2, 29)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.period.Previous(tt.on); got != tt.want {
				t.Errorf("Previous(%v) = %v, want %v", tt.on, got, tt.want)
			}
		})
	}
}
