package timeclock

import "testing"

func strPtr(s string) *string { return &s }

func TestWorkedHours(t *testing.T) {
	cases := []struct {
		name       string
		clockIn    *string
		clockOut   *string
		breakStart *string
		breakEnd   *string
		want       float64
	}{
		{"full day no break", strPtr("09:00"), strPtr("17:30"), nil, nil, 8.5},
		{"full day with break", strPtr("09:00"), strPtr("18:00"), strPtr("13:00"), strPtr("13:30"), 8.5},
		{"one hour break", strPtr("08:00"), strPtr("17:00"), strPtr("12:00"), strPtr("13:00"), 8},
		{"missing clock in", nil, strPtr("17:00"), nil, nil, 0},
		{"missing clock out", strPtr("09:00"), nil, nil, nil, 0},
		{"empty clock out", strPtr("09:00"), strPtr(""), nil, nil, 0},
		{"clock out before clock in", strPtr("17:00"), strPtr("09:00"), nil, nil, 0},
		{"break longer than shift", strPtr("09:00"), strPtr("10:00"), strPtr("09:00"), strPtr("12:00"), 0},
		{"break start only is ignored", strPtr("09:00"), strPtr("17:00"), strPtr("12:00"), nil, 8},
		{"inverted break truncates to zero", strPtr("09:00"), strPtr("17:00"), strPtr("13:00"), strPtr("12:00"), 8},
		{"seconds are ignored", strPtr("09:00:15"), strPtr("17:30:45"), nil, nil, 8.5},
		{"short shift rounds to 2 decimals", strPtr("09:00"), strPtr("09:50"), nil, nil, 0.83},
		{"malformed clock in", strPtr("nine"), strPtr("17:00"), nil, nil, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WorkedHours(c.clockIn, c.clockOut, c.breakStart, c.breakEnd)
			if got != c.want {
				t.Errorf("WorkedHours = %v, want %v", got, c.want)
			}
		})
	}
}

func TestBreakHours(t *testing.T) {
	cases := []struct {
		name       string
		breakStart *string
		breakEnd   *string
		want       float64
	}{
		{"half hour", strPtr("13:00"), strPtr("13:30"), 0.5},
		{"missing start", nil, strPtr("13:30"), 0},
		{"missing end", strPtr("13:00"), nil, 0},
		{"inverted truncates to zero", strPtr("14:00"), strPtr("13:00"), 0},
		{"forty minutes", strPtr("12:10"), strPtr("12:50"), 0.67},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := BreakHours(c.breakStart, c.breakEnd)
			if got != c.want {
				t.Errorf("BreakHours = %v, want %v", got, c.want)
			}
		})
	}
}
