package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "", "yesterday"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"09:00", "23:59", "00:00", "17:30:45"}
	invalid := []string{"24:00", "9am", "09:60", "", "09"}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestCoordinateRanges(t *testing.T) {
	if !IsValidLatitude(0) || !IsValidLatitude(-90) || !IsValidLatitude(90) {
		t.Error("boundary latitudes should be valid")
	}
	if IsValidLatitude(90.1) || IsValidLatitude(-91) {
		t.Error("out-of-range latitudes should be invalid")
	}
	if !IsValidLongitude(180) || !IsValidLongitude(-180) {
		t.Error("boundary longitudes should be valid")
	}
	if IsValidLongitude(180.5) || IsValidLongitude(-181) {
		t.Error("out-of-range longitudes should be invalid")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"present", "late", "half-day"}
	if !IsInSlice("late", slice) {
		t.Error(`IsInSlice("late") = false, want true`)
	}
	if IsInSlice("sick", slice) {
		t.Error(`IsInSlice("sick") = true, want false`)
	}
}
