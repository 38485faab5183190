package utils

import "testing"

func TestSubtractMinutes(t *testing.T) {
	cases := []struct {
		clock   string
		minutes int
		want    string
	}{
		{"04:40", 10, "04:30"},
		{"00:05", 10, "23:55"}, // 跨午夜回绕
		{"00:00", 1, "23:59"},
		{"12:00", 0, "12:00"},
		{"01:00", 90, "23:30"},
	}

	for _, tc := range cases {
		got, err := SubtractMinutes(tc.clock, tc.minutes)
		if err != nil {
			t.Fatalf("SubtractMinutes(%q, %d): %v", tc.clock, tc.minutes, err)
		}
		if got != tc.want {
			t.Errorf("SubtractMinutes(%q, %d) = %q, want %q", tc.clock, tc.minutes, got, tc.want)
		}
	}
}

func TestSubtractMinutesInvalid(t *testing.T) {
	if _, err := SubtractMinutes("25:99", 10); err == nil {
		t.Fatal("expected error for invalid clock")
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	d, err := ParseDateKey("2026-02-19")
	if err != nil {
		t.Fatalf("ParseDateKey: %v", err)
	}
	if got := DateKey(d); got != "2026-02-19" {
		t.Errorf("DateKey = %q, want 2026-02-19", got)
	}
}
