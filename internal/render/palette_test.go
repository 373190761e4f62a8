package render

import "testing"

func TestDriveTimeColor(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "#2980B9"},
		{1.9, "#2980B9"},
		{2, "#8E44AD"},
		{3.9, "#8E44AD"},
		{4, "#EB984E"},
		{5.9, "#EB984E"},
		{6, "#E74C3C"},
		{12.3, "#E74C3C"},
	}

	for _, tt := range tests {
		if got := DriveTimeColor(tt.hours); got != tt.want {
			t.Errorf("DriveTimeColor(%v) = %s, want %s", tt.hours, got, tt.want)
		}
	}
}

func TestPollutionColorTotalOverDomain(t *testing.T) {
	seen := map[string]bool{}
	for v := 1; v <= 5; v++ {
		c, ok := PollutionColor(v)
		if !ok || c == "" {
			t.Fatalf("PollutionColor(%d) undefined", v)
		}
		if seen[c] {
			t.Fatalf("PollutionColor(%d) = %s reused", v, c)
		}
		seen[c] = true
	}

	for _, v := range []int{0, 6, -1} {
		if _, ok := PollutionColor(v); ok {
			t.Errorf("PollutionColor(%d) should be undefined", v)
		}
	}
}
