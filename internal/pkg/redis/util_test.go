package redis

import (
	"testing"
	"time"
)

func TestUntilMidnight(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"noon", time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), 12 * time.Hour},
		{"just after midnight", time.Date(2024, 3, 15, 0, 0, 1, 0, time.UTC), 24*time.Hour - time.Second},
		{"last second floors to one", time.Date(2024, 3, 15, 23, 59, 59, 500_000_000, time.UTC), time.Second},
		{"offset zone uses utc day", time.Date(2024, 3, 15, 20, 0, 0, 0, time.FixedZone("EST", -5*3600)), 23 * time.Hour},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := UntilMidnight(tc.now); got != tc.want {
				t.Fatalf("UntilMidnight(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}
