package engagement

import (
	"math"
	"testing"
)

func ptr(v int) *int { return &v }

func TestChange(t *testing.T) {
	cases := []struct {
		current, previous, want float64
	}{
		{0, 0, 0},
		{5, 0, 100},
		{150, 100, 50},
		{50, 100, -50},
		{0, 100, -100},
		{115, 50, 130},
	}
	for _, tc := range cases {
		got := Change(tc.current, tc.previous)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Change(%v, %v) = %v, want %v", tc.current, tc.previous, got, tc.want)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Change(%v, %v) is not finite", tc.current, tc.previous)
		}
	}
}

func TestCalculate(t *testing.T) {
	m := Metrics{Likes: nil, Comments: ptr(3), Shares: nil, Saves: ptr(2)}
	if got := Calculate(m); got != 5 {
		t.Fatalf("Calculate = %d, want 5", got)
	}
	if got := Calculate(Metrics{}); got != 0 {
		t.Fatalf("Calculate(empty) = %d, want 0", got)
	}
}

func TestTrend(t *testing.T) {
	up := Trend(115, 50)
	if up.Value != 130 || !up.IsPositive || up.RateChange != 130 {
		t.Errorf("Trend(115, 50) = %+v", up)
	}

	down := Trend(2, 3)
	if down.Value != 33.3 || down.IsPositive || down.RateChange != -33.3 {
		t.Errorf("Trend(2, 3) = %+v", down)
	}

	flat := Trend(0, 0)
	if flat.Value != 0 || !flat.IsPositive {
		t.Errorf("Trend(0, 0) = %+v", flat)
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		v      float64
		places int
		want   float64
	}{
		{3.14159, 2, 3.14},
		{2.675, 1, 2.7},
		{-33.333, 1, -33.3},
		{130, 1, 130},
	}
	for _, tc := range cases {
		if got := Round(tc.v, tc.places); got != tc.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tc.v, tc.places, got, tc.want)
		}
	}
}
