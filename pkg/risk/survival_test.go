package risk

import (
	"errors"
	"math"
	"testing"
)

func approx(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tolerance %v)", got, want, tol)
	}
}

func TestSurvivalKnownValue(t *testing.T) {
	s, err := Survival(30, 1.5, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// exp(-(30/60)^1.5)
	approx(t, s, 0.70218914, 1e-6)
}

func TestSurvivalAtZeroIsOne(t *testing.T) {
	s, err := Survival(0, 1.5, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approx(t, s, 1.0, 1e-12)
}

func TestSurvivalDecreasesOverTime(t *testing.T) {
	prev := 1.0
	for day := 1; day <= 180; day++ {
		s, err := Survival(float64(day), 1.5, 60)
		if err != nil {
			t.Fatalf("day %d: unexpected error: %v", day, err)
		}
		if s > prev {
			t.Fatalf("survival increased at day %d: %v > %v", day, s, prev)
		}
		prev = s
	}
}

func TestHazardRateKnownValue(t *testing.T) {
	h, err := HazardRate(30, 1.5, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (1.5/60) * (30/60)^0.5
	approx(t, h, 0.01767767, 1e-7)
}

func TestSurvivalRejectsBadDomain(t *testing.T) {
	cases := []struct {
		name            string
		t, shape, scale float64
	}{
		{"zero shape", 30, 0, 60},
		{"negative shape", 30, -1, 60},
		{"zero scale", 30, 1.5, 0},
		{"negative scale", 30, 1.5, -60},
		{"negative time", -1, 1.5, 60},
		{"nan time", math.NaN(), 1.5, 60},
		{"inf scale", 30, 1.5, math.Inf(1)},
	}
	for _, tc := range cases {
		if _, err := Survival(tc.t, tc.shape, tc.scale); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%s: expected ErrInvalidParameter, got %v", tc.name, err)
		}
		if _, err := HazardRate(tc.t, tc.shape, tc.scale); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%s: expected ErrInvalidParameter from hazard, got %v", tc.name, err)
		}
	}
}
