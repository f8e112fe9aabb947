package risk

import (
	"errors"
	"math"
	"testing"
)

func TestDecomposeSumsToOne(t *testing.T) {
	for _, day := range []float64{0.5, 1, 10, 30, 45, 60, 90, 365} {
		d, err := DecomposeAt(day)
		if err != nil {
			t.Fatalf("day %v: unexpected error: %v", day, err)
		}
		sum := d.Readmission + d.Death + d.Transfer + d.Recovery
		if math.Abs(sum-1.0) > 1e-9 {
			t.Fatalf("day %v: components sum to %v", day, sum)
		}
		for _, p := range []float64{d.Readmission, d.Death, d.Transfer, d.Recovery} {
			if p <= 0 || p >= 1 {
				t.Fatalf("day %v: component out of (0,1): %v", day, p)
			}
		}
	}
}

func TestDecomposeAtZeroIsEqualSplit(t *testing.T) {
	d, err := DecomposeAt(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range []float64{d.Readmission, d.Death, d.Transfer, d.Recovery} {
		approx(t, p, 0.25, 1e-12)
	}
}

func TestDecomposeAt30MatchesClosedForm(t *testing.T) {
	d, err := DecomposeAt(30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approx(t, d.Readmission, 0.398330, 1e-5)
	approx(t, d.Death, 0.080526, 1e-5)
	approx(t, d.Transfer, 0.110806, 1e-5)
	approx(t, d.Recovery, 0.410338, 1e-5)
}

func TestDecomposeRejectsBadTime(t *testing.T) {
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := DecomposeAt(bad); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("time %v: expected ErrInvalidParameter, got %v", bad, err)
		}
	}
}
