package risk

import (
	"errors"
	"math"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultCoefficients())
	if err != nil {
		t.Fatalf("failed to build engine: %v", err)
	}
	return engine
}

func TestAssessBaselinePatient(t *testing.T) {
	engine := newTestEngine(t)
	result, err := engine.Assess(baselinePatient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approx(t, result.HazardRatio, 1.0, 1e-12)
	approx(t, result.Risk30Day, 0.29781086, 1e-6)
	if result.Category != CategoryLow {
		t.Fatalf("expected low category, got %s", result.Category)
	}
	if len(result.CarePlan) != 4 {
		t.Fatalf("expected 4-item care plan, got %d", len(result.CarePlan))
	}
	sum := result.CompetingRisks.Readmission + result.CompetingRisks.Death +
		result.CompetingRisks.Transfer + result.CompetingRisks.Recovery
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("competing risks sum to %v", sum)
	}
}

func TestAssessHighRiskPatient(t *testing.T) {
	engine := newTestEngine(t)
	result, err := engine.Assess(highAcuityPatient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Category != CategoryHigh {
		t.Fatalf("expected high category, got %s", result.Category)
	}
	if len(result.CarePlan) != 6 {
		t.Fatalf("expected 6-item care plan, got %d", len(result.CarePlan))
	}
	if result.CarePlan[0] != "HIGH PRIORITY: Schedule follow-up within 3 days of discharge" {
		t.Fatalf("unexpected first recommendation: %q", result.CarePlan[0])
	}
	if result.Risk90Day < result.Risk60Day || result.Risk60Day < result.Risk30Day {
		t.Fatal("horizon risks not ordered")
	}
}

func TestAssessRejectsMalformedFeatures(t *testing.T) {
	engine := newTestEngine(t)
	bad := baselinePatient()
	bad.Age = math.NaN()
	if _, err := engine.Assess(bad); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestSurvivalCurveSamples(t *testing.T) {
	engine := newTestEngine(t)
	curve, err := engine.SurvivalCurve(90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(curve) != 91 {
		t.Fatalf("expected 91 points, got %d", len(curve))
	}
	approx(t, curve[0].Survival, 1.0, 1e-12)
	for i := 1; i < len(curve); i++ {
		if curve[i].Survival > curve[i-1].Survival {
			t.Fatalf("survival increased at day %d", curve[i].Day)
		}
	}
}

func TestSurvivalCurveRejectsNonPositiveLength(t *testing.T) {
	engine := newTestEngine(t)
	for _, days := range []int{0, -10} {
		if _, err := engine.SurvivalCurve(days); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("days %d: expected ErrInvalidParameter, got %v", days, err)
		}
	}
}

func TestNewEngineRejectsBadCoefficients(t *testing.T) {
	bad := DefaultCoefficients()
	bad.Scale = 0
	if _, err := NewEngine(bad); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}
