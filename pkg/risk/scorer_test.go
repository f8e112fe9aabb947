package risk

import (
	"errors"
	"math"
	"testing"
)

func baselinePatient() PatientFeatures {
	return PatientFeatures{
		Age:                65,
		NumComorbidities:   0,
		PriorAdmissions:    0,
		SocioeconomicIndex: 50,
	}
}

func TestHazardRatioBaselineIsOne(t *testing.T) {
	r, err := HazardRatio(baselinePatient(), DefaultCoefficients())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approx(t, r, 1.0, 1e-12)
}

func TestHazardRatioMonotonicInRiskCovariates(t *testing.T) {
	coeffs := DefaultCoefficients()
	base, err := HazardRatio(baselinePatient(), coeffs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bump := func(name string, f PatientFeatures) {
		t.Helper()
		r, err := HazardRatio(f, coeffs)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if r <= base {
			t.Fatalf("%s: expected ratio above baseline, got %v <= %v", name, r, base)
		}
	}

	older := baselinePatient()
	older.Age = 80
	bump("older", older)

	comorbid := baselinePatient()
	comorbid.NumComorbidities = 2
	bump("comorbid", comorbid)

	readmitted := baselinePatient()
	readmitted.PriorAdmissions = 1
	bump("prior admission", readmitted)

	diabetic := baselinePatient()
	diabetic.Diabetes = true
	bump("diabetes", diabetic)

	heartFailure := baselinePatient()
	heartFailure.CHF = true
	bump("chf", heartFailure)

	copd := baselinePatient()
	copd.COPD = true
	bump("copd", copd)
}

func TestHazardRatioFallsWithSocioeconomicIndex(t *testing.T) {
	coeffs := DefaultCoefficients()
	disadvantaged := baselinePatient()
	disadvantaged.SocioeconomicIndex = 20
	advantaged := baselinePatient()
	advantaged.SocioeconomicIndex = 90

	low, err := HazardRatio(disadvantaged, coeffs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	high, err := HazardRatio(advantaged, coeffs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high >= low {
		t.Fatalf("expected higher index to lower hazard: %v >= %v", high, low)
	}
}

func TestHazardRatioRejectsMalformedInput(t *testing.T) {
	coeffs := DefaultCoefficients()

	nanAge := baselinePatient()
	nanAge.Age = math.NaN()
	if _, err := HazardRatio(nanAge, coeffs); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for NaN age, got %v", err)
	}

	infIndex := baselinePatient()
	infIndex.SocioeconomicIndex = math.Inf(1)
	if _, err := HazardRatio(infIndex, coeffs); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for infinite index, got %v", err)
	}

	negative := baselinePatient()
	negative.PriorAdmissions = -1
	if _, err := HazardRatio(negative, coeffs); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for negative count, got %v", err)
	}
}
