package risk

import "math"

// Category is the discrete triage label derived from the 30-day risk.
type Category string

const (
	CategoryLow    Category = "low"
	CategoryMedium Category = "medium"
	CategoryHigh   Category = "high"
)

// Horizons are the fixed projection windows in days.
var Horizons = [3]float64{30, 60, 90}

// categoryThresholds is ordered highest first; the first strict exceedance
// wins. Triage is anchored to the 30-day window only, the earliest
// actionable one.
var categoryThresholds = []struct {
	above    float64
	category Category
}{
	{0.6, CategoryHigh},
	{0.3, CategoryMedium},
}

// Confidence band half-width as a fraction of the 30-day risk. A documented
// heuristic, not a derived interval; changing it changes observable output.
const confidenceSpread = 0.15

// Projection carries the horizon risks and everything derived from them.
type Projection struct {
	HazardRatio     float64
	Risk30Day       float64
	Risk60Day       float64
	Risk90Day       float64
	Category        Category
	ConfidenceLower float64
	ConfidenceUpper float64
}

// Project computes the hazard-ratio-adjusted readmission risk at each fixed
// horizon: risk(t) = 1 - S0(t)^r, clamped into [0,1]. With shape and scale
// positive the baseline survival is non-increasing in t, so the three risks
// come out ordered.
func Project(f PatientFeatures, c ModelCoefficients) (Projection, error) {
	ratio, err := HazardRatio(f, c)
	if err != nil {
		return Projection{}, err
	}

	var risks [3]float64
	for i, t := range Horizons {
		s0, err := Survival(t, c.Shape, c.Scale)
		if err != nil {
			return Projection{}, err
		}
		adjusted := math.Pow(s0, ratio)
		risks[i] = clamp01(1 - adjusted)
	}

	return Projection{
		HazardRatio:     ratio,
		Risk30Day:       risks[0],
		Risk60Day:       risks[1],
		Risk90Day:       risks[2],
		Category:        Categorize(risks[0]),
		ConfidenceLower: clamp01(risks[0] * (1 - confidenceSpread)),
		ConfidenceUpper: clamp01(risks[0] * (1 + confidenceSpread)),
	}, nil
}

// Categorize maps a 30-day risk to its triage label. Thresholds are strict:
// a risk of exactly 0.6 is still medium.
func Categorize(risk30 float64) Category {
	for _, th := range categoryThresholds {
		if risk30 > th.above {
			return th.category
		}
	}
	return CategoryLow
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
