package risk

import "fmt"

// Assessment is the complete output of one engine invocation. It is built
// fresh per call and never mutated afterwards; identity assignment and
// storage belong to the caller.
type Assessment struct {
	Risk30Day       float64       `json:"risk_30_day"`
	Risk60Day       float64       `json:"risk_60_day"`
	Risk90Day       float64       `json:"risk_90_day"`
	HazardRatio     float64       `json:"hazard_ratio"`
	Category        Category      `json:"risk_category"`
	ConfidenceLower float64       `json:"confidence_lower"`
	ConfidenceUpper float64       `json:"confidence_upper"`
	CompetingRisks  Decomposition `json:"competing_risks"`
	CarePlan        []string      `json:"care_plan"`
}

// CurvePoint is one sample of the baseline survival curve.
type CurvePoint struct {
	Day      int     `json:"day"`
	Survival float64 `json:"survival"`
}

// Engine evaluates readmission risk against one immutable coefficient set.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	coeffs ModelCoefficients
}

// NewEngine builds an engine around the given coefficients.
func NewEngine(coeffs ModelCoefficients) (*Engine, error) {
	if err := coeffs.Validate(); err != nil {
		return nil, fmt.Errorf("risk engine: %w", err)
	}
	return &Engine{coeffs: coeffs}, nil
}

// Coefficients returns the coefficient set the engine was built with.
func (e *Engine) Coefficients() ModelCoefficients {
	return e.coeffs
}

// Assess runs the full pipeline for one patient: hazard scoring, horizon
// projection, triage, the population competing-risks split at the 30-day
// window that also defines the category, and the care plan for that
// category.
func (e *Engine) Assess(features PatientFeatures) (Assessment, error) {
	projection, err := Project(features, e.coeffs)
	if err != nil {
		return Assessment{}, err
	}

	competing, err := DecomposeAt(Horizons[0])
	if err != nil {
		return Assessment{}, err
	}

	return Assessment{
		Risk30Day:       projection.Risk30Day,
		Risk60Day:       projection.Risk60Day,
		Risk90Day:       projection.Risk90Day,
		HazardRatio:     projection.HazardRatio,
		Category:        projection.Category,
		ConfidenceLower: projection.ConfidenceLower,
		ConfidenceUpper: projection.ConfidenceUpper,
		CompetingRisks:  competing,
		CarePlan:        SelectCarePlan(projection.Category),
	}, nil
}

// SurvivalCurve samples the baseline survival function daily from day 0
// through the requested horizon.
func (e *Engine) SurvivalCurve(days int) ([]CurvePoint, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: curve length must be positive, got %d", ErrInvalidParameter, days)
	}
	points := make([]CurvePoint, 0, days+1)
	for day := 0; day <= days; day++ {
		s, err := Survival(float64(day), e.coeffs.Shape, e.coeffs.Scale)
		if err != nil {
			return nil, err
		}
		points = append(points, CurvePoint{Day: day, Survival: s})
	}
	return points, nil
}
