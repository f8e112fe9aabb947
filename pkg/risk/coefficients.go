package risk

import (
	"fmt"
	"math"
)

// ModelCoefficients is one immutable version of the readmission model: the
// covariate weights of the proportional-hazards linear predictor plus the
// baseline Weibull shape and scale. Versioning lives outside the engine;
// callers construct one Engine per coefficient set.
type ModelCoefficients struct {
	Age            float64 `json:"age" yaml:"age"`
	Comorbidity    float64 `json:"comorbidity" yaml:"comorbidity"`
	PriorAdmission float64 `json:"prior_admission" yaml:"prior_admission"`
	Diabetes       float64 `json:"diabetes" yaml:"diabetes"`
	CHF            float64 `json:"chf" yaml:"chf"`
	COPD           float64 `json:"copd" yaml:"copd"`
	Socioeconomic  float64 `json:"socioeconomic" yaml:"socioeconomic"`

	Shape float64 `json:"shape" yaml:"shape"`
	Scale float64 `json:"scale" yaml:"scale"`
}

// DefaultCoefficients is the population baseline model shipped with the
// engine. Weights follow the clinical gradient: every risk covariate pulls
// the hazard up, socioeconomic standing pulls it down.
func DefaultCoefficients() ModelCoefficients {
	return ModelCoefficients{
		Age:            0.40,
		Comorbidity:    0.30,
		PriorAdmission: 0.35,
		Diabetes:       0.25,
		CHF:            0.40,
		COPD:           0.30,
		Socioeconomic:  -0.30,
		Shape:          1.5,
		Scale:          60,
	}
}

// Validate checks that the baseline Weibull is well formed and every weight
// is finite.
func (c ModelCoefficients) Validate() error {
	if c.Shape <= 0 || math.IsNaN(c.Shape) || math.IsInf(c.Shape, 0) {
		return fmt.Errorf("%w: shape must be positive, got %v", ErrInvalidParameter, c.Shape)
	}
	if c.Scale <= 0 || math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidParameter, c.Scale)
	}
	for _, w := range []float64{c.Age, c.Comorbidity, c.PriorAdmission, c.Diabetes, c.CHF, c.COPD, c.Socioeconomic} {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: non-finite covariate weight", ErrInvalidParameter)
		}
	}
	return nil
}
