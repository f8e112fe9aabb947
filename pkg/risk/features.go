package risk

import (
	"fmt"
	"math"
)

// PatientFeatures is the covariate vector for one assessment. The patient
// identifier stays with the caller; the engine never sees it.
type PatientFeatures struct {
	Age                float64 `json:"age"`
	NumComorbidities   int     `json:"num_comorbidities"`
	PriorAdmissions    int     `json:"prior_admissions"`
	Diabetes           bool    `json:"diabetes"`
	CHF                bool    `json:"chf"`
	COPD               bool    `json:"copd"`
	SocioeconomicIndex float64 `json:"socioeconomic_index"`
}

// Validate rejects non-finite and out-of-range covariates before they reach
// the scorer.
func (f PatientFeatures) Validate() error {
	if math.IsNaN(f.Age) || math.IsInf(f.Age, 0) {
		return fmt.Errorf("%w: age is not finite", ErrMalformedInput)
	}
	if math.IsNaN(f.SocioeconomicIndex) || math.IsInf(f.SocioeconomicIndex, 0) {
		return fmt.Errorf("%w: socioeconomic index is not finite", ErrMalformedInput)
	}
	if f.Age < 0 || f.Age > 120 {
		return fmt.Errorf("%w: age %.1f outside [0,120]", ErrMalformedInput, f.Age)
	}
	if f.NumComorbidities < 0 {
		return fmt.Errorf("%w: negative comorbidity count", ErrMalformedInput)
	}
	if f.PriorAdmissions < 0 {
		return fmt.Errorf("%w: negative prior admission count", ErrMalformedInput)
	}
	if f.SocioeconomicIndex < 0 || f.SocioeconomicIndex > 100 {
		return fmt.Errorf("%w: socioeconomic index %.1f outside [0,100]", ErrMalformedInput, f.SocioeconomicIndex)
	}
	return nil
}
