package risk

import "math"

// Covariate centering applied before the linear predictor: age is centered
// at 65 and scaled by a decade, socioeconomic index is centered at its
// population midpoint. A patient sitting exactly on both centers with no
// comorbidity history scores a hazard ratio of 1.0.
const (
	ageCenter = 65.0
	ageScale  = 10.0
	seiCenter = 50.0
	seiScale  = 50.0
)

// HazardRatio computes exp(linear predictor): the multiplicative effect of
// the patient's covariates on instantaneous readmission hazard relative to
// baseline. Under the proportional-hazards assumption the ratio is constant
// across time, so S_adj(t) = S0(t)^r.
func HazardRatio(f PatientFeatures, c ModelCoefficients) (float64, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return math.Exp(linearPredictor(f, c)), nil
}

func linearPredictor(f PatientFeatures, c ModelCoefficients) float64 {
	lp := c.Age * (f.Age - ageCenter) / ageScale
	lp += c.Comorbidity * float64(f.NumComorbidities)
	lp += c.PriorAdmission * float64(f.PriorAdmissions)
	if f.Diabetes {
		lp += c.Diabetes
	}
	if f.CHF {
		lp += c.CHF
	}
	if f.COPD {
		lp += c.COPD
	}
	lp += c.Socioeconomic * (f.SocioeconomicIndex - seiCenter) / seiScale
	return lp
}
