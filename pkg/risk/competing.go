package risk

import (
	"fmt"
	"math"
)

// Decomposition splits the outcome space at a point in time into four
// mutually exclusive events. Components always sum to 1.
type Decomposition struct {
	Readmission float64 `json:"readmission"`
	Death       float64 `json:"death"`
	Transfer    float64 `json:"transfer"`
	Recovery    float64 `json:"recovery"`
}

// Population-level asymptotic weights and time constants (days) for the
// saturating-exponential incidence of each competing outcome. These are
// deliberately decoupled from patient covariates: the decomposition reports
// population proportions at a horizon, not a personalized prediction.
var competingOutcomes = []struct {
	weight float64
	tau    float64
}{
	{0.40, 45}, // readmission
	{0.10, 60}, // death
	{0.12, 50}, // transfer
	{0.38, 40}, // recovery
}

// DecomposeAt returns the competing-risks decomposition at day t. Each
// outcome accrues incidence as w * (1 - exp(-t/tau)) and the four are
// normalized to sum to 1. At t = 0 every incidence is zero, which is
// defined as an equal four-way split rather than 0/0.
func DecomposeAt(t float64) (Decomposition, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return Decomposition{}, fmt.Errorf("%w: time must be non-negative, got %v", ErrInvalidParameter, t)
	}
	if t == 0 {
		return Decomposition{Readmission: 0.25, Death: 0.25, Transfer: 0.25, Recovery: 0.25}, nil
	}

	var base [4]float64
	var total float64
	for i, o := range competingOutcomes {
		base[i] = o.weight * (1 - math.Exp(-t/o.tau))
		total += base[i]
	}

	return Decomposition{
		Readmission: base[0] / total,
		Death:       base[1] / total,
		Transfer:    base[2] / total,
		Recovery:    base[3] / total,
	}, nil
}
