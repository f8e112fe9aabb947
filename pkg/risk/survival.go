package risk

import (
	"fmt"
	"math"
)

// Survival evaluates the baseline Weibull survival function
// S(t) = exp(-(t/scale)^shape), the probability that a patient has not been
// readmitted by day t.
func Survival(t, shape, scale float64) (float64, error) {
	if err := checkWeibullDomain(t, shape, scale); err != nil {
		return 0, err
	}
	return math.Exp(-math.Pow(t/scale, shape)), nil
}

// HazardRate evaluates the baseline Weibull hazard
// h(t) = (shape/scale) * (t/scale)^(shape-1).
func HazardRate(t, shape, scale float64) (float64, error) {
	if err := checkWeibullDomain(t, shape, scale); err != nil {
		return 0, err
	}
	return (shape / scale) * math.Pow(t/scale, shape-1), nil
}

func checkWeibullDomain(t, shape, scale float64) error {
	if math.IsNaN(shape) || math.IsInf(shape, 0) || shape <= 0 {
		return fmt.Errorf("%w: shape must be positive, got %v", ErrInvalidParameter, shape)
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidParameter, scale)
	}
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return fmt.Errorf("%w: time must be non-negative, got %v", ErrInvalidParameter, t)
	}
	return nil
}
