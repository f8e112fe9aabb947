package risk

import "errors"

var (
	// ErrInvalidParameter marks shape, scale, or time arguments outside the
	// model's domain. The engine never clamps its way around these.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrMalformedInput marks non-finite or out-of-range covariate values.
	// Callers are expected to validate upstream; the engine fails fast.
	ErrMalformedInput = errors.New("malformed input")
)
