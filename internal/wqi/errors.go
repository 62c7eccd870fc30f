package wqi

import "errors"

var (
	// ErrNonPositiveColiforms is returned when the fecal coliform count is
	// zero or negative, where log10 is undefined.
	ErrNonPositiveColiforms = errors.New("fecal coliforms must be greater than zero")

	// ErrWeightLength is returned when an ordered weight list does not hold
	// exactly one value per parameter.
	ErrWeightLength = errors.New("weight list length mismatch")

	// ErrUnknownWeightKey is returned when a weight mapping names a key
	// outside od, cf, ph, dbo, nt, ft, temp, tb, st.
	ErrUnknownWeightKey = errors.New("unknown weight key")

	// ErrWeightType is returned when a weights payload is neither absent, a
	// list nor a mapping.
	ErrWeightType = errors.New("weights must be null, a list or an object")

	// ErrInvalidWeight is returned by WeightSet.Validate.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrUndefinedSubIndex is returned when a curve yields a negative quality
	// value that cannot be raised to a fractional weight.
	ErrUndefinedSubIndex = errors.New("sub-index undefined for weight")
)
