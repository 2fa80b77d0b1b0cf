package greenops

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidUnit is returned for a mass unit NormalizeToKg does not know.
	ErrInvalidUnit = constError("invalid carbon unit")

	// ErrNegativeValue is returned for negative masses.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow is returned for infinite or NaN masses.
	ErrCalculationOverflow = constError("calculation overflow")
)
