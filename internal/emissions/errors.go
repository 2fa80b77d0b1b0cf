package emissions

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by input validation and season dispatch.
// Compare with errors.Is().
var (
	// ErrUnknownSeason indicates a season outside SUMMER and WINTER.
	// An unhandled season means the upstream data is corrupt, so it is never defaulted.
	ErrUnknownSeason = constError("unknown season")

	// ErrUnknownInitiativeType indicates an initiative type outside the known set.
	ErrUnknownInitiativeType = constError("unknown emission reduction initiative type")

	// ErrNegativeValue indicates a negative physical quantity.
	ErrNegativeValue = constError("negative value")

	// ErrNonFiniteValue indicates a NaN or infinite quantity or duration.
	ErrNonFiniteValue = constError("value must be finite")

	// ErrDurationOutOfRange indicates a schedule longer than MaxPlanDays.
	ErrDurationOutOfRange = constError("duration out of range")

	// ErrNonPositiveDuration indicates a step, plan or season duration <= 0.
	// Durations are apportionment denominators.
	ErrNonPositiveDuration = constError("duration must be greater than zero")
)
