package wellplan

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned while loading, validating and resolving plans.
var (
	// ErrUnsupportedSchema indicates a schema_version outside the supported range.
	ErrUnsupportedSchema = constError("unsupported plan schema version")

	// ErrInvalidPlan indicates a structurally invalid plan document.
	ErrInvalidPlan = constError("invalid well plan")

	// ErrNoSteps indicates a plan without steps.
	ErrNoSteps = constError("well plan has no steps")

	// ErrDuplicateID indicates two catalog entries or steps sharing an ID.
	ErrDuplicateID = constError("duplicate id")

	ErrUnknownPhase          = constError("unknown phase")
	ErrUnknownMode           = constError("unknown mode")
	ErrUnknownInitiative     = constError("unknown emission reduction initiative")
	ErrUnknownVesselType     = constError("unknown vessel type")
	ErrUnknownHelicopterType = constError("unknown helicopter type")
	ErrUnknownMaterialType   = constError("unknown material type")

	// ErrMissingBaselineInput indicates no baseline fuel value for a step's
	// phase, mode and season.
	ErrMissingBaselineInput = constError("missing baseline input")

	// ErrMissingInitiativeInput indicates an initiative attached to a step
	// has no percentage for the step's phase and mode.
	ErrMissingInitiativeInput = constError("missing emission reduction initiative input")
)
