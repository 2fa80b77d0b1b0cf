package emissions

// Unit conversion constants used by the converters.
const (
	// PercentScale turns a percentage into a fraction.
	PercentScale = 100.0

	// MinutesPerHour converts helicopter roundtrip minutes to hours.
	MinutesPerHour = 60.0

	// HelicopterFuelScale converts helicopter consumption from kg/h to tonnes/h.
	HelicopterFuelScale = 1000.0

	// NOXScale converts fuel (m3) times density (kg/m3) times NOX per fuel
	// (kg/tonne) into tonnes of NOX.
	// Must stay 1e6: the reference fixtures depend on this exact divisor.
	NOXScale = 1_000_000.0
)

// MaxPlanDays bounds the cumulative length of a schedule (100 years).
const MaxPlanDays = 36_525.0
