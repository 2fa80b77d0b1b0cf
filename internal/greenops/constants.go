package greenops

// Per-activity factors in kg CO2. equivalent = kg / factor.
const (
	// MilesDrivenFactor is kg CO2 per mile of an average passenger car.
	MilesDrivenFactor = 0.393

	// HomeDayFactor is kg CO2 per day of average household electricity.
	HomeDayFactor = 18.3

	// TreeSeedlingFactor is kg CO2 taken up by one seedling grown for 10 years.
	TreeSeedlingFactor = 60.0
)

// Unit conversions to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonnesToKg = 1000.0
	PoundsToKg = 0.453592
)

const (
	// MinEquivalencyThresholdKg is the smallest mass given equivalents.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches formatting to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches formatting to "~X.X billion".
	BillionThreshold = 1_000_000_000
)
