package greenops

import (
	"math"
	"strings"
)

// unitFactor returns the factor converting unit to kilograms.
func unitFactor(unit string) (float64, bool) {
	switch strings.ToLower(unit) {
	case "g", "gco2":
		return GramsToKg, true
	case "kg", "kgco2":
		return KgToKg, true
	case "t", "tco2", "tonnes":
		return TonnesToKg, true
	case "lb", "lbco2":
		return PoundsToKg, true
	default:
		return 0, false
	}
}

// NormalizeToKg converts value in unit (g, kg, t or lb, optionally
// suffixed CO2, case-insensitive) to kilograms.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}

	factor, ok := unitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}

	kg := value * factor
	if math.IsInf(kg, 0) {
		return 0, ErrCalculationOverflow
	}
	return kg, nil
}
