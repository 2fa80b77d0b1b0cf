package emissions

// HelicopterFuel returns the fuel burnt by a helicopter rotation in tonnes.
// fuelConsumption is in kg per hour and exposure is a percentage.
func HelicopterFuel(roundtripMinutes, roundtripCount, fuelConsumption, exposure float64) float64 {
	return (roundtripMinutes / MinutesPerHour) * roundtripCount *
		(fuelConsumption / HelicopterFuelScale) * (exposure / PercentScale)
}

// HelicopterCO2 returns the CO2 emitted by a helicopter rotation.
func HelicopterCO2(roundtripMinutes, roundtripCount, fuelConsumption, exposure, co2PerFuel float64) float64 {
	return HelicopterFuel(roundtripMinutes, roundtripCount, fuelConsumption, exposure) * co2PerFuel
}

// HelicopterNOX returns the NOX emitted by a helicopter rotation.
func HelicopterNOX(
	roundtripMinutes, roundtripCount, fuelConsumption, exposure, fuelDensity, noxPerFuel float64,
) float64 {
	return HelicopterFuel(roundtripMinutes, roundtripCount, fuelConsumption, exposure) *
		(fuelDensity * noxPerFuel) / NOXScale
}

func (u HelicopterUse) fuel() float64 {
	return HelicopterFuel(u.TripDuration, u.Trips, u.FuelConsumption, u.Exposure)
}

func (u HelicopterUse) co2() float64 {
	return HelicopterCO2(u.TripDuration, u.Trips, u.FuelConsumption, u.Exposure, u.CO2PerFuel)
}

func (u HelicopterUse) nox() float64 {
	return HelicopterNOX(u.TripDuration, u.Trips, u.FuelConsumption, u.Exposure, u.FuelDensity, u.NOXPerFuel)
}

// StepHelicoptersFuel spreads helicopter fuel over the whole plan and returns
// the share of a step. Helicopters are not season specific.
func StepHelicoptersFuel(uses []HelicopterUse, stepDuration, planDuration float64) float64 {
	return apportion(uses, HelicopterUse.fuel, stepDuration, planDuration)
}

// StepHelicoptersCO2 is StepHelicoptersFuel for CO2.
func StepHelicoptersCO2(uses []HelicopterUse, stepDuration, planDuration float64) float64 {
	return apportion(uses, HelicopterUse.co2, stepDuration, planDuration)
}

// StepHelicoptersNOX is StepHelicoptersFuel for NOX.
func StepHelicoptersNOX(uses []HelicopterUse, stepDuration, planDuration float64) float64 {
	return apportion(uses, HelicopterUse.nox, stepDuration, planDuration)
}
