package emissions

// VesselFuel returns the fuel burnt by one vessel use.
// waitingOnWeather and exposure are percentages.
func VesselFuel(fuelConsumption, waitingOnWeather, duration, exposure float64) float64 {
	return duration * (1 + waitingOnWeather/PercentScale) * (exposure / PercentScale) * fuelConsumption
}

// VesselCO2 returns the CO2 emitted by one vessel use.
func VesselCO2(fuelConsumption, waitingOnWeather, duration, exposure, co2PerFuel float64) float64 {
	return VesselFuel(fuelConsumption, waitingOnWeather, duration, exposure) * co2PerFuel
}

// VesselNOX returns the NOX emitted by one vessel use.
func VesselNOX(fuelConsumption, waitingOnWeather, duration, exposure, fuelDensity, noxPerFuel float64) float64 {
	return VesselFuel(fuelConsumption, waitingOnWeather, duration, exposure) * fuelDensity * noxPerFuel / NOXScale
}

func (u VesselUse) fuel() float64 {
	return VesselFuel(u.FuelConsumption, u.WaitingOnWeather, u.Duration, u.Exposure)
}

func (u VesselUse) co2() float64 {
	return VesselCO2(u.FuelConsumption, u.WaitingOnWeather, u.Duration, u.Exposure, u.CO2PerFuel)
}

func (u VesselUse) nox() float64 {
	return VesselNOX(u.FuelConsumption, u.WaitingOnWeather, u.Duration, u.Exposure, u.FuelDensity, u.NOXPerFuel)
}

// StepVesselsFuel spreads the fuel of every vessel use over the season bucket
// and returns the share that falls on a step of stepDuration days.
func StepVesselsFuel(uses []VesselUse, stepDuration, seasonDuration float64) float64 {
	return apportion(uses, VesselUse.fuel, stepDuration, seasonDuration)
}

// StepVesselsCO2 is StepVesselsFuel for CO2.
func StepVesselsCO2(uses []VesselUse, stepDuration, seasonDuration float64) float64 {
	return apportion(uses, VesselUse.co2, stepDuration, seasonDuration)
}

// StepVesselsNOX is StepVesselsFuel for NOX.
func StepVesselsNOX(uses []VesselUse, stepDuration, seasonDuration float64) float64 {
	return apportion(uses, VesselUse.nox, stepDuration, seasonDuration)
}

// VesselUsesForSeason returns the uses booked for season, in order.
func VesselUsesForSeason(uses []VesselUse, season Season) []VesselUse {
	filtered := make([]VesselUse, 0, len(uses))
	for _, u := range uses {
		if u.Season == season {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// apportion sums value(item) * stepDuration / totalDuration left to right.
func apportion[T any](items []T, value func(T) float64, stepDuration, totalDuration float64) float64 {
	total := 0.0
	for _, item := range items {
		total += value(item) * stepDuration / totalDuration
	}
	return total
}
