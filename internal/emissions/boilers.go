package emissions

// BoilersFuel returns the boiler fuel burnt over duration days.
func BoilersFuel(fuelConsumption, duration float64) float64 {
	return fuelConsumption * duration
}

// BoilersCO2 returns the boiler CO2 over duration days.
func BoilersCO2(fuelConsumption, duration, co2PerFuel float64) float64 {
	return BoilersFuel(fuelConsumption, duration) * co2PerFuel
}

// BoilersNOX returns the boiler NOX over duration days.
func BoilersNOX(fuelConsumption, duration, fuelDensity, noxPerFuel float64) float64 {
	return BoilersFuel(fuelConsumption, duration) * (fuelDensity * noxPerFuel) / NOXScale
}

// StepBoilersFuel returns the boiler fuel of a step at the step season's rate.
func StepBoilersFuel(step StepInput, stepDuration float64) (float64, error) {
	rate, err := step.Boilers.For(step.Season)
	if err != nil {
		return 0, err
	}
	return BoilersFuel(rate, stepDuration), nil
}

// StepBoilersCO2 returns the boiler CO2 of a step using the well's boiler factor.
func StepBoilersCO2(step StepInput, stepDuration float64) (float64, error) {
	rate, err := step.Boilers.For(step.Season)
	if err != nil {
		return 0, err
	}
	return BoilersCO2(rate, stepDuration, step.Factors.BoilersCO2PerFuel), nil
}

// StepBoilersNOX returns the boiler NOX of a step using the well's boiler factor.
func StepBoilersNOX(step StepInput, stepDuration float64) (float64, error) {
	rate, err := step.Boilers.For(step.Season)
	if err != nil {
		return 0, err
	}
	return BoilersNOX(rate, stepDuration, step.Factors.FuelDensity, step.Factors.BoilersNOXPerFuel), nil
}
