package emissions

// AssetFuel returns the rig fuel burnt over duration days at the baseline rate.
func AssetFuel(baselineFuel, duration float64) float64 {
	return baselineFuel * duration
}

// AssetCO2 returns the rig CO2 for the baseline rate and duration.
func AssetCO2(baselineFuel, duration, co2PerFuel float64) float64 {
	return AssetFuel(baselineFuel, duration) * co2PerFuel
}

// AssetNOX returns the rig NOX for the baseline rate and duration.
func AssetNOX(baselineFuel, duration, fuelDensity, noxPerFuel float64) float64 {
	return AssetFuel(baselineFuel, duration) * (fuelDensity * noxPerFuel) / NOXScale
}

// StepAssetFuel returns the rig fuel of a step.
func StepAssetFuel(step StepInput, stepDuration float64) float64 {
	return AssetFuel(step.BaselineFuel, stepDuration)
}

// StepAssetCO2 returns the rig CO2 of a step.
func StepAssetCO2(step StepInput, stepDuration float64) float64 {
	return AssetCO2(step.BaselineFuel, stepDuration, step.Factors.CO2PerFuel)
}

// StepAssetNOX returns the rig NOX of a step.
func StepAssetNOX(step StepInput, stepDuration float64) float64 {
	return AssetNOX(step.BaselineFuel, stepDuration, step.Factors.FuelDensity, step.Factors.NOXPerFuel)
}
