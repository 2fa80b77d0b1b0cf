package emissions

// ExternalEnergySupplyCO2 returns the CO2 attributed to the external supply itself.
func ExternalEnergySupplyCO2(capacity, co2Factor, duration float64) float64 {
	return capacity * co2Factor * duration
}

// ExternalEnergySupplyNOX returns the NOX attributed to the external supply itself.
func ExternalEnergySupplyNOX(capacity, noxFactor, duration float64) float64 {
	return capacity * noxFactor * duration
}

// ExternalEnergySupplyFuelReduction returns the rig generator fuel the supply displaces.
func ExternalEnergySupplyFuelReduction(capacity, generatorEfficiency, duration float64) float64 {
	return capacity * generatorEfficiency * duration
}

// ExternalEnergySupplyCO2Reduction returns the rig CO2 the supply displaces.
func ExternalEnergySupplyCO2Reduction(capacity, generatorEfficiency, duration, co2PerFuel float64) float64 {
	return ExternalEnergySupplyFuelReduction(capacity, generatorEfficiency, duration) * co2PerFuel
}

// ExternalEnergySupplyNOXReduction returns the rig NOX the supply displaces.
func ExternalEnergySupplyNOXReduction(
	capacity, generatorEfficiency, duration, fuelDensity, noxPerFuel float64,
) float64 {
	return ExternalEnergySupplyFuelReduction(capacity, generatorEfficiency, duration) *
		fuelDensity * noxPerFuel / NOXScale
}

// The step variants return 0 when the step has no supply or has it disabled.

// StepExternalEnergySupplyCO2 returns the supply CO2 of a step.
func StepExternalEnergySupplyCO2(step StepInput, stepDuration float64) float64 {
	ees, ok := step.externalEnergySupply()
	if !ok {
		return 0
	}
	return ExternalEnergySupplyCO2(ees.Capacity, ees.CO2, stepDuration)
}

// StepExternalEnergySupplyNOX returns the supply NOX of a step.
func StepExternalEnergySupplyNOX(step StepInput, stepDuration float64) float64 {
	ees, ok := step.externalEnergySupply()
	if !ok {
		return 0
	}
	return ExternalEnergySupplyNOX(ees.Capacity, ees.NOX, stepDuration)
}

// StepExternalEnergySupplyCO2Reduction returns the rig CO2 displaced during a step.
func StepExternalEnergySupplyCO2Reduction(step StepInput, stepDuration float64) float64 {
	ees, ok := step.externalEnergySupply()
	if !ok {
		return 0
	}
	return ExternalEnergySupplyCO2Reduction(
		ees.Capacity, ees.GeneratorEfficiency, stepDuration, step.Factors.CO2PerFuel,
	)
}

// StepExternalEnergySupplyNOXReduction returns the rig NOX displaced during a step.
func StepExternalEnergySupplyNOXReduction(step StepInput, stepDuration float64) float64 {
	ees, ok := step.externalEnergySupply()
	if !ok {
		return 0
	}
	return ExternalEnergySupplyNOXReduction(
		ees.Capacity, ees.GeneratorEfficiency, stepDuration, step.Factors.FuelDensity, step.Factors.NOXPerFuel,
	)
}
