package emissions

// MaterialCO2 returns the embodied CO2 of a material quantity.
func MaterialCO2(quantity, co2PerUnit float64) float64 {
	return quantity * co2PerUnit
}

// StepMaterialsCO2 sums the embodied CO2 of every material used by a step.
func StepMaterialsCO2(materials []MaterialUse) float64 {
	total := 0.0
	for _, m := range materials {
		total += float64(MaterialCO2(m.Quantity, m.CO2PerUnit))
	}
	return total
}
