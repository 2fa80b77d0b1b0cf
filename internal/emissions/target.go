package emissions

// TargetCO2Data is the CO2 of one step after reduction measures.
// Asset is net of the external energy supply displacement and of every
// initiative reduction listed in EmissionReductionInitiatives.
type TargetCO2Data struct {
	Asset                        float64               `json:"asset"`
	Boilers                      float64               `json:"boilers"`
	Vessels                      float64               `json:"vessels"`
	Helicopters                  float64               `json:"helicopters"`
	Materials                    float64               `json:"materials"`
	ExternalEnergySupply         float64               `json:"external_energy_supply"`
	EmissionReductionInitiatives []InitiativeReduction `json:"emission_reduction_initiatives"`
}

// Multiply scales every field, including each initiative reduction.
func (t TargetCO2Data) Multiply(multiplier float64) TargetCO2Data {
	return TargetCO2Data{
		Asset:                        t.Asset * multiplier,
		Boilers:                      t.Boilers * multiplier,
		Vessels:                      t.Vessels * multiplier,
		Helicopters:                  t.Helicopters * multiplier,
		Materials:                    t.Materials * multiplier,
		ExternalEnergySupply:         t.ExternalEnergySupply * multiplier,
		EmissionReductionInitiatives: multiplyInitiatives(t.EmissionReductionInitiatives, multiplier),
	}
}

// Total sums all emission components. Initiative reductions are already
// netted out of Asset and are not subtracted again.
func (t TargetCO2Data) Total() float64 {
	return t.Asset + t.Boilers + t.Vessels + t.Helicopters + t.Materials + t.ExternalEnergySupply
}

// TargetNOXData is the NOX of one step after reduction measures.
type TargetNOXData struct {
	Asset                        float64               `json:"asset"`
	Boilers                      float64               `json:"boilers"`
	Vessels                      float64               `json:"vessels"`
	Helicopters                  float64               `json:"helicopters"`
	ExternalEnergySupply         float64               `json:"external_energy_supply"`
	EmissionReductionInitiatives []InitiativeReduction `json:"emission_reduction_initiatives"`
}

// Multiply scales every field, including each initiative reduction.
func (t TargetNOXData) Multiply(multiplier float64) TargetNOXData {
	return TargetNOXData{
		Asset:                        t.Asset * multiplier,
		Boilers:                      t.Boilers * multiplier,
		Vessels:                      t.Vessels * multiplier,
		Helicopters:                  t.Helicopters * multiplier,
		ExternalEnergySupply:         t.ExternalEnergySupply * multiplier,
		EmissionReductionInitiatives: multiplyInitiatives(t.EmissionReductionInitiatives, multiplier),
	}
}

// Total sums all emission components.
func (t TargetNOXData) Total() float64 {
	return t.Asset + t.Boilers + t.Vessels + t.Helicopters + t.ExternalEnergySupply
}

// CalculatePlannedStepTargetCO2 computes the target CO2 of a step.
//
// The durations are the improved ones. Initiative reductions are taken
// from the unreduced asset figure, then the asset is reduced by the external
// energy supply displacement and by the initiative total, in that order.
func CalculatePlannedStepTargetCO2(step StepInput, d Durations) (TargetCO2Data, error) {
	if err := validate(step, d); err != nil {
		return TargetCO2Data{}, err
	}

	boilers, err := StepBoilersCO2(step, d.Step)
	if err != nil {
		return TargetCO2Data{}, err
	}

	asset := StepAssetCO2(step, d.Step)
	eesReduction := StepExternalEnergySupplyCO2Reduction(step, d.Step)
	initiatives := StepEmissionReductionInitiativeReductions(asset, step)
	total := TotalEmissionReductionInitiativeReduction(initiatives)

	return TargetCO2Data{
		Asset:                        asset - eesReduction - total,
		Boilers:                      boilers,
		Vessels:                      StepVesselsCO2(VesselUsesForSeason(step.VesselUses, step.Season), d.Step, d.Season),
		Helicopters:                  StepHelicoptersCO2(step.HelicopterUses, d.Step, d.Plan),
		Materials:                    StepMaterialsCO2(step.Materials),
		ExternalEnergySupply:         StepExternalEnergySupplyCO2(step, d.Step),
		EmissionReductionInitiatives: initiatives,
	}, nil
}

// CalculatePlannedStepTargetNOX computes the target NOX of a step.
func CalculatePlannedStepTargetNOX(step StepInput, d Durations) (TargetNOXData, error) {
	if err := validate(step, d); err != nil {
		return TargetNOXData{}, err
	}

	boilers, err := StepBoilersNOX(step, d.Step)
	if err != nil {
		return TargetNOXData{}, err
	}

	asset := StepAssetNOX(step, d.Step)
	eesReduction := StepExternalEnergySupplyNOXReduction(step, d.Step)
	initiatives := StepEmissionReductionInitiativeReductions(asset, step)
	total := TotalEmissionReductionInitiativeReduction(initiatives)

	return TargetNOXData{
		Asset:                        asset - eesReduction - total,
		Boilers:                      boilers,
		Vessels:                      StepVesselsNOX(VesselUsesForSeason(step.VesselUses, step.Season), d.Step, d.Season),
		Helicopters:                  StepHelicoptersNOX(step.HelicopterUses, d.Step, d.Plan),
		ExternalEnergySupply:         StepExternalEnergySupplyNOX(step, d.Step),
		EmissionReductionInitiatives: initiatives,
	}, nil
}
