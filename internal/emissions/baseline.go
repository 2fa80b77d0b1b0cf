package emissions

// BaselineCO2Data is the CO2 of one step without any reduction measure.
type BaselineCO2Data struct {
	Asset                float64 `json:"asset"`
	Boilers              float64 `json:"boilers"`
	Vessels              float64 `json:"vessels"`
	Helicopters          float64 `json:"helicopters"`
	Materials            float64 `json:"materials"`
	ExternalEnergySupply float64 `json:"external_energy_supply"`
}

// Multiply scales every field by multiplier.
func (b BaselineCO2Data) Multiply(multiplier float64) BaselineCO2Data {
	return BaselineCO2Data{
		Asset:                b.Asset * multiplier,
		Boilers:              b.Boilers * multiplier,
		Vessels:              b.Vessels * multiplier,
		Helicopters:          b.Helicopters * multiplier,
		Materials:            b.Materials * multiplier,
		ExternalEnergySupply: b.ExternalEnergySupply * multiplier,
	}
}

// Add returns the field-wise sum of b and other.
func (b BaselineCO2Data) Add(other BaselineCO2Data) BaselineCO2Data {
	return BaselineCO2Data{
		Asset:                b.Asset + other.Asset,
		Boilers:              b.Boilers + other.Boilers,
		Vessels:              b.Vessels + other.Vessels,
		Helicopters:          b.Helicopters + other.Helicopters,
		Materials:            b.Materials + other.Materials,
		ExternalEnergySupply: b.ExternalEnergySupply + other.ExternalEnergySupply,
	}
}

// Total sums all components.
func (b BaselineCO2Data) Total() float64 {
	return b.Asset + b.Boilers + b.Vessels + b.Helicopters + b.Materials + b.ExternalEnergySupply
}

// BaselineNOXData is the NOX of one step without any reduction measure.
// Materials carry no NOX.
type BaselineNOXData struct {
	Asset                float64 `json:"asset"`
	Boilers              float64 `json:"boilers"`
	Vessels              float64 `json:"vessels"`
	Helicopters          float64 `json:"helicopters"`
	ExternalEnergySupply float64 `json:"external_energy_supply"`
}

// Multiply scales every field by multiplier.
func (b BaselineNOXData) Multiply(multiplier float64) BaselineNOXData {
	return BaselineNOXData{
		Asset:                b.Asset * multiplier,
		Boilers:              b.Boilers * multiplier,
		Vessels:              b.Vessels * multiplier,
		Helicopters:          b.Helicopters * multiplier,
		ExternalEnergySupply: b.ExternalEnergySupply * multiplier,
	}
}

// Add returns the field-wise sum of b and other.
func (b BaselineNOXData) Add(other BaselineNOXData) BaselineNOXData {
	return BaselineNOXData{
		Asset:                b.Asset + other.Asset,
		Boilers:              b.Boilers + other.Boilers,
		Vessels:              b.Vessels + other.Vessels,
		Helicopters:          b.Helicopters + other.Helicopters,
		ExternalEnergySupply: b.ExternalEnergySupply + other.ExternalEnergySupply,
	}
}

// Total sums all components.
func (b BaselineNOXData) Total() float64 {
	return b.Asset + b.Boilers + b.Vessels + b.Helicopters + b.ExternalEnergySupply
}

// CalculatePlannedStepBaselineCO2 computes the baseline CO2 of a step.
//
// Vessel uses are filtered to the step's season and apportioned over
// d.Season; helicopter uses are apportioned over d.Plan. The external
// energy supply contributes only when enabled for the step.
func CalculatePlannedStepBaselineCO2(step StepInput, d Durations) (BaselineCO2Data, error) {
	if err := validate(step, d); err != nil {
		return BaselineCO2Data{}, err
	}

	boilers, err := StepBoilersCO2(step, d.Step)
	if err != nil {
		return BaselineCO2Data{}, err
	}

	return BaselineCO2Data{
		Asset:                StepAssetCO2(step, d.Step),
		Boilers:              boilers,
		Vessels:              StepVesselsCO2(VesselUsesForSeason(step.VesselUses, step.Season), d.Step, d.Season),
		Helicopters:          StepHelicoptersCO2(step.HelicopterUses, d.Step, d.Plan),
		Materials:            StepMaterialsCO2(step.Materials),
		ExternalEnergySupply: StepExternalEnergySupplyCO2(step, d.Step),
	}, nil
}

// CalculatePlannedStepBaselineNOX computes the baseline NOX of a step.
func CalculatePlannedStepBaselineNOX(step StepInput, d Durations) (BaselineNOXData, error) {
	if err := validate(step, d); err != nil {
		return BaselineNOXData{}, err
	}

	boilers, err := StepBoilersNOX(step, d.Step)
	if err != nil {
		return BaselineNOXData{}, err
	}

	return BaselineNOXData{
		Asset:                StepAssetNOX(step, d.Step),
		Boilers:              boilers,
		Vessels:              StepVesselsNOX(VesselUsesForSeason(step.VesselUses, step.Season), d.Step, d.Season),
		Helicopters:          StepHelicoptersNOX(step.HelicopterUses, d.Step, d.Plan),
		ExternalEnergySupply: StepExternalEnergySupplyNOX(step, d.Step),
	}, nil
}

func validate(step StepInput, d Durations) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return step.Validate()
}
