package emissions

import (
	"fmt"
	"math"
)

// StepInput carries everything the calculator needs for one
// well-construction step. All lookups are resolved beforehand.
type StepInput struct {
	Season Season `json:"season"`

	// BaselineFuel is the rig fuel rate for the step's phase, mode and season.
	BaselineFuel float64           `json:"baseline_fuel"`
	Factors      FuelFactors       `json:"factors"`
	Boilers      BoilerConsumption `json:"boilers"`

	// VesselUses and HelicopterUses cover the whole plan and are apportioned per step.
	VesselUses     []VesselUse     `json:"vessel_uses,omitempty"`
	HelicopterUses []HelicopterUse `json:"helicopter_uses,omitempty"`
	Materials      []MaterialUse   `json:"materials,omitempty"`

	ExternalEnergySupply        *ExternalEnergySupply `json:"external_energy_supply,omitempty"`
	ExternalEnergySupplyEnabled bool                  `json:"external_energy_supply_enabled"`

	Initiatives []StepInitiative `json:"initiatives,omitempty"`
}

func (s StepInput) externalEnergySupply() (ExternalEnergySupply, bool) {
	if !s.ExternalEnergySupplyEnabled || s.ExternalEnergySupply == nil {
		return ExternalEnergySupply{}, false
	}
	return *s.ExternalEnergySupply, true
}

// Durations are the apportionment denominators for one step, in days.
type Durations struct {
	// Step is the duration of the step itself.
	Step float64 `json:"step"`
	// Plan is the sum of every step duration in the plan.
	Plan float64 `json:"plan"`
	// Season is the sum of the step durations that share this step's season.
	Season float64 `json:"season"`
}

// Validate rejects non-finite, non-positive and out of range durations.
func (d Durations) Validate() error {
	for _, q := range []quantity{{"step", d.Step}, {"plan", d.Plan}, {"season", d.Season}} {
		if !isFinite(q.value) {
			return fmt.Errorf("%s duration %v: %w", q.field, q.value, ErrNonFiniteValue)
		}
		if q.value > MaxPlanDays {
			return fmt.Errorf("%s duration %v exceeds %v days: %w", q.field, q.value, MaxPlanDays, ErrDurationOutOfRange)
		}
		if !(q.value > 0) {
			return fmt.Errorf("%s duration %v: %w", q.field, q.value, ErrNonPositiveDuration)
		}
	}
	return nil
}

// quantity names a value checked by StepInput.Validate.
type quantity struct {
	field string
	value float64
}

// Validate checks the season and that every physical quantity is finite
// and non-negative.
func (s StepInput) Validate() error {
	if err := s.Season.Validate(); err != nil {
		return err
	}

	checks := []quantity{
		{"baseline_fuel", s.BaselineFuel},
		{"co2_per_fuel", s.Factors.CO2PerFuel},
		{"fuel_density", s.Factors.FuelDensity},
		{"nox_per_fuel", s.Factors.NOXPerFuel},
		{"boilers_co2_per_fuel", s.Factors.BoilersCO2PerFuel},
		{"boilers_nox_per_fuel", s.Factors.BoilersNOXPerFuel},
		{"boilers.summer", s.Boilers.Summer},
		{"boilers.winter", s.Boilers.Winter},
	}
	for i, u := range s.VesselUses {
		if err := u.Season.Validate(); err != nil {
			return fmt.Errorf("vessel_uses[%d]: %w", i, err)
		}
		p := fmt.Sprintf("vessel_uses[%d].", i)
		checks = append(checks,
			quantity{p + "duration", u.Duration},
			quantity{p + "waiting_on_weather", u.WaitingOnWeather},
			quantity{p + "exposure", u.Exposure},
			quantity{p + "fuel_consumption", u.FuelConsumption},
			quantity{p + "co2_per_fuel", u.CO2PerFuel},
			quantity{p + "fuel_density", u.FuelDensity},
			quantity{p + "nox_per_fuel", u.NOXPerFuel},
		)
	}
	for i, u := range s.HelicopterUses {
		p := fmt.Sprintf("helicopter_uses[%d].", i)
		checks = append(checks,
			quantity{p + "trips", u.Trips},
			quantity{p + "trip_duration", u.TripDuration},
			quantity{p + "exposure", u.Exposure},
			quantity{p + "fuel_consumption", u.FuelConsumption},
			quantity{p + "co2_per_fuel", u.CO2PerFuel},
			quantity{p + "fuel_density", u.FuelDensity},
			quantity{p + "nox_per_fuel", u.NOXPerFuel},
		)
	}
	for i, m := range s.Materials {
		p := fmt.Sprintf("materials[%d].", i)
		checks = append(checks, quantity{p + "quantity", m.Quantity}, quantity{p + "co2_per_unit", m.CO2PerUnit})
	}
	for i, in := range s.Initiatives {
		if err := in.Type.Validate(); err != nil {
			return fmt.Errorf("initiatives[%d]: %w", i, err)
		}
		checks = append(checks, quantity{fmt.Sprintf("initiatives[%d].value", i), in.Value})
	}
	if ees := s.ExternalEnergySupply; ees != nil {
		checks = append(checks,
			quantity{"external_energy_supply.capacity", ees.Capacity},
			quantity{"external_energy_supply.co2", ees.CO2},
			quantity{"external_energy_supply.nox", ees.NOX},
			quantity{"external_energy_supply.generator_efficiency", ees.GeneratorEfficiency},
		)
	}

	for _, c := range checks {
		if err := c.check(); err != nil {
			return err
		}
	}
	return nil
}

// check rejects NaN, infinite and negative values.
func (q quantity) check() error {
	if !isFinite(q.value) {
		return fmt.Errorf("%s %v: %w", q.field, q.value, ErrNonFiniteValue)
	}
	if q.value < 0 {
		return fmt.Errorf("%s %v: %w", q.field, q.value, ErrNegativeValue)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
