package emissions

import (
	"fmt"
	"strings"
)

// Season is the weather season a step or vessel use belongs to.
type Season string

// Supported seasons.
const (
	SeasonSummer Season = "SUMMER"
	SeasonWinter Season = "WINTER"
)

// Seasons lists every supported season in display order.
func Seasons() []Season {
	return []Season{SeasonSummer, SeasonWinter}
}

// ParseSeason converts a case-insensitive string to a Season.
func ParseSeason(s string) (Season, error) {
	season := Season(strings.ToUpper(strings.TrimSpace(s)))
	if err := season.Validate(); err != nil {
		return "", err
	}
	return season, nil
}

// Validate returns ErrUnknownSeason unless s is SUMMER or WINTER.
func (s Season) Validate() error {
	switch s {
	case SeasonSummer, SeasonWinter:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSeason, string(s))
	}
}

// InitiativeType classifies an emission reduction initiative.
type InitiativeType string

// Supported initiative types.
const (
	InitiativePowerSystems InitiativeType = "POWER_SYSTEMS"
	InitiativeBaseloads    InitiativeType = "BASELOADS"
	// InitiativeProductivity shortens step durations instead of cutting load,
	// so it never contributes a reduction to the asset figure.
	InitiativeProductivity InitiativeType = "PRODUCTIVITY"
)

// Validate returns ErrUnknownInitiativeType for unsupported values.
func (t InitiativeType) Validate() error {
	switch t {
	case InitiativePowerSystems, InitiativeBaseloads, InitiativeProductivity:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownInitiativeType, string(t))
	}
}

// MaterialCategory groups material types for reporting.
type MaterialCategory string

// Material categories.
const (
	MaterialSteel     MaterialCategory = "STEEL"
	MaterialCement    MaterialCategory = "CEMENT"
	MaterialBulk      MaterialCategory = "BULK"
	MaterialChemicals MaterialCategory = "CHEMICALS"
)

// FuelFactors are the well-level fuel properties used for the rig asset,
// boilers and external energy supply displacement.
type FuelFactors struct {
	CO2PerFuel        float64 `json:"co2_per_fuel" yaml:"co2_per_fuel"`
	FuelDensity       float64 `json:"fuel_density" yaml:"fuel_density"`
	NOXPerFuel        float64 `json:"nox_per_fuel" yaml:"nox_per_fuel"`
	BoilersCO2PerFuel float64 `json:"boilers_co2_per_fuel" yaml:"boilers_co2_per_fuel"`
	BoilersNOXPerFuel float64 `json:"boilers_nox_per_fuel" yaml:"boilers_nox_per_fuel"`
}

// BoilerConsumption holds the baseline boiler fuel rate per season.
type BoilerConsumption struct {
	Summer float64 `json:"summer" yaml:"summer"`
	Winter float64 `json:"winter" yaml:"winter"`
}

// For returns the boiler fuel rate for season.
func (b BoilerConsumption) For(season Season) (float64, error) {
	switch season {
	case SeasonSummer:
		return b.Summer, nil
	case SeasonWinter:
		return b.Winter, nil
	default:
		return 0, fmt.Errorf("boiler fuel consumption: %w: %q", ErrUnknownSeason, string(season))
	}
}

// VesselUse is one vessel booked against the well plan.
// FuelConsumption is already resolved for the use's season.
type VesselUse struct {
	Name             string  `json:"name,omitempty"`
	Season           Season  `json:"season"`
	Duration         float64 `json:"duration"`
	WaitingOnWeather float64 `json:"waiting_on_weather"`
	Exposure         float64 `json:"exposure"`
	FuelConsumption  float64 `json:"fuel_consumption"`
	CO2PerFuel       float64 `json:"co2_per_fuel"`
	FuelDensity      float64 `json:"fuel_density"`
	NOXPerFuel       float64 `json:"nox_per_fuel"`
}

// HelicopterUse is one helicopter rotation booked against the well plan.
type HelicopterUse struct {
	Name            string  `json:"name,omitempty"`
	Trips           float64 `json:"trips"`
	TripDuration    float64 `json:"trip_duration"`
	Exposure        float64 `json:"exposure"`
	FuelConsumption float64 `json:"fuel_consumption"`
	CO2PerFuel      float64 `json:"co2_per_fuel"`
	FuelDensity     float64 `json:"fuel_density"`
	NOXPerFuel      float64 `json:"nox_per_fuel"`
}

// MaterialUse is a quantity of one material consumed by a step.
type MaterialUse struct {
	Name       string           `json:"name,omitempty"`
	Category   MaterialCategory `json:"category,omitempty"`
	Quantity   float64          `json:"quantity"`
	CO2PerUnit float64          `json:"co2_per_unit"`
}

// ExternalEnergySupply describes shore power or another external supply
// that displaces rig generator fuel.
type ExternalEnergySupply struct {
	Capacity            float64 `json:"capacity" yaml:"capacity"`
	CO2                 float64 `json:"co2" yaml:"co2"`
	NOX                 float64 `json:"nox" yaml:"nox"`
	GeneratorEfficiency float64 `json:"generator_efficiency" yaml:"generator_efficiency"`
}

// StepInitiative is an initiative attached to a step with its percentage
// already resolved for the step's phase and mode.
type StepInitiative struct {
	ID    int            `json:"id"`
	Type  InitiativeType `json:"type"`
	Value float64        `json:"value"`
}
