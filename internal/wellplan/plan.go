package wellplan

import (
	"time"

	"github.com/rshade/wellco2/internal/emissions"
)

// Plan is a well plan document.
type Plan struct {
	SchemaVersion string   `yaml:"schema_version" json:"schema_version"`
	Well          Well     `yaml:"well"           json:"well"`
	Baseline      Baseline `yaml:"baseline"       json:"baseline"`

	Phases      []Phase      `yaml:"phases"                json:"phases"`
	Modes       []Mode       `yaml:"modes"                 json:"modes"`
	Initiatives []Initiative `yaml:"initiatives,omitempty" json:"initiatives,omitempty"`

	VesselTypes     []VesselType     `yaml:"vessel_types,omitempty"     json:"vessel_types,omitempty"`
	HelicopterTypes []HelicopterType `yaml:"helicopter_types,omitempty" json:"helicopter_types,omitempty"`
	MaterialTypes   []MaterialType   `yaml:"material_types,omitempty"   json:"material_types,omitempty"`

	ExternalEnergySupply *emissions.ExternalEnergySupply `yaml:"external_energy_supply,omitempty" json:"external_energy_supply,omitempty"`

	VesselUses     []VesselUse     `yaml:"vessel_uses,omitempty"     json:"vessel_uses,omitempty"`
	HelicopterUses []HelicopterUse `yaml:"helicopter_uses,omitempty" json:"helicopter_uses,omitempty"`

	Steps []Step `yaml:"steps" json:"steps"`
}

// Well holds the well identity and its fuel factors.
type Well struct {
	Name             string `yaml:"name"               json:"name"`
	PlannedStartDate string `yaml:"planned_start_date" json:"planned_start_date"`

	emissions.FuelFactors `yaml:",inline"`
}

// StartDate parses PlannedStartDate (YYYY-MM-DD) as UTC midnight.
func (w Well) StartDate() (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, w.PlannedStartDate, time.UTC)
}

// Baseline is the rig's reference fuel consumption.
type Baseline struct {
	Name                   string                      `yaml:"name,omitempty"           json:"name,omitempty"`
	BoilersFuelConsumption emissions.BoilerConsumption `yaml:"boilers_fuel_consumption" json:"boilers_fuel_consumption"`
	Inputs                 []BaselineInput             `yaml:"inputs"                   json:"inputs"`
	// Transit is the daily fuel while the rig is in transit, per season.
	Transit map[emissions.Season]float64 `yaml:"transit,omitempty" json:"transit,omitempty"`
}

// BaselineInput is the daily rig fuel for one phase, mode and season.
type BaselineInput struct {
	Phase  string           `yaml:"phase"  json:"phase"`
	Mode   string           `yaml:"mode"   json:"mode"`
	Season emissions.Season `yaml:"season" json:"season"`
	Value  float64          `yaml:"value"  json:"value"`
}

// Phase is a well-construction phase such as drilling or completion.
type Phase struct {
	ID      string `yaml:"id"                json:"id"`
	Name    string `yaml:"name,omitempty"    json:"name,omitempty"`
	Transit bool   `yaml:"transit,omitempty" json:"transit,omitempty"`
}

// Mode is an operating mode of the rig.
type Mode struct {
	ID      string `yaml:"id"                json:"id"`
	Name    string `yaml:"name,omitempty"    json:"name,omitempty"`
	Transit bool   `yaml:"transit,omitempty" json:"transit,omitempty"`
}

// Initiative is an emission reduction initiative with its percentage per
// phase and mode.
type Initiative struct {
	ID      int                      `yaml:"id"                json:"id"`
	Name    string                   `yaml:"name"              json:"name"`
	Type    emissions.InitiativeType `yaml:"type"              json:"type"`
	Inputs  []InitiativeInput        `yaml:"inputs,omitempty"  json:"inputs,omitempty"`
	Transit *float64                 `yaml:"transit,omitempty" json:"transit,omitempty"`
}

// InitiativeInput is an initiative percentage for one phase and mode.
type InitiativeInput struct {
	Phase string  `yaml:"phase" json:"phase"`
	Mode  string  `yaml:"mode"  json:"mode"`
	Value float64 `yaml:"value" json:"value"`
}

// VesselType is a vessel catalog entry.
type VesselType struct {
	ID                    string  `yaml:"id"                      json:"id"`
	FuelConsumptionSummer float64 `yaml:"fuel_consumption_summer" json:"fuel_consumption_summer"`
	FuelConsumptionWinter float64 `yaml:"fuel_consumption_winter" json:"fuel_consumption_winter"`
	FuelDensity           float64 `yaml:"fuel_density"            json:"fuel_density"`
	CO2PerFuel            float64 `yaml:"co2_per_fuel"            json:"co2_per_fuel"`
	NOXPerFuel            float64 `yaml:"nox_per_fuel"            json:"nox_per_fuel"`
}

// HelicopterType is a helicopter catalog entry. FuelConsumption is kg/h.
type HelicopterType struct {
	ID              string  `yaml:"id"               json:"id"`
	FuelConsumption float64 `yaml:"fuel_consumption" json:"fuel_consumption"`
	FuelDensity     float64 `yaml:"fuel_density"     json:"fuel_density"`
	CO2PerFuel      float64 `yaml:"co2_per_fuel"     json:"co2_per_fuel"`
	NOXPerFuel      float64 `yaml:"nox_per_fuel"     json:"nox_per_fuel"`
}

// MaterialType is a material catalog entry.
type MaterialType struct {
	ID       string                     `yaml:"id"             json:"id"`
	Category emissions.MaterialCategory `yaml:"category"       json:"category"`
	Unit     string                     `yaml:"unit,omitempty" json:"unit,omitempty"`
	CO2      float64                    `yaml:"co2"            json:"co2"`
}

// VesselUse books a vessel type for the plan.
type VesselUse struct {
	VesselType       string           `yaml:"vessel_type"        json:"vessel_type"`
	Season           emissions.Season `yaml:"season"             json:"season"`
	Duration         float64          `yaml:"duration"           json:"duration"`
	WaitingOnWeather float64          `yaml:"waiting_on_weather" json:"waiting_on_weather"`
	Exposure         float64          `yaml:"exposure"           json:"exposure"`
}

// HelicopterUse books helicopter roundtrips for the plan.
type HelicopterUse struct {
	HelicopterType string  `yaml:"helicopter_type" json:"helicopter_type"`
	Trips          float64 `yaml:"trips"           json:"trips"`
	TripDuration   float64 `yaml:"trip_duration"   json:"trip_duration"`
	Exposure       float64 `yaml:"exposure"        json:"exposure"`
}

// Step is one well-construction step. Duration is the planned duration in
// days and WaitingOnWeather a percentage added on top of it. The improved
// duration is derived from the step's PRODUCTIVITY initiatives unless
// ImprovedDuration overrides it.
type Step struct {
	ID                          int              `yaml:"id"                                       json:"id"`
	Phase                       string           `yaml:"phase"                                    json:"phase"`
	Mode                        string           `yaml:"mode"                                     json:"mode"`
	Season                      emissions.Season `yaml:"season"                                   json:"season"`
	Duration                    float64          `yaml:"duration"                                 json:"duration"`
	WaitingOnWeather            float64          `yaml:"waiting_on_weather,omitempty"             json:"waiting_on_weather,omitempty"`
	ImprovedDuration            *float64         `yaml:"improved_duration,omitempty"              json:"improved_duration,omitempty"`
	ExternalEnergySupplyEnabled bool             `yaml:"external_energy_supply_enabled,omitempty" json:"external_energy_supply_enabled,omitempty"`
	Materials                   []MaterialUsage  `yaml:"materials,omitempty"                      json:"materials,omitempty"`
	Initiatives                 []int            `yaml:"initiatives,omitempty"                    json:"initiatives,omitempty"`
}

// MaterialUsage is a quantity of a catalog material consumed by a step.
type MaterialUsage struct {
	MaterialType string  `yaml:"material_type" json:"material_type"`
	Quantity     float64 `yaml:"quantity"      json:"quantity"`
}

// InitiativeNames maps initiative IDs to their names.
func (p *Plan) InitiativeNames() map[int]string {
	names := make(map[int]string, len(p.Initiatives))
	for _, in := range p.Initiatives {
		names[in.ID] = in.Name
	}
	return names
}
