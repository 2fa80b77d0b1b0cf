package wellplan

import (
	"context"
	"fmt"
	"slices"

	"github.com/rshade/wellco2/internal/emissions"
	"github.com/rshade/wellco2/internal/logging"
)

// ResolvedStep is a plan step with every lookup applied.
type ResolvedStep struct {
	ID               int                 `json:"id"`
	Order            int                 `json:"order"`
	Phase            string              `json:"phase"`
	Mode             string              `json:"mode"`
	Season           emissions.Season    `json:"season"`
	Duration         float64             `json:"duration"`
	ImprovedDuration float64             `json:"improved_duration"`
	Input            emissions.StepInput `json:"input"`
}

// catalog indexes a plan's reference data by ID.
type catalog struct {
	phases          map[string]Phase
	modes           map[string]Mode
	initiatives     map[int]Initiative
	vesselTypes     map[string]VesselType
	helicopterTypes map[string]HelicopterType
	materialTypes   map[string]MaterialType
}

func index[T any, K comparable](items []T, id func(T) K) map[K]T {
	m := make(map[K]T, len(items))
	for _, item := range items {
		m[id(item)] = item
	}
	return m
}

func newCatalog(p *Plan) catalog {
	return catalog{
		phases:          index(p.Phases, func(x Phase) string { return x.ID }),
		modes:           index(p.Modes, func(x Mode) string { return x.ID }),
		initiatives:     index(p.Initiatives, func(x Initiative) int { return x.ID }),
		vesselTypes:     index(p.VesselTypes, func(x VesselType) string { return x.ID }),
		helicopterTypes: index(p.HelicopterTypes, func(x HelicopterType) string { return x.ID }),
		materialTypes:   index(p.MaterialTypes, func(x MaterialType) string { return x.ID }),
	}
}

// Resolve turns p into calculator inputs, one per step in plan order.
func Resolve(ctx context.Context, p *Plan) ([]ResolvedStep, error) {
	log := logging.FromContext(ctx)
	cat := newCatalog(p)

	vessels, err := resolveVesselUses(p.VesselUses, cat)
	if err != nil {
		return nil, err
	}
	helicopters, err := resolveHelicopterUses(p.HelicopterUses, cat)
	if err != nil {
		return nil, err
	}

	steps := make([]ResolvedStep, 0, len(p.Steps))
	for i, s := range p.Steps {
		input, stepErr := resolveStep(p, cat, s)
		if stepErr != nil {
			return nil, fmt.Errorf("step %d: %w", s.ID, stepErr)
		}
		input.VesselUses = vessels
		input.HelicopterUses = helicopters

		improved, durErr := improvedDuration(s, input.Initiatives)
		if durErr != nil {
			return nil, fmt.Errorf("step %d: %w", s.ID, durErr)
		}

		steps = append(steps, ResolvedStep{
			ID:               s.ID,
			Order:            i,
			Phase:            s.Phase,
			Mode:             s.Mode,
			Season:           s.Season,
			Duration:         s.Duration,
			ImprovedDuration: improved,
			Input:            input,
		})
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "wellplan").
		Str("operation", "resolve").
		Str("well", p.Well.Name).
		Int("steps", len(steps)).
		Int("vessel_uses", len(vessels)).
		Int("helicopter_uses", len(helicopters)).
		Msg("well plan resolved")

	return steps, nil
}

func resolveStep(p *Plan, cat catalog, s Step) (emissions.StepInput, error) {
	phase, ok := cat.phases[s.Phase]
	if !ok {
		return emissions.StepInput{}, fmt.Errorf("%w: %q", ErrUnknownPhase, s.Phase)
	}
	mode, ok := cat.modes[s.Mode]
	if !ok {
		return emissions.StepInput{}, fmt.Errorf("%w: %q", ErrUnknownMode, s.Mode)
	}
	transit := phase.Transit && mode.Transit

	baselineFuel, err := baselineFuel(p.Baseline, s, transit)
	if err != nil {
		return emissions.StepInput{}, err
	}

	materials := make([]emissions.MaterialUse, 0, len(s.Materials))
	for _, m := range s.Materials {
		mt, found := cat.materialTypes[m.MaterialType]
		if !found {
			return emissions.StepInput{}, fmt.Errorf("%w: %q", ErrUnknownMaterialType, m.MaterialType)
		}
		materials = append(materials, emissions.MaterialUse{
			Name:       mt.ID,
			Category:   mt.Category,
			Quantity:   m.Quantity,
			CO2PerUnit: mt.CO2,
		})
	}

	initiatives, err := resolveInitiatives(cat, s, transit)
	if err != nil {
		return emissions.StepInput{}, err
	}

	return emissions.StepInput{
		Season:                      s.Season,
		BaselineFuel:                baselineFuel,
		Factors:                     p.Well.FuelFactors,
		Boilers:                     p.Baseline.BoilersFuelConsumption,
		Materials:                   materials,
		ExternalEnergySupply:        p.ExternalEnergySupply,
		ExternalEnergySupplyEnabled: s.ExternalEnergySupplyEnabled,
		Initiatives:                 initiatives,
	}, nil
}

func baselineFuel(b Baseline, s Step, transit bool) (float64, error) {
	if transit {
		v, ok := b.Transit[s.Season]
		if !ok {
			return 0, fmt.Errorf("%w: transit %s", ErrMissingBaselineInput, s.Season)
		}
		return v, nil
	}
	for _, in := range b.Inputs {
		if in.Phase == s.Phase && in.Mode == s.Mode && in.Season == s.Season {
			return in.Value, nil
		}
	}
	return 0, fmt.Errorf("%w: phase %q mode %q season %s", ErrMissingBaselineInput, s.Phase, s.Mode, s.Season)
}

// resolveInitiatives returns the step's initiatives ordered by ID. Every
// initiative needs an input for the step's phase and mode (or a transit
// value on transit steps).
func resolveInitiatives(cat catalog, s Step, transit bool) ([]emissions.StepInitiative, error) {
	ids := slices.Clone(s.Initiatives)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	out := make([]emissions.StepInitiative, 0, len(ids))
	for _, id := range ids {
		initiative, ok := cat.initiatives[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownInitiative, id)
		}

		value, found := initiativeValue(initiative, s, transit)
		if !found {
			return nil, fmt.Errorf("%w: initiative %d phase %q mode %q",
				ErrMissingInitiativeInput, id, s.Phase, s.Mode)
		}
		out = append(out, emissions.StepInitiative{ID: id, Type: initiative.Type, Value: value})
	}
	return out, nil
}

// improvedDuration returns the step's improved_duration override, or
// derives it from its productivity initiatives.
func improvedDuration(s Step, initiatives []emissions.StepInitiative) (float64, error) {
	if s.ImprovedDuration != nil {
		return *s.ImprovedDuration, nil
	}
	return emissions.ImprovedDuration(s.Duration, s.WaitingOnWeather, initiatives)
}

func initiativeValue(in Initiative, s Step, transit bool) (float64, bool) {
	if transit {
		if in.Transit == nil {
			return 0, false
		}
		return *in.Transit, true
	}
	for _, input := range in.Inputs {
		if input.Phase == s.Phase && input.Mode == s.Mode {
			return input.Value, true
		}
	}
	return 0, false
}

func resolveVesselUses(uses []VesselUse, cat catalog) ([]emissions.VesselUse, error) {
	out := make([]emissions.VesselUse, 0, len(uses))
	for i, u := range uses {
		vt, ok := cat.vesselTypes[u.VesselType]
		if !ok {
			return nil, fmt.Errorf("vessel_uses[%d]: %w: %q", i, ErrUnknownVesselType, u.VesselType)
		}

		var consumption float64
		switch u.Season {
		case emissions.SeasonSummer:
			consumption = vt.FuelConsumptionSummer
		case emissions.SeasonWinter:
			consumption = vt.FuelConsumptionWinter
		default:
			return nil, fmt.Errorf("vessel_uses[%d]: %w: %q", i, emissions.ErrUnknownSeason, string(u.Season))
		}

		out = append(out, emissions.VesselUse{
			Name:             vt.ID,
			Season:           u.Season,
			Duration:         u.Duration,
			WaitingOnWeather: u.WaitingOnWeather,
			Exposure:         u.Exposure,
			FuelConsumption:  consumption,
			CO2PerFuel:       vt.CO2PerFuel,
			FuelDensity:      vt.FuelDensity,
			NOXPerFuel:       vt.NOXPerFuel,
		})
	}
	return out, nil
}

func resolveHelicopterUses(uses []HelicopterUse, cat catalog) ([]emissions.HelicopterUse, error) {
	out := make([]emissions.HelicopterUse, 0, len(uses))
	for i, u := range uses {
		ht, ok := cat.helicopterTypes[u.HelicopterType]
		if !ok {
			return nil, fmt.Errorf("helicopter_uses[%d]: %w: %q", i, ErrUnknownHelicopterType, u.HelicopterType)
		}
		out = append(out, emissions.HelicopterUse{
			Name:            ht.ID,
			Trips:           u.Trips,
			TripDuration:    u.TripDuration,
			Exposure:        u.Exposure,
			FuelConsumption: ht.FuelConsumption,
			CO2PerFuel:      ht.CO2PerFuel,
			FuelDensity:     ht.FuelDensity,
			NOXPerFuel:      ht.NOXPerFuel,
		})
	}
	return out, nil
}
