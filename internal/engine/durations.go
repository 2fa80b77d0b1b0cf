package engine

import (
	"fmt"

	"github.com/rshade/wellco2/internal/emissions"
	"github.com/rshade/wellco2/internal/wellplan"
)

// PlanDurations are the plan-wide apportionment denominators in days.
type PlanDurations struct {
	Plan    float64                      `json:"plan"`
	Seasons map[emissions.Season]float64 `json:"seasons"`
}

// PlannedDuration selects the planned duration of a step.
func PlannedDuration(s wellplan.ResolvedStep) float64 { return s.Duration }

// ImprovedDuration selects the improved duration of a step.
func ImprovedDuration(s wellplan.ResolvedStep) float64 { return s.ImprovedDuration }

// ComputeDurations sums the step durations chosen by durationOf over the
// whole plan and per season, in step order.
func ComputeDurations(steps []wellplan.ResolvedStep, durationOf func(wellplan.ResolvedStep) float64) PlanDurations {
	d := PlanDurations{Seasons: make(map[emissions.Season]float64, len(emissions.Seasons()))}
	for _, season := range emissions.Seasons() {
		d.Seasons[season] = 0
	}
	for _, s := range steps {
		v := durationOf(s)
		d.Plan += v
		d.Seasons[s.Season] += v
	}
	return d
}

// ForStep returns the calculator durations of a step.
func (d PlanDurations) ForStep(stepDuration float64, season emissions.Season) (emissions.Durations, error) {
	seasonDuration, ok := d.Seasons[season]
	if !ok {
		return emissions.Durations{}, fmt.Errorf("season duration: %w: %q", emissions.ErrUnknownSeason, string(season))
	}
	return emissions.Durations{Step: stepDuration, Plan: d.Plan, Season: seasonDuration}, nil
}
