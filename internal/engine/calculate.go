package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rshade/wellco2/internal/emissions"
	"github.com/rshade/wellco2/internal/logging"
	"github.com/rshade/wellco2/internal/wellplan"
)

// Baselines are the per-day baseline rows of a plan.
type Baselines struct {
	Durations PlanDurations    `json:"durations"`
	CO2       []BaselineCO2Row `json:"co2"`
	NOX       []BaselineNOXRow `json:"nox"`
}

// Targets are the per-day target rows of a plan.
type Targets struct {
	Durations PlanDurations  `json:"durations"`
	CO2       []TargetCO2Row `json:"co2"`
	NOX       []TargetNOXRow `json:"nox"`
}

// Result is the outcome of calculating one plan.
type Result struct {
	RunID     string    `json:"run_id"`
	Well      string    `json:"well"`
	StartDate time.Time `json:"start_date"`
	Baselines Baselines `json:"baselines"`
	Targets   Targets   `json:"targets"`

	// InitiativeNames maps initiative IDs to names for reporting.
	InitiativeNames map[int]string `json:"initiative_names,omitempty"`
}

// Calculate resolves plan and computes its baseline and target rows.
func Calculate(ctx context.Context, plan *wellplan.Plan) (*Result, error) {
	log := logging.FromContext(ctx)

	start, err := plan.Well.StartDate()
	if err != nil {
		return nil, fmt.Errorf("%w: planned_start_date: %w", wellplan.ErrInvalidPlan, err)
	}

	steps, err := wellplan.Resolve(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("resolving plan %q: %w", plan.Well.Name, err)
	}

	baselines, err := CalculateBaselines(ctx, start, steps)
	if err != nil {
		return nil, fmt.Errorf("calculating baselines for %q: %w", plan.Well.Name, err)
	}
	targets, err := CalculateTargets(ctx, start, steps)
	if err != nil {
		return nil, fmt.Errorf("calculating targets for %q: %w", plan.Well.Name, err)
	}

	result := &Result{
		RunID:           logging.GetOrGenerateTraceID(ctx),
		Well:            plan.Well.Name,
		StartDate:       start,
		Baselines:       baselines,
		Targets:         targets,
		InitiativeNames: plan.InitiativeNames(),
	}

	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "calculate").
		Str("well", plan.Well.Name).
		Int("steps", len(steps)).
		Int("baseline_rows", len(baselines.CO2)).
		Int("target_rows", len(targets.CO2)).
		Msg("well plan calculated")

	return result, nil
}

// CalculateBaselines computes the baseline rows using planned durations.
func CalculateBaselines(ctx context.Context, start time.Time, steps []wellplan.ResolvedStep) (Baselines, error) {
	durations := ComputeDurations(steps, PlannedDuration)
	out := Baselines{Durations: durations}

	processed := 0.0
	for _, step := range steps {
		d, err := durations.ForStep(step.Duration, step.Season)
		if err != nil {
			return Baselines{}, fmt.Errorf("step %d: %w", step.ID, err)
		}

		co2, err := emissions.CalculatePlannedStepBaselineCO2(step.Input, d)
		if err != nil {
			return Baselines{}, fmt.Errorf("step %d: %w", step.ID, err)
		}
		nox, err := emissions.CalculatePlannedStepBaselineNOX(step.Input, d)
		if err != nil {
			return Baselines{}, fmt.Errorf("step %d: %w", step.ID, err)
		}

		dailyCO2 := co2.Multiply(1 / step.Duration)
		dailyNOX := nox.Multiply(1 / step.Duration)

		slices, err := SplitDurationIntoDays(start, processed, step.Duration)
		if err != nil {
			return Baselines{}, fmt.Errorf("step %d: %w", step.ID, err)
		}
		for _, day := range slices {
			out.CO2 = append(out.CO2, BaselineCO2Row{
				StepID: step.ID, Datetime: day.Datetime, BaselineCO2Data: dailyCO2.Multiply(day.Duration),
			})
			out.NOX = append(out.NOX, BaselineNOXRow{
				StepID: step.ID, Datetime: day.Datetime, BaselineNOXData: dailyNOX.Multiply(day.Duration),
			})
			processed += day.Duration
		}

		logStep(ctx, "calculate_baselines", step, d)
	}

	return out, nil
}

// CalculateTargets computes the target rows using improved durations.
func CalculateTargets(ctx context.Context, start time.Time, steps []wellplan.ResolvedStep) (Targets, error) {
	durations := ComputeDurations(steps, ImprovedDuration)
	out := Targets{Durations: durations}

	processed := 0.0
	for _, step := range steps {
		d, err := durations.ForStep(step.ImprovedDuration, step.Season)
		if err != nil {
			return Targets{}, fmt.Errorf("step %d: %w", step.ID, err)
		}

		co2, err := emissions.CalculatePlannedStepTargetCO2(step.Input, d)
		if err != nil {
			return Targets{}, fmt.Errorf("step %d: %w", step.ID, err)
		}
		nox, err := emissions.CalculatePlannedStepTargetNOX(step.Input, d)
		if err != nil {
			return Targets{}, fmt.Errorf("step %d: %w", step.ID, err)
		}

		dailyCO2 := co2.Multiply(1 / step.ImprovedDuration)
		dailyNOX := nox.Multiply(1 / step.ImprovedDuration)

		slices, err := SplitDurationIntoDays(start, processed, step.ImprovedDuration)
		if err != nil {
			return Targets{}, fmt.Errorf("step %d: %w", step.ID, err)
		}
		for _, day := range slices {
			out.CO2 = append(out.CO2, TargetCO2Row{
				StepID: step.ID, Datetime: day.Datetime, TargetCO2Data: dailyCO2.Multiply(day.Duration),
			})
			out.NOX = append(out.NOX, TargetNOXRow{
				StepID: step.ID, Datetime: day.Datetime, TargetNOXData: dailyNOX.Multiply(day.Duration),
			})
			processed += day.Duration
		}

		logStep(ctx, "calculate_targets", step, d)
	}

	return out, nil
}

func logStep(ctx context.Context, operation string, step wellplan.ResolvedStep, d emissions.Durations) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", operation).
		Int("step_id", step.ID).
		Str("season", string(step.Season)).
		Float64("step_duration", d.Step).
		Float64("plan_duration", d.Plan).
		Float64("season_duration", d.Season).
		Msg("step calculated")
}
