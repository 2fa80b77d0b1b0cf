package engine

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/wellco2/internal/emissions"
	"github.com/rshade/wellco2/internal/logging"
	"github.com/rshade/wellco2/internal/wellplan"
)

var planStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func loadPlan(t *testing.T) *wellplan.Plan {
	t.Helper()
	plan, err := wellplan.Load("testdata/phase2.yaml")
	require.NoError(t, err)
	return plan
}

func resolvedSteps(t *testing.T) []wellplan.ResolvedStep {
	t.Helper()
	steps, err := wellplan.Resolve(context.Background(), loadPlan(t))
	require.NoError(t, err)
	return steps
}

func TestComputeDurations(t *testing.T) {
	steps := resolvedSteps(t)

	planned := ComputeDurations(steps, PlannedDuration)
	assert.Equal(t, 20.58, planned.Plan)
	assert.Equal(t, 11.025, planned.Seasons[emissions.SeasonWinter])
	assert.Equal(t, 9.555, planned.Seasons[emissions.SeasonSummer])

	improved := ComputeDurations(steps, ImprovedDuration)
	assert.Equal(t, 18.5766, improved.Plan)
	assert.Equal(t, 9.0216, improved.Seasons[emissions.SeasonWinter])

	d, err := planned.ForStep(7.665, emissions.SeasonWinter)
	require.NoError(t, err)
	assert.Equal(t, emissions.Durations{Step: 7.665, Plan: 20.58, Season: 11.025}, d)

	_, err = planned.ForStep(1, "AUTUMN")
	assert.ErrorIs(t, err, emissions.ErrUnknownSeason)
}

func TestComputeDurationsEmptySeason(t *testing.T) {
	d := ComputeDurations(nil, PlannedDuration)
	assert.Zero(t, d.Plan)
	assert.Contains(t, d.Seasons, emissions.SeasonSummer)
	assert.Zero(t, d.Seasons[emissions.SeasonSummer])
}

func TestSplitDurationIntoDays(t *testing.T) {
	tests := []struct {
		name      string
		processed float64
		duration  float64
		want      []DaySlice
	}{
		{
			name:     "whole and partial days",
			duration: 2.5,
			want: []DaySlice{
				{Datetime: planStart, Duration: 1},
				{Datetime: planStart.AddDate(0, 0, 1), Duration: 1},
				{Datetime: planStart.AddDate(0, 0, 2), Duration: 0.5},
			},
		},
		{
			name:      "starting mid day",
			processed: 0.5,
			duration:  1.0,
			want: []DaySlice{
				{Datetime: planStart.Add(12 * time.Hour), Duration: 0.5},
				{Datetime: planStart.AddDate(0, 0, 1), Duration: 0.5},
			},
		},
		{
			name:      "fits in the current day",
			processed: 3.25,
			duration:  0.5,
			want: []DaySlice{
				{Datetime: planStart.AddDate(0, 0, 3).Add(6 * time.Hour), Duration: 0.5},
			},
		},
		{
			name:      "exactly to midnight",
			processed: 0.75,
			duration:  0.25,
			want: []DaySlice{
				{Datetime: planStart.Add(18 * time.Hour), Duration: 0.25},
			},
		},
		{
			name:     "zero duration",
			duration: 0,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitDurationIntoDays(planStart, tt.processed, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitDurationIntoDaysSumsToDuration(t *testing.T) {
	for _, duration := range []float64{9.555, 7.665, 3.36, 0.01, 14} {
		slices, err := SplitDurationIntoDays(planStart, 9.555, duration)
		require.NoError(t, err)
		total := 0.0
		for _, s := range slices {
			total += s.Duration
			assert.LessOrEqual(t, s.Duration, 1.0)
		}
		assert.InDelta(t, duration, total, 1e-9)
	}
}

func TestSplitDurationMicrosecondDatetimes(t *testing.T) {
	slices, err := SplitDurationIntoDays(planStart, 9.555, 0.2)
	require.NoError(t, err)
	require.Len(t, slices, 1)
	assert.Equal(t, time.Date(2024, 3, 10, 13, 19, 12, 0, time.UTC), slices[0].Datetime)
}

func TestSplitDurationIntoDaysRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		processed float64
		duration  float64
		wantErr   error
	}{
		{name: "past the supported horizon", duration: 120_000, wantErr: emissions.ErrDurationOutOfRange},
		{name: "crosses the horizon", processed: emissions.MaxPlanDays - 1, duration: 2, wantErr: emissions.ErrDurationOutOfRange},
		{name: "negative offset", processed: -1, duration: 1, wantErr: emissions.ErrDurationOutOfRange},
		{name: "nan duration", duration: math.NaN(), wantErr: emissions.ErrNonFiniteValue},
		{name: "infinite duration", duration: math.Inf(1), wantErr: emissions.ErrNonFiniteValue},
		{name: "infinite offset", processed: math.Inf(1), duration: 1, wantErr: emissions.ErrNonFiniteValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitDurationIntoDays(planStart, tt.processed, tt.duration)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestSplitDurationIntoDaysUpToHorizon(t *testing.T) {
	slices, err := SplitDurationIntoDays(planStart, emissions.MaxPlanDays-3, 3)
	require.NoError(t, err)
	require.Len(t, slices, 3)
	for i := 1; i < len(slices); i++ {
		assert.True(t, slices[i].Datetime.After(slices[i-1].Datetime))
	}
	assert.Equal(t, planStart.AddDate(0, 0, int(emissions.MaxPlanDays)-1), slices[2].Datetime)
}

func TestCalculateBaselines(t *testing.T) {
	steps := resolvedSteps(t)

	got, err := CalculateBaselines(context.Background(), planStart, steps)
	require.NoError(t, err)

	require.Len(t, got.CO2, 23)
	require.Len(t, got.NOX, 23)

	perStep := map[int]int{}
	sums := map[int]emissions.BaselineCO2Data{}
	for _, row := range got.CO2 {
		perStep[row.StepID]++
		sums[row.StepID] = sums[row.StepID].Add(row.BaselineCO2Data)
	}
	assert.Equal(t, map[int]int{1: 10, 2: 9, 3: 4}, perStep)

	// Daily rows of the reference step add back up to the step figures.
	step2 := sums[2]
	assert.InDelta(t, 3128.3739375, step2.Asset, 1e-9)
	assert.InDelta(t, 36.447075, step2.Boilers, 1e-9)
	assert.InDelta(t, 747.4543, step2.Vessels, 1e-9)
	assert.InDelta(t, 14.921525892857144, step2.Helicopters, 1e-9)
	assert.InDelta(t, 545.0, step2.Materials, 1e-9)
	assert.InDelta(t, 1.6863, step2.ExternalEnergySupply, 1e-9)

	// The transit step is summer: only the summer vessel use falls on it.
	assert.Positive(t, sums[1].Vessels)
	assert.InDelta(t, 130*9.555*3.17, sums[1].Asset, 1e-9)

	first := got.CO2[10]
	assert.Equal(t, 2, first.StepID)
	assert.Equal(t, time.Date(2024, 3, 10, 13, 19, 12, 0, time.UTC), first.Datetime)
	assert.InDelta(t, 3128.3739375/7.665*0.445, first.Asset, 1e-9)
}

func TestCalculateTargets(t *testing.T) {
	steps := resolvedSteps(t)

	got, err := CalculateTargets(context.Background(), planStart, steps)
	require.NoError(t, err)

	assert.Equal(t, 18.5766, got.Durations.Plan)
	require.Len(t, got.CO2, 21)

	asset := 0.0
	initiatives := map[int]float64{}
	for _, row := range got.CO2 {
		if row.StepID != 2 {
			continue
		}
		asset += row.Asset
		for _, r := range row.EmissionReductionInitiatives {
			initiatives[r.EmissionReductionInitiativeID] += r.Value
		}
	}
	assert.InDelta(t, 1775.47795194, asset, 1e-9)
	assert.InDelta(t, 225.2429235, initiatives[1], 1e-9)
	assert.InDelta(t, 200.21593199999998, initiatives[2], 1e-9)
	assert.NotContains(t, initiatives, 3)

	last := got.NOX[len(got.NOX)-1]
	assert.Equal(t, 3, last.StepID)
	assert.Equal(t, planStart.AddDate(0, 0, 18), last.Datetime)
}

func TestCalculate(t *testing.T) {
	ctx := logging.ContextWithTraceID(context.Background(), "01HRUN")

	result, err := Calculate(ctx, loadPlan(t))
	require.NoError(t, err)

	assert.Equal(t, "01HRUN", result.RunID)
	assert.Equal(t, "Troll B-12", result.Well)
	assert.Equal(t, planStart, result.StartDate)
	assert.Len(t, result.Baselines.CO2, 23)
	assert.Len(t, result.Targets.NOX, 21)
	assert.Equal(t, "Closed bus-tie", result.InitiativeNames[1])
}

func TestCalculateResolveError(t *testing.T) {
	plan := loadPlan(t)
	plan.Steps[1].Phase = "unknown"

	_, err := Calculate(context.Background(), plan)
	assert.ErrorIs(t, err, wellplan.ErrUnknownPhase)
}
