package wellplan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/wellco2/internal/emissions"
)

func TestResolve(t *testing.T) {
	plan := loadPhase2(t)

	steps, err := Resolve(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	for i, s := range steps {
		assert.Equal(t, i, s.Order)
		assert.Equal(t, plan.Steps[i].ID, s.ID)
	}

	t.Run("transit step uses transit baseline and initiative values", func(t *testing.T) {
		s := steps[0]
		assert.Equal(t, emissions.SeasonSummer, s.Season)
		assert.Equal(t, 130.0, s.Input.BaselineFuel)
		assert.Equal(t, []emissions.StepInitiative{
			{ID: 1, Type: emissions.InitiativePowerSystems, Value: 4},
		}, s.Input.Initiatives)
		assert.False(t, s.Input.ExternalEnergySupplyEnabled)
	})

	t.Run("operating step", func(t *testing.T) {
		s := steps[1]
		assert.Equal(t, 128.75, s.Input.BaselineFuel)
		assert.Equal(t, 7.665, s.Duration)
		assert.Equal(t, 6.132, s.ImprovedDuration)
		assert.True(t, s.Input.ExternalEnergySupplyEnabled)
		assert.Equal(t, emissions.BoilerConsumption{Summer: 1.0, Winter: 1.5}, s.Input.Boilers)

		// Ordered by initiative ID.
		assert.Equal(t, []emissions.StepInitiative{
			{ID: 1, Type: emissions.InitiativePowerSystems, Value: 9.0},
			{ID: 2, Type: emissions.InitiativeBaseloads, Value: 8.0},
			{ID: 3, Type: emissions.InitiativeProductivity, Value: 20.0},
		}, s.Input.Initiatives)

		assert.Equal(t, []emissions.MaterialUse{
			{Name: "casing", Category: emissions.MaterialSteel, Quantity: 12, CO2PerUnit: 7},
			{Name: "cement", Category: emissions.MaterialCement, Quantity: 10, CO2PerUnit: 16},
			{Name: "barite", Category: emissions.MaterialBulk, Quantity: 21, CO2PerUnit: 7},
			{Name: "mud additives", Category: emissions.MaterialChemicals, Quantity: 7, CO2PerUnit: 22},
		}, s.Input.Materials)
	})

	t.Run("vessel fuel resolved per season", func(t *testing.T) {
		uses := steps[1].Input.VesselUses
		require.Len(t, uses, 6)
		assert.Equal(t, 13.0, uses[0].FuelConsumption)
		assert.Equal(t, emissions.SeasonSummer, uses[5].Season)
		assert.Equal(t, 12.0, uses[5].FuelConsumption)
	})

	t.Run("helicopters resolved from catalog", func(t *testing.T) {
		uses := steps[2].Input.HelicopterUses
		require.Len(t, uses, 2)
		assert.Equal(t, emissions.HelicopterUse{
			Name: "S-92", Trips: 8, TripDuration: 90, Exposure: 50, FuelConsumption: 641,
			CO2PerFuel: 3.15, FuelDensity: 800, NOXPerFuel: 53.5,
		}, uses[0])
	})
}

func TestResolveImprovedDuration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Plan)
		want   []float64
	}{
		{
			name:   "derived from productivity unless overridden",
			mutate: func(*Plan) {},
			want:   []float64{9.555, 6.132, 2.8896},
		},
		{
			name:   "waiting on weather inflates the derived duration",
			mutate: func(p *Plan) { p.Steps[1].WaitingOnWeather = 5 },
			want:   []float64{9.555, 6.4386, 2.8896},
		},
		{
			name: "override wins over productivity",
			mutate: func(p *Plan) {
				override := 5.0
				p.Steps[1].ImprovedDuration = &override
			},
			want: []float64{9.555, 5.0, 2.8896},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := loadPhase2(t)
			tt.mutate(plan)

			steps, err := Resolve(context.Background(), plan)
			require.NoError(t, err)
			got := make([]float64, 0, len(steps))
			for _, s := range steps {
				got = append(got, s.ImprovedDuration)
			}
			assert.InDeltaSlice(t, tt.want, got, 1e-9)
			// Waiting on weather never changes the planned duration.
			assert.Equal(t, plan.Steps[1].Duration, steps[1].Duration)
		})
	}
}

func TestResolvedStepMatchesReferenceFixture(t *testing.T) {
	steps, err := Resolve(context.Background(), loadPhase2(t))
	require.NoError(t, err)

	got, err := emissions.CalculatePlannedStepBaselineCO2(
		steps[1].Input, emissions.Durations{Step: 7.665, Plan: 20.58, Season: 11.025})
	require.NoError(t, err)
	assert.Equal(t, 747.4543, got.Vessels)
	assert.Equal(t, 3128.3739375, got.Asset)
	assert.Equal(t, 545.0, got.Materials)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Plan)
		wantErr error
	}{
		{
			name:    "unknown phase",
			mutate:  func(p *Plan) { p.Steps[1].Phase = "plugging" },
			wantErr: ErrUnknownPhase,
		},
		{
			name:    "unknown mode",
			mutate:  func(p *Plan) { p.Steps[1].Mode = "standby" },
			wantErr: ErrUnknownMode,
		},
		{
			name:    "missing baseline input",
			mutate:  func(p *Plan) { p.Steps[2].Season = emissions.SeasonSummer },
			wantErr: ErrMissingBaselineInput,
		},
		{
			name:    "missing transit baseline",
			mutate:  func(p *Plan) { delete(p.Baseline.Transit, emissions.SeasonSummer) },
			wantErr: ErrMissingBaselineInput,
		},
		{
			name:    "missing initiative input",
			mutate:  func(p *Plan) { p.Initiatives[1].Inputs = p.Initiatives[1].Inputs[:1] },
			wantErr: ErrMissingInitiativeInput,
		},
		{
			name:    "missing productivity input",
			mutate:  func(p *Plan) { p.Initiatives[2].Inputs = nil },
			wantErr: ErrMissingInitiativeInput,
		},
		{
			name:    "productivity removes the whole step",
			mutate:  func(p *Plan) { p.Initiatives[2].Inputs[0].Value = 100 },
			wantErr: emissions.ErrNonPositiveDuration,
		},
		{
			name:    "missing transit initiative input",
			mutate:  func(p *Plan) { p.Initiatives[0].Transit = nil },
			wantErr: ErrMissingInitiativeInput,
		},
		{
			name:    "unknown initiative",
			mutate:  func(p *Plan) { p.Steps[0].Initiatives = []int{42} },
			wantErr: ErrUnknownInitiative,
		},
		{
			name:    "unknown vessel type",
			mutate:  func(p *Plan) { p.VesselUses[0].VesselType = "FSU" },
			wantErr: ErrUnknownVesselType,
		},
		{
			name:    "unknown helicopter type",
			mutate:  func(p *Plan) { p.HelicopterUses[0].HelicopterType = "AW139" },
			wantErr: ErrUnknownHelicopterType,
		},
		{
			name:    "unknown material type",
			mutate:  func(p *Plan) { p.Steps[1].Materials[0].MaterialType = "titanium" },
			wantErr: ErrUnknownMaterialType,
		},
		{
			name:    "vessel use with unknown season",
			mutate:  func(p *Plan) { p.VesselUses[0].Season = "AUTUMN" },
			wantErr: emissions.ErrUnknownSeason,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := loadPhase2(t)
			tt.mutate(plan)

			_, err := Resolve(context.Background(), plan)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
