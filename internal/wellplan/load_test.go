package wellplan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/wellco2/internal/emissions"
)

const phase2Path = "testdata/phase2.yaml"

func loadPhase2(t *testing.T) *Plan {
	t.Helper()
	plan, err := Load(phase2Path)
	require.NoError(t, err)
	return plan
}

func TestLoad(t *testing.T) {
	plan := loadPhase2(t)

	assert.Equal(t, "Troll B-12", plan.Well.Name)
	assert.Equal(t, 3.17, plan.Well.CO2PerFuel)
	assert.Equal(t, 5.0, plan.Well.BoilersNOXPerFuel)
	assert.Len(t, plan.Steps, 3)
	assert.Len(t, plan.VesselUses, 6)
	assert.Equal(t, 130.0, plan.Baseline.Transit[emissions.SeasonSummer])
	require.NotNil(t, plan.ExternalEnergySupply)
	assert.Equal(t, 3.881, plan.ExternalEnergySupply.GeneratorEfficiency)

	start, err := plan.Well.StartDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)

	assert.Equal(t, map[int]string{
		1: "Closed bus-tie",
		2: "Pump optimisation",
		3: "Offline stand building",
	}, plan.InitiativeNames())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseJSON(t *testing.T) {
	plan := loadPhase2(t)
	data, err := json.Marshal(plan)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, plan, parsed)
}

func TestParseErrors(t *testing.T) {
	valid, err := os.ReadFile(phase2Path)
	require.NoError(t, err)
	doc := string(valid)

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "empty", data: "  \n", wantErr: ErrInvalidPlan},
		{name: "malformed yaml", data: "schema_version: [", wantErr: ErrInvalidPlan},
		{name: "unknown field", data: doc + "\nextra_field: 1\n", wantErr: ErrInvalidPlan},
		{
			name:    "missing schema version",
			data:    strings.Replace(doc, `schema_version: "1.0.0"`, "", 1),
			wantErr: ErrUnsupportedSchema,
		},
		{
			name:    "future schema version",
			data:    strings.Replace(doc, `schema_version: "1.0.0"`, `schema_version: "2.1.0"`, 1),
			wantErr: ErrUnsupportedSchema,
		},
		{
			name:    "bad start date",
			data:    strings.Replace(doc, `"2024-03-01"`, `"01/03/2024"`, 1),
			wantErr: ErrInvalidPlan,
		},
		{
			name:    "unknown step season",
			data:    strings.Replace(doc, "    season: SUMMER\n    duration: 9.555", "    season: SPRING\n    duration: 9.555", 1),
			wantErr: emissions.ErrUnknownSeason,
		},
		{
			name:    "zero duration",
			data:    strings.Replace(doc, "duration: 3.36", "duration: 0", 1),
			wantErr: emissions.ErrNonPositiveDuration,
		},
		{
			name:    "zero improved duration",
			data:    strings.Replace(doc, "improved_duration: 2.8896", "improved_duration: 0", 1),
			wantErr: emissions.ErrNonPositiveDuration,
		},
		{
			name:    "nan duration",
			data:    strings.Replace(doc, "duration: 3.36", "duration: .nan", 1),
			wantErr: emissions.ErrNonFiniteValue,
		},
		{
			name:    "infinite duration",
			data:    strings.Replace(doc, "duration: 3.36", "duration: .inf", 1),
			wantErr: emissions.ErrNonFiniteValue,
		},
		{
			name:    "infinite improved duration",
			data:    strings.Replace(doc, "improved_duration: 2.8896", "improved_duration: .inf", 1),
			wantErr: emissions.ErrNonFiniteValue,
		},
		{
			name:    "negative waiting on weather",
			data:    strings.Replace(doc, "duration: 3.36", "duration: 3.36\n    waiting_on_weather: -5", 1),
			wantErr: emissions.ErrNegativeValue,
		},
		{
			name:    "nan waiting on weather",
			data:    strings.Replace(doc, "duration: 3.36", "duration: 3.36\n    waiting_on_weather: .nan", 1),
			wantErr: emissions.ErrNonFiniteValue,
		},
		{
			name:    "steps longer than a century",
			data:    strings.Replace(doc, "duration: 3.36", "duration: 1e8", 1),
			wantErr: emissions.ErrDurationOutOfRange,
		},
		{
			name:    "waiting on weather pushes schedule past a century",
			data:    strings.Replace(doc, "duration: 3.36", "duration: 3.36\n    waiting_on_weather: 1e9", 1),
			wantErr: emissions.ErrDurationOutOfRange,
		},
		{
			name:    "duplicate step id",
			data:    strings.Replace(doc, "  - id: 3\n    phase: completion", "  - id: 2\n    phase: completion", 1),
			wantErr: ErrDuplicateID,
		},
		{
			name:    "unknown initiative type",
			data:    strings.Replace(doc, "type: BASELOADS", "type: MAGIC", 1),
			wantErr: emissions.ErrUnknownInitiativeType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, parseErr := Parse([]byte(tt.data))
			require.Error(t, parseErr)
			assert.ErrorIs(t, parseErr, tt.wantErr)
		})
	}
}

func TestParseJSONRejectsUnknownFields(t *testing.T) {
	plan := loadPhase2(t)
	data, err := json.Marshal(plan)
	require.NoError(t, err)

	misspelt := strings.Replace(string(data),
		`"external_energy_supply_enabled"`, `"external_energy_suply_enabled"`, 1)
	require.NotEqual(t, string(data), misspelt)

	_, err = Parse([]byte(misspelt))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestParseNoSteps(t *testing.T) {
	data := `schema_version: "1.0.0"
well:
  name: empty
  planned_start_date: "2024-01-01"
`
	_, err := Parse([]byte(data))
	assert.ErrorIs(t, err, ErrNoSteps)
}

func TestCheckSchemaVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"1.0.0", false},
		{"1.4.2", false},
		{"v1.2", false},
		{"0.9.0", true},
		{"2.0.0", true},
		{"not-a-version", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := CheckSchemaVersion(tt.version)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedSchema)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
