package greenops

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToKg(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		unit    string
		want    float64
		wantErr error
	}{
		{name: "tonnes", value: 2.5, unit: "t", want: 2500},
		{name: "tonnes CO2 mixed case", value: 1, unit: "tCO2", want: 1000},
		{name: "kilograms", value: 42, unit: "kg", want: 42},
		{name: "grams", value: 1500, unit: "g", want: 1.5},
		{name: "pounds", value: 10, unit: "LB", want: 4.53592},
		{name: "unknown unit", value: 1, unit: "stone", wantErr: ErrInvalidUnit},
		{name: "negative", value: -1, unit: "t", wantErr: ErrNegativeValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeToKg(tt.value, tt.unit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFromTonnes(t *testing.T) {
	got, err := FromTonnes(2.5)
	require.NoError(t, err)
	assert.InDelta(t, 2500.0, got.InputKg, 1e-9)
	require.Len(t, got.Results, 3)

	assert.Equal(t, MilesDriven, got.Results[0].Kind)
	assert.Equal(t, "6,361", got.Results[0].Formatted)
	assert.Equal(t, "137", got.Results[1].Formatted)
	assert.Equal(t, "42", got.Results[2].Formatted)
	assert.Equal(t,
		"Equivalent to ~6,361 miles driven by car, ~137 days of household electricity, "+
			"~42 tree seedlings grown for 10 years",
		got.Text)
}

func TestFromTonnes_Large(t *testing.T) {
	got, err := FromTonnes(1_000_000)
	require.NoError(t, err)
	assert.Equal(t, "~2.5 billion", got.Results[0].Formatted)
	assert.Equal(t, "~54.6 million", got.Results[1].Formatted)
	assert.Equal(t, "~16.7 million", got.Results[2].Formatted)
	assert.Contains(t, got.Text, "~2.5 billion miles")
	assert.NotContains(t, got.Text, "~~")
}

func TestFromTonnes_BelowThreshold(t *testing.T) {
	got, err := FromTonnes(0.0005)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
	assert.Empty(t, got.Text)
}

func TestFromTonnes_Negative(t *testing.T) {
	_, err := FromTonnes(-3)
	require.ErrorIs(t, err, ErrNegativeValue)
}

func TestKindJSON(t *testing.T) {
	data, err := json.Marshal(Equivalent{Kind: HomeDays, Value: 1, Formatted: "1", Label: "x"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"home_days"`)

	var back Equivalent
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, HomeDays, back.Kind)

	var k Kind
	require.Error(t, k.UnmarshalText([]byte("smartphones")))
}

func TestFormatLarge(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 999_999.4, want: "999,999"},
		{in: 1_500_000, want: "~1.5 million"},
		{in: 2_000_000_000, want: "~2.0 billion"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLarge(tt.in))
		})
	}
}
