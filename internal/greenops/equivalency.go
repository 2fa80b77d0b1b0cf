package greenops

import (
	"fmt"
	"math"
	"strings"
)

// Kind is a category of equivalent.
type Kind int

const (
	MilesDriven Kind = iota
	HomeDays
	TreeSeedlings
)

func (k Kind) String() string {
	switch k {
	case MilesDriven:
		return "miles_driven"
	case HomeDays:
		return "home_days"
	case TreeSeedlings:
		return "tree_seedlings"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a name written by MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	for _, c := range []Kind{MilesDriven, HomeDays, TreeSeedlings} {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown equivalent kind %q", b)
}

// Equivalent is one converted quantity.
type Equivalent struct {
	Kind      Kind    `json:"kind"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	Label     string  `json:"label"`
}

// Equivalents are the equivalents of one CO2 mass.
type Equivalents struct {
	InputKg float64      `json:"input_kg"`
	Results []Equivalent `json:"results,omitempty"`
	Text    string       `json:"text,omitempty"`
}

// IsEmpty reports whether the mass was too small to convert.
func (e Equivalents) IsEmpty() bool {
	return len(e.Results) == 0
}

var factors = []struct { //nolint:gochecknoglobals // Fixed table.
	kind   Kind
	factor float64
	label  string
}{
	{MilesDriven, MilesDrivenFactor, "miles driven by car"},
	{HomeDays, HomeDayFactor, "days of household electricity"},
	{TreeSeedlings, TreeSeedlingFactor, "tree seedlings grown for 10 years"},
}

// Calculate converts value in unit to every equivalent. Masses below
// MinEquivalencyThresholdKg give an empty result and no error.
func Calculate(value float64, unit string) (Equivalents, error) {
	kg, err := NormalizeToKg(value, unit)
	if err != nil {
		return Equivalents{}, err
	}
	out := Equivalents{InputKg: kg}
	if kg < MinEquivalencyThresholdKg {
		return out, nil
	}

	parts := make([]string, 0, len(factors))
	for _, f := range factors {
		v := kg / f.factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return Equivalents{}, ErrCalculationOverflow
		}
		formatted := formatEquivalent(v)
		out.Results = append(out.Results, Equivalent{Kind: f.kind, Value: v, Formatted: formatted, Label: f.label})
		parts = append(parts, "~"+strings.TrimPrefix(formatted, "~")+" "+f.label)
	}
	out.Text = "Equivalent to " + strings.Join(parts, ", ")
	return out, nil
}

// FromTonnes is Calculate for a mass in tonnes, the unit of every
// calculator output.
func FromTonnes(tonnes float64) (Equivalents, error) {
	return Calculate(tonnes, "t")
}

func formatEquivalent(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
