package wellplan

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rshade/wellco2/internal/emissions"
)

// SupportedSchema is the range of plan schema versions this build reads.
const SupportedSchema = ">= 1.0.0, < 2.0.0"

// Load reads and validates the plan document at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading well plan %s: %w", path, err)
	}
	plan, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading well plan %s: %w", path, err)
	}
	return plan, nil
}

// Parse decodes and validates a plan document. Documents starting with '{'
// are decoded as JSON, everything else as YAML.
func Parse(data []byte) (*Plan, error) {
	var plan Plan

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidPlan)
	}

	if trimmed[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&plan); err != nil {
			return nil, fmt.Errorf("%w: parsing JSON: %w", ErrInvalidPlan, err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(trimmed))
		dec.KnownFields(true)
		if err := dec.Decode(&plan); err != nil {
			return nil, fmt.Errorf("%w: parsing YAML: %w", ErrInvalidPlan, err)
		}
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// CheckSchemaVersion verifies v against SupportedSchema.
func CheckSchemaVersion(v string) error {
	if v == "" {
		return fmt.Errorf("%w: schema_version is required", ErrUnsupportedSchema)
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, v, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedSchema, version, SupportedSchema)
	}
	return nil
}

// Validate checks the document structure. Cross-references between steps
// and catalogs are checked by Resolve.
func (p *Plan) Validate() error {
	if err := CheckSchemaVersion(p.SchemaVersion); err != nil {
		return err
	}
	if _, err := p.Well.StartDate(); err != nil {
		return fmt.Errorf("%w: planned_start_date %q: %w", ErrInvalidPlan, p.Well.PlannedStartDate, err)
	}
	if len(p.Steps) == 0 {
		return ErrNoSteps
	}

	if err := uniqueIDs("phases", p.Phases, func(x Phase) string { return x.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("modes", p.Modes, func(x Mode) string { return x.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("initiatives", p.Initiatives, func(x Initiative) int { return x.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("vessel_types", p.VesselTypes, func(x VesselType) string { return x.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("helicopter_types", p.HelicopterTypes, func(x HelicopterType) string { return x.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("material_types", p.MaterialTypes, func(x MaterialType) string { return x.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("steps", p.Steps, func(x Step) int { return x.ID }); err != nil {
		return err
	}

	for season := range p.Baseline.Transit {
		if err := season.Validate(); err != nil {
			return fmt.Errorf("baseline transit: %w", err)
		}
	}
	for i, in := range p.Baseline.Inputs {
		if err := in.Season.Validate(); err != nil {
			return fmt.Errorf("baseline inputs[%d]: %w", i, err)
		}
	}
	for _, in := range p.Initiatives {
		if err := in.Type.Validate(); err != nil {
			return fmt.Errorf("initiative %d: %w", in.ID, err)
		}
	}
	for i, u := range p.VesselUses {
		if err := u.Season.Validate(); err != nil {
			return fmt.Errorf("vessel_uses[%d]: %w", i, err)
		}
	}

	// The improved schedule is never longer than the total durations unless
	// overridden, so bounding both sums bounds every schedule.
	span, improvedSpan := 0.0, 0.0
	for _, s := range p.Steps {
		if err := s.Season.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", s.ID, err)
		}
		if err := checkDuration(s.ID, "duration", s.Duration); err != nil {
			return err
		}
		if !isFinite(s.WaitingOnWeather) {
			return fmt.Errorf("step %d waiting_on_weather %v: %w", s.ID, s.WaitingOnWeather, emissions.ErrNonFiniteValue)
		}
		if s.WaitingOnWeather < 0 {
			return fmt.Errorf("step %d waiting_on_weather %v: %w", s.ID, s.WaitingOnWeather, emissions.ErrNegativeValue)
		}
		total := emissions.StepTotalDuration(s.Duration, s.WaitingOnWeather)
		improved := total
		if s.ImprovedDuration != nil {
			if err := checkDuration(s.ID, "improved_duration", *s.ImprovedDuration); err != nil {
				return err
			}
			improved = *s.ImprovedDuration
		}
		span += total
		improvedSpan += improved
	}
	for _, sum := range []float64{span, improvedSpan} {
		if !(sum <= emissions.MaxPlanDays) {
			return fmt.Errorf("%w: steps span %v days, more than %v",
				emissions.ErrDurationOutOfRange, sum, emissions.MaxPlanDays)
		}
	}
	return nil
}

func checkDuration(stepID int, field string, v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("step %d %s %v: %w", stepID, field, v, emissions.ErrNonFiniteValue)
	}
	if !(v > 0) {
		return fmt.Errorf("step %d %s %v: %w", stepID, field, v, emissions.ErrNonPositiveDuration)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func uniqueIDs[T any, K comparable](section string, items []T, id func(T) K) error {
	seen := make(map[K]struct{}, len(items))
	for _, item := range items {
		k := id(item)
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%s: %w: %v", section, ErrDuplicateID, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
