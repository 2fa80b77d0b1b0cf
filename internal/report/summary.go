package report

import (
	"cmp"
	"slices"
	"time"

	"github.com/rshade/wellco2/internal/engine"
	"github.com/rshade/wellco2/internal/greenops"
)

// Totals are the emissions of a whole schedule.
type Totals struct {
	Duration float64          `json:"duration_days"`
	CO2      engine.CO2Totals `json:"co2"`
	NOX      engine.NOXTotals `json:"nox"`
}

// InitiativeTotal is the reduction of one initiative over the whole plan.
type InitiativeTotal struct {
	ID   int     `json:"id"`
	Name string  `json:"name,omitempty"`
	CO2  float64 `json:"co2"`
	NOX  float64 `json:"nox"`
}

// Summary condenses a Result into plan totals.
type Summary struct {
	RunID       string            `json:"run_id"`
	Well        string            `json:"well"`
	StartDate   string            `json:"start_date"`
	Baseline    Totals            `json:"baseline"`
	Target      Totals            `json:"target"`
	Initiatives []InitiativeTotal `json:"initiatives"`

	// CO2ReductionEquivalents is set when the plan saves at least a kilogram.
	CO2ReductionEquivalents *greenops.Equivalents `json:"co2_reduction_equivalents,omitempty"`
}

// CO2Reduction is the baseline CO2 minus the target CO2.
func (s Summary) CO2Reduction() float64 {
	return s.Baseline.CO2.Total() - s.Target.CO2.Total()
}

// NOXReduction is the baseline NOX minus the target NOX.
func (s Summary) NOXReduction() float64 {
	return s.Baseline.NOX.Total() - s.Target.NOX.Total()
}

// Summarize totals every row of r.
func Summarize(r *engine.Result) Summary {
	s := Summary{
		RunID:     r.RunID,
		Well:      r.Well,
		StartDate: r.StartDate.Format(time.DateOnly),
		Baseline: Totals{
			Duration: r.Baselines.Durations.Plan,
			CO2:      engine.SumCO2(r.Baselines.CO2),
			NOX:      engine.SumNOX(r.Baselines.NOX),
		},
		Target: Totals{
			Duration: r.Targets.Durations.Plan,
			CO2:      engine.SumCO2(r.Targets.CO2),
			NOX:      engine.SumNOX(r.Targets.NOX),
		},
	}

	byID := make(map[int]*InitiativeTotal)
	total := func(id int) *InitiativeTotal {
		if t, ok := byID[id]; ok {
			return t
		}
		t := &InitiativeTotal{ID: id, Name: r.InitiativeNames[id]}
		byID[id] = t
		return t
	}
	for _, row := range r.Targets.CO2 {
		for _, red := range row.EmissionReductionInitiatives {
			total(red.EmissionReductionInitiativeID).CO2 += red.Value
		}
	}
	for _, row := range r.Targets.NOX {
		for _, red := range row.EmissionReductionInitiatives {
			total(red.EmissionReductionInitiativeID).NOX += red.Value
		}
	}

	s.Initiatives = make([]InitiativeTotal, 0, len(byID))
	for _, t := range byID {
		s.Initiatives = append(s.Initiatives, *t)
	}
	slices.SortFunc(s.Initiatives, func(a, b InitiativeTotal) int { return a.ID - b.ID })

	if reduction := s.CO2Reduction(); reduction > 0 {
		if eq, err := greenops.FromTonnes(reduction); err == nil && !eq.IsEmpty() {
			s.CO2ReductionEquivalents = &eq
		}
	}

	return s
}

// Day is one calendar date of a plan with baseline and target totals.
type Day struct {
	Date        string                            `json:"date"`
	BaselineCO2 float64                           `json:"baseline_co2"`
	TargetCO2   float64                           `json:"target_co2"`
	BaselineNOX float64                           `json:"baseline_nox"`
	TargetNOX   float64                           `json:"target_nox"`
	Reductions  []engine.InitiativeDailyReduction `json:"emission_reduction_initiatives"`
}

// Daily lays r out by calendar date, from the plan start to the end of the
// longer of the two schedules.
func Daily(r *engine.Result) []Day {
	index := make(map[time.Time]int)
	var days []Day
	day := func(date time.Time) *Day {
		if i, ok := index[date]; ok {
			return &days[i]
		}
		index[date] = len(days)
		days = append(days, Day{
			Date:       date.Format(time.DateOnly),
			Reductions: []engine.InitiativeDailyReduction{},
		})
		return &days[len(days)-1]
	}

	for _, red := range engine.EmissionReductionsByDate(r.Targets.CO2, r.StartDate,
		r.Baselines.Durations.Plan, r.InitiativeNames) {
		day(red.Date).Reductions = red.EmissionReductionInitiatives
	}
	for _, d := range engine.DailyCO2(r.Baselines.CO2) {
		day(d.Date).BaselineCO2 = d.Total()
	}
	for _, d := range engine.DailyCO2(r.Targets.CO2) {
		day(d.Date).TargetCO2 = d.Total()
	}
	for _, d := range engine.DailyNOX(r.Baselines.NOX) {
		day(d.Date).BaselineNOX = d.Total()
	}
	for _, d := range engine.DailyNOX(r.Targets.NOX) {
		day(d.Date).TargetNOX = d.Total()
	}

	// ISO dates sort lexically.
	slices.SortFunc(days, func(a, b Day) int { return cmp.Compare(a.Date, b.Date) })
	return days
}
