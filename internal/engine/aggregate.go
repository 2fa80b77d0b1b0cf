package engine

import (
	"math"
	"slices"
	"time"

	"github.com/rshade/wellco2/internal/emissions"
)

// DailyCO2Totals is the CO2 of every step on one calendar date.
type DailyCO2Totals struct {
	Date time.Time `json:"date"`
	CO2Totals
}

// DailyNOXTotals is the NOX of every step on one calendar date.
type DailyNOXTotals struct {
	Date time.Time `json:"date"`
	NOXTotals
}

// DailyCO2 groups rows by UTC date and sums each component. Dates are
// returned in ascending order.
func DailyCO2[R CO2Row](rows []R) []DailyCO2Totals {
	byDate := groupByDate(rows,
		func(r R) time.Time { return r.When() },
		func(r R) CO2Totals { return r.CO2() },
		CO2Totals.add)
	out := make([]DailyCO2Totals, 0, len(byDate))
	for _, g := range byDate {
		out = append(out, DailyCO2Totals{Date: g.date, CO2Totals: g.total})
	}
	return out
}

// DailyNOX groups rows by UTC date and sums each component.
func DailyNOX[R NOXRow](rows []R) []DailyNOXTotals {
	byDate := groupByDate(rows,
		func(r R) time.Time { return r.When() },
		func(r R) NOXTotals { return r.NOX() },
		NOXTotals.add)
	out := make([]DailyNOXTotals, 0, len(byDate))
	for _, g := range byDate {
		out = append(out, DailyNOXTotals{Date: g.date, NOXTotals: g.total})
	}
	return out
}

type dateGroup[T any] struct {
	date  time.Time
	total T
}

func groupByDate[R, T any](rows []R, when func(R) time.Time, value func(R) T, add func(T, T) T) []dateGroup[T] {
	index := make(map[time.Time]int)
	var groups []dateGroup[T]
	for _, r := range rows {
		date := dateOf(when(r))
		i, ok := index[date]
		if !ok {
			index[date] = len(groups)
			groups = append(groups, dateGroup[T]{date: date, total: value(r)})
			continue
		}
		groups[i].total = add(groups[i].total, value(r))
	}
	slices.SortStableFunc(groups, func(a, b dateGroup[T]) int { return a.date.Compare(b.date) })
	return groups
}

// InitiativeDailyReduction is the reduction of one initiative on one date.
type InitiativeDailyReduction struct {
	EmissionReductionInitiativeID int     `json:"emission_reduction_initiative_id"`
	Name                          string  `json:"name,omitempty"`
	Value                         float64 `json:"value"`
}

// EmissionReduction lists the initiative reductions of one date.
type EmissionReduction struct {
	Date                         time.Time                  `json:"date"`
	EmissionReductionInitiatives []InitiativeDailyReduction `json:"emission_reduction_initiatives"`
}

// ReductionRow is implemented by the target rows.
type ReductionRow interface {
	When() time.Time
	Reductions() []emissions.InitiativeReduction
}

// Reductions returns the row's initiative reductions.
func (r TargetCO2Row) Reductions() []emissions.InitiativeReduction {
	return r.EmissionReductionInitiatives
}

// Reductions returns the row's initiative reductions.
func (r TargetNOXRow) Reductions() []emissions.InitiativeReduction {
	return r.EmissionReductionInitiatives
}

// EmissionReductionsByDate sums reductions per date and initiative.
//
// Every date from start to start+ceil(planDuration)-1 is present, with an
// empty list when nothing was reduced that day. Initiatives within a date
// are ordered by ID. names is optional.
func EmissionReductionsByDate[R ReductionRow](
	rows []R, start time.Time, planDuration float64, names map[int]string,
) []EmissionReduction {
	start = dateOf(start)

	type key struct {
		date time.Time
		id   int
	}
	totals := make(map[key]float64)
	dates := make(map[time.Time]struct{})

	lastDay := 0
	if planDuration > 0 {
		lastDay = int(math.Ceil(planDuration)) - 1
	}
	for i := 0; i <= lastDay; i++ {
		dates[start.AddDate(0, 0, i)] = struct{}{}
	}

	for _, r := range rows {
		date := dateOf(r.When())
		dates[date] = struct{}{}
		for _, reduction := range r.Reductions() {
			totals[key{date, reduction.EmissionReductionInitiativeID}] += reduction.Value
		}
	}

	sortedDates := make([]time.Time, 0, len(dates))
	for d := range dates {
		sortedDates = append(sortedDates, d)
	}
	slices.SortFunc(sortedDates, time.Time.Compare)

	out := make([]EmissionReduction, 0, len(sortedDates))
	for _, d := range sortedDates {
		day := EmissionReduction{Date: d, EmissionReductionInitiatives: []InitiativeDailyReduction{}}
		for k, v := range totals {
			if k.date.Equal(d) {
				day.EmissionReductionInitiatives = append(day.EmissionReductionInitiatives, InitiativeDailyReduction{
					EmissionReductionInitiativeID: k.id,
					Name:                          names[k.id],
					Value:                         v,
				})
			}
		}
		slices.SortFunc(day.EmissionReductionInitiatives, func(a, b InitiativeDailyReduction) int {
			return a.EmissionReductionInitiativeID - b.EmissionReductionInitiativeID
		})
		out = append(out, day)
	}
	return out
}

// SumCO2 adds up every row.
func SumCO2[R CO2Row](rows []R) CO2Totals {
	var total CO2Totals
	for _, r := range rows {
		total = total.add(r.CO2())
	}
	return total
}

// SumNOX adds up every row.
func SumNOX[R NOXRow](rows []R) NOXTotals {
	var total NOXTotals
	for _, r := range rows {
		total = total.add(r.NOX())
	}
	return total
}
