package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/rshade/wellco2/internal/emissions"
)

const microsecondsPerDay = 24 * 60 * 60 * 1e6

// DaySlice is the part of a step that falls on one calendar day.
// Datetime is the instant the slice starts; Duration is in days.
type DaySlice struct {
	Datetime time.Time `json:"datetime"`
	Duration float64   `json:"duration"`
}

// SplitDurationIntoDays splits duration days, starting processedDays after
// start, at each midnight. The slice durations add up to duration. The
// split must end within emissions.MaxPlanDays of start.
func SplitDurationIntoDays(start time.Time, processedDays, duration float64) ([]DaySlice, error) {
	if math.IsNaN(processedDays) || math.IsInf(processedDays, 0) ||
		math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("split %v days after %v: %w", duration, processedDays, emissions.ErrNonFiniteValue)
	}
	if processedDays < 0 || processedDays+duration > emissions.MaxPlanDays {
		return nil, fmt.Errorf("split %v days after %v: %w", duration, processedDays, emissions.ErrDurationOutOfRange)
	}

	var out []DaySlice
	for duration > 0 {
		leftInDay := math.Floor(processedDays) + 1 - processedDays
		current := start.Add(days(processedDays))

		if duration <= leftInDay {
			out = append(out, DaySlice{Datetime: current, Duration: duration})
			break
		}

		out = append(out, DaySlice{Datetime: current, Duration: leftInDay})
		duration -= leftInDay
		processedDays += leftInDay
	}
	return out, nil
}

// days converts fractional days to a time.Duration rounded to the microsecond.
func days(d float64) time.Duration {
	return time.Duration(math.RoundToEven(d*microsecondsPerDay)) * time.Microsecond
}

// dateOf truncates t to UTC midnight.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
