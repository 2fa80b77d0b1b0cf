package emissions

import "fmt"

// StepTotalDuration is the planned duration of a step including its
// waiting-on-weather allowance (percent).
func StepTotalDuration(duration, waitingOnWeather float64) float64 {
	return duration * (1 + waitingOnWeather/PercentScale)
}

// StepImprovedDuration shortens totalDuration by the summed productivity
// improvement (percent) of the step's PRODUCTIVITY initiatives.
func StepImprovedDuration(totalDuration, productivity float64) float64 {
	return totalDuration - float64(productivity*totalDuration)/PercentScale
}

// ProductivityImprovement sums the values of the PRODUCTIVITY initiatives
// in initiatives, in order.
func ProductivityImprovement(initiatives []StepInitiative) float64 {
	total := 0.0
	for _, in := range initiatives {
		if in.Type == InitiativeProductivity {
			total += in.Value
		}
	}
	return total
}

// ImprovedDuration derives the target duration of a step from its planned
// duration, waiting-on-weather percentage and productivity initiatives.
func ImprovedDuration(duration, waitingOnWeather float64, initiatives []StepInitiative) (float64, error) {
	for _, q := range []quantity{{"duration", duration}, {"waiting_on_weather", waitingOnWeather}} {
		if err := q.check(); err != nil {
			return 0, err
		}
	}
	for i, in := range initiatives {
		if err := (quantity{fmt.Sprintf("initiatives[%d].value", i), in.Value}).check(); err != nil {
			return 0, err
		}
	}

	improved := StepImprovedDuration(StepTotalDuration(duration, waitingOnWeather), ProductivityImprovement(initiatives))
	if !(improved > 0) {
		return 0, fmt.Errorf("improved duration %v: %w", improved, ErrNonPositiveDuration)
	}
	return improved, nil
}
