package emissions

// InitiativeReduction is the emission cut attributed to one initiative.
// Before EmissionReductionInitiativeReductions runs, Value holds the
// percentage; afterwards it holds the reduced mass.
type InitiativeReduction struct {
	EmissionReductionInitiativeID int     `json:"emission_reduction_initiative_id"`
	Value                         float64 `json:"value"`
}

// EmissionReductionInitiativeReductions converts percentages into reductions
// of baseline. Input order is preserved and the input is not modified.
func EmissionReductionInitiativeReductions(baseline float64, initiatives []InitiativeReduction) []InitiativeReduction {
	reductions := make([]InitiativeReduction, 0, len(initiatives))
	for _, initiative := range initiatives {
		reductions = append(reductions, InitiativeReduction{
			EmissionReductionInitiativeID: initiative.EmissionReductionInitiativeID,
			Value:                         baseline * initiative.Value / PercentScale,
		})
	}
	return reductions
}

// StepEmissionReductionInitiativeReductions returns the reductions of the
// initiatives attached to step. Productivity initiatives are skipped.
func StepEmissionReductionInitiativeReductions(baseline float64, step StepInput) []InitiativeReduction {
	percentages := make([]InitiativeReduction, 0, len(step.Initiatives))
	for _, initiative := range step.Initiatives {
		if initiative.Type == InitiativeProductivity {
			continue
		}
		percentages = append(percentages, InitiativeReduction{
			EmissionReductionInitiativeID: initiative.ID,
			Value:                         initiative.Value,
		})
	}
	return EmissionReductionInitiativeReductions(baseline, percentages)
}

// TotalEmissionReductionInitiativeReduction sums the reduction values.
func TotalEmissionReductionInitiativeReduction(initiatives []InitiativeReduction) float64 {
	total := 0.0
	for _, initiative := range initiatives {
		total += initiative.Value
	}
	return total
}

func multiplyInitiatives(initiatives []InitiativeReduction, multiplier float64) []InitiativeReduction {
	scaled := make([]InitiativeReduction, len(initiatives))
	for i, initiative := range initiatives {
		scaled[i] = InitiativeReduction{
			EmissionReductionInitiativeID: initiative.EmissionReductionInitiativeID,
			Value:                         initiative.Value * multiplier,
		}
	}
	return scaled
}
