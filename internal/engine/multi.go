package engine

import (
	"context"
	"fmt"

	"github.com/rshade/wellco2/internal/engine/batch"
	"github.com/rshade/wellco2/internal/logging"
	"github.com/rshade/wellco2/internal/wellplan"
)

// NamedPlan is a plan together with where it came from.
type NamedPlan struct {
	Source string
	Plan   *wellplan.Plan
}

// PlanResult is the outcome for one NamedPlan. Result is nil when the plan
// failed or was never started because ctx was cancelled.
type PlanResult struct {
	Source string
	Result *Result
	Err    error
}

// CalculateAll calculates plans with at most concurrency plans in flight.
// Results keep the input order. The returned error joins every failure;
// successful plans still have their Result set.
func CalculateAll(
	ctx context.Context,
	plans []NamedPlan,
	concurrency int,
	onProgress batch.ProgressCallback,
) ([]PlanResult, error) {
	if len(plans) == 0 {
		return nil, nil
	}

	results := make([]PlanResult, len(plans))
	for i, np := range plans {
		results[i].Source = np.Source
	}
	processor, err := batch.NewProcessor[NamedPlan](batch.DefaultBatchSize)
	if err != nil {
		return nil, err
	}
	processor.WithProgressCallback(onProgress)

	err = processor.ProcessConcurrent(ctx, plans, func(ctx context.Context, b []NamedPlan, offset int) error {
		for i, np := range b {
			res, calcErr := Calculate(ctx, np.Plan)
			results[offset+i] = PlanResult{Source: np.Source, Result: res, Err: calcErr}
			if calcErr != nil {
				return fmt.Errorf("%s: %w", np.Source, calcErr)
			}
		}
		return nil
	}, concurrency)

	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "calculate_all").
		Int("plans", len(plans)).
		Int("concurrency", concurrency).
		Bool("failed", err != nil).
		Msg("batch calculation finished")

	return results, err
}
