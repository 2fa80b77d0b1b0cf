package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/wellco2/internal/config"
	"github.com/rshade/wellco2/internal/engine"
	"github.com/rshade/wellco2/internal/engine/batch"
	"github.com/rshade/wellco2/internal/logging"
	"github.com/rshade/wellco2/internal/report"
	"github.com/rshade/wellco2/internal/tui"
	"github.com/rshade/wellco2/internal/wellplan"
)

// ErrInteractiveNeedsTerminal is returned by --interactive without a TTY.
var ErrInteractiveNeedsTerminal = errors.New("--interactive requires a terminal on stdout")

// calculateParams holds the flags of the calculate command.
type calculateParams struct {
	output      string
	daily       bool
	interactive bool
	concurrency int
}

// NewCalculateCmd creates the "calculate" command.
//
// Registered flags:
//   - --output: table, json or ndjson (default from configuration)
//   - --daily: include one line per calendar date
//   - --interactive: browse the results in a terminal UI
//   - --concurrency: plans calculated at once (default from configuration)
func NewCalculateCmd() *cobra.Command {
	var params calculateParams

	cmd := &cobra.Command{
		Use:   "calculate PLAN...",
		Short: "Calculate baseline and target emissions of well plans",
		Long: `Calculate the baseline and target CO2 and NOX emissions of one or more
well plan documents (YAML or JSON).

The baseline uses the planned step durations and the target uses the improved
durations with every emission reduction initiative applied. Plans that fail to
load or calculate are reported alongside the others and make the command exit
with status 2.`,
		Example: calculateExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeCalculate(cmd, args, params)
		},
	}

	cmd.Flags().StringVarP(&params.output, "output", "o", "",
		"Output format: table, json, or ndjson (default from configuration)")
	cmd.Flags().BoolVar(&params.daily, "daily", false, "Include the per-day breakdown")
	cmd.Flags().BoolVarP(&params.interactive, "interactive", "i", false, "Browse results in an interactive viewer")
	cmd.Flags().IntVar(&params.concurrency, "concurrency", 0,
		"Number of plans calculated at once (default from configuration)")

	return cmd
}

const calculateExample = `  # Summary table
  wellco2 calculate plan.yaml

  # JSON with the per-day view
  wellco2 calculate plan.yaml --output json --daily

  # One JSON line per plan, four plans at a time
  wellco2 calculate plans/*.yaml --output ndjson --concurrency 4`

// executeCalculate loads every plan, calculates the loadable ones and
// renders all results in argument order.
func executeCalculate(cmd *cobra.Command, paths []string, params calculateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	output := params.output
	if output == "" {
		output = config.GetDefaultOutputFormat()
	}
	format, err := report.ParseFormat(output)
	if err != nil {
		return err
	}

	concurrency := params.concurrency
	if concurrency <= 0 {
		concurrency = config.GetConcurrency()
	}

	if params.interactive && !isTerminal(os.Stdout) {
		return ErrInteractiveNeedsTerminal
	}

	log.Debug().Ctx(ctx).
		Str("operation", "calculate").
		Strs("plans", paths).
		Str("output", string(format)).
		Int("concurrency", concurrency).
		Msg("calculating plans")

	results := calculatePlans(ctx, paths, concurrency)

	if params.interactive {
		if err = tui.Run(ctx, results, config.GetOutputPrecision()); err != nil {
			return err
		}
	} else {
		opts := report.Options{
			Format:    format,
			Precision: config.GetOutputPrecision(),
			Daily:     params.daily,
			Styled:    format == report.FormatTable && isWriterTerminal(cmd.OutOrStdout()),
		}
		if err = report.Render(cmd.OutOrStdout(), results, opts); err != nil {
			return fmt.Errorf("rendering results: %w", err)
		}
	}

	return failureError(results)
}

// calculatePlans loads paths and calculates the plans that loaded. Load
// failures keep their position in the returned slice.
func calculatePlans(ctx context.Context, paths []string, concurrency int) []engine.PlanResult {
	log := logging.FromContext(ctx)

	results := make([]engine.PlanResult, len(paths))
	var plans []engine.NamedPlan
	var positions []int
	for i, path := range paths {
		plan, err := wellplan.Load(path)
		if err != nil {
			results[i] = engine.PlanResult{Source: path, Err: err}
			continue
		}
		plans = append(plans, engine.NamedPlan{Source: path, Plan: plan})
		positions = append(positions, i)
	}

	calculated, err := engine.CalculateAll(ctx, plans, concurrency, func(s batch.Snapshot) {
		log.Debug().Ctx(ctx).
			Str("operation", "calculate").
			Int("done", s.ProcessedItems).
			Int("total", s.TotalItems).
			Msg("plan calculated")
	})
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("some plans failed")
	}
	for i, r := range calculated {
		results[positions[i]] = r
	}
	return results
}

func failureError(results []engine.PlanResult) error {
	failed := 0
	for _, r := range results {
		if r.Err != nil || r.Result == nil {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return &PlanFailureError{Failed: failed, Total: len(results)}
}

// isWriterTerminal reports whether w is a terminal. Non-file writers such
// as buffers in tests are never terminals.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminal(f)
	}
	return false
}
