package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/wellco2/internal/logging"
	"github.com/rshade/wellco2/internal/wellplan"
)

// NewValidateCmd creates the "validate" command. It loads and resolves each
// plan without calculating, so every catalogue reference is checked.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate PLAN...",
		Short: "Check well plans without calculating",
		Long: `Loads each plan, checks its schema version and structure, and resolves every
step against the phase, mode, vessel, helicopter, material and initiative
catalogues. Exits with status 2 if any plan is invalid.`,
		Example: `  # Check one plan
  wellco2 validate plan.yaml

  # Check a directory of plans
  wellco2 validate plans/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, paths []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	failed := 0
	for _, path := range paths {
		err := validatePlan(cmd, path)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "✗ %s: %v\n", path, err)
			log.Debug().Ctx(ctx).Str("operation", "validate").Str("plan", path).Err(err).Msg("plan invalid")
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", path)
	}

	if failed > 0 {
		return &PlanFailureError{Failed: failed, Total: len(paths)}
	}
	return nil
}

func validatePlan(cmd *cobra.Command, path string) error {
	plan, err := wellplan.Load(path)
	if err != nil {
		return err
	}
	_, err = wellplan.Resolve(cmd.Context(), plan)
	return err
}
