package cli

import "fmt"

// PlanFailureError reports that some plans could not be processed. Results
// for the others have already been written.
type PlanFailureError struct {
	Failed int
	Total  int
}

func (e *PlanFailureError) Error() string {
	return fmt.Sprintf("%d of %d plan(s) failed", e.Failed, e.Total)
}

// ExitCode is the process exit code main uses for this error.
func (e *PlanFailureError) ExitCode() int {
	return exitCodePlanFailure
}

// exitCodePlanFailure distinguishes bad plans from usage or runtime errors.
const exitCodePlanFailure = 2
