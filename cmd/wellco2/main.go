package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/wellco2/internal/cli"
	"github.com/rshade/wellco2/pkg/version"
)

func main() {
	os.Exit(extractExitCode(run()))
}

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// extractExitCode maps err to the process exit code: 0 on success, the
// PlanFailureError code when some plans failed, 1 otherwise.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var planErr *cli.PlanFailureError
	if errors.As(err, &planErr) {
		return planErr.ExitCode()
	}
	return 1
}
