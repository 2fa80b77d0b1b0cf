package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/wellco2/internal/server"
)

// NewServeCmd creates the "serve" command, which exposes calculations over
// HTTP until interrupted.
func NewServeCmd() *cobra.Command {
	var cfg server.Config

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve emission calculations over HTTP",
		Long: `Starts an HTTP server that calculates plans posted to /v1/calculations.

The request body is a plan document (YAML or JSON). Add ?daily=true for the
per-day view. GET /healthz reports liveness. The server shuts down gracefully
on SIGINT or SIGTERM.`,
		Example: `  # Listen on the default address
  wellco2 serve

  # Listen on localhost only, accepting plans up to 1 MiB
  wellco2 serve --addr 127.0.0.1:9090 --max-body-size 1048576`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(ctx, cfg).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", server.DefaultAddr, "address to listen on")
	cmd.Flags().IntVar(&cfg.MaxBodySize, "max-body-size", server.DefaultMaxBodySize, "largest accepted plan in bytes")
	cmd.Flags().DurationVar(&cfg.ReadTimeout, "read-timeout", server.DefaultReadTimeout, "maximum time to read a request")
	cmd.Flags().DurationVar(&cfg.WriteTimeout, "write-timeout", server.DefaultWriteTimeout, "maximum time to write a response")

	return cmd
}
