package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/rshade/wellco2/internal/emissions"
	"github.com/rshade/wellco2/internal/engine"
	"github.com/rshade/wellco2/internal/logging"
	"github.com/rshade/wellco2/internal/report"
	"github.com/rshade/wellco2/internal/wellplan"
)

// Routes.
const (
	PathCalculations = "/v1/calculations"
	PathHealth       = "/healthz"
)

// HeaderRequestID carries a caller supplied trace ID. It is echoed back.
const HeaderRequestID = "X-Request-ID"

// Defaults for Config.
const (
	DefaultAddr           = ":8080"
	DefaultMaxBodySize    = 4 << 20
	DefaultReadTimeout    = 10 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	defaultShutdownWindow = 5 * time.Second
)

// Config configures a Server.
type Config struct {
	Addr         string
	MaxBodySize  int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// CalculationResponse is the body of a successful calculation.
type CalculationResponse struct {
	RunID   string         `json:"run_id"`
	Summary report.Summary `json:"summary"`
	Daily   []report.Day   `json:"daily,omitempty"`
}

// Server serves calculations over fasthttp.
type Server struct {
	cfg Config
	// base carries the logger every request context derives from.
	base context.Context
	srv  *fasthttp.Server
}

// New returns a Server. Zero fields of cfg take the package defaults.
// base supplies the logger for request handling.
func New(base context.Context, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = DefaultMaxBodySize
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}

	s := &Server{cfg: cfg, base: base}
	s.srv = &fasthttp.Server{
		Handler:            s.Handle,
		Name:               "wellco2",
		MaxRequestBodySize: cfg.MaxBodySize,
		ReadTimeout:        cfg.ReadTimeout,
		WriteTimeout:       cfg.WriteTimeout,
	}
	return s
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logging.FromContext(s.base)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(ln)
	}()

	log.Info().
		Str("component", "server").
		Str("operation", "listen").
		Str("addr", ln.Addr().String()).
		Msg("server started")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving on %s: %w", ln.Addr(), err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownWindow)
	defer cancel()
	if err := s.srv.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	log.Info().
		Str("component", "server").
		Str("operation", "shutdown").
		Msg("server stopped")
	return nil
}

// Handle routes a request.
func (s *Server) Handle(rc *fasthttp.RequestCtx) {
	path := string(rc.Path())
	switch path {
	case PathHealth:
		if !rc.IsGet() && !rc.IsHead() {
			writeError(rc, fasthttp.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeJSON(rc, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case PathCalculations:
		if !rc.IsPost() {
			writeError(rc, fasthttp.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.handleCalculation(rc)
	default:
		writeError(rc, fasthttp.StatusNotFound, "not found: "+path)
	}
}

func (s *Server) handleCalculation(rc *fasthttp.RequestCtx) {
	traceID := string(rc.Request.Header.Peek(HeaderRequestID))
	if traceID == "" {
		traceID = logging.NewTraceID()
	}
	ctx := logging.ContextWithTraceID(s.base, traceID)
	rc.Response.Header.Set(HeaderRequestID, traceID)

	log := logging.FromContext(ctx)
	started := time.Now()

	plan, err := wellplan.Parse(rc.PostBody())
	if err != nil {
		log.Warn().Ctx(ctx).
			Str("component", "server").
			Str("operation", "parse_plan").
			Err(err).
			Msg("rejected plan document")
		writeError(rc, fasthttp.StatusBadRequest, err.Error())
		return
	}

	result, err := engine.Calculate(ctx, plan)
	if err != nil {
		status := statusFor(err)
		log.Warn().Ctx(ctx).
			Str("component", "server").
			Str("operation", "calculate").
			Int("status", status).
			Err(err).
			Msg("calculation failed")
		writeError(rc, status, err.Error())
		return
	}

	resp := CalculationResponse{RunID: result.RunID, Summary: report.Summarize(result)}
	if rc.QueryArgs().GetBool("daily") {
		resp.Daily = report.Daily(result)
	}
	writeJSON(rc, fasthttp.StatusOK, resp)

	log.Info().Ctx(ctx).
		Str("component", "server").
		Str("operation", "calculate").
		Str("well", result.Well).
		Dur("elapsed", time.Since(started)).
		Msg("calculation served")
}

// statusFor maps a calculation error to an HTTP status. Errors caused by
// the submitted plan are 422; anything else is a server fault.
func statusFor(err error) int {
	for _, target := range []error{
		wellplan.ErrInvalidPlan,
		wellplan.ErrUnknownPhase,
		wellplan.ErrUnknownMode,
		wellplan.ErrUnknownInitiative,
		wellplan.ErrUnknownVesselType,
		wellplan.ErrUnknownHelicopterType,
		wellplan.ErrUnknownMaterialType,
		wellplan.ErrMissingBaselineInput,
		wellplan.ErrMissingInitiativeInput,
		emissions.ErrUnknownSeason,
		emissions.ErrUnknownInitiativeType,
		emissions.ErrNegativeValue,
		emissions.ErrNonPositiveDuration,
		emissions.ErrNonFiniteValue,
		emissions.ErrDurationOutOfRange,
	} {
		if errors.Is(err, target) {
			return fasthttp.StatusUnprocessableEntity
		}
	}
	return fasthttp.StatusInternalServerError
}

func writeJSON(rc *fasthttp.RequestCtx, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		rc.Error(`{"status":500,"message":"encoding response"}`, fasthttp.StatusInternalServerError)
		return
	}
	rc.SetContentType("application/json")
	rc.SetStatusCode(status)
	rc.SetBody(data)
}

func writeError(rc *fasthttp.RequestCtx, status int, message string) {
	writeJSON(rc, status, ErrorResponse{Status: status, Message: message})
}
