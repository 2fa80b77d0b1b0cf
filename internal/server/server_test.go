package server

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/rshade/wellco2/internal/emissions"
	"github.com/rshade/wellco2/internal/wellplan"
)

func phase2Document(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("../wellplan/testdata/phase2.yaml")
	require.NoError(t, err)
	return data
}

func do(t *testing.T, s *Server, method, uri string, body []byte) *fasthttp.Response {
	t.Helper()
	var rc fasthttp.RequestCtx
	rc.Request.Header.SetMethod(method)
	rc.Request.SetRequestURI(uri)
	rc.Request.SetBody(body)
	s.Handle(&rc)

	resp := &fasthttp.Response{}
	rc.Response.CopyTo(resp)
	return resp
}

func decodeError(t *testing.T, resp *fasthttp.Response) ErrorResponse {
	t.Helper()
	var e ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &e))
	return e
}

func TestNewDefaults(t *testing.T) {
	s := New(context.Background(), Config{})
	assert.Equal(t, DefaultAddr, s.Addr())
	assert.Equal(t, DefaultMaxBodySize, s.cfg.MaxBodySize)
	assert.Equal(t, DefaultReadTimeout, s.cfg.ReadTimeout)
}

func TestHealth(t *testing.T) {
	s := New(context.Background(), Config{})

	resp := do(t, s, fasthttp.MethodGet, PathHealth, nil)
	assert.Equal(t, fasthttp.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body()))

	resp = do(t, s, fasthttp.MethodPost, PathHealth, nil)
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, resp.StatusCode())
}

func TestCalculation(t *testing.T) {
	s := New(context.Background(), Config{})

	var rc fasthttp.RequestCtx
	rc.Request.Header.SetMethod(fasthttp.MethodPost)
	rc.Request.SetRequestURI(PathCalculations + "?daily=true")
	rc.Request.Header.Set(HeaderRequestID, "01HSERVER")
	rc.Request.SetBody(phase2Document(t))
	s.Handle(&rc)

	require.Equal(t, fasthttp.StatusOK, rc.Response.StatusCode(), string(rc.Response.Body()))
	assert.Equal(t, "application/json", string(rc.Response.Header.ContentType()))
	assert.Equal(t, "01HSERVER", string(rc.Response.Header.Peek(HeaderRequestID)))

	var got CalculationResponse
	require.NoError(t, json.Unmarshal(rc.Response.Body(), &got))
	assert.Equal(t, "01HSERVER", got.RunID)
	assert.Equal(t, "Troll B-12", got.Summary.Well)
	assert.Equal(t, 20.58, got.Summary.Baseline.Duration)
	assert.Len(t, got.Daily, 21)
}

func TestCalculationWithoutDaily(t *testing.T) {
	s := New(context.Background(), Config{})

	resp := do(t, s, fasthttp.MethodPost, PathCalculations, phase2Document(t))
	require.Equal(t, fasthttp.StatusOK, resp.StatusCode())
	assert.NotEmpty(t, resp.Header.Peek(HeaderRequestID), "a trace ID is generated")

	var got CalculationResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &got))
	assert.Empty(t, got.Daily)
	assert.Equal(t, string(resp.Header.Peek(HeaderRequestID)), got.RunID)
}

func TestCalculationErrors(t *testing.T) {
	s := New(context.Background(), Config{})

	tests := []struct {
		name       string
		method     string
		path       string
		body       []byte
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "wrong method",
			method:     fasthttp.MethodGet,
			path:       PathCalculations,
			wantStatus: fasthttp.StatusMethodNotAllowed,
			wantMsg:    "method not allowed",
		},
		{
			name:       "empty body",
			method:     fasthttp.MethodPost,
			path:       PathCalculations,
			wantStatus: fasthttp.StatusBadRequest,
			wantMsg:    "empty document",
		},
		{
			name:       "malformed json",
			method:     fasthttp.MethodPost,
			path:       PathCalculations,
			body:       []byte(`{"schema_version": `),
			wantStatus: fasthttp.StatusBadRequest,
			wantMsg:    "invalid well plan",
		},
		{
			name:       "unknown json field",
			method:     fasthttp.MethodPost,
			path:       PathCalculations,
			body:       []byte(`{"schema_version": "1.0.0", "stepz": []}`),
			wantStatus: fasthttp.StatusBadRequest,
			wantMsg:    "invalid well plan",
		},
		{
			name:       "unknown route",
			method:     fasthttp.MethodGet,
			path:       "/v2/everything",
			wantStatus: fasthttp.StatusNotFound,
			wantMsg:    "/v2/everything",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, s, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode())

			e := decodeError(t, resp)
			assert.Equal(t, tt.wantStatus, e.Status)
			assert.Contains(t, e.Message, tt.wantMsg)
		})
	}
}

func TestCalculationUnresolvablePlan(t *testing.T) {
	s := New(context.Background(), Config{})
	doc := bytes.Replace(phase2Document(t), []byte("    phase: rig_move"), []byte("    phase: nowhere"), 1)

	resp := do(t, s, fasthttp.MethodPost, PathCalculations, doc)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, resp.StatusCode())
	assert.Contains(t, decodeError(t, resp).Message, "unknown phase")
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("resolving plan: %w", wellplan.ErrUnknownPhase), fasthttp.StatusUnprocessableEntity},
		{fmt.Errorf("step 2: %w", emissions.ErrNonPositiveDuration), fasthttp.StatusUnprocessableEntity},
		{fmt.Errorf("step 2: %w", emissions.ErrNonFiniteValue), fasthttp.StatusUnprocessableEntity},
		{fmt.Errorf("step 3: %w", emissions.ErrDurationOutOfRange), fasthttp.StatusUnprocessableEntity},
		{context.DeadlineExceeded, fasthttp.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestServe(t *testing.T) {
	ln := fasthttputil.NewInmemoryListener()
	ctx, cancel := context.WithCancel(context.Background())

	s := New(context.Background(), Config{})
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	client := &fasthttp.Client{
		Dial: func(string) (net.Conn, error) { return ln.Dial() },
	}
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI("http://wellco2" + PathHealth)
	require.NoError(t, client.DoTimeout(req, resp, 5*time.Second))
	assert.Equal(t, fasthttp.StatusOK, resp.StatusCode())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestCalculationRejectsUnusableNumbers(t *testing.T) {
	s := New(context.Background(), Config{})

	tests := []struct {
		name       string
		old, new   string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "nan baseline fuel",
			old:        "value: 128.75}",
			new:        "value: .nan}",
			wantStatus: fasthttp.StatusUnprocessableEntity,
			wantMsg:    emissions.ErrNonFiniteValue.Error(),
		},
		{
			name:       "infinite well fuel density",
			old:        "  fuel_density: 835",
			new:        "  fuel_density: .inf",
			wantStatus: fasthttp.StatusUnprocessableEntity,
			wantMsg:    emissions.ErrNonFiniteValue.Error(),
		},
		{
			name:       "step longer than a century",
			old:        "duration: 3.36",
			new:        "duration: 1e8",
			wantStatus: fasthttp.StatusBadRequest,
			wantMsg:    emissions.ErrDurationOutOfRange.Error(),
		},
		{
			name:       "infinite step duration",
			old:        "duration: 3.36",
			new:        "duration: .inf",
			wantStatus: fasthttp.StatusBadRequest,
			wantMsg:    emissions.ErrNonFiniteValue.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := bytes.Replace(phase2Document(t), []byte(tt.old), []byte(tt.new), 1)
			require.NotEqual(t, phase2Document(t), doc)

			resp := do(t, s, fasthttp.MethodPost, PathCalculations, doc)
			assert.Equal(t, tt.wantStatus, resp.StatusCode(), string(resp.Body()))
			assert.Contains(t, decodeError(t, resp).Message, tt.wantMsg)
		})
	}
}
