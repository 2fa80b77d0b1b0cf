package report_test

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/wellco2/internal/engine"
	"github.com/rshade/wellco2/internal/logging"
	"github.com/rshade/wellco2/internal/report"
	"github.com/rshade/wellco2/internal/wellplan"
)

func phase2Result(t *testing.T) *engine.Result {
	t.Helper()
	plan, err := wellplan.Load("../wellplan/testdata/phase2.yaml")
	require.NoError(t, err)

	ctx := logging.ContextWithTraceID(context.Background(), "01HREPORT")
	result, err := engine.Calculate(ctx, plan)
	require.NoError(t, err)
	return result
}

func planResults(t *testing.T) []engine.PlanResult {
	t.Helper()
	return []engine.PlanResult{
		{Source: "phase2.yaml", Result: phase2Result(t)},
		{Source: "broken.yaml", Err: errors.New("resolving plan: unknown phase")},
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		want      string
	}{
		{"thousands", 1234.567, 2, "1,234.57"},
		{"zero", 0, 2, "0.00"},
		{"negative", -1234.5, 1, "-1,234.5"},
		{"negative rounds to zero", -0.001, 2, "0.00"},
		{"no decimals", 1e6, 0, "1,000,000"},
		{"carry", 999.999, 2, "1,000.00"},
		{"small", 0.0480020625, 4, "0.0480"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.FormatFloat(tt.value, tt.precision))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.5%", report.FormatPercent(0.125))
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", " ndjson "} {
		_, err := report.ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := report.ParseFormat("xml")
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s := report.Summarize(phase2Result(t))

	assert.Equal(t, "01HREPORT", s.RunID)
	assert.Equal(t, "Troll B-12", s.Well)
	assert.Equal(t, "2024-03-01", s.StartDate)
	assert.Equal(t, 20.58, s.Baseline.Duration)
	assert.Equal(t, 18.5766, s.Target.Duration)
	assert.InDelta(t, 545.0, s.Baseline.CO2.Materials, 1e-9)
	assert.InDelta(t, 545.0, s.Target.CO2.Materials, 1e-9)
	assert.Positive(t, s.CO2Reduction())
	assert.Positive(t, s.NOXReduction())
	require.NotNil(t, s.CO2ReductionEquivalents)
	assert.InDelta(t, s.CO2Reduction()*1000, s.CO2ReductionEquivalents.InputKg, 1e-6)
	assert.Len(t, s.CO2ReductionEquivalents.Results, 3)

	require.Len(t, s.Initiatives, 2)
	assert.Equal(t, 1, s.Initiatives[0].ID)
	assert.Equal(t, "Closed bus-tie", s.Initiatives[0].Name)
	assert.Equal(t, 2, s.Initiatives[1].ID)
	assert.Equal(t, "Pump optimisation", s.Initiatives[1].Name)
	assert.Positive(t, s.Initiatives[1].NOX)
}

func TestDaily(t *testing.T) {
	days := report.Daily(phase2Result(t))
	require.Len(t, days, 21)

	assert.Equal(t, "2024-03-01", days[0].Date)
	assert.Equal(t, "2024-03-21", days[20].Date)
	assert.Positive(t, days[0].BaselineCO2)
	assert.Positive(t, days[0].TargetCO2)

	// The improved schedule ends on day 18.
	for _, d := range days[19:] {
		assert.Zero(t, d.TargetCO2, d.Date)
		assert.NotNil(t, d.Reductions)
		assert.Empty(t, d.Reductions)
		assert.Positive(t, d.BaselineCO2)
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, planResults(t), report.Options{Format: report.FormatJSON, Daily: true}))

	var got []report.PlanReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "phase2.yaml", got[0].Source)
	require.NotNil(t, got[0].Summary)
	assert.Equal(t, "Troll B-12", got[0].Summary.Well)
	assert.Len(t, got[0].Daily, 21)
	assert.Empty(t, got[0].Error)

	assert.Equal(t, "broken.yaml", got[1].Source)
	assert.Nil(t, got[1].Summary)
	assert.Contains(t, got[1].Error, "unknown phase")
}

func TestRenderNDJSON(t *testing.T) {
	tests := []struct {
		name  string
		daily bool
		lines int
	}{
		{name: "summary per plan", daily: false, lines: 2},
		{name: "line per date", daily: true, lines: 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, report.Render(&buf, planResults(t),
				report.Options{Format: report.FormatNDJSON, Daily: tt.daily}))

			var count int
			scanner := bufio.NewScanner(&buf)
			for scanner.Scan() {
				var line map[string]any
				require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
				assert.Contains(t, line, "source")
				count++
			}
			assert.Equal(t, tt.lines, count)
		})
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	err := report.Render(&buf, planResults(t), report.Options{Format: report.FormatTable, Precision: 2, Daily: true})
	require.NoError(t, err)

	out := buf.String()
	for _, want := range []string{
		"Troll B-12 (phase2.yaml)",
		"01HREPORT",
		"BASELINE",
		"External energy supply",
		"#1 Closed bus-tie",
		"2024-03-21",
		"545.00",
		"Equivalent to ~",
		"broken.yaml",
		"unknown phase",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "╭")
}

func TestRenderTableStyled(t *testing.T) {
	var buf bytes.Buffer
	results := planResults(t)[:1]
	require.NoError(t, report.RenderTable(&buf, results, report.Options{Precision: 1, Styled: true}))

	out := buf.String()
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "Troll B-12 (phase2.yaml)")
	assert.False(t, strings.Contains(out, "2024-03-21"), "daily lines only with Daily")
}

func TestRenderUnknownFormat(t *testing.T) {
	err := report.Render(&bytes.Buffer{}, nil, report.Options{Format: "xml"})
	assert.Error(t, err)
}
