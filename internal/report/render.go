package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"

	"github.com/rshade/wellco2/internal/engine"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// boxWidth is the minimum width of the styled plan box.
const boxWidth = 72

// Options control Render.
type Options struct {
	Format    Format
	Precision int
	// Daily adds one line per calendar date.
	Daily bool
	// Styled draws tables with colours and borders for a terminal.
	Styled bool
}

// PlanReport is the JSON shape of one plan.
type PlanReport struct {
	Source  string   `json:"source"`
	Summary *Summary `json:"summary,omitempty"`
	Daily   []Day    `json:"daily,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// DayLine is one NDJSON line of the daily view.
type DayLine struct {
	Source string `json:"source"`
	RunID  string `json:"run_id"`
	Well   string `json:"well"`
	Day
}

// Render writes results to w in opts.Format.
func Render(w io.Writer, results []engine.PlanResult, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return RenderJSON(w, results, opts.Daily)
	case FormatNDJSON:
		return RenderNDJSON(w, results, opts.Daily)
	case FormatTable, "":
		return RenderTable(w, results, opts)
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

// NewPlanReport builds the JSON shape of a PlanResult.
func NewPlanReport(pr engine.PlanResult, daily bool) PlanReport {
	report := PlanReport{Source: pr.Source}
	if pr.Err != nil {
		report.Error = pr.Err.Error()
		return report
	}
	if pr.Result == nil {
		return report
	}
	summary := Summarize(pr.Result)
	report.Summary = &summary
	if daily {
		report.Daily = Daily(pr.Result)
	}
	return report
}

// RenderJSON writes one indented JSON array with a PlanReport per result.
func RenderJSON(w io.Writer, results []engine.PlanResult, daily bool) error {
	reports := make([]PlanReport, 0, len(results))
	for _, pr := range results {
		reports = append(reports, NewPlanReport(pr, daily))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reports); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderNDJSON writes one PlanReport per line, or one DayLine per date and
// plan when daily is set. Failed plans are written as a PlanReport with
// Error in both modes.
func RenderNDJSON(w io.Writer, results []engine.PlanResult, daily bool) error {
	encoder := json.NewEncoder(w)
	for _, pr := range results {
		if !daily || pr.Err != nil || pr.Result == nil {
			if err := encoder.Encode(NewPlanReport(pr, false)); err != nil {
				return fmt.Errorf("writing NDJSON line: %w", err)
			}
			continue
		}
		for _, day := range Daily(pr.Result) {
			line := DayLine{Source: pr.Source, RunID: pr.Result.RunID, Well: pr.Result.Well, Day: day}
			if err := encoder.Encode(line); err != nil {
				return fmt.Errorf("writing NDJSON line: %w", err)
			}
		}
	}
	return nil
}

// RenderTable writes a plan section per result.
func RenderTable(w io.Writer, results []engine.PlanResult, opts Options) error {
	for i, pr := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		var body strings.Builder
		if err := writePlanTable(&body, pr, opts); err != nil {
			return err
		}

		out := body.String()
		if opts.Styled {
			out = styleBox(planTitle(pr), out)
		}
		if _, err := io.WriteString(w, out); err != nil {
			return fmt.Errorf("writing table: %w", err)
		}
	}
	return nil
}

func planTitle(pr engine.PlanResult) string {
	if pr.Result == nil {
		return pr.Source
	}
	return fmt.Sprintf("%s (%s)", pr.Result.Well, pr.Source)
}

func writePlanTable(w io.Writer, pr engine.PlanResult, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	p := opts.Precision
	num := func(f float64) string { return FormatFloat(f, p) }

	if pr.Err != nil {
		fmt.Fprintf(tw, "PLAN\t%s\t\n", pr.Source)
		fmt.Fprintf(tw, "ERROR\t%v\t\n", pr.Err)
		return tw.Flush()
	}
	if pr.Result == nil {
		fmt.Fprintf(tw, "PLAN\t%s\t\n", pr.Source)
		fmt.Fprintf(tw, "ERROR\tnot calculated\t\n")
		return tw.Flush()
	}

	s := Summarize(pr.Result)
	if !opts.Styled {
		fmt.Fprintf(tw, "WELL\t%s\t\n", planTitle(pr))
	}
	fmt.Fprintf(tw, "RUN\t%s\t\n", s.RunID)
	fmt.Fprintf(tw, "START\t%s\t\n", s.StartDate)
	fmt.Fprintln(tw, "\t\t")

	fmt.Fprintln(tw, "\tDAYS\tCO2 (t)\tNOX (t)\t")
	fmt.Fprintf(tw, "BASELINE\t%s\t%s\t%s\t\n",
		num(s.Baseline.Duration), num(s.Baseline.CO2.Total()), num(s.Baseline.NOX.Total()))
	fmt.Fprintf(tw, "TARGET\t%s\t%s\t%s\t\n",
		num(s.Target.Duration), num(s.Target.CO2.Total()), num(s.Target.NOX.Total()))
	fmt.Fprintf(tw, "REDUCTION\t%s\t%s\t%s\t\n",
		num(s.Baseline.Duration-s.Target.Duration), num(s.CO2Reduction()), num(s.NOXReduction()))
	if eq := s.CO2ReductionEquivalents; eq != nil {
		fmt.Fprintf(tw, "\t%s\n", eq.Text)
	}
	fmt.Fprintln(tw, "\t\t\t\t")

	fmt.Fprintln(tw, "COMPONENT\tBASELINE CO2\tTARGET CO2\tBASELINE NOX\tTARGET NOX\t")
	for _, c := range components(s) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", c.name,
			num(c.baselineCO2), num(c.targetCO2), optional(c.hasNOX, num(c.baselineNOX)), optional(c.hasNOX, num(c.targetNOX)))
	}

	if len(s.Initiatives) > 0 {
		fmt.Fprintln(tw, "\t\t\t\t\t")
		fmt.Fprintln(tw, "INITIATIVE\tCO2 REDUCED\tNOX REDUCED\t")
		for _, in := range s.Initiatives {
			fmt.Fprintf(tw, "%s\t%s\t%s\t\n", initiativeLabel(in.ID, in.Name), num(in.CO2), num(in.NOX))
		}
	}

	if opts.Daily {
		fmt.Fprintln(tw, "\t\t\t\t\t")
		fmt.Fprintln(tw, "DATE\tBASELINE CO2\tTARGET CO2\tBASELINE NOX\tTARGET NOX\tCO2 REDUCED\t")
		for _, d := range Daily(pr.Result) {
			reduced := 0.0
			for _, r := range d.Reductions {
				reduced += r.Value
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n", d.Date,
				num(d.BaselineCO2), num(d.TargetCO2), num(d.BaselineNOX), num(d.TargetNOX), num(reduced))
		}
	}

	return tw.Flush()
}

type component struct {
	name                   string
	baselineCO2, targetCO2 float64
	baselineNOX, targetNOX float64
	hasNOX                 bool
}

func components(s Summary) []component {
	b, t := s.Baseline, s.Target
	return []component{
		{"Asset", b.CO2.Asset, t.CO2.Asset, b.NOX.Asset, t.NOX.Asset, true},
		{"Boilers", b.CO2.Boilers, t.CO2.Boilers, b.NOX.Boilers, t.NOX.Boilers, true},
		{"Vessels", b.CO2.Vessels, t.CO2.Vessels, b.NOX.Vessels, t.NOX.Vessels, true},
		{"Helicopters", b.CO2.Helicopters, t.CO2.Helicopters, b.NOX.Helicopters, t.NOX.Helicopters, true},
		{"Materials", b.CO2.Materials, t.CO2.Materials, 0, 0, false},
		{
			"External energy supply",
			b.CO2.ExternalEnergySupply, t.CO2.ExternalEnergySupply,
			b.NOX.ExternalEnergySupply, t.NOX.ExternalEnergySupply, true,
		},
		{"TOTAL", b.CO2.Total(), t.CO2.Total(), b.NOX.Total(), t.NOX.Total(), true},
	}
}

func optional(ok bool, s string) string {
	if !ok {
		return "-"
	}
	return s
}

func initiativeLabel(id int, name string) string {
	if name == "" {
		return fmt.Sprintf("#%d", id)
	}
	return fmt.Sprintf("#%d %s", id, name)
}

// boxBorderColor returns the Lip Gloss color used for plan box borders.
func boxBorderColor() lipgloss.Color { return lipgloss.Color("240") }

// boxTitleColor returns the Lip Gloss color used for plan box titles.
func boxTitleColor() lipgloss.Color { return lipgloss.Color("39") }

// styleBox frames body in a rounded border under a bold title.
func styleBox(title, body string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(boxTitleColor())

	borderStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(boxBorderColor()).
		Padding(0, 1)
	if lipgloss.Width(body) < boxWidth {
		borderStyle = borderStyle.Width(boxWidth)
	}

	content := titleStyle.Render(title) + "\n" + strings.TrimRight(body, "\n")
	return borderStyle.Render(content) + "\n"
}
