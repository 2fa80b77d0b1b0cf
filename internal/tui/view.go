package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/wellco2/internal/report"
)

// borderPadding accounts for the box border on both sides.
const borderPadding = 2

// View implements tea.Model.
func (m Model) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}
	if len(m.tabs) == 0 {
		return SubtleStyle.Render("No plans to show.") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	tab := m.tabs[m.active]
	switch {
	case tab.err != nil:
		b.WriteString(ErrorStyle.Render("Error: " + tab.err.Error()))
		b.WriteString("\n")
	case m.state == ViewStateDetail:
		b.WriteString(m.renderDetail())
	default:
		b.WriteString(m.renderSummary(tab.summary))
		b.WriteString("\n")
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString(SubtleStyle.Render(m.helpText()))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		label := t.source
		if t.summary != nil {
			label = t.summary.Well
		}
		if i == m.active {
			tabs[i] = ActiveTabStyle.Render(label)
		} else {
			tabs[i] = TabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderSummary(s *report.Summary) string {
	if s == nil {
		return ""
	}
	p := m.precision
	lines := []string{
		TitleStyle.Render(fmt.Sprintf("%s  start %s  run %s", s.Well, s.StartDate, s.RunID)),
		fmt.Sprintf("Baseline  %s days  CO2 %s t  NOX %s t",
			report.FormatFloat(s.Baseline.Duration, p),
			report.FormatFloat(s.Baseline.CO2.Total(), p),
			report.FormatFloat(s.Baseline.NOX.Total(), p)),
		fmt.Sprintf("Target    %s days  CO2 %s t  NOX %s t",
			report.FormatFloat(s.Target.Duration, p),
			report.FormatFloat(s.Target.CO2.Total(), p),
			report.FormatFloat(s.Target.NOX.Total(), p)),
		GoodStyle.Render(fmt.Sprintf("Reduced   CO2 %s t  NOX %s t",
			report.FormatFloat(s.CO2Reduction(), p),
			report.FormatFloat(s.NOXReduction(), p))),
	}
	if eq := s.CO2ReductionEquivalents; eq != nil {
		lines = append(lines, SubtleStyle.Render(eq.Text))
	}
	return BoxStyle.Width(m.width - borderPadding).Render(strings.Join(lines, "\n"))
}

func (m Model) renderDetail() string {
	day, ok := m.SelectedDay()
	if !ok {
		return ""
	}

	var content strings.Builder
	content.WriteString(TitleStyle.Render(day.Date))
	content.WriteString("\n")
	if len(day.Reductions) == 0 {
		content.WriteString(SubtleStyle.Render("No initiative reductions on this day."))
	}
	for _, r := range day.Reductions {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("initiative %d", r.EmissionReductionInitiativeID)
		}
		fmt.Fprintf(&content, "#%d %s: %s t CO2\n",
			r.EmissionReductionInitiativeID, name, report.FormatFloat(r.Value, m.precision))
	}
	return BoxStyle.Width(m.width-borderPadding).Render(strings.TrimRight(content.String(), "\n")) + "\n"
}

func (m Model) helpText() string {
	if m.state == ViewStateDetail {
		return "esc: back • q: quit"
	}
	return "↑/↓: move • enter: reductions • tab: next plan • q: quit"
}
