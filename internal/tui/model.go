package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/wellco2/internal/engine"
	"github.com/rshade/wellco2/internal/logging"
	"github.com/rshade/wellco2/internal/report"
)

// ViewState is the screen the model is showing.
type ViewState int

const (
	// ViewStateList shows the day table of the active plan.
	ViewStateList ViewState = iota
	// ViewStateDetail shows the reductions of the selected day.
	ViewStateDetail
	// ViewStateQuitting is set once the user quits.
	ViewStateQuitting
)

// Key names handled by the model.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
)

// Layout defaults used before the first WindowSizeMsg.
const (
	defaultWidth  = 100
	defaultHeight = 24
	// chromeHeight is the lines taken by tabs, summary and help.
	chromeHeight = 9
	minTableRows = 3
)

// planTab is one calculated plan.
type planTab struct {
	source  string
	summary *report.Summary
	days    []report.Day
	err     error
}

// Model is the Bubble Tea model of the viewer.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type Model struct {
	ctx       context.Context
	tabs      []planTab
	active    int
	state     ViewState
	table     table.Model
	precision int
	width     int
	height    int
}

// NewModel builds a viewer over results.
func NewModel(ctx context.Context, results []engine.PlanResult, precision int) Model {
	m := Model{
		ctx:       ctx,
		precision: precision,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	for _, pr := range results {
		tab := planTab{source: pr.Source, err: pr.Err}
		if pr.Err == nil && pr.Result != nil {
			summary := report.Summarize(pr.Result)
			tab.summary = &summary
			tab.days = report.Daily(pr.Result)
		}
		m.tabs = append(m.tabs, tab)
	}
	m.table = m.buildTable()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.buildTable()
		m.table.SetCursor(cursor)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	switch m.state {
	case ViewStateList:
		return m.handleListKey(msg)
	case ViewStateDetail:
		if msg.String() == keyEsc || msg.String() == keyEnter {
			m.state = ViewStateList
		}
		return m, nil
	case ViewStateQuitting:
		return m, nil
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyTab:
		m.switchTab(1)
		return m, nil
	case keyShiftTab:
		m.switchTab(-1)
		return m, nil
	case keyEnter:
		if _, ok := m.SelectedDay(); ok {
			m.state = ViewStateDetail
			m.logSelection()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) switchTab(delta int) {
	if len(m.tabs) == 0 {
		return
	}
	m.active = (m.active + delta + len(m.tabs)) % len(m.tabs)
	m.table = m.buildTable()
}

// SelectedDay returns the day under the cursor of the active plan.
func (m Model) SelectedDay() (report.Day, bool) {
	if len(m.tabs) == 0 {
		return report.Day{}, false
	}
	days := m.tabs[m.active].days
	i := m.table.Cursor()
	if i < 0 || i >= len(days) {
		return report.Day{}, false
	}
	return days[i], true
}

// State returns the current screen.
func (m Model) State() ViewState {
	return m.state
}

func (m Model) buildTable() table.Model {
	p := m.precision
	num := func(f float64) string { return report.FormatFloat(f, p) }

	columns := []table.Column{
		{Title: "Date", Width: 12},         //nolint:mnd // Column width.
		{Title: "Baseline CO2", Width: 14}, //nolint:mnd // Column width.
		{Title: "Target CO2", Width: 14},   //nolint:mnd // Column width.
		{Title: "Baseline NOX", Width: 14}, //nolint:mnd // Column width.
		{Title: "Target NOX", Width: 14},   //nolint:mnd // Column width.
		{Title: "Initiatives", Width: 12},  //nolint:mnd // Column width.
	}

	var rows []table.Row
	if len(m.tabs) > 0 {
		days := m.tabs[m.active].days
		rows = make([]table.Row, len(days))
		for i, d := range days {
			rows[i] = table.Row{
				d.Date,
				num(d.BaselineCO2),
				num(d.TargetCO2),
				num(d.BaselineNOX),
				num(d.TargetNOX),
				fmt.Sprintf("%d", len(d.Reductions)),
			}
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-chromeHeight, minTableRows)),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

func (m Model) logSelection() {
	day, _ := m.SelectedDay()
	log := logging.FromContext(m.ctx)
	log.Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Str("operation", "select_day").
		Str("source", m.tabs[m.active].source).
		Str("date", day.Date).
		Msg("day selected")
}

// Run starts the viewer in the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, results []engine.PlanResult, precision int) error {
	p := tea.NewProgram(NewModel(ctx, results, precision), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive viewer: %w", err)
	}
	return nil
}
