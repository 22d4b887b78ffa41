// internal/tui/progress.go
// Package tui renders a live progress display while suites run.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/stadion/internal/util"
)

// TrialMsg reports a completed trial for the variant currently running.
type TrialMsg struct {
	Suite   string
	Variant string
	Trial   int
	Total   int
}

// SuiteMsg announces the suite that is about to run.
type SuiteMsg struct {
	Suite string
}

// DoneMsg ends the display.
type DoneMsg struct{}

var (
	suiteStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	variantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the bubbletea model backing the progress display.
type Model struct {
	bar     progress.Model
	suite   string
	variant string
	trial   int
	total   int
	width   int
	done    bool
}

// NewModel returns a progress display model.
func NewModel() *Model {
	return &Model{bar: progress.New(progress.WithDefaultGradient()), width: 60}
}

// Done reports whether the display ended because the run finished rather
// than because the user quit.
func (m *Model) Done() bool {
	return m.done
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = util.Min(msg.Width-4, 60)
	case SuiteMsg:
		m.suite = msg.Suite
		m.variant = ""
		m.trial = 0
		m.total = 0
	case TrialMsg:
		if msg.Suite != "" {
			m.suite = msg.Suite
		}
		m.variant = msg.Variant
		m.trial = msg.Trial
		m.total = msg.Total
	case DoneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	if m.suite != "" {
		b.WriteString(suiteStyle.Render(fmt.Sprintf("Running suite: %s", m.suite)))
		b.WriteString("\n")
	}
	if m.variant != "" && m.total > 0 {
		b.WriteString(variantStyle.Render(fmt.Sprintf("%s — trial %d/%d", m.variant, m.trial, m.total)))
		b.WriteString("\n")
		b.WriteString(m.bar.ViewAs(float64(m.trial) / float64(m.total)))
		b.WriteString("\n")
	}
	return b.String()
}
