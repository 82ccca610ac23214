package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BYTE-6D65/civiltime/pkg/civil"
	"github.com/BYTE-6D65/civiltime/pkg/clock"
)

// View states
type viewState int

const (
	viewInput viewState = iota
	viewInspect
)

// Model holds the state of the TUI
type model struct {
	state  viewState
	input  string
	parsed civil.Time
	err    error
	width  int
	height int

	clk clock.Clock
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4")).
		PaddingLeft(2)

	promptStyle = lipgloss.NewStyle().
		PaddingLeft(4)

	inputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(0, 1).
		MarginLeft(2)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262")).
		PaddingTop(1).
		PaddingLeft(2)

	fieldsStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262"))

	errorStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF5555")).
		Foreground(lipgloss.Color("#FF5555")).
		Padding(0, 2).
		MarginTop(1).
		MarginLeft(2)
)

func initialModel() model {
	return model{
		state: viewInput,
		clk:   clock.NewSystemClock(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case viewInput:
		return m.handleInputKeys(msg)
	case viewInspect:
		return m.handleInspectKeys(msg)
	}
	return m, nil
}

func (m model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.input = ""
		m.err = nil

	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		m.err = nil

	case "enter":
		// An empty input inspects the current instant.
		if m.input == "" {
			m.parsed = m.clk.Now()
			m.state = viewInspect
			m.err = nil
			return m, nil
		}
		parsed, err := civil.Parse(m.input)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.parsed = parsed
		m.state = viewInspect
		m.err = nil

	default:
		if s := msg.String(); len(s) == 1 {
			m.input += s
			m.err = nil
		}
	}
	return m, nil
}

func (m model) handleInspectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "enter", "esc":
		m.state = viewInput
		m.input = ""
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case viewInput:
		return m.renderInput()
	case viewInspect:
		return m.renderInspect()
	}
	return ""
}

func (m model) renderInput() string {
	s := titleStyle.Render("🕐 Civil Time Inspector") + "\n\n"
	s += promptStyle.Render("Enter a timestamp (or leave empty for now):") + "\n"
	s += inputStyle.Render(m.input+"▌") + "\n"

	s += helpStyle.Render("\nSupported layouts:\n" +
		"  2011-11-18T15:56:35.666777888+07:00\n" +
		"  2011-11-18T15:56:35Z\n" +
		"  2011-11-18 15:56:35\n" +
		"  2011-11-18\n" +
		"  15:56:35\n" +
		"\nEnter to inspect • Esc to clear • Ctrl+C to quit")

	if m.err != nil {
		s += "\n" + errorStyle.Render("❌ "+m.err.Error())
	}

	return s
}

func (m model) renderInspect() string {
	t := m.parsed
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	isoYear, isoWeek := t.ISOWeek()

	var b strings.Builder

	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", label)), value)
	}

	row("ISO 8601", civil.FormatISO(t, 0))
	row("Datetime", civil.FormatDateTime(t, 0))
	b.WriteString("\n")
	row("Date", fmt.Sprintf("%04d %v %d", year, month, day))
	row("Clock", fmt.Sprintf("%02d:%02d:%02d.%09d", hour, min, sec, t.Nanosecond()))
	row("Weekday", t.Weekday().String())
	row("Day of year", fmt.Sprintf("%d", t.YearDay()))
	row("ISO week", fmt.Sprintf("%d-W%02d", isoYear, isoWeek))
	b.WriteString("\n")
	row("Unix seconds", fmt.Sprintf("%d", t.Unix()))
	row("Unix millis", fmt.Sprintf("%d", t.UnixMilli()))
	row("Unix micros", fmt.Sprintf("%d", t.UnixMicro()))
	b.WriteString("\n")
	row("Trunc minute", civil.FormatISO(t.Truncate(civil.Minute), 0))
	row("Round hour", civil.FormatISO(t.Round(civil.Hour), 0))
	row("Round day", civil.FormatISO(t.Round(24*civil.Hour), 0))
	b.WriteString("\n")
	row("Since now", fmt.Sprintf("%.3fs", m.clk.Since(t).Seconds()))

	s := titleStyle.Render("🕐 "+civil.FormatISO(t, 0)) + "\n\n"
	s += fieldsStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
	s += helpStyle.Render("\nEnter/Esc for another timestamp • q to quit")
	return s
}

func startTUI() error {
	p := tea.NewProgram(initialModel())
	_, err := p.Run()
	return err
}
