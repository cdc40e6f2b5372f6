// Package tui is the terminal renderer. It shares the key bindings of the
// window renderer and dispatches the same commands through the application.
package tui

import (
	"fmt"
	"strings"

	"KitchenTimer/control"
	"KitchenTimer/i18n"
	"KitchenTimer/timer"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dispatcher delivers commands to the controller.
type Dispatcher interface {
	Dispatch(control.Command)
}

// SnapshotMsg carries a controller snapshot into the program.
type SnapshotMsg timer.Snapshot

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	presetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	clockStyle    = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
	statusStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	doneStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

// Model is the bubbletea model for the timer.
type Model struct {
	dispatcher Dispatcher
	snap       timer.Snapshot
	last       timer.Snapshot
	keys       keyMap
	help       help.Model
	width      int
}

// New returns a model rendering s until the first SnapshotMsg arrives.
func New(d Dispatcher, s timer.Snapshot) Model {
	return Model{
		dispatcher: d,
		snap:       s,
		last:       s,
		keys:       newKeyMap(),
		help:       help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		m.last = m.snap
		m.snap = timer.Snapshot(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		r, ok := keyRune(msg)
		if !ok {
			return m, nil
		}
		cmd, ok := control.KeyCommand(r, m.snap)
		if !ok {
			return m, nil
		}
		return m, m.dispatch(cmd)
	}
	return m, nil
}

// dispatch runs off the update goroutine: the application replies with a
// snapshot sent back through the program.
func (m Model) dispatch(cmd control.Command) tea.Cmd {
	d := m.dispatcher
	return func() tea.Msg {
		d.Dispatch(cmd)
		return nil
	}
}

func keyRune(msg tea.KeyMsg) (rune, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return control.KeyToggle, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return msg.Runes[0], true
		}
	}
	return 0, false
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T("Kitchen Timer")))
	b.WriteString("\n\n")

	for i, p := range timer.Presets() {
		line := fmt.Sprintf("%c  %s %-12s %s", control.PresetKey(i), p.Icon, i18n.T(p.Name), timer.FormatTime(p.Seconds))
		if p.ID == m.snap.Preset {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(presetStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(clockStyle.Render(m.snap.Clock()))
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusView() string {
	s := m.snap
	switch {
	case s.FinishedFrom(m.last):
		return doneStyle.Render(i18n.T("Done"))
	case s.State == timer.StateRunning:
		return statusStyle.Render(i18n.T("Running"))
	case s.State == timer.StatePaused:
		return statusStyle.Render(i18n.T("Paused"))
	case s.Preset != timer.PresetNone:
		return statusStyle.Render(i18n.T(s.Preset.String()))
	case s.RemainingSeconds > 0:
		return statusStyle.Render(i18n.T("Custom"))
	}
	return statusStyle.Render(i18n.T("Idle"))
}
