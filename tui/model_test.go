package tui

import (
	"testing"

	"KitchenTimer/control"
	"KitchenTimer/i18n"
	"KitchenTimer/timer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	cmds []control.Command
}

func (r *recorder) Dispatch(cmd control.Command) {
	r.cmds = append(r.cmds, cmd)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press runs one key through Update and executes the returned command.
func press(t *testing.T, m Model, s string) (Model, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(keyMsg(s))
	var msg tea.Msg
	if cmd != nil {
		msg = cmd()
	}
	return next.(Model), msg
}

func newModel(s timer.Snapshot) (Model, *recorder) {
	i18n.SetLang("en")
	r := &recorder{}
	return New(r, s), r
}

func TestModel_PresetKeysDispatch(t *testing.T) {
	m, r := newModel(timer.Snapshot{})

	m, _ = press(t, m, "1")
	m, _ = press(t, m, "6")

	assert.Equal(t, []control.Command{
		control.SelectPreset(timer.PresetPopcorn),
		control.SelectPreset(timer.PresetStirFry),
	}, r.cmds)
}

func TestModel_SpaceTogglesOnlyWithTime(t *testing.T) {
	m, r := newModel(timer.Snapshot{})

	m, _ = press(t, m, " ")
	assert.Empty(t, r.cmds)

	next, _ := m.Update(SnapshotMsg(timer.Snapshot{CustomSeconds: 30, RemainingSeconds: 30}))
	m = next.(Model)
	press(t, m, " ")
	assert.Equal(t, []control.Command{control.Toggle()}, r.cmds)
}

func TestModel_AdjustKeysOnlyWhileIdle(t *testing.T) {
	m, r := newModel(timer.Snapshot{})

	for _, k := range []string{"m", "n", "s", "d"} {
		m, _ = press(t, m, k)
	}
	assert.Equal(t, []control.Command{
		control.AdjustTime(600),
		control.AdjustTime(60),
		control.AdjustTime(10),
		control.AdjustTime(1),
	}, r.cmds)

	r.cmds = nil
	next, _ := m.Update(SnapshotMsg(timer.Snapshot{RemainingSeconds: 10, State: timer.StateRunning}))
	m = next.(Model)
	press(t, m, "m")
	assert.Empty(t, r.cmds)

	press(t, m, "c")
	assert.Equal(t, []control.Command{control.Cancel()}, r.cmds)
}

func TestModel_IgnoresUnboundKeys(t *testing.T) {
	m, r := newModel(timer.Snapshot{RemainingSeconds: 10})

	for _, k := range []string{"x", "0", "enter", "ab"} {
		_, cmd := m.Update(keyMsg(k))
		assert.Nil(t, cmd, k)
	}
	assert.Empty(t, r.cmds)
}

func TestModel_QuitAndHelp(t *testing.T) {
	m, r := newModel(timer.Snapshot{})

	_, msg := press(t, m, "q")
	assert.IsType(t, tea.QuitMsg{}, msg)

	_, msg = press(t, m, "ctrl+c")
	assert.IsType(t, tea.QuitMsg{}, msg)

	assert.False(t, m.help.ShowAll)
	m, _ = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
	assert.Empty(t, r.cmds)
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newModel(timer.Snapshot{})

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 72, Height: 30})
	require.Nil(t, cmd)
	m = next.(Model)
	assert.Equal(t, 72, m.width)
	assert.Equal(t, 72, m.help.Width)
}

func TestModel_View(t *testing.T) {
	m, _ := newModel(timer.Snapshot{Preset: timer.PresetFish, CustomSeconds: 480, RemainingSeconds: 480})

	view := m.View()
	assert.Contains(t, view, "Kitchen Timer")
	assert.Contains(t, view, "> 5")
	assert.Contains(t, view, "Stir Fry")
	assert.Contains(t, view, "08:00")
	assert.Contains(t, view, "Fish")

	next, _ := m.Update(SnapshotMsg(timer.Snapshot{Preset: timer.PresetFish, CustomSeconds: 480, RemainingSeconds: 479, State: timer.StateRunning}))
	m = next.(Model)
	assert.Contains(t, m.View(), "07:59")
	assert.Contains(t, m.View(), "Running")

	next, _ = m.Update(SnapshotMsg(timer.Snapshot{Preset: timer.PresetFish, CustomSeconds: 480, RemainingSeconds: 479, State: timer.StatePaused}))
	m = next.(Model)
	assert.Contains(t, m.View(), "Paused")
}

func TestModel_ViewShowsDone(t *testing.T) {
	m, _ := newModel(timer.Snapshot{CustomSeconds: 1, State: timer.StateRunning})

	next, _ := m.Update(SnapshotMsg(timer.Snapshot{CustomSeconds: 1}))
	m = next.(Model)
	assert.Contains(t, m.View(), "Done")
	assert.Contains(t, m.View(), "00:00")

	next, _ = m.Update(SnapshotMsg(timer.Snapshot{}))
	m = next.(Model)
	assert.NotContains(t, m.View(), "Done")
	assert.Contains(t, m.View(), "Idle")
}

func TestStepLabel(t *testing.T) {
	assert.Equal(t, "+10m", stepLabel(600))
	assert.Equal(t, "+10s", stepLabel(10))
}
