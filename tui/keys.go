package tui

import (
	"fmt"

	"KitchenTimer/control"
	"KitchenTimer/i18n"
	"KitchenTimer/timer"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	presets []key.Binding
	adjust  []key.Binding
	toggle  key.Binding
	cancel  key.Binding
	help    key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	km := keyMap{
		toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		cancel: key.NewBinding(
			key.WithKeys(string(control.KeyCancel), "C"),
			key.WithHelp(string(control.KeyCancel), "cancel"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T("quit")),
		),
	}

	for i, p := range timer.Presets() {
		k := string(control.PresetKey(i))
		km.presets = append(km.presets, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, fmt.Sprintf("%s %s", p.Icon, i18n.T(p.Name))),
		))
	}
	for _, step := range timer.AdjustSteps {
		k := string(control.AdjustKey(step))
		km.adjust = append(km.adjust, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, stepLabel(step)),
		))
	}
	return km
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.toggle, k.cancel, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.presets,
		k.adjust,
		{k.toggle, k.cancel},
		{k.help, k.quit},
	}
}

func stepLabel(step int) string {
	if step%60 == 0 {
		return fmt.Sprintf("+%dm", step/60)
	}
	return fmt.Sprintf("+%ds", step)
}
