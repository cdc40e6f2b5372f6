package ui

import (
	"fmt"
	"image/color"

	"KitchenTimer/config"
	"KitchenTimer/control"
	"KitchenTimer/i18n"
	"KitchenTimer/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// App is what the panel needs from the application.
type App interface {
	Dispatch(control.Command)
	Snapshot() timer.Snapshot
	HandleKeyRune(rune)
}

// UI constants
const (
	FontSizeTime   float32 = 56.0
	FontSizeStatus float32 = 16.0
	PresetColumns          = 3
)

var (
	doneColor = color.NRGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
)

// TimerPanel renders the controller state and turns taps into commands.
type TimerPanel struct {
	app App

	presetButtons map[timer.PresetID]*widget.Button
	adjustButtons []*widget.Button
	toggleButton  *widget.Button
	cancelButton  *widget.Button
	timeText      *canvas.Text
	statusText    *canvas.Text

	last    timer.Snapshot
	content fyne.CanvasObject
}

// NewTimerPanel builds the panel widgets. Call UpdateDisplay to render state.
func NewTimerPanel(a App) *TimerPanel {
	p := &TimerPanel{
		app:           a,
		presetButtons: make(map[timer.PresetID]*widget.Button),
	}

	presetGrid := container.NewGridWithColumns(PresetColumns)
	for _, preset := range timer.Presets() {
		id := preset.ID
		btn := widget.NewButton(presetLabel(preset), func() {
			a.Dispatch(control.SelectPreset(id))
		})
		p.presetButtons[id] = btn
		presetGrid.Add(btn)
	}

	p.timeText = canvas.NewText(timer.FormatTime(0), theme.Color(theme.ColorNameForeground))
	p.timeText.TextStyle.Monospace = true
	p.timeText.TextStyle.Bold = true
	p.timeText.TextSize = FontSizeTime
	p.timeText.Alignment = fyne.TextAlignCenter

	p.statusText = canvas.NewText(i18n.T("Idle"), theme.Color(theme.ColorNameForeground))
	p.statusText.TextSize = FontSizeStatus
	p.statusText.Alignment = fyne.TextAlignCenter

	adjustRow := container.NewGridWithColumns(len(timer.AdjustSteps))
	for _, step := range timer.AdjustSteps {
		delta := step
		btn := widget.NewButton(StepLabel(step), func() {
			a.Dispatch(control.AdjustTime(delta))
		})
		p.adjustButtons = append(p.adjustButtons, btn)
		adjustRow.Add(btn)
	}

	p.toggleButton = widget.NewButtonWithIcon(i18n.T("Start"), theme.MediaPlayIcon(), func() {
		a.Dispatch(control.Toggle())
	})
	p.toggleButton.Importance = widget.HighImportance

	p.cancelButton = widget.NewButtonWithIcon(i18n.T("Cancel"), theme.CancelIcon(), func() {
		a.Dispatch(control.Cancel())
	})

	controls := container.NewGridWithColumns(2, p.toggleButton, p.cancelButton)

	p.content = container.NewVBox(
		presetGrid,
		layout.NewSpacer(),
		container.New(layout.NewCenterLayout(), p.timeText),
		container.New(layout.NewCenterLayout(), p.statusText),
		layout.NewSpacer(),
		adjustRow,
		controls,
	)

	p.apply(a.Snapshot())
	return p
}

// CanvasObject returns the root object of the panel.
func (p *TimerPanel) CanvasObject() fyne.CanvasObject {
	return p.content
}

// UpdateDisplay renders s. It is safe to call from any goroutine.
func (p *TimerPanel) UpdateDisplay(s timer.Snapshot) {
	fyne.Do(func() {
		p.apply(s)
	})
}

func (p *TimerPanel) apply(s timer.Snapshot) {
	prev := p.last
	p.last = s

	for id, btn := range p.presetButtons {
		if id == s.Preset {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}

	p.timeText.Text = s.Clock()
	p.statusText.Text = statusLabel(s, prev)
	if s.FinishedFrom(prev) {
		p.statusText.Color = doneColor
	} else {
		p.statusText.Color = theme.Color(theme.ColorNameForeground)
	}

	for _, btn := range p.adjustButtons {
		if s.CanAdjust() {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}

	switch s.State {
	case timer.StateRunning:
		p.toggleButton.SetText(i18n.T("Pause"))
		p.toggleButton.SetIcon(theme.MediaPauseIcon())
	case timer.StatePaused:
		p.toggleButton.SetText(i18n.T("Resume"))
		p.toggleButton.SetIcon(theme.MediaPlayIcon())
	default:
		p.toggleButton.SetText(i18n.T("Start"))
		p.toggleButton.SetIcon(theme.MediaPlayIcon())
	}
	if s.CanStart() {
		p.toggleButton.Enable()
	} else {
		p.toggleButton.Disable()
	}

	p.timeText.Refresh()
	p.statusText.Refresh()
}

func presetLabel(p timer.Preset) string {
	return fmt.Sprintf("%s %s\n%s", p.Icon, i18n.T(p.Name), timer.FormatTime(p.Seconds))
}

// StepLabel renders an adjustment step as "+10m", "+1m", "+10s" or "+1s".
func StepLabel(step int) string {
	if step%60 == 0 {
		return fmt.Sprintf("+%dm", step/60)
	}
	return fmt.Sprintf("+%ds", step)
}

func statusLabel(s, prev timer.Snapshot) string {
	switch {
	case s.FinishedFrom(prev):
		return i18n.T("Done")
	case s.State == timer.StateRunning:
		return i18n.T("Running")
	case s.State == timer.StatePaused:
		return i18n.T("Paused")
	case s.Preset != timer.PresetNone:
		return i18n.T(s.Preset.String())
	case s.RemainingSeconds > 0:
		return i18n.T("Custom")
	}
	return i18n.T("Idle")
}

// CreateMainWindow builds the single application window.
func CreateMainWindow(a App, fyneApp fyne.App, size config.WindowConfig) (fyne.Window, *TimerPanel) {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = i18n.T("Kitchen Timer")
	}
	w := fyneApp.NewWindow(title)

	panel := NewTimerPanel(a)
	w.Canvas().SetOnTypedRune(a.HandleKeyRune)

	w.SetContent(container.NewPadded(panel.CanvasObject()))
	w.Resize(fyne.NewSize(float32(size.Width), float32(size.Height)))
	w.SetFixedSize(true)
	return w, panel
}
