package main

import (
	"fmt"
	"os"

	"KitchenTimer/app"
	"KitchenTimer/config"
	"KitchenTimer/i18n"
	"KitchenTimer/logging"
	"KitchenTimer/timer"
	"KitchenTimer/tui"
	"KitchenTimer/ui"

	fyneapp "fyne.io/fyne/v2/app"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kitchentimer: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "kitchentimer: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck

	i18n.Detect(cfg.Lang, logger.Named("i18n"))

	a := app.NewAppManager(cfg, logger, nil)
	defer a.Shutdown()

	logger.Info("starting", zap.String("frontend", cfg.Frontend), zap.String("lang", i18n.GetLang()))

	if cfg.Frontend == config.FrontendTUI {
		return runTUI(a)
	}
	runGUI(a, cfg)
	return nil
}

func runTUI(a *app.AppManager) error {
	p := tea.NewProgram(tui.New(a, a.Snapshot()), tea.WithAltScreen())
	a.Subscribe(func(s timer.Snapshot) {
		p.Send(tui.SnapshotMsg(s))
	})
	_, err := p.Run()
	return err
}

func runGUI(a *app.AppManager, cfg *config.Config) {
	fyneApp := fyneapp.New()

	w, panel := ui.CreateMainWindow(a, fyneApp, cfg.Window)
	a.Subscribe(panel.UpdateDisplay)
	w.SetOnClosed(a.Shutdown)

	w.ShowAndRun()
}

// newLogger writes to the configured file, or stderr for the window frontend.
// Stderr would corrupt the terminal frontend's screen.
func newLogger(cfg *config.Config) *zap.Logger {
	lc := logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	}
	switch {
	case cfg.Logging.File != "":
		lc.OutputPaths = []string{cfg.Logging.File}
	case cfg.Frontend == config.FrontendTUI:
		return zap.NewNop()
	}
	return logging.NewOrNop(lc)
}
