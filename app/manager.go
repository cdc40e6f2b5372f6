// Package app contains the application wiring: the AppManager which
// coordinates the timer controller, its scheduler and the renderers.
//
// Maintenance notes / tips:
//   - Concurrency model: every mutation goes through the control.Loop
//     goroutine. Renderer intents arrive through Dispatch; scheduler fires
//     arrive through postTick as CmdTick commands. Nothing else may call the
//     controller's mutating methods.
//   - Renderers are observers. They receive snapshots from the loop goroutine
//     and must hop onto their own thread (fyne.Do, tea.Program.Send).
//   - Enqueue drops a command when the queue stays full for a short timeout
//     to avoid blocking the UI. A dropped tick costs one second of countdown.
package app

import (
	"context"
	"errors"

	"KitchenTimer/config"
	"KitchenTimer/control"
	"KitchenTimer/timer"

	"go.uber.org/zap"
)

// AppManager is the main application struct, holding all state.
type AppManager struct {
	cfg    *config.Config
	logger *zap.Logger
	timer  *timer.Controller
	loop   *control.Loop
	cancel context.CancelFunc
}

// NewAppManager creates a new application manager. If sched is nil a
// TickerScheduler bound to the manager's lifetime is used.
func NewAppManager(cfg *config.Config, logger *zap.Logger, sched timer.Scheduler) *AppManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &AppManager{cfg: cfg, logger: logger}

	if sched == nil {
		var ctx context.Context
		ctx, a.cancel = context.WithCancel(context.Background())
		sched = timer.NewTickerScheduler(ctx)
	}

	a.timer = timer.NewController(sched,
		timer.WithLogger(logger.Named("timer")),
		timer.WithTickSink(a.postTick),
	)
	a.loop = control.NewLoop(a.timer, logger.Named("loop"))
	return a
}

func (a *AppManager) postTick(id timer.TickID) {
	err := a.loop.Enqueue(control.Command{Type: control.CmdTick, Tick: id})
	if err != nil && !errors.Is(err, control.ErrStopped) {
		a.logger.Warn("tick dropped", zap.Error(err))
	}
}

// Dispatch applies a renderer intent and waits briefly for it to take effect.
func (a *AppManager) Dispatch(cmd control.Command) {
	a.logger.Debug("intent",
		zap.Stringer("type", cmd.Type),
		zap.Stringer("preset", cmd.Preset),
		zap.Int("delta", cmd.Delta),
	)
	if err := a.loop.Do(cmd); err != nil {
		a.logger.Warn("intent not applied", zap.Stringer("type", cmd.Type), zap.Error(err))
	}
}

// Snapshot returns the current timer state.
func (a *AppManager) Snapshot() timer.Snapshot {
	return a.timer.Snapshot()
}

// Subscribe registers a renderer for state changes.
func (a *AppManager) Subscribe(fn func(timer.Snapshot)) {
	a.timer.Subscribe(fn)
}

// HandleKeyRune handles key presses for the application.
func (a *AppManager) HandleKeyRune(r rune) {
	cmd, ok := control.KeyCommand(r, a.Snapshot())
	if !ok {
		return
	}
	a.Dispatch(cmd)
}

// Shutdown stops the pending tick and the command loop.
func (a *AppManager) Shutdown() {
	a.timer.Close()
	a.loop.Shutdown()
	if a.cancel != nil {
		a.cancel()
	}
}
