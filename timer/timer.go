// Package timer contains the domain logic for the kitchen timer: the static
// preset catalog and the Controller state machine that owns the countdown.
//
// Maintenance notes:
//   - All mutations are expected to arrive from one goroutine (the application
//     command loop). The mutex exists so renderers can take snapshots from
//     their own goroutines; it is not a substitute for the loop.
//   - The controller owns at most one scheduler registration. Every path that
//     leaves Running stops it, and every stop bumps tickID so a fire that was
//     already on its way from the old registration is discarded.
//   - Observers run after the lock is released. They may call Snapshot but must
//     not call mutating methods synchronously.
package timer

import (
	"sync"

	"go.uber.org/zap"
)

// TickID identifies a scheduler registration. Only fires carrying the live id
// are applied.
type TickID uint64

// Controller is the countdown state machine.
type Controller struct {
	mu               sync.RWMutex
	state            State
	preset           PresetID
	customSeconds    int
	remainingSeconds int

	sched  Scheduler
	tick   Handle
	tickID TickID
	sink   func(TickID)

	obsMu     sync.RWMutex
	observers []func(Snapshot)

	logger *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTickSink routes scheduler fires through fn instead of applying them on the
// scheduler goroutine. The application uses it to post ticks into its command
// loop; fn must eventually call HandleTick with the id it received.
func WithTickSink(fn func(TickID)) Option {
	return func(c *Controller) {
		c.sink = fn
	}
}

// NewController creates an idle controller with nothing selected.
func NewController(sched Scheduler, opts ...Option) *Controller {
	c := &Controller{
		state:  StateIdle,
		preset: PresetNone,
		sched:  sched,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sink == nil {
		c.sink = c.HandleTick
	}
	return c
}

// Subscribe registers fn to receive a snapshot after every state change.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	c.observers = append(c.observers, fn)
}

func (c *Controller) notify(s Snapshot) {
	c.obsMu.RLock()
	observers := make([]func(Snapshot), len(c.observers))
	copy(observers, c.observers)
	c.obsMu.RUnlock()

	for _, fn := range observers {
		fn(s)
	}
}

// SelectPreset loads a preset and returns to idle, dropping any countdown in
// progress.
func (c *Controller) SelectPreset(id PresetID) {
	p, ok := LookupPreset(id)
	if !ok {
		c.logger.Warn("ignoring unknown preset", zap.Int("preset", int(id)))
		return
	}

	c.mu.Lock()
	c.stopTickLocked()
	c.preset = p.ID
	c.customSeconds = p.Seconds
	c.remainingSeconds = p.Seconds
	c.state = StateIdle
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("preset selected", zap.Stringer("preset", p.ID), zap.Int("seconds", p.Seconds))
	c.notify(snap)
}

// AdjustTime adds delta seconds to the custom duration, clamped to
// [0, MaxCustomSeconds], and makes it the remaining time. The state is left
// as it is; renderers only offer adjustment while idle.
func (c *Controller) AdjustTime(delta int) {
	c.mu.Lock()
	if c.state != StateIdle {
		c.logger.Debug("adjusting outside idle", zap.Stringer("state", c.state), zap.Int("delta", delta))
	}
	c.preset = PresetNone
	c.customSeconds = clampAdd(c.customSeconds, delta)
	c.remainingSeconds = c.customSeconds
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// StartOrResume begins the countdown from idle or resumes it from paused.
func (c *Controller) StartOrResume() {
	c.mu.Lock()
	changed := c.startLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
}

// Pause suspends a running countdown. It has no effect in any other state.
func (c *Controller) Pause() {
	c.mu.Lock()
	changed := c.pauseLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
}

// ToggleStartPause pauses a running countdown and starts or resumes otherwise.
func (c *Controller) ToggleStartPause() {
	c.mu.Lock()
	var changed bool
	if c.state == StateRunning {
		changed = c.pauseLocked()
	} else {
		changed = c.startLocked()
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
}

// Cancel stops any countdown and restores the initial state.
func (c *Controller) Cancel() {
	c.mu.Lock()
	c.stopTickLocked()
	c.state = StateIdle
	c.preset = PresetNone
	c.customSeconds = 0
	c.remainingSeconds = 0
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("countdown cancelled")
	c.notify(snap)
}

// HandleTick applies one scheduler fire. Fires from a stopped registration, or
// arriving while not running, are ignored.
func (c *Controller) HandleTick(id TickID) {
	c.mu.Lock()
	if id != c.tickID || c.state != StateRunning {
		c.mu.Unlock()
		return
	}

	if c.remainingSeconds > 0 {
		c.remainingSeconds--
	} else {
		c.stopTickLocked()
		c.state = StateIdle
		c.logger.Info("countdown finished")
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// Close stops the pending tick, if any.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTickLocked()
}

// Snapshot returns a consistent copy of the observable state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *Controller) startLocked() bool {
	switch c.state {
	case StateRunning:
		return false
	case StateIdle:
		if c.remainingSeconds == 0 {
			return false
		}
	}

	from := c.state
	c.scheduleTickLocked()
	c.state = StateRunning
	c.logger.Debug("countdown running", zap.Stringer("from", from), zap.Int("remaining", c.remainingSeconds))
	return true
}

func (c *Controller) pauseLocked() bool {
	if c.state != StateRunning {
		return false
	}
	c.stopTickLocked()
	c.state = StatePaused
	c.logger.Debug("countdown paused", zap.Int("remaining", c.remainingSeconds))
	return true
}

func (c *Controller) scheduleTickLocked() {
	c.stopTickLocked()
	id := c.tickID
	sink := c.sink
	c.tick = c.sched.Every(TickInterval, func() { sink(id) })
}

func (c *Controller) stopTickLocked() {
	if c.tick != nil {
		c.tick.Stop()
		c.tick = nil
	}
	c.tickID++
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Preset:           c.preset,
		CustomSeconds:    c.customSeconds,
		RemainingSeconds: c.remainingSeconds,
		State:            c.state,
	}
}

// Snapshot is an atomic copy of the state a renderer needs.
type Snapshot struct {
	Preset           PresetID
	CustomSeconds    int
	RemainingSeconds int
	State            State
}

// IsRunning reports whether a countdown is active, paused or not.
func (s Snapshot) IsRunning() bool {
	return s.State == StateRunning || s.State == StatePaused
}

// IsPaused reports whether the countdown is suspended.
func (s Snapshot) IsPaused() bool {
	return s.State == StatePaused
}

// Clock renders the remaining time as mm:ss.
func (s Snapshot) Clock() string {
	return FormatTime(s.RemainingSeconds)
}

// CanStart reports whether the toggle control has an effect.
func (s Snapshot) CanStart() bool {
	return !(s.State == StateIdle && s.RemainingSeconds == 0)
}

// CanAdjust reports whether the adjustment controls should be offered.
func (s Snapshot) CanAdjust() bool {
	return s.State == StateIdle
}

// FinishedFrom reports whether the transition prev -> s is the completion of a
// countdown, as opposed to a cancel or a fresh start.
func (s Snapshot) FinishedFrom(prev Snapshot) bool {
	return prev.State == StateRunning && prev.RemainingSeconds == 0 &&
		s.State == StateIdle && s.RemainingSeconds == 0
}
