package control

import (
	"context"
	"errors"
	"fmt"
	"time"

	"KitchenTimer/timer"

	"go.uber.org/zap"
)

var (
	// ErrStopped is returned once the loop has been shut down.
	ErrStopped = errors.New("command loop stopped")
	// ErrQueueFull is returned when a command could not be queued in time.
	ErrQueueFull = errors.New("command queue full")
	// ErrReplyTimeout is returned by Do when the command was queued but not
	// applied within the reply timeout.
	ErrReplyTimeout = errors.New("command reply timeout")
)

const (
	queueSize      = 256
	enqueueTimeout = 150 * time.Millisecond
	replyTimeout   = 200 * time.Millisecond
)

// Target is the state machine the loop drives. *timer.Controller satisfies it.
type Target interface {
	SelectPreset(timer.PresetID)
	AdjustTime(delta int)
	ToggleStartPause()
	StartOrResume()
	Pause()
	Cancel()
	HandleTick(timer.TickID)
}

// Loop applies commands to its target one at a time on a single goroutine.
type Loop struct {
	target Target
	cmdCh  chan Command
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	logger *zap.Logger
}

// NewLoop creates the loop and starts its goroutine.
func NewLoop(target Target, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Loop{
		target: target,
		cmdCh:  make(chan Command, queueSize),
		done:   make(chan struct{}),
		logger: logger,
	}
	l.ctx, l.cancel = context.WithCancel(context.Background())
	go l.run()
	return l
}

// Enqueue posts a command without waiting for it to be applied. If the queue
// stays full for the enqueue timeout the command is dropped.
func (l *Loop) Enqueue(cmd Command) error {
	if l.ctx.Err() != nil {
		return ErrStopped
	}
	select {
	case l.cmdCh <- cmd:
		return nil
	case <-l.ctx.Done():
		return ErrStopped
	case <-time.After(enqueueTimeout):
		l.logger.Warn("dropping command", zap.Stringer("type", cmd.Type))
		return fmt.Errorf("enqueue %s: %w", cmd.Type, ErrQueueFull)
	}
}

// Do posts a command and waits until the loop has applied it.
func (l *Loop) Do(cmd Command) error {
	reply := make(chan error, 1)
	cmd.Reply = reply
	if err := l.Enqueue(cmd); err != nil {
		return err
	}
	select {
	case err := <-reply:
		return err
	case <-l.ctx.Done():
		return ErrStopped
	case <-time.After(replyTimeout):
		return fmt.Errorf("%s: %w", cmd.Type, ErrReplyTimeout)
	}
}

// Shutdown stops the loop and waits for its goroutine to exit. Commands still
// queued are discarded.
func (l *Loop) Shutdown() {
	l.cancel()
	<-l.done
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		select {
		case <-l.ctx.Done():
			return
		case cmd := <-l.cmdCh:
			l.apply(cmd)
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- nil:
				default:
				}
			}
		}
	}
}

func (l *Loop) apply(cmd Command) {
	switch cmd.Type {
	case CmdSelectPreset:
		l.target.SelectPreset(cmd.Preset)
	case CmdAdjustTime:
		l.target.AdjustTime(cmd.Delta)
	case CmdToggle:
		l.target.ToggleStartPause()
	case CmdStartOrResume:
		l.target.StartOrResume()
	case CmdPause:
		l.target.Pause()
	case CmdCancel:
		l.target.Cancel()
	case CmdTick:
		l.target.HandleTick(cmd.Tick)
	default:
		l.logger.Warn("unknown command", zap.Int("type", int(cmd.Type)))
	}
}
