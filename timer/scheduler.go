package timer

import (
	"context"
	"time"
)

// Handle is a live periodic registration. Stop must not block.
type Handle interface {
	Stop()
}

// Scheduler registers periodic callbacks. The controller never holds more than
// one registration at a time.
type Scheduler interface {
	Every(d time.Duration, fn func()) Handle
}

type stopFunc func()

func (f stopFunc) Stop() { f() }

// TickerScheduler runs each registration on its own goroutine driven by a
// time.Ticker. Cancelling the parent context stops every registration.
type TickerScheduler struct {
	ctx context.Context
}

// NewTickerScheduler creates a scheduler bound to ctx.
func NewTickerScheduler(ctx context.Context) *TickerScheduler {
	return &TickerScheduler{ctx: ctx}
}

// Every starts calling fn once per d until the returned handle is stopped.
func (s *TickerScheduler) Every(d time.Duration, fn func()) Handle {
	ctx, cancel := context.WithCancel(s.ctx)
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// The ticker may have fired in the same instant as the cancel.
				if ctx.Err() != nil {
					return
				}
				fn()
			}
		}
	}()
	return stopFunc(cancel)
}
