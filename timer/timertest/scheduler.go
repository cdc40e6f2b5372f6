// Package timertest provides a deterministic timer.Scheduler for tests.
package timertest

import (
	"sync"
	"time"

	"KitchenTimer/timer"
)

// ManualScheduler records registrations and fires them only when asked.
type ManualScheduler struct {
	mu      sync.Mutex
	nextID  int
	live    map[int]func()
	all     []func()
	started int
	period  time.Duration
}

// NewManualScheduler returns an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{live: make(map[int]func())}
}

type handle struct {
	s  *ManualScheduler
	id int
}

func (h handle) Stop() {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	delete(h.s.live, h.id)
}

// Every implements timer.Scheduler.
func (s *ManualScheduler) Every(d time.Duration, fn func()) timer.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.started++
	s.period = d
	s.live[s.nextID] = fn
	s.all = append(s.all, fn)
	return handle{s: s, id: s.nextID}
}

// Fire invokes every live registration once, as if one period elapsed.
func (s *ManualScheduler) Fire() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.live))
	for _, fn := range s.live {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// FireStale invokes every registration ever made, stopped ones included. It
// models fires that were already in flight when their handle was stopped.
func (s *ManualScheduler) FireStale() {
	s.mu.Lock()
	fns := make([]func(), len(s.all))
	copy(fns, s.all)
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// FireN calls Fire n times.
func (s *ManualScheduler) FireN(n int) {
	for i := 0; i < n; i++ {
		s.Fire()
	}
}

// Live returns the number of registrations that have not been stopped.
func (s *ManualScheduler) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

// Started returns how many registrations were ever made.
func (s *ManualScheduler) Started() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Period returns the interval of the most recent registration.
func (s *ManualScheduler) Period() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}
