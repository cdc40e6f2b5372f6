package app

import (
	"sync"
	"testing"
	"time"

	"KitchenTimer/config"
	"KitchenTimer/control"
	"KitchenTimer/timer"
	"KitchenTimer/timer/timertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*AppManager, *timertest.ManualScheduler) {
	t.Helper()
	sched := timertest.NewManualScheduler()
	a := NewAppManager(config.Default(), nil, sched)
	t.Cleanup(a.Shutdown)
	return a, sched
}

func TestAppManager_PopcornRunsToCompletion(t *testing.T) {
	a, sched := newTestManager(t)

	a.Dispatch(control.SelectPreset(timer.PresetPopcorn))
	require.Equal(t, 120, a.Snapshot().RemainingSeconds)

	a.Dispatch(control.Toggle())
	require.Equal(t, timer.StateRunning, a.Snapshot().State)

	sched.FireN(120)
	sched.Fire()
	assert.Eventually(t, func() bool {
		return a.Snapshot().State == timer.StateIdle
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, a.Snapshot().RemainingSeconds)
}

func TestAppManager_TicksGoThroughLoop(t *testing.T) {
	a, sched := newTestManager(t)
	a.Dispatch(control.SelectPreset(timer.PresetBeverage))
	a.Dispatch(control.Toggle())

	sched.FireN(10)
	// Queued behind the ten ticks.
	a.Dispatch(control.Command{Type: control.CmdPause})

	s := a.Snapshot()
	assert.Equal(t, 50, s.RemainingSeconds)
	assert.Equal(t, timer.StatePaused, s.State)
}

func TestAppManager_HandleKeyRune(t *testing.T) {
	a, sched := newTestManager(t)

	a.HandleKeyRune(' ')
	assert.Equal(t, 0, sched.Started(), "toggle is disabled with no time")

	a.HandleKeyRune('s')
	a.HandleKeyRune('n')
	assert.Equal(t, 70, a.Snapshot().RemainingSeconds)
	assert.Equal(t, timer.PresetNone, a.Snapshot().Preset)

	a.HandleKeyRune(' ')
	require.Equal(t, timer.StateRunning, a.Snapshot().State)

	a.HandleKeyRune('m')
	assert.Equal(t, 70, a.Snapshot().RemainingSeconds, "adjust keys are disabled while running")

	a.HandleKeyRune('5')
	assert.Equal(t, timer.PresetFish, a.Snapshot().Preset)
	assert.Equal(t, timer.StateIdle, a.Snapshot().State)

	a.HandleKeyRune('c')
	assert.Equal(t, timer.Snapshot{}, a.Snapshot())
	assert.Equal(t, 0, sched.Live())
}

func TestAppManager_SubscribersSeeEveryChange(t *testing.T) {
	a, _ := newTestManager(t)
	var mu sync.Mutex
	var states []timer.State
	a.Subscribe(func(s timer.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, s.State)
	})

	a.Dispatch(control.SelectPreset(timer.PresetDumplings))
	a.Dispatch(control.Toggle())
	a.Dispatch(control.Toggle())
	a.Dispatch(control.Cancel())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []timer.State{
		timer.StateIdle, timer.StateRunning, timer.StatePaused, timer.StateIdle,
	}, states)
}

func TestAppManager_ShutdownStopsTicking(t *testing.T) {
	sched := timertest.NewManualScheduler()
	a := NewAppManager(config.Default(), nil, sched)
	a.Dispatch(control.SelectPreset(timer.PresetPopcorn))
	a.Dispatch(control.Toggle())

	a.Shutdown()

	assert.Equal(t, 0, sched.Live())
	sched.FireStale()
	a.Dispatch(control.Toggle())
	assert.Equal(t, 120, a.Snapshot().RemainingSeconds)
}

func TestAppManager_DefaultScheduler(t *testing.T) {
	a := NewAppManager(config.Default(), nil, nil)
	defer a.Shutdown()

	a.Dispatch(control.AdjustTime(1))
	a.Dispatch(control.Toggle())

	assert.Eventually(t, func() bool {
		return a.Snapshot().State == timer.StateIdle
	}, 5*time.Second, 50*time.Millisecond)
}
