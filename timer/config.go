package timer

import "time"

// State defines the lifecycle state of the countdown.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}

const (
	// TickInterval is the cadence of the countdown while running.
	TickInterval = time.Second

	// MaxCustomSeconds caps the custom duration (one hour).
	MaxCustomSeconds = 3600
)

// Adjustment steps offered by the renderers.
const (
	StepTenMinutes = 600
	StepMinute     = 60
	StepTenSeconds = 10
	StepSecond     = 1
)

// AdjustSteps lists the adjustment deltas in the order the renderers show them.
var AdjustSteps = []int{StepTenMinutes, StepMinute, StepTenSeconds, StepSecond}
