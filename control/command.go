// Package control defines lightweight command messages used by the renderers
// and the tick scheduler to request changes from the application command loop.
// The loop centralizes state changes so that an intent and a tick never run at
// the same time.
package control

import "KitchenTimer/timer"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdSelectPreset CommandType = iota
	CmdAdjustTime
	CmdToggle
	CmdStartOrResume
	CmdPause
	CmdCancel
	CmdTick
)

func (t CommandType) String() string {
	switch t {
	case CmdSelectPreset:
		return "select_preset"
	case CmdAdjustTime:
		return "adjust_time"
	case CmdToggle:
		return "toggle"
	case CmdStartOrResume:
		return "start_or_resume"
	case CmdPause:
		return "pause"
	case CmdCancel:
		return "cancel"
	case CmdTick:
		return "tick"
	}
	return "unknown"
}

// Command is the message sent to the Loop. The optional Reply channel is
// signalled once the command has been applied, which lets a renderer redraw
// from a state that already includes its own intent.
type Command struct {
	Type   CommandType
	Preset timer.PresetID // CmdSelectPreset
	Delta  int            // CmdAdjustTime, seconds
	Tick   timer.TickID   // CmdTick
	Reply  chan error     // optional reply channel
}

// SelectPreset builds a CmdSelectPreset command.
func SelectPreset(id timer.PresetID) Command {
	return Command{Type: CmdSelectPreset, Preset: id}
}

// AdjustTime builds a CmdAdjustTime command.
func AdjustTime(delta int) Command {
	return Command{Type: CmdAdjustTime, Delta: delta}
}

// Toggle builds a CmdToggle command.
func Toggle() Command {
	return Command{Type: CmdToggle}
}

// Cancel builds a CmdCancel command.
func Cancel() Command {
	return Command{Type: CmdCancel}
}
