package control

import "KitchenTimer/timer"

// Key bindings shared by both renderers.
const (
	KeyToggle     = ' '
	KeyCancel     = 'c'
	KeyTenMinutes = 'm'
	KeyMinute     = 'n'
	KeyTenSeconds = 's'
	KeySecond     = 'd'
)

var adjustKeys = map[rune]int{
	KeyTenMinutes: timer.StepTenMinutes,
	KeyMinute:     timer.StepMinute,
	KeyTenSeconds: timer.StepTenSeconds,
	KeySecond:     timer.StepSecond,
}

// AdjustKey returns the key bound to an adjustment step.
func AdjustKey(step int) rune {
	for r, s := range adjustKeys {
		if s == step {
			return r
		}
	}
	return 0
}

// PresetKey returns the digit key bound to the i-th catalog entry.
func PresetKey(i int) rune {
	return rune('1' + i)
}

// KeyCommand maps a key press to a command. Controls a renderer would show as
// disabled for s (adjusting outside idle, toggling with nothing to run) map to
// nothing.
func KeyCommand(r rune, s timer.Snapshot) (Command, bool) {
	switch r {
	case KeyToggle:
		if !s.CanStart() {
			return Command{}, false
		}
		return Toggle(), true
	case KeyCancel, 'C':
		return Cancel(), true
	}

	if step, ok := adjustKeys[r]; ok {
		if !s.CanAdjust() {
			return Command{}, false
		}
		return AdjustTime(step), true
	}

	presets := timer.Presets()
	if i := int(r - '1'); i >= 0 && i < len(presets) {
		return SelectPreset(presets[i].ID), true
	}
	return Command{}, false
}
