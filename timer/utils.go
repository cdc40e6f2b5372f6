package timer

import (
	"fmt"
)

// FormatTime converts a number of seconds into a mm:ss string format.
func FormatTime(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// clampAdd returns base+delta limited to [0, MaxCustomSeconds]. base must already
// be in range; the comparisons are arranged so extreme deltas cannot overflow.
func clampAdd(base, delta int) int {
	switch {
	case delta >= MaxCustomSeconds-base:
		return MaxCustomSeconds
	case delta <= -base:
		return 0
	}
	return base + delta
}
