// Package format holds the small display-formatting helpers shared by the
// CLI and test output: simulated durations, DPS figures and percentages.
package format

import (
	"fmt"
	"math"
)

// Duration renders a duration in seconds as a compact human string.
// Infinity renders as "∞" (the capacitor simulator's did-not-deplete
// sentinel).
func Duration(seconds float64) string {
	if math.IsInf(seconds, 1) {
		return "∞"
	}
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.1fs", seconds)
	case seconds < 3600:
		m := int(seconds) / 60
		s := int(seconds) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		h := int(seconds) / 3600
		m := (int(seconds) % 3600) / 60
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// Number renders a display figure with one decimal, collapsing large values
// to k/M suffixes.
func Number(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 10_000:
		return fmt.Sprintf("%.1fk", v/1000)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}

// Percent renders a 0..1 fraction as a percentage with one decimal.
func Percent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}
