package stardust

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame simulation metrics.
// Only populated when debug mode is enabled.
type frameStats struct {
	frame     uint64
	alive     int
	culled    int
	emitted   int
	velocity  float64
	rotation  float64
	tickTime  time.Duration
	rendering bool
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// particle counts, velocity and tick time are logged to stderr.
func (a *Animator) SetDebugMode(enabled bool) {
	a.debug.Store(enabled)
}

// debugLog prints frame stats to stderr.
func (a *Animator) debugLog(stats frameStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[stardust] frame %d | tick: %v | alive: %d | culled: %d | emitted: %d\n",
		stats.frame, stats.tickTime, stats.alive, stats.culled, stats.emitted)
	_, _ = fmt.Fprintf(os.Stderr,
		"[stardust] velocity: %.4f | rotation: %.2f | rendering: %t\n",
		stats.velocity, stats.rotation, stats.rendering)
}

// logf prints a lifecycle message to stderr in debug mode.
func (a *Animator) logf(format string, args ...any) {
	if !a.debug.Load() {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[stardust] "+format+"\n", args...)
}
