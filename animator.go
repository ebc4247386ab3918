package stardust

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrNoSurface is returned by Run and Resize when no Surface is attached.
	ErrNoSurface = errors.New("stardust: no surface attached")
	// ErrRunning is returned by Run when the frame loop is already scheduled.
	ErrRunning = errors.New("stardust: animator already running")
	// ErrDisposed is returned by Run after Dispose.
	ErrDisposed = errors.New("stardust: animator disposed")
)

// frameRate is the cadence the default tuning assumes.
const frameRate = 60

// maxFrameScale caps how many 60 Hz frames a single scaled step may cover,
// so a stalled host resumes without a jump.
const maxFrameScale = 4

// Animator owns the drag-driven rotation, the stardust particle field and the
// ribbon curves, and redraws them onto its Surface once per frame.
//
// The zero value is not usable; create one with New. All methods are safe to
// call from multiple goroutines: input handlers and the frame callback are
// serialized by an internal lock.
type Animator struct {
	mu sync.Mutex

	cfg  Config
	rng  Rand
	drag dragState

	rotation float64 // degrees, unbounded
	time     float64 // simulation clock

	particles particleField
	ribbons   ribbonField

	surface   Surface
	handle    Handle
	disposed  bool
	lastFrame time.Time     // wall clock of the previous scheduled frame
	fixedStep time.Duration // frame duration reported by the scheduler, if any

	debug  atomic.Bool
	frames uint64
}

// Option configures an Animator at construction.
type Option func(*Animator)

// WithRand sets the random source used for particle color and velocity.
func WithRand(r Rand) Option {
	return func(a *Animator) {
		if r != nil {
			a.rng = r
		}
	}
}

// WithSurface attaches s at construction. Equivalent to calling Attach.
func WithSurface(s Surface) Option {
	return func(a *Animator) {
		a.surface = s
	}
}

// globalRand draws from the math/rand/v2 top-level source.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// New creates an Animator. It returns an error wrapping ErrInvalidConfig when
// cfg fails validation.
func New(cfg Config, opts ...Option) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Animator{cfg: cfg, rng: globalRand{}}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// --- Input ---

// DragStart records x as the drag anchor and enters StateDragging.
// Non-finite coordinates are ignored.
func (a *Animator) DragStart(x float64) {
	if !finite(x) {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.drag.start(x)
}

// DragMove sets velocity to (x - lastX) * DragGain and emits
// min(round(|x - lastX|), MaxBurst) particles at (x, y). It is a no-op when
// not dragging or when either coordinate is not finite. Vertical movement
// only affects where particles are emitted.
func (a *Animator) DragMove(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	delta, ok := a.drag.move(x, a.cfg.DragGain)
	if !ok {
		return
	}
	a.particles.emit(x, y, burstSize(delta, a.cfg.MaxBurst), math.Abs(delta), &a.cfg, a.rng)
}

// DragEnd returns to StateIdle. Velocity is left as-is and coasts down on
// subsequent frames. Calling DragEnd while idle changes nothing.
func (a *Animator) DragEnd() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.drag.end()
}

// --- Frame ---

// Tick advances the simulation by one frame and redraws the attached surface.
// In order it decays velocity (idle only), adds the decayed velocity to the
// rotation, advances the clock, clears the surface, strokes the ribbons, then
// moves, ages, culls and draws the particles. It returns the rotation in
// degrees.
//
// Increments are per frame, not per second: the tuning assumes ~60 Hz. Use
// TickDelta with Config.FrameScaled for variable frame rates.
func (a *Animator) Tick() float64 {
	return a.step(1)
}

// TickDelta is Tick for hosts with a variable frame rate. When
// Config.FrameScaled is set, decay, integration and aging are scaled by
// dt relative to a 60 Hz frame, so dt = 1/60 s behaves exactly like Tick.
// A single call covers at most four frames. Otherwise dt is ignored.
func (a *Animator) TickDelta(dt time.Duration) float64 {
	return a.step(a.frameScale(dt))
}

func (a *Animator) frameScale(dt time.Duration) float64 {
	if !a.frameScaled() || dt <= 0 {
		return 1
	}
	return min(float64(dt)/float64(time.Second/frameRate), maxFrameScale)
}

func (a *Animator) frameScaled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg.FrameScaled
}

func (a *Animator) step(scale float64) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	debug := a.debug.Load()
	var t0 time.Time
	if debug {
		t0 = time.Now()
	}

	if !a.drag.dragging {
		if scale == 1 {
			a.drag.velocity *= a.cfg.Damping
		} else {
			a.drag.velocity *= math.Pow(a.cfg.Damping, scale)
		}
	}
	a.rotation += a.drag.velocity * scale
	a.time += a.cfg.TimeStep * scale

	s := a.surface
	if s != nil {
		s.Clear()
		a.ribbons.draw(s, &a.cfg, a.time, a.drag.velocity)
	}

	culled := a.particles.culled
	a.particles.update(a.cfg.LifeStep, scale)
	if s != nil {
		a.particles.draw(s, a.cfg.ParticleRadius)
	}
	a.frames++

	if debug {
		a.debugLog(frameStats{
			frame:     a.frames,
			alive:     len(a.particles.particles),
			culled:    a.particles.culled - culled,
			emitted:   a.particles.emitted,
			velocity:  a.drag.velocity,
			rotation:  a.rotation,
			tickTime:  time.Since(t0),
			rendering: s != nil,
		})
	}
	return a.rotation
}

// Resize resizes the attached surface without touching simulation state.
// Call it whenever the host's drawable area changes size.
func (a *Animator) Resize(w, h int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.surface == nil {
		return ErrNoSurface
	}
	if err := a.surface.Resize(w, h); err != nil {
		return fmt.Errorf("resize animator: %w", err)
	}
	return nil
}

// --- Lifecycle ---

// Attach sets the surface drawn by Tick.
func (a *Animator) Attach(s Surface) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.surface = s
}

// Detach removes the surface. A running frame loop stops itself on its next
// frame.
func (a *Animator) Detach() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.surface = nil
}

// Surface returns the attached surface, or nil.
func (a *Animator) Surface() Surface {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.surface
}

// Run schedules Tick on every frame of sched. It fails with ErrNoSurface when
// no surface is attached, ErrRunning when already running and ErrDisposed
// after Dispose.
func (a *Animator) Run(sched Scheduler) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch {
	case a.disposed:
		return ErrDisposed
	case a.handle != nil:
		return ErrRunning
	case a.surface == nil:
		return ErrNoSurface
	}
	a.lastFrame = time.Time{}
	a.fixedStep = 0
	if fs, ok := sched.(FixedStepper); ok {
		a.fixedStep = fs.FrameDuration()
	}
	a.handle = sched.Schedule(a.frame)
	return nil
}

// frame is the scheduled callback. It stops the loop once the surface is
// gone instead of ticking into nothing. With Config.FrameScaled the step is
// the scheduler's fixed frame duration when it has one, otherwise the
// wall-clock time since the previous frame.
func (a *Animator) frame() {
	a.mu.Lock()
	if a.surface == nil {
		h := a.handle
		a.handle = nil
		a.mu.Unlock()
		if h != nil {
			h.Stop()
		}
		a.logf("surface detached, frame loop stopped")
		return
	}
	scaled := a.cfg.FrameScaled
	dt := a.fixedStep
	if dt <= 0 {
		now := time.Now()
		dt = time.Second / frameRate
		if !a.lastFrame.IsZero() {
			dt = now.Sub(a.lastFrame)
		}
		a.lastFrame = now
	}
	a.mu.Unlock()

	if scaled {
		a.TickDelta(dt)
		return
	}
	a.Tick()
}

// Running reports whether a frame loop is scheduled.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.handle != nil
}

// Stop cancels the frame loop. Simulation state is kept and Run may be
// called again.
func (a *Animator) Stop() {
	a.mu.Lock()
	h := a.handle
	a.handle = nil
	a.mu.Unlock()
	if h != nil {
		h.Stop()
	}
}

// Dispose stops the frame loop, drops the surface and all particles. The
// animator cannot be run again.
func (a *Animator) Dispose() {
	a.Stop()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.disposed = true
	a.surface = nil
	a.particles.reset()
}

// --- Accessors ---

// Rotation returns the accumulated rotation in degrees.
func (a *Animator) Rotation() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rotation
}

// Velocity returns the current rotational velocity in degrees per frame.
func (a *Animator) Velocity() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.drag.velocity
}

// Dragging reports whether a drag is in progress.
func (a *Animator) Dragging() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.drag.dragging
}

// State returns StateDragging or StateIdle.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.drag.state()
}

// Time returns the simulation clock.
func (a *Animator) Time() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.time
}

// Particles returns a copy of the live particle set.
func (a *Animator) Particles() []Particle {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Particle, len(a.particles.particles))
	copy(out, a.particles.particles)
	return out
}

// ParticleCount returns the number of live particles.
func (a *Animator) ParticleCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.particles.particles)
}

// Config returns a copy of the active tuning.
func (a *Animator) Config() Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// SetConfig replaces the tuning. Simulation state is kept.
func (a *Animator) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cfg = cfg
	return nil
}
