package stardust

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate and New when a
// tuning constant is out of range.
var ErrInvalidConfig = errors.New("stardust: invalid config")

// Config holds the tuning constants of an Animator. The defaults are tuned for
// a steady ~60 Hz frame cadence: per-frame increments are not scaled by
// elapsed time unless FrameScaled is set.
type Config struct {
	// DragGain scales horizontal pointer delta (pixels) into rotational
	// velocity (degrees per frame).
	DragGain float64 `json:"dragGain"`
	// Damping is the per-frame multiplicative decay applied to velocity while
	// not dragging. Must be in (0, 1).
	Damping float64 `json:"damping"`
	// MaxBurst caps the number of particles emitted by a single drag move.
	MaxBurst int `json:"maxBurst"`
	// LifeStep is subtracted from every particle's life each frame.
	LifeStep float64 `json:"lifeStep"`
	// TimeStep is added to the simulation clock each frame.
	TimeStep float64 `json:"timeStep"`

	// ParticleSpread scales drag speed into the particle velocity range.
	// Each axis is drawn from [-0.5, 0.5) * |delta| * ParticleSpread.
	ParticleSpread float64 `json:"particleSpread"`
	// ParticleRadius is the radius of a particle at full life.
	ParticleRadius float64 `json:"particleRadius"`
	// Accents are the two colors particles are drawn with.
	Accents [2]Color `json:"accents"`

	// RibbonCount is the number of background ribbon curves.
	RibbonCount int `json:"ribbonCount"`
	// RibbonFrequency is the angular frequency along the vertical axis.
	RibbonFrequency float64 `json:"ribbonFrequency"`
	// RibbonAmplitude is the resting horizontal amplitude in pixels.
	RibbonAmplitude float64 `json:"ribbonAmplitude"`
	// RibbonVelocityGain adds |velocity| * gain to the amplitude.
	RibbonVelocityGain float64 `json:"ribbonVelocityGain"`
	// RibbonStep is the vertical distance between sampled ribbon points.
	RibbonStep float64 `json:"ribbonStep"`
	// RibbonWidth is the stroke width of a ribbon.
	RibbonWidth float64 `json:"ribbonWidth"`
	// RibbonColor is the translucent stroke color of ribbons.
	RibbonColor Color `json:"ribbonColor"`

	// FrameScaled makes TickDelta scale decay, integration and aging by the
	// real frame duration relative to 1/60 s.
	FrameScaled bool `json:"frameScaled"`
}

// DefaultConfig returns the tuning used by the Vanilla Moon landing page.
func DefaultConfig() Config {
	return Config{
		DragGain:       0.15,
		Damping:        0.95,
		MaxBurst:       8,
		LifeStep:       0.02,
		TimeStep:       0.01,
		ParticleSpread: 0.2,
		ParticleRadius: 3,
		Accents: [2]Color{
			{R: 0.95, G: 0.90, B: 0.67, A: 1}, // vanilla
			{R: 0.75, G: 0.78, B: 1.00, A: 1}, // moonlight
		},
		RibbonCount:        5,
		RibbonFrequency:    0.005,
		RibbonAmplitude:    40,
		RibbonVelocityGain: 20,
		RibbonStep:         10,
		RibbonWidth:        1.5,
		RibbonColor:        Color{R: 0.8, G: 0.82, B: 1, A: 0.12},
	}
}

// Validate reports whether every field is usable. The returned error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !finite(c.DragGain):
		return fmt.Errorf("%w: dragGain %v", ErrInvalidConfig, c.DragGain)
	case !(c.Damping > 0 && c.Damping < 1):
		return fmt.Errorf("%w: damping %v not in (0, 1)", ErrInvalidConfig, c.Damping)
	case c.MaxBurst < 0:
		return fmt.Errorf("%w: maxBurst %d is negative", ErrInvalidConfig, c.MaxBurst)
	case !(c.LifeStep > 0) || !finite(c.LifeStep):
		return fmt.Errorf("%w: lifeStep %v must be positive", ErrInvalidConfig, c.LifeStep)
	case !finite(c.TimeStep) || c.TimeStep < 0:
		return fmt.Errorf("%w: timeStep %v", ErrInvalidConfig, c.TimeStep)
	case c.RibbonCount < 0:
		return fmt.Errorf("%w: ribbonCount %d is negative", ErrInvalidConfig, c.RibbonCount)
	case c.RibbonCount > 0 && !(c.RibbonStep > 0):
		return fmt.Errorf("%w: ribbonStep %v must be positive", ErrInvalidConfig, c.RibbonStep)
	case c.ParticleRadius < 0:
		return fmt.Errorf("%w: particleRadius %v is negative", ErrInvalidConfig, c.ParticleRadius)
	}
	return nil
}

// LoadConfig parses a JSON config. Fields missing from the document keep
// their DefaultConfig values.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
