package stardust

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"NaN drag gain", func(c *Config) { c.DragGain = math.NaN() }},
		{"damping one", func(c *Config) { c.Damping = 1 }},
		{"damping zero", func(c *Config) { c.Damping = 0 }},
		{"damping negative", func(c *Config) { c.Damping = -0.1 }},
		{"negative burst", func(c *Config) { c.MaxBurst = -1 }},
		{"zero life step", func(c *Config) { c.LifeStep = 0 }},
		{"infinite life step", func(c *Config) { c.LifeStep = math.Inf(1) }},
		{"negative time step", func(c *Config) { c.TimeStep = -0.01 }},
		{"negative ribbons", func(c *Config) { c.RibbonCount = -1 }},
		{"zero ribbon step", func(c *Config) { c.RibbonStep = 0 }},
		{"negative radius", func(c *Config) { c.ParticleRadius = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigValidateZeroRibbonsIgnoresStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RibbonCount = 0
	cfg.RibbonStep = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadConfigLayersOverDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"damping": 0.9, "maxBurst": 3, "frameScaled": true}`))
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "Damping", cfg.Damping, 0.9)
	if cfg.MaxBurst != 3 {
		t.Errorf("MaxBurst = %d, want 3", cfg.MaxBurst)
	}
	if !cfg.FrameScaled {
		t.Error("FrameScaled = false, want true")
	}
	assertNear(t, "DragGain", cfg.DragGain, 0.15)
	if cfg.RibbonCount != 5 {
		t.Errorf("RibbonCount = %d, want default 5", cfg.RibbonCount)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig([]byte(`{not json`)); err == nil {
		t.Error("expected parse error")
	}
	_, err := LoadConfig([]byte(`{"damping": 1.5}`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadConfig = %v, want ErrInvalidConfig", err)
	}
}
