// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/plinko/body"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Layout    LayoutConfig    `yaml:"layout"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Colors    body.Palette    `yaml:"colors"`
	Names     []string        `yaml:"names"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The window size is the viewport
// the layout is computed from.
type ScreenConfig struct {
	Width     int    `yaml:"width"      env:"PLINKO_SCREEN_WIDTH"`
	Height    int    `yaml:"height"     env:"PLINKO_SCREEN_HEIGHT"`
	TargetFPS int    `yaml:"target_fps" env:"PLINKO_SCREEN_TARGET_FPS"`
	Title     string `yaml:"title"      env:"PLINKO_SCREEN_TITLE"`
}

// PhysicsConfig holds engine parameters.
type PhysicsConfig struct {
	DT         float64 `yaml:"dt"         env:"PLINKO_PHYSICS_DT"`         // seconds per tick
	Gravity    float64 `yaml:"gravity"    env:"PLINKO_PHYSICS_GRAVITY"`    // units/s², downward
	Iterations int     `yaml:"iterations" env:"PLINKO_PHYSICS_ITERATIONS"` // solver iterations
	Substeps   int     `yaml:"substeps"   env:"PLINKO_PHYSICS_SUBSTEPS"`   // engine steps per tick
}

// LayoutConfig holds table options.
type LayoutConfig struct {
	Cabinet         bool    `yaml:"cabinet"          env:"PLINKO_LAYOUT_CABINET"`
	DiscRestitution float64 `yaml:"disc_restitution" env:"PLINKO_LAYOUT_DISC_RESTITUTION"`
	DiscMass        float64 `yaml:"disc_mass"        env:"PLINKO_LAYOUT_DISC_MASS"`
}

// GameplayConfig holds rules and input tuning.
type GameplayConfig struct {
	HighlightOnEnter bool    `yaml:"highlight_on_enter" env:"PLINKO_GAMEPLAY_HIGHLIGHT_ON_ENTER"`
	LaunchSpeed      float64 `yaml:"launch_speed"       env:"PLINKO_GAMEPLAY_LAUNCH_SPEED"`
	AutoLaunch       bool    `yaml:"auto_launch"        env:"PLINKO_GAMEPLAY_AUTO_LAUNCH"` // relaunch a resting disc
	RestSpeed        float64 `yaml:"rest_speed"`                                           // below this the disc counts as resting
	RestSeconds      float64 `yaml:"rest_seconds"`                                         // resting time before auto launch
}

// TelemetryConfig holds session logging parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window" env:"PLINKO_TELEMETRY_STATS_WINDOW"` // seconds per score window
	LogEvents   bool    `yaml:"log_events"   env:"PLINKO_TELEMETRY_LOG_EVENTS"`   // write every routed command
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32        float32 // Physics.DT as float32
	ScreenW32   float32 // Screen.Width as float32
	ScreenH32   float32 // Screen.Height as float32
	RestTicks   int     // Gameplay.RestSeconds in ticks
	WindowTicks int32   // Telemetry.StatsWindow in ticks
	TicksPerSec int     // 1 / Physics.DT, rounded
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults,
// then applies PLINKO_* environment overrides.
// If path is empty, only embedded defaults (and the environment) are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Unset variables leave the YAML values alone
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

// validate rejects values the game cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("config: screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Physics.DT <= 0:
		return fmt.Errorf("config: physics.dt must be positive, got %v", c.Physics.DT)
	case c.Physics.Substeps < 1:
		return fmt.Errorf("config: physics.substeps must be at least 1, got %d", c.Physics.Substeps)
	case c.Layout.DiscMass <= 0:
		return fmt.Errorf("config: layout.disc_mass must be positive, got %v", c.Layout.DiscMass)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.TicksPerSec = int(1/c.Physics.DT + 0.5)
	c.Derived.RestTicks = int(c.Gameplay.RestSeconds/c.Physics.DT + 0.5)
	c.Derived.WindowTicks = int32(c.Telemetry.StatsWindow/c.Physics.DT + 0.5)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
