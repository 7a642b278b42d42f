package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SimulationConfig controls the headless tick loop.
type SimulationConfig struct {
	// TickRate is the number of simulation steps per second.
	TickRate int `mapstructure:"tick_rate"`
	// Seed feeds the combat random source. Zero derives a seed from the clock.
	Seed int64 `mapstructure:"seed"`
	// Duration caps the wall-clock length of a run.
	Duration time.Duration `mapstructure:"duration"`
	// Level is the progression level used to scale spawned enemies.
	Level int `mapstructure:"level"`
}

// InputConfig holds input buffering settings.
type InputConfig struct {
	// MaxBufferTime is how long, in seconds, a buffered action stays eligible.
	MaxBufferTime float64 `mapstructure:"max_buffer_time"`
}

// CombatLogConfig bounds the damage telemetry log.
type CombatLogConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// RoomConfig selects the room layout.
type RoomConfig struct {
	// Map is a TMX file path. Empty selects the built-in layout.
	Map string `mapstructure:"map"`
}

// TuningConfig points at an optional tuning override file.
type TuningConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Settings is the top-level runtime configuration.
type Settings struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Input      InputConfig      `mapstructure:"input"`
	CombatLog  CombatLogConfig  `mapstructure:"combat_log"`
	Room       RoomConfig       `mapstructure:"room"`
	Tuning     TuningConfig     `mapstructure:"tuning"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// Validate checks all settings invariants.
//
// Postcondition: Returns nil if settings are valid, or an error describing all violations.
func (s Settings) Validate() error {
	var errs []string

	if s.Simulation.TickRate < 1 || s.Simulation.TickRate > 1000 {
		errs = append(errs, fmt.Sprintf("simulation.tick_rate must be 1-1000, got %d", s.Simulation.TickRate))
	}
	if s.Simulation.Duration <= 0 {
		errs = append(errs, "simulation.duration must be > 0")
	}
	if s.Simulation.Level < 0 {
		errs = append(errs, fmt.Sprintf("simulation.level must be >= 0, got %d", s.Simulation.Level))
	}
	if s.Input.MaxBufferTime < 0 {
		errs = append(errs, "input.max_buffer_time must not be negative")
	}
	if s.CombatLog.Capacity < 1 {
		errs = append(errs, fmt.Sprintf("combat_log.capacity must be >= 1, got %d", s.CombatLog.Capacity))
	}
	if s.Tuning.Watch && s.Tuning.Path == "" {
		errs = append(errs, "tuning.watch requires tuning.path")
	}
	if err := validateLogging(s.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads settings from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns valid Settings or a non-nil error.
func Load(path string) (Settings, error) {
	v := viper.New()

	// Environment variable overrides with DOOMERANG_ prefix
	v.SetEnvPrefix("DOOMERANG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds Settings from an already-configured Viper instance.
//
// Precondition: v must be non-nil.
func LoadFromViper(v *viper.Viper) (Settings, error) {
	if v == nil {
		return Settings{}, errors.New("nil viper instance")
	}
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// SetDefaults registers every settings default on v.
func SetDefaults(v *viper.Viper) {
	setDefaults(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.tick_rate", 60)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.duration", "30s")
	v.SetDefault("simulation.level", 0)

	v.SetDefault("input.max_buffer_time", 0.1)

	v.SetDefault("combat_log.capacity", 100)

	v.SetDefault("room.map", "")

	v.SetDefault("tuning.path", "")
	v.SetDefault("tuning.watch", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
