// Package config loads processing presets for the command-line tools.
//
// A preset is a YAML document:
//
//	log_level: info
//	stretch:
//	  window_length: 4096
//	  ramp_proportion: 0.25
//	  scale_factors: [0.5, 1.2]
//	  workers: 4
//	signal:
//	  kind: sine
//	  frequency: 440
//	  sample_rate: 48000
//	  length: 48000
//	  amplitude: 0.8
//	  seed: 1
//
// Missing fields keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-timescale/dsp/timescale"
	"gopkg.in/yaml.v3"
)

// Signal kinds understood by the CLI.
const (
	SignalSine  = "sine"
	SignalRamp  = "ramp"
	SignalChirp = "chirp"
	SignalNoise = "noise"
)

var (
	ErrUnknownSignal = errors.New("config: unknown signal kind")
	ErrInvalidSignal = errors.New("config: invalid signal settings")
	ErrNoScale       = errors.New("config: at least one scale factor is required")
)

// Config is a complete CLI preset.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Stretch  StretchConfig `yaml:"stretch"`
	Signal   SignalConfig  `yaml:"signal"`
}

// StretchConfig holds time-scale parameters. Range checks are left to
// timescale.Configure.
type StretchConfig struct {
	WindowLength   int       `yaml:"window_length"`
	RampProportion float64   `yaml:"ramp_proportion"`
	ScaleFactors   []float64 `yaml:"scale_factors"`
	Workers        int       `yaml:"workers"`
}

// SignalConfig describes the generated test signal.
type SignalConfig struct {
	Kind         string  `yaml:"kind"`
	Frequency    float64 `yaml:"frequency"`
	EndFrequency float64 `yaml:"end_frequency"` // chirp only
	SampleRate   float64 `yaml:"sample_rate"`
	Length       int     `yaml:"length"`
	Amplitude    float64 `yaml:"amplitude"` // output peak
	Seed         int64   `yaml:"seed"`      // noise only
}

// Default returns the built-in preset.
func Default() Config {
	return Config{
		LogLevel: "info",
		Stretch: StretchConfig{
			WindowLength:   timescale.DefaultWindowLength,
			RampProportion: timescale.DefaultRampProportion,
			ScaleFactors:   []float64{0.5, 0.8, 1, 1.2, 1.4},
			Workers:        1,
		},
		Signal: SignalConfig{
			Kind:         SignalSine,
			Frequency:    440,
			EndFrequency: 4000,
			SampleRate:   48000,
			Length:       48000,
			Amplitude:    0.8,
			Seed:         1,
		},
	}
}

// Load reads a YAML preset on top of the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML preset on top of the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse preset: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields the timescale package does not check itself.
func (c *Config) Validate() error {
	c.Signal.Kind = strings.ToLower(strings.TrimSpace(c.Signal.Kind))
	switch c.Signal.Kind {
	case SignalSine, SignalRamp, SignalChirp, SignalNoise:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSignal, c.Signal.Kind)
	}
	if c.Signal.Length <= 0 {
		return fmt.Errorf("%w: length must be > 0: %d", ErrInvalidSignal, c.Signal.Length)
	}
	if c.Signal.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidSignal, c.Signal.SampleRate)
	}
	if c.Signal.Amplitude < 0 {
		return fmt.Errorf("%w: amplitude must be >= 0: %f", ErrInvalidSignal, c.Signal.Amplitude)
	}
	if len(c.Stretch.ScaleFactors) == 0 {
		return ErrNoScale
	}
	return nil
}
