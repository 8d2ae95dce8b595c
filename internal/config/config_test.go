package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
log_level: debug
stretch:
  window_length: 2048
  scale_factors: [0.75, 1.25]
signal:
  kind: Chirp
  length: 9600
  seed: 7
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Stretch.WindowLength != 2048 {
		t.Fatalf("WindowLength = %d, want 2048", cfg.Stretch.WindowLength)
	}
	if cfg.Stretch.RampProportion != 0.25 {
		t.Fatalf("RampProportion = %v, want default 0.25", cfg.Stretch.RampProportion)
	}
	if len(cfg.Stretch.ScaleFactors) != 2 || cfg.Stretch.ScaleFactors[1] != 1.25 {
		t.Fatalf("ScaleFactors = %v, want [0.75 1.25]", cfg.Stretch.ScaleFactors)
	}
	if cfg.Signal.Kind != SignalChirp || cfg.Signal.Length != 9600 || cfg.Signal.SampleRate != 48000 || cfg.Signal.Seed != 7 {
		t.Fatalf("Signal = %+v", cfg.Signal)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{name: "unknown kind", doc: "signal: {kind: square}", want: ErrUnknownSignal},
		{name: "zero length", doc: "signal: {length: 0}", want: ErrInvalidSignal},
		{name: "negative rate", doc: "signal: {sample_rate: -1}", want: ErrInvalidSignal},
		{name: "negative amplitude", doc: "signal: {amplitude: -0.5}", want: ErrInvalidSignal},
		{name: "no scales", doc: "stretch: {scale_factors: []}", want: ErrNoScale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); !errors.Is(err, tt.want) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte("stretch: [")); err == nil {
		t.Fatal("expected YAML syntax error")
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Signal.Kind != SignalSine {
		t.Fatalf("default kind = %q, want sine", cfg.Signal.Kind)
	}

	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte("stretch: {workers: 3}\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Stretch.Workers != 3 {
		t.Fatalf("Workers = %d, want 3", cfg.Stretch.Workers)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
