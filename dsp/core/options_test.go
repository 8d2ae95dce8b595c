package core

import (
	"runtime"
	"testing"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000), WithWorkers(1))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate = %v, want 96000", cfg.SampleRate)
	}
	if cfg.Workers != 1 {
		t.Fatalf("workers = %d, want 1", cfg.Workers)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithWorkers(-1), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestWithWorkersCappedAtGOMAXPROCS(t *testing.T) {
	limit := runtime.GOMAXPROCS(0)
	cfg := ApplyProcessorOptions(WithWorkers(limit + 8))
	if cfg.Workers != limit {
		t.Fatalf("workers = %d, want %d", cfg.Workers, limit)
	}
}
