package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if cfg.GridSize != 20 || cfg.SurfaceSize != 400 || cfg.TickInterval != 150*time.Millisecond {
		t.Errorf("Expected 20 cells, 400px, 150ms, got %+v", cfg)
	}
	if cfg.Theme != "retro" {
		t.Errorf("Expected retro theme, got %q", cfg.Theme)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse("snake", []string{"-grid", "30", "-size", "600", "-tick", "100ms", "-theme", "glass", "-seed", "7", "-sound=false", "-debug"})
	if err != nil {
		t.Fatalf("Expected flags to parse, got %v", err)
	}

	if cfg.GridSize != 30 || cfg.SurfaceSize != 600 || cfg.TickInterval != 100*time.Millisecond {
		t.Errorf("Expected board flags applied, got %+v", cfg)
	}
	if cfg.Theme != "glass" || cfg.Seed != 7 || cfg.Sound || !cfg.Debug {
		t.Errorf("Expected option flags applied, got %+v", cfg)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-speed", "10"}},
		{"tiny grid", []string{"-grid", "2"}},
		{"huge grid", []string{"-grid", "500"}},
		{"surface smaller than grid", []string{"-grid", "50", "-size", "40"}},
		{"tick too fast", []string{"-tick", "1ms"}},
		{"unknown theme", []string{"-theme", "neon"}},
		{"loud", []string{"-volume", "2"}},
		{"empty data dir", []string{"-data", ""}},
		{"positional", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse("snake", tt.args); err == nil {
				t.Errorf("Expected %v to be rejected", tt.args)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/tmp/snake"

	if got := cfg.StoragePath(); got != filepath.Join("/tmp/snake", "storage.json") {
		t.Errorf("Unexpected storage path %q", got)
	}
	if got := cfg.StatsPath(); got != filepath.Join("/tmp/snake", "stats.json") {
		t.Errorf("Unexpected stats path %q", got)
	}
	if got := cfg.LogDir(); got != filepath.Join("/tmp/snake", "logs") {
		t.Errorf("Unexpected log dir %q", got)
	}
}
