// Package config holds the command line settings shared by both hosts.
package config

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"retro-snake/game/types"
	"retro-snake/ui"
)

type Config struct {
	GridSize     int
	SurfaceSize  int
	TickInterval time.Duration
	Theme        string
	DataDir      string
	// Seed for food placement; 0 picks one from the clock
	Seed   uint64
	Sound  bool
	Volume float64
	Debug  bool
}

func Default() Config {
	return Config{
		GridSize:     types.DefaultGridSize,
		SurfaceSize:  types.DefaultSurfaceSize,
		TickInterval: types.DefaultTickInterval,
		Theme:        ui.Retro.Name,
		DataDir:      "data",
		Sound:        true,
		Volume:       0.5,
	}
}

// Parse reads flags from args (without the program name) on top of the defaults
func Parse(name string, args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "Number of cells per board side")
	fs.IntVar(&cfg.SurfaceSize, "size", cfg.SurfaceSize, "Board size in pixels (window host)")
	fs.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Time between snake moves")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Visual theme: "+strings.Join(ui.ThemeNames(), "|"))
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "Directory for the high score, stats and logs")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for a time based one")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play sound effects")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Sound volume between 0 and 1")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write a debug log under the data directory")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.GridSize < 5 || c.GridSize > 100:
		return fmt.Errorf("grid must be between 5 and 100, got %d", c.GridSize)
	case c.SurfaceSize < c.GridSize:
		return fmt.Errorf("size %d is smaller than the grid %d", c.SurfaceSize, c.GridSize)
	case c.TickInterval < 10*time.Millisecond || c.TickInterval > 2*time.Second:
		return fmt.Errorf("tick must be between 10ms and 2s, got %s", c.TickInterval)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("volume must be between 0 and 1, got %g", c.Volume)
	case c.DataDir == "":
		return errors.New("data directory must not be empty")
	}
	if _, ok := ui.ThemeByName(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q, want one of %s", c.Theme, strings.Join(ui.ThemeNames(), ", "))
	}
	return nil
}

func (c Config) StoragePath() string {
	return filepath.Join(c.DataDir, "storage.json")
}

func (c Config) StatsPath() string {
	return filepath.Join(c.DataDir, "stats.json")
}

func (c Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}
