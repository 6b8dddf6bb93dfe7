package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window     WindowConfig     `toml:"window"`
	Simulation SimulationConfig `toml:"simulation"`
	Match      MatchConfig      `toml:"match"`
	Content    ContentConfig    `toml:"content"`
	Logging    LoggingConfig    `toml:"logging"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type SimulationConfig struct {
	// MaxStepMS bounds a single integration step; longer frames are split.
	MaxStepMS float64 `toml:"max_step_ms"`
	// MaxFrameMS clamps the time simulated for one frame.
	MaxFrameMS float64 `toml:"max_frame_ms"`
	Seed       int64   `toml:"seed"`
	Stage      int     `toml:"stage"`
}

type MatchConfig struct {
	Rounds      int    `toml:"rounds"` // 0 = use tuning
	RecordsPath string `toml:"records_path"`
	RecordsKeep int    `toml:"records_keep"`
}

type ContentConfig struct {
	StagesDir  string `toml:"stages_dir"`  // empty = embedded stages only
	PrefabsDir string `toml:"prefabs_dir"` // on-disk tuning override
	Watch      bool   `toml:"watch"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads path on top of the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Simulation.MaxStepMS <= 0 {
		return fmt.Errorf("simulation.max_step_ms must be positive, got %v", c.Simulation.MaxStepMS)
	}
	if c.Simulation.MaxFrameMS < c.Simulation.MaxStepMS {
		return fmt.Errorf("simulation.max_frame_ms (%v) below max_step_ms (%v)", c.Simulation.MaxFrameMS, c.Simulation.MaxStepMS)
	}
	if c.Match.Rounds < 0 {
		return fmt.Errorf("match.rounds must not be negative, got %d", c.Match.Rounds)
	}
	if c.Match.RecordsKeep <= 0 {
		return fmt.Errorf("match.records_keep must be positive, got %d", c.Match.RecordsKeep)
	}
	return nil
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Red and Blue Arena",
			Width:  1280,
			Height: 720,
		},
		Simulation: SimulationConfig{
			MaxStepMS:  1000.0 / 120,
			MaxFrameMS: 250,
			Seed:       1,
		},
		Match: MatchConfig{
			RecordsPath: "match_records.txt",
			RecordsKeep: 10,
		},
		Content: ContentConfig{
			StagesDir:  "levels",
			PrefabsDir: "prefabs",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
