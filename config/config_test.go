package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Match.RecordsKeep != 10 || cfg.Simulation.MaxFrameMS != 250 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.toml")
	body := `
[simulation]
max_step_ms = 10
seed = 42

[match]
rounds = 3

[logging]
format = "json"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Simulation.MaxStepMS != 10 || cfg.Simulation.Seed != 42 {
		t.Fatalf("simulation not decoded: %+v", cfg.Simulation)
	}
	if cfg.Match.Rounds != 3 || cfg.Match.RecordsKeep != 10 {
		t.Fatalf("match not decoded on top of defaults: %+v", cfg.Match)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Fatalf("logging not decoded on top of defaults: %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero_step":    "[simulation]\nmax_step_ms = 0\n",
		"frame_small":  "[simulation]\nmax_step_ms = 20\nmax_frame_ms = 10\n",
		"bad_keep":     "[match]\nrecords_keep = 0\n",
		"syntax_error": "[simulation\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "arena.toml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}
