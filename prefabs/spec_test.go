package prefabs

import (
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestLoadTuningEmbedded(t *testing.T) {
	Dir = t.TempDir()
	tun, err := LoadTuning()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	if tun.Player.MaxVX != 350 || tun.Player.MaxVY != 700 {
		t.Fatalf("unexpected player caps %+v", tun.Player)
	}
	if tun.Shotgun.Pellets != 3 || tun.Shotgun.Ammo != 2 {
		t.Fatalf("inline weapon spec not decoded: %+v", tun.Shotgun)
	}
	if tun.Hazard.CooldownMS != 3000 {
		t.Fatalf("unexpected hazard cooldown %v", tun.Hazard.CooldownMS)
	}
}

func TestParseTuningKeepsDefaults(t *testing.T) {
	tun, err := ParseTuning([]byte("player:\n  health: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if tun.Player.Health != 3 {
		t.Fatalf("health override lost: %d", tun.Player.Health)
	}
	if tun.Player.JumpSpeed != DefaultTuning().Player.JumpSpeed {
		t.Fatalf("jump speed default lost: %v", tun.Player.JumpSpeed)
	}
}

func TestParseTuningRejectsGarbage(t *testing.T) {
	if _, err := ParseTuning([]byte("player: [")); err == nil {
		t.Fatal("expected error")
	}
}

func TestRelevant(t *testing.T) {
	cases := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"yaml_write", fsnotify.Event{Name: "levels/city.yaml", Op: fsnotify.Write}, true},
		{"yml_create", fsnotify.Event{Name: "a.YML", Op: fsnotify.Create}, true},
		{"script_write", fsnotify.Event{Name: "hazard.tengo", Op: fsnotify.Write}, true},
		{"chmod_ignored", fsnotify.Event{Name: "tuning.yaml", Op: fsnotify.Chmod}, false},
		{"other_ext", fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Relevant(tc.ev); got != tc.want {
				t.Fatalf("Relevant(%v) = %v, want %v", tc.ev, got, tc.want)
			}
		})
	}
}
