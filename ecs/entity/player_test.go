package entity

import (
	"math"
	"testing"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

func TestResetPlayerRestoresRoundState(t *testing.T) {
	w := ecs.NewWorld()
	tun := prefabs.DefaultTuning()
	e, err := NewPlayer(w, tun, component.SideRed, 900, 600)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}

	p := ecs.MustGet(w, e, component.PlayerComponent.Kind())
	m := ecs.MustGet(w, e, component.MotionComponent.Kind())
	p.Health = 0
	p.Movable = false
	p.Items.Push(component.ItemHeal)
	m.Position.X = 10
	m.Angle = math.Pi / 2
	m.Scale.Y /= 2
	if err := ecs.Add(w, e, component.DeathTimerComponent.Kind(), &component.DeathTimer{CounterMS: 10}); err != nil {
		t.Fatal(err)
	}
	ecs.MustGet(w, e, component.WeaponsComponent.Kind()).Primary.Ammo = 0

	if err := ResetPlayer(w, e, tun); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if p.Health != p.MaxHealth || !p.Movable || p.Items.Len() != 0 {
		t.Fatalf("player not restored: %+v", p)
	}
	if m.Position.X != 900 || m.Angle != 0 || m.Scale.X != -tun.Player.Width || m.Scale.Y != tun.Player.Height {
		t.Fatalf("motion not restored: %+v", m)
	}
	if ecs.Has(w, e, component.DeathTimerComponent.Kind()) {
		t.Fatal("death timer survived the reset")
	}
	if got := ecs.MustGet(w, e, component.WeaponsComponent.Kind()).Primary.Ammo; got != tun.Pistol.Ammo {
		t.Fatalf("pistol ammo %d, want %d", got, tun.Pistol.Ammo)
	}
}

func TestResetPlayerIgnoresNonPlayers(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	if err := ResetPlayer(w, e, nil); err != nil {
		t.Fatalf("reset non-player: %v", err)
	}
	if ecs.Has(w, e, component.WeaponsComponent.Kind()) {
		t.Fatal("weapons added to a non-player")
	}
}
