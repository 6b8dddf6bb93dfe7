package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

// PlayerMesh is the unit outline used for the player-vs-portal check:
// the four corners and four edge midpoints.
func PlayerMesh() []cp.Vector {
	return []cp.Vector{
		{X: -0.5, Y: -0.5}, {X: 0, Y: -0.5}, {X: 0.5, Y: -0.5},
		{X: 0.5, Y: 0}, {X: 0.5, Y: 0.5}, {X: 0, Y: 0.5},
		{X: -0.5, Y: 0.5}, {X: -0.5, Y: 0},
	}
}

// NewPlayer spawns a combatant for side at (x, y). Blue faces right, red left.
func NewPlayer(w *ecs.World, t *prefabs.Tuning, side component.Side, x, y float64) (ecs.Entity, error) {
	if t == nil {
		t = prefabs.DefaultTuning()
	}
	facingRight := side != component.SideRed
	scaleX := t.Player.Width
	if !facingRight {
		scaleX = -scaleX
	}

	return spawn(w, "player",
		with(component.MotionComponent.Kind(), &component.Motion{
			Position: cp.Vector{X: x, Y: y},
			Scale:    cp.Vector{X: scaleX, Y: t.Player.Height},
		}),
		with(component.GravityComponent.Kind(), &component.Gravity{
			G:        cp.Vector{Y: t.Arena.Gravity},
			Drag:     true,
			DragRate: t.Arena.DragRate,
		}),
		with(component.PlayerComponent.Kind(), &component.Player{
			Side:      side,
			Health:    t.Player.Health,
			MaxHealth: t.Player.Health,
			Direction: facingRight,
			Movable:   true,
			JumpSpeed: t.Player.JumpSpeed,
			MoveAccel: t.Player.MoveAccel,
			MaxVX:     t.Player.MaxVX,
			MaxVY:     t.Player.MaxVY,
		}),
		with(component.WeaponsComponent.Kind(), newWeapons(t)),
		with(component.IntentComponent.Kind(), &component.Intent{}),
		with(component.MeshComponent.Kind(), &component.Mesh{Vertices: PlayerMesh()}),
		with(component.SpawnComponent.Kind(), &component.Spawn{X: x, Y: y}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Kind: component.SpritePlayer, Side: side}),
	)
}

func newWeapons(t *prefabs.Tuning) *component.Weapons {
	return &component.Weapons{
		Primary:   component.WeaponSlot{Ammo: t.Pistol.Ammo, MaxAmmo: t.Pistol.Ammo, ReloadMS: t.Pistol.ReloadMS},
		Secondary: component.WeaponSlot{Ammo: t.Shotgun.Ammo, MaxAmmo: t.Shotgun.Ammo, ReloadMS: t.Shotgun.ReloadMS},
	}
}

// ResetPlayer restores a player to its spawn for a new round. Entities
// without a Player component are left alone.
func ResetPlayer(w *ecs.World, e ecs.Entity, t *prefabs.Tuning) error {
	if w == nil {
		return nil
	}
	if t == nil {
		t = prefabs.DefaultTuning()
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return nil
	}
	m := ecs.MustGet(w, e, component.MotionComponent.Kind())

	p.Health = p.MaxHealth
	p.Movable = true
	p.Jumpable = false
	p.IsMoving = false
	p.Direction = p.Side != component.SideRed
	p.Items.Clear()

	scaleX := t.Player.Width
	if !p.Direction {
		scaleX = -scaleX
	}
	m.Scale = cp.Vector{X: scaleX, Y: t.Player.Height}
	m.Angle = 0
	m.Velocity = cp.Vector{}
	if sp, ok := ecs.Get(w, e, component.SpawnComponent.Kind()); ok {
		m.Position = cp.Vector{X: sp.X, Y: sp.Y}
	}
	if g, ok := ecs.Get(w, e, component.GravityComponent.Kind()); ok {
		g.Drag = true
	}

	ecs.Remove(w, e, component.DeathTimerComponent.Kind())
	ecs.Remove(w, e, component.GunTimerComponent.Kind())
	if err := ecs.Add(w, e, component.WeaponsComponent.Kind(), newWeapons(t)); err != nil {
		return fmt.Errorf("reset player %s: weapons: %w", e, err)
	}
	if err := ecs.Add(w, e, component.IntentComponent.Kind(), &component.Intent{}); err != nil {
		return fmt.Errorf("reset player %s: intent: %w", e, err)
	}
	return nil
}

// PlayerBySide returns the living player entity of side.
func PlayerBySide(w *ecs.World, side component.Side) (ecs.Entity, bool) {
	var found ecs.Entity
	ok := false
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		if !ok && p.Side == side {
			found, ok = e, true
		}
	})
	return found, ok
}
