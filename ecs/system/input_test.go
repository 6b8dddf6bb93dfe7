package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

func TestInputMovesAndFaces(t *testing.T) {
	w, tun := newArena(t)
	p := player(t, w, tun, component.SideBlue, 300, 300)
	in := ecs.MustGet(w, p, component.IntentComponent.Kind())
	in.MoveLeft = true
	w.SetDeltaMS(100)

	NewInputSystem().Update(w)

	m := mustMotion(t, w, p)
	pl := mustPlayer(t, w, p)
	assert.InDelta(t, -tun.Player.MoveAccel*0.1, m.Velocity.X, 1e-9)
	assert.Less(t, m.Scale.X, 0.0)
	assert.False(t, pl.Direction)
	assert.True(t, pl.IsMoving)
	assert.False(t, ecs.MustGet(w, p, component.GravityComponent.Kind()).Drag, "no drag while moving")

	in.MoveLeft = false
	NewInputSystem().Update(w)
	assert.False(t, pl.IsMoving)
	assert.True(t, ecs.MustGet(w, p, component.GravityComponent.Kind()).Drag)
}

func TestJumpConsumesJumpable(t *testing.T) {
	w, tun := newArena(t)
	p := player(t, w, tun, component.SideBlue, 300, 300)
	in := ecs.MustGet(w, p, component.IntentComponent.Kind())
	pl := mustPlayer(t, w, p)
	m := mustMotion(t, w, p)
	sys := NewInputSystem()
	w.SetDeltaMS(16)

	in.Jump = true
	sys.Update(w)
	assert.Zero(t, m.Velocity.Y, "cannot jump in the air")
	assert.False(t, in.Jump, "jump is edge-triggered")

	pl.Jumpable = true
	in.Jump = true
	sys.Update(w)
	assert.Equal(t, tun.Player.JumpSpeed, m.Velocity.Y)
	assert.False(t, pl.Jumpable)
}

func TestImmovablePlayerIgnoresIntents(t *testing.T) {
	w, tun := newArena(t)
	p := player(t, w, tun, component.SideBlue, 300, 300)
	pl := mustPlayer(t, w, p)
	pl.Movable = false
	pl.Jumpable = true
	in := ecs.MustGet(w, p, component.IntentComponent.Kind())
	in.MoveRight, in.Jump, in.FirePrimary = true, true, true
	w.SetDeltaMS(16)

	NewInputSystem().Update(w)
	NewWeaponSystem(tun, nil).Update(w)

	assert.Zero(t, mustMotion(t, w, p).Velocity.X)
	assert.Zero(t, mustMotion(t, w, p).Velocity.Y)
	assert.Zero(t, ecs.Count(w, component.ProjectileComponent.Kind()))
}
