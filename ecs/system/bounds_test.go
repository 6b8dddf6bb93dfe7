package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

func TestBoundsClampPlayersAndDropShots(t *testing.T) {
	w, tun := newArena(t)
	p := player(t, w, tun, component.SideBlue, -40, 300)
	mustMotion(t, w, p).Velocity = cp.Vector{X: -200}
	inside := bullet(t, w, tun, component.SideBlue, 640, 300, 700)
	outside := bullet(t, w, tun, component.SideBlue, tun.Arena.Width+50, 300, 700)

	NewBoundsSystem().Update(w)

	m := mustMotion(t, w, p)
	assert.Equal(t, tun.Player.Width/2, m.Position.X)
	assert.Zero(t, m.Velocity.X)
	assert.True(t, ecs.IsAlive(w, inside))
	assert.False(t, ecs.IsAlive(w, outside))
}

func TestLifetimeExpires(t *testing.T) {
	w, _ := newArena(t)
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.LifetimeComponent.Kind(), &component.Lifetime{CounterMS: 100})
	sys := NewLifetimeSystem()

	w.SetDeltaMS(60)
	sys.Update(w)
	assert.True(t, ecs.IsAlive(w, e))
	sys.Update(w)
	assert.False(t, ecs.IsAlive(w, e))
}

func TestPortalHighlightFades(t *testing.T) {
	w, _ := newArena(t)
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.PortalComponent.Kind(), &component.Portal{HighlightMS: 50})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Kind: component.SpritePortal, Highlight: true})
	w.SetDeltaMS(60)

	NewPortalSystem().Update(w)

	assert.Zero(t, ecs.MustGet(w, e, component.PortalComponent.Kind()).HighlightMS)
	assert.False(t, ecs.MustGet(w, e, component.SpriteComponent.Kind()).Highlight)
}
