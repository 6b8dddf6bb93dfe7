package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/entity"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/levels"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

// newArena returns a seeded world holding only the match singleton.
func newArena(t *testing.T) (*ecs.World, *prefabs.Tuning) {
	t.Helper()
	w := ecs.NewWorldWithSeed(7)
	tun := prefabs.DefaultTuning()
	_, err := entity.NewMatch(w, tun, 0)
	require.NoError(t, err)
	return w, tun
}

func body(t *testing.T, w *ecs.World, pos, scale cp.Vector) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{Position: pos, Scale: scale}))
	return e
}

func player(t *testing.T, w *ecs.World, tun *prefabs.Tuning, side component.Side, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayer(w, tun, side, x, y)
	require.NoError(t, err)
	return e
}

func block(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewBlock(w, 0, levels.Platform{Rect: levels.Rect{X: x, Y: y, W: width, H: height}})
	require.NoError(t, err)
	return e
}

func bullet(t *testing.T, w *ecs.World, tun *prefabs.Tuning, side component.Side, x, y, vx float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewProjectile(w, tun.Pistol.ProjectileSpec, component.ProjectileBullet, side, cp.Vector{X: x, Y: y}, cp.Vector{X: vx})
	require.NoError(t, err)
	return e
}

// collide runs one detection and resolution pass.
type collide struct {
	buf     *CollisionBuffer
	detect  *CollisionSystem
	resolve *ResolveSystem
}

func newCollide(tun *prefabs.Tuning) *collide {
	buf := NewCollisionBuffer()
	return &collide{
		buf:     buf,
		detect:  NewCollisionSystem(buf),
		resolve: NewResolveSystem(buf, tun, nil, nil),
	}
}

func (c *collide) pass(w *ecs.World) {
	c.detect.Update(w)
	c.resolve.Update(w)
}

func mustPlayer(t *testing.T, w *ecs.World, e ecs.Entity) *component.Player {
	t.Helper()
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	require.True(t, ok)
	return p
}

func mustMotion(t *testing.T, w *ecs.World, e ecs.Entity) *component.Motion {
	t.Helper()
	m, ok := ecs.Get(w, e, component.MotionComponent.Kind())
	require.True(t, ok)
	return m
}

func eventsOf(w *ecs.World, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, ev := range w.Events().Drain() {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}
