package system

import (
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/entity"
)

// BoundsSystem keeps players inside the arena and removes shots that have
// left it.
type BoundsSystem struct{}

func NewBoundsSystem() *BoundsSystem {
	return &BoundsSystem{}
}

func (s *BoundsSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	arena, ok := entity.ArenaOf(w)
	if !ok || arena.Width <= 0 || arena.Height <= 0 {
		return
	}

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, _ *component.Player) {
		m := requireMotion(w, e, "player")
		h := m.HalfExtents()
		switch {
		case m.Position.X < h.X:
			m.Position.X = h.X
			m.Velocity.X = max(0, m.Velocity.X)
		case m.Position.X > arena.Width-h.X:
			m.Position.X = arena.Width - h.X
			m.Velocity.X = min(0, m.Velocity.X)
		}
		switch {
		case m.Position.Y < h.Y:
			m.Position.Y = h.Y
			m.Velocity.Y = max(0, m.Velocity.Y)
		case m.Position.Y > arena.Height-h.Y:
			m.Position.Y = arena.Height - h.Y
			m.Velocity.Y = min(0, m.Velocity.Y)
		}
	})

	for _, kind := range []component.Kind{
		component.ProjectileComponent.Kind(),
		component.GrenadeComponent.Kind(),
		component.BeamComponent.Kind(),
	} {
		for _, e := range w.Query(kind) {
			bb := requireMotion(w, e, "projectile").Bounds()
			if bb.R < 0 || bb.L > arena.Width || bb.T < 0 || bb.B > arena.Height {
				ecs.DestroyEntity(w, e)
			}
		}
	}
}
