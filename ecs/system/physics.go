package system

import (
	"fmt"
	"math"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

// MotionSystem bounces moving blocks, integrates positions and applies
// gravity, drag and player speed caps.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (s *MotionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaSeconds()

	ecs.ForEach(w, component.BlockComponent.Kind(), func(e ecs.Entity, b *component.Block) {
		m := requireMotion(w, e, "block")
		switch b.Mode {
		case component.MoveHorizontal:
			if (m.Position.X <= b.Min && m.Velocity.X < 0) || (m.Position.X >= b.Max && m.Velocity.X > 0) {
				m.Velocity.X = -m.Velocity.X
			}
		case component.MoveVertical:
			if (m.Position.Y <= b.Min && m.Velocity.Y < 0) || (m.Position.Y >= b.Max && m.Velocity.Y > 0) {
				m.Velocity.Y = -m.Velocity.Y
			}
		}
	})

	ecs.ForEach(w, component.MotionComponent.Kind(), func(e ecs.Entity, m *component.Motion) {
		step := m.Velocity.Mult(dt)
		if b, ok := ecs.Get(w, e, component.BlockComponent.Kind()); ok {
			b.Travelled = step
		}
		m.Position = m.Position.Add(step)
	})

	ecs.ForEach(w, component.GravityComponent.Kind(), func(e ecs.Entity, g *component.Gravity) {
		m := requireMotion(w, e, "gravity")
		m.Velocity = m.Velocity.Add(g.G.Mult(dt))
		if g.Drag && g.DragRate > 0 {
			m.Velocity.X = applyDrag(m.Velocity.X, g.DragRate*dt)
		}
		if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			m.Velocity.X = clampAbs(m.Velocity.X, p.MaxVX)
			m.Velocity.Y = clampAbs(m.Velocity.Y, p.MaxVY)
		}
	})
}

// requireMotion fails fast when a physics participant has no Motion.
func requireMotion(w *ecs.World, e ecs.Entity, role string) *component.Motion {
	m, ok := ecs.Get(w, e, component.MotionComponent.Kind())
	if !ok {
		panic(fmt.Errorf("motion system: %s entity %s: %w", role, e, component.ErrComponentNotFound))
	}
	return m
}

// applyDrag moves v toward zero by amount without crossing it.
func applyDrag(v, amount float64) float64 {
	switch {
	case v > 0:
		return math.Max(0, v-amount)
	case v < 0:
		return math.Min(0, v+amount)
	default:
		return 0
	}
}

func clampAbs(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	return math.Max(-limit, math.Min(limit, v))
}
