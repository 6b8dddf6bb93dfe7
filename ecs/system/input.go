package system

import (
	"math"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

// InputSystem applies movement and jump intents.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaSeconds()

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.IntentComponent.Kind(), func(e ecs.Entity, p *component.Player, in *component.Intent) {
		m := requireMotion(w, e, "player")
		g, _ := ecs.Get(w, e, component.GravityComponent.Kind())

		if !p.Movable {
			in.Jump = false
			p.IsMoving = false
			if g != nil {
				g.Drag = true
			}
			return
		}

		switch {
		case in.MoveLeft && !in.MoveRight:
			face(p, m, false)
			m.Velocity.X -= p.MoveAccel * dt
			p.IsMoving = true
		case in.MoveRight && !in.MoveLeft:
			face(p, m, true)
			m.Velocity.X += p.MoveAccel * dt
			p.IsMoving = true
		default:
			p.IsMoving = false
		}
		if g != nil {
			g.Drag = !p.IsMoving
		}

		if in.Jump {
			if p.Jumpable {
				m.Velocity.Y = p.JumpSpeed
				p.Jumpable = false
			}
			in.Jump = false
		}
	})
}

func face(p *component.Player, m *component.Motion, right bool) {
	p.Direction = right
	if right {
		m.Scale.X = math.Abs(m.Scale.X)
	} else {
		m.Scale.X = -math.Abs(m.Scale.X)
	}
}
