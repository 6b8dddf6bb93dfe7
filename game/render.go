package game

import (
	"github.com/jakecoffman/cp"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

// Renderable is a read-only view of one drawable entity.
type Renderable struct {
	Entity    ecs.Entity
	Kind      component.SpriteKind
	Side      component.Side
	Variant   int
	Highlight bool
	Position  cp.Vector
	Scale     cp.Vector
	Angle     float64
}

// Renderables lists every entity with both Motion and Sprite, in sprite
// insertion order.
func (g *Game) Renderables() []Renderable {
	if g == nil {
		return nil
	}
	var out []Renderable
	ecs.ForEach2(g.world, component.SpriteComponent.Kind(), component.MotionComponent.Kind(), func(e ecs.Entity, s *component.Sprite, m *component.Motion) {
		out = append(out, Renderable{
			Entity:    e,
			Kind:      s.Kind,
			Side:      s.Side,
			Variant:   s.Variant,
			Highlight: s.Highlight,
			Position:  m.Position,
			Scale:     m.Scale,
			Angle:     m.Angle,
		})
	})
	return out
}
