package system

import (
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

// LifetimeSystem destroys entities whose Lifetime has run out.
type LifetimeSystem struct{}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaMS()
	ecs.ForEach(w, component.LifetimeComponent.Kind(), func(e ecs.Entity, l *component.Lifetime) {
		l.CounterMS -= dt
		if l.CounterMS <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}
