package entity

import (
	"fmt"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

type buildStep func(w *ecs.World, e ecs.Entity) error

// with returns a step that attaches v under kind.
func with[T any](kind component.ComponentKind[T], v *T) buildStep {
	return func(w *ecs.World, e ecs.Entity) error {
		if err := ecs.Add(w, e, kind, v); err != nil {
			return fmt.Errorf("add %T: %w", v, err)
		}
		return nil
	}
}

// spawn creates an entity and applies steps in order. A failing step destroys
// the partially built entity.
func spawn(w *ecs.World, name string, steps ...buildStep) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("%s: nil world", name)
	}
	e := ecs.CreateEntity(w)
	for _, step := range steps {
		if err := step(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("%s: %w", name, err)
		}
	}
	return e, nil
}
