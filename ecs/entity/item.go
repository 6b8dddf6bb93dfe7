package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

// NewItem places a pickup of kind at pos, owned by spawn point index point.
func NewItem(w *ecs.World, t *prefabs.Tuning, kind component.ItemKind, pos cp.Vector, point int) (ecs.Entity, error) {
	return spawn(w, "item",
		with(component.MotionComponent.Kind(), &component.Motion{
			Position: pos,
			Scale:    cp.Vector{X: t.Items.Size, Y: t.Items.Size},
		}),
		with(component.ItemComponent.Kind(), &component.Item{Kind: kind, SpawnPoint: point}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Kind: component.SpriteItem, Variant: int(kind)}),
	)
}
