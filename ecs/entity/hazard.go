package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

// NewHazard spawns the stage's laser hazard at its beam origin.
func NewHazard(w *ecs.World, t *prefabs.Tuning, index int) (ecs.Entity, error) {
	origin := cp.Vector{X: t.Hazard.OriginX, Y: t.Hazard.OriginY}
	return spawn(w, "hazard",
		with(component.MotionComponent.Kind(), &component.Motion{
			Position: origin,
			Scale:    cp.Vector{X: t.Hazard.Width, Y: t.Hazard.Height},
		}),
		with(component.LaserHazardComponent.Kind(), NewLaserHazard(t)),
		with(component.StageTagComponent.Kind(), &component.StageTag{Index: index}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Kind: component.SpriteHazard}),
	)
}

// NewLaserHazard returns idle hazard state configured from t.
func NewLaserHazard(t *prefabs.Tuning) *component.LaserHazard {
	return &component.LaserHazard{
		Phase:      component.HazardIdle,
		Speed:      t.Hazard.Speed,
		Range:      t.Hazard.Range,
		CooldownMS: t.Hazard.CooldownMS,
		WindupMS:   t.Hazard.WindupMS,
		AttackMS:   t.Hazard.AttackMS,
		HitRadius:  t.Hazard.HitRadius,
		BeamSpeed:  t.Hazard.BeamSpeed,
		BeamDamage: t.Hazard.BeamDamage,
		Origin:     cp.Vector{X: t.Hazard.OriginX, Y: t.Hazard.OriginY},
	}
}

// ResetHazard returns every hazard to its origin with no attack pending.
func ResetHazard(w *ecs.World, t *prefabs.Tuning) {
	ecs.ForEach(w, component.LaserHazardComponent.Kind(), func(e ecs.Entity, h *component.LaserHazard) {
		*h = *NewLaserHazard(t)
		if m, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok {
			m.Position = h.Origin
			m.Velocity = cp.Vector{}
		}
	})
}
