package entity

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

var projectileSprites = map[component.ProjectileKind]component.SpriteKind{
	component.ProjectileBullet:   component.SpriteBullet,
	component.ProjectileBuckshot: component.SpriteBuckshot,
	component.ProjectileLaser:    component.SpriteLaser,
}

// NewProjectile fires a shot of kind from pos with velocity vel. The sprite
// is flipped to face the direction of travel.
func NewProjectile(w *ecs.World, spec prefabs.ProjectileSpec, kind component.ProjectileKind, side component.Side, pos, vel cp.Vector) (ecs.Entity, error) {
	scaleX := spec.Width
	if vel.X < 0 {
		scaleX = -scaleX
	}
	steps := []buildStep{
		with(component.MotionComponent.Kind(), &component.Motion{
			Position: pos,
			Velocity: vel,
			Scale:    cp.Vector{X: scaleX, Y: spec.Height},
			Angle:    math.Atan2(vel.Y, math.Abs(vel.X)) * sign(vel.X),
		}),
		with(component.ProjectileComponent.Kind(), &component.Projectile{Kind: kind, Side: side, Damage: spec.Damage}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Kind: projectileSprites[kind], Side: side}),
	}
	if spec.LifetimeMS > 0 {
		steps = append(steps, with(component.LifetimeComponent.Kind(), &component.Lifetime{CounterMS: spec.LifetimeMS}))
	}
	return spawn(w, "projectile", steps...)
}

// NewGrenade throws a grenade in the facing direction; it falls under gravity.
func NewGrenade(w *ecs.World, t *prefabs.Tuning, side component.Side, pos cp.Vector, facingRight bool) (ecs.Entity, error) {
	vx := t.Grenade.SpeedX
	if !facingRight {
		vx = -vx
	}
	return spawn(w, "grenade",
		with(component.MotionComponent.Kind(), &component.Motion{
			Position: pos,
			Velocity: cp.Vector{X: vx, Y: t.Grenade.SpeedY},
			Scale:    cp.Vector{X: t.Grenade.Size, Y: t.Grenade.Size},
		}),
		with(component.GravityComponent.Kind(), &component.Gravity{G: cp.Vector{Y: t.Arena.Gravity}}),
		with(component.GrenadeComponent.Kind(), &component.Grenade{Side: side}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Kind: component.SpriteGrenade, Side: side}),
	)
}

// NewExplosion spawns a short-lived blast that can hurt each side once.
func NewExplosion(w *ecs.World, t *prefabs.Tuning, side component.Side, pos cp.Vector) (ecs.Entity, error) {
	return spawn(w, "explosion",
		with(component.MotionComponent.Kind(), &component.Motion{
			Position: pos,
			Scale:    cp.Vector{X: t.Explosion.Size, Y: t.Explosion.Size},
		}),
		with(component.ExplosionComponent.Kind(), &component.Explosion{
			Side:      side,
			Damage:    t.Explosion.Damage,
			Damagable: component.Fresh(),
		}),
		with(component.LifetimeComponent.Kind(), &component.Lifetime{CounterMS: t.Explosion.LifetimeMS}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Kind: component.SpriteExplosion, Side: side}),
	)
}

// NewBeam spawns the hazard beam at from, travelling toward to.
func NewBeam(w *ecs.World, t *prefabs.Tuning, from, to cp.Vector) (ecs.Entity, error) {
	dir := to.Sub(from)
	if dir.LengthSq() > 0 {
		dir = dir.Normalize()
	}
	return spawn(w, "beam",
		with(component.MotionComponent.Kind(), &component.Motion{
			Position: from,
			Velocity: dir.Mult(t.Hazard.BeamSpeed),
			Scale:    cp.Vector{X: t.Hazard.BeamSize, Y: t.Hazard.BeamSize},
			Angle:    math.Atan2(dir.Y, dir.X),
		}),
		with(component.BeamComponent.Kind(), &component.Beam{Damage: t.Hazard.BeamDamage, Damagable: component.Fresh()}),
		with(component.LifetimeComponent.Kind(), &component.Lifetime{CounterMS: t.Hazard.AttackMS}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Kind: component.SpriteBeam}),
	)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
