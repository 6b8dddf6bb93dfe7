package system

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/entity"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

// HazardSystem drives every LaserHazard: it counts down the cooldown,
// evaluates the decision tree and advances a pending attack.
type HazardSystem struct {
	tuning *prefabs.Tuning
	combat *Combat
	logger *zap.Logger
	tree   *Node
	script *RangeScript

	// LastAction is the action each hazard took on the latest tick.
	LastAction map[ecs.Entity]string
}

func NewHazardSystem(tuning *prefabs.Tuning, combat *Combat, logger *zap.Logger) *HazardSystem {
	if tuning == nil {
		tuning = prefabs.DefaultTuning()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if combat == nil {
		combat = &Combat{DeathTimerMS: tuning.Match.DeathTimerMS, Logger: logger}
	}
	s := &HazardSystem{
		tuning:     tuning,
		combat:     combat,
		logger:     logger,
		tree:       NewHazardTree(),
		LastAction: map[ecs.Entity]string{},
	}
	if src := tuning.Hazard.InRangeScript; src != "" {
		script, err := CompileRangeScript(src)
		if err != nil {
			logger.Error("hazard range script disabled", zap.Error(err))
		} else {
			s.script = script
		}
	}
	return s
}

func (s *HazardSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaMS()

	ecs.ForEach(w, component.LaserHazardComponent.Kind(), func(e ecs.Entity, h *component.LaserHazard) {
		m := requireMotion(w, e, "hazard")
		if h.Cooldown > 0 {
			h.Cooldown = max(0, h.Cooldown-dt)
		}

		ctx := &HazardContext{World: w, Entity: e, Hazard: h, Motion: m}
		if s.script != nil {
			ctx.InRange = s.scriptInRange
		}
		action := s.tree.Evaluate(ctx)
		s.LastAction[e] = action

		s.advanceAttack(w, e, h, dt)
		h.Phase = hazardPhase(h, action)
	})
}

func (s *HazardSystem) scriptInRange(ctx *HazardContext, target cp.Vector, dist float64) bool {
	ok, err := s.script.Eval(dist, ctx.Hazard.Range, ctx.Hazard.Cooldown, ctx.Motion.Position, target)
	if err != nil {
		s.logger.Warn("hazard range script failed, using range check", zap.Error(err))
		return dist <= ctx.Hazard.Range
	}
	return ok
}

// advanceAttack runs the windup, beam and recovery of a locked attack. The
// cooldown starts only once the attack has finished.
func (s *HazardSystem) advanceAttack(w *ecs.World, e ecs.Entity, h *component.LaserHazard, dt float64) {
	if !h.Firing {
		return
	}
	h.Elapsed += dt
	if h.Beam == 0 && h.Elapsed >= h.WindupMS {
		s.fire(w, e, h)
	}
	if h.Beam != 0 && h.Elapsed >= h.WindupMS+h.AttackMS {
		h.Firing = false
		h.Elapsed = 0
		h.Beam = 0
		h.Cooldown = h.CooldownMS
	}
}

func (s *HazardSystem) fire(w *ecs.World, e ecs.Entity, h *component.LaserHazard) {
	beam, err := entity.NewBeam(w, s.tuning, h.Origin, h.Target)
	if err != nil {
		s.logger.Error("spawn hazard beam", zap.Error(err))
		h.Firing = false
		h.Elapsed = 0
		h.Cooldown = h.CooldownMS
		return
	}
	h.Beam = uint64(beam)
	b := ecs.MustGet(w, beam, component.BeamComponent.Kind())

	var hits []component.Side
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(pe ecs.Entity, p *component.Player) {
		if p.Health <= 0 {
			return
		}
		pm, ok := ecs.Get(w, pe, component.MotionComponent.Kind())
		if !ok || SegmentDistance(pm.Position, h.Origin, h.Target) > h.HitRadius {
			return
		}
		if !b.Damagable.Take(p.Side) {
			return
		}
		hits = append(hits, p.Side)
		s.combat.Damage(w, pe, b.Damage)
	})
	w.Events().Emit(EventHazardFired, HazardFired{Hazard: e, Beam: beam, Hits: hits})
}

func hazardPhase(h *component.LaserHazard, action string) component.HazardPhase {
	switch {
	case h.Firing && h.Beam == 0:
		return component.HazardWindup
	case h.Firing:
		return component.HazardAttack
	case h.Cooldown > 0:
		return component.HazardCooldown
	case action == "track":
		return component.HazardTrack
	default:
		return component.HazardIdle
	}
}

// SegmentDistance returns the distance from p to the segment ab.
func SegmentDistance(p, a, b cp.Vector) float64 {
	ab := b.Sub(a)
	l := ab.LengthSq()
	if l == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l
	t = max(0, min(1, t))
	return p.Distance(a.Add(ab.Mult(t)))
}
