package system

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/entity"
)

// Combat applies damage and the death transition. Projectile, explosion and
// beam hits all go through it.
type Combat struct {
	DeathTimerMS float64
	Logger       *zap.Logger
}

// Damage hurts a living player by amount. It returns false when nothing was
// applied (dead player, practice stage, non-positive amount).
func (c *Combat) Damage(w *ecs.World, e ecs.Entity, amount int) bool {
	if c == nil || w == nil || amount <= 0 {
		return false
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || p.Health <= 0 {
		return false
	}
	if m, ok := entity.Match(w); ok && m.Practice {
		return false
	}

	p.Health -= amount
	w.Events().Emit(EventDamageApplied, DamageApplied{
		Target: e,
		Side:   p.Side,
		Amount: amount,
		Health: max(p.Health, 0),
	})
	if p.Health <= 0 {
		c.Kill(w, e)
	}
	return true
}

// Kill runs the death transition once per death. A player that already has a
// death timer is only clamped to zero health.
func (c *Combat) Kill(w *ecs.World, e ecs.Entity) {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	p.Health = 0
	if ecs.Has(w, e, component.DeathTimerComponent.Kind()) {
		return
	}
	if err := ecs.Add(w, e, component.DeathTimerComponent.Kind(), &component.DeathTimer{CounterMS: c.DeathTimerMS}); err != nil {
		panic(fmt.Errorf("combat: arm death timer for %s: %w", e, err))
	}

	m := requireMotion(w, e, "player")
	m.Angle = math.Pi / 2
	m.Scale.Y /= 2
	m.Velocity.X = 0
	p.Movable = false
	p.IsMoving = false

	match, ok := entity.Match(w)
	if !ok || match.Phase != component.PhasePlaying {
		return
	}
	winner := p.Side.Opponent()
	match.RoundsRemaining--
	match.Wins[winner.Index()]++
	match.Phase = component.PhaseRoundOver
	w.Events().Emit(EventRoundEnded, RoundEnded{
		Loser:           p.Side,
		Winner:          winner,
		RoundsRemaining: match.RoundsRemaining,
	})
	c.log().Info("round ended",
		zap.Stringer("loser", p.Side),
		zap.Int("rounds_remaining", match.RoundsRemaining),
		zap.Int("blue_wins", match.WinsFor(component.SideBlue)),
		zap.Int("red_wins", match.WinsFor(component.SideRed)),
	)

	if match.RoundsRemaining > 0 {
		return
	}
	blue, red := match.WinsFor(component.SideBlue), match.WinsFor(component.SideRed)
	switch {
	case blue > red:
		match.Winner = component.SideBlue
	case red > blue:
		match.Winner = component.SideRed
	default:
		match.Winner = component.SideNone
	}
	match.Phase = component.PhaseSummary
	w.Events().Emit(EventMatchEnded, MatchEnded{Winner: match.Winner, Wins: match.Wins})
	c.log().Info("match ended", zap.Stringer("winner", match.Winner), zap.Int("blue_wins", blue), zap.Int("red_wins", red))
}

func (c *Combat) log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
