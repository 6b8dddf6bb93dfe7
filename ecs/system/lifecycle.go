package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/entity"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

// LifecycleSystem counts down death timers, darkens the screen while one
// runs and restarts the round when one expires. A round restart after the
// final round also starts a new match.
type LifecycleSystem struct {
	tuning *prefabs.Tuning
	logger *zap.Logger
}

func NewLifecycleSystem(tuning *prefabs.Tuning, logger *zap.Logger) *LifecycleSystem {
	if tuning == nil {
		tuning = prefabs.DefaultTuning()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LifecycleSystem{tuning: tuning, logger: logger}
}

func (s *LifecycleSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaMS()

	remaining := math.Inf(1)
	running, expired := false, false
	ecs.ForEach(w, component.DeathTimerComponent.Kind(), func(_ ecs.Entity, t *component.DeathTimer) {
		t.CounterMS -= dt
		if t.CounterMS <= 0 {
			expired = true
			return
		}
		running = true
		remaining = math.Min(remaining, t.CounterMS)
	})

	screen, hasScreen := entity.Screen(w)
	if hasScreen {
		screen.DarkenFactor = 0
		if running && s.tuning.Match.DeathTimerMS > 0 {
			screen.DarkenFactor = math.Max(0, math.Min(1, 1-remaining/s.tuning.Match.DeathTimerMS))
		}
	}

	if expired {
		s.RestartRound(w)
	}
}

// RestartRound returns players to their spawns and clears transient entities.
// When the match has reached its summary the tallies are reset first.
func (s *LifecycleSystem) RestartRound(w *ecs.World) {
	if match, ok := entity.Match(w); ok {
		if match.Phase == component.PhaseSummary {
			s.logger.Info("starting new match", zap.Int("rounds", match.Rounds))
			entity.ResetMatch(match)
		}
		match.Phase = component.PhasePlaying
	}
	entity.ClearTransient(w)
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, _ *component.Player) {
		if err := entity.ResetPlayer(w, e, s.tuning); err != nil {
			s.logger.Error("restart round", zap.Error(err))
		}
	})
	entity.ResetHazard(w, s.tuning)
	if screen, ok := entity.Screen(w); ok {
		screen.DarkenFactor = 0
	}
}
