package entity

import (
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

// NewMatch spawns the world singleton that carries match, screen and arena state.
func NewMatch(w *ecs.World, t *prefabs.Tuning, rounds int) (ecs.Entity, error) {
	if rounds <= 0 {
		rounds = t.Match.Rounds
	}
	return spawn(w, "match",
		with(component.MatchStateComponent.Kind(), &component.MatchState{
			Rounds:          rounds,
			RoundsRemaining: rounds,
			Phase:           component.PhasePlaying,
		}),
		with(component.ScreenStateComponent.Kind(), &component.ScreenState{}),
		with(component.ArenaComponent.Kind(), &component.Arena{Width: t.Arena.Width, Height: t.Arena.Height}),
	)
}

// ResetMatch clears tallies and starts a fresh match, keeping practice mode.
func ResetMatch(m *component.MatchState) {
	if m == nil {
		return
	}
	m.RoundsRemaining = m.Rounds
	m.Wins = [2]int{}
	m.Phase = component.PhasePlaying
	m.Winner = component.SideNone
}

// Match returns the match singleton.
func Match(w *ecs.World) (*component.MatchState, bool) {
	e, ok := ecs.First(w, component.MatchStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.MatchStateComponent.Kind())
}

// Screen returns the screen singleton.
func Screen(w *ecs.World) (*component.ScreenState, bool) {
	e, ok := ecs.First(w, component.ScreenStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.ScreenStateComponent.Kind())
}

// ArenaOf returns the arena singleton.
func ArenaOf(w *ecs.World) (*component.Arena, bool) {
	e, ok := ecs.First(w, component.ArenaComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.ArenaComponent.Kind())
}
