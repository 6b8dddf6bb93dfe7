package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/entity"
)

func TestDeathTimerDarkensAndRestartsRound(t *testing.T) {
	w, tun := newArena(t)
	blue := player(t, w, tun, component.SideBlue, 100, 600)
	red := player(t, w, tun, component.SideRed, 900, 600)
	shot := bullet(t, w, tun, component.SideRed, 500, 300, 700)
	mustMotion(t, w, blue).Position = cp.Vector{X: 321, Y: 123}
	(&Combat{DeathTimerMS: tun.Match.DeathTimerMS}).Kill(w, blue)

	sys := NewLifecycleSystem(tun, nil)
	screen, ok := entity.Screen(w)
	require.True(t, ok)
	match, _ := entity.Match(w)

	w.SetDeltaMS(tun.Match.DeathTimerMS / 2)
	sys.Update(w)
	assert.InDelta(t, 0.5, screen.DarkenFactor, 1e-9)
	assert.Equal(t, component.PhaseRoundOver, match.Phase)

	w.SetDeltaMS(tun.Match.DeathTimerMS / 2)
	sys.Update(w)
	assert.Zero(t, screen.DarkenFactor)
	assert.Equal(t, component.PhasePlaying, match.Phase)
	assert.Equal(t, tun.Match.Rounds-1, match.RoundsRemaining, "tallies carry over between rounds")

	p := mustPlayer(t, w, blue)
	m := mustMotion(t, w, blue)
	assert.Equal(t, p.MaxHealth, p.Health)
	assert.True(t, p.Movable)
	assert.False(t, ecs.Has(w, blue, component.DeathTimerComponent.Kind()))
	assert.Equal(t, cp.Vector{X: 100, Y: 600}, m.Position)
	assert.Zero(t, m.Angle)
	assert.Equal(t, tun.Player.Height, m.Scale.Y)
	assert.Less(t, mustMotion(t, w, red).Scale.X, 0.0, "red faces left again")
	assert.False(t, ecs.IsAlive(w, shot))
}

func TestRestartAfterSummaryStartsNewMatch(t *testing.T) {
	w, tun := newArena(t)
	blue := player(t, w, tun, component.SideBlue, 100, 600)
	match, _ := entity.Match(w)
	match.RoundsRemaining = 1
	(&Combat{DeathTimerMS: 100}).Kill(w, blue)
	require.Equal(t, component.PhaseSummary, match.Phase)

	sys := NewLifecycleSystem(tun, nil)
	w.SetDeltaMS(150)
	sys.Update(w)

	assert.Equal(t, component.PhasePlaying, match.Phase)
	assert.Equal(t, match.Rounds, match.RoundsRemaining)
	assert.Equal(t, [2]int{}, match.Wins)
	assert.Equal(t, component.SideNone, match.Winner)
}

func TestRestartResetsHazard(t *testing.T) {
	w, tun := newArena(t)
	he, err := entity.NewHazard(w, tun, 0)
	require.NoError(t, err)
	h := ecs.MustGet(w, he, component.LaserHazardComponent.Kind())
	h.Firing = true
	h.Cooldown = 900
	mustMotion(t, w, he).Position = cp.Vector{X: 10, Y: 10}

	NewLifecycleSystem(tun, nil).RestartRound(w)

	assert.False(t, h.Firing)
	assert.Zero(t, h.Cooldown)
	assert.Equal(t, h.Origin, mustMotion(t, w, he).Position)
}
