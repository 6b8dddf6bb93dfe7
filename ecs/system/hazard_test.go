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

func hazardContext(t *testing.T, w *ecs.World, e ecs.Entity) *HazardContext {
	t.Helper()
	return &HazardContext{
		World:  w,
		Entity: e,
		Hazard: ecs.MustGet(w, e, component.LaserHazardComponent.Kind()),
		Motion: mustMotion(t, w, e),
	}
}

func TestEvaluateWalksToAction(t *testing.T) {
	var ran []string
	act := func(name string) func(*HazardContext) {
		return func(*HazardContext) { ran = append(ran, name) }
	}
	yes := func(*HazardContext) bool { return true }
	no := func(*HazardContext) bool { return false }

	tree := Condition("a", yes,
		Condition("b", no, Action("x", act("x")), Action("y", act("y"))),
		Action("z", act("z")),
	)
	assert.Equal(t, "y", tree.Evaluate(nil))
	assert.Equal(t, []string{"y"}, ran)

	var empty *Node
	assert.Equal(t, "", empty.Evaluate(nil))
	assert.Equal(t, "", Condition("dangling", no, nil, nil).Evaluate(nil))
}

func TestHazardTreeBranches(t *testing.T) {
	tests := []struct {
		name     string
		playerAt cp.Vector
		cooldown float64
		firing   bool
		want     string
	}{
		{"in_range_attacks", cp.Vector{X: 640, Y: 300}, 0, false, "attack"},
		{"out_of_range_tracks", cp.Vector{X: 1200, Y: 650}, 0, false, "track"},
		{"cooling_down_idles", cp.Vector{X: 640, Y: 300}, 100, false, "idle"},
		{"firing_idles", cp.Vector{X: 640, Y: 300}, 0, true, "idle"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, tun := newArena(t)
			h, err := entity.NewHazard(w, tun, 0)
			require.NoError(t, err)
			player(t, w, tun, component.SideBlue, tc.playerAt.X, tc.playerAt.Y)
			ctx := hazardContext(t, w, h)
			ctx.Hazard.Cooldown = tc.cooldown
			ctx.Hazard.Firing = tc.firing

			assert.Equal(t, tc.want, NewHazardTree().Evaluate(ctx))
		})
	}
}

func TestHazardTreeIsDeterministicDuringCooldown(t *testing.T) {
	w, tun := newArena(t)
	h, err := entity.NewHazard(w, tun, 0)
	require.NoError(t, err)
	player(t, w, tun, component.SideBlue, 640, 200)
	player(t, w, tun, component.SideRed, 900, 600)
	ctx := hazardContext(t, w, h)
	ctx.Hazard.Cooldown = 500
	tree := NewHazardTree()

	for i := 0; i < 100; i++ {
		got := tree.Evaluate(ctx)
		require.Contains(t, []string{"idle", "track"}, got)
		require.False(t, ctx.Hazard.Firing)
	}

	ctx.Hazard.Cooldown = 0
	assert.Equal(t, "attack", tree.Evaluate(ctx))
	assert.True(t, ctx.Hazard.Firing)
	assert.Equal(t, cp.Vector{X: 640, Y: 200}, ctx.Hazard.Target, "locks the nearer player")
}

func TestTrackSteersTowardNearestPlayer(t *testing.T) {
	w, tun := newArena(t)
	h, err := entity.NewHazard(w, tun, 0)
	require.NoError(t, err)
	player(t, w, tun, component.SideBlue, 1240, 40)
	ctx := hazardContext(t, w, h)

	require.Equal(t, "track", NewHazardTree().Evaluate(ctx))
	assert.InDelta(t, tun.Hazard.Speed, ctx.Motion.Velocity.X, 1e-9)
	assert.InDelta(t, 0, ctx.Motion.Velocity.Y, 1e-9)
}

func TestHazardAttackSequence(t *testing.T) {
	w, tun := newArena(t)
	he, err := entity.NewHazard(w, tun, 0)
	require.NoError(t, err)
	pe := player(t, w, tun, component.SideBlue, 640, 300)
	sys := NewHazardSystem(tun, nil, nil)
	h := ecs.MustGet(w, he, component.LaserHazardComponent.Kind())
	w.SetDeltaMS(100)

	sys.Update(w)
	assert.Equal(t, "attack", sys.LastAction[he])
	assert.Equal(t, component.HazardWindup, h.Phase)
	assert.Zero(t, h.Cooldown, "cooldown waits for the attack to finish")

	for i := 0; i < 9; i++ {
		sys.Update(w)
	}
	assert.Equal(t, component.HazardAttack, h.Phase)
	assert.NotZero(t, h.Beam)
	assert.Equal(t, 1, ecs.Count(w, component.BeamComponent.Kind()))
	assert.Equal(t, tun.Player.Health-tun.Hazard.BeamDamage, mustPlayer(t, w, pe).Health)
	fired := eventsOf(w, EventHazardFired)
	require.Len(t, fired, 1)
	assert.Equal(t, []component.Side{component.SideBlue}, fired[0].Data.(HazardFired).Hits)

	for i := 0; i < 5; i++ {
		sys.Update(w)
	}
	assert.Equal(t, component.HazardCooldown, h.Phase)
	assert.False(t, h.Firing)
	assert.Equal(t, tun.Hazard.CooldownMS, h.Cooldown)

	sys.Update(w)
	assert.Equal(t, "idle", sys.LastAction[he])
	assert.Equal(t, tun.Player.Health-tun.Hazard.BeamDamage, mustPlayer(t, w, pe).Health, "one hit per attack")
}

func TestSegmentDistance(t *testing.T) {
	a, b := cp.Vector{}, cp.Vector{X: 10}
	assert.InDelta(t, 3, SegmentDistance(cp.Vector{X: 5, Y: 3}, a, b), 1e-9)
	assert.InDelta(t, 5, SegmentDistance(cp.Vector{X: -3, Y: 4}, a, b), 1e-9)
	assert.InDelta(t, 5, SegmentDistance(cp.Vector{X: 3, Y: 4}, a, a), 1e-9)
}

func TestRangeScript(t *testing.T) {
	s, err := CompileRangeScript("distance < max_range / 2 && target_y > hazard_y")
	require.NoError(t, err)

	ok, err := s.Eval(100, 400, 0, cp.Vector{Y: 40}, cp.Vector{Y: 300})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Eval(300, 400, 0, cp.Vector{Y: 40}, cp.Vector{Y: 300})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CompileRangeScript("distance <")
	assert.Error(t, err)
	_, err = CompileRangeScript("  ")
	assert.Error(t, err)

	notBool, err := CompileRangeScript("distance + 1")
	require.NoError(t, err)
	_, err = notBool.Eval(1, 1, 0, cp.Vector{}, cp.Vector{})
	assert.Error(t, err)
}

func TestRangeScriptWithSomeVariables(t *testing.T) {
	near, err := CompileRangeScript("distance < 50")
	require.NoError(t, err)

	ok, err := near.Eval(10, 400, 0, cp.Vector{}, cp.Vector{})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = near.Eval(80, 400, 0, cp.Vector{}, cp.Vector{})
	require.NoError(t, err)
	assert.False(t, ok)

	every, err := CompileRangeScript("distance <= max_range && cooldown_ms <= 0 && math.abs(target_x - hazard_x) < 100 && target_y > hazard_y")
	require.NoError(t, err)
	ok, err = every.Eval(200, 400, 0, cp.Vector{X: 600, Y: 40}, cp.Vector{X: 650, Y: 300})
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = every.Eval(200, 400, 0, cp.Vector{X: 600, Y: 40}, cp.Vector{X: 900, Y: 300})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHazardSystemUsesRangeScript(t *testing.T) {
	w, tun := newArena(t)
	tun.Hazard.InRangeScript = "target_y > 10000"
	he, err := entity.NewHazard(w, tun, 0)
	require.NoError(t, err)
	player(t, w, tun, component.SideBlue, 640, 300)
	sys := NewHazardSystem(tun, nil, nil)
	w.SetDeltaMS(16)

	sys.Update(w)
	assert.Equal(t, "track", sys.LastAction[he])
}

func TestHazardSystemAttacksWhenScriptAllows(t *testing.T) {
	w, tun := newArena(t)
	tun.Hazard.InRangeScript = "target_y > hazard_y"
	he, err := entity.NewHazard(w, tun, 0)
	require.NoError(t, err)
	player(t, w, tun, component.SideBlue, 1200, 650)
	sys := NewHazardSystem(tun, nil, nil)
	w.SetDeltaMS(16)

	sys.Update(w)
	assert.Equal(t, "attack", sys.LastAction[he], "script overrides the distance check")
}

func TestHazardSystemIgnoresBrokenScript(t *testing.T) {
	w, tun := newArena(t)
	tun.Hazard.InRangeScript = "distance <"
	he, err := entity.NewHazard(w, tun, 0)
	require.NoError(t, err)
	player(t, w, tun, component.SideBlue, 640, 300)
	sys := NewHazardSystem(tun, nil, nil)
	w.SetDeltaMS(16)

	sys.Update(w)
	assert.Equal(t, "attack", sys.LastAction[he])
}
