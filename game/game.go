// Package game wires the arena simulation: world, systems, stage selection
// and event fan-out. It has no rendering or input dependencies.
package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/entity"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/system"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/levels"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/record"
)

var ErrInvalidStageIndex = errors.New("game: invalid stage index")

const (
	DefaultMaxStepMS  = 1000.0 / 60
	DefaultMaxFrameMS = 250.0
)

// Recorder persists one summary per finished match.
type Recorder interface {
	Append(record.Summary) error
}

type Options struct {
	Tuning *prefabs.Tuning
	// Stages defaults to the embedded stage table.
	Stages levels.Table
	Stage  int
	// Rounds overrides the tuning's rounds per match when positive.
	Rounds int
	Seed   int64
	// MaxStepMS bounds one integration step; MaxFrameMS clamps one Step call.
	MaxStepMS  float64
	MaxFrameMS float64
	Recorder   Recorder
	Logger     *zap.Logger
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	lifecycle *system.LifecycleSystem
	tuning    *prefabs.Tuning
	stages    levels.Table
	stage     int
	players   [2]ecs.Entity

	maxStepMS  float64
	maxFrameMS float64

	subscribers []func(ecs.Event)
	recorder    Recorder
	logger      *zap.Logger
}

func New(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tuning := prefabs.DefaultTuning()
	if opts.Tuning != nil {
		// the game owns its tuning; ReloadTuning writes through it
		owned := *opts.Tuning
		tuning = &owned
	}
	stages := opts.Stages
	if stages == nil {
		var err error
		if stages, err = levels.LoadTable(levels.LevelsFS); err != nil {
			return nil, fmt.Errorf("game: load stages: %w", err)
		}
	}
	if err := stages.Validate(tuning.Arena.Width, tuning.Arena.Height); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if opts.Stage < 0 || opts.Stage >= len(stages) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidStageIndex, opts.Stage, len(stages))
	}

	g := &Game{
		world:      ecs.NewWorldWithSeed(opts.Seed),
		tuning:     tuning,
		stages:     stages,
		stage:      opts.Stage,
		maxStepMS:  opts.MaxStepMS,
		maxFrameMS: opts.MaxFrameMS,
		recorder:   opts.Recorder,
		logger:     logger,
	}
	if g.maxStepMS <= 0 {
		g.maxStepMS = DefaultMaxStepMS
	}
	if g.maxFrameMS < g.maxStepMS {
		g.maxFrameMS = max(DefaultMaxFrameMS, g.maxStepMS)
	}

	if _, err := entity.NewMatch(g.world, tuning, opts.Rounds); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	st := &stages[opts.Stage]
	for i, side := range []component.Side{component.SideBlue, component.SideRed} {
		pt := st.Spawns.Blue
		if side == component.SideRed {
			pt = st.Spawns.Red
		}
		e, err := entity.NewPlayer(g.world, tuning, side, pt.X, pt.Y)
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		g.players[i] = e
	}
	if err := entity.BuildStage(g.world, tuning, opts.Stage, st); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g.buildScheduler()
	logger.Info("game ready", zap.String("stage", st.Name), zap.Int("stages", len(stages)))
	return g, nil
}

// buildScheduler registers the per-tick pipeline in order.
func (g *Game) buildScheduler() {
	combat := &system.Combat{DeathTimerMS: g.tuning.Match.DeathTimerMS, Logger: g.logger}
	buf := system.NewCollisionBuffer()
	g.lifecycle = system.NewLifecycleSystem(g.tuning, g.logger)
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		g.lifecycle,
		system.NewHazardSystem(g.tuning, combat, g.logger),
		system.NewWeaponSystem(g.tuning, g.logger),
		system.NewLifetimeSystem(),
		system.NewItemSpawnSystem(g.tuning, g.logger),
		system.NewMotionSystem(),
		system.NewBoundsSystem(),
		system.NewCollisionSystem(buf),
		system.NewResolveSystem(buf, g.tuning, combat, g.logger),
		system.NewPortalSystem(),
	)
}

// Step advances the simulation by elapsedMS, clamped to the frame limit and
// split into steps no longer than the step limit. Events raised by each step
// are delivered before the next one runs.
func (g *Game) Step(elapsedMS float64) {
	if g == nil || elapsedMS <= 0 {
		return
	}
	if elapsedMS > g.maxFrameMS {
		g.logger.Debug("frame clamped", zap.Float64("elapsed_ms", elapsedMS), zap.Float64("max_frame_ms", g.maxFrameMS))
		elapsedMS = g.maxFrameMS
	}
	for elapsedMS > 0 {
		dt := min(elapsedMS, g.maxStepMS)
		g.scheduler.Step(g.world, dt)
		elapsedMS -= dt
		g.dispatch()
	}
}

func (g *Game) dispatch() {
	for _, ev := range g.world.Events().Drain() {
		if ev.Type == system.EventMatchEnded {
			if ended, ok := ev.Data.(system.MatchEnded); ok {
				g.recordMatch(ended)
			}
		}
		for _, fn := range g.subscribers {
			fn(ev)
		}
	}
}

// recordMatch stores rounds lost per side: each side lost the rounds its
// opponent won.
func (g *Game) recordMatch(ended system.MatchEnded) {
	if g.recorder == nil {
		return
	}
	sum := record.Summary{
		BlueLost: ended.Wins[component.SideRed.Index()],
		RedLost:  ended.Wins[component.SideBlue.Index()],
	}
	if err := g.recorder.Append(sum); err != nil {
		g.logger.Error("record match", zap.Error(err))
	}
}

// Subscribe registers fn for every domain event. Delivery is synchronous and
// the simulation never depends on it.
func (g *Game) Subscribe(fn func(ecs.Event)) {
	if g == nil || fn == nil {
		return
	}
	g.subscribers = append(g.subscribers, fn)
}

// SetIntent replaces the held moves of side and latches its edge-triggered
// actions until the next step consumes them.
func (g *Game) SetIntent(side component.Side, in component.Intent) bool {
	e, ok := g.Player(side)
	if !ok {
		return false
	}
	cur, ok := ecs.Get(g.world, e, component.IntentComponent.Kind())
	if !ok {
		return false
	}
	cur.MoveLeft = in.MoveLeft
	cur.MoveRight = in.MoveRight
	cur.Jump = cur.Jump || in.Jump
	cur.FirePrimary = cur.FirePrimary || in.FirePrimary
	cur.FireSecondary = cur.FireSecondary || in.FireSecondary
	cur.UseItem = cur.UseItem || in.UseItem
	return true
}

// Player returns the entity playing side.
func (g *Game) Player(side component.Side) (ecs.Entity, bool) {
	if g == nil || side == component.SideNone {
		return 0, false
	}
	e := g.players[side.Index()]
	return e, ecs.IsAlive(g.world, e)
}

// SelectStage tears down the current layout, builds stage i and starts a new
// match. An invalid index or stage leaves the world untouched.
func (g *Game) SelectStage(i int) error {
	if i < 0 || i >= len(g.stages) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidStageIndex, i, len(g.stages))
	}
	st := &g.stages[i]
	if err := st.Validate(g.tuning.Arena.Width, g.tuning.Arena.Height); err != nil {
		return fmt.Errorf("game: select stage %d: %w", i, err)
	}

	entity.ClearStage(g.world)
	if err := entity.BuildStage(g.world, g.tuning, i, st); err != nil {
		entity.ClearStage(g.world)
		if prev := g.stage; prev >= 0 && prev < len(g.stages) {
			if rerr := entity.BuildStage(g.world, g.tuning, prev, &g.stages[prev]); rerr != nil {
				g.logger.Error("restore stage", zap.Int("stage", prev), zap.Error(rerr))
			}
		}
		return fmt.Errorf("game: select stage %d: %w", i, err)
	}
	g.stage = i
	if m, ok := entity.Match(g.world); ok {
		entity.ResetMatch(m)
	}
	g.lifecycle.RestartRound(g.world)
	g.world.Events().Drain()
	g.logger.Info("stage selected", zap.Int("index", i), zap.String("name", st.Name))
	return nil
}

// ReloadStages swaps in a new stage table and rebuilds the current stage.
// The current index falls back to 0 when the new table is shorter.
func (g *Game) ReloadStages(table levels.Table) error {
	if err := table.Validate(g.tuning.Arena.Width, g.tuning.Arena.Height); err != nil {
		return fmt.Errorf("game: reload stages: %w", err)
	}
	prev := g.stages
	g.stages = table
	idx := g.stage
	if idx >= len(table) {
		idx = 0
	}
	if err := g.SelectStage(idx); err != nil {
		g.stages = prev
		return err
	}
	return nil
}

// ReloadTuning copies t over the live tuning. Systems pick the new values up
// on their next step; entities already spawned keep theirs until rebuilt.
func (g *Game) ReloadTuning(t *prefabs.Tuning) {
	if g == nil || t == nil {
		return
	}
	*g.tuning = *t
}

func (g *Game) World() *ecs.World    { return g.world }
func (g *Game) Stage() int           { return g.stage }
func (g *Game) Stages() levels.Table { return g.stages }

// Match returns a copy of the match state.
func (g *Game) Match() component.MatchState {
	if m, ok := entity.Match(g.world); ok {
		return *m
	}
	return component.MatchState{}
}

// Screen returns a copy of the screen state.
func (g *Game) Screen() component.ScreenState {
	if s, ok := entity.Screen(g.world); ok {
		return *s
	}
	return component.ScreenState{}
}
