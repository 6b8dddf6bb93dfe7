package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/levels"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

// NewBlock spawns ground or platform geometry. Moving blocks start travelling
// toward Max at speed.
func NewBlock(w *ecs.World, index int, p levels.Platform) (ecs.Entity, error) {
	mode, ok := component.ParseMoveMode(p.Moving)
	if !ok {
		return 0, fmt.Errorf("block: %w: moving mode %q", levels.ErrInvalidStage, p.Moving)
	}
	var vel cp.Vector
	switch mode {
	case component.MoveHorizontal:
		vel.X = p.Speed
	case component.MoveVertical:
		vel.Y = p.Speed
	}
	return spawn(w, "block",
		with(component.MotionComponent.Kind(), &component.Motion{
			Position: cp.Vector{X: p.X, Y: p.Y},
			Velocity: vel,
			Scale:    cp.Vector{X: p.W, Y: p.H},
		}),
		with(component.BlockComponent.Kind(), &component.Block{
			Width:  p.W,
			Height: p.H,
			Mode:   mode,
			Min:    p.Min,
			Max:    p.Max,
		}),
		with(component.StageTagComponent.Kind(), &component.StageTag{Index: index}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Kind: component.SpriteBlock, Variant: index}),
	)
}

func newPortal(w *ecs.World, t *prefabs.Tuning, index int, pt levels.Point) (ecs.Entity, error) {
	return spawn(w, "portal",
		with(component.MotionComponent.Kind(), &component.Motion{
			Position: cp.Vector{X: pt.X, Y: pt.Y},
			Scale:    cp.Vector{X: t.Portal.Width, Y: t.Portal.Height},
		}),
		with(component.PortalComponent.Kind(), &component.Portal{Width: t.Portal.Width, Height: t.Portal.Height}),
		with(component.StageTagComponent.Kind(), &component.StageTag{Index: index}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Kind: component.SpritePortal, Variant: index}),
	)
}

// NewPortalPair spawns two portals that name each other as partner.
func NewPortalPair(w *ecs.World, t *prefabs.Tuning, index int, pair levels.PortalPair) (ecs.Entity, ecs.Entity, error) {
	a, err := newPortal(w, t, index, pair.A)
	if err != nil {
		return 0, 0, err
	}
	b, err := newPortal(w, t, index, pair.B)
	if err != nil {
		ecs.DestroyEntity(w, a)
		return 0, 0, err
	}
	ecs.MustGet(w, a, component.PortalComponent.Kind()).Partner = uint64(b)
	ecs.MustGet(w, b, component.PortalComponent.Kind()).Partner = uint64(a)
	return a, b, nil
}

// NewItemSpawner records the stage's spawn points and mode. The first
// random-mode spawn waits MinSpawnMS.
func NewItemSpawner(w *ecs.World, t *prefabs.Tuning, index int, st *levels.Stage) (ecs.Entity, error) {
	points := make([]component.SpawnPoint, 0, len(st.ItemSpawns))
	for _, sp := range st.ItemSpawns {
		kind, _ := component.ParseItemKind(sp.Kind)
		points = append(points, component.SpawnPoint{Position: cp.Vector{X: sp.X, Y: sp.Y}, Kind: kind})
	}
	spawner := &component.ItemSpawner{
		Mode:      st.SpawnMode(),
		Points:    points,
		RespawnMS: t.Items.RespawnMS,
		MinMS:     t.Items.MinSpawnMS,
		MaxMS:     t.Items.MaxSpawnMS,
	}
	if spawner.Mode == component.SpawnRandom {
		spawner.TimerMS = spawner.MinMS
	}
	return spawn(w, "item spawner",
		with(component.ItemSpawnerComponent.Kind(), spawner),
		with(component.StageTagComponent.Kind(), &component.StageTag{Index: index}),
	)
}

// BuildStage spawns the layout of st: ground, platforms, portal pairs, the
// item spawner and, when enabled, the hazard. Player spawns are updated.
func BuildStage(w *ecs.World, t *prefabs.Tuning, index int, st *levels.Stage) error {
	if w == nil || st == nil {
		return fmt.Errorf("build stage: nil world or stage")
	}
	if t == nil {
		t = prefabs.DefaultTuning()
	}
	if _, err := NewBlock(w, index, levels.Platform{Rect: st.Ground}); err != nil {
		return fmt.Errorf("build stage %q: ground: %w", st.Name, err)
	}
	for i, p := range st.Platforms {
		if _, err := NewBlock(w, index, p); err != nil {
			return fmt.Errorf("build stage %q: platform %d: %w", st.Name, i, err)
		}
	}
	for i, pair := range st.Portals {
		if _, _, err := NewPortalPair(w, t, index, pair); err != nil {
			return fmt.Errorf("build stage %q: portal pair %d: %w", st.Name, i, err)
		}
	}
	if _, err := NewItemSpawner(w, t, index, st); err != nil {
		return fmt.Errorf("build stage %q: %w", st.Name, err)
	}
	if st.Hazard {
		if _, err := NewHazard(w, t, index); err != nil {
			return fmt.Errorf("build stage %q: %w", st.Name, err)
		}
	}

	spawns := map[component.Side]levels.Point{
		component.SideBlue: st.Spawns.Blue,
		component.SideRed:  st.Spawns.Red,
	}
	var spawnErr error
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		pt := spawns[p.Side]
		if err := ecs.Add(w, e, component.SpawnComponent.Kind(), &component.Spawn{X: pt.X, Y: pt.Y}); err != nil && spawnErr == nil {
			spawnErr = fmt.Errorf("build stage %q: %s spawn: %w", st.Name, p.Side, err)
		}
	})
	if spawnErr != nil {
		return spawnErr
	}

	if m, ok := Match(w); ok {
		m.Practice = st.Practice
	}
	if a, ok := ArenaOf(w); ok {
		a.Stage = index
	}
	return nil
}

// ClearStage destroys every stage-owned and transient entity.
func ClearStage(w *ecs.World) {
	for _, e := range w.Query(component.StageTagComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}
	ClearTransient(w)
}

// ClearTransient destroys shots, blasts, beams and loose items. Item spawn
// points are released.
func ClearTransient(w *ecs.World) {
	for _, kind := range []component.Kind{
		component.ProjectileComponent.Kind(),
		component.GrenadeComponent.Kind(),
		component.ExplosionComponent.Kind(),
		component.BeamComponent.Kind(),
		component.ItemComponent.Kind(),
	} {
		for _, e := range w.Query(kind) {
			ecs.DestroyEntity(w, e)
		}
	}
	ecs.ForEach(w, component.ItemSpawnerComponent.Kind(), func(_ ecs.Entity, s *component.ItemSpawner) {
		for i := range s.Points {
			s.Points[i].Occupied = false
			s.Points[i].RespawnMS = 0
		}
		if s.Mode == component.SpawnRandom {
			s.TimerMS = s.MinMS
		}
	})
}
