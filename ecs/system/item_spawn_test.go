package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

func addSpawner(t *testing.T, w *ecs.World, sp *component.ItemSpawner) {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.ItemSpawnerComponent.Kind(), sp))
}

func TestFixedSpawnerFillsAndRespawns(t *testing.T) {
	w, tun := newArena(t)
	sp := &component.ItemSpawner{
		Mode: component.SpawnFixed,
		Points: []component.SpawnPoint{
			{Position: cp.Vector{X: 100, Y: 100}, Kind: component.ItemGrenade},
			{Position: cp.Vector{X: 500, Y: 100}, Kind: component.ItemHeal},
		},
		RespawnMS: 1000,
	}
	addSpawner(t, w, sp)
	sys := NewItemSpawnSystem(tun, nil)
	w.SetDeltaMS(16)

	sys.Update(w)
	require.Equal(t, 2, ecs.Count(w, component.ItemComponent.Kind()))
	sys.Update(w)
	assert.Equal(t, 2, ecs.Count(w, component.ItemComponent.Kind()), "one item per point")

	first, _ := ecs.First(w, component.ItemComponent.Kind())
	assert.Equal(t, component.ItemGrenade, ecs.MustGet(w, first, component.ItemComponent.Kind()).Kind)
	ecs.DestroyEntity(w, first)
	sp.Points[0].Occupied = false
	sp.Points[0].RespawnMS = 1000

	w.SetDeltaMS(600)
	sys.Update(w)
	assert.Equal(t, 1, ecs.Count(w, component.ItemComponent.Kind()))
	sys.Update(w)
	assert.Equal(t, 2, ecs.Count(w, component.ItemComponent.Kind()))
	assert.True(t, sp.Points[0].Occupied)
}

func TestRandomSpawnerUsesFreePoints(t *testing.T) {
	w, tun := newArena(t)
	sp := &component.ItemSpawner{
		Mode: component.SpawnRandom,
		Points: []component.SpawnPoint{
			{Position: cp.Vector{X: 100, Y: 100}},
			{Position: cp.Vector{X: 500, Y: 100}},
		},
		MinMS:   1000,
		MaxMS:   2000,
		TimerMS: 1000,
	}
	addSpawner(t, w, sp)
	sys := NewItemSpawnSystem(tun, nil)

	w.SetDeltaMS(500)
	sys.Update(w)
	assert.Zero(t, ecs.Count(w, component.ItemComponent.Kind()))

	for i := 0; i < 20; i++ {
		w.SetDeltaMS(2000)
		sys.Update(w)
	}
	assert.Equal(t, 2, ecs.Count(w, component.ItemComponent.Kind()), "never more than the point count")
	assert.GreaterOrEqual(t, sp.TimerMS, 0.0)
	assert.LessOrEqual(t, sp.TimerMS, 2000.0)
	ecs.ForEach(w, component.ItemComponent.Kind(), func(_ ecs.Entity, it *component.Item) {
		assert.Contains(t, itemKinds, it.Kind)
	})
}
