package component

import "github.com/jakecoffman/cp"

type SpawnMode int

const (
	SpawnFixed SpawnMode = iota
	SpawnRandom
)

// SpawnPoint is one place an item may appear.
type SpawnPoint struct {
	Position cp.Vector
	// Kind is the item a fixed spawn point produces. Zero means random.
	Kind ItemKind
	// Occupied is set while an item from this point is in the world.
	Occupied bool
	// RespawnMS counts down a fixed-mode respawn.
	RespawnMS float64
}

// ItemSpawner drives item placement for the current stage.
type ItemSpawner struct {
	Mode      SpawnMode
	Points    []SpawnPoint
	RespawnMS float64
	MinMS     float64
	MaxMS     float64
	// TimerMS counts down to the next random-mode spawn.
	TimerMS float64
}

var ItemSpawnerComponent = NewComponent[ItemSpawner]()
