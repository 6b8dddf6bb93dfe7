package component

// StageTag marks entities owned by the current stage layout.
type StageTag struct {
	Index int
}

var StageTagComponent = NewComponent[StageTag]()

// Arena is the playable area. Exactly one exists.
type Arena struct {
	Width  float64
	Height float64
	Stage  int
}

var ArenaComponent = NewComponent[Arena]()

// Spawn records where a player starts each round.
type Spawn struct {
	X float64
	Y float64
}

var SpawnComponent = NewComponent[Spawn]()
