package component

// Intent is the discrete input of one player. Moves are held; the others
// are edge-triggered and cleared once consumed.
type Intent struct {
	MoveLeft      bool
	MoveRight     bool
	Jump          bool
	FirePrimary   bool
	FireSecondary bool
	UseItem       bool
}

var IntentComponent = NewComponent[Intent]()
