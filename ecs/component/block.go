package component

import "github.com/jakecoffman/cp"

type MoveMode int

const (
	Stationary MoveMode = iota
	MoveHorizontal
	MoveVertical
)

// ParseMoveMode maps a stage descriptor value to a MoveMode.
func ParseMoveMode(s string) (MoveMode, bool) {
	switch s {
	case "", "none", "stationary":
		return Stationary, true
	case "horizontal":
		return MoveHorizontal, true
	case "vertical":
		return MoveVertical, true
	default:
		return Stationary, false
	}
}

// Block is ground or platform geometry. Moving blocks bounce between
// [Min, Max] on their axis and record how far they travelled this tick so
// riders can be carried along.
type Block struct {
	Width     float64
	Height    float64
	Mode      MoveMode
	Min       float64
	Max       float64
	Travelled cp.Vector
}

var BlockComponent = NewComponent[Block]()
