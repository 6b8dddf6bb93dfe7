package component

// Side identifies a combatant team.
type Side int

const (
	SideNone Side = 0
	SideBlue Side = 1
	SideRed  Side = 2
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case SideBlue:
		return SideRed
	case SideRed:
		return SideBlue
	default:
		return SideNone
	}
}

// Index maps blue/red to 0/1 for per-side arrays.
func (s Side) Index() int {
	if s == SideRed {
		return 1
	}
	return 0
}

func (s Side) String() string {
	switch s {
	case SideBlue:
		return "blue"
	case SideRed:
		return "red"
	default:
		return "none"
	}
}

type Player struct {
	Side      Side
	Health    int
	MaxHealth int
	Jumpable  bool
	// Direction is true when facing right.
	Direction bool
	IsMoving  bool
	// Movable is cleared on death; intents are ignored while false.
	Movable bool

	JumpSpeed float64
	MoveAccel float64
	MaxVX     float64
	MaxVY     float64

	Items ItemQueue
}

var PlayerComponent = NewComponent[Player]()
