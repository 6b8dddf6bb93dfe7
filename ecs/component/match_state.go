package component

type MatchPhase int

const (
	PhasePlaying MatchPhase = iota
	PhaseRoundOver
	PhaseSummary
)

func (p MatchPhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseRoundOver:
		return "round_over"
	case PhaseSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// MatchState holds round counters and win tallies. Exactly one exists.
type MatchState struct {
	Rounds          int
	RoundsRemaining int
	// Wins is indexed by Side.Index().
	Wins   [2]int
	Phase  MatchPhase
	Winner Side
	// Practice disables damage for the current stage.
	Practice bool
}

// WinsFor returns the tally of side.
func (m *MatchState) WinsFor(side Side) int {
	if side == SideNone {
		return 0
	}
	return m.Wins[side.Index()]
}

var MatchStateComponent = NewComponent[MatchState]()
