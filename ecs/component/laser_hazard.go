package component

import "github.com/jakecoffman/cp"

type HazardPhase int

const (
	HazardIdle HazardPhase = iota
	HazardTrack
	HazardWindup
	HazardAttack
	HazardCooldown
)

func (p HazardPhase) String() string {
	switch p {
	case HazardIdle:
		return "idle"
	case HazardTrack:
		return "track"
	case HazardWindup:
		return "windup"
	case HazardAttack:
		return "attack"
	case HazardCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// LaserHazard is the roaming stage boss. The decision tree reads and writes
// this state; the tree itself holds none.
type LaserHazard struct {
	Phase HazardPhase

	Speed      float64
	Range      float64
	CooldownMS float64
	WindupMS   float64
	AttackMS   float64
	HitRadius  float64
	BeamSpeed  float64
	BeamDamage int
	Origin     cp.Vector

	Cooldown float64
	Firing   bool
	Target   cp.Vector
	// Elapsed accumulates time within the windup/attack sequence.
	Elapsed float64
	// Beam is the live beam entity (ecs.Entity is uint64), zero if none.
	Beam uint64
}

var LaserHazardComponent = NewComponent[LaserHazard]()
