package component

// Damagable tracks, per side, whether an area effect may still hurt that
// side. Each instance hurts each side at most once.
type Damagable [2]bool

// Fresh returns a Damagable that can hurt both sides.
func Fresh() Damagable {
	return Damagable{true, true}
}

// Take reports whether side may be hurt and marks it as spent.
func (d *Damagable) Take(side Side) bool {
	if side == SideNone {
		return false
	}
	i := side.Index()
	if !d[i] {
		return false
	}
	d[i] = false
	return true
}

type Explosion struct {
	Side      Side
	Damage    int
	Damagable Damagable
}

var ExplosionComponent = NewComponent[Explosion]()

// Beam is the laser fired by the stage hazard.
type Beam struct {
	Damage    int
	Damagable Damagable
}

var BeamComponent = NewComponent[Beam]()
