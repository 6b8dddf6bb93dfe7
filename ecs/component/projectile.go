package component

type ProjectileKind int

const (
	ProjectileBullet ProjectileKind = iota + 1
	ProjectileBuckshot
	ProjectileLaser
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileBullet:
		return "bullet"
	case ProjectileBuckshot:
		return "buckshot"
	case ProjectileLaser:
		return "laser"
	default:
		return "unknown"
	}
}

// Projectile is a short-lived shot fired by a player. It is destroyed on any
// blocking collision.
type Projectile struct {
	Kind   ProjectileKind
	Side   Side
	Damage int
}

var ProjectileComponent = NewComponent[Projectile]()

// Grenade explodes when it hits a block or an opposing player.
type Grenade struct {
	Side Side
}

var GrenadeComponent = NewComponent[Grenade]()
