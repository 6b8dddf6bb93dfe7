package component

// Lifetime destroys its entity when CounterMS drops to zero.
type Lifetime struct {
	CounterMS float64
}

var LifetimeComponent = NewComponent[Lifetime]()

// DeathTimer delays the round reset after a player's health reaches zero.
type DeathTimer struct {
	CounterMS float64
}

var DeathTimerComponent = NewComponent[DeathTimer]()

// GunTimer blocks firing until it expires.
type GunTimer struct {
	CounterMS float64
}

var GunTimerComponent = NewComponent[GunTimer]()
