package component

// ScreenState is the world-wide presentation state. Exactly one exists.
type ScreenState struct {
	// DarkenFactor fades the screen while a death timer runs (0..1).
	DarkenFactor float64
}

var ScreenStateComponent = NewComponent[ScreenState]()
