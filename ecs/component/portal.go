package component

// Portal teleports overlapping objects to its partner.
type Portal struct {
	Width  float64
	Height float64
	// Partner is the paired portal (ecs.Entity is uint64).
	Partner uint64
	// HighlightMS counts down a brief visual flash after a teleport.
	HighlightMS float64
}

var PortalComponent = NewComponent[Portal]()
