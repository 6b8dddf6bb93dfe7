package component

import "github.com/jakecoffman/cp"

// Gravity accelerates Motion.Velocity by G every second. With Drag set the
// horizontal velocity also decays toward zero at DragRate units/s².
type Gravity struct {
	G        cp.Vector
	Drag     bool
	DragRate float64
}

var GravityComponent = NewComponent[Gravity]()
