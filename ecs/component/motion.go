package component

import "github.com/jakecoffman/cp"

// Motion is the spatial state of anything that takes part in physics or
// collision. The sign of Scale.X encodes facing (negative = left).
type Motion struct {
	Position cp.Vector
	Velocity cp.Vector
	Scale    cp.Vector
	Angle    float64
}

// HalfExtents returns half the absolute scale.
func (m *Motion) HalfExtents() cp.Vector {
	return cp.Vector{X: abs(m.Scale.X) / 2, Y: abs(m.Scale.Y) / 2}
}

// Bounds returns the axis-aligned box covering the motion, ignoring facing.
func (m *Motion) Bounds() cp.BB {
	h := m.HalfExtents()
	return cp.NewBBForExtents(m.Position, h.X, h.Y)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

var MotionComponent = NewComponent[Motion]()
