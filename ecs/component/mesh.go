package component

import "github.com/jakecoffman/cp"

// Mesh is a collision outline in local unit space; it is scaled by
// Motion.Scale, rotated by Motion.Angle and translated by Motion.Position.
type Mesh struct {
	Vertices []cp.Vector
}

var MeshComponent = NewComponent[Mesh]()
