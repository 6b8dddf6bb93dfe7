package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

// Direction is the side of a pair's first entity that touches the second.
// y grows downward, so Bottom is the lower edge.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirTop
	DirBottom
)

func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirTop:
		return DirBottom
	case DirBottom:
		return DirTop
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Collision is one directed record of an overlapping pair. Both records of a
// pair carry the same Direction; Primary marks the one whose Self is the
// pair's first entity.
type Collision struct {
	Self      ecs.Entity
	Other     ecs.Entity
	Direction Direction
	Primary   bool
}

// Contact returns the side of Self that touches Other.
func (c Collision) Contact() Direction {
	if c.Primary {
		return c.Direction
	}
	return c.Direction.Opposite()
}

// CollisionBuffer carries one tick's collisions from detection to resolution.
type CollisionBuffer struct {
	events []Collision
}

func NewCollisionBuffer() *CollisionBuffer {
	return &CollisionBuffer{}
}

func (b *CollisionBuffer) Append(c ...Collision) {
	if b == nil {
		return
	}
	b.events = append(b.events, c...)
}

// Events returns the buffered collisions in emission order.
func (b *CollisionBuffer) Events() []Collision {
	if b == nil {
		return nil
	}
	return b.events
}

func (b *CollisionBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.events)
}

func (b *CollisionBuffer) Reset() {
	if b == nil {
		return
	}
	b.events = b.events[:0]
}

// CollisionSystem tests every pair of Motion entities and fills the buffer.
// It never mutates components.
type CollisionSystem struct {
	buf *CollisionBuffer
}

func NewCollisionSystem(buf *CollisionBuffer) *CollisionSystem {
	return &CollisionSystem{buf: buf}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.buf == nil {
		return
	}
	s.buf.Reset()

	ents := w.Query(component.MotionComponent.Kind())
	bounds := make([]cp.BB, len(ents))
	for i, e := range ents {
		bounds[i] = ecs.MustGet(w, e, component.MotionComponent.Kind()).Bounds()
	}

	for i := 0; i < len(ents); i++ {
		for j := i + 1; j < len(ents); j++ {
			dir, ok := Classify(bounds[i], bounds[j])
			if !ok {
				continue
			}
			if !meshConfirms(w, ents[i], ents[j]) {
				continue
			}
			s.buf.Append(
				Collision{Self: ents[i], Other: ents[j], Direction: dir, Primary: true},
				Collision{Self: ents[j], Other: ents[i], Direction: dir},
			)
		}
	}
}

// Overlap returns the overlap extents of a and b. Touching edges do not
// overlap. cp.BB's B field is the minimum y.
func Overlap(a, b cp.BB) (x, y float64, ok bool) {
	x = math.Min(a.R, b.R) - math.Max(a.L, b.L)
	y = math.Min(a.T, b.T) - math.Max(a.B, b.B)
	return x, y, x > 0 && y > 0
}

// Classify reports whether a and b overlap and which side of a is in
// contact. The axis with the smaller overlap wins; ties are vertical.
func Classify(a, b cp.BB) (Direction, bool) {
	x, y, ok := Overlap(a, b)
	if !ok {
		return DirNone, false
	}
	ac, bc := a.Center(), b.Center()
	if x < y {
		if ac.X < bc.X {
			return DirRight, true
		}
		return DirLeft, true
	}
	if ac.Y < bc.Y {
		return DirBottom, true
	}
	return DirTop, true
}

// meshConfirms applies the finer player-vs-portal test. Every other pair is
// accepted on its bounding boxes alone.
func meshConfirms(w *ecs.World, a, b ecs.Entity) bool {
	player, portal := a, b
	if ecs.Has(w, a, component.PortalComponent.Kind()) {
		player, portal = b, a
	}
	if !ecs.Has(w, portal, component.PortalComponent.Kind()) || !ecs.Has(w, player, component.PlayerComponent.Kind()) {
		return true
	}
	mesh, ok := ecs.Get(w, player, component.MeshComponent.Kind())
	if !ok {
		return true
	}
	pm := ecs.MustGet(w, player, component.MotionComponent.Kind())
	rect := ecs.MustGet(w, portal, component.MotionComponent.Kind()).Bounds()
	return MeshInside(mesh.Vertices, pm, rect)
}

// MeshInside reports whether any vertex of mesh, transformed by m, lies
// strictly inside rect.
func MeshInside(vertices []cp.Vector, m *component.Motion, rect cp.BB) bool {
	rot := cp.ForAngle(m.Angle)
	for _, v := range vertices {
		p := cp.Vector{X: v.X * m.Scale.X, Y: v.Y * m.Scale.Y}.Rotate(rot).Add(m.Position)
		if p.X > rect.L && p.X < rect.R && p.Y > rect.B && p.Y < rect.T {
			return true
		}
	}
	return false
}
