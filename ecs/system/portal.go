package system

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

// teleport moves obj from the source portal to its partner. The exit is
// offset horizontally by clearance in the direction of travel and keeps the
// vertical offset obj had relative to the source.
func (s *ResolveSystem) teleport(w *ecs.World, src, obj ecs.Entity, clearance float64) {
	if _, done := s.teleported[obj]; done {
		return
	}
	portal := ecs.MustGet(w, src, component.PortalComponent.Kind())
	dst := ecs.Entity(portal.Partner)
	partner, ok := ecs.Get(w, dst, component.PortalComponent.Kind())
	if !ok {
		s.logger.Warn("portal without partner", zap.Stringer("portal", src))
		return
	}
	srcPos := requireMotion(w, src, "portal").Position
	dstPos := requireMotion(w, dst, "portal").Position
	m := requireMotion(w, obj, "teleported")

	dir := 1.0
	switch {
	case m.Velocity.X < 0:
		dir = -1
	case m.Velocity.X == 0 && m.Scale.X < 0:
		dir = -1
	}
	m.Position = cp.Vector{
		X: dstPos.X + dir*clearance,
		Y: dstPos.Y + (m.Position.Y - srcPos.Y),
	}
	s.teleported[obj] = struct{}{}

	highlight(w, src, portal, s.tuning.Portal.HighlightMS)
	highlight(w, dst, partner, s.tuning.Portal.HighlightMS)
	w.Events().Emit(EventTeleported, Teleported{Entity: obj, From: src, To: dst})
}

func highlight(w *ecs.World, e ecs.Entity, p *component.Portal, ms float64) {
	p.HighlightMS = ms
	if sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sp.Highlight = ms > 0
	}
}

// PortalSystem fades portal highlights.
type PortalSystem struct{}

func NewPortalSystem() *PortalSystem {
	return &PortalSystem{}
}

func (s *PortalSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaMS()
	ecs.ForEach(w, component.PortalComponent.Kind(), func(e ecs.Entity, p *component.Portal) {
		if p.HighlightMS <= 0 {
			return
		}
		p.HighlightMS -= dt
		if p.HighlightMS <= 0 {
			highlight(w, e, p, 0)
		}
	})
}
