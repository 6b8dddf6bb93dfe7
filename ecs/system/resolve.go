package system

import (
	"go.uber.org/zap"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/entity"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

type pairKey struct {
	self, other ecs.Entity
}

// ResolveSystem applies the gameplay effect of every buffered collision, in
// emission order, then clears the buffer. Each ordered pair is handled at
// most once per tick and every rule re-checks its components, since earlier
// rules may have destroyed either entity.
type ResolveSystem struct {
	buf    *CollisionBuffer
	tuning *prefabs.Tuning
	combat *Combat
	logger *zap.Logger

	seen       map[pairKey]struct{}
	teleported map[ecs.Entity]struct{}
}

func NewResolveSystem(buf *CollisionBuffer, tuning *prefabs.Tuning, combat *Combat, logger *zap.Logger) *ResolveSystem {
	if tuning == nil {
		tuning = prefabs.DefaultTuning()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if combat == nil {
		combat = &Combat{DeathTimerMS: tuning.Match.DeathTimerMS, Logger: logger}
	}
	return &ResolveSystem{
		buf:        buf,
		tuning:     tuning,
		combat:     combat,
		logger:     logger,
		seen:       map[pairKey]struct{}{},
		teleported: map[ecs.Entity]struct{}{},
	}
}

func (s *ResolveSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.buf == nil {
		return
	}
	clear(s.seen)
	clear(s.teleported)

	for _, c := range s.buf.Events() {
		key := pairKey{c.Self, c.Other}
		if _, dup := s.seen[key]; dup {
			continue
		}
		s.seen[key] = struct{}{}
		if !ecs.IsAlive(w, c.Self) || !ecs.IsAlive(w, c.Other) {
			continue
		}
		s.resolve(w, c)
	}
	s.buf.Reset()
}

func (s *ResolveSystem) resolve(w *ecs.World, c Collision) {
	self, other := c.Self, c.Other

	switch {
	case ecs.Has(w, self, component.PlayerComponent.Kind()):
		switch {
		case ecs.Has(w, other, component.BlockComponent.Kind()):
			s.playerBlock(w, self, other, c.Contact())
		case ecs.Has(w, other, component.ProjectileComponent.Kind()):
			s.playerProjectile(w, self, other)
		case ecs.Has(w, other, component.ItemComponent.Kind()):
			s.playerItem(w, self, other)
		case ecs.Has(w, other, component.GrenadeComponent.Kind()):
			s.playerGrenade(w, self, other)
		case ecs.Has(w, other, component.ExplosionComponent.Kind()):
			s.playerExplosion(w, self, other)
		case ecs.Has(w, other, component.BeamComponent.Kind()):
			s.playerBeam(w, self, other)
		}

	case ecs.Has(w, self, component.BlockComponent.Kind()):
		switch {
		case ecs.Has(w, other, component.ProjectileComponent.Kind()):
			ecs.DestroyEntity(w, other)
		case ecs.Has(w, other, component.GrenadeComponent.Kind()):
			s.explode(w, other)
		}

	case ecs.Has(w, self, component.PortalComponent.Kind()):
		switch {
		case ecs.Has(w, other, component.ProjectileComponent.Kind()):
			s.teleport(w, self, other, s.tuning.Portal.ProjectileClearance)
		case ecs.Has(w, other, component.GrenadeComponent.Kind()):
			s.teleport(w, self, other, s.tuning.Portal.GrenadeClearance)
		case ecs.Has(w, other, component.PlayerComponent.Kind()):
			s.teleport(w, self, other, s.tuning.Portal.PlayerClearance)
		}

	case ecs.Has(w, self, component.ProjectileComponent.Kind()):
		if ecs.Has(w, other, component.ProjectileComponent.Kind()) {
			s.projectiles(w, self, other)
		}
	}
}

// playerBlock stops the player at the block edge it touches. contact is the
// player's side.
func (s *ResolveSystem) playerBlock(w *ecs.World, pe, be ecs.Entity, contact Direction) {
	p := ecs.MustGet(w, pe, component.PlayerComponent.Kind())
	pm := requireMotion(w, pe, "player")
	bm := requireMotion(w, be, "block")
	b := ecs.MustGet(w, be, component.BlockComponent.Kind())
	half := pm.HalfExtents()
	bb := bm.Bounds()

	switch contact {
	case DirBottom:
		if pm.Velocity.Y < 0 {
			return
		}
		pm.Velocity.Y = 0
		// The snap already follows the block's vertical travel.
		pm.Position.Y = bb.B - half.Y
		pm.Position.X += b.Travelled.X
		p.Jumpable = true
	case DirTop:
		if pm.Velocity.Y >= 0 {
			return
		}
		pm.Velocity.Y = 0
		pm.Position.Y = bb.T + half.Y
	case DirRight:
		if pm.Velocity.X > 0 {
			pm.Velocity.X = 0
		}
		pm.Position.X = bb.L - half.X
	case DirLeft:
		if pm.Velocity.X < 0 {
			pm.Velocity.X = 0
		}
		pm.Position.X = bb.R + half.X
	}
}

func (s *ResolveSystem) playerProjectile(w *ecs.World, pe, je ecs.Entity) {
	p := ecs.MustGet(w, pe, component.PlayerComponent.Kind())
	proj := ecs.MustGet(w, je, component.ProjectileComponent.Kind())
	if proj.Side == p.Side || p.Health <= 0 {
		return
	}
	damage := proj.Damage
	ecs.DestroyEntity(w, je)
	s.combat.Damage(w, pe, damage)
}

func (s *ResolveSystem) playerItem(w *ecs.World, pe, ie ecs.Entity) {
	p := ecs.MustGet(w, pe, component.PlayerComponent.Kind())
	item := *ecs.MustGet(w, ie, component.ItemComponent.Kind())

	evicted, _ := p.Items.Push(item.Kind)
	ecs.DestroyEntity(w, ie)
	w.Events().Emit(EventItemPickedUp, ItemPickedUp{Player: pe, Side: p.Side, Kind: item.Kind, Evicted: evicted})

	se, ok := ecs.First(w, component.ItemSpawnerComponent.Kind())
	if !ok {
		return
	}
	spawner := ecs.MustGet(w, se, component.ItemSpawnerComponent.Kind())
	if item.SpawnPoint < 0 || item.SpawnPoint >= len(spawner.Points) {
		return
	}
	pt := &spawner.Points[item.SpawnPoint]
	pt.Occupied = false
	switch spawner.Mode {
	case component.SpawnFixed:
		pt.RespawnMS = spawner.RespawnMS
	case component.SpawnRandom:
		if spawner.TimerMS > spawner.MinMS {
			spawner.TimerMS = spawner.MinMS
		}
	}
}

func (s *ResolveSystem) playerGrenade(w *ecs.World, pe, ge ecs.Entity) {
	p := ecs.MustGet(w, pe, component.PlayerComponent.Kind())
	g := ecs.MustGet(w, ge, component.GrenadeComponent.Kind())
	if g.Side == p.Side {
		return
	}
	s.explode(w, ge)
}

// explode replaces a grenade with an explosion at its position.
func (s *ResolveSystem) explode(w *ecs.World, ge ecs.Entity) {
	g := ecs.MustGet(w, ge, component.GrenadeComponent.Kind())
	pos := requireMotion(w, ge, "grenade").Position
	side := g.Side
	ecs.DestroyEntity(w, ge)
	if _, err := entity.NewExplosion(w, s.tuning, side, pos); err != nil {
		s.logger.Error("spawn explosion", zap.Error(err))
	}
}

func (s *ResolveSystem) playerExplosion(w *ecs.World, pe, xe ecs.Entity) {
	p := ecs.MustGet(w, pe, component.PlayerComponent.Kind())
	x := ecs.MustGet(w, xe, component.ExplosionComponent.Kind())
	if p.Health <= 0 || !x.Damagable.Take(p.Side) {
		return
	}
	s.combat.Damage(w, pe, x.Damage)
}

func (s *ResolveSystem) playerBeam(w *ecs.World, pe, be ecs.Entity) {
	p := ecs.MustGet(w, pe, component.PlayerComponent.Kind())
	b := ecs.MustGet(w, be, component.BeamComponent.Kind())
	if p.Health <= 0 || !b.Damagable.Take(p.Side) {
		return
	}
	s.combat.Damage(w, pe, b.Damage)
}

func (s *ResolveSystem) projectiles(w *ecs.World, a, b ecs.Entity) {
	pa := ecs.MustGet(w, a, component.ProjectileComponent.Kind())
	pb := ecs.MustGet(w, b, component.ProjectileComponent.Kind())
	if pa.Side == pb.Side {
		return
	}
	ecs.DestroyEntity(w, a)
	ecs.DestroyEntity(w, b)
}
