package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/entity"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/prefabs"
)

// WeaponSystem handles fire and item intents, gun cooldowns and reloads.
type WeaponSystem struct {
	tuning *prefabs.Tuning
	logger *zap.Logger
}

func NewWeaponSystem(tuning *prefabs.Tuning, logger *zap.Logger) *WeaponSystem {
	if tuning == nil {
		tuning = prefabs.DefaultTuning()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeaponSystem{tuning: tuning, logger: logger}
}

func (s *WeaponSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaMS()

	ecs.ForEach(w, component.GunTimerComponent.Kind(), func(e ecs.Entity, t *component.GunTimer) {
		t.CounterMS -= dt
		if t.CounterMS <= 0 {
			ecs.Remove(w, e, component.GunTimerComponent.Kind())
		}
	})
	ecs.ForEach(w, component.WeaponsComponent.Kind(), func(_ ecs.Entity, wp *component.Weapons) {
		reload(&wp.Primary, dt)
		reload(&wp.Secondary, dt)
	})

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.IntentComponent.Kind(), func(e ecs.Entity, p *component.Player, in *component.Intent) {
		fire, spread, use := in.FirePrimary, in.FireSecondary, in.UseItem
		in.FirePrimary, in.FireSecondary, in.UseItem = false, false, false
		if !p.Movable {
			return
		}
		if fire {
			s.fire(w, e, p, false)
		}
		if spread {
			s.fire(w, e, p, true)
		}
		if use {
			s.useItem(w, e, p)
		}
	})
}

func reload(slot *component.WeaponSlot, dt float64) {
	if slot.Reloading <= 0 {
		return
	}
	slot.Reloading -= dt
	if slot.Reloading <= 0 {
		slot.Reloading = 0
		slot.Ammo = slot.MaxAmmo
	}
}

// fire shoots the pistol, or the shotgun when secondary is set. Both share
// the player's gun cooldown.
func (s *WeaponSystem) fire(w *ecs.World, e ecs.Entity, p *component.Player, secondary bool) {
	if ecs.Has(w, e, component.GunTimerComponent.Kind()) {
		return
	}
	wp, ok := ecs.Get(w, e, component.WeaponsComponent.Kind())
	if !ok {
		return
	}
	slot, spec, kind := &wp.Primary, s.tuning.Pistol.ProjectileSpec, component.ProjectileBullet
	pellets, spreadVY := 1, 0.0
	if secondary {
		slot, spec, kind = &wp.Secondary, s.tuning.Shotgun.ProjectileSpec, component.ProjectileBuckshot
		pellets, spreadVY = max(1, s.tuning.Shotgun.Pellets), s.tuning.Shotgun.Spread
	}
	if !slot.Ready() {
		return
	}

	m := requireMotion(w, e, "player")
	dir := facing(p)
	muzzle := muzzlePosition(m, dir, spec.Width)
	for i := 0; i < pellets; i++ {
		vy := 0.0
		if pellets > 1 {
			vy = -spreadVY/2 + spreadVY*float64(i)/float64(pellets-1)
		}
		vel := cp.Vector{X: dir * spec.Speed, Y: vy}
		if _, err := entity.NewProjectile(w, spec, kind, p.Side, muzzle, vel); err != nil {
			s.logger.Error("spawn projectile", zap.Stringer("kind", kind), zap.Error(err))
			return
		}
	}

	slot.Ammo--
	if slot.Ammo <= 0 {
		slot.Ammo = 0
		slot.Reloading = slot.ReloadMS
	}
	if err := ecs.Add(w, e, component.GunTimerComponent.Kind(), &component.GunTimer{CounterMS: s.tuning.Player.GunCooldown}); err != nil {
		s.logger.Error("arm gun cooldown", zap.Stringer("player", e), zap.Error(err))
	}
	w.Events().Emit(EventWeaponFired, WeaponFired{Player: e, Side: p.Side, Kind: kind})
}

// useItem consumes the oldest queued item.
func (s *WeaponSystem) useItem(w *ecs.World, e ecs.Entity, p *component.Player) {
	kind, ok := p.Items.Pop()
	if !ok {
		return
	}
	m := requireMotion(w, e, "player")
	dir := facing(p)

	var err error
	switch kind {
	case component.ItemHeal:
		p.Health = min(p.MaxHealth, p.Health+s.tuning.Items.HealAmount)
	case component.ItemGrenade:
		_, err = entity.NewGrenade(w, s.tuning, p.Side, muzzlePosition(m, dir, s.tuning.Grenade.Size), p.Direction)
	case component.ItemLaser:
		spec := s.tuning.Laser
		_, err = entity.NewProjectile(w, spec, component.ProjectileLaser, p.Side, muzzlePosition(m, dir, spec.Width), cp.Vector{X: dir * spec.Speed})
	}
	if err != nil {
		s.logger.Error("use item", zap.Stringer("item", kind), zap.Error(err))
		return
	}
	w.Events().Emit(EventItemUsed, ItemUsed{Player: e, Side: p.Side, Kind: kind})
}

func facing(p *component.Player) float64 {
	if p.Direction {
		return 1
	}
	return -1
}

// muzzlePosition places a shot of the given width just clear of the shooter.
func muzzlePosition(m *component.Motion, dir, width float64) cp.Vector {
	offset := math.Abs(m.Scale.X)/2 + width/2 + 1
	return cp.Vector{X: m.Position.X + dir*offset, Y: m.Position.Y}
}
