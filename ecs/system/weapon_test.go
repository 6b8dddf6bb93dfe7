package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

func TestPistolFiresAndCoolsDown(t *testing.T) {
	w, tun := newArena(t)
	p := player(t, w, tun, component.SideRed, 600, 300)
	in := ecs.MustGet(w, p, component.IntentComponent.Kind())
	wp := ecs.MustGet(w, p, component.WeaponsComponent.Kind())
	sys := NewWeaponSystem(tun, nil)
	w.SetDeltaMS(16)

	in.FirePrimary = true
	sys.Update(w)
	require.Equal(t, 1, ecs.Count(w, component.ProjectileComponent.Kind()))
	assert.Equal(t, tun.Pistol.Ammo-1, wp.Primary.Ammo)
	assert.False(t, in.FirePrimary)

	shot, _ := ecs.First(w, component.ProjectileComponent.Kind())
	m := mustMotion(t, w, shot)
	assert.Less(t, m.Velocity.X, 0.0, "red fires left")
	assert.Less(t, m.Position.X, 575.0, "spawned clear of the shooter")

	in.FirePrimary = true
	sys.Update(w)
	assert.Equal(t, 1, ecs.Count(w, component.ProjectileComponent.Kind()), "gun timer blocks")

	w.SetDeltaMS(tun.Player.GunCooldown)
	sys.Update(w)
	in.FirePrimary = true
	w.SetDeltaMS(16)
	sys.Update(w)
	assert.Equal(t, 2, ecs.Count(w, component.ProjectileComponent.Kind()))
}

func TestShotgunSpreadAndReload(t *testing.T) {
	w, tun := newArena(t)
	p := player(t, w, tun, component.SideBlue, 300, 300)
	in := ecs.MustGet(w, p, component.IntentComponent.Kind())
	wp := ecs.MustGet(w, p, component.WeaponsComponent.Kind())
	sys := NewWeaponSystem(tun, nil)

	for i := 0; i < tun.Shotgun.Ammo; i++ {
		in.FireSecondary = true
		w.SetDeltaMS(tun.Player.GunCooldown + 1)
		sys.Update(w)
	}
	assert.Equal(t, tun.Shotgun.Ammo*tun.Shotgun.Pellets, ecs.Count(w, component.ProjectileComponent.Kind()))
	assert.Zero(t, wp.Secondary.Ammo)
	assert.Equal(t, tun.Shotgun.ReloadMS, wp.Secondary.Reloading)

	vys := map[float64]bool{}
	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, pr *component.Projectile) {
		assert.Equal(t, component.ProjectileBuckshot, pr.Kind)
		vys[mustMotion(t, w, e).Velocity.Y] = true
	})
	assert.Len(t, vys, tun.Shotgun.Pellets)

	in.FireSecondary = true
	w.SetDeltaMS(tun.Player.GunCooldown + 1)
	sys.Update(w)
	assert.Equal(t, tun.Shotgun.Ammo*tun.Shotgun.Pellets, ecs.Count(w, component.ProjectileComponent.Kind()), "empty while reloading")

	w.SetDeltaMS(tun.Shotgun.ReloadMS)
	sys.Update(w)
	assert.Equal(t, tun.Shotgun.Ammo, wp.Secondary.Ammo)
	assert.Zero(t, wp.Secondary.Reloading)
}

func TestUseItemConsumesHead(t *testing.T) {
	w, tun := newArena(t)
	p := player(t, w, tun, component.SideBlue, 300, 300)
	pl := mustPlayer(t, w, p)
	pl.Health = 2
	pl.Items.Push(component.ItemHeal)
	pl.Items.Push(component.ItemGrenade)
	pl.Items.Push(component.ItemLaser)
	in := ecs.MustGet(w, p, component.IntentComponent.Kind())
	sys := NewWeaponSystem(tun, nil)
	w.SetDeltaMS(16)

	in.UseItem = true
	sys.Update(w)
	assert.Equal(t, 2+tun.Items.HealAmount, pl.Health)
	assert.Equal(t, []component.ItemKind{component.ItemGrenade, component.ItemLaser}, pl.Items.Items())

	in.UseItem = true
	sys.Update(w)
	assert.Equal(t, 1, ecs.Count(w, component.GrenadeComponent.Kind()))

	in.UseItem = true
	sys.Update(w)
	laser, ok := ecs.First(w, component.ProjectileComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.ProjectileLaser, ecs.MustGet(w, laser, component.ProjectileComponent.Kind()).Kind)
	assert.Equal(t, tun.Laser.Damage, ecs.MustGet(w, laser, component.ProjectileComponent.Kind()).Damage)
	assert.Zero(t, pl.Items.Len())

	used := eventsOf(w, EventItemUsed)
	assert.Len(t, used, 3)
}

func TestHealIsCappedAtMaxHealth(t *testing.T) {
	w, tun := newArena(t)
	p := player(t, w, tun, component.SideBlue, 300, 300)
	pl := mustPlayer(t, w, p)
	pl.Health = pl.MaxHealth - 1
	pl.Items.Push(component.ItemHeal)
	ecs.MustGet(w, p, component.IntentComponent.Kind()).UseItem = true
	w.SetDeltaMS(16)

	NewWeaponSystem(tun, nil).Update(w)
	assert.Equal(t, pl.MaxHealth, pl.Health)
}
