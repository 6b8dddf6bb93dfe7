package component

// WeaponSlot is the ammo and reload state of one weapon.
type WeaponSlot struct {
	Ammo     int
	MaxAmmo  int
	ReloadMS float64
	// Reloading counts down while the magazine refills.
	Reloading float64
}

// Ready reports whether the slot can fire now.
func (s *WeaponSlot) Ready() bool {
	return s.Reloading <= 0 && s.Ammo > 0
}

// Weapons holds a player's primary (pistol) and secondary (shotgun).
type Weapons struct {
	Primary   WeaponSlot
	Secondary WeaponSlot
}

var WeaponsComponent = NewComponent[Weapons]()
