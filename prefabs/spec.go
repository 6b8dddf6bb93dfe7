package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tuning holds every gameplay parameter the simulation reads. None of these
// values are load-bearing for correctness; they shape the feel of a match.
type Tuning struct {
	Arena     ArenaSpec      `yaml:"arena"`
	Player    PlayerSpec     `yaml:"player"`
	Pistol    WeaponSpec     `yaml:"pistol"`
	Shotgun   ShotgunSpec    `yaml:"shotgun"`
	Laser     ProjectileSpec `yaml:"laser"`
	Grenade   GrenadeSpec    `yaml:"grenade"`
	Explosion ExplosionSpec  `yaml:"explosion"`
	Items     ItemsSpec      `yaml:"items"`
	Portal    PortalSpec     `yaml:"portal"`
	Hazard    HazardSpec     `yaml:"hazard"`
	Match     MatchSpec      `yaml:"match"`
}

type ArenaSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Gravity  float64 `yaml:"gravity"`
	DragRate float64 `yaml:"drag_rate"`
}

type PlayerSpec struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Health      int     `yaml:"health"`
	JumpSpeed   float64 `yaml:"jump_speed"`
	MoveAccel   float64 `yaml:"move_accel"`
	MaxVX       float64 `yaml:"max_vx"`
	MaxVY       float64 `yaml:"max_vy"`
	GunCooldown float64 `yaml:"gun_cooldown_ms"`
}

type ProjectileSpec struct {
	Speed      float64 `yaml:"speed"`
	Damage     int     `yaml:"damage"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	LifetimeMS float64 `yaml:"lifetime_ms"`
}

type WeaponSpec struct {
	ProjectileSpec `yaml:",inline"`

	Ammo     int     `yaml:"ammo"`
	ReloadMS float64 `yaml:"reload_ms"`
}

type ShotgunSpec struct {
	WeaponSpec `yaml:",inline"`

	Pellets int     `yaml:"pellets"`
	Spread  float64 `yaml:"spread"`
}

type GrenadeSpec struct {
	SpeedX float64 `yaml:"speed_x"`
	SpeedY float64 `yaml:"speed_y"`
	Size   float64 `yaml:"size"`
}

type ExplosionSpec struct {
	Size       float64 `yaml:"size"`
	Damage     int     `yaml:"damage"`
	LifetimeMS float64 `yaml:"lifetime_ms"`
}

type ItemsSpec struct {
	Size       float64 `yaml:"size"`
	HealAmount int     `yaml:"heal_amount"`
	RespawnMS  float64 `yaml:"respawn_ms"`
	MinSpawnMS float64 `yaml:"min_spawn_ms"`
	MaxSpawnMS float64 `yaml:"max_spawn_ms"`
}

// PortalSpec holds the horizontal clearance applied when an object exits a
// portal, per object class.
type PortalSpec struct {
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	ProjectileClearance float64 `yaml:"projectile_clearance"`
	GrenadeClearance    float64 `yaml:"grenade_clearance"`
	PlayerClearance     float64 `yaml:"player_clearance"`
	HighlightMS         float64 `yaml:"highlight_ms"`
}

type HazardSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	Range      float64 `yaml:"range"`
	CooldownMS float64 `yaml:"cooldown_ms"`
	WindupMS   float64 `yaml:"windup_ms"`
	AttackMS   float64 `yaml:"attack_ms"`
	HitRadius  float64 `yaml:"hit_radius"`
	BeamSpeed  float64 `yaml:"beam_speed"`
	BeamSize   float64 `yaml:"beam_size"`
	BeamDamage int     `yaml:"beam_damage"`
	OriginX    float64 `yaml:"origin_x"`
	OriginY    float64 `yaml:"origin_y"`
	// InRangeScript optionally replaces the built-in range check with a
	// tengo expression.
	InRangeScript string `yaml:"in_range_script"`
}

type MatchSpec struct {
	Rounds       int     `yaml:"rounds"`
	DeathTimerMS float64 `yaml:"death_timer_ms"`
}

// ParseTuning decodes a tuning document on top of DefaultTuning.
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads tuning.yaml, preferring an on-disk copy over the embedded one.
func LoadTuning() (*Tuning, error) {
	data, err := Load(TuningFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", TuningFile, err)
	}
	return ParseTuning(data)
}

// DefaultTuning returns the built-in parameters.
func DefaultTuning() *Tuning {
	return &Tuning{
		Arena: ArenaSpec{Width: 1280, Height: 720, Gravity: 750, DragRate: 800},
		Player: PlayerSpec{
			Width: 50, Height: 50, Health: 10,
			JumpSpeed: -600, MoveAccel: 1200, MaxVX: 350, MaxVY: 700,
			GunCooldown: 300,
		},
		Pistol: WeaponSpec{
			ProjectileSpec: ProjectileSpec{Speed: 700, Damage: 1, Width: 14, Height: 6, LifetimeMS: 3000},
			Ammo:           6,
			ReloadMS:       1200,
		},
		Shotgun: ShotgunSpec{
			WeaponSpec: WeaponSpec{
				ProjectileSpec: ProjectileSpec{Speed: 600, Damage: 1, Width: 8, Height: 8, LifetimeMS: 400},
				Ammo:           2,
				ReloadMS:       2000,
			},
			Pellets: 3,
			Spread:  120,
		},
		Laser:     ProjectileSpec{Speed: 1400, Damage: 3, Width: 60, Height: 6, LifetimeMS: 1500},
		Grenade:   GrenadeSpec{SpeedX: 400, SpeedY: -400, Size: 16},
		Explosion: ExplosionSpec{Size: 120, Damage: 2, LifetimeMS: 300},
		Items:     ItemsSpec{Size: 24, HealAmount: 3, RespawnMS: 5000, MinSpawnMS: 4000, MaxSpawnMS: 9000},
		Portal: PortalSpec{
			Width: 20, Height: 100,
			ProjectileClearance: 40, GrenadeClearance: 50, PlayerClearance: 60,
			HighlightMS: 200,
		},
		Hazard: HazardSpec{
			Width: 60, Height: 40, Speed: 100, Range: 400,
			CooldownMS: 3000, WindupMS: 1000, AttackMS: 500,
			HitRadius: 40, BeamSpeed: 1200, BeamSize: 30, BeamDamage: 2,
			OriginX: 640, OriginY: 40,
		},
		Match: MatchSpec{Rounds: 5, DeathTimerMS: 3000},
	}
}
