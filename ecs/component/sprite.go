package component

// SpriteKind selects what a renderer should draw for an entity.
type SpriteKind int

const (
	SpriteNone SpriteKind = iota
	SpritePlayer
	SpriteBlock
	SpritePortal
	SpriteBullet
	SpriteBuckshot
	SpriteLaser
	SpriteGrenade
	SpriteExplosion
	SpriteItem
	SpriteHazard
	SpriteBeam
)

func (k SpriteKind) String() string {
	switch k {
	case SpritePlayer:
		return "player"
	case SpriteBlock:
		return "block"
	case SpritePortal:
		return "portal"
	case SpriteBullet:
		return "bullet"
	case SpriteBuckshot:
		return "buckshot"
	case SpriteLaser:
		return "laser"
	case SpriteGrenade:
		return "grenade"
	case SpriteExplosion:
		return "explosion"
	case SpriteItem:
		return "item"
	case SpriteHazard:
		return "hazard"
	case SpriteBeam:
		return "beam"
	default:
		return "none"
	}
}

// Sprite is the visual tag the renderer keys on.
type Sprite struct {
	Kind SpriteKind
	Side Side
	// Variant refines Kind (item kind, stage background, ...).
	Variant int
	// Highlight is set while a flash effect is active.
	Highlight bool
}

var SpriteComponent = NewComponent[Sprite]()
