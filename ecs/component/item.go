package component

type ItemKind int

const (
	ItemHeal ItemKind = iota + 1
	ItemGrenade
	ItemLaser
)

func (k ItemKind) String() string {
	switch k {
	case ItemHeal:
		return "heal"
	case ItemGrenade:
		return "grenade"
	case ItemLaser:
		return "laser"
	default:
		return "unknown"
	}
}

// ParseItemKind maps a stage/tuning name to an ItemKind.
func ParseItemKind(s string) (ItemKind, bool) {
	switch s {
	case "heal":
		return ItemHeal, true
	case "grenade":
		return ItemGrenade, true
	case "laser":
		return ItemLaser, true
	default:
		return 0, false
	}
}

// Item is a world pickup waiting to be collected.
type Item struct {
	Kind ItemKind
	// SpawnPoint indexes ItemSpawner.Points.
	SpawnPoint int
}

var ItemComponent = NewComponent[Item]()
