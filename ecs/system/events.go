package system

import (
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

const (
	EventDamageApplied ecs.EventType = "damage_applied"
	EventItemPickedUp  ecs.EventType = "item_picked_up"
	EventItemUsed      ecs.EventType = "item_used"
	EventRoundEnded    ecs.EventType = "round_ended"
	EventMatchEnded    ecs.EventType = "match_ended"
	EventTeleported    ecs.EventType = "teleported"
	EventHazardFired   ecs.EventType = "hazard_fired"
	EventWeaponFired   ecs.EventType = "weapon_fired"
)

type DamageApplied struct {
	Target ecs.Entity
	Side   component.Side
	Amount int
	Health int
}

type ItemPickedUp struct {
	Player ecs.Entity
	Side   component.Side
	Kind   component.ItemKind
	// Evicted is set when the pickup pushed the oldest item out of a full queue.
	Evicted component.ItemKind
}

type ItemUsed struct {
	Player ecs.Entity
	Side   component.Side
	Kind   component.ItemKind
}

type RoundEnded struct {
	Loser           component.Side
	Winner          component.Side
	RoundsRemaining int
}

// MatchEnded reports the final tallies. Winner is SideNone on a draw.
type MatchEnded struct {
	Winner component.Side
	Wins   [2]int
}

type Teleported struct {
	Entity ecs.Entity
	From   ecs.Entity
	To     ecs.Entity
}

type HazardFired struct {
	Hazard ecs.Entity
	Beam   ecs.Entity
	Hits   []component.Side
}

type WeaponFired struct {
	Player ecs.Entity
	Side   component.Side
	Kind   component.ProjectileKind
}
