package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs"
	"github.com/DanielHuangjiakang/RED-AND-BLUE-ARENA/ecs/component"
)

type NodeKind int

const (
	ActionNode NodeKind = iota
	ConditionNode
)

// Node is one decision tree node. Action nodes run Act and stop; condition
// nodes run Test and continue with Then or Else. Nodes hold no state.
type Node struct {
	Kind NodeKind
	Name string
	Act  func(*HazardContext)
	Test func(*HazardContext) bool
	Then *Node
	Else *Node
}

func Action(name string, act func(*HazardContext)) *Node {
	return &Node{Kind: ActionNode, Name: name, Act: act}
}

func Condition(name string, test func(*HazardContext) bool, then, els *Node) *Node {
	return &Node{Kind: ConditionNode, Name: name, Test: test, Then: then, Else: els}
}

// Evaluate walks from n to an action, runs it and returns its name. It
// returns "" when the walk falls off the tree.
func (n *Node) Evaluate(ctx *HazardContext) string {
	for node := n; node != nil; {
		switch node.Kind {
		case ActionNode:
			if node.Act != nil {
				node.Act(ctx)
			}
			return node.Name
		case ConditionNode:
			if node.Test != nil && node.Test(ctx) {
				node = node.Then
			} else {
				node = node.Else
			}
		default:
			return ""
		}
	}
	return ""
}

// HazardContext is the mutable state the hazard tree reads and writes.
type HazardContext struct {
	World  *ecs.World
	Entity ecs.Entity
	Hazard *component.LaserHazard
	Motion *component.Motion
	// InRange replaces the built-in range predicate when set.
	InRange func(ctx *HazardContext, target cp.Vector, distance float64) bool
}

// Nearest returns the closest living player to the hazard.
func (ctx *HazardContext) Nearest() (cp.Vector, float64, bool) {
	best := math.Inf(1)
	var pos cp.Vector
	found := false
	ecs.ForEach(ctx.World, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		if p.Health <= 0 {
			return
		}
		m, ok := ecs.Get(ctx.World, e, component.MotionComponent.Kind())
		if !ok {
			return
		}
		if d := m.Position.Distance(ctx.Motion.Position); d < best {
			best, pos, found = d, m.Position, true
		}
	})
	return pos, best, found
}

// NewHazardTree builds the fixed hazard behavior:
// cooldown_expired ? (player_in_range ? attack : track) : idle.
func NewHazardTree() *Node {
	return Condition("cooldown_expired", cooldownExpired,
		Condition("player_in_range", playerInRange,
			Action("attack", attack),
			Action("track", track),
		),
		Action("idle", idle),
	)
}

func cooldownExpired(ctx *HazardContext) bool {
	return ctx.Hazard.Cooldown <= 0 && !ctx.Hazard.Firing
}

func playerInRange(ctx *HazardContext) bool {
	target, dist, ok := ctx.Nearest()
	if !ok {
		return false
	}
	if ctx.InRange != nil {
		return ctx.InRange(ctx, target, dist)
	}
	return dist <= ctx.Hazard.Range
}

func idle(ctx *HazardContext) {
	ctx.Motion.Velocity = cp.Vector{}
}

func track(ctx *HazardContext) {
	target, dist, ok := ctx.Nearest()
	if !ok || dist < 0.01 {
		ctx.Motion.Velocity = cp.Vector{}
		return
	}
	ctx.Motion.Velocity = target.Sub(ctx.Motion.Position).Normalize().Mult(ctx.Hazard.Speed)
}

func attack(ctx *HazardContext) {
	target, _, ok := ctx.Nearest()
	if !ok {
		return
	}
	ctx.Motion.Velocity = cp.Vector{}
	ctx.Hazard.Target = target
	ctx.Hazard.Firing = true
	ctx.Hazard.Elapsed = 0
	ctx.Hazard.Beam = 0
}
