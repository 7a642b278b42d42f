package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-rogue/components"
	"github.com/automoto/doomerang-rogue/shared/gamemath"
)

type pendingKnockback struct {
	target   donburi.Entity
	origin   math.Vec2
	strength float64
}

// UpdateKnockback pushes every newly hit target away from the hitbox that
// struck it, once per ledger record.
func UpdateKnockback(ecs *ecs.ECS, ctx *Context) {
	var pending []pendingKnockback
	components.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hb := components.Hitbox.Get(e)
		origin := components.Transform.Get(e).Position
		for i := range hb.Ledger {
			rec := &hb.Ledger[i]
			if rec.KnockbackApplied {
				continue
			}
			rec.KnockbackApplied = true
			pending = append(pending, pendingKnockback{target: rec.Target, origin: origin, strength: hb.Knockback})
		}
	})

	for _, kb := range pending {
		target := entryOf(ecs.World, kb.target)
		if target == nil || !target.HasComponent(components.Physics) || !target.HasComponent(components.Transform) {
			continue
		}
		dir, ok := gamemath.Direction(kb.origin, components.Transform.Get(target).Position)
		if !ok {
			continue
		}
		physics := components.Physics.Get(target)
		physics.Velocity = gamemath.Add(physics.Velocity, gamemath.Scale(dir, kb.strength))
	}
}
