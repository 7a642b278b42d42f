package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/shared/gamemath"
)

// UpdateDamageNumbers floats, fades and expires hit indicators.
func UpdateDamageNumbers(ecs *ecs.ECS, ctx *Context) {
	var toRemove []donburi.Entity
	components.DamageNumber.Each(ecs.World, func(e *donburi.Entry) {
		dn := components.DamageNumber.Get(e)
		dn.Lifetime.Tick(ctx.DT)
		if dn.Fade != nil {
			v, _ := dn.Fade.Update(float32(ctx.DT))
			dn.Alpha = float64(v)
		}

		transform := components.Transform.Get(e)
		transform.Position = gamemath.Add(transform.Position, gamemath.Scale(dn.Velocity, ctx.DT))
		dn.Velocity = gamemath.Decay(dn.Velocity, cfg.DamageNumber.Decay)

		if dn.Lifetime.Finished() {
			toRemove = append(toRemove, e.Entity())
		}
	})
	for _, e := range toRemove {
		ecs.World.Remove(e)
	}
}
