package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/resources"
	"github.com/automoto/doomerang-rogue/shared/gamemath"
)

// UpdateRegeneration heals enemies carrying the Regenerating modifier.
func UpdateRegeneration(ecs *ecs.ECS, ctx *Context) {
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) || !components.Enemy.Get(e).HasModifier(cfg.EliteRegenerating) {
			return
		}
		health := components.Health.Get(e)
		health.Heal(cfg.Elite.RegenFraction * health.Max * ctx.DT)
	})
}

// UpdateHazards damages the local player while standing in a hazard.
func UpdateHazards(ecs *ecs.ECS, ctx *Context) {
	player, ok := localPlayer(ecs.World)
	if !ok || player.HasComponent(components.Death) {
		return
	}
	if player.HasComponent(components.Hurtbox) && components.Hurtbox.Get(player).Invulnerable {
		return
	}
	playerPos := components.Transform.Get(player).Position
	health := components.Health.Get(player)

	var total float64
	components.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		hz := components.Hazard.Get(e)
		if gamemath.Distance(components.Transform.Get(e).Position, playerPos) < hz.Radius {
			total += hz.DamagePerSecond * ctx.DT
		}
	})
	if total <= 0 {
		return
	}

	died := health.TakeDamage(total)
	ctx.Stats.DamageTaken += total
	ctx.Log.Add(resources.DamageEvent{
		RunID:      ctx.Stats.RunID,
		Source:     "Hazard",
		Target:     "Player",
		Amount:     total,
		DamageType: cfg.DamageEnvironment,
		Timestamp:  ctx.Time,
	})
	if died {
		markDead(player)
	}
}
