package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/doomerang-rogue/components"
	"github.com/automoto/doomerang-rogue/tags"
)

// UpdateDeaths handles every entity flagged with Death. Enemies are counted
// and removed with their attachments. The local player ends the run but
// stays in the world for the death screen.
func UpdateDeaths(ecs *ecs.ECS, ctx *Context) {
	var dead []donburi.Entity
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		dead = append(dead, e.Entity())
	})

	for _, entity := range dead {
		// An earlier removal may have taken this one with it.
		e := entryOf(ecs.World, entity)
		if e == nil {
			continue
		}
		if isLocalPlayer(e) {
			handlePlayerDeath(ctx, e)
			continue
		}

		if e.HasComponent(tags.Enemy) {
			ctx.Stats.EnemiesKilled++
			ctx.Logger.Info("enemy killed",
				zap.String("enemy_type", combatantLabel(e)),
				zap.Int("kills", ctx.Stats.EnemiesKilled))
		}
		RemoveRecursive(ecs, e.Entity())
	}
}

func handlePlayerDeath(ctx *Context, e *donburi.Entry) {
	death := components.Death.Get(e)
	if death.Handled {
		return
	}
	death.Handled = true
	ctx.Stats.Deaths++
	if ctx.State.Defeat() {
		ctx.Logger.Info("player defeated",
			zap.Int("kills", ctx.Stats.EnemiesKilled),
			zap.Float64("damage_dealt", ctx.Stats.DamageDealt))
	}
}
