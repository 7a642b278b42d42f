package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/shared/gamemath"
)

// UpdateProjectiles ticks projectile lifetimes. Removal happens in
// CleanupHitboxes on the following tick.
func UpdateProjectiles(ecs *ecs.ECS, ctx *Context) {
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		components.Projectile.Get(e).Lifetime.Tick(ctx.DT)
	})
}

func projectileExpired(e *donburi.Entry, hb *components.HitboxData) bool {
	if !hb.Active || !e.HasComponent(components.Projectile) {
		return true
	}
	if components.Projectile.Get(e).Lifetime.Finished() {
		return true
	}
	pos := components.Transform.Get(e).Position
	return !gamemath.InArena(pos, cfg.Arena.HalfWidth, cfg.Arena.HalfHeight)
}
