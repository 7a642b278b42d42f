package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/shared/gamemath"
	"github.com/automoto/doomerang-rogue/systems/factory"
)

// UpdatePhysics integrates velocity, keeps combatants inside the arena and
// moves their collision proxies.
func UpdatePhysics(ecs *ecs.ECS, ctx *Context) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		transform := components.Transform.Get(e)

		transform.Position = gamemath.Add(transform.Position, gamemath.Scale(physics.Velocity, ctx.DT))

		if e.HasComponent(components.Hurtbox) {
			size := components.Hurtbox.Get(e).Size
			transform.Position = gamemath.ClampToArena(transform.Position, size, cfg.Arena.HalfWidth, cfg.Arena.HalfHeight)
		}

		if e.HasComponent(components.Object) {
			if obj := components.Object.Get(e).Object; obj != nil {
				factory.SyncObject(obj, transform.Position)
			}
		}
	})
}

// syncHurtboxProxies moves every hurtbox proxy to its entity's position, so
// positions written outside UpdatePhysics are seen by the broadphase.
func syncHurtboxProxies(w donburi.World) {
	components.Hurtbox.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) || !e.HasComponent(components.Transform) {
			return
		}
		if obj := components.Object.Get(e).Object; obj != nil {
			factory.SyncObject(obj, components.Transform.Get(e).Position)
		}
	})
}

// spaceOf returns the collision space, or nil if none was created.
func spaceOf(w donburi.World) *resolv.Space {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(spaceEntry)
}
