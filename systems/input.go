package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-rogue/components"
)

// UpdateInput drops buffered actions that have waited longer than the
// buffer window. Must run BEFORE every system that consumes the buffer.
func UpdateInput(ecs *ecs.ECS, ctx *Context) {
	components.InputBuffer.Each(ecs.World, func(e *donburi.Entry) {
		components.InputBuffer.Get(e).Expire(ctx.Time, ctx.MaxBufferTime)
	})
}
