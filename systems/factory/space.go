package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-rogue/archetypes"
	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
)

// CreateSpace creates the collision space covering the arena plus a margin
// so projectiles leaving the room still have cells to live in.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	width := int(2 * (cfg.Arena.HalfWidth + cfg.Arena.Margin))
	height := int(2 * (cfg.Arena.HalfHeight + cfg.Arena.Margin))
	cell := cfg.Arena.CellSize
	if cell < 1 {
		cell = 32
	}
	spaceData := resolv.NewSpace(width, height, cell, cell)
	components.Space.Set(space, spaceData)
	return space
}

// SpaceRect converts a centered box in arena coordinates (+Y up) into the
// top-left corner used by the collision space (+Y down).
func SpaceRect(pos, size math.Vec2) (x, y float64) {
	x = pos.X - size.X/2 + cfg.Arena.HalfWidth + cfg.Arena.Margin
	y = cfg.Arena.HalfHeight + cfg.Arena.Margin - pos.Y - size.Y/2
	return x, y
}

// SyncObject moves obj to the box centered at pos.
func SyncObject(obj *resolv.Object, pos math.Vec2) {
	obj.X, obj.Y = SpaceRect(pos, math.Vec2{X: obj.W, Y: obj.H})
	obj.Update()
}

// ArenaPos converts a point in collision space coordinates back into the
// arena frame.
func ArenaPos(x, y float64) math.Vec2 {
	return math.Vec2{
		X: x - cfg.Arena.HalfWidth - cfg.Arena.Margin,
		Y: cfg.Arena.HalfHeight + cfg.Arena.Margin - y,
	}
}

// attachHurtbox creates the resolv proxy of e's collision volume and adds it
// to the space when one exists.
func attachHurtbox(ecs *ecs.ECS, e *donburi.Entry, pos, size math.Vec2, tags ...string) *resolv.Object {
	x, y := SpaceRect(pos, size)
	obj := resolv.NewObject(x, y, size.X, size.Y, tags...)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
