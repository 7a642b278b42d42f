package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/tags"
)

// UpdateRoom refreshes the active room's enemy count, clears the room the
// first time it empties and keeps the boss-fight run state in step.
func UpdateRoom(ecs *ecs.ECS, ctx *Context) {
	roomEntry, ok := components.Room.First(ecs.World)
	if !ok {
		return
	}
	room := components.Room.Get(roomEntry)

	remaining, bossAlive := countEnemies(ecs.World, roomEntry.Entity())
	room.EnemiesRemaining = remaining

	if remaining == 0 && room.EnemyCount > 0 && !room.Cleared {
		room.Cleared = true
		room.DoorsLocked = false
		ctx.Stats.RoomsCleared++
		ctx.Logger.Info("room cleared",
			zap.String("room", room.Name),
			zap.Int("rooms_cleared", ctx.Stats.RoomsCleared))
	}

	ctx.State.SetBossFight(bossAlive)
}

// EnemiesRemaining counts the live enemies attached to the active room.
func EnemiesRemaining(w donburi.World) int {
	roomEntry, ok := components.Room.First(w)
	if !ok {
		return 0
	}
	n, _ := countEnemies(w, roomEntry.Entity())
	return n
}

func countEnemies(w donburi.World, room donburi.Entity) (count int, bossAlive bool) {
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) || components.Parent.Get(e).Entity != room {
			return
		}
		count++
		if components.Enemy.Get(e).Type == cfg.Boss {
			bossAlive = true
		}
	})
	return count, bossAlive
}
