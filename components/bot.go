package components

import (
	"github.com/automoto/doomerang-rogue/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BotData drives the player from a scripted opponent instead of a device.
type BotData struct {
	Target         donburi.Entity
	HasTarget      bool
	Path           []math.Vec2 // Remaining waypoints, nearest first
	RepathTimer    timer.Timer
	AttackCooldown timer.Timer
	LightsThrown   int // Light attacks since the last heavy
}

var Bot = donburi.NewComponentType[BotData]()
