package components

import (
	"github.com/automoto/doomerang-rogue/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Local      bool      // Controlled by this simulation's input stream
	MoveIntent math.Vec2 // Last requested movement direction, unit or zero
}

// DashData tracks the dash and its cooldown. The hurtbox is invulnerable
// while Active.
type DashData struct {
	Active    bool
	Direction math.Vec2
	Timer     timer.Timer
	Cooldown  timer.Timer
}

var (
	Player = donburi.NewComponentType[PlayerData]()
	Dash   = donburi.NewComponentType[DashData]()
)
