package components

import (
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/yohamta/donburi"
)

// RoomData is the active combat room. Enemies and hazards are attached to
// it through ParentData.
type RoomData struct {
	Name             string
	Level            int
	EnemyCount       int
	EnemiesRemaining int
	Cleared          bool
	DoorsLocked      bool
}

// ParentData links an attachment to the entity that owns it. Removing the
// parent removes its children.
type ParentData struct {
	Entity donburi.Entity
}

// HazardData damages the local player while in range.
type HazardData struct {
	Type            cfg.HazardType
	DamagePerSecond float64
	Radius          float64
}

var (
	Room   = donburi.NewComponentType[RoomData]()
	Parent = donburi.NewComponentType[ParentData]()
	Hazard = donburi.NewComponentType[HazardData]()
)
