package components

import (
	"github.com/automoto/doomerang-rogue/timer"
	"github.com/yohamta/donburi"
)

// ProjectileData drives a moving hitbox. Damage and the ledger live on the
// Hitbox component of the same entry.
type ProjectileData struct {
	Speed    float64
	Lifetime timer.Timer
	Piercing int // Extra targets allowed after the first
}

var Projectile = donburi.NewComponentType[ProjectileData]()
