package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Hitbox       = donburi.NewTag().SetName("Hitbox")
	Projectile   = donburi.NewTag().SetName("Projectile")
	Telegraph    = donburi.NewTag().SetName("Telegraph")
	DamageNumber = donburi.NewTag().SetName("DamageNumber")
	Room         = donburi.NewTag().SetName("Room")
	Hazard       = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for collision queries
const (
	ResolvHurtbox = "hurtbox"
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvHazard  = "hazard"
)
