package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-rogue/archetypes"
	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/timer"
)

// CreateDamageNumber spawns a floating number at pos. spread is a uniform
// roll in [0,1) deciding the sideways drift.
func CreateDamageNumber(ecs *ecs.ECS, pos math.Vec2, amount float64, isCrit bool, spread float64) *donburi.Entry {
	number := archetypes.DamageNumber.Spawn(ecs)

	lifetime := cfg.DamageNumber.Lifetime
	var fade *gween.Tween
	if lifetime > 0 {
		fade = gween.New(1, 0, float32(lifetime), ease.Linear)
	}

	components.DamageNumber.SetValue(number, components.DamageNumberData{
		Amount: amount,
		IsCrit: isCrit,
		Velocity: math.Vec2{
			X: (spread*2 - 1) * cfg.DamageNumber.Spread,
			Y: cfg.DamageNumber.RiseSpeed,
		},
		Lifetime: timer.New(lifetime),
		Fade:     fade,
		Alpha:    1,
	})
	components.Transform.SetValue(number, components.TransformData{Position: pos})

	return number
}
