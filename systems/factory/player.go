package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-rogue/archetypes"
	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/tags"
)

// CreatePlayer spawns the locally controlled player at pos.
func CreatePlayer(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{Local: true})
	components.Transform.SetValue(player, components.TransformData{
		Position: pos,
		Facing:   math.Vec2{X: 1},
	})
	components.Health.SetValue(player, components.NewHealth(cfg.Player.Health))
	components.CombatStats.SetValue(player, components.CombatStatsData{
		Damage:          cfg.Player.Damage,
		CritChance:      cfg.Player.CritChance,
		CritDamage:      cfg.Player.CritDamage,
		AttackSpeed:     cfg.Player.AttackSpeed,
		Armor:           cfg.Player.Armor,
		DamageReduction: cfg.Player.DamageReduction,
	})

	size := cfg.Player.Hurtbox.Vec()
	components.Hurtbox.SetValue(player, components.HurtboxData{Size: size})
	attachHurtbox(ecs, player, pos, size, tags.ResolvHurtbox, tags.ResolvPlayer)

	return player
}
