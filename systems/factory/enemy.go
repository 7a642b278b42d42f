package factory

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-rogue/archetypes"
	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/tags"
)

// SpawnMeleeEnemy spawns a melee enemy at pos, scaled to level and attached
// to room.
func SpawnMeleeEnemy(ecs *ecs.ECS, room donburi.Entity, pos math.Vec2, enemyType cfg.EnemyType, level int) (*donburi.Entry, error) {
	if enemyType.IsRanged() {
		return nil, fmt.Errorf("spawn melee enemy: %s is a ranged type", enemyType)
	}
	return SpawnEnemy(ecs, room, pos, enemyType, level)
}

// SpawnRangedEnemy spawns a ranged enemy at pos, scaled to level and
// attached to room.
func SpawnRangedEnemy(ecs *ecs.ECS, room donburi.Entity, pos math.Vec2, enemyType cfg.EnemyType, level int) (*donburi.Entry, error) {
	if !enemyType.IsRanged() {
		return nil, fmt.Errorf("spawn ranged enemy: %s is a melee type", enemyType)
	}
	return SpawnEnemy(ecs, room, pos, enemyType, level)
}

// SpawnEnemy spawns any enemy type from the tuning tables.
func SpawnEnemy(ecs *ecs.ECS, room donburi.Entity, pos math.Vec2, enemyType cfg.EnemyType, level int) (*donburi.Entry, error) {
	typeConfig, ok := cfg.Enemies[enemyType]
	if !ok {
		return nil, fmt.Errorf("spawn enemy: no tuning for type %d", int(enemyType))
	}
	if level < 0 {
		level = 0
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Type:        enemyType,
		TypeConfig:  &typeConfig, // Snapshot at spawn; tuning reloads reach new spawns only
		Behavior:    typeConfig.Behavior,
		AggroRange:  typeConfig.AggroRange,
		AttackRange: typeConfig.AttackRange,
		Level:       level,
	})
	components.EnemyAI.SetValue(enemy, components.EnemyAIData{State: cfg.AIIdle})
	components.Transform.SetValue(enemy, components.TransformData{
		Position: pos,
		Facing:   math.Vec2{X: -1}, // Start facing left
	})
	components.Health.SetValue(enemy, components.NewHealth(typeConfig.HealthAt(level)))
	components.CombatStats.SetValue(enemy, components.CombatStatsData{
		Damage:          typeConfig.DamageAt(level),
		CritChance:      typeConfig.CritChance,
		CritDamage:      typeConfig.CritDamage,
		AttackSpeed:     typeConfig.AttackSpeed,
		Armor:           typeConfig.Armor,
		DamageReduction: typeConfig.DamageReduction,
	})
	components.Parent.SetValue(enemy, components.ParentData{Entity: room})

	size := typeConfig.Hurtbox.Vec()
	components.Hurtbox.SetValue(enemy, components.HurtboxData{Size: size})
	attachHurtbox(ecs, enemy, pos, size, tags.ResolvHurtbox, tags.ResolvEnemy)

	return enemy, nil
}

// ApplyEliteModifier records mod on the enemy and applies its stat changes.
// Applying the same modifier twice has no further effect.
func ApplyEliteModifier(enemy *donburi.Entry, mod cfg.EliteModifier) {
	if !enemy.HasComponent(components.Enemy) {
		return
	}
	data := components.Enemy.Get(enemy)
	if data.HasModifier(mod) {
		return
	}
	data.Modifiers = append(data.Modifiers, mod)

	stats := components.CombatStats.Get(enemy)
	switch mod {
	case cfg.EliteArmored:
		stats.Armor += cfg.Elite.ArmoredArmor
	case cfg.EliteBerserker:
		stats.Damage *= cfg.Elite.BerserkerDamage
		stats.AttackSpeed *= cfg.Elite.BerserkerAttackSpeed
	case cfg.EliteShielded:
		stats.DamageReduction = min(stats.DamageReduction+cfg.Elite.ShieldedReduction, cfg.Elite.MaxDamageReduction)
	}
	// Regenerating and Vampiric are read by the systems; Explosive is
	// recorded only.
}
