package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-rogue/archetypes"
	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/shared/gamemath"
)

// CreateAttackHitbox spawns the hitbox of owner's current attack. Damage is
// the pre-mitigation amount already scaled by the attack multiplier.
func CreateAttackHitbox(ecs *ecs.ECS, owner *donburi.Entry, attack cfg.AttackConfig, damage float64) *donburi.Entry {
	state := components.AttackState.Get(owner)
	return createHitbox(ecs, owner, components.HitboxData{
		Source:     components.SourceAttack,
		Size:       attack.Hitbox.Vec(),
		Offset:     attack.Offset.Vec(),
		Damage:     damage,
		Knockback:  attack.Knockback,
		AttackType: attack.Type,
		AttackID:   state.AttackID,
	})
}

// CreateEnemyMeleeHitbox spawns the hit volume of an enemy melee intent.
func CreateEnemyMeleeHitbox(ecs *ecs.ECS, owner *donburi.Entry, size math.Vec2, damage float64, attackSeq uint32) *donburi.Entry {
	return createHitbox(ecs, owner, components.HitboxData{
		Source:    components.SourceIntent,
		Size:      size,
		Offset:    math.Vec2{X: cfg.AI.MeleeOffset},
		Damage:    damage,
		Knockback: cfg.AI.MeleeKnockback,
		AttackID:  attackSeq,
	})
}

func createHitbox(ecs *ecs.ECS, owner *donburi.Entry, data components.HitboxData) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)

	data.Owner = owner.Entity()
	data.Active = true
	if owner.HasComponent(components.CombatStats) {
		stats := components.CombatStats.Get(owner)
		data.CritChance = stats.CritChance
		data.CritDamage = stats.CritDamage
	}
	components.Hitbox.SetValue(hitbox, data)

	ownerTransform := components.Transform.Get(owner)
	components.Transform.SetValue(hitbox, components.TransformData{
		Position: HitboxPosition(ownerTransform, data.Offset),
		Facing:   ownerTransform.Facing,
	})
	components.Parent.SetValue(hitbox, components.ParentData{Entity: owner.Entity()})

	return hitbox
}

// HitboxPosition places a local offset in front of the owner.
func HitboxPosition(owner *components.TransformData, offset math.Vec2) math.Vec2 {
	return gamemath.Add(owner.Position, gamemath.Orient(offset, owner.Facing))
}
