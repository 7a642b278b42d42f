package archetypes

import (
	"github.com/automoto/doomerang-rogue/components"
	"github.com/automoto/doomerang-rogue/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Physics,
		components.Health,
		components.CombatStats,
		components.AttackState,
		components.Hurtbox,
		components.Object,
		components.Dash,
		components.InputBuffer,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.EnemyAI,
		components.Transform,
		components.Physics,
		components.Health,
		components.CombatStats,
		components.Hurtbox,
		components.Object,
		components.Parent,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Transform,
		components.Parent,
	)
	Projectile = newArchetype(
		tags.Hitbox,
		tags.Projectile,
		components.Hitbox,
		components.Projectile,
		components.Transform,
		components.Physics,
	)
	Telegraph = newArchetype(
		tags.Telegraph,
		components.Telegraph,
		components.Transform,
		components.Parent,
	)
	DamageNumber = newArchetype(
		tags.DamageNumber,
		components.DamageNumber,
		components.Transform,
	)
	Room = newArchetype(
		tags.Room,
		components.Room,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Transform,
		components.Parent,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
