package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-rogue/archetypes"
	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/shared/gamemath"
	"github.com/automoto/doomerang-rogue/timer"
)

// CreateProjectile fires a projectile from owner along dir. dir must be a
// unit vector.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry, dir math.Vec2, damage float64) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	stats := components.CombatStats.Get(owner)
	components.Hitbox.SetValue(projectile, components.HitboxData{
		Owner:      owner.Entity(),
		Source:     components.SourceProjectile,
		Size:       cfg.Projectile.Size.Vec(),
		Damage:     damage,
		Knockback:  cfg.Projectile.Knockback,
		Active:     true,
		MaxTargets: cfg.Projectile.Piercing + 1,
		CritChance: stats.CritChance,
		CritDamage: stats.CritDamage,
	})
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Speed:    cfg.Projectile.Speed,
		Lifetime: timer.New(cfg.Projectile.Lifetime),
		Piercing: cfg.Projectile.Piercing,
	})
	components.Transform.SetValue(projectile, components.TransformData{
		Position: components.Transform.Get(owner).Position,
		Facing:   dir,
	})
	components.Physics.SetValue(projectile, components.PhysicsData{
		Velocity: gamemath.Scale(dir, cfg.Projectile.Speed),
	})

	return projectile
}
