package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/shared/gamemath"
	"github.com/automoto/doomerang-rogue/systems/factory"
	"github.com/automoto/doomerang-rogue/tags"
)

// AITarget is what an enemy knows about the combatant it is fighting.
type AITarget struct {
	Entity   donburi.Entity
	Position dmath.Vec2
	Distance float64
}

// AdvanceEnemyAI runs one tick of the behaviour cycle and reports whether
// the state changed. healthFraction is the enemy's current/max health.
func AdvanceEnemyAI(ai *components.EnemyAIData, enemy *components.EnemyData, healthFraction float64, target AITarget, dt float64) bool {
	before := ai.State
	ai.StateTimer.Tick(dt)
	tc := enemy.TypeConfig

	switch ai.State {
	case cfg.AIIdle:
		if target.Distance < enemy.AggroRange {
			acquire(ai, target)
			enterChasing(ai, enemy, healthFraction)
		} else if enemy.Behavior == cfg.Patrol {
			ai.Enter(cfg.AIPatrolling, 0)
		}

	case cfg.AIPatrolling:
		if target.Distance < enemy.AggroRange {
			acquire(ai, target)
			enterChasing(ai, enemy, healthFraction)
		}

	case cfg.AIChasing:
		ai.LastKnownPosition = target.Position
		ai.HasLastKnown = true
		applyLowHealth(ai, enemy, healthFraction)

		switch {
		case target.Distance > enemy.AggroRange*cfg.AI.LeashMultiplier:
			ai.HasTarget = false
			ai.Enter(cfg.AIIdle, 0)
		case target.Distance < enemy.AttackRange:
			ai.Enter(cfg.AITelegraphing, tc.TelegraphDuration)
		}

	case cfg.AITelegraphing:
		if ai.StateTimer.Finished() {
			ai.Enter(cfg.AIAttacking, cfg.AI.AttackDuration)
		}

	case cfg.AIAttacking:
		if ai.StateTimer.Finished() {
			ai.Enter(cfg.AIRecovering, tc.RecoveryDuration)
		}

	case cfg.AIRecovering:
		if !ai.StateTimer.Finished() {
			break
		}
		if enemy.Behavior == cfg.Defensive && target.Distance < enemy.AttackRange*cfg.AI.FleeTrigger {
			ai.Enter(cfg.AIFleeing, cfg.AI.FleeDuration)
		} else {
			enterChasing(ai, enemy, healthFraction)
		}

	case cfg.AIFleeing:
		if ai.StateTimer.Finished() || target.Distance > enemy.AttackRange*cfg.AI.FleeRelease {
			enterChasing(ai, enemy, healthFraction)
		}
	}

	return ai.State != before
}

func acquire(ai *components.EnemyAIData, target AITarget) {
	ai.Target = target.Entity
	ai.HasTarget = true
}

func enterChasing(ai *components.EnemyAIData, enemy *components.EnemyData, healthFraction float64) {
	ai.Enter(cfg.AIChasing, cfg.AI.ChaseDelay)
	applyLowHealth(ai, enemy, healthFraction)
}

// applyLowHealth shortens the chase timer of a badly wounded enemy, once
// per Chasing stint.
func applyLowHealth(ai *components.EnemyAIData, enemy *components.EnemyData, healthFraction float64) {
	if ai.LowHealthApplied || enemy.Behavior == cfg.Support {
		return
	}
	if healthFraction < cfg.AI.LowHealthThreshold {
		ai.StateTimer.ScaleRemaining(cfg.AI.LowHealthFactor)
		ai.LowHealthApplied = true
	}
}

// targetOf returns the AI target for an enemy at pos, or false when there
// is no local player to fight.
func targetOf(w donburi.World, pos dmath.Vec2) (AITarget, bool) {
	player, ok := localPlayer(w)
	if !ok {
		return AITarget{}, false
	}
	playerPos := components.Transform.Get(player).Position
	return AITarget{
		Entity:   player.Entity(),
		Position: playerPos,
		Distance: gamemath.Distance(pos, playerPos),
	}, true
}

// UpdateEnemyAI advances the behaviour cycle of every live enemy.
func UpdateEnemyAI(ecs *ecs.ECS, ctx *Context) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		target, ok := targetOf(ecs.World, components.Transform.Get(e).Position)
		if !ok {
			return
		}

		ai := components.EnemyAI.Get(e)
		enemy := components.Enemy.Get(e)
		from := ai.State
		if AdvanceEnemyAI(ai, enemy, components.Health.Get(e).Fraction(), target, ctx.DT) {
			ctx.Logger.Debug("enemy state changed",
				zap.String("enemy_type", enemy.Type.String()),
				zap.Stringer("from", from),
				zap.Stringer("to", ai.State),
				zap.Float64("distance", target.Distance))
		}
	})
}

// UpdateEnemyMovement turns each enemy's AI state into a velocity.
func UpdateEnemyMovement(ecs *ecs.ECS, ctx *Context) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if e.HasComponent(components.Death) {
			physics.Velocity = dmath.Vec2{}
			return
		}
		transform := components.Transform.Get(e)
		target, ok := targetOf(ecs.World, transform.Position)
		if !ok {
			return
		}

		ai := components.EnemyAI.Get(e)
		enemy := components.Enemy.Get(e)
		speed := enemy.TypeConfig.MoveSpeed
		toward, hasDir := gamemath.Direction(transform.Position, target.Position)

		switch ai.State {
		case cfg.AIChasing:
			if hasDir && target.Distance > enemy.AttackRange*cfg.AI.ChaseStopFactor {
				physics.Velocity = gamemath.Scale(toward, speed)
			} else {
				physics.Velocity = dmath.Vec2{}
			}
			if hasDir {
				transform.Facing = toward
			}
		case cfg.AIFleeing:
			if hasDir && target.Distance < enemy.AttackRange*cfg.AI.FleeRelease {
				physics.Velocity = gamemath.Scale(toward, -speed*cfg.AI.FleeSpeedMultiplier)
			} else {
				physics.Velocity = dmath.Vec2{}
			}
		case cfg.AIPatrolling:
			physics.Velocity = dmath.Vec2{
				X: math.Cos(ctx.Time) * cfg.AI.PatrolSpeed,
				Y: math.Sin(ctx.Time) * cfg.AI.PatrolSpeed,
			}
		case cfg.AITelegraphing, cfg.AIAttacking, cfg.AIRecovering:
			physics.Velocity = gamemath.Decay(physics.Velocity, cfg.AI.ResidualVelocity)
			if hasDir && ai.State != cfg.AIAttacking {
				transform.Facing = toward
			}
		default:
			physics.Velocity = dmath.Vec2{}
		}
	})
}

// UpdateEnemyAttacks emits one attack intent per Attacking stint: a melee
// hitbox in front of melee enemies, a projectile for ranged ones.
func UpdateEnemyAttacks(ecs *ecs.ECS, ctx *Context) {
	var attackers []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		ai := components.EnemyAI.Get(e)
		if ai.State == cfg.AIAttacking && !ai.AttackIssued && !e.HasComponent(components.Death) {
			attackers = append(attackers, e)
		}
	})

	for _, e := range attackers {
		ai := components.EnemyAI.Get(e)
		ai.AttackIssued = true

		enemy := components.Enemy.Get(e)
		damage := components.CombatStats.Get(e).Damage
		if enemy.Type.IsRanged() {
			transform := components.Transform.Get(e)
			dir := transform.Facing
			if target, ok := targetOf(ecs.World, transform.Position); ok {
				if d, ok := gamemath.Direction(transform.Position, target.Position); ok {
					dir = d
				}
			}
			if d, ok := gamemath.Normalize(dir); ok {
				factory.CreateProjectile(ecs, e, d, damage)
			}
			continue
		}

		size := enemy.TypeConfig.MeleeHitbox.Vec()
		if size.X <= 0 || size.Y <= 0 {
			size = dmath.Vec2{X: 40, Y: 40}
		}
		factory.CreateEnemyMeleeHitbox(ecs, e, size, damage, ai.AttackSeq)
	}
}
