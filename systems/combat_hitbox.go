package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/shared/gamemath"
	"github.com/automoto/doomerang-rogue/systems/factory"
	"github.com/automoto/doomerang-rogue/tags"
)

// UpdateCombatHitboxes spawns hitboxes for attacks entering their active
// phase, keeps melee hitboxes on their owners and records new hits.
func UpdateCombatHitboxes(ecs *ecs.ECS, ctx *Context) {
	spawnAttackHitboxes(ecs)
	followOwners(ecs)
	detectHits(ecs)
}

func spawnAttackHitboxes(ecs *ecs.ECS) {
	// Collect first: creating entities while iterating is not allowed.
	var attackers []*donburi.Entry
	components.AttackState.Each(ecs.World, func(e *donburi.Entry) {
		state := components.AttackState.Get(e)
		if state.InActivePhase() && !state.HitboxSpawned && !e.HasComponent(components.Death) {
			attackers = append(attackers, e)
		}
	})

	for _, e := range attackers {
		state := components.AttackState.Get(e)
		attack, ok := cfg.Attacks[state.AttackType]
		if !ok {
			continue
		}
		damage := components.CombatStats.Get(e).Damage * attack.Multiplier(state.ComboCount)
		factory.CreateAttackHitbox(ecs, e, attack, damage)
		state.HitboxSpawned = true
	}
}

func followOwners(ecs *ecs.ECS) {
	components.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hb := components.Hitbox.Get(e)
		if hb.Source == components.SourceProjectile {
			return
		}
		owner := entryOf(ecs.World, hb.Owner)
		if owner == nil || !owner.HasComponent(components.Transform) {
			return
		}
		ownerTransform := components.Transform.Get(owner)
		transform := components.Transform.Get(e)
		transform.Position = factory.HitboxPosition(ownerTransform, hb.Offset)
		transform.Facing = ownerTransform.Facing
	})
}

func detectHits(ecs *ecs.ECS) {
	space := spaceOf(ecs.World)
	if space != nil {
		syncHurtboxProxies(ecs.World)
	}

	components.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hb := components.Hitbox.Get(e)
		if !hb.Active {
			return
		}
		pos := components.Transform.Get(e).Position

		for _, target := range hurtboxCandidates(ecs.World, space, pos, hb.Size) {
			if target.Entity() == hb.Owner || hb.HasHit(target.Entity()) {
				continue
			}
			if target.HasComponent(components.Death) {
				continue
			}
			hurtbox := components.Hurtbox.Get(target)
			if hurtbox.Invulnerable {
				continue
			}
			targetPos := components.Transform.Get(target).Position
			if !gamemath.Overlaps(pos, hb.Size, targetPos, hurtbox.Size) {
				continue
			}
			hb.Record(target.Entity())
			if hb.MaxTargets > 0 && len(hb.Ledger) >= hb.MaxTargets {
				hb.Active = false
				return
			}
		}
	})
}

// hurtboxCandidates returns the entries whose hurtbox may overlap the box at
// pos. The collision space is only a broadphase; without one every hurtbox
// is a candidate.
func hurtboxCandidates(w donburi.World, space *resolv.Space, pos, size math.Vec2) []*donburi.Entry {
	var out []*donburi.Entry
	if space == nil {
		components.Hurtbox.Each(w, func(e *donburi.Entry) {
			if e.HasComponent(components.Transform) {
				out = append(out, e)
			}
		})
		return out
	}

	x, y := factory.SpaceRect(pos, size)
	probe := resolv.NewObject(x, y, size.X, size.Y)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvHurtbox)
	if check == nil {
		return nil
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvHurtbox) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Hurtbox) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// CleanupHitboxes removes hitboxes whose attack is over. Runs after damage
// and knockback so every recorded hit is resolved first.
func CleanupHitboxes(ecs *ecs.ECS, ctx *Context) {
	var toRemove []donburi.Entity
	components.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		if hitboxExpired(ecs.World, e) {
			toRemove = append(toRemove, e.Entity())
		}
	})
	for _, e := range toRemove {
		RemoveRecursive(ecs, e)
	}
}

func hitboxExpired(w donburi.World, e *donburi.Entry) bool {
	hb := components.Hitbox.Get(e)
	owner := entryOf(w, hb.Owner)
	if owner == nil {
		return true
	}

	switch hb.Source {
	case components.SourceAttack:
		if !owner.HasComponent(components.AttackState) {
			return true
		}
		state := components.AttackState.Get(owner)
		return !state.InActivePhase() || state.AttackID != hb.AttackID
	case components.SourceIntent:
		if !owner.HasComponent(components.EnemyAI) {
			return true
		}
		ai := components.EnemyAI.Get(owner)
		return ai.State != cfg.AIAttacking || ai.AttackSeq != hb.AttackID
	case components.SourceProjectile:
		return projectileExpired(e, hb)
	}
	return true
}
