package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/resources"
	"github.com/automoto/doomerang-rogue/systems/factory"
)

// minDamage is the floor after armor so every hit does something.
const minDamage = 1.0

// ComputeDamage resolves a pre-mitigation amount against the defender's
// stats: crit roll, flat armor with a floor, then percentage reduction.
func ComputeDamage(base, critChance, critDamage float64, defender *components.CombatStatsData, rng RandSource) (float64, bool) {
	d := base
	crit := rng.Float64() < critChance
	if crit {
		d *= critDamage
	}
	if defender == nil {
		return max(d, minDamage), crit
	}
	d = max(d-defender.Armor, minDamage)
	d *= 1 - defender.DamageReduction
	return d, crit
}

// pendingHit is a ledger record waiting for damage resolution.
type pendingHit struct {
	owner      donburi.Entity
	target     donburi.Entity
	damage     float64
	critChance float64
	critDamage float64
}

// UpdateDamage resolves every new ledger record exactly once.
func UpdateDamage(ecs *ecs.ECS, ctx *Context) {
	var pending []pendingHit
	components.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hb := components.Hitbox.Get(e)
		for i := range hb.Ledger {
			rec := &hb.Ledger[i]
			if rec.DamageApplied {
				continue
			}
			// Marked before resolution so a skipped record never re-fires.
			rec.DamageApplied = true
			pending = append(pending, pendingHit{
				owner:      hb.Owner,
				target:     rec.Target,
				damage:     hb.Damage,
				critChance: hb.CritChance,
				critDamage: hb.CritDamage,
			})
		}
	})

	for _, hit := range pending {
		applyHit(ecs, ctx, hit)
	}
}

func applyHit(ecs *ecs.ECS, ctx *Context, hit pendingHit) {
	target := entryOf(ecs.World, hit.target)
	if target == nil || target.HasComponent(components.Death) || !target.HasComponent(components.Health) {
		return
	}

	var defender *components.CombatStatsData
	if target.HasComponent(components.CombatStats) {
		defender = components.CombatStats.Get(target)
	}
	amount, crit := ComputeDamage(hit.damage, hit.critChance, hit.critDamage, defender, ctx.Rand)

	health := components.Health.Get(target)
	died := health.TakeDamage(amount)

	attacker := entryOf(ecs.World, hit.owner)
	ctx.Log.Add(resources.DamageEvent{
		RunID:      ctx.Stats.RunID,
		Source:     combatantLabel(attacker),
		Target:     combatantLabel(target),
		Amount:     amount,
		IsCrit:     crit,
		DamageType: cfg.DamagePhysical,
		Timestamp:  ctx.Time,
	})
	if attacker != nil && isLocalPlayer(attacker) {
		ctx.Stats.DamageDealt += amount
	}
	if isLocalPlayer(target) {
		ctx.Stats.DamageTaken += amount
	}

	pos := components.Transform.Get(target).Position
	factory.CreateDamageNumber(ecs, pos, amount, crit, ctx.Rand.Float64())
	ctx.Presenter.DamageNumberSpawned(DamageNumberView{Position: pos, Amount: amount, IsCrit: crit})

	if died {
		markDead(target)
	}

	if attacker != nil && attacker.HasComponent(components.Enemy) &&
		components.Enemy.Get(attacker).HasModifier(cfg.EliteVampiric) &&
		attacker.HasComponent(components.Health) {
		components.Health.Get(attacker).Heal(amount * cfg.Elite.VampiricFraction)
	}
}

// markDead flags e for the death system.
func markDead(e *donburi.Entry) {
	if !e.HasComponent(components.Death) {
		donburi.Add(e, components.Death, &components.DeathData{})
	}
}
