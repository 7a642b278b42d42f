package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
)

// cancelWindow is the startup fraction after which an attack may be
// cancelled into another.
const cancelWindow = 0.8

// minAttackSpeed keeps phase durations finite.
const minAttackSpeed = 0.1

// StartAttack begins requested on state if allowed and reports whether it
// did. A combatant that is mid-dash may only start a Dash attack.
func StartAttack(state *components.AttackStateData, requested cfg.AttackType, stats *components.CombatStatsData, dashing bool) bool {
	if state.IsAttacking && !state.CanCancel {
		return false
	}
	if dashing && requested != cfg.AttackDash {
		return false
	}
	attack, ok := cfg.Attacks[requested]
	if !ok {
		return false
	}

	speed := 1.0
	if stats != nil {
		speed = stats.AttackSpeed
	}
	if math.IsNaN(speed) || speed < minAttackSpeed {
		speed = minAttackSpeed
	}
	scale := 1 / speed

	state.IsAttacking = true
	state.AttackType = requested
	state.Startup.Reset(attack.Startup * scale)
	state.Active.Reset(attack.Active * scale)
	state.Recovery.Reset(attack.Recovery * scale)
	state.CanCancel = attack.CancelImmediately

	if requested == cfg.AttackLight {
		state.ComboCount = state.ComboCount%3 + 1
	} else {
		state.ComboCount = 0
	}

	state.AttackID++
	state.HitboxSpawned = false
	return true
}

// AdvanceAttack moves the running attack forward by dt. Exactly one phase
// clock advances per call.
func AdvanceAttack(state *components.AttackStateData, dt float64) {
	if !state.IsAttacking {
		return
	}

	switch {
	case !state.Startup.Finished():
		state.Startup.Tick(dt)
		if state.Startup.Fraction() > cancelWindow {
			state.CanCancel = true
		}
	case !state.Active.Finished():
		state.Active.Tick(dt)
	default:
		state.Recovery.Tick(dt)
		state.CanCancel = true
		if state.Recovery.Finished() {
			state.IsAttacking = false
			state.CanCancel = false
		}
	}
}

// UpdateAttackStates advances every attack in progress.
func UpdateAttackStates(ecs *ecs.ECS, ctx *Context) {
	components.AttackState.Each(ecs.World, func(e *donburi.Entry) {
		AdvanceAttack(components.AttackState.Get(e), ctx.DT)
	})
}

// UpdatePlayerAttacks starts the oldest buffered attack the player can
// perform. Rejected requests stay buffered until they expire.
func UpdatePlayerAttacks(ecs *ecs.ECS, ctx *Context) {
	player, ok := localPlayer(ecs.World)
	if !ok || player.HasComponent(components.Death) {
		return
	}

	buffer := components.InputBuffer.Get(player)
	state := components.AttackState.Get(player)
	stats := components.CombatStats.Get(player)
	dashing := components.Dash.Get(player).Active

	taken, started := buffer.Take(func(a components.BufferedAction) bool {
		requested, isAttack := attackFor(a.Action, dashing)
		if !isAttack {
			return false
		}
		return StartAttack(state, requested, stats, dashing)
	})
	if !started {
		if len(buffer.Actions) > 0 && state.IsAttacking {
			ctx.Logger.Debug("attack rejected",
				zap.Stringer("current", state.AttackType),
				zap.Stringer("phase", state.Phase()))
		}
		return
	}
	ctx.Logger.Debug("attack started",
		zap.Stringer("action", taken.Action),
		zap.Stringer("attack", state.AttackType),
		zap.Int("combo", state.ComboCount))
}

// attackFor maps a buffered action to the attack it requests. A light
// attack pressed mid-dash becomes a dash attack.
func attackFor(action cfg.Action, dashing bool) (cfg.AttackType, bool) {
	switch action {
	case cfg.ActionLightAttack:
		if dashing {
			return cfg.AttackDash, true
		}
		return cfg.AttackLight, true
	case cfg.ActionHeavyAttack:
		return cfg.AttackHeavy, true
	case cfg.ActionSpecial:
		return cfg.AttackSpecial, true
	}
	return 0, false
}
