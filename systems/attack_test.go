package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
	"pgregory.net/rapid"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/systems/factory"
)

func finishAttack(t *testing.T, state *components.AttackStateData, dt float64) {
	t.Helper()
	for i := 0; i < 10000 && state.IsAttacking; i++ {
		AdvanceAttack(state, dt)
	}
	require.False(t, state.IsAttacking, "attack never finished")
}

func TestStartAttack_LightComboCycles(t *testing.T) {
	var state components.AttackStateData
	stats := &components.CombatStatsData{AttackSpeed: 1}

	var combos []int
	for i := 0; i < 4; i++ {
		require.True(t, StartAttack(&state, cfg.AttackLight, stats, false))
		combos = append(combos, state.ComboCount)
		finishAttack(t, &state, 0.01)
	}
	assert.Equal(t, []int{1, 2, 3, 1}, combos)

	require.True(t, StartAttack(&state, cfg.AttackHeavy, stats, false))
	assert.Zero(t, state.ComboCount)
}

func TestStartAttack_RejectedUntilCancelWindow(t *testing.T) {
	var state components.AttackStateData
	stats := &components.CombatStatsData{AttackSpeed: 1}

	require.True(t, StartAttack(&state, cfg.AttackLight, stats, false))
	id := state.AttackID
	assert.False(t, StartAttack(&state, cfg.AttackHeavy, stats, false))
	assert.Equal(t, cfg.AttackLight, state.AttackType)

	// Past 80% of the 0.133s startup
	AdvanceAttack(&state, 0.12)
	assert.True(t, state.CanCancel)
	require.True(t, StartAttack(&state, cfg.AttackHeavy, stats, false))
	assert.Equal(t, cfg.AttackHeavy, state.AttackType)
	assert.Equal(t, id+1, state.AttackID)
	assert.False(t, state.HitboxSpawned)
}

func TestStartAttack_DashAttackCancelsImmediately(t *testing.T) {
	var state components.AttackStateData
	stats := &components.CombatStatsData{AttackSpeed: 1}

	assert.False(t, StartAttack(&state, cfg.AttackLight, stats, true), "only dash attacks mid-dash")
	require.True(t, StartAttack(&state, cfg.AttackDash, stats, true))
	assert.True(t, state.CanCancel)
}

func TestStartAttack_ScalesWithAttackSpeed(t *testing.T) {
	var state components.AttackStateData
	require.True(t, StartAttack(&state, cfg.AttackHeavy, &components.CombatStatsData{AttackSpeed: 2}, false))
	assert.InDelta(t, cfg.Attacks[cfg.AttackHeavy].Startup/2, state.Startup.Duration, 1e-9)

	var slow components.AttackStateData
	require.True(t, StartAttack(&slow, cfg.AttackHeavy, &components.CombatStatsData{AttackSpeed: 0}, false))
	assert.InDelta(t, cfg.Attacks[cfg.AttackHeavy].Startup/minAttackSpeed, slow.Startup.Duration, 1e-9)
}

func TestAdvanceAttack_ClearsCancelAtEnd(t *testing.T) {
	var state components.AttackStateData
	require.True(t, StartAttack(&state, cfg.AttackDash, nil, false))
	finishAttack(t, &state, 0.01)
	assert.False(t, state.CanCancel)
	assert.Equal(t, components.PhaseIdle, state.Phase())
}

func TestProperty_AttackPhasesRunInOrder(t *testing.T) {
	types := []cfg.AttackType{cfg.AttackLight, cfg.AttackHeavy, cfg.AttackDash, cfg.AttackSpecial}
	rapid.Check(t, func(rt *rapid.T) {
		attackType := rapid.SampledFrom(types).Draw(rt, "type")
		speed := rapid.Float64Range(0.25, 3).Draw(rt, "speed")
		dt := rapid.Float64Range(0.001, 0.05).Draw(rt, "dt")

		var state components.AttackStateData
		if !StartAttack(&state, attackType, &components.CombatStatsData{AttackSpeed: speed}, attackType == cfg.AttackDash) {
			rt.Fatalf("start rejected for idle state")
		}

		a := cfg.Attacks[attackType]
		total := (a.Startup + a.Active + a.Recovery) / speed
		maxSteps := int(total/dt) + 10

		last := components.PhaseStartup
		steps := 0
		for state.IsAttacking {
			AdvanceAttack(&state, dt)
			steps++
			phase := state.Phase()
			if phase != components.PhaseIdle && phase < last {
				rt.Fatalf("phase went from %s back to %s", last, phase)
			}
			if phase != components.PhaseIdle {
				last = phase
			}
			if steps > maxSteps {
				rt.Fatalf("attack still running after %d steps", steps)
			}
		}
		assert.True(rt, state.Startup.Finished())
		assert.True(rt, state.Active.Finished())
		assert.True(rt, state.Recovery.Finished())
	})
}

func TestUpdatePlayerAttacks_LightMidDashBecomesDashAttack(t *testing.T) {
	e, _ := newTestWorld(t)
	ctx := newTestContext()
	player := factory.CreatePlayer(e, math.Vec2{})
	components.Dash.Get(player).Active = true

	buffer := components.InputBuffer.Get(player)
	buffer.Actions = append(buffer.Actions, components.BufferedAction{Action: cfg.ActionLightAttack})

	UpdatePlayerAttacks(e, ctx)

	state := components.AttackState.Get(player)
	assert.True(t, state.IsAttacking)
	assert.Equal(t, cfg.AttackDash, state.AttackType)
	assert.Empty(t, buffer.Actions)
}

func TestUpdatePlayerAttacks_RejectedRequestStaysBuffered(t *testing.T) {
	e, _ := newTestWorld(t)
	ctx := newTestContext()
	player := factory.CreatePlayer(e, math.Vec2{})

	buffer := components.InputBuffer.Get(player)
	buffer.Actions = append(buffer.Actions,
		components.BufferedAction{Action: cfg.ActionHeavyAttack},
		components.BufferedAction{Action: cfg.ActionLightAttack},
	)
	UpdatePlayerAttacks(e, ctx)
	UpdatePlayerAttacks(e, ctx)

	assert.Equal(t, cfg.AttackHeavy, components.AttackState.Get(player).AttackType)
	require.Len(t, buffer.Actions, 1)
	assert.Equal(t, cfg.ActionLightAttack, buffer.Actions[0].Action)
}
