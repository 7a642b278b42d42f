package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"pgregory.net/rapid"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/systems/factory"
)

// combatTick runs the player-side pipeline in tick order.
func combatTick(e *ecs.ECS, ctx *Context) {
	UpdateAttackStates(e, ctx)
	UpdateCombatHitboxes(e, ctx)
	UpdateDamage(e, ctx)
	UpdateKnockback(e, ctx)
	UpdateDeaths(e, ctx)
	CleanupHitboxes(e, ctx)
	ctx.Time += ctx.DT
}

func TestComputeDamage_ArmorFloor(t *testing.T) {
	got, crit := ComputeDamage(5, 0, 2, &components.CombatStatsData{Armor: 100}, fixedRand(0.5))
	assert.False(t, crit)
	assert.Equal(t, 1.0, got)
}

func TestComputeDamage_ArmorThenReduction(t *testing.T) {
	got, _ := ComputeDamage(100, 0, 2, &components.CombatStatsData{Armor: 10, DamageReduction: 0.5}, fixedRand(0.5))
	assert.InDelta(t, 45.0, got, 1e-9)
}

func TestComputeDamage_CritChanceBounds(t *testing.T) {
	got, crit := ComputeDamage(10, 0, 2, nil, fixedRand(0))
	assert.False(t, crit, "zero chance never crits")
	assert.Equal(t, 10.0, got)

	got, crit = ComputeDamage(10, 1, 2, nil, fixedRand(0.999))
	assert.True(t, crit, "full chance always crits")
	assert.Equal(t, 20.0, got)
}

func TestProperty_ComputeDamage_Bounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := rapid.Float64Range(0, 1000).Draw(rt, "base")
		critDamage := rapid.Float64Range(1, 4).Draw(rt, "critDamage")
		defender := &components.CombatStatsData{
			Armor:           rapid.Float64Range(0, 500).Draw(rt, "armor"),
			DamageReduction: rapid.Float64Range(0, 0.9).Draw(rt, "reduction"),
		}
		roll := rapid.Float64Range(0, 0.999).Draw(rt, "roll")

		got, _ := ComputeDamage(base, 0.5, critDamage, defender, fixedRand(roll))
		floor := minDamage * (1 - defender.DamageReduction)
		assert.GreaterOrEqual(rt, got, floor-1e-9)
		assert.LessOrEqual(rt, got, max(base*critDamage, minDamage)+1e-9)
	})
}

func TestProperty_SwingHitsEachTargetOnce(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e, room := newTestWorld(t)
		ctx := newTestContext()
		ctx.Rand = fixedRand(0.99) // no crits

		player := factory.CreatePlayer(e, math.Vec2{})
		components.CombatStats.Get(player).AttackSpeed = rapid.Float64Range(0.5, 2).Draw(rt, "speed")
		offsetY := rapid.Float64Range(-10, 10).Draw(rt, "offsetY")
		enemy := spawnEnemy(t, e, room, cfg.CommonMelee, math.Vec2{X: 40, Y: offsetY})
		startHealth := components.Health.Get(enemy).Current

		state := components.AttackState.Get(player)
		if !StartAttack(state, cfg.AttackLight, components.CombatStats.Get(player), false) {
			rt.Fatalf("start rejected")
		}
		for i := 0; i < 1000 && state.IsAttacking; i++ {
			ctx.DT = rapid.Float64Range(0.001, 0.05).Draw(rt, "dt")
			combatTick(e, ctx)
		}

		require.True(rt, enemy.Valid())
		want := startHealth - cfg.Player.Damage*cfg.Attacks[cfg.AttackLight].Multiplier(1)
		assert.InDelta(rt, want, components.Health.Get(enemy).Current, 1e-9)
		assert.Equal(rt, 1, ctx.Log.Len())
		assert.Equal(rt, cfg.Player.Health, components.Health.Get(player).Current, "owner never hits itself")

		hitboxes := 0
		components.Hitbox.Each(e.World, func(*donburi.Entry) { hitboxes++ })
		assert.Zero(rt, hitboxes, "hitbox cleaned up after the active phase")
	})
}

func TestUpdateDamage_RecordsStatsAndPresents(t *testing.T) {
	e, room := newTestWorld(t)
	ctx := newTestContext()
	presenter := &recordingPresenter{}
	ctx.Presenter = presenter

	player := factory.CreatePlayer(e, math.Vec2{})
	enemy := spawnEnemy(t, e, room, cfg.CommonMelee, math.Vec2{X: 40})

	hb := factory.CreateAttackHitbox(e, player, cfg.Attacks[cfg.AttackLight], 50)
	components.Hitbox.Get(hb).Record(enemy.Entity())
	UpdateDamage(e, ctx)
	UpdateDamage(e, ctx)

	assert.Equal(t, 150.0, components.Health.Get(enemy).Current)
	assert.Equal(t, 50.0, ctx.Stats.DamageDealt)
	require.Len(t, presenter.numbers, 1)
	assert.Equal(t, 50.0, presenter.numbers[0].Amount)

	events := ctx.Log.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Player", events[0].Source)
	assert.Equal(t, cfg.CommonMelee.String(), events[0].Target)
	assert.Equal(t, cfg.DamagePhysical, events[0].DamageType)
	assert.Equal(t, ctx.Stats.RunID, events[0].RunID)
}

func TestUpdateDamage_KillFlagsDeathAndVampiricHeals(t *testing.T) {
	e, room := newTestWorld(t)
	ctx := newTestContext()

	player := factory.CreatePlayer(e, math.Vec2{})
	enemy := spawnEnemy(t, e, room, cfg.CommonMelee, math.Vec2{X: 40})
	factory.ApplyEliteModifier(enemy, cfg.EliteVampiric)
	components.Health.Get(enemy).TakeDamage(100)

	hb := factory.CreateEnemyMeleeHitbox(e, enemy, math.Vec2{X: 40, Y: 40}, 40, 1)
	components.Hitbox.Get(hb).Record(player.Entity())
	UpdateDamage(e, ctx)

	assert.Equal(t, 60.0, components.Health.Get(player).Current)
	assert.InDelta(t, 100+40*cfg.Elite.VampiricFraction, components.Health.Get(enemy).Current, 1e-9)
	assert.Equal(t, 40.0, ctx.Stats.DamageTaken)

	killer := factory.CreateEnemyMeleeHitbox(e, enemy, math.Vec2{X: 40, Y: 40}, 500, 2)
	components.Hitbox.Get(killer).Record(player.Entity())
	UpdateDamage(e, ctx)
	assert.Zero(t, components.Health.Get(player).Current)
	assert.True(t, player.HasComponent(components.Death))

	// Dead targets take no further damage
	again := factory.CreateEnemyMeleeHitbox(e, enemy, math.Vec2{X: 40, Y: 40}, 10, 3)
	components.Hitbox.Get(again).Record(player.Entity())
	before := ctx.Log.Len()
	UpdateDamage(e, ctx)
	assert.Equal(t, before, ctx.Log.Len())
}

func TestDetectHits_SeesPositionsWrittenOutsidePhysics(t *testing.T) {
	e, room := newTestWorld(t)
	ctx := newTestContext()

	player := factory.CreatePlayer(e, math.Vec2{})
	enemy := spawnEnemy(t, e, room, cfg.CommonMelee, math.Vec2{X: 300})
	components.Transform.Get(enemy).Position = math.Vec2{X: 40}

	hb := factory.CreateAttackHitbox(e, player, cfg.Attacks[cfg.AttackLight], 50)
	UpdateCombatHitboxes(e, ctx)

	assert.True(t, components.Hitbox.Get(hb).HasHit(enemy.Entity()))
}

func TestDetectHits_SkipsInvulnerableTargets(t *testing.T) {
	e, room := newTestWorld(t)
	ctx := newTestContext()

	player := factory.CreatePlayer(e, math.Vec2{})
	enemy := spawnEnemy(t, e, room, cfg.CommonMelee, math.Vec2{X: 30})
	components.Hurtbox.Get(player).Invulnerable = true

	hb := factory.CreateEnemyMeleeHitbox(e, enemy, math.Vec2{X: 40, Y: 40}, 10, 1)
	components.Transform.Get(enemy).Facing = math.Vec2{X: -1}
	UpdateCombatHitboxes(e, ctx)

	assert.Empty(t, components.Hitbox.Get(hb).Ledger)
}
