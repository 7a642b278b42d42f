package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/shared/leveldata"
	"github.com/automoto/doomerang-rogue/systems/factory"
)

func TestUpdateKnockback_AddsImpulseOnce(t *testing.T) {
	w := donburi.NewWorld()
	e := ecsOf(w)
	target := w.Entry(w.Create(components.Transform, components.Physics))
	components.Transform.Get(target).Position = math.Vec2{X: 10}
	components.Physics.Get(target).Velocity = math.Vec2{Y: 5}

	hb := w.Entry(w.Create(components.Hitbox, components.Transform))
	components.Hitbox.Get(hb).Knockback = 50
	components.Hitbox.Get(hb).Record(target.Entity())

	UpdateKnockback(e, newTestContext())
	UpdateKnockback(e, newTestContext())

	assert.Equal(t, math.Vec2{X: 50, Y: 5}, components.Physics.Get(target).Velocity)
	assert.True(t, components.Hitbox.Get(hb).Ledger[0].KnockbackApplied)
}

func TestUpdateKnockback_CoincidentPositionsAreNoOp(t *testing.T) {
	w := donburi.NewWorld()
	target := w.Entry(w.Create(components.Transform, components.Physics))
	hb := w.Entry(w.Create(components.Hitbox, components.Transform))
	components.Hitbox.Get(hb).Knockback = 50
	components.Hitbox.Get(hb).Record(target.Entity())

	assert.NotPanics(t, func() { UpdateKnockback(ecsOf(w), newTestContext()) })
	assert.Equal(t, math.Vec2{}, components.Physics.Get(target).Velocity)
	assert.True(t, components.Hitbox.Get(hb).Ledger[0].KnockbackApplied)
}

func TestUpdateDeaths_EnemyRemovedWithAttachments(t *testing.T) {
	e, room := newTestWorld(t)
	ctx := newTestContext()
	enemy := spawnEnemy(t, e, room, cfg.CommonMelee, math.Vec2{X: 100})
	telegraph := factory.CreateTelegraph(e, enemy, cfg.Enemies[cfg.CommonMelee].Telegraph, 0.5)
	hitbox := factory.CreateEnemyMeleeHitbox(e, enemy, math.Vec2{X: 40, Y: 40}, 10, 1)

	markDead(enemy)
	UpdateDeaths(e, ctx)

	assert.False(t, e.World.Valid(enemy.Entity()))
	assert.False(t, e.World.Valid(telegraph.Entity()))
	assert.False(t, e.World.Valid(hitbox.Entity()))
	assert.True(t, e.World.Valid(room.Entity()))
	assert.Equal(t, 1, ctx.Stats.EnemiesKilled)
}

func TestUpdateDeaths_PlayerDefeatHandledOnce(t *testing.T) {
	e, _ := newTestWorld(t)
	ctx := newTestContext()
	player := factory.CreatePlayer(e, math.Vec2{})

	markDead(player)
	UpdateDeaths(e, ctx)
	UpdateDeaths(e, ctx)

	assert.True(t, player.Valid(), "player stays in the world")
	assert.Equal(t, 1, ctx.Stats.Deaths)
	assert.Equal(t, cfg.RunDefeated, ctx.State.Current)
	assert.True(t, components.Death.Get(player).Handled)
}

func TestUpdateRoom_ClearsOnce(t *testing.T) {
	e := ecsOf(donburi.NewWorld())
	factory.CreateSpace(e)
	ctx := newTestContext()
	room, err := factory.CreateRoom(e, &leveldata.RoomLayout{
		Name:    "one",
		Enemies: []leveldata.EnemySpawn{{Position: leveldata.Point{X: 100}, Type: cfg.CommonMelee}},
	}, 0)
	require.NoError(t, err)
	data := components.Room.Get(room)
	assert.True(t, data.DoorsLocked)

	UpdateRoom(e, ctx)
	assert.False(t, data.Cleared)
	assert.Equal(t, 1, EnemiesRemaining(e.World))

	killEnemies(e.World)
	UpdateRoom(e, ctx)
	assert.True(t, data.Cleared, "dead enemies no longer count")
	assert.False(t, data.DoorsLocked)

	UpdateDeaths(e, ctx)
	UpdateRoom(e, ctx)
	assert.Equal(t, 1, ctx.Stats.RoomsCleared)
	assert.Zero(t, EnemiesRemaining(e.World))
}

func TestUpdateRoom_BossKeepsBossFightState(t *testing.T) {
	e := ecsOf(donburi.NewWorld())
	factory.CreateSpace(e)
	ctx := newTestContext()
	_, err := factory.CreateRoom(e, &leveldata.RoomLayout{
		Name:    "lair",
		Enemies: []leveldata.EnemySpawn{{Type: cfg.Boss}},
	}, 0)
	require.NoError(t, err)

	UpdateRoom(e, ctx)
	assert.Equal(t, cfg.RunBossFight, ctx.State.Current)

	killEnemies(e.World)
	UpdateRoom(e, ctx)
	assert.Equal(t, cfg.RunInRun, ctx.State.Current)
}

func TestUpdateHazards_DamagesPlayerInRange(t *testing.T) {
	e, room := newTestWorld(t)
	ctx := newTestContext()
	ctx.DT = 0.5
	player := factory.CreatePlayer(e, math.Vec2{})
	_, err := factory.CreateHazard(e, room.Entity(), math.Vec2{X: 10}, cfg.HazardSpikes)
	require.NoError(t, err)
	_, err = factory.CreateHazard(e, room.Entity(), math.Vec2{X: 300}, cfg.HazardPoison)
	require.NoError(t, err)

	UpdateHazards(e, ctx)

	want := cfg.Hazards[cfg.HazardSpikes].DamagePerSecond * 0.5
	assert.InDelta(t, cfg.Player.Health-want, components.Health.Get(player).Current, 1e-9)
	events := ctx.Log.Events()
	require.Len(t, events, 1)
	assert.Equal(t, cfg.DamageEnvironment, events[0].DamageType)
	assert.Equal(t, "Hazard", events[0].Source)
}

func TestUpdateHazards_SkipsInvulnerablePlayer(t *testing.T) {
	e, room := newTestWorld(t)
	ctx := newTestContext()
	ctx.DT = 0.5
	player := factory.CreatePlayer(e, math.Vec2{})
	_, err := factory.CreateHazard(e, room.Entity(), math.Vec2{X: 10}, cfg.HazardSpikes)
	require.NoError(t, err)
	components.Hurtbox.Get(player).Invulnerable = true

	UpdateHazards(e, ctx)

	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current)
	assert.Zero(t, ctx.Log.Len())
}

func TestUpdateRegeneration_HealsOnlyRegenerating(t *testing.T) {
	e, room := newTestWorld(t)
	ctx := newTestContext()
	ctx.DT = 1
	regen := spawnEnemy(t, e, room, cfg.CommonMelee, math.Vec2{X: 100})
	plain := spawnEnemy(t, e, room, cfg.CommonMelee, math.Vec2{X: -100})
	factory.ApplyEliteModifier(regen, cfg.EliteRegenerating)
	components.Health.Get(regen).TakeDamage(50)
	components.Health.Get(plain).TakeDamage(50)

	UpdateRegeneration(e, ctx)

	assert.InDelta(t, 150+cfg.Elite.RegenFraction*200, components.Health.Get(regen).Current, 1e-9)
	assert.Equal(t, 150.0, components.Health.Get(plain).Current)
}

func TestTelegraphAlpha_FadeHoldFlash(t *testing.T) {
	assert.Equal(t, 0.4, TelegraphAlpha(cfg.Telegraph.FadeIn/2, 0.4))
	assert.Equal(t, 1.0, TelegraphAlpha(0.5, 0.4))
	flash := TelegraphAlpha(0.95, 0.4)
	assert.Contains(t, []float64{1, cfg.Telegraph.FlashAlpha}, flash)
}

func TestUpdateTelegraphs_LifecycleFollowsOwner(t *testing.T) {
	e, room := newTestWorld(t)
	ctx := newTestContext()
	presenter := &recordingPresenter{}
	ctx.Presenter = presenter
	enemy := spawnEnemy(t, e, room, cfg.CommonMelee, math.Vec2{X: 100})
	ai := components.EnemyAI.Get(enemy)
	ai.Enter(cfg.AITelegraphing, 0.5)

	count := func() int {
		n := 0
		components.Telegraph.Each(e.World, func(*donburi.Entry) { n++ })
		return n
	}

	UpdateTelegraphs(e, ctx)
	assert.Equal(t, 1, count())
	UpdateTelegraphs(e, ctx)
	assert.Equal(t, 1, count(), "one warning per wind-up")
	require.NotEmpty(t, presenter.telegraphs)
	assert.Equal(t, enemy.Entity(), presenter.telegraphs[0].Owner)
	assert.Equal(t, math.Vec2{X: 100}, presenter.telegraphs[0].Position)

	ai.Enter(cfg.AIAttacking, cfg.AI.AttackDuration)
	UpdateTelegraphs(e, ctx)
	assert.Zero(t, count())
}

func TestProjectiles_ExpireOnLifetimeAndPiercing(t *testing.T) {
	e, room := newTestWorld(t)
	ctx := newTestContext()
	shooter := spawnEnemy(t, e, room, cfg.CommonRanged, math.Vec2{X: -100})
	player := factory.CreatePlayer(e, math.Vec2{})

	hit := factory.CreateProjectile(e, shooter, math.Vec2{X: 1}, 10)
	components.Transform.Get(hit).Position = math.Vec2{}
	miss := factory.CreateProjectile(e, shooter, math.Vec2{Y: 1}, 10)
	components.Transform.Get(miss).Position = math.Vec2{X: -100, Y: 200}

	UpdateCombatHitboxes(e, ctx)
	assert.Equal(t, []components.HitRecord{{Target: player.Entity()}}, components.Hitbox.Get(hit).Ledger)
	assert.False(t, components.Hitbox.Get(hit).Active, "spent after its only target")

	CleanupHitboxes(e, ctx)
	assert.False(t, e.World.Valid(hit.Entity()))
	assert.True(t, e.World.Valid(miss.Entity()))

	ctx.DT = cfg.Projectile.Lifetime
	UpdateProjectiles(e, ctx)
	CleanupHitboxes(e, ctx)
	assert.False(t, e.World.Valid(miss.Entity()))
}
