package systems

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/resources"
	"github.com/automoto/doomerang-rogue/shared/leveldata"
	"github.com/automoto/doomerang-rogue/systems/factory"
)

// fixedRand always returns the same roll.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

type recordingPresenter struct {
	numbers    []DamageNumberView
	telegraphs []TelegraphView
}

func (p *recordingPresenter) DamageNumberSpawned(v DamageNumberView) { p.numbers = append(p.numbers, v) }
func (p *recordingPresenter) TelegraphUpdated(v TelegraphView)       { p.telegraphs = append(p.telegraphs, v) }

func newTestContext() *Context {
	return &Context{
		DT:            1.0 / 60,
		MaxBufferTime: 0.1,
		Rand:          fixedRand(0.5),
		Logger:        zap.NewNop(),
		Presenter:     NopPresenter{},
		State:         resources.NewGameState(),
		Stats:         resources.NewRunStats(),
		Log:           resources.NewCombatLog(100),
	}
}

// newTestWorld builds a world with a collision space and an empty room.
func newTestWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	room, err := factory.CreateRoom(e, &leveldata.RoomLayout{Name: "test"}, 0)
	require.NoError(t, err)
	return e, room
}

func spawnEnemy(t *testing.T, e *ecs.ECS, room *donburi.Entry, et cfg.EnemyType, pos math.Vec2) *donburi.Entry {
	t.Helper()
	enemy, err := factory.SpawnEnemy(e, room.Entity(), pos, et, 0)
	require.NoError(t, err)
	return enemy
}

func ecsOf(w donburi.World) *ecs.ECS {
	return ecs.NewECS(w)
}

// killEnemies flags every enemy as dead. Entries are collected before the
// Death component is added.
func killEnemies(w donburi.World) {
	var enemies []*donburi.Entry
	components.Enemy.Each(w, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	for _, e := range enemies {
		markDead(e)
	}
}
