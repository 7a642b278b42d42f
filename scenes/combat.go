package scenes

import (
	"fmt"
	"math/rand/v2"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/observability"
	"github.com/automoto/doomerang-rogue/resources"
	"github.com/automoto/doomerang-rogue/shared/gamemath"
	"github.com/automoto/doomerang-rogue/shared/leveldata"
	"github.com/automoto/doomerang-rogue/systems"
	"github.com/automoto/doomerang-rogue/systems/factory"
)

// CombatOptions configures a CombatScene. Zero values fall back to the
// defaults noted on each field.
type CombatOptions struct {
	Layout            *leveldata.RoomLayout // Built-in room when nil
	Level             int
	MaxBufferTime     float64 // 0.1 s when zero
	CombatLogCapacity int     // 100 when zero
	Rand              systems.RandSource
	Logger            *zap.Logger
	Presenter         systems.Presenter
	Bot               bool // Drive the player with the built-in bot
}

// CombatScene owns one room's world and runs the combat pipeline over it.
type CombatScene struct {
	ecs  *ecs.ECS
	ctx  *systems.Context
	room *donburi.Entry
}

// NewCombatScene builds the world for opts.Layout, spawns the player and
// the room contents, and registers every system in pipeline order.
func NewCombatScene(opts CombatOptions) (*CombatScene, error) {
	if opts.Layout == nil {
		opts.Layout = leveldata.DefaultRoom()
	}
	if opts.MaxBufferTime <= 0 {
		opts.MaxBufferTime = 0.1
	}
	if opts.CombatLogCapacity <= 0 {
		opts.CombatLogCapacity = 100
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(1, 2))
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Presenter == nil {
		opts.Presenter = systems.NopPresenter{}
	}

	cs := &CombatScene{
		ctx: &systems.Context{
			MaxBufferTime: opts.MaxBufferTime,
			Rand:          opts.Rand,
			Logger:        opts.Logger,
			Presenter:     opts.Presenter,
			State:         resources.NewGameState(),
			Stats:         resources.NewRunStats(),
			Log:           resources.NewCombatLog(opts.CombatLogCapacity),
		},
	}
	cs.ctx.Logger = observability.ForRun(opts.Logger, cs.ctx.Stats.RunID)
	cs.ecs = ecs.NewECS(donburi.NewWorld())
	cs.registerSystems(opts.Bot)

	factory.CreateSpace(cs.ecs)
	spawn := opts.Layout.PlayerSpawn
	player := factory.CreatePlayer(cs.ecs, math.Vec2{X: spawn.X, Y: spawn.Y})
	if opts.Bot {
		donburi.Add(player, components.Bot, &components.BotData{})
	}

	room, err := factory.CreateRoom(cs.ecs, opts.Layout, opts.Level)
	if err != nil {
		return nil, fmt.Errorf("creating room: %w", err)
	}
	cs.room = room

	cs.ctx.Logger.Info("combat scene ready",
		zap.String("room", opts.Layout.Name),
		zap.Int("level", opts.Level),
		zap.Int("enemies", len(opts.Layout.Enemies)),
		zap.Bool("bot", opts.Bot))
	return cs, nil
}

func (cs *CombatScene) registerSystems(bot bool) {
	ctx := cs.ctx
	e := cs.ecs

	if bot {
		e.AddSystem(systems.Bind(ctx, systems.UpdateBots))
	}

	// Input buffer runs even when paused so stale presses expire.
	e.AddSystem(systems.Bind(ctx, systems.UpdateInput))

	// Combat pipeline
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdatePlayer))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdatePlayerAttacks))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateAttackStates))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateRegeneration))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateHazards))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateCombatHitboxes))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateDamage))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateKnockback))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateDeaths))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.CleanupHitboxes))

	// Enemy behaviour
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateEnemyAI))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateEnemyMovement))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateEnemyAttacks))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateTelegraphs))

	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateProjectiles))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateDamageNumbers))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdatePhysics))
	e.AddSystem(systems.WithCombatChecks(ctx, systems.UpdateRoom))
}

// Step advances the simulation by dt seconds.
func (cs *CombatScene) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	cs.ctx.DT = dt
	cs.ecs.Update()
	cs.ctx.Time += dt
}

// QueueInput feeds one action from the input collaborator. Move and Pause
// take effect immediately; everything else is buffered with the current
// simulation time.
func (cs *CombatScene) QueueInput(action cfg.Action, dir math.Vec2) {
	player, ok := cs.Player()
	if !ok {
		return
	}
	switch action {
	case cfg.ActionMove:
		intent, _ := gamemath.Normalize(dir)
		components.Player.Get(player).MoveIntent = intent
	case cfg.ActionPause:
		cs.ctx.State.TogglePause()
	default:
		buffer := components.InputBuffer.Get(player)
		buffer.Actions = append(buffer.Actions, components.BufferedAction{
			Action:    action,
			Direction: dir,
			Time:      cs.ctx.Time,
		})
	}
}

// Player returns the local player entry.
func (cs *CombatScene) Player() (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Player.Each(cs.ecs.World, func(e *donburi.Entry) {
		if found == nil && components.Player.Get(e).Local {
			found = e
		}
	})
	return found, found != nil
}

// Done reports whether the run is over or the room has been cleared.
func (cs *CombatScene) Done() bool {
	if cs.ctx.State.Current == cfg.RunDefeated {
		return true
	}
	return cs.Room().Cleared
}

// Room returns the active room's state.
func (cs *CombatScene) Room() *components.RoomData {
	return components.Room.Get(cs.room)
}

// EnemiesRemaining is read by the progression collaborator.
func (cs *CombatScene) EnemiesRemaining() int {
	return systems.EnemiesRemaining(cs.ecs.World)
}

func (cs *CombatScene) World() donburi.World        { return cs.ecs.World }
func (cs *CombatScene) ECS() *ecs.ECS               { return cs.ecs }
func (cs *CombatScene) State() *resources.GameState { return cs.ctx.State }
func (cs *CombatScene) Stats() *resources.RunStats  { return cs.ctx.Stats }
func (cs *CombatScene) Log() *resources.CombatLog   { return cs.ctx.Log }
func (cs *CombatScene) Time() float64               { return cs.ctx.Time }
