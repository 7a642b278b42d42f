package systems

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/resources"
	"github.com/automoto/doomerang-rogue/tags"
)

// RandSource supplies uniform values in [0,1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// DamageNumberView is what the presentation layer needs to draw a hit.
type DamageNumberView struct {
	Position math.Vec2
	Amount   float64
	IsCrit   bool
}

// TelegraphView is the per-tick state of an enemy warning.
type TelegraphView struct {
	Owner    donburi.Entity
	Position math.Vec2
	Size     math.Vec2
	Color    color.RGBA
	Kind     cfg.TelegraphKind
	Fraction float64
	Alpha    float64
}

// Presenter receives presentation requests. Calls happen on the simulation
// goroutine and must not block.
type Presenter interface {
	DamageNumberSpawned(DamageNumberView)
	TelegraphUpdated(TelegraphView)
}

// NopPresenter discards every request.
type NopPresenter struct{}

func (NopPresenter) DamageNumberSpawned(DamageNumberView) {}
func (NopPresenter) TelegraphUpdated(TelegraphView)       {}

// Context is the run state threaded through every system call of a tick.
// The scene owns it; systems never keep a reference past the call.
type Context struct {
	DT            float64 // Seconds covered by this tick
	Time          float64 // Simulation time at the start of this tick
	MaxBufferTime float64

	Rand      RandSource
	Logger    *zap.Logger
	Presenter Presenter

	State *resources.GameState
	Stats *resources.RunStats
	Log   *resources.CombatLog

	// Nav is built on first use by bot-driven players.
	Nav *NavGrid
}

// Step is a system that needs the tick context.
type Step func(ecs *ecs.ECS, ctx *Context)

// Bind adapts a Step into an ecs.System reading ctx at call time.
func Bind(ctx *Context, step Step) ecs.System {
	return func(ecs *ecs.ECS) {
		step(ecs, ctx)
	}
}

// WithCombatChecks skips the step unless the run is in combat.
func WithCombatChecks(ctx *Context, step Step) ecs.System {
	return func(ecs *ecs.ECS) {
		if !ctx.State.InCombat() {
			return
		}
		step(ecs, ctx)
	}
}

// entryOf resolves a weak entity reference, returning nil if it has been
// removed.
func entryOf(w donburi.World, e donburi.Entity) *donburi.Entry {
	if !w.Valid(e) {
		return nil
	}
	return w.Entry(e)
}

// localPlayer returns the input-controlled player, if one exists.
func localPlayer(w donburi.World) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Player.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Player.Get(e).Local {
			found = e
		}
	})
	return found, found != nil
}

func isLocalPlayer(e *donburi.Entry) bool {
	return e.HasComponent(components.Player) && components.Player.Get(e).Local
}

// combatantLabel names an entity for the combat log.
func combatantLabel(e *donburi.Entry) string {
	switch {
	case e == nil:
		return "Unknown"
	case e.HasComponent(tags.Player):
		return "Player"
	case e.HasComponent(components.Enemy):
		return components.Enemy.Get(e).Type.String()
	}
	return "Unknown"
}

// RemoveRecursive removes e and everything parented to it, directly or
// through other attachments. Resolv proxies are taken out of the space.
func RemoveRecursive(ecs *ecs.ECS, e donburi.Entity) {
	w := ecs.World
	if !w.Valid(e) {
		return
	}

	doomed := []donburi.Entity{e}
	seen := map[donburi.Entity]bool{e: true}
	for i := 0; i < len(doomed); i++ {
		parent := doomed[i]
		components.Parent.Each(w, func(child *donburi.Entry) {
			if components.Parent.Get(child).Entity == parent && !seen[child.Entity()] {
				seen[child.Entity()] = true
				doomed = append(doomed, child.Entity())
			}
		})
	}

	space := spaceOf(w)
	for _, d := range doomed {
		entry := w.Entry(d)
		if space != nil && entry.HasComponent(components.Object) {
			if obj := components.Object.Get(entry); obj.Object != nil {
				space.Remove(obj.Object)
			}
		}
		w.Remove(d)
	}
}
