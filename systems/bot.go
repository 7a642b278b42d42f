package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/shared/gamemath"
	"github.com/automoto/doomerang-rogue/tags"
)

// Bot tuning
const (
	botAttackReach    = 55.0 // Start swinging inside this distance
	botDodgeMargin    = 40.0 // Dodge telegraphs this far past the enemy's reach
	botRepathInterval = 0.5
	botAttackInterval = 0.15
	botLightsPerHeavy = 3
)

// UpdateBots generates input for bot-controlled players: walk to the
// nearest enemy around hazards, swing a light combo finished by a heavy,
// and dash away from telegraphed attacks.
// Must run BEFORE UpdateInput so its actions share the input window.
func UpdateBots(ecs *ecs.ECS, ctx *Context) {
	if !ctx.State.InCombat() {
		return
	}
	if ctx.Nav == nil {
		if space := spaceOf(ecs.World); space != nil {
			width := int(2 * (cfg.Arena.HalfWidth + cfg.Arena.Margin))
			height := int(2 * (cfg.Arena.HalfHeight + cfg.Arena.Margin))
			ctx.Nav = CreateNavGrid(space, width, height, float64(cfg.Arena.CellSize))
		}
	}

	components.Bot.Each(ecs.World, func(e *donburi.Entry) {
		updateBot(ecs.World, ctx, e)
	})
}

type botEnemy struct {
	entity   donburi.Entity
	position dmath.Vec2
	distance float64
	reach    float64
	winding  bool
}

func updateBot(w donburi.World, ctx *Context, e *donburi.Entry) {
	player := components.Player.Get(e)
	if e.HasComponent(components.Death) {
		player.MoveIntent = dmath.Vec2{}
		return
	}

	bot := components.Bot.Get(e)
	bot.RepathTimer.Tick(ctx.DT)
	bot.AttackCooldown.Tick(ctx.DT)

	transform := components.Transform.Get(e)
	pos := transform.Position
	enemies := nearbyEnemies(w, pos)

	target, ok := nearest(enemies)
	if !ok {
		bot.HasTarget = false
		bot.Path = nil
		player.MoveIntent = dmath.Vec2{}
		return
	}
	if !bot.HasTarget || bot.Target != target.entity {
		bot.Target, bot.HasTarget = target.entity, true
		bot.Path = nil
	}

	buffer := components.InputBuffer.Get(e)
	dash := components.Dash.Get(e)

	// PRIORITY 1: get out of a telegraphed attack
	if !dash.Active && dash.Cooldown.Finished() {
		for _, en := range enemies {
			if !en.winding || en.distance >= en.reach+botDodgeMargin {
				continue
			}
			away, ok := gamemath.Direction(en.position, pos)
			if !ok {
				away = gamemath.Scale(transform.Facing, -1)
			}
			queueAction(buffer, cfg.ActionDash, away, ctx.Time)
			player.MoveIntent = away
			return
		}
	}

	// PRIORITY 2: close the distance
	if target.distance > botAttackReach {
		player.MoveIntent = botSteer(ctx, bot, pos, target.position)
		return
	}

	// PRIORITY 3: fight
	player.MoveIntent = dmath.Vec2{}
	attack := components.AttackState.Get(e)
	if !attack.IsAttacking {
		if dir, ok := gamemath.Direction(pos, target.position); ok {
			transform.Facing = dir
		}
	}
	if !bot.AttackCooldown.Finished() || (attack.IsAttacking && !attack.CanCancel) || hasBufferedAttack(buffer) {
		return
	}
	if bot.LightsThrown >= botLightsPerHeavy {
		queueAction(buffer, cfg.ActionHeavyAttack, dmath.Vec2{}, ctx.Time)
		bot.LightsThrown = 0
	} else {
		queueAction(buffer, cfg.ActionLightAttack, dmath.Vec2{}, ctx.Time)
		bot.LightsThrown++
	}
	bot.AttackCooldown.Reset(botAttackInterval)
}

// botSteer returns the move direction toward goal, following a hazard-free
// path when a navigation grid exists.
func botSteer(ctx *Context, bot *components.BotData, pos, goal dmath.Vec2) dmath.Vec2 {
	if ctx.Nav != nil {
		if len(bot.Path) == 0 || bot.RepathTimer.Finished() {
			bot.Path = ctx.Nav.FindPath(pos, goal)
			bot.RepathTimer.Reset(botRepathInterval)
		}
		for len(bot.Path) > 0 && gamemath.Distance(pos, bot.Path[0]) < ctx.Nav.CellSize/2 {
			bot.Path = bot.Path[1:]
		}
		if len(bot.Path) > 1 {
			if dir, ok := gamemath.Direction(pos, bot.Path[0]); ok {
				return dir
			}
		}
	}
	dir, _ := gamemath.Direction(pos, goal)
	return dir
}

func nearbyEnemies(w donburi.World, pos dmath.Vec2) []botEnemy {
	var out []botEnemy
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		p := components.Transform.Get(e).Position
		out = append(out, botEnemy{
			entity:   e.Entity(),
			position: p,
			distance: gamemath.Distance(pos, p),
			reach:    components.Enemy.Get(e).AttackRange,
			winding:  components.EnemyAI.Get(e).State == cfg.AITelegraphing,
		})
	})
	return out
}

func nearest(enemies []botEnemy) (botEnemy, bool) {
	best, bestDist := -1, math.MaxFloat64
	for i, en := range enemies {
		if en.distance < bestDist {
			best, bestDist = i, en.distance
		}
	}
	if best < 0 {
		return botEnemy{}, false
	}
	return enemies[best], true
}

func hasBufferedAttack(buffer *components.InputBufferData) bool {
	for _, a := range buffer.Actions {
		if _, ok := attackFor(a.Action, false); ok {
			return true
		}
	}
	return false
}

func queueAction(buffer *components.InputBufferData, action cfg.Action, dir dmath.Vec2, now float64) {
	buffer.Actions = append(buffer.Actions, components.BufferedAction{Action: action, Direction: dir, Time: now})
}
