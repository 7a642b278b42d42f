package systems

import (
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/shared/gamemath"
)

// UpdatePlayer handles the dash, interact requests and movement velocity of
// the local player.
func UpdatePlayer(ecs *ecs.ECS, ctx *Context) {
	playerEntry, ok := localPlayer(ecs.World)
	if !ok {
		return
	}

	physics := components.Physics.Get(playerEntry)
	if playerEntry.HasComponent(components.Death) {
		physics.Velocity = math.Vec2{}
		return
	}

	player := components.Player.Get(playerEntry)
	dash := components.Dash.Get(playerEntry)
	buffer := components.InputBuffer.Get(playerEntry)
	transform := components.Transform.Get(playerEntry)
	hurtbox := components.Hurtbox.Get(playerEntry)
	attack := components.AttackState.Get(playerEntry)

	// Dash clocks
	dash.Cooldown.Tick(ctx.DT)
	if dash.Active {
		dash.Timer.Tick(ctx.DT)
		if dash.Timer.Finished() {
			dash.Active = false
		}
	}

	if !dash.Active && dash.Cooldown.Finished() {
		if req, ok := buffer.Take(isAction(cfg.ActionDash)); ok {
			dash.Active = true
			dash.Direction = dashDirection(req.Direction, player.MoveIntent, transform.Facing)
			dash.Timer.Reset(cfg.Player.DashDuration)
			dash.Cooldown.Reset(cfg.Player.DashCooldown)
			transform.Facing = dash.Direction
		}
	}

	if req, ok := buffer.Take(isAction(cfg.ActionInteract)); ok {
		ctx.Logger.Debug("interact", zap.Float64("queued_at", req.Time))
	}

	hurtbox.Invulnerable = dash.Active || hurtbox.Granted

	if dash.Active {
		physics.Velocity = gamemath.Scale(dash.Direction, cfg.Player.DashSpeed)
		return
	}
	physics.Velocity = gamemath.Scale(player.MoveIntent, cfg.Player.BaseSpeed)

	// Facing is locked while an attack is out so its hitbox stays put.
	if !attack.IsAttacking {
		if dir, ok := gamemath.Normalize(player.MoveIntent); ok {
			transform.Facing = dir
		}
	}
}

func isAction(action cfg.Action) func(components.BufferedAction) bool {
	return func(a components.BufferedAction) bool {
		return a.Action == action
	}
}

// dashDirection picks the first usable direction: the one sent with the
// request, the current move intent, then facing.
func dashDirection(requested, intent, facing math.Vec2) math.Vec2 {
	for _, v := range []math.Vec2{requested, intent, facing} {
		if dir, ok := gamemath.Normalize(v); ok {
			return dir
		}
	}
	return math.Vec2{X: 1}
}
