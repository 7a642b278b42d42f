package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/systems/factory"
	"github.com/automoto/doomerang-rogue/tags"
)

// UpdateTelegraphs keeps every warning on its owner, reports it to the
// presenter and removes it once the wind-up is over. New warnings are
// spawned for enemies that just started telegraphing.
func UpdateTelegraphs(ecs *ecs.ECS, ctx *Context) {
	var toRemove []donburi.Entity
	components.Telegraph.Each(ecs.World, func(e *donburi.Entry) {
		tg := components.Telegraph.Get(e)
		owner := entryOf(ecs.World, tg.Owner)
		if owner == nil || !owner.HasComponent(components.EnemyAI) ||
			components.EnemyAI.Get(owner).State != cfg.AITelegraphing {
			toRemove = append(toRemove, e.Entity())
			return
		}

		tg.Countdown.Tick(ctx.DT)
		fade := 1.0
		if tg.FadeIn != nil {
			v, _ := tg.FadeIn.Update(float32(ctx.DT))
			fade = float64(v)
		}
		tg.Alpha = TelegraphAlpha(tg.Countdown.Fraction(), fade)

		transform := components.Transform.Get(e)
		*transform = *components.Transform.Get(owner)

		ctx.Presenter.TelegraphUpdated(TelegraphView{
			Owner:    tg.Owner,
			Position: transform.Position,
			Size:     tg.Size,
			Color:    tg.Color,
			Kind:     tg.Kind,
			Fraction: tg.Countdown.Fraction(),
			Alpha:    tg.Alpha,
		})

		if tg.Countdown.Finished() {
			toRemove = append(toRemove, e.Entity())
		}
	})
	for _, e := range toRemove {
		RemoveRecursive(ecs, e)
	}

	var owners []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		ai := components.EnemyAI.Get(e)
		if ai.State == cfg.AITelegraphing && !ai.TelegraphShown {
			owners = append(owners, e)
		}
	})
	for _, e := range owners {
		components.EnemyAI.Get(e).TelegraphShown = true
		tc := components.Enemy.Get(e).TypeConfig
		factory.CreateTelegraph(ecs, e, tc.Telegraph, tc.TelegraphDuration)
	}
}

// TelegraphAlpha maps countdown progress to opacity: fade in, hold, then
// flash as the attack lands. fade is the current fade-in tween value.
func TelegraphAlpha(progress, fade float64) float64 {
	switch {
	case progress < cfg.Telegraph.FadeIn:
		return fade
	case progress > cfg.Telegraph.FlashStart:
		if int(progress*cfg.Telegraph.FlashRate)%2 == 0 {
			return 1
		}
		return cfg.Telegraph.FlashAlpha
	}
	return 1
}
