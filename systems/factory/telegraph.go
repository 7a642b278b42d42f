package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-rogue/archetypes"
	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/timer"
)

// CreateTelegraph spawns the warning for owner's upcoming attack. It lives
// for duration seconds unless the owner leaves the telegraphing state.
func CreateTelegraph(ecs *ecs.ECS, owner *donburi.Entry, visual cfg.TelegraphVisual, duration float64) *donburi.Entry {
	telegraph := archetypes.Telegraph.Spawn(ecs)

	var fade *gween.Tween
	if fadeTime := duration * cfg.Telegraph.FadeIn; fadeTime > 0 {
		fade = gween.New(0, 1, float32(fadeTime), ease.Linear)
	}

	components.Telegraph.SetValue(telegraph, components.TelegraphData{
		Owner:     owner.Entity(),
		Kind:      visual.Kind,
		Size:      visual.Size(),
		Color:     visual.RGBA(),
		Countdown: timer.New(duration),
		FadeIn:    fade,
	})
	components.Transform.SetValue(telegraph, *components.Transform.Get(owner))
	components.Parent.SetValue(telegraph, components.ParentData{Entity: owner.Entity()})

	return telegraph
}
