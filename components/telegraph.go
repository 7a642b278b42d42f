package components

import (
	"image/color"

	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/timer"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TelegraphData is the warning shown while an enemy winds up.
type TelegraphData struct {
	Owner     donburi.Entity
	Kind      cfg.TelegraphKind
	Size      math.Vec2
	Color     color.RGBA
	Countdown timer.Timer
	FadeIn    *gween.Tween
	Alpha     float64
}

var Telegraph = donburi.NewComponentType[TelegraphData]()
