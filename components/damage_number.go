package components

import (
	"github.com/automoto/doomerang-rogue/timer"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DamageNumberData is a floating hit indicator. It moves itself rather than
// going through the physics pass so its velocity can decay per tick.
type DamageNumberData struct {
	Amount   float64
	IsCrit   bool
	Velocity math.Vec2
	Lifetime timer.Timer
	Fade     *gween.Tween
	Alpha    float64
}

var DamageNumber = donburi.NewComponentType[DamageNumberData]()
