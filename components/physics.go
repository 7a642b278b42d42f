package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is the world position of an entity. Boxes are centered on it.
type TransformData struct {
	Position math.Vec2
	Facing   math.Vec2 // Unit direction the entity is looking in
}

// PhysicsData is the velocity consumed by the integration pass.
type PhysicsData struct {
	Velocity math.Vec2
}

var (
	Transform = donburi.NewComponentType[TransformData]()
	Physics   = donburi.NewComponentType[PhysicsData]()
)
