package factory

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/doomerang-rogue/archetypes"
	"github.com/automoto/doomerang-rogue/components"
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/shared/leveldata"
	"github.com/automoto/doomerang-rogue/tags"
)

// CreateRoom spawns the room entity plus every enemy and hazard in layout.
// Enemy levels are offset by the run's progression level.
func CreateRoom(ecs *ecs.ECS, layout *leveldata.RoomLayout, level int) (*donburi.Entry, error) {
	room := archetypes.Room.Spawn(ecs)

	for i, spawn := range layout.Enemies {
		pos := math.Vec2{X: spawn.Position.X, Y: spawn.Position.Y}
		enemy, err := SpawnEnemy(ecs, room.Entity(), pos, spawn.Type, level+spawn.Level)
		if err != nil {
			return nil, fmt.Errorf("room %s enemy %d: %w", layout.Name, i, err)
		}
		for _, mod := range spawn.Modifiers {
			ApplyEliteModifier(enemy, mod)
		}
	}

	for i, spawn := range layout.Hazards {
		pos := math.Vec2{X: spawn.Position.X, Y: spawn.Position.Y}
		if _, err := CreateHazard(ecs, room.Entity(), pos, spawn.Type); err != nil {
			return nil, fmt.Errorf("room %s hazard %d: %w", layout.Name, i, err)
		}
	}

	count := len(layout.Enemies)
	components.Room.SetValue(room, components.RoomData{
		Name:             layout.Name,
		Level:            level,
		EnemyCount:       count,
		EnemiesRemaining: count,
		DoorsLocked:      count > 0,
	})

	return room, nil
}

// CreateHazard places a damaging area attached to room.
func CreateHazard(ecs *ecs.ECS, room donburi.Entity, pos math.Vec2, hazardType cfg.HazardType) (*donburi.Entry, error) {
	hc, ok := cfg.Hazards[hazardType]
	if !ok {
		return nil, fmt.Errorf("create hazard: no tuning for type %d", int(hazardType))
	}

	hazard := archetypes.Hazard.Spawn(ecs)
	components.Hazard.SetValue(hazard, components.HazardData{
		Type:            hazardType,
		DamagePerSecond: hc.DamagePerSecond,
		Radius:          hc.Radius,
	})
	components.Transform.SetValue(hazard, components.TransformData{Position: pos})
	components.Parent.SetValue(hazard, components.ParentData{Entity: room})
	attachHurtbox(ecs, hazard, pos, hc.Size.Vec(), tags.ResolvHazard)

	return hazard, nil
}
