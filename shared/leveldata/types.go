// Package leveldata parses room layouts from TMX files into plain data.
// Coordinates are converted to the arena frame: origin at the room center,
// +Y up.
package leveldata

import cfg "github.com/automoto/doomerang-rogue/config"

// RoomLayout holds everything the spawn collaborator needs for one room.
type RoomLayout struct {
	Name        string
	Width       float64
	Height      float64
	PlayerSpawn Point
	Enemies     []EnemySpawn
	Hazards     []HazardSpawn
}

// Point is a position in arena coordinates.
type Point struct {
	X, Y float64
}

// EnemySpawn places one enemy. Level is added to the room's progression
// level.
type EnemySpawn struct {
	Position  Point
	Type      cfg.EnemyType
	Level     int
	Modifiers []cfg.EliteModifier
}

// HazardSpawn places one hazard.
type HazardSpawn struct {
	Position Point
	Type     cfg.HazardType
}

// DefaultRoom is the built-in layout used when no TMX map is configured.
func DefaultRoom() *RoomLayout {
	return &RoomLayout{
		Name:        "arena",
		Width:       1200,
		Height:      800,
		PlayerSpawn: Point{X: 0, Y: 0},
		Enemies: []EnemySpawn{
			{Position: Point{X: 260, Y: 0}, Type: cfg.CommonMelee},
			{Position: Point{X: -260, Y: 120}, Type: cfg.CommonMelee},
			{Position: Point{X: 0, Y: 320}, Type: cfg.CommonRanged},
		},
		Hazards: []HazardSpawn{
			{Position: Point{X: 0, Y: -250}, Type: cfg.HazardSpikes},
		},
	}
}
