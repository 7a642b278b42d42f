package components

import "github.com/yohamta/donburi"

// DeathData marks an entity whose health reached zero. The death system
// acts on it; Handled keeps the player branch from firing twice.
type DeathData struct {
	Handled bool
}

var Death = donburi.NewComponentType[DeathData]()
