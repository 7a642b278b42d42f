package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the resolv proxy of a hurtbox or hazard. Its Data field points back
// at the owning entry so broadphase hits resolve in O(1).
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
