package components

import (
	"github.com/yohamta/donburi"
)

// FollowData pins an entity's objects to another entity's position. Box
// entities use it to track the owner they decorate.
type FollowData struct {
	Target  donburi.Entity
	OffsetX float64
	OffsetY float64
}

var Follow = donburi.NewComponentType[FollowData]()
