package components

import (
	"github.com/yohamta/donburi"
)

// HurtboxData is a single damage-receiving region. Hurtboxes belong to a
// hurtbox group and only receive damage while active.
type HurtboxData struct {
	Active  bool
	Visible bool

	// Group is the entity carrying the owning HurtboxGroupData.
	Group donburi.Entity

	Colliders []ColliderDef
}

var Hurtbox = donburi.NewComponentType[HurtboxData]()

// HurtboxGroupData binds a set of hurtbox entities to the owner that
// receives damage on their behalf.
type HurtboxGroupData struct {
	Boxes []donburi.Entity
	Owner donburi.Entity
}

var HurtboxGroup = donburi.NewComponentType[HurtboxGroupData]()
