package archetypes

import (
	"github.com/automata-games/clashbox/components"
	"github.com/automata-games/clashbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the layer combat entities are created on.
const Default = ecs.LayerID(0)

var (
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
		components.Follow,
	)
	Hurtbox = newArchetype(
		tags.Hurtbox,
		components.Hurtbox,
		components.Object,
		components.Follow,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
