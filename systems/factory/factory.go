package factory

import (
	"github.com/automata-games/clashbox/archetypes"
	"github.com/automata-games/clashbox/components"
	"github.com/automata-games/clashbox/config"
	"github.com/automata-games/clashbox/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the world-singleton entity holding the resolv space
// used for overlap queries.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// Build attaches the groups described by def to the owner entity: a hitbox
// group when the def names hitboxes, a hurtbox group when it lists
// hurtboxes. Box entities are spawned following the owner, with their
// colliders registered in the space.
func Build(e *ecs.ECS, owner *donburi.Entry, def *config.GroupDef) {
	if len(def.Hitboxes) > 0 || len(def.Timelines) > 0 {
		BuildHitboxGroup(e, owner, def)
	}
	if len(def.Hurtboxes) > 0 {
		BuildHurtboxGroup(e, owner, def.Hurtboxes)
	}
}

// BuildHitboxGroup attaches a hitbox group built from def to the owner and
// spawns its named hitbox entities.
func BuildHitboxGroup(e *ecs.ECS, owner *donburi.Entry, def *config.GroupDef) {
	group := components.HitboxGroupData{
		Boxes:     make(map[string]donburi.Entity, len(def.Hitboxes)),
		Owner:     owner.Entity(),
		Timelines: def.TimelineFrames(),
	}

	for name, boxDef := range def.Hitboxes {
		box := archetypes.Hitbox.Spawn(e)
		data := boxDef.Hitbox()
		data.Group = owner.Entity()
		components.Hitbox.SetValue(box, data)
		attachBox(e, box, owner, data.Colliders, tags.ResolvHitbox)
		group.Boxes[name] = box.Entity()
	}

	donburi.Add(owner, components.HitboxGroup, &group)
}

// BuildHurtboxGroup attaches a hurtbox group built from defs to the owner
// and spawns its hurtbox entities.
func BuildHurtboxGroup(e *ecs.ECS, owner *donburi.Entry, defs []config.HurtboxDef) {
	group := components.HurtboxGroupData{
		Owner: owner.Entity(),
	}

	for _, boxDef := range defs {
		box := archetypes.Hurtbox.Spawn(e)
		data := boxDef.Hurtbox()
		data.Group = owner.Entity()
		components.Hurtbox.SetValue(box, data)
		attachBox(e, box, owner, data.Colliders, tags.ResolvHurtbox)
		group.Boxes = append(group.Boxes, box.Entity())
	}

	donburi.Add(owner, components.HurtboxGroup, &group)
}

// attachBox builds the box entity's resolv objects at the owner's current
// position, registers them in the space, and pins the box to the owner.
func attachBox(e *ecs.ECS, box *donburi.Entry, owner *donburi.Entry, colliders []components.ColliderDef, resolvTag string) {
	var x, y float64
	if owner.HasComponent(components.Object) {
		x, y = components.Object.Get(owner).Position()
	}

	objects := components.ObjectData{}
	for _, c := range colliders {
		obj := c.NewObject(x, y, resolvTag)
		obj.Data = box.Entity()
		ox, oy := c.TopLeftOffset()
		objects.Add(obj, ox, oy)
		if spaceEntry, ok := components.Space.First(e.World); ok {
			components.Space.Get(spaceEntry).Add(obj)
		}
	}
	components.Object.SetValue(box, objects)

	components.Follow.SetValue(box, components.FollowData{Target: owner.Entity()})
}
