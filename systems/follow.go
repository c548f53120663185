package systems

import (
	"github.com/automata-games/clashbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updateFollowers pins every follower's objects to its target's position.
// Followers whose target is gone are despawned along with their objects.
func updateFollowers(e *ecs.ECS) {
	var orphans []donburi.Entity

	components.Follow.Each(e.World, func(entry *donburi.Entry) {
		f := components.Follow.Get(entry)
		if !e.World.Valid(f.Target) {
			orphans = append(orphans, entry.Entity())
			return
		}
		target := e.World.Entry(f.Target)
		if !target.HasComponent(components.Object) {
			orphans = append(orphans, entry.Entity())
			return
		}
		if !entry.HasComponent(components.Object) {
			return
		}

		tx, ty := components.Object.Get(target).Position()
		components.Object.Get(entry).SetPosition(tx+f.OffsetX, ty+f.OffsetY)
	})

	for _, id := range orphans {
		removeWithObjects(e, id)
	}
}

// removeWithObjects despawns an entity, pulling its resolv objects out of
// the space first.
func removeWithObjects(e *ecs.ECS, id donburi.Entity) {
	if !e.World.Valid(id) {
		return
	}
	entry := e.World.Entry(id)
	if entry.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			space := components.Space.Get(spaceEntry)
			for _, obj := range components.Object.Get(entry).Objects {
				space.Remove(obj)
			}
		}
	}
	e.World.Remove(id)
}
