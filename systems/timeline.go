package systems

import (
	"github.com/automata-games/clashbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type firedTag struct {
	name  string
	owner donburi.Entity
	data  map[string]any
}

// updateTimelines advances every playing timeline, applies the resulting
// activation and deactivation events to the named hitboxes, and dispatches
// fired tags. Deactivation also refreshes the hitbox so a later activation
// starts with a clean cooldown ledger.
func (c *Combat) updateTimelines(e *ecs.ECS) {
	var toActivate []donburi.Entity
	var toDeactivate []donburi.Entity
	var fired []firedTag

	components.HitboxGroup.Each(e.World, func(entry *donburi.Entry) {
		g := components.HitboxGroup.Get(entry)
		if g.Cursor == nil {
			return
		}
		events := g.Advance(c.deltaFor(e, entry.Entity()))
		for _, ev := range events {
			switch ev.Kind {
			case components.EventActivated:
				toActivate = append(toActivate, ev.Hitbox)
			case components.EventDeactivated:
				toDeactivate = append(toDeactivate, ev.Hitbox)
			case components.EventTagTriggered:
				fired = append(fired, firedTag{name: ev.Tag, owner: g.Owner, data: ev.Data})
			case components.EventFinished:
				g.Cursor = nil
			}
		}
	})

	for _, t := range fired {
		c.dispatchTag(e.World, TagContext{Tag: t.name, Owner: t.owner, Data: t.data})
	}

	for _, id := range toActivate {
		if hb, ok := hitboxOf(e.World, id); ok {
			hb.Activate()
		}
	}

	for _, id := range toDeactivate {
		if hb, ok := hitboxOf(e.World, id); ok {
			hb.Deactivate()
			hb.Refresh()
		}
	}
}

// dispatchTag runs global handlers in registration order, then the handler
// registered for the tag's name, if any.
func (c *Combat) dispatchTag(w donburi.World, ctx TagContext) {
	for _, h := range c.tagHandlers {
		h(w, ctx)
	}
	if h, ok := c.tagHandlersByName[ctx.Tag]; ok {
		h(w, ctx)
	}
}
