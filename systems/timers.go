package systems

import (
	"github.com/automata-games/clashbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updateOneShotTimers advances pending activate-after/deactivate-after
// timers. Activation is checked first; deactivation only fires once no
// activation threshold remains pending. A fired timer is cleared and never
// refires.
func (c *Combat) updateOneShotTimers(e *ecs.ECS) {
	components.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		h := components.Hitbox.Get(entry)
		if !h.IsOneShot() {
			return
		}
		h.Elapsed += c.deltaFor(e, entry.Entity())

		if h.ActivateAfter != nil {
			if h.Elapsed >= *h.ActivateAfter {
				h.Activate()
				h.ActivateAfter = nil
			}
		} else if h.DeactivateAfter != nil && h.Elapsed >= *h.DeactivateAfter {
			h.Deactivate()
			h.DeactivateAfter = nil
		}
	})
}

// updateCooldowns ages every cooldown ledger entry by the tick delta.
// Entries are only removed by an explicit refresh, never by decay.
func (c *Combat) updateCooldowns(e *ecs.ECS) {
	delta := c.tickDelta(e)
	components.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		h := components.Hitbox.Get(entry)
		for id := range h.HitTargets {
			h.HitTargets[id] += delta
		}
	})
}
