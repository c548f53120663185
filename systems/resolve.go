package systems

import (
	"github.com/automata-games/clashbox/components"
	"github.com/automata-games/clashbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// resolveHits turns overlaps between active hitboxes and active hurtboxes
// into hit callbacks. For each active hitbox: overlapping hurtboxes are
// collapsed to one candidate per owning entity, the hitbox's own owner and
// anything still on cooldown are dropped, then every registered filter must
// pass before the hit handlers run and the hit is recorded. Any dangling
// reference skips that single candidate.
func (c *Combat) resolveHits(e *ecs.ECS) {
	components.Hitbox.Each(e.World, func(hitboxEntry *donburi.Entry) {
		hb := components.Hitbox.Get(hitboxEntry)
		if !hb.Active {
			return
		}
		attacker, ok := HitboxOwner(e.World, hitboxEntry.Entity())
		if !ok {
			return
		}
		if !hitboxEntry.HasComponent(components.Object) {
			return
		}

		// One candidate hurtbox per overlapped owner.
		byOwner := map[donburi.Entity]donburi.Entity{}
		for _, obj := range components.Object.Get(hitboxEntry).Objects {
			check := obj.Check(0, 0, tags.ResolvHurtbox)
			if check == nil {
				continue
			}
			for _, other := range check.Objects {
				boxID, ok := other.Data.(donburi.Entity)
				if !ok {
					continue
				}
				hurt, ok := hurtboxOf(e.World, boxID)
				if !ok || !hurt.Active {
					continue
				}
				owner, ok := HurtboxOwner(e.World, boxID)
				if !ok || owner == attacker {
					continue
				}
				if !hb.CanDamage(owner) {
					continue
				}
				if _, seen := byOwner[owner]; !seen {
					byOwner[owner] = boxID
				}
			}
		}

		for owner, hurtboxID := range byOwner {
			ctx := HitContext{
				Attacker: attacker,
				Target:   owner,
				Hitbox:   hitboxEntry.Entity(),
				Hurtbox:  hurtboxID,
			}
			if !c.passesFilters(e.World, ctx) {
				continue
			}
			for _, h := range c.hitHandlers {
				h(e.World, ctx)
			}
			hb.MarkDamaged(owner)
		}
	})
}

func (c *Combat) passesFilters(w donburi.World, ctx HitContext) bool {
	for _, f := range c.hitFilters {
		if !f(w, ctx) {
			return false
		}
	}
	return true
}
