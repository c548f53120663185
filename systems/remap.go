package systems

import (
	"github.com/automata-games/clashbox/components"
	"github.com/yohamta/donburi"
)

// RemapEntities rewrites every non-owning entity reference held by combat
// components after a world merge relocated entity identities. References
// absent from the mapping are left unchanged.
func RemapEntities(w donburi.World, mapping map[donburi.Entity]donburi.Entity) {
	components.Hitbox.Each(w, func(entry *donburi.Entry) {
		h := components.Hitbox.Get(entry)
		if id, ok := mapping[h.Group]; ok {
			h.Group = id
		}
	})

	components.Hurtbox.Each(w, func(entry *donburi.Entry) {
		h := components.Hurtbox.Get(entry)
		if id, ok := mapping[h.Group]; ok {
			h.Group = id
		}
	})

	components.HitboxGroup.Each(w, func(entry *donburi.Entry) {
		g := components.HitboxGroup.Get(entry)
		if id, ok := mapping[g.Owner]; ok {
			g.Owner = id
		}
		for name, boxID := range g.Boxes {
			if id, ok := mapping[boxID]; ok {
				g.Boxes[name] = id
			}
		}
	})

	components.HurtboxGroup.Each(w, func(entry *donburi.Entry) {
		g := components.HurtboxGroup.Get(entry)
		if id, ok := mapping[g.Owner]; ok {
			g.Owner = id
		}
		for i, boxID := range g.Boxes {
			if id, ok := mapping[boxID]; ok {
				g.Boxes[i] = id
			}
		}
	})

	components.Follow.Each(w, func(entry *donburi.Entry) {
		f := components.Follow.Get(entry)
		if id, ok := mapping[f.Target]; ok {
			f.Target = id
		}
	})
}
