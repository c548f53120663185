package systems

import (
	"testing"

	"github.com/automata-games/clashbox/components"
	"github.com/automata-games/clashbox/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestRemapEntitiesRewritesBackReferences(t *testing.T) {
	w := donburi.NewWorld()

	oldOwner := w.Create()
	newOwner := w.Create()
	oldBox := w.Create()
	newBox := w.Create()

	hitboxEntry := w.Entry(w.Create(tags.Hitbox, components.Hitbox, components.Follow))
	components.Hitbox.SetValue(hitboxEntry, components.HitboxData{Group: oldOwner})
	components.Follow.SetValue(hitboxEntry, components.FollowData{Target: oldOwner})

	hurtboxEntry := w.Entry(w.Create(tags.Hurtbox, components.Hurtbox))
	components.Hurtbox.SetValue(hurtboxEntry, components.HurtboxData{Group: oldOwner})

	hitGroupEntry := w.Entry(w.Create(components.HitboxGroup))
	components.HitboxGroup.SetValue(hitGroupEntry, components.HitboxGroupData{
		Owner: oldOwner,
		Boxes: map[string]donburi.Entity{"blade": oldBox},
	})

	hurtGroupEntry := w.Entry(w.Create(components.HurtboxGroup))
	components.HurtboxGroup.SetValue(hurtGroupEntry, components.HurtboxGroupData{
		Owner: oldOwner,
		Boxes: []donburi.Entity{oldBox},
	})

	RemapEntities(w, map[donburi.Entity]donburi.Entity{
		oldOwner: newOwner,
		oldBox:   newBox,
	})

	assert.Equal(t, newOwner, components.Hitbox.Get(hitboxEntry).Group)
	assert.Equal(t, newOwner, components.Follow.Get(hitboxEntry).Target)
	assert.Equal(t, newOwner, components.Hurtbox.Get(hurtboxEntry).Group)

	hitGroup := components.HitboxGroup.Get(hitGroupEntry)
	assert.Equal(t, newOwner, hitGroup.Owner)
	assert.Equal(t, newBox, hitGroup.Boxes["blade"])

	hurtGroup := components.HurtboxGroup.Get(hurtGroupEntry)
	assert.Equal(t, newOwner, hurtGroup.Owner)
	require.Len(t, hurtGroup.Boxes, 1)
	assert.Equal(t, newBox, hurtGroup.Boxes[0])
}

func TestRemapEntitiesLeavesUnmappedReferencesAlone(t *testing.T) {
	w := donburi.NewWorld()

	owner := w.Create()
	unrelated := w.Create()
	relocated := w.Create()

	entry := w.Entry(w.Create(tags.Hitbox, components.Hitbox))
	components.Hitbox.SetValue(entry, components.HitboxData{Group: owner})

	RemapEntities(w, map[donburi.Entity]donburi.Entity{unrelated: relocated})

	assert.Equal(t, owner, components.Hitbox.Get(entry).Group)
}
