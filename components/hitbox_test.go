package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestHitboxCooldownGating(t *testing.T) {
	w := donburi.NewWorld()
	target := w.Create(Hurtbox)
	other := w.Create(Hurtbox)

	h := HitboxData{
		CooldownPerTarget: 1.0,
		HitTargets:        map[donburi.Entity]float64{},
	}

	assert.True(t, h.CanDamage(target))

	h.MarkDamaged(target)
	assert.False(t, h.CanDamage(target))
	assert.True(t, h.CanDamage(other), "a different owner is hittable immediately")

	h.HitTargets[target] = 0.5
	assert.False(t, h.CanDamage(target))

	h.HitTargets[target] = 1.0
	assert.True(t, h.CanDamage(target), "cooldown boundary is inclusive")
}

func TestHitboxRefreshClearsLedger(t *testing.T) {
	w := donburi.NewWorld()
	target := w.Create(Hurtbox)

	h := HitboxData{CooldownPerTarget: 1.0}
	h.MarkDamaged(target)
	assert.NotEmpty(t, h.HitTargets)

	h.Refresh()
	assert.Empty(t, h.HitTargets)
	assert.True(t, h.CanDamage(target))
}

func TestHitboxOneShotFlag(t *testing.T) {
	after := 0.5
	h := HitboxData{ActivateAfter: &after}
	assert.True(t, h.IsOneShot())

	h.ActivateAfter = nil
	assert.False(t, h.IsOneShot())

	h.DeactivateAfter = &after
	assert.True(t, h.IsOneShot())
}
