package components

import (
	"github.com/yohamta/donburi"
)

// HitboxData is a single damage-dealing region. Hitboxes belong to a hitbox
// group and only deal damage while active.
type HitboxData struct {
	Active  bool
	Visible bool

	// One-shot timers for spawned hitbox entities (bullets and the like).
	// A timer fires once when Elapsed reaches it and is then cleared.
	ActivateAfter   *float64
	DeactivateAfter *float64
	Elapsed         float64

	// Group is the entity carrying the owning HitboxGroupData.
	Group donburi.Entity

	Colliders []ColliderDef

	// CooldownPerTarget is how much time must pass before this hitbox may
	// damage the same owner again.
	CooldownPerTarget float64

	// HitTargets maps each damaged owner to the time elapsed since the hit.
	HitTargets map[donburi.Entity]float64
}

// IsOneShot reports whether a one-shot timer is still pending.
func (h *HitboxData) IsOneShot() bool {
	return h.ActivateAfter != nil || h.DeactivateAfter != nil
}

func (h *HitboxData) Activate() {
	h.Active = true
}

func (h *HitboxData) Deactivate() {
	h.Active = false
}

// Refresh clears the damaged-target ledger, making every owner hittable
// again.
func (h *HitboxData) Refresh() {
	h.HitTargets = make(map[donburi.Entity]float64)
}

// CanDamage reports whether the target owner is outside this hitbox's
// cooldown window.
func (h *HitboxData) CanDamage(target donburi.Entity) bool {
	elapsed, hit := h.HitTargets[target]
	if !hit {
		return true
	}
	return elapsed >= h.CooldownPerTarget
}

// MarkDamaged records a hit against the given owners, restarting their
// cooldown windows.
func (h *HitboxData) MarkDamaged(targets ...donburi.Entity) {
	if h.HitTargets == nil {
		h.HitTargets = make(map[donburi.Entity]float64)
	}
	for _, t := range targets {
		h.HitTargets[t] = 0
	}
}

var Hitbox = donburi.NewComponentType[HitboxData]()
