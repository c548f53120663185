package systems

import (
	"errors"
	"fmt"

	"github.com/automata-games/clashbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrNoHitboxGroup is returned when starting a timeline on an entity that
// carries no hitbox group.
var ErrNoHitboxGroup = errors.New("entity has no hitbox group")

// TagContext is passed to tag handlers when a timeline frame tag fires.
type TagContext struct {
	Tag string
	// Owner is the owner of the hitbox group whose timeline fired the tag.
	Owner donburi.Entity
	Data  map[string]any
}

// TagHandler reacts to a fired frame tag. Handlers run synchronously inside
// the tick.
type TagHandler func(w donburi.World, ctx TagContext)

// HitContext identifies one resolved hit.
type HitContext struct {
	// Attacker is the owner of the hitbox group dealing the hit.
	Attacker donburi.Entity
	// Target is the owner of the hurtbox group receiving it.
	Target  donburi.Entity
	Hitbox  donburi.Entity
	Hurtbox donburi.Entity
}

// HitFilter vetoes a candidate hit. Every registered filter must pass for
// the hit to land; evaluation may stop at the first rejection and its order
// is unspecified, so filters must be side-effect free.
type HitFilter func(w donburi.World, ctx HitContext) bool

// HitHandler reacts to a landed hit, e.g. by applying damage.
type HitHandler func(w donburi.World, ctx HitContext)

// Combat drives the per-tick combat pipeline. One instance is owned by the
// host game loop; register Update as an ECS system.
type Combat struct {
	// Delta is the timestep added each Update.
	Delta float64

	// DeltaFunc overrides Delta for the whole tick when set.
	DeltaFunc func(e *ecs.ECS) float64

	// DeltaFor overrides the timestep for a single entity when set, e.g.
	// for entities under a time-slow effect.
	DeltaFor func(e *ecs.ECS, id donburi.Entity) float64

	tagHandlers       []TagHandler
	tagHandlersByName map[string]TagHandler
	hitFilters        []HitFilter
	hitHandlers       []HitHandler
}

func NewCombat(delta float64) *Combat {
	return &Combat{
		Delta:             delta,
		tagHandlersByName: map[string]TagHandler{},
	}
}

// OnTag registers a handler invoked for every fired tag, in registration
// order.
func (c *Combat) OnTag(h TagHandler) {
	c.tagHandlers = append(c.tagHandlers, h)
}

// OnTagNamed registers the handler for one tag name. It runs after the
// global handlers.
func (c *Combat) OnTagNamed(tag string, h TagHandler) {
	c.tagHandlersByName[tag] = h
}

// AddHitFilter registers a hit filter.
func (c *Combat) AddHitFilter(f HitFilter) {
	c.hitFilters = append(c.hitFilters, f)
}

// OnHit registers a handler invoked for every landed hit, in registration
// order.
func (c *Combat) OnHit(h HitHandler) {
	c.hitHandlers = append(c.hitHandlers, h)
}

// Update runs one combat tick. Step order is fixed: one-shot hitbox timers,
// cooldown decay, timeline advancement, collision resolution, then follower
// position sync.
func (c *Combat) Update(e *ecs.ECS) {
	c.updateOneShotTimers(e)
	c.updateCooldowns(e)
	c.updateTimelines(e)
	c.resolveHits(e)
	updateFollowers(e)
}

func (c *Combat) tickDelta(e *ecs.ECS) float64 {
	if c.DeltaFunc != nil {
		return c.DeltaFunc(e)
	}
	return c.Delta
}

func (c *Combat) deltaFor(e *ecs.ECS, id donburi.Entity) float64 {
	if c.DeltaFor != nil {
		return c.DeltaFor(e, id)
	}
	return c.tickDelta(e)
}

// StartTimeline begins playback of the named timeline on the hitbox group
// carried by the given entity.
func StartTimeline(w donburi.World, id donburi.Entity, name string) error {
	if !w.Valid(id) {
		return fmt.Errorf("%w: entity %d", ErrNoHitboxGroup, id)
	}
	entry := w.Entry(id)
	if !entry.HasComponent(components.HitboxGroup) {
		return fmt.Errorf("%w: entity %d", ErrNoHitboxGroup, id)
	}
	return components.HitboxGroup.Get(entry).StartTimeline(name)
}

// RefreshHitboxes clears the cooldown ledger of the entity's hitbox, and of
// every hitbox in its group when the entity carries one.
func RefreshHitboxes(w donburi.World, id donburi.Entity) {
	if !w.Valid(id) {
		return
	}
	entry := w.Entry(id)
	if entry.HasComponent(components.Hitbox) {
		components.Hitbox.Get(entry).Refresh()
	}
	if entry.HasComponent(components.HitboxGroup) {
		for _, boxID := range components.HitboxGroup.Get(entry).Boxes {
			if hb, ok := hitboxOf(w, boxID); ok {
				hb.Refresh()
			}
		}
	}
}

func hitboxOf(w donburi.World, id donburi.Entity) (*components.HitboxData, bool) {
	if !w.Valid(id) {
		return nil, false
	}
	entry := w.Entry(id)
	if !entry.HasComponent(components.Hitbox) {
		return nil, false
	}
	return components.Hitbox.Get(entry), true
}

func hurtboxOf(w donburi.World, id donburi.Entity) (*components.HurtboxData, bool) {
	if !w.Valid(id) {
		return nil, false
	}
	entry := w.Entry(id)
	if !entry.HasComponent(components.Hurtbox) {
		return nil, false
	}
	return components.Hurtbox.Get(entry), true
}

// HitboxOwner resolves a hitbox entity to the owner of its group.
func HitboxOwner(w donburi.World, id donburi.Entity) (donburi.Entity, bool) {
	hb, ok := hitboxOf(w, id)
	if !ok {
		return 0, false
	}
	return groupOwner(w, hb.Group, components.HitboxGroup)
}

// HurtboxOwner resolves a hurtbox entity to the owner of its group.
func HurtboxOwner(w donburi.World, id donburi.Entity) (donburi.Entity, bool) {
	hb, ok := hurtboxOf(w, id)
	if !ok {
		return 0, false
	}
	owner, ok := hurtboxGroupOwner(w, hb.Group)
	return owner, ok
}

func groupOwner(w donburi.World, group donburi.Entity, ctype *donburi.ComponentType[components.HitboxGroupData]) (donburi.Entity, bool) {
	if !w.Valid(group) {
		return 0, false
	}
	entry := w.Entry(group)
	if !entry.HasComponent(ctype) {
		return 0, false
	}
	owner := ctype.Get(entry).Owner
	if !w.Valid(owner) {
		return 0, false
	}
	return owner, true
}

func hurtboxGroupOwner(w donburi.World, group donburi.Entity) (donburi.Entity, bool) {
	if !w.Valid(group) {
		return 0, false
	}
	entry := w.Entry(group)
	if !entry.HasComponent(components.HurtboxGroup) {
		return 0, false
	}
	owner := components.HurtboxGroup.Get(entry).Owner
	if !w.Valid(owner) {
		return 0, false
	}
	return owner, true
}
