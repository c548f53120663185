package components

import (
	"github.com/yohamta/donburi"
)

// FrameTag is a named sub-event fired partway through a frame, used to
// trigger side effects independent of hitbox activation. The delay is
// relative to the frame's start, after the frame's own delay.
type FrameTag struct {
	Name  string
	Delay float64
	Data  map[string]any

	triggered bool
}

// Frame is one step of a timeline: wait Delay, activate the named hitboxes,
// fire tags as their delays elapse, then deactivate after Duration.
type Frame struct {
	Duration float64
	Delay    float64
	Name     string
	Names    []string
	Tags     []*FrameTag

	active bool
}

// Reset clears the frame's transient state so it can be visited again.
func (f *Frame) Reset() {
	f.active = false
	for _, t := range f.Tags {
		t.triggered = false
	}
}

// Hitboxes resolves the frame's target names against the group's name map.
// Names that resolve to nothing are skipped.
func (f *Frame) Hitboxes(boxes map[string]donburi.Entity) []donburi.Entity {
	var entities []donburi.Entity
	if f.Name != "" {
		if e, ok := boxes[f.Name]; ok {
			entities = append(entities, e)
		}
	}
	for _, name := range f.Names {
		if e, ok := boxes[name]; ok {
			entities = append(entities, e)
		}
	}
	return entities
}

type TimelineEventKind int

const (
	EventActivated TimelineEventKind = iota
	EventDeactivated
	EventTagTriggered
	EventFinished
)

// TimelineEvent is emitted by Cursor.Advance. Hitbox is set for activation
// and deactivation events, Tag and Data for tag events.
type TimelineEvent struct {
	Kind   TimelineEventKind
	Hitbox donburi.Entity
	Tag    string
	Data   map[string]any
}

// ActivatedHitboxes extracts the hitboxes carried by activation events.
func ActivatedHitboxes(events []TimelineEvent) []donburi.Entity {
	var out []donburi.Entity
	for _, ev := range events {
		if ev.Kind == EventActivated {
			out = append(out, ev.Hitbox)
		}
	}
	return out
}

// DeactivatedHitboxes extracts the hitboxes carried by deactivation events.
func DeactivatedHitboxes(events []TimelineEvent) []donburi.Entity {
	var out []donburi.Entity
	for _, ev := range events {
		if ev.Kind == EventDeactivated {
			out = append(out, ev.Hitbox)
		}
	}
	return out
}

// Cursor is the playback position of one named timeline: current frame index
// and time elapsed within that frame.
type Cursor struct {
	Name    string
	Frame   int
	Elapsed float64
}

func NewCursor(name string) *Cursor {
	return &Cursor{Name: name}
}

// Advance progresses playback by delta and returns the events that fired.
// A single call advances at most one frame, no matter how large delta is.
func (c *Cursor) Advance(timelines map[string][]*Frame, boxes map[string]donburi.Entity, delta float64) []TimelineEvent {
	frames := timelines[c.Name]
	if c.Frame >= len(frames) {
		return nil
	}
	frame := frames[c.Frame]

	var events []TimelineEvent
	c.Elapsed += delta

	if c.Elapsed >= frame.Delay && !frame.active {
		frame.active = true
		for _, e := range frame.Hitboxes(boxes) {
			events = append(events, TimelineEvent{Kind: EventActivated, Hitbox: e})
		}
	}

	for _, tag := range frame.Tags {
		if !tag.triggered && c.Elapsed >= frame.Delay+tag.Delay {
			tag.triggered = true
			events = append(events, TimelineEvent{Kind: EventTagTriggered, Tag: tag.Name, Data: tag.Data})
		}
	}

	if c.Elapsed >= frame.Delay+frame.Duration {
		for _, e := range frame.Hitboxes(boxes) {
			events = append(events, TimelineEvent{Kind: EventDeactivated, Hitbox: e})
		}
		frame.Reset()
		c.Elapsed = 0
		c.Frame++
		if c.Frame >= len(frames) {
			events = append(events, TimelineEvent{Kind: EventFinished})
		}
	}

	return events
}

// ActiveHitboxes returns the hitboxes targeted by the current frame.
func (c *Cursor) ActiveHitboxes(timelines map[string][]*Frame, boxes map[string]donburi.Entity) []donburi.Entity {
	frames := timelines[c.Name]
	if c.Frame >= len(frames) {
		return nil
	}
	return frames[c.Frame].Hitboxes(boxes)
}

// FutureHitboxes returns the hitboxes targeted by frames the cursor has not
// reached yet.
func (c *Cursor) FutureHitboxes(timelines map[string][]*Frame, boxes map[string]donburi.Entity) []donburi.Entity {
	frames := timelines[c.Name]
	var entities []donburi.Entity
	for i := c.Frame + 1; i < len(frames); i++ {
		entities = append(entities, frames[i].Hitboxes(boxes)...)
	}
	return entities
}

// Finished reports whether the cursor sits on the last frame with its
// duration spent.
func (c *Cursor) Finished(timelines map[string][]*Frame) bool {
	frames := timelines[c.Name]
	if len(frames) == 0 {
		return true
	}
	last := frames[len(frames)-1]
	return c.Frame >= len(frames)-1 && c.Elapsed >= last.Delay+last.Duration
}
