package components

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"
)

// ErrUnknownTimeline is returned when starting a timeline the group does not
// define.
var ErrUnknownTimeline = errors.New("unknown timeline")

// HitboxGroupData binds a set of named hitbox entities to the owner that is
// credited with the damage they deal, along with the group's timeline
// library and the cursor of the timeline currently playing, if any.
type HitboxGroupData struct {
	Boxes     map[string]donburi.Entity
	Owner     donburi.Entity
	Timelines map[string][]*Frame
	Cursor    *Cursor
}

func (g *HitboxGroupData) HasTimeline(name string) bool {
	_, ok := g.Timelines[name]
	return ok
}

// StartTimeline begins playback of the named timeline from its first frame,
// resetting transient frame and tag state across every timeline of the
// group. Restarting while another timeline is playing is allowed.
func (g *HitboxGroupData) StartTimeline(name string) error {
	if !g.HasTimeline(name) {
		return fmt.Errorf("%w: %q", ErrUnknownTimeline, name)
	}
	g.ResetTimelines()
	g.Cursor = NewCursor(name)
	return nil
}

// ResetTimelines clears transient frame and tag state on every timeline.
func (g *HitboxGroupData) ResetTimelines() {
	for _, frames := range g.Timelines {
		for _, f := range frames {
			f.Reset()
		}
	}
}

// Advance progresses the playing timeline by delta. Returns nil when idle.
// The caller clears the cursor when an EventFinished is returned.
func (g *HitboxGroupData) Advance(delta float64) []TimelineEvent {
	if g.Cursor == nil {
		return nil
	}
	return g.Cursor.Advance(g.Timelines, g.Boxes, delta)
}

// CurrentFrame returns the frame the cursor points at, or nil when idle.
func (g *HitboxGroupData) CurrentFrame() *Frame {
	if g.Cursor == nil {
		return nil
	}
	frames := g.Timelines[g.Cursor.Name]
	if g.Cursor.Frame >= len(frames) {
		return nil
	}
	return frames[g.Cursor.Frame]
}

var HitboxGroup = donburi.NewComponentType[HitboxGroupData]()
