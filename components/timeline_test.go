package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const (
	testTimelineName = "swing"
	testHitboxName   = "blade"
)

func newTestTimeline() (*Cursor, map[string][]*Frame, map[string]donburi.Entity) {
	w := donburi.NewWorld()

	boxes := map[string]donburi.Entity{
		testHitboxName: w.Create(Hitbox),
	}
	timelines := map[string][]*Frame{
		testTimelineName: {
			{Duration: 2.0, Name: testHitboxName},
		},
	}

	return NewCursor(testTimelineName), timelines, boxes
}

func TestFirstFrameActivatesHitboxes(t *testing.T) {
	cursor, timelines, boxes := newTestTimeline()

	events := cursor.Advance(timelines, boxes, 0.016)

	require.Len(t, events, 1)
	activated := ActivatedHitboxes(events)
	require.Len(t, activated, 1)
	assert.Equal(t, boxes[testHitboxName], activated[0])
}

func TestFirstFrameRespectsDelay(t *testing.T) {
	cursor, timelines, boxes := newTestTimeline()
	timelines[testTimelineName][0].Delay = 0.2

	events := cursor.Advance(timelines, boxes, 0.016)
	assert.Empty(t, events)

	// Cumulative elapsed 0.216 >= 0.2 now.
	events = cursor.Advance(timelines, boxes, 0.2)
	require.Len(t, events, 1)
	activated := ActivatedHitboxes(events)
	require.Len(t, activated, 1)
	assert.Equal(t, boxes[testHitboxName], activated[0])
}

func TestAdvancingPastDurationDeactivatesAndFinishes(t *testing.T) {
	cursor, timelines, boxes := newTestTimeline()

	events := cursor.Advance(timelines, boxes, 0.016)
	require.Len(t, events, 1)
	assert.Equal(t, EventActivated, events[0].Kind)

	events = cursor.Advance(timelines, boxes, 40.0)
	require.Len(t, events, 2)
	assert.Equal(t, EventDeactivated, events[0].Kind)
	assert.Equal(t, boxes[testHitboxName], events[0].Hitbox)
	assert.Equal(t, EventFinished, events[1].Kind)
}

func TestSingleOversizedDeltaAdvancesOneFrameOnly(t *testing.T) {
	cursor, timelines, boxes := newTestTimeline()
	timelines[testTimelineName] = append(timelines[testTimelineName], &Frame{Duration: 1.0, Name: testHitboxName})

	// The delta spans both frames, but only the first is consumed.
	events := cursor.Advance(timelines, boxes, 40.0)
	assert.Equal(t, 1, cursor.Frame)
	assert.Len(t, DeactivatedHitboxes(events), 1)
	for _, ev := range events {
		assert.NotEqual(t, EventFinished, ev.Kind)
	}
}

func TestUnresolvableHitboxNamesAreSkipped(t *testing.T) {
	cursor, timelines, boxes := newTestTimeline()
	timelines[testTimelineName][0].Names = []string{"ghost"}

	events := cursor.Advance(timelines, boxes, 0.016)
	require.Len(t, events, 1)
	assert.Equal(t, boxes[testHitboxName], events[0].Hitbox)
}

func TestTagsFireOnceAtTheirDelay(t *testing.T) {
	cursor, timelines, boxes := newTestTimeline()
	frame := timelines[testTimelineName][0]
	frame.Delay = 0.1
	frame.Tags = []*FrameTag{{Name: "sfx", Delay: 0.25, Data: map[string]any{"clip": "whoosh"}}}

	events := cursor.Advance(timelines, boxes, 0.2)
	require.Len(t, events, 1)
	assert.Equal(t, EventActivated, events[0].Kind)

	// Elapsed 0.4 >= frame delay 0.1 + tag delay 0.25.
	events = cursor.Advance(timelines, boxes, 0.2)
	require.Len(t, events, 1)
	assert.Equal(t, EventTagTriggered, events[0].Kind)
	assert.Equal(t, "sfx", events[0].Tag)
	assert.Equal(t, "whoosh", events[0].Data["clip"])

	events = cursor.Advance(timelines, boxes, 0.2)
	assert.Empty(t, events)
}

func TestStartTimelineResetsTransientStateAcrossAllTimelines(t *testing.T) {
	w := donburi.NewWorld()
	box := w.Create(Hitbox)

	group := HitboxGroupData{
		Boxes: map[string]donburi.Entity{testHitboxName: box},
		Timelines: map[string][]*Frame{
			"swing": {{Duration: 2.0, Name: testHitboxName}},
			"stab":  {{Duration: 1.0, Name: testHitboxName}},
		},
	}

	require.NoError(t, group.StartTimeline("swing"))
	events := group.Advance(0.016)
	require.Len(t, ActivatedHitboxes(events), 1)

	// Leave swing's first frame marked active, then play the other
	// timeline; restarting swing afterwards must activate again.
	require.NoError(t, group.StartTimeline("stab"))
	events = group.Advance(0.016)
	require.Len(t, ActivatedHitboxes(events), 1)

	require.NoError(t, group.StartTimeline("swing"))
	events = group.Advance(0.016)
	assert.Len(t, ActivatedHitboxes(events), 1)
}

func TestStartUnknownTimelineFails(t *testing.T) {
	group := HitboxGroupData{Timelines: map[string][]*Frame{}}

	err := group.StartTimeline("missing")
	assert.ErrorIs(t, err, ErrUnknownTimeline)
	assert.Nil(t, group.Cursor)
}

func TestCursorHelpers(t *testing.T) {
	w := donburi.NewWorld()
	first := w.Create(Hitbox)
	second := w.Create(Hitbox)

	boxes := map[string]donburi.Entity{"first": first, "second": second}
	timelines := map[string][]*Frame{
		"combo": {
			{Duration: 1.0, Name: "first"},
			{Duration: 1.0, Name: "second"},
		},
	}
	cursor := NewCursor("combo")

	assert.Equal(t, []donburi.Entity{first}, cursor.ActiveHitboxes(timelines, boxes))
	assert.Equal(t, []donburi.Entity{second}, cursor.FutureHitboxes(timelines, boxes))
	assert.False(t, cursor.Finished(timelines))

	cursor.Advance(timelines, boxes, 40.0)
	cursor.Elapsed = 40.0
	assert.True(t, cursor.Finished(timelines))
}
