package systems

import (
	"image/color"

	"github.com/automata-games/clashbox/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	hitboxActiveColor   = color.RGBA{255, 64, 64, 100}
	hitboxInactiveColor = color.RGBA{128, 32, 32, 60}
	hurtboxActiveColor  = color.RGBA{64, 160, 255, 100}
	hurtboxIdleColor    = color.RGBA{32, 64, 128, 60}
)

// DrawBoxes renders every visible box rectangle for debugging. Register it
// as an ECS renderer; the simulation never depends on it.
func DrawBoxes(e *ecs.ECS, screen *ebiten.Image) {
	components.Hurtbox.Each(e.World, func(entry *donburi.Entry) {
		hb := components.Hurtbox.Get(entry)
		if !hb.Visible {
			return
		}
		clr := hurtboxIdleColor
		if hb.Active {
			clr = hurtboxActiveColor
		}
		drawEntryObjects(entry, screen, clr)
	})

	components.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		hb := components.Hitbox.Get(entry)
		if !hb.Visible {
			return
		}
		clr := hitboxInactiveColor
		if hb.Active {
			clr = hitboxActiveColor
		}
		drawEntryObjects(entry, screen, clr)
	})
}

func drawEntryObjects(entry *donburi.Entry, screen *ebiten.Image, clr color.RGBA) {
	if !entry.HasComponent(components.Object) {
		return
	}
	for _, o := range components.Object.Get(entry).Objects {
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), clr, false)
	}
}
