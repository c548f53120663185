package components

import (
	"github.com/solarlune/resolv"
)

// ColliderDef describes one axis-aligned rectangle belonging to a hitbox or
// hurtbox. Offsets are relative to the anchor of the owning entity, with the
// rectangle centered on the offset point.
type ColliderDef struct {
	Width   float64
	Height  float64
	Name    string
	OffsetX float64
	OffsetY float64
}

// TopLeftOffset returns the offset of the rectangle's top-left corner from
// the entity anchor.
func (c ColliderDef) TopLeftOffset() (float64, float64) {
	return c.OffsetX - c.Width/2, c.OffsetY - c.Height/2
}

// NewObject builds the resolv sensor object for this collider, anchored at
// (x, y).
func (c ColliderDef) NewObject(x, y float64, tags ...string) *resolv.Object {
	ox, oy := c.TopLeftOffset()
	obj := resolv.NewObject(x+ox, y+oy, c.Width, c.Height, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, c.Width, c.Height))
	return obj
}
