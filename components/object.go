package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// ObjectData holds the resolv objects backing an entity, plus each object's
// top-left offset from the entity anchor so the whole set can be repositioned
// together.
type ObjectData struct {
	Objects []*resolv.Object
	Offsets []Vector
}

func (o *ObjectData) Add(obj *resolv.Object, offsetX, offsetY float64) {
	o.Objects = append(o.Objects, obj)
	o.Offsets = append(o.Offsets, Vector{X: offsetX, Y: offsetY})
}

func (o *ObjectData) Primary() *resolv.Object {
	if len(o.Objects) == 0 {
		return nil
	}
	return o.Objects[0]
}

// Position returns the entity anchor derived from the primary object.
func (o *ObjectData) Position() (float64, float64) {
	if len(o.Objects) == 0 {
		return 0, 0
	}
	return o.Objects[0].X - o.Offsets[0].X, o.Objects[0].Y - o.Offsets[0].Y
}

// SetPosition moves every object so the entity anchor lands on (x, y).
func (o *ObjectData) SetPosition(x, y float64) {
	for i, obj := range o.Objects {
		obj.X = x + o.Offsets[i].X
		obj.Y = y + o.Offsets[i].Y
		obj.Update()
	}
}

var Object = donburi.NewComponentType[ObjectData]()
