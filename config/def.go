package config

import (
	"github.com/automata-games/clashbox/components"
	"github.com/yohamta/donburi"
)

// DefaultCooldown gates repeat hits on the same owner when a hitbox does not
// override it.
const DefaultCooldown = 1.0

// GroupDef is the declarative combat table for one entity: an optional set
// of named hitboxes with timelines, and an optional list of hurtboxes.
type GroupDef struct {
	Hitboxes  map[string]HitboxDef  `yaml:"hitboxes"`
	Timelines map[string][]FrameDef `yaml:"timelines"`
	Hurtboxes []HurtboxDef          `yaml:"hurtboxes"`
}

type HitboxDef struct {
	Active          bool          `yaml:"active"`
	Visible         bool          `yaml:"visible"`
	Colliders       []ColliderDef `yaml:"colliders"`
	ActivateAfter   *float64      `yaml:"activate_after"`
	DeactivateAfter *float64      `yaml:"deactivate_after"`
	CooldownPerTarget *float64    `yaml:"cooldown_per_target"`
}

// Cooldown returns the per-target cooldown, applying the default when the
// field is absent.
func (d HitboxDef) Cooldown() float64 {
	if d.CooldownPerTarget == nil {
		return DefaultCooldown
	}
	return *d.CooldownPerTarget
}

type HurtboxDef struct {
	Active    bool          `yaml:"active"`
	Visible   bool          `yaml:"visible"`
	Colliders []ColliderDef `yaml:"colliders"`
}

type ColliderDef struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Name    string  `yaml:"name"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type FrameDef struct {
	Duration float64  `yaml:"duration"`
	Delay    float64  `yaml:"delay"`
	Name     string   `yaml:"name"`
	Names    []string `yaml:"names"`
	Tags     []TagDef `yaml:"tags"`
}

type TagDef struct {
	Name  string         `yaml:"name"`
	Delay float64        `yaml:"delay"`
	Data  map[string]any `yaml:"data"`
}

// Colliders converts the collider defs, clamping negative dimensions to
// zero-sized.
func toColliders(defs []ColliderDef) []components.ColliderDef {
	out := make([]components.ColliderDef, 0, len(defs))
	for _, d := range defs {
		if d.Width < 0 {
			d.Width = 0
		}
		if d.Height < 0 {
			d.Height = 0
		}
		out = append(out, components.ColliderDef{
			Width:   d.Width,
			Height:  d.Height,
			Name:    d.Name,
			OffsetX: d.OffsetX,
			OffsetY: d.OffsetY,
		})
	}
	return out
}

// Hitbox builds the hitbox component described by this def.
func (d HitboxDef) Hitbox() components.HitboxData {
	return components.HitboxData{
		Active:            d.Active,
		Visible:           d.Visible,
		ActivateAfter:     d.ActivateAfter,
		DeactivateAfter:   d.DeactivateAfter,
		Colliders:         toColliders(d.Colliders),
		CooldownPerTarget: d.Cooldown(),
		HitTargets:        make(map[donburi.Entity]float64),
	}
}

// Hurtbox builds the hurtbox component described by this def.
func (d HurtboxDef) Hurtbox() components.HurtboxData {
	return components.HurtboxData{
		Active:    d.Active,
		Visible:   d.Visible,
		Colliders: toColliders(d.Colliders),
	}
}

// Frames converts timeline frame defs into runtime frames.
func Frames(defs []FrameDef) []*components.Frame {
	frames := make([]*components.Frame, 0, len(defs))
	for _, d := range defs {
		if d.Duration < 0 {
			d.Duration = 0
		}
		f := &components.Frame{
			Duration: d.Duration,
			Delay:    d.Delay,
			Name:     d.Name,
			Names:    d.Names,
		}
		for _, t := range d.Tags {
			data := t.Data
			if data == nil {
				data = map[string]any{}
			}
			f.Tags = append(f.Tags, &components.FrameTag{
				Name:  t.Name,
				Delay: t.Delay,
				Data:  data,
			})
		}
		frames = append(frames, f)
	}
	return frames
}

// TimelineFrames converts every timeline of the def.
func (d *GroupDef) TimelineFrames() map[string][]*components.Frame {
	timelines := make(map[string][]*components.Frame, len(d.Timelines))
	for name, frames := range d.Timelines {
		timelines[name] = Frames(frames)
	}
	return timelines
}
