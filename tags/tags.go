package tags

import "github.com/yohamta/donburi"

var (
	Hitbox  = donburi.NewTag().SetName("Hitbox")
	Hurtbox = donburi.NewTag().SetName("Hurtbox")
)

// Resolv tags for overlap queries
const (
	ResolvHitbox  = "hitbox"
	ResolvHurtbox = "hurtbox"
)
