package components

import (
	"github.com/automoto/dancing-bear/gamemath"
	"github.com/yohamta/donburi"
)

// OrbitData makes an entity circle the Anchor entity's transform.
type OrbitData struct {
	Orbit  *gamemath.Orbit
	Anchor *donburi.Entry

	// Behind is true while the follower is on the far half of the ellipse
	Behind bool
}

var Orbit = donburi.NewComponentType[OrbitData]()
