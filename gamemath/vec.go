package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// Vec2 is the donburi vector type, aliased so callers of this package don't need
// to import donburi.
type Vec2 = dmath.Vec2
