package gamemath

import "math"

const twoPi = 2 * math.Pi

// RandSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// OrbitParams configures an elliptical orbit. Radii and scales are not validated:
// a zero or negative radius collapses or mirrors the ellipse, and MinScale == MaxScale
// disables depth scaling.
type OrbitParams struct {
	Anchor             Vec2
	RadiusX            float64
	RadiusY            float64
	MinScale           float64
	MaxScale           float64
	MinPeriod          float64 // seconds
	MaxPeriod          float64 // seconds
	ReferenceFrameRate float64 // ticks per second that a delta of 1.0 stands for
}

// FollowerTransform is the per-tick output of an Orbit.
type FollowerTransform struct {
	X, Y  float64
	Scale float64
	Depth float64 // 0 at the top of the ellipse, 1 at the bottom
}

// Orbit moves a follower around an anchor on an ellipse. The lap period is redrawn
// uniformly from [MinPeriod, MaxPeriod] every time a revolution completes.
type Orbit struct {
	params OrbitParams
	rng    RandSource

	angle           float64
	angularVelocity float64
	period          float64
	laps            int

	last FollowerTransform
}

// NewOrbit starts an orbit at angle 0 with a freshly drawn period.
func NewOrbit(params OrbitParams, rng RandSource) *Orbit {
	o := &Orbit{
		params: params,
		rng:    rng,
	}
	o.resample()
	o.last = o.transformAt(o.angle)
	return o
}

// Tick advances the orbit by delta reference frames and returns the new transform.
// Negative and non-finite deltas are treated as zero. A single wrap keeps the
// overshoot exactly; a tick spanning several laps counts them all and draws one period.
func (o *Orbit) Tick(delta float64) FollowerTransform {
	if delta > 0 && !math.IsInf(delta, 1) {
		o.angle += o.angularVelocity * delta
	}
	switch {
	case math.IsInf(o.angle, 0) || math.IsNaN(o.angle):
		o.angle = 0
	case o.angle >= 2*twoPi:
		// Many laps in one tick: count them all, draw one new period
		laps := math.Floor(o.angle / twoPi)
		if laps < math.MaxInt32 {
			o.laps += int(laps)
		} else {
			o.laps += math.MaxInt32
		}
		o.angle = NormalizeAngle(o.angle)
		o.resample()
	case o.angle >= twoPi:
		o.angle -= twoPi
		o.laps++
		o.resample()
	}

	o.last = o.transformAt(o.angle)
	return o.last
}

func (o *Orbit) transformAt(angle float64) FollowerTransform {
	p := o.params
	cosA := math.Cos(angle)
	sinA := math.Sin(angle)

	depth := (sinA + 1) / 2
	return FollowerTransform{
		X:     p.Anchor.X + cosA*p.RadiusX,
		Y:     p.Anchor.Y + sinA*p.RadiusY,
		Scale: Lerp(p.MinScale, p.MaxScale, depth),
		Depth: depth,
	}
}

// resample draws a new lap period and derives the per-frame angular velocity from it.
func (o *Orbit) resample() {
	p := o.params
	o.period = p.MinPeriod + o.rng.Float64()*(p.MaxPeriod-p.MinPeriod)
	o.angularVelocity = twoPi / (o.period * p.ReferenceFrameRate)
}

// SetAnchor moves the point the follower orbits around. It takes effect on the next Tick.
func (o *Orbit) SetAnchor(anchor Vec2) {
	o.params.Anchor = anchor
}

// SetAngle places the follower at an arbitrary phase, normalized into [0, 2π).
// The current period is kept.
func (o *Orbit) SetAngle(angle float64) {
	o.angle = NormalizeAngle(angle)
	o.last = o.transformAt(o.angle)
}

func (o *Orbit) Params() OrbitParams { return o.params }
func (o *Orbit) Angle() float64 { return o.angle }
func (o *Orbit) AngularVelocity() float64 { return o.angularVelocity }
func (o *Orbit) Period() float64 { return o.period }
func (o *Orbit) Laps() int { return o.laps }
func (o *Orbit) Last() FollowerTransform { return o.last }

// NormalizeAngle wraps any angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
