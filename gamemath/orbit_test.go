package gamemath

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

const eps = 1e-9

// seqRand replays a fixed sequence of draws and counts how many were taken.
type seqRand struct {
	vals  []float64
	calls int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.calls%len(r.vals)]
	r.calls++
	return v
}

func defaultParams() OrbitParams {
	return OrbitParams{
		RadiusX:            160,
		RadiusY:            80,
		MinScale:           0.5,
		MaxScale:           1.0,
		MinPeriod:          8,
		MaxPeriod:          20,
		ReferenceFrameRate: 60,
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNewOrbitInitialState(t *testing.T) {
	rng := &seqRand{vals: []float64{0.5}}
	o := NewOrbit(defaultParams(), rng)

	if o.Angle() != 0 {
		t.Errorf("expected angle 0, got %f", o.Angle())
	}
	if !near(o.Period(), 14) {
		t.Errorf("expected period 14, got %f", o.Period())
	}
	wantVel := 2 * math.Pi / (14 * 60)
	if !near(o.AngularVelocity(), wantVel) {
		t.Errorf("expected angular velocity %f, got %f", wantVel, o.AngularVelocity())
	}
	if rng.calls != 1 {
		t.Errorf("expected one draw at construction, got %d", rng.calls)
	}
	last := o.Last()
	if !near(last.X, 160) || !near(last.Y, 0) || !near(last.Scale, 0.75) {
		t.Errorf("unexpected initial transform %+v", last)
	}
}

func TestOrbitScenarios(t *testing.T) {
	tests := []struct {
		name      string
		delta     float64
		wantX     float64
		wantY     float64
		wantScale float64
	}{
		{name: "quarter lap reaches bottom of ellipse", delta: 210, wantX: 0, wantY: 80, wantScale: 1.0},
		{name: "half lap is depth midpoint", delta: 420, wantX: -160, wantY: 0, wantScale: 0.75},
		{name: "three quarter lap reaches top of ellipse", delta: 630, wantX: 0, wantY: -80, wantScale: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 0.5 draws a 14s period: 840 frames per lap at 60 fps.
			o := NewOrbit(defaultParams(), &seqRand{vals: []float64{0.5}})
			got := o.Tick(tt.delta)

			if math.Abs(got.X-tt.wantX) > 1e-6 {
				t.Errorf("x = %f, want %f", got.X, tt.wantX)
			}
			if math.Abs(got.Y-tt.wantY) > 1e-6 {
				t.Errorf("y = %f, want %f", got.Y, tt.wantY)
			}
			if math.Abs(got.Scale-tt.wantScale) > 1e-6 {
				t.Errorf("scale = %f, want %f", got.Scale, tt.wantScale)
			}
		})
	}
}

func TestOrbitAngleStaysNormalized(t *testing.T) {
	deltas := []float64{0, 0.5, 1, 2.75, 100, 839.9, 840, 841, 5000, 1e6}
	o := NewOrbit(defaultParams(), rand.New(rand.NewPCG(7, 11)))

	for _, d := range deltas {
		o.Tick(d)
		if a := o.Angle(); a < 0 || a >= 2*math.Pi {
			t.Fatalf("after delta %f angle %f is outside [0, 2π)", d, a)
		}
	}
}

func TestOrbitAngleNormalizedFromAnyStart(t *testing.T) {
	starts := []float64{-10, -math.Pi, 0, 1, 2*math.Pi - 1e-12, 2 * math.Pi, 17}
	for _, start := range starts {
		o := NewOrbit(defaultParams(), &seqRand{vals: []float64{0.25}})
		o.SetAngle(start)
		o.Tick(3)
		if a := o.Angle(); a < 0 || a >= 2*math.Pi {
			t.Errorf("start %f: angle %f is outside [0, 2π)", start, a)
		}
	}
}

func TestOrbitScaleBounds(t *testing.T) {
	p := defaultParams()
	o := NewOrbit(p, rand.New(rand.NewPCG(3, 4)))

	for i := 0; i < 5000; i++ {
		tr := o.Tick(1.7)
		if tr.Scale < p.MinScale-eps || tr.Scale > p.MaxScale+eps {
			t.Fatalf("tick %d: scale %f outside [%f, %f]", i, tr.Scale, p.MinScale, p.MaxScale)
		}
	}

	o.SetAngle(math.Pi / 2)
	if got := o.Last().Scale; !near(got, p.MaxScale) {
		t.Errorf("scale at sin=1 is %f, want %f", got, p.MaxScale)
	}
	o.SetAngle(3 * math.Pi / 2)
	if got := o.Last().Scale; !near(got, p.MinScale) {
		t.Errorf("scale at sin=-1 is %f, want %f", got, p.MinScale)
	}
}

func TestOrbitTracesEllipse(t *testing.T) {
	p := defaultParams()
	p.Anchor = Vec2{X: 320, Y: 180}
	o := NewOrbit(p, &seqRand{vals: []float64{0}})

	// 8s period: 480 frames per lap.
	for i := 0; i < 480; i++ {
		tr := o.Tick(1)
		dx := (tr.X - p.Anchor.X) / p.RadiusX
		dy := (tr.Y - p.Anchor.Y) / p.RadiusY
		if v := dx*dx + dy*dy; math.Abs(v-1) > 1e-9 {
			t.Fatalf("tick %d: point (%f, %f) is off the ellipse (%f)", i, tr.X, tr.Y, v)
		}
	}
}

func TestOrbitDeterministicWithSameSource(t *testing.T) {
	a := NewOrbit(defaultParams(), rand.New(rand.NewPCG(42, 99)))
	b := NewOrbit(defaultParams(), rand.New(rand.NewPCG(42, 99)))

	deltas := []float64{1, 1, 0.5, 3, 1200, 1, 7.25, 2000, 0}
	for round := 0; round < 50; round++ {
		for _, d := range deltas {
			ta := a.Tick(d)
			tb := b.Tick(d)
			if ta != tb {
				t.Fatalf("round %d delta %f: %+v != %+v", round, d, ta, tb)
			}
		}
	}
	if a.Period() != b.Period() || a.Laps() != b.Laps() {
		t.Errorf("orbits diverged: period %f/%f laps %d/%d", a.Period(), b.Period(), a.Laps(), b.Laps())
	}
}

func TestOrbitWrapResamplesOnce(t *testing.T) {
	rng := &seqRand{vals: []float64{0.5, 0}}
	o := NewOrbit(defaultParams(), rng)
	vel := o.AngularVelocity()

	// 840 frames per lap: the 9th tick of 100 crosses 2π.
	accumulated := 0.0
	for i := 0; i < 8; i++ {
		o.Tick(100)
		accumulated += vel * 100
	}
	if rng.calls != 1 {
		t.Fatalf("resampled before the lap completed: %d draws", rng.calls)
	}
	if o.Laps() != 0 {
		t.Fatalf("expected 0 laps, got %d", o.Laps())
	}

	o.Tick(100)
	accumulated += vel * 100

	if rng.calls != 2 {
		t.Errorf("expected exactly one resample, got %d draws", rng.calls-1)
	}
	if o.Laps() != 1 {
		t.Errorf("expected 1 lap, got %d", o.Laps())
	}
	if want := accumulated - 2*math.Pi; !near(o.Angle(), want) {
		t.Errorf("angle after wrap = %f, want %f", o.Angle(), want)
	}
	if !near(o.Period(), 8) {
		t.Errorf("expected resampled period 8, got %f", o.Period())
	}
	if want := 2 * math.Pi / (8 * 60); !near(o.AngularVelocity(), want) {
		t.Errorf("angular velocity = %f, want %f", o.AngularVelocity(), want)
	}
}

func TestOrbitPeriodWithinBounds(t *testing.T) {
	p := defaultParams()
	o := NewOrbit(p, rand.New(rand.NewPCG(1, 1)))

	for i := 0; i < 200; i++ {
		o.Tick(2000)
		if o.Period() < p.MinPeriod || o.Period() > p.MaxPeriod {
			t.Fatalf("period %f outside [%f, %f]", o.Period(), p.MinPeriod, p.MaxPeriod)
		}
		if o.AngularVelocity() <= 0 {
			t.Fatalf("angular velocity %f is not positive", o.AngularVelocity())
		}
	}
}

func TestOrbitDegenerateConfig(t *testing.T) {
	p := defaultParams()
	p.RadiusX = 0
	p.MinScale = 0.8
	p.MaxScale = 0.8
	p.Anchor = Vec2{X: 10, Y: 20}
	o := NewOrbit(p, &seqRand{vals: []float64{0.3}})

	for i := 0; i < 1000; i++ {
		tr := o.Tick(1)
		if tr.X != 10 {
			t.Fatalf("x moved off the anchor line: %f", tr.X)
		}
		if !near(tr.Scale, 0.8) {
			t.Fatalf("scale %f should stay at 0.8", tr.Scale)
		}
	}
}

func TestOrbitNegativeDeltaIsIgnored(t *testing.T) {
	o := NewOrbit(defaultParams(), &seqRand{vals: []float64{0.5}})
	o.Tick(10)
	before := o.Angle()

	o.Tick(-5)
	if o.Angle() != before {
		t.Errorf("angle changed on negative delta: %f -> %f", before, o.Angle())
	}
}

func TestOrbitSetAnchor(t *testing.T) {
	o := NewOrbit(defaultParams(), &seqRand{vals: []float64{0.5}})
	o.SetAnchor(Vec2{X: 100, Y: 50})

	tr := o.Tick(0)
	if !near(tr.X, 260) || !near(tr.Y, 50) {
		t.Errorf("expected (260, 50), got (%f, %f)", tr.X, tr.Y)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{5 * math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{-4 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestOrbitManyLapsInOneTick(t *testing.T) {
	rng := &seqRand{vals: []float64{0.5}}
	o := NewOrbit(defaultParams(), rng)

	// 14 s period at 60 fps: 840 frames per lap, 2940 frames is 3.5 laps
	o.Tick(2940)

	if o.Laps() != 3 {
		t.Errorf("expected 3 laps, got %d", o.Laps())
	}
	if rng.calls != 2 {
		t.Errorf("expected one resample for the whole tick, got %d", rng.calls-1)
	}
	if math.Abs(o.Angle()-math.Pi) > 1e-6 {
		t.Errorf("angle = %f, want π", o.Angle())
	}
}

func TestOrbitHugeDeltaReturns(t *testing.T) {
	deltas := []float64{1e12, 1e18, math.MaxFloat64, math.Inf(1), math.NaN()}

	for _, d := range deltas {
		o := NewOrbit(defaultParams(), rand.New(rand.NewPCG(3, 5)))

		done := make(chan struct{})
		go func() {
			o.Tick(d)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("Tick(%g) did not return", d)
		}

		if a := o.Angle(); math.IsNaN(a) || a < 0 || a >= 2*math.Pi {
			t.Errorf("after delta %g angle %f is outside [0, 2π)", d, a)
		}
		if o.Laps() < 0 {
			t.Errorf("after delta %g laps overflowed: %d", d, o.Laps())
		}
		ft := o.Last()
		if ft.Scale < 0.5 || ft.Scale > 1.0 {
			t.Errorf("after delta %g scale %f outside [0.5, 1]", d, ft.Scale)
		}
	}
}
