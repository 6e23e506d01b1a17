package animations

// Animation steps through sheet indices First..Last, holding each for
// TicksPerFrame reference ticks. Fractional deltas carry over between updates.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	TicksPerFrame    float64 // reference ticks before next frame
	frameCounter     float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the animation by delta reference ticks.
func (a *Animation) Update(delta float64) {
	if a.TicksPerFrame <= 0 || delta <= 0 {
		return
	}
	step := a.Step
	if step <= 0 {
		step = 1
	}

	a.frameCounter -= delta
	for a.frameCounter <= 0 {
		a.frameCounter += a.TicksPerFrame
		a.frame += step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = a.Last
				a.frameCounter = a.TicksPerFrame
				return
			}
			// loop back to the beginning
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Index returns the current frame relative to First.
func (a *Animation) Index() int {
	return a.frame - a.First
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.TicksPerFrame
	a.Looped = false
}

func NewAnimation(first, last, step int, ticksPerFrame float64) *Animation {
	return &Animation{
		First:         first,
		Last:          last,
		Step:          step,
		TicksPerFrame: ticksPerFrame,
		frameCounter:  ticksPerFrame,
		frame:         first,
		Looped:        false,
	}
}

// TicksPerFrameFor converts a playback rate in frames per second to reference ticks
// per frame. A non-positive fps freezes the animation.
func TicksPerFrameFor(fps, referenceRate float64) float64 {
	if fps <= 0 {
		return 0
	}
	return referenceRate / fps
}
