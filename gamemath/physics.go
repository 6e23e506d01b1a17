package gamemath

import "math"

// ApplyDrag scales a velocity component by drag per reference frame.
// drag is the fraction kept each frame (1 = no drag).
func ApplyDrag(speed, drag, delta float64) float64 {
	if drag >= 1 || delta <= 0 {
		return speed
	}
	return speed * math.Pow(drag, delta)
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// RadialVelocity returns the velocity of a particle launched at angle with speed.
func RadialVelocity(angle, speed float64) (velX, velY float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// StepBallistic integrates one step of gravity and drag and returns the new
// position and velocity.
func StepBallistic(x, y, velX, velY, gravity, drag, delta float64) (nx, ny, nvx, nvy float64) {
	nvy = velY + gravity*delta
	nvx = ApplyDrag(velX, drag, delta)
	nvy = ApplyDrag(nvy, drag, delta)
	return x + nvx*delta, y + nvy*delta, nvx, nvy
}
