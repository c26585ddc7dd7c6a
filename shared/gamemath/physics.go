package gamemath

import "math"

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp interpolates from a to b by t without clamping t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MoveTowards2 moves a point toward a target by at most maxDelta along the
// straight line between them.
func MoveTowards2(x, y, tx, ty, maxDelta float64) (float64, float64) {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist <= maxDelta || dist == 0 {
		return tx, ty
	}
	return x + dx/dist*maxDelta, y + dy/dist*maxDelta
}

// PingPong bounces t back and forth between 0 and length.
func PingPong(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	t = math.Mod(t, length*2)
	if t < 0 {
		t += length * 2
	}
	return length - math.Abs(t-length)
}

// ExpSmoothing returns the frame-rate independent blend factor for an
// exponential approach with the given sharpness.
func ExpSmoothing(sharpness, dt float64) float64 {
	return 1 - math.Exp(-sharpness*dt)
}
