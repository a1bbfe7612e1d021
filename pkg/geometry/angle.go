package geometry

import "math"

// NormalizeAngle maps an angle in radians to the range [0, 2π).
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

// AngleInSweep reports whether theta lies on the arc starting at start and
// sweeping by delta radians. The sign of delta gives the sweep direction.
// A sweep of 2π or more covers the full circle. Both endpoints are
// inclusive within eps; the test handles sweeps that cross the 0/2π seam.
func AngleInSweep(theta, start, delta, eps float64) bool {
	if math.Abs(delta) >= 2*math.Pi-eps {
		return true
	}
	// Fold a negative sweep into a positive one from the far endpoint.
	if delta < 0 {
		start += delta
		delta = -delta
	}
	rel := NormalizeAngle(theta - NormalizeAngle(start))
	if rel <= delta+eps {
		return true
	}
	// Points within eps just before the start wrap to rel near 2π.
	return 2*math.Pi-rel <= eps
}
