package perf

import "math"

// AvailableThrust returns the thrust available at an operating point from the
// all-engines sea-level static thrust, using the empirical turbofan lapse
//
//	T = T_static · σ^0.8 · (1 − 0.25·M) · throttle
//
// where σ is the density ratio to sea level. This is a behavioral
// approximation for high-bypass transport engines, not a cycle model; the
// exponents 0.8 and 0.25 are part of the model definition. The Mach term only
// reaches zero at Mach 4, far outside the subsonic band, and is clamped there
// rather than returning negative thrust.
func AvailableThrust(staticThrust, density, mach, throttle float64) float64 {
	σ := density / SeaLevelDensity
	lapse := 1 - 0.25*mach
	if lapse < 0 {
		lapse = 0
	}
	return staticThrust * math.Pow(σ, 0.8) * lapse * throttle
}
