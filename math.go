package perf

import "math"

const (
	// EarthGravity is the gravitational acceleration used throughout the
	// model, in m/s².
	EarthGravity = 9.81
	// SeaLevelDensity is the ISA air density at zero altitude, in kg/m³.
	SeaLevelDensity = 1.225
	r2d             = 180 / math.Pi
	d2r             = 1 / r2d
	ft2m            = 0.3048
	m2ft            = 1 / ft2m
	// ms2fpm converts a vertical speed in m/s to ft/min.
	ms2fpm = 196.85
)

// Ft2M converts feet to meters.
func Ft2M(ft float64) float64 {
	return ft * ft2m
}

// M2Ft converts meters to feet.
func M2Ft(m float64) float64 {
	return m * m2ft
}

// Deg2rad converts degrees to radians.
func Deg2rad(a float64) float64 {
	return a * d2r
}

// Rad2deg converts radians to degrees.
func Rad2deg(a float64) float64 {
	return a * r2d
}

// finite returns false if any of the provided values is NaN or infinite.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
