package perf

import "math"

/* Takeoff and landing are single-phase constant-acceleration kinematic
approximations: no rotation, transition or flare segments are modeled. */

const (
	rollingFriction       = 0.02 // dry runway rolling resistance coefficient
	takeoffSafetyFactor   = 1.2  // V2 over takeoff stall speed
	approachSpeedFactor   = 1.3  // Vapp over landing stall speed
	landingWeightFraction = 0.85 // assumed fuel burned before landing
	brakingDecel          = 0.3  // braking deceleration in g
)

// StallSpeed returns the 1-g stall speed in m/s at sea-level density for the
// given weight (N), wing area (m²) and maximum lift coefficient.
func StallSpeed(weight, wingArea, clMax float64) float64 {
	return math.Sqrt(2 * weight / (SeaLevelDensity * wingArea * clMax))
}

// TakeoffDistance returns the takeoff ground roll in meters and the takeoff
// safety speed V2 in m/s. Drag and rolling friction are evaluated once at V2
// and held constant, and the roll is treated as uniformly accelerated from
// the net force T_static − D − μ·W.
func TakeoffDistance(ac Aircraft, massKg float64) (distance, v2 float64, err error) {
	w := massKg * EarthGravity
	v2 = takeoffSafetyFactor * StallSpeed(w, ac.WingArea, ac.CLMaxTakeoff)
	q := 0.5 * SeaLevelDensity * v2 * v2
	aero, err := LevelFlight(w, q, ac.WingArea, ac.CD0, ac.K)
	if err != nil {
		return 0, 0, err
	}
	fNet := ac.StaticThrust - aero.Drag - rollingFriction*w
	if fNet <= 0 {
		return 0, 0, newInvalidInput("mass_kg", massKg, "static thrust cannot accelerate this mass to V2")
	}
	accel := fNet / massKg
	return v2 * v2 / (2 * accel), v2, nil
}

// LandingDistance returns the landing ground roll in meters and the approach
// speed Vapp in m/s. The landing weight is taken as 85% of the provided mass
// (fuel burned) and the deceleration as a fixed 0.3 g of braking; reverse
// thrust is not modeled.
func LandingDistance(ac Aircraft, massKg float64) (distance, vApp float64) {
	w := landingWeightFraction * massKg * EarthGravity
	vApp = approachSpeedFactor * StallSpeed(w, ac.WingArea, ac.CLMaxLanding)
	aBrake := brakingDecel * EarthGravity
	return vApp * vApp / (2 * aBrake), vApp
}
