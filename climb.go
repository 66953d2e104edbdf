package perf

import "math"

// RateOfClimb returns the steady rate of climb in m/s, excess thrust power
// over weight: (Ta − Tr)·V / W. Negative when thrust required exceeds thrust
// available.
func RateOfClimb(thrustAvail, thrustReq, speed, weight float64) float64 {
	return (thrustAvail - thrustReq) * speed / weight
}

// ClimbAngle returns the steady climb angle in degrees from the exact
// relation γ = asin((Ta − Tr)/W).
func ClimbAngle(thrustAvail, thrustReq, weight float64) float64 {
	return Rad2deg(math.Asin((thrustAvail - thrustReq) / weight))
}

// ClimbAngleLinear returns the small-angle approximation of the climb angle
// in degrees, taking (Ta − Tr)/W directly as the angle in radians. It drifts
// from ClimbAngle as excess thrust grows; both are reported side by side so
// consumers see the spread instead of a silently chosen variant.
func ClimbAngleLinear(thrustAvail, thrustReq, weight float64) float64 {
	return Rad2deg((thrustAvail - thrustReq) / weight)
}

// rocAtAltitude recomputes atmosphere, trim and thrust at the given altitude
// (m) while holding the condition's mass, Mach and throttle, and returns the
// rate of climb there.
func rocAtAltitude(ac Aircraft, fc FlightCondition, altitude float64) (float64, error) {
	atm := ISA(altitude)
	v := fc.Mach * atm.SpeedOfSound
	q := 0.5 * atm.Density * v * v
	w := fc.MassKg * EarthGravity
	aero, err := LevelFlight(w, q, ac.WingArea, ac.CD0, ac.K)
	if err != nil {
		return 0, err
	}
	ta := AvailableThrust(ac.StaticThrust, atm.Density, fc.Mach, fc.Throttle)
	return RateOfClimb(ta, aero.Drag, v, w), nil
}

// ServiceCeiling scans altitudes from sea level up to MaxModelAltitude in
// steps discrete increments, holding Mach and throttle fixed, and returns the
// first altitude in meters where the rate of climb drops to zero or below.
// The returned altitude is quantized to the scan resolution, so the result
// depends on the step count. ErrCeilingNotFound is returned when the scan
// exhausts the modeled band.
func ServiceCeiling(ac Aircraft, fc FlightCondition, steps int) (float64, error) {
	if steps <= 0 {
		steps = DefaultCeilingSteps
	}
	Δh := float64(MaxModelAltitude) / float64(steps)
	for i := 1; i <= steps; i++ {
		h := float64(i) * Δh
		roc, err := rocAtAltitude(ac, fc, h)
		if err != nil {
			return 0, err
		}
		if roc <= 0 {
			return h, nil
		}
	}
	return 0, ErrCeilingNotFound
}

// TimeToClimb returns the time in seconds to climb between the two altitudes
// (m) at the condition's Mach and throttle. The band is partitioned into
// steps equal sub-intervals and Δt = Δh/ROC is accumulated using the rate of
// climb at each midpoint. Sub-intervals where ROC ≤ 0 contribute zero. This
// is coarse midpoint quadrature, not a closed form: the step count is part of
// the numeric contract and changing it changes the result.
func TimeToClimb(ac Aircraft, fc FlightCondition, fromAlt, toAlt float64, steps int) (float64, error) {
	if steps <= 0 {
		steps = DefaultClimbSteps
	}
	if toAlt <= fromAlt {
		return 0, nil
	}
	Δh := (toAlt - fromAlt) / float64(steps)
	var total float64
	for i := 0; i < steps; i++ {
		mid := fromAlt + (float64(i)+0.5)*Δh
		roc, err := rocAtAltitude(ac, fc, mid)
		if err != nil {
			return 0, err
		}
		if roc <= 0 {
			continue
		}
		total += Δh / roc
	}
	if !finite(total) {
		return 0, newInvalidInput("time_to_climb", total, "degenerate quadrature result")
	}
	return total, nil
}
