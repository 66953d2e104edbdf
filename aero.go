package perf

import "math"

// AeroState holds the level-flight aerodynamic solution at one operating
// point. ThrustRequired equals Drag by the steady level flight equilibrium.
type AeroState struct {
	CL         float64 `json:"cl"`
	CD         float64 `json:"cd"`
	Lift       float64 `json:"lift_n"`
	Drag       float64 `json:"drag_n"`
	LiftToDrag float64 `json:"lift_to_drag"`
}

// ThrustRequired returns the thrust needed to hold this point, i.e. the drag.
func (a AeroState) ThrustRequired() float64 {
	return a.Drag
}

// LevelFlight solves the steady level flight trim at the given weight (N) and
// dynamic pressure (Pa): CL from the lift-equals-weight condition, CD from the
// parabolic polar CD0 + K·CL². Lift recovers the weight by construction. A
// non-positive dynamic pressure is rejected: this is a cruise and climb model,
// undefined at rest.
func LevelFlight(weight, q, wingArea, cd0, k float64) (AeroState, error) {
	if q <= 0 {
		return AeroState{}, newInvalidInput("dynamic_pressure", q, "model undefined at zero airspeed")
	}
	cl := weight / (q * wingArea)
	cd := cd0 + k*cl*cl
	lift := q * wingArea * cl
	drag := q * wingArea * cd
	return AeroState{CL: cl, CD: cd, Lift: lift, Drag: drag, LiftToDrag: cl / cd}, nil
}

// MaxLiftToDrag returns the best achievable L/D of a parabolic polar,
// 1/(2·sqrt(CD0·K)), reached at the minimum-drag condition CL = sqrt(CD0/K).
func MaxLiftToDrag(cd0, k float64) float64 {
	return 1 / (2 * math.Sqrt(cd0*k))
}
