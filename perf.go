package perf

import (
	"errors"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/floats"
)

// Default grid resolutions of the discrete altitude searches. Both results
// are resolution-dependent: changing the step count changes the reported
// numbers.
const (
	DefaultCeilingSteps = 200
	DefaultClimbSteps   = 100
)

// PerformanceResult is the full output bundle of one evaluation. It has no
// lifecycle of its own: it is the return value of Evaluate and nothing else.
type PerformanceResult struct {
	Atmosphere          AtmosphereState `json:"atmosphere"`
	TrueAirspeed        float64         `json:"true_airspeed_m_s"`
	DynamicPressure     float64         `json:"dynamic_pressure_pa"`
	CL                  float64         `json:"cl"`
	CD                  float64         `json:"cd"`
	Lift                float64         `json:"lift_n"`
	Drag                float64         `json:"drag_n"`
	LiftToDrag          float64         `json:"lift_to_drag"`
	LiftToDragMax       float64         `json:"lift_to_drag_max"`
	ThrustRequired      float64         `json:"thrust_required_n"`
	ThrustAvailable     float64         `json:"thrust_available_n"`
	PowerRequired       float64         `json:"power_required_w"`
	PowerAvailable      float64         `json:"power_available_w"`
	RateOfClimb         float64         `json:"rate_of_climb_m_s"`
	RateOfClimbFpm      float64         `json:"rate_of_climb_ft_min"`
	ClimbAngleDeg       float64         `json:"climb_angle_deg"`
	ClimbAngleLinearDeg float64         `json:"climb_angle_linear_deg"`
	ServiceCeilingM     float64         `json:"service_ceiling_m"`
	ServiceCeilingFt    float64         `json:"service_ceiling_ft"`
	CeilingFound        bool            `json:"ceiling_found"`
	TimeToClimbMin      float64         `json:"time_to_climb_min"`
	VStallTakeoff       float64         `json:"v_stall_takeoff_m_s"`
	VStallLanding       float64         `json:"v_stall_landing_m_s"`
	V2                  float64         `json:"v2_m_s"`
	VApproach           float64         `json:"v_approach_m_s"`
	TakeoffDistance     float64         `json:"takeoff_distance_m"`
	LandingDistance     float64         `json:"landing_distance_m"`
	RangeKm             float64         `json:"range_km"`
	EnduranceHr         float64         `json:"endurance_hr"`
	RangeMaxLDKm        float64         `json:"range_maxld_km"`
	EnduranceMaxLDHr    float64         `json:"endurance_maxld_hr"`
}

// Evaluator runs the steady-state performance pipeline for one aircraft.
// Every call to Evaluate recomputes from scratch and shares no state with any
// other call, so independent evaluations may run concurrently.
type Evaluator struct {
	Aircraft     Aircraft
	CeilingSteps int // service-ceiling scan resolution over [0, MaxModelAltitude]
	ClimbSteps   int // time-to-climb quadrature resolution
	logger       kitlog.Logger
}

// NewEvaluator returns an evaluator for the given aircraft with the default
// grid resolutions and a logfmt logger on stdout.
func NewEvaluator(ac Aircraft) *Evaluator {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "aircraft", ac.Name)
	return &Evaluator{ac, DefaultCeilingSteps, DefaultClimbSteps, klog}
}

// SetLogger changes the logger of this evaluator.
func (e *Evaluator) SetLogger(l kitlog.Logger) {
	e.logger = l
}

// Evaluate runs the full pipeline on one flight condition: atmosphere, trim,
// propulsion, climb, ground and mission metrics. The condition is validated
// first; any out-of-domain parameter aborts with an InvalidInputError and no
// partial result. A ceiling that cannot be found within the modeled band is
// not an error: it is reported through CeilingFound.
func (e *Evaluator) Evaluate(fc FlightCondition) (PerformanceResult, error) {
	ac := e.Aircraft
	if err := fc.Validate(ac); err != nil {
		e.logger.Log("level", "error", "subsys", "perf", "condition", fc.String(), "err", err)
		return PerformanceResult{}, err
	}

	atm := ISA(fc.AltitudeM())
	v := fc.Mach * atm.SpeedOfSound
	q := 0.5 * atm.Density * v * v
	w := fc.MassKg * EarthGravity

	aero, err := LevelFlight(w, q, ac.WingArea, ac.CD0, ac.K)
	if err != nil {
		return PerformanceResult{}, err
	}
	if !floats.EqualWithinAbsOrRel(aero.Lift, w, 1e-6, 1e-9) {
		e.logger.Log("level", "warning", "subsys", "aero", "message", "trim residual", "lift(N)", aero.Lift, "weight(N)", w)
	}

	ta := AvailableThrust(ac.StaticThrust, atm.Density, fc.Mach, fc.Throttle)
	tr := aero.ThrustRequired()
	roc := RateOfClimb(ta, tr, v, w)

	res := PerformanceResult{
		Atmosphere:          atm,
		TrueAirspeed:        v,
		DynamicPressure:     q,
		CL:                  aero.CL,
		CD:                  aero.CD,
		Lift:                aero.Lift,
		Drag:                aero.Drag,
		LiftToDrag:          aero.LiftToDrag,
		LiftToDragMax:       MaxLiftToDrag(ac.CD0, ac.K),
		ThrustRequired:      tr,
		ThrustAvailable:     ta,
		PowerRequired:       tr * v,
		PowerAvailable:      ta * v,
		RateOfClimb:         roc,
		RateOfClimbFpm:      roc * ms2fpm,
		ClimbAngleDeg:       ClimbAngle(ta, tr, w),
		ClimbAngleLinearDeg: ClimbAngleLinear(ta, tr, w),
	}

	switch ceiling, err := ServiceCeiling(ac, fc, e.CeilingSteps); {
	case err == nil:
		res.ServiceCeilingM = ceiling
		res.ServiceCeilingFt = M2Ft(ceiling)
		res.CeilingFound = true
	case errors.Is(err, ErrCeilingNotFound):
		e.logger.Log("level", "warning", "subsys", "climb", "message", "ceiling not found within model range", "condition", fc.String())
	default:
		return PerformanceResult{}, err
	}

	ttc, err := TimeToClimb(ac, fc, 0, fc.AltitudeM(), e.ClimbSteps)
	if err != nil {
		return PerformanceResult{}, err
	}
	res.TimeToClimbMin = ttc / 60

	res.VStallTakeoff = StallSpeed(w, ac.WingArea, ac.CLMaxTakeoff)
	res.VStallLanding = StallSpeed(landingWeightFraction*w, ac.WingArea, ac.CLMaxLanding)
	sTO, v2, err := TakeoffDistance(ac, fc.MassKg)
	if err != nil {
		return PerformanceResult{}, err
	}
	res.TakeoffDistance = sTO
	res.V2 = v2
	res.LandingDistance, res.VApproach = LandingDistance(ac, fc.MassKg)

	rng, endurance, err := BreguetRange(v, aero.LiftToDrag, ac.TSFC, fc.InitialWeightN(), fc.FinalWeightN())
	if err != nil {
		return PerformanceResult{}, err
	}
	res.RangeKm = rng / 1000
	res.EnduranceHr = endurance / 3600
	rngMax, endMax, err := BreguetRange(v, res.LiftToDragMax, ac.TSFC, fc.InitialWeightN(), fc.FinalWeightN())
	if err != nil {
		return PerformanceResult{}, err
	}
	res.RangeMaxLDKm = rngMax / 1000
	res.EnduranceMaxLDHr = endMax / 3600

	if !finite(res.CL, res.CD, res.LiftToDrag, res.RateOfClimb, res.TakeoffDistance, res.LandingDistance, res.RangeKm, res.EnduranceHr) {
		return PerformanceResult{}, newInvalidInput("result", 0, "degenerate numeric result")
	}

	e.logger.Log("level", "info", "subsys", "perf", "condition", fc.String(),
		"V(m/s)", res.TrueAirspeed, "L/D", res.LiftToDrag, "ROC(m/s)", res.RateOfClimb,
		"range(km)", res.RangeKm)
	return res, nil
}
