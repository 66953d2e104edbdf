package perf

import "fmt"

// maxValidAltitudeFt bounds the acceptance band of the flight condition; the
// two-layer atmosphere degrades beyond roughly 45000 ft.
const maxValidAltitudeFt = 45000

// FlightCondition defines one steady-state operating point. A condition is
// constructed fresh for every evaluation; FuelRatio is the initial over final
// cruise weight (Wi/Wf), so the explicit weight pair is available through
// InitialWeightN and FinalWeightN.
type FlightCondition struct {
	MassKg     float64 `json:"mass_kg" yaml:"mass_kg"`
	AltitudeFt float64 `json:"altitude_ft" yaml:"altitude_ft"`
	Mach       float64 `json:"mach" yaml:"mach"`
	FuelRatio  float64 `json:"fuel_ratio" yaml:"fuel_ratio"`
	Throttle   float64 `json:"throttle" yaml:"throttle"`
}

// AltitudeM returns the condition altitude in meters.
func (fc FlightCondition) AltitudeM() float64 {
	return Ft2M(fc.AltitudeFt)
}

// InitialWeightN returns the cruise-start weight in Newtons.
func (fc FlightCondition) InitialWeightN() float64 {
	return fc.MassKg * EarthGravity
}

// FinalWeightN returns the cruise-end weight in Newtons, the initial weight
// divided by the fuel ratio.
func (fc FlightCondition) FinalWeightN() float64 {
	return fc.MassKg / fc.FuelRatio * EarthGravity
}

// String implements the Stringer interface.
func (fc FlightCondition) String() string {
	return fmt.Sprintf("M%.3f @ %.0f ft, %.0f kg, Wi/Wf=%.2f, throttle=%.2f", fc.Mach, fc.AltitudeFt, fc.MassKg, fc.FuelRatio, fc.Throttle)
}

// Validate checks the condition against the aircraft's acceptance ranges. Any
// violation is an InvalidInputError and the evaluation must be aborted.
func (fc FlightCondition) Validate(ac Aircraft) error {
	if fc.MassKg < ac.EmptyMass || fc.MassKg > ac.MaxTakeoffMass {
		return newInvalidInput("mass_kg", fc.MassKg, fmt.Sprintf("must be within [%.0f, %.0f] for %s", ac.EmptyMass, ac.MaxTakeoffMass, ac.Name))
	}
	if fc.AltitudeFt < 0 || fc.AltitudeFt > maxValidAltitudeFt {
		return newInvalidInput("altitude_ft", fc.AltitudeFt, fmt.Sprintf("must be within [0, %d]", maxValidAltitudeFt))
	}
	if fc.Mach <= 0 || fc.Mach > ac.MaxMach {
		return newInvalidInput("mach", fc.Mach, fmt.Sprintf("must be within (0, %.2f] for %s", ac.MaxMach, ac.Name))
	}
	if fc.FuelRatio <= 1 {
		return newInvalidInput("fuel_ratio", fc.FuelRatio, "initial weight must exceed final weight")
	}
	if fc.Throttle <= 0 || fc.Throttle > 1 {
		return newInvalidInput("throttle", fc.Throttle, "must be within (0, 1]")
	}
	return nil
}
