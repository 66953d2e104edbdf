package perf

import "math"

// BreguetRange returns the still-air range in meters and the endurance in
// seconds from the Breguet relations for constant-speed cruise:
//
//	Range     = (V/c)·(L/D)·ln(Wi/Wf)
//	Endurance = (1/c)·(L/D)·ln(Wi/Wf)
//
// tsfcHr is the thrust-specific fuel consumption per hour, converted to per
// second internally. The weights only matter through their ratio; Wi must
// strictly exceed Wf or the logarithm is undefined, in which case an
// InvalidInputError is returned rather than a silent NaN. Callers choose the
// L/D: passing the instantaneous cruise value and the polar's LDmax yield the
// two named range variants of PerformanceResult.
func BreguetRange(speed, liftToDrag, tsfcHr, initialWeight, finalWeight float64) (rng, endurance float64, err error) {
	if tsfcHr <= 0 {
		return 0, 0, newInvalidInput("tsfc_per_hr", tsfcHr, "must be positive")
	}
	if finalWeight <= 0 {
		return 0, 0, newInvalidInput("final_weight_n", finalWeight, "must be positive")
	}
	if initialWeight <= finalWeight {
		return 0, 0, newInvalidInput("fuel_ratio", initialWeight/finalWeight, "initial weight must exceed final weight")
	}
	c := tsfcHr / 3600
	lnW := math.Log(initialWeight / finalWeight)
	return (speed / c) * liftToDrag * lnW, (1 / c) * liftToDrag * lnW, nil
}
