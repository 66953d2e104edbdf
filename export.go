package perf

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// SweepConfig configures an altitude sweep export.
type SweepConfig struct {
	FromFt float64 // lowest altitude of the sweep, ft
	ToFt   float64 // highest altitude of the sweep, ft
	Steps  int     // number of grid intervals; defaults to 50
}

var sweepHeader = []string{"altitude_ft", "density_kg_m3", "tas_m_s", "lift_to_drag", "thrust_available_n", "thrust_required_n", "roc_m_s"}

// WriteAltitudeSweep evaluates the flight condition across an altitude grid
// and streams one CSV row per grid point, header first. The condition's mass,
// Mach, throttle and fuel ratio are held fixed; only the altitude varies.
// This is the data behind altitude trend plots, so only the per-point cruise
// metrics are emitted, not the ceiling or field-length figures.
func (e *Evaluator) WriteAltitudeSweep(w io.Writer, fc FlightCondition, cfg SweepConfig) error {
	ac := e.Aircraft
	if err := fc.Validate(ac); err != nil {
		return err
	}
	if cfg.Steps <= 0 {
		cfg.Steps = 50
	}
	if cfg.ToFt <= cfg.FromFt {
		return newInvalidInput("sweep_to_ft", cfg.ToFt, "sweep band must have positive height")
	}
	if cfg.FromFt < 0 || cfg.ToFt > maxValidAltitudeFt {
		return newInvalidInput("sweep_band_ft", cfg.ToFt, fmt.Sprintf("must be within [0, %d]", maxValidAltitudeFt))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(sweepHeader); err != nil {
		return err
	}
	Δft := (cfg.ToFt - cfg.FromFt) / float64(cfg.Steps)
	weight := fc.MassKg * EarthGravity
	for i := 0; i <= cfg.Steps; i++ {
		altFt := cfg.FromFt + float64(i)*Δft
		atm := ISA(Ft2M(altFt))
		v := fc.Mach * atm.SpeedOfSound
		q := 0.5 * atm.Density * v * v
		aero, err := LevelFlight(weight, q, ac.WingArea, ac.CD0, ac.K)
		if err != nil {
			return err
		}
		ta := AvailableThrust(ac.StaticThrust, atm.Density, fc.Mach, fc.Throttle)
		roc := RateOfClimb(ta, aero.Drag, v, weight)
		row := []string{
			strconv.FormatFloat(altFt, 'f', 0, 64),
			strconv.FormatFloat(atm.Density, 'f', 5, 64),
			strconv.FormatFloat(v, 'f', 2, 64),
			strconv.FormatFloat(aero.LiftToDrag, 'f', 3, 64),
			strconv.FormatFloat(ta, 'f', 1, 64),
			strconv.FormatFloat(aero.Drag, 'f', 1, 64),
			strconv.FormatFloat(roc, 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
