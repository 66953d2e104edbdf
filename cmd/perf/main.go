package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	perf "github.com/Paramesht/aircraft-performance-simulator"
	"github.com/spf13/viper"
)

// This code effectively only reads the scenario file and runs the evaluator.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "performance scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	// Load scenario
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	// Read aircraft
	acName := viper.GetString("aircraft.name")
	ac, err := perf.AircraftFromString(acName)
	if err != nil {
		file := viper.GetString("aircraft.file")
		if file == "" {
			log.Fatalf("could not understand aircraft `%s`: %s", acName, err)
		}
		loaded, lerr := perf.LoadAircraftFile(file)
		if lerr != nil {
			log.Fatalf("could not load aircraft file `%s`: %s", file, lerr)
		}
		found := false
		for _, cand := range loaded {
			if strings.EqualFold(cand.Name, acName) {
				ac, found = cand, true
				break
			}
		}
		if !found {
			log.Fatalf("aircraft `%s` not in `%s`", acName, file)
		}
	}
	if verbose {
		log.Printf("[conf] aircraft: %s (S=%.1f m², T0=%.0f kN)\n", ac, ac.WingArea, ac.StaticThrust/1000)
	}

	// Read flight condition
	fc := perf.FlightCondition{
		MassKg:     viper.GetFloat64("condition.mass"),
		AltitudeFt: viper.GetFloat64("condition.altitude"),
		Mach:       viper.GetFloat64("condition.mach"),
		FuelRatio:  viper.GetFloat64("condition.fuelRatio"),
		Throttle:   viper.GetFloat64("condition.throttle"),
	}
	if fc.Throttle == 0 {
		fc.Throttle = 1
	}

	ev := perf.NewEvaluator(ac)
	if steps := viper.GetInt("grid.ceilingSteps"); steps > 0 {
		ev.CeilingSteps = steps
	}
	if steps := viper.GetInt("grid.climbSteps"); steps > 0 {
		ev.ClimbSteps = steps
	}
	if verbose {
		log.Printf("[conf] grid: ceiling=%d climb=%d\n", ev.CeilingSteps, ev.ClimbSteps)
	}

	res, err := ev.Evaluate(fc)
	if err != nil {
		log.Fatalf("evaluation failed: %s", err)
	}

	fmt.Printf("=== %s | %s ===\n", ac, fc)
	fmt.Printf("TAS: %.1f m/s\tq: %.0f Pa\tρ: %.4f kg/m³\n", res.TrueAirspeed, res.DynamicPressure, res.Atmosphere.Density)
	fmt.Printf("Lift: %.1f kN\tDrag: %.1f kN\tL/D: %.2f (max %.2f)\n", res.Lift/1000, res.Drag/1000, res.LiftToDrag, res.LiftToDragMax)
	fmt.Printf("Thrust req/avail: %.1f / %.1f kN\tPower req/avail: %.1f / %.1f MW\n", res.ThrustRequired/1000, res.ThrustAvailable/1000, res.PowerRequired/1e6, res.PowerAvailable/1e6)
	fmt.Printf("ROC: %.0f ft/min\tγ: %.2f° (linear %.2f°)\tTime to climb: %.1f min\n", res.RateOfClimbFpm, res.ClimbAngleDeg, res.ClimbAngleLinearDeg, res.TimeToClimbMin)
	if res.CeilingFound {
		fmt.Printf("Service ceiling: %.0f ft\n", res.ServiceCeilingFt)
	} else {
		fmt.Println("Service ceiling: not found within model range")
	}
	fmt.Printf("Takeoff: %.0f m (V2 %.1f m/s)\tLanding: %.0f m (Vapp %.1f m/s)\n", res.TakeoffDistance, res.V2, res.LandingDistance, res.VApproach)
	fmt.Printf("Range: %.0f km\tEndurance: %.1f hr\t(at LDmax: %.0f km / %.1f hr)\n", res.RangeKm, res.EnduranceHr, res.RangeMaxLDKm, res.EnduranceMaxLDHr)

	// Optional altitude sweep export
	if out := viper.GetString("sweep.output"); out != "" {
		cfg := perf.SweepConfig{
			FromFt: viper.GetFloat64("sweep.from"),
			ToFt:   viper.GetFloat64("sweep.to"),
			Steps:  viper.GetInt("sweep.steps"),
		}
		f, err := os.Create(out)
		if err != nil {
			log.Fatalf("could not create `%s`: %s", out, err)
		}
		defer f.Close()
		if err := ev.WriteAltitudeSweep(f, fc, cfg); err != nil {
			log.Fatalf("sweep failed: %s", err)
		}
		log.Printf("sweep written to %s", out)
	}
}
