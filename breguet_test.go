package perf

import (
	"testing"

	"github.com/gonum/floats"
)

func TestBreguetRange(t *testing.T) {
	rng, endurance, err := BreguetRange(249, 17, 0.6, 1.5, 1.0)
	if err != nil {
		t.Fatalf("breguet failed: %s", err)
	}
	if rng <= 0 || endurance <= 0 {
		t.Fatalf("non-positive range or endurance: %f, %f", rng, endurance)
	}
	// Range is exactly speed times endurance for the same L/D and weights.
	if !floats.EqualWithinRel(rng, 249*endurance, 1e-12) {
		t.Fatalf("range must equal V times endurance: %f vs %f", rng, 249*endurance)
	}
	// Only the weight ratio matters, not the absolute weights.
	rng2, _, err := BreguetRange(249, 17, 0.6, 3.0e6, 2.0e6)
	if err != nil {
		t.Fatalf("breguet failed: %s", err)
	}
	if !floats.EqualWithinRel(rng, rng2, 1e-12) {
		t.Fatalf("range must depend on the weight ratio only: %f vs %f", rng, rng2)
	}
}

func TestBreguetInvalidWeights(t *testing.T) {
	// Wi == Wf: the logarithm vanishes and the input is out of domain; this
	// must surface as InvalidInput, never a silent zero or NaN.
	if _, _, err := BreguetRange(249, 17, 0.6, 2.0e6, 2.0e6); !IsInvalidInput(err) {
		t.Fatalf("expected InvalidInput for Wi==Wf, got %v", err)
	}
	if _, _, err := BreguetRange(249, 17, 0.6, 1.0e6, 2.0e6); !IsInvalidInput(err) {
		t.Fatalf("expected InvalidInput for Wi<Wf, got %v", err)
	}
	if _, _, err := BreguetRange(249, 17, 0.6, 2.0e6, -1); !IsInvalidInput(err) {
		t.Fatalf("expected InvalidInput for Wf<=0, got %v", err)
	}
	if _, _, err := BreguetRange(249, 17, 0, 2.0e6, 1.5e6); !IsInvalidInput(err) {
		t.Fatalf("expected InvalidInput for zero TSFC, got %v", err)
	}
}

func TestBreguetCruiseScenario(t *testing.T) {
	// B777-300 class cruise: the design range should be within reach of the
	// instantaneous-L/D Breguet estimate for a 1.5 weight ratio.
	atm := ISA(Ft2M(35000))
	v := 0.84 * atm.SpeedOfSound
	rng, endurance, err := BreguetRange(v, 17, 0.6, 1.5, 1.0)
	if err != nil {
		t.Fatalf("breguet failed: %s", err)
	}
	if rng/1000 < 8000 || rng/1000 > 13000 {
		t.Fatalf("cruise range implausible: %f km", rng/1000)
	}
	if endurance/3600 < 8 || endurance/3600 > 16 {
		t.Fatalf("cruise endurance implausible: %f hr", endurance/3600)
	}
}
