package perf

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"
)

func TestWriteAltitudeSweep(t *testing.T) {
	e := quietEvaluator(B777300)
	var buf bytes.Buffer
	cfg := SweepConfig{FromFt: 30000, ToFt: 43000, Steps: 26}
	if err := e.WriteAltitudeSweep(&buf, cruise777(), cfg); err != nil {
		t.Fatalf("sweep failed: %s", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("sweep output is not valid CSV: %s", err)
	}
	if len(records) != cfg.Steps+2 {
		t.Fatalf("expected header plus %d rows, got %d", cfg.Steps+1, len(records))
	}
	if records[0][0] != "altitude_ft" || len(records[0]) != len(sweepHeader) {
		t.Fatalf("unexpected header: %v", records[0])
	}
	// Density must decrease down the rows.
	prev := 2.0
	for _, rec := range records[1:] {
		ρ, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			t.Fatalf("bad density cell %q: %s", rec[1], err)
		}
		if ρ >= prev {
			t.Fatalf("density not decreasing along the sweep: %f >= %f", ρ, prev)
		}
		prev = ρ
	}
}

func TestWriteAltitudeSweepValidation(t *testing.T) {
	e := quietEvaluator(B777300)
	var buf bytes.Buffer
	if err := e.WriteAltitudeSweep(&buf, cruise777(), SweepConfig{FromFt: 40000, ToFt: 30000}); !IsInvalidInput(err) {
		t.Fatalf("expected InvalidInput for an inverted band, got %v", err)
	}
	if err := e.WriteAltitudeSweep(&buf, cruise777(), SweepConfig{FromFt: 0, ToFt: 50000}); !IsInvalidInput(err) {
		t.Fatalf("expected InvalidInput for a band above the model, got %v", err)
	}
	bad := cruise777()
	bad.Mach = 0
	if err := e.WriteAltitudeSweep(&buf, bad, SweepConfig{FromFt: 0, ToFt: 40000}); !IsInvalidInput(err) {
		t.Fatalf("expected InvalidInput for a bad condition, got %v", err)
	}
}
