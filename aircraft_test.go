package perf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAircraftFromString(t *testing.T) {
	for _, name := range []string{"B777-300", "b777-300", "777-300"} {
		ac, err := AircraftFromString(name)
		if err != nil {
			t.Fatalf("lookup of %s failed: %s", name, err)
		}
		if ac.Name != "B777-300" {
			t.Fatalf("lookup of %s returned %s", name, ac.Name)
		}
	}
	if _, err := AircraftFromString("Concorde"); err == nil {
		t.Fatal("expected an error for an undefined aircraft")
	}
}

func TestBuiltinAircraftValid(t *testing.T) {
	for _, ac := range BuiltinAircraft() {
		if err := ac.Validate(); err != nil {
			t.Fatalf("built-in %s invalid: %s", ac.Name, err)
		}
	}
}

func TestAircraftValidate(t *testing.T) {
	ac := B777300
	ac.WingArea = 0
	if err := ac.Validate(); err == nil {
		t.Fatal("expected an error for zero wing area")
	}
	ac = B777300
	ac.MaxTakeoffMass = ac.EmptyMass
	if err := ac.Validate(); err == nil {
		t.Fatal("expected an error for MTOW not exceeding OEW")
	}
}

func TestLoadAircraftFile(t *testing.T) {
	doc := `
- name: Testliner-100
  empty_mass_kg: 40000
  mtow_kg: 75000
  max_fuel_kg: 20000
  wing_area_m2: 120
  wingspan_m: 34
  length_m: 38
  cd0: 0.021
  induced_k: 0.047
  clmax_takeoff: 1.9
  clmax_landing: 2.5
  static_thrust_n: 230000
  tsfc_per_hr: 0.58
  max_mach: 0.80
  service_ceiling_ft: 39000
  design_range_km: 5500
`
	path := filepath.Join(t.TempDir(), "aircraft.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("could not write fixture: %s", err)
	}
	acs, err := LoadAircraftFile(path)
	if err != nil {
		t.Fatalf("load failed: %s", err)
	}
	if len(acs) != 1 || acs[0].Name != "Testliner-100" {
		t.Fatalf("unexpected load result: %+v", acs)
	}
	if acs[0].WingArea != 120 || acs[0].CD0 != 0.021 {
		t.Fatalf("fields not unmarshaled: %+v", acs[0])
	}
}

func TestLoadAircraftFileRejectsBadEntry(t *testing.T) {
	doc := `
- name: Broken-1
  empty_mass_kg: 40000
  mtow_kg: 30000
  wing_area_m2: 120
  cd0: 0.021
  induced_k: 0.047
  clmax_takeoff: 1.9
  clmax_landing: 2.5
  static_thrust_n: 230000
  tsfc_per_hr: 0.58
  max_mach: 0.80
`
	path := filepath.Join(t.TempDir(), "aircraft.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("could not write fixture: %s", err)
	}
	if _, err := LoadAircraftFile(path); err == nil {
		t.Fatal("expected the inverted weight entry to fail validation")
	}
}
