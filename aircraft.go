package perf

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Aircraft defines the immutable reference data of one aircraft type. An
// Aircraft is selected by the caller and passed by value into every
// computation; it is never mutated.
type Aircraft struct {
	Name             string  `yaml:"name" json:"name"`
	EmptyMass        float64 `yaml:"empty_mass_kg" json:"empty_mass_kg"`     // operating empty weight, kg
	MaxTakeoffMass   float64 `yaml:"mtow_kg" json:"mtow_kg"`                 // kg
	MaxFuelMass      float64 `yaml:"max_fuel_kg" json:"max_fuel_kg"`         // kg
	WingArea         float64 `yaml:"wing_area_m2" json:"wing_area_m2"`       // reference area, m²
	Wingspan         float64 `yaml:"wingspan_m" json:"wingspan_m"`           // m
	Length           float64 `yaml:"length_m" json:"length_m"`               // m
	CD0              float64 `yaml:"cd0" json:"cd0"`                         // zero-lift drag coefficient
	K                float64 `yaml:"induced_k" json:"induced_k"`             // induced drag factor of the parabolic polar
	CLMaxTakeoff     float64 `yaml:"clmax_takeoff" json:"clmax_takeoff"`     // takeoff flap setting
	CLMaxLanding     float64 `yaml:"clmax_landing" json:"clmax_landing"`     // landing flap setting
	StaticThrust     float64 `yaml:"static_thrust_n" json:"static_thrust_n"` // all engines, sea level, N
	TSFC             float64 `yaml:"tsfc_per_hr" json:"tsfc_per_hr"`         // thrust-specific fuel consumption, 1/hr
	MaxMach          float64 `yaml:"max_mach" json:"max_mach"`
	ServiceCeilingFt float64 `yaml:"service_ceiling_ft" json:"service_ceiling_ft"` // placard ceiling
	DesignRange      float64 `yaml:"design_range_km" json:"design_range_km"`       // km
}

// String implements the Stringer interface.
func (a Aircraft) String() string {
	return a.Name
}

// Validate checks that the reference data is usable by the model.
func (a Aircraft) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("aircraft without a name")
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"empty_mass_kg", a.EmptyMass},
		{"mtow_kg", a.MaxTakeoffMass},
		{"wing_area_m2", a.WingArea},
		{"cd0", a.CD0},
		{"induced_k", a.K},
		{"clmax_takeoff", a.CLMaxTakeoff},
		{"clmax_landing", a.CLMaxLanding},
		{"static_thrust_n", a.StaticThrust},
		{"tsfc_per_hr", a.TSFC},
		{"max_mach", a.MaxMach},
	} {
		if f.value <= 0 {
			return fmt.Errorf("aircraft %s: %s must be positive, got %g", a.Name, f.name, f.value)
		}
	}
	if a.MaxTakeoffMass <= a.EmptyMass {
		return fmt.Errorf("aircraft %s: mtow_kg must exceed empty_mass_kg", a.Name)
	}
	return nil
}

/* Definitions */

// B777300 is the Boeing 777-300 the model was validated against.
var B777300 = Aircraft{"B777-300", 168000, 299000, 145000, 427, 64.8, 73.9, 0.018, 0.045, 1.6, 2.2, 800000, 0.6, 0.89, 43000, 11000}

// A320200 is the Airbus A320-200 with CFM56 engines.
var A320200 = Aircraft{"A320-200", 42600, 78000, 24210, 122.6, 35.8, 37.57, 0.020, 0.046, 1.8, 2.4, 240000, 0.58, 0.82, 39100, 6100}

// B747400 is the Boeing 747-400.
var B747400 = Aircraft{"B747-400", 183500, 396890, 173990, 541, 64.4, 70.66, 0.020, 0.044, 1.7, 2.3, 1128000, 0.62, 0.92, 45000, 13450}

// BuiltinAircraft returns the aircraft types compiled into the package.
func BuiltinAircraft() []Aircraft {
	return []Aircraft{B777300, A320200, B747400}
}

// AircraftFromString returns the built-in aircraft matching the given name.
func AircraftFromString(name string) (Aircraft, error) {
	switch strings.ToLower(name) {
	case "b777-300", "777-300", "b777":
		return B777300, nil
	case "a320-200", "320-200", "a320":
		return A320200, nil
	case "b747-400", "747-400", "b747":
		return B747400, nil
	default:
		return Aircraft{}, fmt.Errorf("undefined aircraft '%s'", name)
	}
}

// LoadAircraftFile reads additional aircraft definitions from a YAML file
// holding a list of Aircraft documents. Each entry is validated before being
// returned; a single bad entry fails the whole load.
func LoadAircraftFile(path string) ([]Aircraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read aircraft file: %w", err)
	}
	var acs []Aircraft
	if err := yaml.Unmarshal(data, &acs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	for _, ac := range acs {
		if err := ac.Validate(); err != nil {
			return nil, err
		}
	}
	return acs, nil
}
