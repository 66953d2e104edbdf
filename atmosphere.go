package perf

import "math"

/* International Standard Atmosphere, two layers: linear troposphere up to the
tropopause, isothermal lower stratosphere above it. */

const (
	isaSeaLevelTemp     = 288.15  // K
	isaSeaLevelPressure = 101325  // Pa
	isaLapseRate        = -0.0065 // K/m
	isaGasConstant      = 287     // J/(kg·K)
	isaTropopauseAlt    = 11000   // m
	isaTropopauseTemp   = 216.65  // K
	isaTropopausePress  = 22632   // Pa

	// MaxModelAltitude bounds the modeled band in meters. The two-layer model
	// stops being meaningful above the lower stratosphere; callers must not
	// query beyond this.
	MaxModelAltitude = 15000
)

// AtmosphereState holds the standard-atmosphere state at one altitude.
type AtmosphereState struct {
	Temperature  float64 `json:"temperature_k"`
	Pressure     float64 `json:"pressure_pa"`
	Density      float64 `json:"density_kg_m3"`
	SpeedOfSound float64 `json:"speed_of_sound_m_s"`
}

// ISA returns the International Standard Atmosphere state at the provided
// geometric altitude in meters. Sea level checks out at 1.225 kg/m³ and
// 340.3 m/s, and both branches agree at the tropopause.
func ISA(altitude float64) AtmosphereState {
	var T, P float64
	if altitude <= isaTropopauseAlt {
		T = isaSeaLevelTemp + isaLapseRate*altitude
		P = isaSeaLevelPressure * math.Pow(T/isaSeaLevelTemp, -EarthGravity/(isaLapseRate*isaGasConstant))
	} else {
		T = isaTropopauseTemp
		P = isaTropopausePress * math.Exp(-EarthGravity*(altitude-isaTropopauseAlt)/(isaGasConstant*T))
	}
	ρ := P / (isaGasConstant * T)
	a := math.Sqrt(1.4 * isaGasConstant * T)
	return AtmosphereState{T, P, ρ, a}
}
