package wqi

const (
	// DefaultAltitude is the sampling altitude in meters used when none is given.
	DefaultAltitude = 200.0
	// DefaultTemperature is the water temperature in °C used when none is given.
	DefaultTemperature = 22.0
)

// ParameterSet holds one water sample's measurements.
type ParameterSet struct {
	DissolvedOxygen float64 `json:"dissolved_oxygen"` // mg/L
	FecalColiforms  float64 `json:"fecal_coliforms"`  // CFU/100 mL, must be > 0
	PH              float64 `json:"ph"`
	BOD             float64 `json:"bod"`              // mg/L
	TotalNitrogen   float64 `json:"total_nitrogen"`   // mg/L
	TotalPhosphorus float64 `json:"total_phosphorus"` // mg/L
	Turbidity       float64 `json:"turbidity"`        // NTU
	TotalSolids     float64 `json:"total_solids"`     // mg/L

	// Optional environment; nil means DefaultAltitude / DefaultTemperature.
	Altitude    *float64 `json:"altitude,omitempty"`    // meters
	Temperature *float64 `json:"temperature,omitempty"` // °C
}

// AltitudeOrDefault returns the sample altitude, or DefaultAltitude if unset.
func (p ParameterSet) AltitudeOrDefault() float64 {
	if p.Altitude != nil {
		return *p.Altitude
	}
	return DefaultAltitude
}

// TemperatureOrDefault returns the sample temperature, or DefaultTemperature if unset.
func (p ParameterSet) TemperatureOrDefault() float64 {
	if p.Temperature != nil {
		return *p.Temperature
	}
	return DefaultTemperature
}
