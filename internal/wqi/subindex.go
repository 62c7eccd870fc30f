package wqi

import (
	"fmt"
	"math"
)

// OxygenSaturation returns the dissolved-oxygen saturation concentration in
// mg/L for the given water temperature (°C) and altitude (m).
func OxygenSaturation(temperature, altitude float64) float64 {
	t := temperature
	return (14.62 - 0.3898*t + 0.006969*t*t - 0.00005896*t*t*t) *
		math.Pow(1-0.0000228675*altitude, 5.167)
}

// DissolvedOxygenQuality returns the oxygen quality value together with the
// percent saturation it was read from.
func DissolvedOxygenQuality(dissolvedOxygen, temperature, altitude float64) (quality, saturation float64) {
	saturation = 100 * dissolvedOxygen / OxygenSaturation(temperature, altitude)
	return oxygenCurve.eval(saturation), saturation
}

// FecalColiformQuality reads the coliform curve on log10 of the count.
func FecalColiformQuality(count float64) (float64, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrNonPositiveColiforms, count)
	}
	return coliformCurve.eval(math.Log10(count)), nil
}

// PHQuality reads the pH curve on pH units.
func PHQuality(ph float64) float64 { return phCurve.eval(ph) }

// BODQuality reads the biochemical oxygen demand curve on mg/L.
func BODQuality(bod float64) float64 { return bodCurve.eval(bod) }

// TotalNitrogenQuality reads the total nitrogen curve on mg/L.
func TotalNitrogenQuality(n float64) float64 { return nitrogenCurve.eval(n) }

// TotalPhosphorusQuality reads the total phosphorus curve on mg/L.
func TotalPhosphorusQuality(p float64) float64 { return phosphorusCurve.eval(p) }

// TurbidityQuality reads the turbidity curve on NTU.
func TurbidityQuality(ntu float64) float64 { return turbidityCurve.eval(ntu) }

// TotalSolidsQuality reads the total solids curve on mg/L.
func TotalSolidsQuality(solids float64) float64 { return solidsCurve.eval(solids) }

// TemperatureQuality is constant: the measured temperature does not enter
// the temperature term.
func TemperatureQuality() float64 { return temperatureQuality }
