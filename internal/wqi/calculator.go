package wqi

import (
	"fmt"
	"math"
)

// SubIndex captures one parameter's contribution to the index.
type SubIndex struct {
	Key          Key     `json:"key"`
	Input        float64 `json:"input"`
	Quality      float64 `json:"quality"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// Result is the outcome of one index computation. Index is rounded to two
// decimals while Classification is derived from the unrounded product, so
// near a threshold the two can disagree (19.004 gives Index 19.00, poor).
type Result struct {
	Index             float64        `json:"index"`
	Classification    Classification `json:"classification"`
	SaturationPercent float64        `json:"do_saturation_percent"`
	SubIndices        []SubIndex     `json:"sub_indices"`
}

// Compute returns the water quality index for p using weights w.
//
// The index is the product of each quality value raised to its weight,
// rounded to two decimals. Classification is taken on the unrounded value.
func Compute(p ParameterSet, w WeightSet) (Result, error) {
	cf, err := FecalColiformQuality(p.FecalColiforms)
	if err != nil {
		return Result{}, err
	}
	od, saturation := DissolvedOxygenQuality(p.DissolvedOxygen, p.TemperatureOrDefault(), p.AltitudeOrDefault())

	subs := []SubIndex{
		{Key: KeyDissolvedOxygen, Input: p.DissolvedOxygen, Quality: od},
		{Key: KeyFecalColiforms, Input: p.FecalColiforms, Quality: cf},
		{Key: KeyPH, Input: p.PH, Quality: PHQuality(p.PH)},
		{Key: KeyBOD, Input: p.BOD, Quality: BODQuality(p.BOD)},
		{Key: KeyTotalNitrogen, Input: p.TotalNitrogen, Quality: TotalNitrogenQuality(p.TotalNitrogen)},
		{Key: KeyTotalPhosphorus, Input: p.TotalPhosphorus, Quality: TotalPhosphorusQuality(p.TotalPhosphorus)},
		{Key: KeyTemperature, Input: p.TemperatureOrDefault(), Quality: TemperatureQuality()},
		{Key: KeyTurbidity, Input: p.Turbidity, Quality: TurbidityQuality(p.Turbidity)},
		{Key: KeyTotalSolids, Input: p.TotalSolids, Quality: TotalSolidsQuality(p.TotalSolids)},
	}

	index := 1.0
	for i := range subs {
		s := &subs[i]
		s.Weight = w.Get(s.Key)
		s.Contribution = math.Pow(s.Quality, s.Weight)
		if math.IsNaN(s.Contribution) {
			return Result{}, fmt.Errorf("%w: %s quality %.4f, weight %g", ErrUndefinedSubIndex, s.Key, s.Quality, s.Weight)
		}
		index *= s.Contribution
	}

	return Result{
		Index:             round2(index),
		Classification:    Classify(index),
		SaturationPercent: saturation,
		SubIndices:        subs,
	}, nil
}

// WQI is an alias for Compute under the internationally used name.
func WQI(p ParameterSet, w WeightSet) (Result, error) {
	return Compute(p, w)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
