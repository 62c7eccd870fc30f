package wqi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Key identifies one of the nine index parameters.
type Key string

const (
	KeyDissolvedOxygen Key = "od"
	KeyFecalColiforms  Key = "cf"
	KeyPH              Key = "ph"
	KeyBOD             Key = "dbo"
	KeyTotalNitrogen   Key = "nt"
	KeyTotalPhosphorus Key = "ft"
	KeyTemperature     Key = "temp"
	KeyTurbidity       Key = "tb"
	KeyTotalSolids     Key = "st"
)

// WeightKeys is the fixed positional order used by ordered weight lists.
var WeightKeys = []Key{
	KeyDissolvedOxygen,
	KeyFecalColiforms,
	KeyPH,
	KeyBOD,
	KeyTotalNitrogen,
	KeyTotalPhosphorus,
	KeyTemperature,
	KeyTurbidity,
	KeyTotalSolids,
}

// WeightSet holds the exponent applied to each parameter's quality value.
type WeightSet struct {
	DissolvedOxygen float64 `json:"od" yaml:"od"`
	FecalColiforms  float64 `json:"cf" yaml:"cf"`
	PH              float64 `json:"ph" yaml:"ph"`
	BOD             float64 `json:"dbo" yaml:"dbo"`
	TotalNitrogen   float64 `json:"nt" yaml:"nt"`
	TotalPhosphorus float64 `json:"ft" yaml:"ft"`
	Temperature     float64 `json:"temp" yaml:"temp"`
	Turbidity       float64 `json:"tb" yaml:"tb"`
	TotalSolids     float64 `json:"st" yaml:"st"`
}

// DefaultWeights returns the canonical CETESB weight distribution.
func DefaultWeights() WeightSet {
	return WeightSet{
		DissolvedOxygen: 0.17,
		FecalColiforms:  0.15,
		PH:              0.12,
		BOD:             0.10,
		TotalNitrogen:   0.10,
		TotalPhosphorus: 0.10,
		Temperature:     0.10,
		Turbidity:       0.08,
		TotalSolids:     0.08,
	}
}

// WeightsFromSlice builds a WeightSet from nine values in WeightKeys order.
func WeightsFromSlice(values []float64) (WeightSet, error) {
	if len(values) != len(WeightKeys) {
		return WeightSet{}, fmt.Errorf("%w: got %d values, want %d", ErrWeightLength, len(values), len(WeightKeys))
	}
	var w WeightSet
	for i, k := range WeightKeys {
		*w.field(k) = values[i]
	}
	return w, nil
}

// WeightsFromMap overlays the given keys on DefaultWeights.
func WeightsFromMap(values map[string]float64) (WeightSet, error) {
	return DefaultWeights().With(values)
}

// With returns a copy of w with the named keys replaced. Keys not present in
// values keep the value from w.
func (w WeightSet) With(values map[string]float64) (WeightSet, error) {
	for name := range values {
		if !isKey(name) {
			return WeightSet{}, fmt.Errorf("%w: %q", ErrUnknownWeightKey, name)
		}
	}
	for name, v := range values {
		*w.field(Key(name)) = v
	}
	return w, nil
}

// ParseWeights resolves a JSON weights payload against base. A missing or
// null payload yields base, an array is read positionally and must hold nine
// numbers, an object overrides only the keys it names.
func ParseWeights(raw json.RawMessage, base WeightSet) (WeightSet, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return base, nil
	}

	switch raw[0] {
	case '[':
		var elems []*float64
		if err := json.Unmarshal(raw, &elems); err != nil {
			return WeightSet{}, fmt.Errorf("%w: %v", ErrWeightType, err)
		}
		values := make([]float64, len(elems))
		for i, v := range elems {
			if v == nil {
				return WeightSet{}, fmt.Errorf("%w: element %d is null", ErrWeightType, i)
			}
			values[i] = *v
		}
		return WeightsFromSlice(values)
	case '{':
		var elems map[string]*float64
		if err := json.Unmarshal(raw, &elems); err != nil {
			return WeightSet{}, fmt.Errorf("%w: %v", ErrWeightType, err)
		}
		values := make(map[string]float64, len(elems))
		for name, v := range elems {
			if v == nil {
				return WeightSet{}, fmt.Errorf("%w: %q is null", ErrWeightType, name)
			}
			values[name] = *v
		}
		return base.With(values)
	default:
		return WeightSet{}, fmt.Errorf("%w: got %s", ErrWeightType, raw)
	}
}

// Get returns the weight for key. Unknown keys return 0.
func (w WeightSet) Get(key Key) float64 {
	if p := w.field(key); p != nil {
		return *p
	}
	return 0
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	var total float64
	for _, v := range w.Slice() {
		total += v
	}
	return total
}

// Slice returns the weights in WeightKeys order.
func (w WeightSet) Slice() []float64 {
	out := make([]float64, len(WeightKeys))
	for i, k := range WeightKeys {
		out[i] = w.Get(k)
	}
	return out
}

// Map returns the weights keyed by their short parameter key.
func (w WeightSet) Map() map[string]float64 {
	out := make(map[string]float64, len(WeightKeys))
	for _, k := range WeightKeys {
		out[string(k)] = w.Get(k)
	}
	return out
}

// Validate checks that no weight is negative, NaN or infinite. It does not
// require the weights to sum to 1.0.
func (w WeightSet) Validate() error {
	for _, k := range WeightKeys {
		v := w.Get(k)
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidWeight, k, v)
		}
	}
	return nil
}

func (w *WeightSet) field(key Key) *float64 {
	switch key {
	case KeyDissolvedOxygen:
		return &w.DissolvedOxygen
	case KeyFecalColiforms:
		return &w.FecalColiforms
	case KeyPH:
		return &w.PH
	case KeyBOD:
		return &w.BOD
	case KeyTotalNitrogen:
		return &w.TotalNitrogen
	case KeyTotalPhosphorus:
		return &w.TotalPhosphorus
	case KeyTemperature:
		return &w.Temperature
	case KeyTurbidity:
		return &w.Turbidity
	case KeyTotalSolids:
		return &w.TotalSolids
	}
	return nil
}

func isKey(name string) bool {
	for _, k := range WeightKeys {
		if string(k) == name {
			return true
		}
	}
	return false
}
