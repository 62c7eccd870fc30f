package wqi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }

func referenceSample() ParameterSet {
	return ParameterSet{
		DissolvedOxygen: 8.0,
		FecalColiforms:  200,
		PH:              7.0,
		BOD:             5.0,
		TotalNitrogen:   1.0,
		TotalPhosphorus: 0.1,
		Turbidity:       2.0,
		TotalSolids:     100,
	}
}

func TestCompute_Golden(t *testing.T) {
	tests := []struct {
		name   string
		params ParameterSet
		index  float64
		class  Classification
	}{
		{
			name:   "default altitude and temperature",
			params: referenceSample(),
			index:  75.14,
			class:  Good,
		},
		{
			name: "explicit altitude and temperature",
			params: ParameterSet{
				DissolvedOxygen: 9.0, FecalColiforms: 150, PH: 6.5, BOD: 4.0,
				TotalNitrogen: 2.0, TotalPhosphorus: 0.5, Turbidity: 3.0, TotalSolids: 120,
				Altitude: float64Ptr(100), Temperature: float64Ptr(25),
			},
			index: 72.09,
			class: Good,
		},
		{
			name: "extreme values",
			params: ParameterSet{
				DissolvedOxygen: 0.5, FecalColiforms: 100_000, PH: 2.0, BOD: 50.0,
				TotalNitrogen: 80.0, TotalPhosphorus: 10.0, Turbidity: 200, TotalSolids: 1000,
				Altitude: float64Ptr(5000), Temperature: float64Ptr(50),
			},
			index: 6.74,
			class: VeryBad,
		},
		{
			name: "moderately loaded river",
			params: ParameterSet{
				DissolvedOxygen: 7.5, FecalColiforms: 300, PH: 7.2, BOD: 4.0,
				TotalNitrogen: 1.5, TotalPhosphorus: 0.2, Turbidity: 5, TotalSolids: 110,
			},
			index: 72.86,
			class: Good,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(tt.params, DefaultWeights())
			require.NoError(t, err)
			assert.Equal(t, tt.index, res.Index)
			assert.Equal(t, tt.class, res.Classification)
		})
	}
}

func TestCompute_AliasIsIdentical(t *testing.T) {
	p := referenceSample()
	p.Altitude = float64Ptr(850)
	w, err := WeightsFromMap(map[string]float64{"tb": 0.11})
	require.NoError(t, err)

	a, errA := Compute(p, w)
	b, errB := WQI(p, w)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
	assert.Equal(t, math.Float64bits(a.Index), math.Float64bits(b.Index))
}

func TestCompute_CustomWeightListChangesIndex(t *testing.T) {
	p := ParameterSet{
		DissolvedOxygen: 7.5, FecalColiforms: 300, PH: 7.2, BOD: 4.0,
		TotalNitrogen: 1.5, TotalPhosphorus: 0.2, Turbidity: 5, TotalSolids: 110,
	}
	swapped, err := WeightsFromSlice([]float64{0.15, 0.17, 0.12, 0.10, 0.10, 0.10, 0.10, 0.08, 0.08})
	require.NoError(t, err)

	base, err := Compute(p, DefaultWeights())
	require.NoError(t, err)
	custom, err := Compute(p, swapped)
	require.NoError(t, err)

	assert.NotEqual(t, base.Index, custom.Index)
	assert.Equal(t, 71.26, custom.Index)
}

func TestCompute_PartialMapMatchesFullVector(t *testing.T) {
	p := ParameterSet{
		DissolvedOxygen: 8.2, FecalColiforms: 180, PH: 6.9, BOD: 3.8,
		TotalNitrogen: 1.2, TotalPhosphorus: 0.08, Turbidity: 4, TotalSolids: 105,
	}
	partial, err := WeightsFromMap(map[string]float64{"ph": 0.20})
	require.NoError(t, err)
	full, err := WeightsFromSlice([]float64{0.17, 0.15, 0.20, 0.10, 0.10, 0.10, 0.10, 0.08, 0.08})
	require.NoError(t, err)

	a, err := Compute(p, partial)
	require.NoError(t, err)
	b, err := Compute(p, full)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 109.33, a.Index)
	assert.Equal(t, Excellent, a.Classification)
}

func TestCompute_NonPositiveColiforms(t *testing.T) {
	p := referenceSample()
	p.FecalColiforms = 0
	_, err := Compute(p, DefaultWeights())
	assert.ErrorIs(t, err, ErrNonPositiveColiforms)
}

func TestCompute_UndefinedSubIndex(t *testing.T) {
	p := referenceSample()
	p.DissolvedOxygen = 6.0 // ~70% saturation, negative curve value

	_, err := Compute(p, DefaultWeights())
	require.ErrorIs(t, err, ErrUndefinedSubIndex)
	assert.Contains(t, err.Error(), "od")

	// A zero weight removes the term entirely.
	w := DefaultWeights()
	w.DissolvedOxygen = 0
	res, err := Compute(p, w)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.SubIndices[0].Contribution)
}

func TestCompute_Breakdown(t *testing.T) {
	res, err := Compute(referenceSample(), DefaultWeights())
	require.NoError(t, err)
	require.Len(t, res.SubIndices, len(WeightKeys))

	product := 1.0
	for i, s := range res.SubIndices {
		assert.Equal(t, WeightKeys[i], s.Key)
		assert.InDelta(t, math.Pow(s.Quality, s.Weight), s.Contribution, 1e-12)
		product *= s.Contribution
	}
	assert.InDelta(t, 75.14330494491774, product, 1e-9)
	assert.InDelta(t, 93.19826901535704, res.SaturationPercent, 1e-9)

	temp := res.SubIndices[6]
	assert.Equal(t, KeyTemperature, temp.Key)
	assert.Equal(t, DefaultTemperature, temp.Input)
	assert.Equal(t, 94.0, temp.Quality)
}

func TestCompute_TemperatureOnlyAffectsSaturation(t *testing.T) {
	cold := referenceSample()
	cold.Temperature = float64Ptr(10)
	warm := referenceSample()
	warm.Temperature = float64Ptr(30)

	a, err := Compute(cold, DefaultWeights())
	require.NoError(t, err)
	b, err := Compute(warm, DefaultWeights())
	require.NoError(t, err)

	assert.Equal(t, a.SubIndices[6].Quality, b.SubIndices[6].Quality)
	assert.NotEqual(t, a.SaturationPercent, b.SaturationPercent)
}

func TestCompute_ResultIsNonNegativeAndLabelled(t *testing.T) {
	values := []float64{0, 0.5, 3, 7, 12, 40, 120, 600}
	for _, do := range []float64{0.5, 2, 8, 11, 15} {
		for _, v := range values {
			p := ParameterSet{
				DissolvedOxygen: do, FecalColiforms: v + 1, PH: 7.5, BOD: v,
				TotalNitrogen: v, TotalPhosphorus: v, Turbidity: v, TotalSolids: v,
			}
			res, err := Compute(p, DefaultWeights())
			require.NoError(t, err, "do=%v v=%v", do, v)
			assert.GreaterOrEqual(t, res.Index, 0.0)
			assert.True(t, res.Classification.Valid(), "label %q", res.Classification)
		}
	}
}
