package wqi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		index float64
		want  Classification
	}{
		{0, VeryBad},
		{19.00, VeryBad},
		{19.01, Poor},
		{36.00, Poor},
		{36.01, Fair},
		{51.00, Fair},
		{51.01, Good},
		{79.00, Good},
		{79.01, Excellent},
		{100, Excellent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.index), "index %v", tt.index)
	}
}

func TestClassify_UnroundedNearThreshold(t *testing.T) {
	// Just above a threshold, the rounded index lands on the boundary while
	// the class follows the unrounded value.
	assert.Equal(t, 19.0, round2(19.004))
	assert.Equal(t, Poor, Classify(19.004))
	assert.Equal(t, VeryBad, Classify(round2(19.004)))
}

func TestClassifications(t *testing.T) {
	all := Classifications()
	assert.Len(t, all, 5)
	for _, c := range all {
		assert.True(t, c.Valid())
		assert.NotEmpty(t, c.Portuguese())
	}
	assert.False(t, Classification("terrible").Valid())
}

func TestPortugueseLabels(t *testing.T) {
	assert.Equal(t, "Péssima", VeryBad.Portuguese())
	assert.Equal(t, "Ruim", Poor.Portuguese())
	assert.Equal(t, "Regular", Fair.Portuguese())
	assert.Equal(t, "Boa", Good.Portuguese())
	assert.Equal(t, "Ótima", Excellent.Portuguese())
}
