package profiles

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Validate(t *testing.T) {
	uniform := Vector{}
	for i := range uniform {
		uniform[i] = 1.0 / PitchClasses
	}

	negative := uniform
	negative[0] = -0.1
	negative[1] += 0.1

	nan := uniform
	nan[4] = math.NaN()

	tests := []struct {
		name    string
		v       Vector
		wantErr bool
	}{
		{name: "uniform", v: uniform},
		{name: "all weight on tonic", v: Vector{1}},
		{name: "zero vector", v: Vector{}, wantErr: true},
		{name: "negative weight", v: negative, wantErr: true},
		{name: "nan weight", v: nan, wantErr: true},
		{name: "sums past one", v: Vector{0.5, 0.5, 0.1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidVector)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	v, err := Normalize([PitchClasses]float64{2, 0, 1, 0, 1, 1, 0, 2, 0, 1, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/9.0, v[0], 1e-15)
	assert.NoError(t, v.Validate())

	_, err = Normalize([PitchClasses]float64{})
	assert.ErrorIs(t, err, ErrInvalidVector)

	_, err = Normalize([PitchClasses]float64{1, -1, 1})
	assert.ErrorIs(t, err, ErrInvalidVector)
}

func TestVectorFromSlice(t *testing.T) {
	v, err := VectorFromSlice([]float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, Vector{1}, v)
	assert.Equal(t, []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, v.Slice())

	_, err = VectorFromSlice([]float64{1, 0})
	assert.ErrorIs(t, err, ErrInvalidVector)
}
