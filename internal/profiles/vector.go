package profiles

import (
	"fmt"
	"math"
)

// PitchClasses is the number of entries in a profile vector.
const PitchClasses = 12

// SumTolerance is how far a normalized vector's total may drift from 1.
const SumTolerance = 1e-9

// Vector holds one weight per pitch class, indexed by semitone offset from
// the tonic. It is an array, so every copy is independent of the catalogue.
type Vector [PitchClasses]float64

// Sum returns the total weight.
func (v Vector) Sum() float64 {
	total := 0.0
	for _, w := range v {
		total += w
	}
	return total
}

// Validate checks that every weight is a finite, non-negative number and
// that the weights sum to 1.
func (v Vector) Validate() error {
	for pc, w := range v {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: pitch class %d has weight %v", ErrInvalidVector, pc, w)
		}
	}
	if sum := v.Sum(); math.Abs(sum-1) > SumTolerance {
		return fmt.Errorf("%w: weights sum to %v", ErrInvalidVector, sum)
	}
	return nil
}

// Slice returns the weights as a new slice.
func (v Vector) Slice() []float64 {
	out := make([]float64, PitchClasses)
	copy(out, v[:])
	return out
}

// VectorFromSlice converts a 12-element slice into a Vector.
func VectorFromSlice(weights []float64) (Vector, error) {
	var v Vector
	if len(weights) != PitchClasses {
		return v, fmt.Errorf("%w: expected %d weights, got %d", ErrInvalidVector, PitchClasses, len(weights))
	}
	copy(v[:], weights)
	return v, nil
}

// Normalize scales raw study values so they sum to 1.
func Normalize(raw [PitchClasses]float64) (Vector, error) {
	total := 0.0
	for pc, w := range raw {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return Vector{}, fmt.Errorf("%w: pitch class %d has raw weight %v", ErrInvalidVector, pc, w)
		}
		total += w
	}
	if total == 0 {
		return Vector{}, fmt.Errorf("%w: raw weights sum to zero", ErrInvalidVector)
	}
	var v Vector
	for pc, w := range raw {
		v[pc] = w / total
	}
	return v, nil
}
