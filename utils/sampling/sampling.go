package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// RandFloat64 returns a random float between min and max, drawn from the
// system entropy source.
func RandFloat64(min, max float64) float64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	f := float64(binary.LittleEndian.Uint64(b)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// UniformSampler draws float64 values uniformly from the interval [min, max].
type UniformSampler struct {
	prng     PRNG
	min, max float64
}

// NewUniformSampler creates a new UniformSampler over [min, max] reading from
// prng. If prng is nil, the sampler reads from a fresh [ThreadSafePRNG]; pass
// a [KeyedPRNG] to make the sequence of samples replayable. The function
// panics if max < min.
func NewUniformSampler(prng PRNG, min, max float64) *UniformSampler {
	if max < min {
		panic(fmt.Errorf("cannot NewUniformSampler: max (%v) < min (%v)", max, min))
	}
	if prng == nil {
		prng, _ = NewPRNG()
	}
	return &UniformSampler{prng: prng, min: min, max: max}
}

// Next returns the next sample.
func (s *UniformSampler) Next() float64 {
	var b [8]byte
	if _, err := io.ReadFull(s.prng, b[:]); err != nil {
		panic(err)
	}
	f := float64(binary.LittleEndian.Uint64(b[:])) / 1.8446744073709552e+19
	return s.min + f*(s.max-s.min)
}

// NextSlice returns a vector of n samples.
func (s *UniformSampler) NextSlice(n int) (xs []float64) {
	xs = make([]float64, n)
	for i := range xs {
		xs[i] = s.Next()
	}
	return
}
