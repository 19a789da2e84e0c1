package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-eeg/eeg/signal"
)

// DeterministicSine generates a deterministic float32 sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// NoiseMatrix builds a channels x samples matrix of seeded noise, one seed
// per row.
func NoiseMatrix(seed int64, channels, samples int, amplitude float64) *signal.Matrix {
	m := signal.NewMatrix(channels, samples)
	for i := 0; i < channels; i++ {
		copy(m.Row(i), DeterministicNoise(seed+int64(i), amplitude, samples))
	}
	return m
}

// ConstantRows builds a matrix whose row i is filled with values[i].
func ConstantRows(samples int, values ...float32) *signal.Matrix {
	m := signal.NewMatrix(len(values), samples)
	for i, v := range values {
		copy(m.Row(i), DC(v, samples))
	}
	return m
}
