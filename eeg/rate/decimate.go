package rate

import (
	"math"

	"github.com/cwbudde/algo-eeg/eeg/signal"
)

// Factor returns the decimation stride round(sampleRate/target), at least 1.
func Factor(sampleRate, target float64) (int, error) {
	if err := validate(sampleRate, "sampling"); err != nil {
		return 0, err
	}
	if err := validate(target, "target"); err != nil {
		return 0, err
	}

	f := int(math.RoundToEven(sampleRate / target))
	if f < 1 {
		f = 1
	}

	return f, nil
}

// DecimatedLen returns the number of samples kept from n when keeping every
// factor-th sample starting at 0.
func DecimatedLen(n, factor int) int {
	if n <= 0 {
		return 0
	}
	if factor <= 1 {
		return n
	}

	return (n + factor - 1) / factor
}

// Decimate returns a new matrix keeping samples 0, factor, 2*factor, ... of
// every row. No anti-aliasing filter is applied.
func Decimate(m *signal.Matrix, factor int) *signal.Matrix {
	if factor <= 1 {
		return m.Clone()
	}

	out := signal.NewMatrix(m.Rows(), DecimatedLen(m.Cols(), factor))
	for i := 0; i < m.Rows(); i++ {
		decimateInto(out.Row(i), m.Row(i), factor)
	}

	return out
}

// DecimateSlice returns every factor-th element of x starting at 0.
func DecimateSlice(x []float32, factor int) []float32 {
	if factor <= 1 {
		return append([]float32(nil), x...)
	}

	out := make([]float32, DecimatedLen(len(x), factor))
	decimateInto(out, x, factor)

	return out
}

func decimateInto(dst, src []float32, factor int) {
	for k := range dst {
		dst[k] = src[k*factor]
	}
}
