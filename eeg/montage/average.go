package montage

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eeg/eeg/channel"
	"github.com/cwbudde/algo-eeg/eeg/signal"
	"github.com/cwbudde/algo-eeg/internal/scratch"
)

var scratchPool = scratch.NewPool()

// AverageTag is the derivation appended by CommonAverage.
const AverageTag = "m"

// CommonAverage subtracts the mean of all non-ignored rows from each of
// them and appends "-m" to their names. The mean is accumulated in float64
// and rounded once to float32 before subtraction.
//
// The consider mask is the complement of the ignore set. When every channel
// is ignored the mean is undefined and nothing is modified.
func CommonAverage(m *signal.Matrix, names channel.Names, opts ...Option) ([]bool, error) {
	cfg := applyOptions(opts)

	ignore, err := prepare(m, names, cfg)
	if err != nil {
		return nil, err
	}

	consider := make([]bool, m.Rows())
	count := 0
	for i := range consider {
		consider[i] = !ignore[i]
		if consider[i] {
			count++
		}
	}
	if count == 0 {
		return consider, nil
	}

	buf := scratchPool.Get(m.Cols(), m.Cols())
	defer scratchPool.Put(buf)
	parts := buf.Split(m.Cols(), m.Cols())
	mean, tmp := parts[0], parts[1]

	for i, ok := range consider {
		if !ok {
			continue
		}
		for j, v := range m.Row(i) {
			tmp[j] = float64(v)
		}
		vecmath.AddBlockInPlace(mean, tmp)
	}
	vecmath.ScaleBlockInPlace(mean, 1/float64(count))

	for i, ok := range consider {
		if !ok {
			continue
		}
		row := m.Row(i)
		for j := range row {
			row[j] -= float32(mean[j])
		}
		names[i] = names[i].Derive(AverageTag)
	}

	return consider, nil
}
