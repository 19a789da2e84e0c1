package montage

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/eeg/channel"
	"github.com/cwbudde/algo-eeg/eeg/signal"
)

// Rereference subtracts row ref from every row that is neither ignored nor
// the reference itself, and renames those channels "X-<reference name>".
// The reference row and ignored rows are left untouched and are false in
// the returned consider mask.
func Rereference(m *signal.Matrix, names channel.Names, ref int, opts ...Option) ([]bool, error) {
	cfg := applyOptions(opts)

	ignore, err := prepare(m, names, cfg)
	if err != nil {
		return nil, err
	}

	n := m.Rows()
	if ref < 0 || ref >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrReferenceIndex, ref, n)
	}

	consider := make([]bool, n)
	for i := range consider {
		consider[i] = i != ref && !ignore[i]
	}

	refRow := m.Row(ref)
	tag := names[ref].String()

	for i, ok := range consider {
		if !ok {
			continue
		}
		subtractRow(m.Row(i), refRow)
		names[i] = names[i].Derive(tag)
	}

	return consider, nil
}

// subtractRow computes dst[j] -= src[j].
func subtractRow(dst, src []float32) {
	src = src[:len(dst)]
	for j := range dst {
		dst[j] -= src[j]
	}
}
