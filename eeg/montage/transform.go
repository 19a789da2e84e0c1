package montage

import (
	"github.com/cwbudde/algo-eeg/eeg/channel"
	"github.com/cwbudde/algo-eeg/eeg/signal"
)

// Transform re-references a matrix and its names in place and returns the
// consider mask.
type Transform interface {
	Apply(m *signal.Matrix, names channel.Names) ([]bool, error)
}

// TransformFunc adapts a function to Transform.
type TransformFunc func(m *signal.Matrix, names channel.Names) ([]bool, error)

// Apply calls f(m, names).
func (f TransformFunc) Apply(m *signal.Matrix, names channel.Names) ([]bool, error) {
	return f(m, names)
}

// Reference returns a Transform running Rereference against channel ref.
func Reference(ref int, opts ...Option) Transform {
	return TransformFunc(func(m *signal.Matrix, names channel.Names) ([]bool, error) {
		return Rereference(m, names, ref, opts...)
	})
}

// Bipolar returns a Transform running Bipolarize.
func Bipolar(opts ...Option) Transform {
	return TransformFunc(func(m *signal.Matrix, names channel.Names) ([]bool, error) {
		return Bipolarize(m, names, opts...)
	})
}

// Average returns a Transform running CommonAverage.
func Average(opts ...Option) Transform {
	return TransformFunc(func(m *signal.Matrix, names channel.Names) ([]bool, error) {
		return CommonAverage(m, names, opts...)
	})
}

// Passthrough returns a Transform that leaves data and names unchanged and
// considers every channel that is not ignored.
func Passthrough(opts ...Option) Transform {
	return TransformFunc(func(m *signal.Matrix, names channel.Names) ([]bool, error) {
		ignore, err := prepare(m, names, applyOptions(opts))
		if err != nil {
			return nil, err
		}
		consider := make([]bool, len(ignore))
		for i, ig := range ignore {
			consider[i] = !ig
		}

		return consider, nil
	})
}

// Copy runs t on deep copies of m and names and returns the copies. The
// caller's matrix and names are not modified.
func Copy(t Transform, m *signal.Matrix, names channel.Names) (*signal.Matrix, channel.Names, []bool, error) {
	if m == nil {
		return nil, nil, nil, ErrNilMatrix
	}

	mc := m.Clone()
	nc := names.Clone()

	consider, err := t.Apply(mc, nc)
	if err != nil {
		return nil, nil, nil, err
	}

	return mc, nc, consider, nil
}

// Count returns the number of true entries in mask.
func Count(mask []bool) int {
	n := 0
	for _, v := range mask {
		if v {
			n++
		}
	}

	return n
}
