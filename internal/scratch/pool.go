// Package scratch provides pooled float64 work buffers for the numeric
// kernels that widen float32 channel data.
package scratch

import "sync"

// Buffer is a reusable float64 work area.
type Buffer struct {
	data []float64
}

// Split carves the buffer into consecutive slices of the given lengths.
// The buffer must have been obtained with at least their sum.
func (b *Buffer) Split(lengths ...int) [][]float64 {
	out := make([][]float64, len(lengths))
	off := 0
	for i, n := range lengths {
		out[i] = b.data[off : off+n : off+n]
		off += n
	}
	return out
}

// Pool provides sync.Pool-based Buffer reuse.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed Buffer holding the sum of lengths.
// Callers must return it via Put when done.
func (p *Pool) Get(lengths ...int) *Buffer {
	need := 0
	for _, n := range lengths {
		need += n
	}

	b := p.pool.Get().(*Buffer)
	if cap(b.data) < need {
		b.data = make([]float64, need)
	} else {
		b.data = b.data[:need]
		clear(b.data)
	}
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
