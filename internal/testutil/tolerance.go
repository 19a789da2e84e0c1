package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-eeg/eeg/signal"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float32, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireRowsEqual fails t unless m has exactly the given rows.
func RequireRowsEqual(t *testing.T, m *signal.Matrix, want [][]float32) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("row count: got %d, want %d", m.Rows(), len(want))
	}
	for i, w := range want {
		got := m.Row(i)
		if len(got) != len(w) {
			t.Fatalf("row %d length: got %d, want %d", i, len(got), len(w))
		}
		for j := range w {
			if got[j] != w[j] {
				t.Fatalf("row %d index %d: got %v, want %v", i, j, got[j], w[j])
			}
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// ColumnMean returns the per-sample mean of the selected rows of m.
func ColumnMean(m *signal.Matrix, selected []bool) []float64 {
	mean := make([]float64, m.Cols())
	n := 0
	for i, ok := range selected {
		if !ok {
			continue
		}
		n++
		for j, v := range m.Row(i) {
			mean[j] += float64(v)
		}
	}
	if n == 0 {
		return mean
	}
	for j := range mean {
		mean[j] /= float64(n)
	}
	return mean
}
