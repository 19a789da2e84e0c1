package rate

import (
	"testing"

	"github.com/cwbudde/algo-eeg/eeg/signal"
	"github.com/cwbudde/algo-eeg/internal/testutil"
)

func TestFactor(t *testing.T) {
	tests := []struct {
		sf, target float64
		want       int
	}{
		{1000, 100, 10},
		{256, 64, 4},
		{100, 1000, 1},
		{1000, 400, 2},
	}
	for _, tc := range tests {
		got, err := Factor(tc.sf, tc.target)
		if err != nil {
			t.Fatalf("Factor(%v,%v) error = %v", tc.sf, tc.target, err)
		}
		if got != tc.want {
			t.Fatalf("Factor(%v,%v) = %d, want %d", tc.sf, tc.target, got, tc.want)
		}
	}
	if _, err := Factor(0, 1); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestDecimate(t *testing.T) {
	m, _ := signal.FromRows([][]float32{
		{0, 1, 2, 3, 4, 5, 6},
		{10, 11, 12, 13, 14, 15, 16},
	})

	out := Decimate(m, 3)
	testutil.RequireRowsEqual(t, out, [][]float32{{0, 3, 6}, {10, 13, 16}})

	same := Decimate(m, 1)
	testutil.RequireRowsEqual(t, same, m.ToRows())
	same.Set(0, 0, 99)
	if m.At(0, 0) != 0 {
		t.Fatal("Decimate(factor=1) aliases its input")
	}
}

func TestDecimateSlice(t *testing.T) {
	got := DecimateSlice([]float32{1, 2, 3, 4, 5}, 2)
	testutil.RequireSliceNearlyEqual(t, got, []float32{1, 3, 5}, 0)

	if DecimatedLen(0, 4) != 0 || DecimatedLen(8, 4) != 2 || DecimatedLen(9, 4) != 3 {
		t.Fatal("DecimatedLen mismatch")
	}
}
