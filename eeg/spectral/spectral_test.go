package spectral

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-eeg/dsp/window"
	"github.com/cwbudde/algo-eeg/eeg/signal"
	"github.com/cwbudde/algo-eeg/internal/testutil"
)

func TestComputeValidation(t *testing.T) {
	row := make([]float32, 100)

	if _, err := Compute(row, 0); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("err = %v, want ErrInvalidRate", err)
	}
	if _, err := Compute(row, 100, WithFrameSize(48)); !errors.Is(err, ErrInvalidFrame) {
		t.Fatalf("err = %v, want ErrInvalidFrame for non power of two", err)
	}
	if _, err := Compute(row, 100, WithFrameSize(128)); !errors.Is(err, ErrInvalidFrame) {
		t.Fatalf("err = %v, want ErrInvalidFrame for frame longer than signal", err)
	}
}

func TestComputeFrames(t *testing.T) {
	const sf = 128.0
	row := testutil.DeterministicSine(10, sf, 1, 1024)

	sg, err := Compute(row, sf)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if sg.FrameSize != 256 {
		t.Fatalf("FrameSize = %d, want 256", sg.FrameSize)
	}
	if len(sg.Freqs) != 129 {
		t.Fatalf("len(Freqs) = %d, want 129", len(sg.Freqs))
	}
	// 50% overlap: (1024-256)/128 + 1 frames.
	if len(sg.Power) != 7 || len(sg.Times) != 7 {
		t.Fatalf("frames = %d/%d, want 7", len(sg.Power), len(sg.Times))
	}
	if sg.Times[0] != 1 {
		t.Fatalf("Times[0] = %v, want 1", sg.Times[0])
	}
	if got := sg.Freqs[20]; got != 10 {
		t.Fatalf("Freqs[20] = %v, want 10", got)
	}
}

func TestPeakAndTotalPower(t *testing.T) {
	const (
		sf  = 128.0
		amp = 3.0
	)
	row := testutil.DeterministicSine(10, sf, amp, 2048)

	sg, err := Compute(row, sf)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if got := sg.PeakFrequency(); got != 10 {
		t.Fatalf("PeakFrequency() = %v, want 10", got)
	}

	total := sg.BandPower(0, sf)
	want := amp * amp / 2
	if math.Abs(total-want)/want > 0.05 {
		t.Fatalf("total power = %v, want ~%v", total, want)
	}
}

func TestBandPowerIndependentOfFrameSize(t *testing.T) {
	const (
		sf  = 128.0
		amp = 2.0
	)
	row := testutil.DeterministicSine(10, sf, amp, 4096)
	want := amp * amp / 2

	for _, n := range []int{128, 256, 1024} {
		sg, err := Compute(row, sf, WithFrameSize(n))
		if err != nil {
			t.Fatalf("Compute(frame %d) error = %v", n, err)
		}
		got := sg.BandPower(8, 12)
		if math.Abs(got-want)/want > 0.05 {
			t.Fatalf("frame %d: alpha power = %v, want ~%v", n, got, want)
		}
	}
}

func TestComputeUsesPeriodicWindow(t *testing.T) {
	const (
		sf = 64.0
		n  = 64
	)
	// A bin-centred tone under the periodic Hann window leaks into exactly
	// the two neighbouring bins at a quarter of the peak amplitude.
	row := testutil.DeterministicSine(8, sf, 1, n)

	sg, err := Compute(row, sf, WithFrameSize(n))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	p := sg.Power[0]
	if ratio := p[7] / p[8]; math.Abs(ratio-0.25) > 1e-6 {
		t.Fatalf("p[7]/p[8] = %v, want 0.25", ratio)
	}
	if rel := p[5] / p[8]; rel > 1e-12 {
		t.Fatalf("p[5]/p[8] = %v, want no leakage beyond the neighbours", rel)
	}
}

func TestComputeWindowOption(t *testing.T) {
	const sf = 128.0
	row := testutil.DeterministicSine(10, sf, 1, 1024)

	for _, w := range []window.Type{window.TypeRectangular, window.TypeHamming, window.TypeBlackman} {
		sg, err := Compute(row, sf, WithWindow(w))
		if err != nil {
			t.Fatalf("Compute(%s) error = %v", w, err)
		}
		if got := sg.PeakFrequency(); got != 10 {
			t.Fatalf("%s: PeakFrequency() = %v, want 10", w, got)
		}
		if got := sg.BandPower(0, sf); math.Abs(got-0.5)/0.5 > 0.05 {
			t.Fatalf("%s: total power = %v, want ~0.5", w, got)
		}
	}
}

func TestBandsPicksAlpha(t *testing.T) {
	const sf = 128.0
	m := signal.NewMatrix(2, 1024)
	copy(m.Row(0), testutil.DeterministicSine(10, sf, 1, 1024))
	copy(m.Row(1), testutil.DeterministicSine(2, sf, 1, 1024))

	bp, err := Bands(m, sf, nil)
	if err != nil {
		t.Fatalf("Bands() error = %v", err)
	}
	if len(bp) != 2 || len(bp[0]) != len(DefaultBands) {
		t.Fatalf("shape = %dx%d", len(bp), len(bp[0]))
	}

	if best := argmax(bp[0]); DefaultBands[best].Name != "alpha" {
		t.Fatalf("row 0 dominant band = %s, want alpha", DefaultBands[best].Name)
	}
	if best := argmax(bp[1]); DefaultBands[best].Name != "delta" {
		t.Fatalf("row 1 dominant band = %s, want delta", DefaultBands[best].Name)
	}
}

func TestBandsPropagatesErrors(t *testing.T) {
	m := signal.NewMatrix(1, 16)
	if _, err := Bands(m, 128, nil, WithFrameSize(64)); !errors.Is(err, ErrInvalidFrame) {
		t.Fatalf("err = %v, want ErrInvalidFrame", err)
	}
}

func TestDefaultFrameSize(t *testing.T) {
	tests := []struct {
		sf     float64
		length int
		want   int
	}{
		{128, 10000, 256},
		{100, 10000, 256},
		{256, 300, 256},
		{1000, 1000, 512},
		{0.5, 10, 2},
	}
	for _, tc := range tests {
		if got := defaultFrameSize(tc.sf, tc.length); got != tc.want {
			t.Fatalf("defaultFrameSize(%v,%d) = %d, want %d", tc.sf, tc.length, got, tc.want)
		}
	}
}

func argmax(x []float64) int {
	best := 0
	for i, v := range x {
		if v > x[best] {
			best = i
		}
	}
	return best
}
