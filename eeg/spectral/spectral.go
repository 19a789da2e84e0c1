package spectral

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eeg/dsp/window"
	"github.com/cwbudde/algo-eeg/eeg/signal"
	"github.com/cwbudde/algo-eeg/internal/scratch"
)

var (
	// ErrInvalidFrame indicates a frame size that is not a power of two or
	// that exceeds the signal length.
	ErrInvalidFrame = errors.New("spectral: invalid frame size")
	// ErrInvalidRate indicates a non-positive or non-finite sample rate.
	ErrInvalidRate = errors.New("spectral: invalid sample rate")
)

type config struct {
	frameSize int
	overlap   float64
	window    window.Type
}

// Option configures Compute.
type Option func(*config)

// WithFrameSize sets the FFT frame length in samples. It must be a power of
// two. The default is the power of two closest to two seconds of data,
// capped at the signal length.
func WithFrameSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.frameSize = n
		}
	}
}

// WithOverlap sets the fraction of overlap between frames in [0, 1).
// Default 0.5.
func WithOverlap(f float64) Option {
	return func(cfg *config) {
		if f >= 0 && f < 1 {
			cfg.overlap = f
		}
	}
}

// WithWindow selects the frame window. Default window.TypeHann. The
// periodic form is always used.
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.window = t
	}
}

// Spectrogram holds one-sided power spectral densities over time.
type Spectrogram struct {
	SampleRate float64
	FrameSize  int
	// Freqs holds the centre frequency of each bin (len FrameSize/2+1).
	Freqs []float64
	// Times holds the centre time of each frame in seconds.
	Times []float64
	// Power is indexed [frame][bin].
	Power [][]float64
}

var scratchPool = scratch.NewPool()

// Compute returns the spectrogram of row sampled at sampleRate.
func Compute(row []float32, sampleRate float64, opts ...Option) (*Spectrogram, error) {
	if math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRate, sampleRate)
	}

	cfg := config{overlap: 0.5, window: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := cfg.frameSize
	if n == 0 {
		n = defaultFrameSize(sampleRate, len(row))
	}
	if n < 2 || !isPowerOfTwo(n) || n > len(row) {
		return nil, fmt.Errorf("%w: %d for %d samples", ErrInvalidFrame, n, len(row))
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectral: fft plan: %w", err)
	}

	hop := int(math.Round(float64(n) * (1 - cfg.overlap)))
	if hop < 1 {
		hop = 1
	}

	win := window.Generate(cfg.window, n, window.WithPeriodic())
	// One-sided density scaling; interior bins carry both signs.
	scale := 1 / (sampleRate * window.EnergySum(win))

	bins := n/2 + 1
	sg := &Spectrogram{
		SampleRate: sampleRate,
		FrameSize:  n,
		Freqs:      make([]float64, bins),
	}
	for k := range sg.Freqs {
		sg.Freqs[k] = float64(k) * sampleRate / float64(n)
	}

	buf := scratchPool.Get(n, bins, bins)
	defer scratchPool.Put(buf)
	parts := buf.Split(n, bins, bins)
	x, re, im := parts[0], parts[1], parts[2]

	in := make([]complex128, n)
	out := make([]complex128, n)

	for start := 0; start+n <= len(row); start += hop {
		for i := range x {
			x[i] = float64(row[start+i])
		}
		vecmath.MulBlockInPlace(x, win)
		for i, v := range x {
			in[i] = complex(v, 0)
		}

		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("spectral: fft: %w", err)
		}

		for k := 0; k < bins; k++ {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}

		p := make([]float64, bins)
		vecmath.Power(p, re, im)
		vecmath.ScaleBlockInPlace(p, scale)
		for k := 1; k < bins-1; k++ {
			p[k] *= 2
		}

		sg.Power = append(sg.Power, p)
		sg.Times = append(sg.Times, (float64(start)+float64(n)/2)/sampleRate)
	}

	return sg, nil
}

// Mean returns the frame-averaged power spectral density (Welch estimate).
func (s *Spectrogram) Mean() []float64 {
	mean := make([]float64, len(s.Freqs))
	if len(s.Power) == 0 {
		return mean
	}

	for _, p := range s.Power {
		vecmath.AddBlockInPlace(mean, p)
	}
	vecmath.ScaleBlockInPlace(mean, 1/float64(len(s.Power)))

	return mean
}

// BandPower returns the power in [lo, hi): the mean density summed over
// the bins in range times the bin width. The result is in squared signal
// units and does not depend on the frame size.
func (s *Spectrogram) BandPower(lo, hi float64) float64 {
	return integrate(s.Mean(), s.Freqs, lo, hi)
}

// PeakFrequency returns the frequency of the largest mean density bin.
func (s *Spectrogram) PeakFrequency() float64 {
	mean := s.Mean()
	best := 0
	for k, v := range mean {
		if v > mean[best] {
			best = k
		}
	}

	return s.Freqs[best]
}

func integrate(psd, freqs []float64, lo, hi float64) float64 {
	if len(freqs) < 2 {
		return 0
	}

	df := freqs[1] - freqs[0]
	var sum float64
	for k, f := range freqs {
		if f >= lo && f < hi {
			sum += psd[k]
		}
	}

	return sum * df
}

// Band is a named frequency range [Lo, Hi) in Hz.
type Band struct {
	Name string
	Lo   float64
	Hi   float64
}

// DefaultBands are the frequency bands used for sleep scoring.
var DefaultBands = []Band{
	{Name: "delta", Lo: 0.5, Hi: 4},
	{Name: "theta", Lo: 4, Hi: 8},
	{Name: "alpha", Lo: 8, Hi: 12},
	{Name: "sigma", Lo: 12, Hi: 16},
	{Name: "beta", Lo: 16, Hi: 30},
}

// Bands returns the band power of every row of m, indexed [row][band].
// A nil bands slice uses DefaultBands.
func Bands(m *signal.Matrix, sampleRate float64, bands []Band, opts ...Option) ([][]float64, error) {
	if bands == nil {
		bands = DefaultBands
	}

	out := make([][]float64, m.Rows())
	for i := range out {
		sg, err := Compute(m.Row(i), sampleRate, opts...)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		mean := sg.Mean()
		out[i] = make([]float64, len(bands))
		for b, band := range bands {
			out[i][b] = integrate(mean, sg.Freqs, band.Lo, band.Hi)
		}
	}

	return out, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func defaultFrameSize(sampleRate float64, length int) int {
	target := 2 * sampleRate
	if target < 2 {
		target = 2
	}

	lo := 1 << (bits.Len(uint(target)) - 1)
	n := lo
	if float64(2*lo)-target < target-float64(lo) {
		n = 2 * lo
	}

	for n > length && n > 1 {
		n >>= 1
	}

	return n
}
