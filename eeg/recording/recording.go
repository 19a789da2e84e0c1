package recording

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eeg/eeg/channel"
	"github.com/cwbudde/algo-eeg/eeg/diag"
	"github.com/cwbudde/algo-eeg/eeg/hypno"
	"github.com/cwbudde/algo-eeg/eeg/rate"
	"github.com/cwbudde/algo-eeg/eeg/signal"
	chstats "github.com/cwbudde/algo-eeg/stats/channel"
)

// ErrChannelCountMismatch indicates that neither data dimension matches the
// number of channel labels.
var ErrChannelCountMismatch = errors.New("recording: channel count mismatch")

// Input is the raw output of a loader.
type Input struct {
	// Data is (channels x samples); (samples x channels) is accepted and
	// transposed.
	Data [][]float64
	// Channels labels the rows. When nil, default labels are generated.
	Channels []string
	// SampleRate of Data in Hz.
	SampleRate float64
	// Hypnogram aligned with the samples; nil for none.
	Hypnogram []float64
	// Downsample is the desired display rate in Hz; 0 keeps the full rate.
	Downsample float64
}

// Recording is a validated recording.
type Recording struct {
	// SampleRate of Data after down-sampling.
	SampleRate float64
	// OriginalRate is the sampling rate before down-sampling.
	OriginalRate float64
	// OriginalSamples is the sample count before down-sampling.
	OriginalSamples int
	Data            *signal.Matrix
	Channels        channel.Names
	Hypnogram       []float32
	// Time holds the time in seconds of every kept sample.
	Time        []float32
	Diagnostics []diag.Diagnostic
}

type config struct {
	reporter  diag.Reporter
	separator string
}

// Option configures Load.
type Option func(*config)

// WithReporter forwards every diagnostic to r as it is produced.
// Default diag.Discard.
func WithReporter(r diag.Reporter) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.reporter = r
		}
	}
}

// WithSeparator sets the separator used to clean channel labels. Default ".".
func WithSeparator(sep string) Option {
	return func(cfg *config) {
		cfg.separator = sep
	}
}

// Load validates in and returns a Recording.
func Load(in Input, opts ...Option) (*Recording, error) {
	cfg := config{separator: channel.DefaultSeparator, reporter: diag.Discard}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var collected diag.Collector
	report := diag.Multi(&collected, cfg.reporter)

	sf := in.SampleRate
	if math.IsNaN(sf) || math.IsInf(sf, 0) || sf <= 0 {
		return nil, fmt.Errorf("%w: sampling frequency must be a positive number (e.g. 1024, 512), got %v", signal.ErrInvalidShape, sf)
	}

	data, err := signal.FromFloat64Rows(in.Data)
	if err != nil {
		return nil, fmt.Errorf("data must be a 2D array: %w", err)
	}

	labels := in.Channels
	if labels == nil {
		labels = defaultLabels(data.Rows())
		report.Report(diag.New(diag.MissingField,
			"no channel names given; using %d default names", len(labels)))
	}

	nchan := len(labels)
	switch {
	case data.Rows() == nchan:
	case data.Cols() == nchan:
		report.Report(diag.New(diag.Orientation,
			"data organized as (n_time_points, n_channels); transposed to (n_channels, n_time_points)"))
		data = data.Transpose()
	default:
		return nil, fmt.Errorf("%w: %d channels not found in data shape (%d, %d)",
			ErrChannelCountMismatch, nchan, data.Rows(), data.Cols())
	}

	npts := data.Cols()
	hyp, d := hypno.Validate(in.Hypnogram, npts)
	report.Report(d)

	rec := &Recording{
		SampleRate:      sf,
		OriginalRate:    sf,
		OriginalSamples: npts,
		Data:            data,
		Channels:        channel.NewNames(channel.CleanAll(labels, cfg.separator)),
		Hypnogram:       hyp,
		Time:            timeVector(npts, sf),
	}

	if in.Downsample != 0 {
		if err := rec.downsample(in.Downsample, report); err != nil {
			return nil, err
		}
	}

	rec.Diagnostics = collected.Diagnostics()

	return rec, nil
}

func (r *Recording) downsample(desired float64, report diag.Reporter) error {
	ds, err := rate.Check(r.SampleRate, desired, report)
	if err != nil {
		return fmt.Errorf("recording: down-sampling: %w", err)
	}

	factor, err := rate.Factor(r.SampleRate, ds)
	if err != nil {
		return fmt.Errorf("recording: down-sampling: %w", err)
	}
	if factor > 1 {
		r.Data = rate.Decimate(r.Data, factor)
		r.Time = rate.DecimateSlice(r.Time, factor)
		r.Hypnogram = hypno.Decimate(r.Hypnogram, factor)
	}
	r.SampleRate = ds

	return nil
}

// Labels returns the rendered channel names.
func (r *Recording) Labels() []string {
	return r.Channels.Strings()
}

// Duration returns the recording length in seconds.
func (r *Recording) Duration() float64 {
	return float64(r.OriginalSamples) / r.OriginalRate
}

// Info holds per-channel amplitude information.
type Info struct {
	Min  []float64
	Max  []float64
	Std  []float64
	Mean []float64
	Dist []float64
}

// Info computes min, max, std, mean and max-min for every channel.
func (r *Recording) Info() Info {
	all := chstats.Summarize(r.Data)
	info := Info{
		Min:  make([]float64, len(all)),
		Max:  make([]float64, len(all)),
		Std:  make([]float64, len(all)),
		Mean: make([]float64, len(all)),
		Dist: make([]float64, len(all)),
	}
	for i, s := range all {
		info.Min[i] = s.Min
		info.Max[i] = s.Max
		info.Std[i] = s.Std
		info.Mean[i] = s.Mean
		info.Dist[i] = s.Dist
	}

	return info
}

func defaultLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("chan%d", i)
	}

	return out
}

func timeVector(n int, sf float64) []float32 {
	t := make([]float32, n)
	for i := range t {
		t[i] = float32(float64(i) / sf)
	}

	return t
}
