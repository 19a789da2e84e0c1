// Package pipeline runs a configured conditioning pass over a recording:
// select the channels to ignore, apply the montage in place and report
// which channels are usable downstream.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-eeg/eeg/channel"
	"github.com/cwbudde/algo-eeg/eeg/montage"
	"github.com/cwbudde/algo-eeg/eeg/recording"
)

var (
	// ErrUnknownChannel indicates a configured label absent from the recording.
	ErrUnknownChannel = errors.New("pipeline: unknown channel")
	// ErrNilRecording indicates a nil recording argument.
	ErrNilRecording = errors.New("pipeline: nil recording")
)

// Result describes a completed run.
type Result struct {
	Scheme Scheme
	// Consider is true for channels usable downstream.
	Consider []bool
	// Ignored is the ignore mask that was applied.
	Ignored []bool
}

// Considered returns the rendered names of the considered channels.
func (r Result) Considered(names channel.Names) []string {
	var out []string
	for i, ok := range r.Consider {
		if ok && i < len(names) {
			out = append(out, names[i].String())
		}
	}

	return out
}

// IgnoreMask resolves cfg's ignore section against labels.
func IgnoreMask(labels []string, cfg IgnoreConfig) ([]bool, error) {
	idx := make([]int, 0, len(cfg.Channels))
	for _, l := range cfg.Channels {
		i := indexOf(labels, l)
		if i < 0 {
			return nil, fmt.Errorf("%w: ignore.channels %q", ErrUnknownChannel, l)
		}
		idx = append(idx, i)
	}

	mask := montage.IgnoreMask(len(labels), idx...)
	if cfg.NonEEG {
		for i, eeg := range channel.Classify(cfg.classifier(), labels) {
			mask[i] = mask[i] || !eeg
		}
	}

	return mask, nil
}

// Transform builds the montage described by cfg for a recording with the
// given labels and ignore mask.
func Transform(cfg MontageConfig, labels []string, ignore []bool) (montage.Transform, error) {
	opts := []montage.Option{montage.WithIgnore(ignore)}

	switch cfg.Scheme {
	case SchemeNone, "":
		return montage.Passthrough(opts...), nil
	case SchemeReference:
		ref := indexOf(labels, cfg.Reference)
		if ref < 0 {
			return nil, fmt.Errorf("%w: montage.reference %q", ErrUnknownChannel, cfg.Reference)
		}
		return montage.Reference(ref, opts...), nil
	case SchemeBipolar:
		run, err := channel.ParseDigitRun(cfg.DigitRun)
		if err != nil {
			return nil, err
		}
		opts = append(opts, montage.WithSeparator(cfg.separator()), montage.WithDigitRun(run))
		return montage.Bipolar(opts...), nil
	case SchemeAverage:
		return montage.Average(opts...), nil
	default:
		return nil, fmt.Errorf("pipeline: unknown scheme %q", cfg.Scheme)
	}
}

// Run applies cfg's ignore selection and montage to rec in place.
// Down-sampling is handled when the recording is loaded (see Input).
func Run(rec *recording.Recording, cfg Config) (Result, error) {
	if rec == nil {
		return Result{}, ErrNilRecording
	}

	labels := rec.Labels()
	ignore, err := IgnoreMask(labels, cfg.Ignore)
	if err != nil {
		return Result{}, err
	}

	t, err := Transform(cfg.Montage, labels, ignore)
	if err != nil {
		return Result{}, err
	}

	consider, err := t.Apply(rec.Data, rec.Channels)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %s montage: %w", cfg.Montage.Scheme, err)
	}

	scheme := cfg.Montage.Scheme
	if scheme == "" {
		scheme = SchemeNone
	}

	return Result{Scheme: scheme, Consider: consider, Ignored: ignore}, nil
}

// Input builds a recording.Input carrying cfg's down-sampling rate.
func (c Config) Input(data [][]float64, labels []string, sampleRate float64, hyp []float64) recording.Input {
	return recording.Input{
		Data:       data,
		Channels:   labels,
		SampleRate: sampleRate,
		Hypnogram:  hyp,
		Downsample: c.Downsample,
	}
}

func indexOf(labels []string, label string) int {
	for i, l := range labels {
		if l == label {
			return i
		}
	}

	return -1
}
