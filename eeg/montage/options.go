package montage

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/eeg/channel"
	"github.com/cwbudde/algo-eeg/eeg/signal"
)

type config struct {
	ignoreMask []bool
	ignoreIdx  []int
	separator  string
	digitRun   channel.DigitRun
}

// Option configures a transform.
type Option func(*config)

// WithIgnore excludes every channel whose mask entry is true. The mask
// length must equal the number of channels.
func WithIgnore(mask []bool) Option {
	return func(cfg *config) {
		cfg.ignoreMask = mask
	}
}

// WithIgnoreIndices excludes the listed channels. May be combined with
// WithIgnore; the union is ignored.
func WithIgnoreIndices(idx ...int) Option {
	return func(cfg *config) {
		cfg.ignoreIdx = append(cfg.ignoreIdx, idx...)
	}
}

// WithSeparator sets the label separator used by Bipolarize to drop
// instrument suffixes ("h2.578" -> "h2"). Default ".".
func WithSeparator(sep string) Option {
	return func(cfg *config) {
		cfg.separator = sep
	}
}

// WithDigitRun selects how Bipolarize finds electrode numbers.
// Default channel.FirstDigitRun.
func WithDigitRun(r channel.DigitRun) Option {
	return func(cfg *config) {
		cfg.digitRun = r
	}
}

func defaultConfig() config {
	return config{
		separator: channel.DefaultSeparator,
		digitRun:  channel.FirstDigitRun,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// prepare validates the shared preconditions and resolves the ignore set
// into a mask of length m.Rows().
func prepare(m *signal.Matrix, names channel.Names, cfg config) ([]bool, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	n := m.Rows()
	if len(names) != n {
		return nil, fmt.Errorf("%w: %d names for %d rows", ErrChannelCount, len(names), n)
	}

	ignore := make([]bool, n)
	if cfg.ignoreMask != nil {
		if len(cfg.ignoreMask) != n {
			return nil, fmt.Errorf("%w: ignore mask has %d entries for %d rows", ErrChannelCount, len(cfg.ignoreMask), n)
		}
		copy(ignore, cfg.ignoreMask)
	}

	for _, i := range cfg.ignoreIdx {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIgnoreIndex, i, n)
		}
		ignore[i] = true
	}

	return ignore, nil
}

// IgnoreMask converts an index list into a boolean mask of length n.
// Out-of-range indices are skipped.
func IgnoreMask(n int, idx ...int) []bool {
	mask := make([]bool, n)
	for _, i := range idx {
		if i >= 0 && i < n {
			mask[i] = true
		}
	}

	return mask
}
