package montage

import (
	"github.com/cwbudde/algo-eeg/eeg/channel"
	"github.com/cwbudde/algo-eeg/eeg/signal"
)

// Bipolarize derives a bipolar montage along numbered electrodes.
//
// Labels are cleaned first (see channel.Clean and WithSeparator), then each
// label is split into a stem and an electrode number (see WithDigitRun).
// Channel k with stem S and number n is referenced against the channel
// rendered as S followed by n-1 (see channel.Predecessor): row k becomes
// row k minus that row and the name becomes "<label>-<partner>". Channels
// are visited from the highest index down, so a partner with a lower index
// still holds its original samples when it is subtracted. A channel without
// a number, without a partner, or whose partner is ignored is left
// unchanged and marked false.
func Bipolarize(m *signal.Matrix, names channel.Names, opts ...Option) ([]bool, error) {
	cfg := applyOptions(opts)

	ignore, err := prepare(m, names, cfg)
	if err != nil {
		return nil, err
	}

	n := m.Rows()
	for i := range names {
		names[i].Original = channel.Clean(names[i].Original, cfg.separator)
	}

	consider := make([]bool, n)
	for k := n - 1; k >= 0; k-- {
		if ignore[k] {
			continue
		}

		partner, ok := channel.Predecessor(names[k].Original, cfg.digitRun)
		if !ok {
			continue
		}

		j := names.Index(partner)
		if j < 0 || j == k || ignore[j] {
			continue
		}

		subtractRow(m.Row(k), m.Row(j))
		names[k] = names[k].Derive(partner)
		consider[k] = true
	}

	return consider, nil
}
