package channel

import (
	"fmt"
	"strings"
)

// DefaultSeparator cuts instrument suffixes such as "h2.578" down to "h2".
const DefaultSeparator = "."

// Clean trims label, removes inner spaces and drops everything from the
// first occurrence of sep. An empty sep disables the cut.
func Clean(label, sep string) string {
	s := strings.ReplaceAll(strings.TrimSpace(label), " ", "")
	if sep == "" {
		return s
	}
	if i := strings.Index(s, sep); i >= 0 {
		s = s[:i]
	}

	return s
}

// CleanAll applies Clean to every label.
func CleanAll(labels []string, sep string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = Clean(l, sep)
	}

	return out
}

// DigitRun selects which run of digits numbers an electrode.
type DigitRun int

const (
	// FirstDigitRun uses the first run of digits anywhere in the label;
	// the stem is everything before it ("EEG1x" -> "EEG", 1). This matches
	// the naming convention of the source instruments.
	FirstDigitRun DigitRun = iota
	// TrailingDigitRun only accepts a run of digits that ends the label
	// ("EEG1x" has no number, "h12" -> "h", 12).
	TrailingDigitRun
)

// String returns "first" or "trailing".
func (r DigitRun) String() string {
	switch r {
	case FirstDigitRun:
		return "first"
	case TrailingDigitRun:
		return "trailing"
	default:
		return fmt.Sprintf("DigitRun(%d)", int(r))
	}
}

// ParseDigitRun parses "first" or "trailing". An empty string selects
// FirstDigitRun.
func ParseDigitRun(s string) (DigitRun, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first":
		return FirstDigitRun, nil
	case "trailing":
		return TrailingDigitRun, nil
	default:
		return 0, fmt.Errorf("channel: unknown digit run %q", s)
	}
}

// Split separates label into a stem and the decimal digits of its
// electrode number. ok is false when the label carries no number.
func Split(label string, run DigitRun) (stem, digits string, ok bool) {
	start, end := -1, -1

	switch run {
	case TrailingDigitRun:
		end = len(label)
		start = end
		for start > 0 && isDigit(label[start-1]) {
			start--
		}
		if start == end {
			return "", "", false
		}
	default:
		for i := 0; i < len(label); i++ {
			if isDigit(label[i]) {
				start = i
				break
			}
		}
		if start < 0 {
			return "", "", false
		}
		end = start
		for end < len(label) && isDigit(label[end]) {
			end++
		}
	}

	return label[:start], label[start:end], true
}

// Predecessor returns the label of the electrode numbered one below label
// ("h12" -> "h11", "C03" -> "C2", "x0" -> "x-1"). Numbers of any length
// are supported.
func Predecessor(label string, run DigitRun) (string, bool) {
	stem, digits, ok := Split(label, run)
	if !ok {
		return "", false
	}

	return stem + decrement(digits), true
}

// decrement subtracts one from a non-negative decimal string and returns
// the result without leading zeros.
func decrement(digits string) string {
	d := strings.TrimLeft(digits, "0")
	if d == "" {
		return "-1"
	}

	b := []byte(d)
	i := len(b) - 1
	for b[i] == '0' {
		b[i] = '9'
		i--
	}
	b[i]--

	if out := strings.TrimLeft(string(b), "0"); out != "" {
		return out
	}

	return "0"
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
