package channel

import (
	"strings"
	"unicode"
)

// DefaultNonEEGPatterns flags electro-oculogram, electromyogram,
// electrocardiogram and abdominal belt channels.
var DefaultNonEEGPatterns = []string{"eog", "emg", "ecg", "abd"}

// Classifier decides whether a channel label denotes an EEG channel.
type Classifier interface {
	IsEEG(label string) bool
}

// SubstringClassifier marks a label non-EEG when it contains any pattern,
// ignoring case. Stems that merely contain a pattern ("Necgx") are
// classified non-EEG too; use TokenClassifier for stricter matching.
type SubstringClassifier struct {
	patterns []string
}

// NewSubstringClassifier lowercases and stores patterns. With no patterns
// every label is EEG.
func NewSubstringClassifier(patterns ...string) *SubstringClassifier {
	return &SubstringClassifier{patterns: lowerAll(patterns)}
}

// DefaultClassifier returns a SubstringClassifier over DefaultNonEEGPatterns.
func DefaultClassifier() *SubstringClassifier {
	return NewSubstringClassifier(DefaultNonEEGPatterns...)
}

// IsEEG implements Classifier.
func (c *SubstringClassifier) IsEEG(label string) bool {
	l := strings.ToLower(label)
	for _, p := range c.patterns {
		if strings.Contains(l, p) {
			return false
		}
	}

	return true
}

// TokenClassifier marks a label non-EEG when one of its alphanumeric
// tokens equals a pattern, ignoring case. "EOG-left" and "ecg 2" match,
// "Fecg1" does not. A token also matches when it is a pattern followed by
// digits only ("EMG1").
type TokenClassifier struct {
	patterns map[string]struct{}
}

// NewTokenClassifier builds a TokenClassifier.
func NewTokenClassifier(patterns ...string) *TokenClassifier {
	set := make(map[string]struct{}, len(patterns))
	for _, p := range lowerAll(patterns) {
		set[p] = struct{}{}
	}

	return &TokenClassifier{patterns: set}
}

// IsEEG implements Classifier.
func (c *TokenClassifier) IsEEG(label string) bool {
	tokens := strings.FieldsFunc(strings.ToLower(label), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		if _, ok := c.patterns[tok]; ok {
			return false
		}
		if _, ok := c.patterns[strings.TrimRightFunc(tok, unicode.IsDigit)]; ok {
			return false
		}
	}

	return true
}

// Classify returns a mask that is true where c considers the label EEG.
func Classify(c Classifier, labels []string) []bool {
	mask := make([]bool, len(labels))
	for i, l := range labels {
		mask[i] = c.IsEEG(l)
	}

	return mask
}

// EEGMask classifies labels with case-insensitive substring patterns.
// An empty pattern list yields an all-true mask.
func EEGMask(labels []string, patterns ...string) []bool {
	return Classify(NewSubstringClassifier(patterns...), labels)
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}

	return out
}
