package pipeline

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-eeg/eeg/channel"
)

// Scheme names a montage.
type Scheme string

const (
	SchemeNone      Scheme = "none"
	SchemeReference Scheme = "reference"
	SchemeBipolar   Scheme = "bipolar"
	SchemeAverage   Scheme = "average"
)

// ClassifierKind names a channel classifier.
type ClassifierKind string

const (
	ClassifierSubstring ClassifierKind = "substring"
	ClassifierToken     ClassifierKind = "token"
)

// Config describes one conditioning run.
type Config struct {
	// Downsample is the display rate in Hz; 0 keeps the sampling rate.
	Downsample float64       `yaml:"downsample,omitempty"`
	Montage    MontageConfig `yaml:"montage"`
	Ignore     IgnoreConfig  `yaml:"ignore"`
}

// MontageConfig selects and parameterizes the montage.
type MontageConfig struct {
	Scheme Scheme `yaml:"scheme"`
	// Reference is the label of the reference channel (scheme reference).
	Reference string `yaml:"reference,omitempty"`
	// Separator cuts instrument suffixes from labels (scheme bipolar).
	Separator *string `yaml:"separator,omitempty"`
	// DigitRun is "first" or "trailing" (scheme bipolar).
	DigitRun string `yaml:"digit_run,omitempty"`
}

// IgnoreConfig selects channels excluded from the montage.
type IgnoreConfig struct {
	// NonEEG excludes channels the classifier does not consider EEG.
	NonEEG     bool           `yaml:"non_eeg"`
	Classifier ClassifierKind `yaml:"classifier,omitempty"`
	// Patterns overrides channel.DefaultNonEEGPatterns.
	Patterns []string `yaml:"patterns,omitempty"`
	// Channels lists labels to exclude explicitly.
	Channels []string `yaml:"channels,omitempty"`
}

// DefaultConfig returns a configuration that leaves data unchanged and
// ignores non-EEG channels.
func DefaultConfig() Config {
	return Config{
		Montage: MontageConfig{Scheme: SchemeNone},
		Ignore: IgnoreConfig{
			NonEEG:     true,
			Classifier: ClassifierSubstring,
		},
	}
}

// LoadConfig reads and validates a YAML configuration. Fields absent from
// the file keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes and validates a YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal encodes cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config YAML: %w", err)
	}

	return data, nil
}

// Validate checks field values and normalizes case.
func (c *Config) Validate() error {
	if c.Downsample < 0 {
		return fmt.Errorf("downsample must be >= 0, got %v", c.Downsample)
	}

	c.Montage.Scheme = Scheme(strings.ToLower(strings.TrimSpace(string(c.Montage.Scheme))))
	switch c.Montage.Scheme {
	case "":
		c.Montage.Scheme = SchemeNone
	case SchemeNone, SchemeBipolar, SchemeAverage:
	case SchemeReference:
		if c.Montage.Reference == "" {
			return fmt.Errorf("montage.reference is required for scheme %q", SchemeReference)
		}
	default:
		return fmt.Errorf("montage.scheme %q is not one of none, reference, bipolar, average", c.Montage.Scheme)
	}

	if _, err := channel.ParseDigitRun(c.Montage.DigitRun); err != nil {
		return fmt.Errorf("montage.digit_run: %w", err)
	}

	c.Ignore.Classifier = ClassifierKind(strings.ToLower(strings.TrimSpace(string(c.Ignore.Classifier))))
	switch c.Ignore.Classifier {
	case "":
		c.Ignore.Classifier = ClassifierSubstring
	case ClassifierSubstring, ClassifierToken:
	default:
		return fmt.Errorf("ignore.classifier %q is not one of substring, token", c.Ignore.Classifier)
	}

	return nil
}

// separator returns the configured separator or the default.
func (m MontageConfig) separator() string {
	if m.Separator == nil {
		return channel.DefaultSeparator
	}

	return *m.Separator
}

// classifier builds the configured channel classifier.
func (ic IgnoreConfig) classifier() channel.Classifier {
	patterns := ic.Patterns
	if patterns == nil {
		patterns = channel.DefaultNonEEGPatterns
	}

	if ic.Classifier == ClassifierToken {
		return channel.NewTokenClassifier(patterns...)
	}

	return channel.NewSubstringClassifier(patterns...)
}
