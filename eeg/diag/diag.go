// Package diag carries non-fatal data-quality diagnostics.
//
// Structural problems (wrong shapes, unknown channels) are returned as
// errors. Everything that can be repaired with a safe substitute, such as a
// down-sampling rate that does not divide the sampling rate or a hypnogram
// with out-of-range stages, is reported as a Diagnostic and processing
// continues with the substituted value.
package diag

import (
	"fmt"
	"log"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// None marks the zero Diagnostic.
	None Kind = iota
	// SamplingRateMismatch: the requested down-sampling rate was replaced
	// by an integer divisor of the sampling rate.
	SamplingRateMismatch
	// OutOfRangeHypnogram: hypnogram values or length were invalid and a
	// zero hypnogram was substituted.
	OutOfRangeHypnogram
	// MissingField: a required input was absent and a default was used.
	MissingField
	// Orientation: data was laid out as (samples, channels) and was transposed.
	Orientation
)

var kindNames = map[Kind]string{
	None:                 "none",
	SamplingRateMismatch: "sampling-rate-mismatch",
	OutOfRangeHypnogram:  "out-of-range-hypnogram",
	MissingField:         "missing-field",
	Orientation:          "orientation",
}

// String returns the kebab-case name of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Diagnostic is a warning-level, non-fatal report.
type Diagnostic struct {
	Kind    Kind
	Message string
}

// New returns a Diagnostic with a formatted message.
func New(kind Kind, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsZero reports whether d carries no diagnostic.
func (d Diagnostic) IsZero() bool {
	return d.Kind == None && d.Message == ""
}

// String renders d as "<kind>: <message>".
func (d Diagnostic) String() string {
	return d.Kind.String() + ": " + d.Message
}

// Reporter receives diagnostics as they are produced.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// Collector accumulates diagnostics in order of arrival.
type Collector struct {
	items []Diagnostic
}

// Report appends d unless it is the zero Diagnostic.
func (c *Collector) Report(d Diagnostic) {
	if d.IsZero() {
		return
	}
	c.items = append(c.items, d)
}

// Diagnostics returns the collected diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.items
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	return len(c.items)
}

// LogReporter writes each diagnostic as a WARNING line to l.
// A nil logger uses log.Default().
func LogReporter(l *log.Logger) Reporter {
	if l == nil {
		l = log.Default()
	}

	return ReporterFunc(func(d Diagnostic) {
		if d.IsZero() {
			return
		}
		l.Printf("WARNING: %s", d)
	})
}

// Multi fans a diagnostic out to every non-nil reporter.
func Multi(reporters ...Reporter) Reporter {
	return ReporterFunc(func(d Diagnostic) {
		for _, r := range reporters {
			if r != nil {
				r.Report(d)
			}
		}
	})
}
