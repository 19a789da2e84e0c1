// Package recording assembles a validated, display-ready recording from
// plain in-memory inputs produced by a file loader.
//
// Load checks the sampling rate and the data shape, fixes a transposed
// layout, validates the hypnogram, builds the time vector and optionally
// down-samples everything to a reconciled rate. Structural problems are
// returned as errors; data-quality problems are repaired and reported as
// diagnostics.
package recording
