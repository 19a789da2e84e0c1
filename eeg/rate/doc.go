// Package rate reconciles down-sampling rates with the sampling rate of a
// recording and decimates signals by an integer stride.
//
// Display code down-samples by keeping every f-th sample, which only yields
// the requested rate when it divides the sampling rate. Reconcile replaces
// a non-dividing rate by a nearby integer divisor and reports the change as
// a diag.SamplingRateMismatch warning:
//
//	ds, d, _ := rate.Reconcile(1000, 97) // ds == 100, d.Kind == SamplingRateMismatch
package rate
