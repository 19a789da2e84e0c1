// Package signal provides Matrix, the contiguous float32 channel-by-sample
// buffer every conditioning step operates on.
//
// Row i holds the time series of channel i. Rows returned by Row alias the
// backing array, so writes through them are visible in the matrix; this is
// how the montage transforms mutate a recording in place. Use Clone when the
// original samples must be kept.
package signal
