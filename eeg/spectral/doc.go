// Package spectral estimates per-channel power spectra of conditioned
// recordings.
//
// Compute slides a periodic Hann window (see WithWindow) over one channel
// and returns a spectrogram of one-sided power spectral densities
// (units^2/Hz). Averaging the frames gives Welch's estimate, from which
// BandPower integrates the power of a frequency band. Bands applies this
// to every row of a matrix using the classic sleep bands (delta, theta,
// alpha, sigma, beta).
package spectral
