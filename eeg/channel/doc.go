// Package channel models channel labels and classifies channels.
//
// A Name keeps the label a channel was recorded under separately from the
// derivations applied to it (reference, bipolar partner, common average).
// Its rendered form is identical to the string naming convention used by
// display code, e.g. "C3-Cz", "h2-h1" or "Fp1-m":
//
//	n := channel.NewName("C3").Derive("Cz")
//	n.String() // "C3-Cz"
//
// Classification of EEG versus auxiliary channels (EOG, EMG, ECG, ...) is
// pluggable through the Classifier interface.
package channel
