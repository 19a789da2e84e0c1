package rate

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eeg/eeg/diag"
)

// ErrInvalidRate indicates a non-positive or non-finite rate.
var ErrInvalidRate = errors.New("rate: invalid sample rate")

// Divides reports whether desired divides sampleRate exactly.
func Divides(sampleRate, desired float64) bool {
	return math.Mod(sampleRate, desired) == 0
}

// Reconcile returns a down-sampling rate that divides sampleRate.
//
// When desired already divides sampleRate it is returned unchanged together
// with a zero Diagnostic. Otherwise the candidate
// round(sampleRate / round(sampleRate/desired)) is decremented until it
// divides sampleRate (or reaches 1), and a SamplingRateMismatch diagnostic
// names the requested, original and substituted rates. Rounding is half to
// even. Only invalid inputs produce an error.
func Reconcile(sampleRate, desired float64) (float64, diag.Diagnostic, error) {
	if err := validate(sampleRate, "sampling"); err != nil {
		return 0, diag.Diagnostic{}, err
	}
	if err := validate(desired, "down-sampling"); err != nil {
		return 0, diag.Diagnostic{}, err
	}

	if Divides(sampleRate, desired) {
		return desired, diag.Diagnostic{}, nil
	}

	factor := math.Max(1, math.RoundToEven(sampleRate/desired))
	ds := math.Max(1, math.RoundToEven(sampleRate/factor))
	for ds > 1 && !Divides(sampleRate, ds) {
		ds--
	}

	d := diag.New(diag.SamplingRateMismatch,
		"using a down-sampling frequency (%shz) that is not a multiple of the sampling frequency (%shz) is not recommended; %shz will be used instead",
		formatRate(desired), formatRate(sampleRate), formatRate(ds))

	return ds, d, nil
}

// Check runs Reconcile and forwards a non-zero diagnostic to r.
func Check(sampleRate, desired float64, r diag.Reporter) (float64, error) {
	ds, d, err := Reconcile(sampleRate, desired)
	if err != nil {
		return 0, err
	}
	if r != nil && !d.IsZero() {
		r.Report(d)
	}

	return ds, nil
}

func validate(v float64, what string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s rate %v", ErrInvalidRate, what, v)
	}

	return nil
}

func formatRate(v float64) string {
	return fmt.Sprintf("%g", v)
}
