// Package hypno validates sleep-stage hypnograms aligned with a recording.
//
// Stages follow Iber et al. (2007):
//
//	-1 artefact (optional)
//	 0 wake
//	 1 N1
//	 2 N2
//	 3 N3
//	 4 REM
package hypno

import (
	"math"

	"github.com/cwbudde/algo-eeg/eeg/diag"
	"github.com/cwbudde/algo-eeg/eeg/rate"
)

// Stage is a sleep stage code.
type Stage int

const (
	Artefact Stage = -1
	Wake     Stage = 0
	N1       Stage = 1
	N2       Stage = 2
	N3       Stage = 3
	REM      Stage = 4
)

// MinStage and MaxStage bound valid hypnogram values.
const (
	MinStage = Artefact
	MaxStage = REM
)

var stageNames = map[Stage]string{
	Artefact: "Art",
	Wake:     "Wake",
	N1:       "N1",
	N2:       "N2",
	N3:       "N3",
	REM:      "REM",
}

// String returns the conventional stage label.
func (s Stage) String() string {
	if n, ok := stageNames[s]; ok {
		return n
	}

	return "Unknown"
}

// Validate returns h as float32 when it has npts samples, all within
// [MinStage, MaxStage]. A nil h yields a zero hypnogram without diagnostic.
// Any other invalid h is replaced by a zero hypnogram and an
// OutOfRangeHypnogram diagnostic is returned.
func Validate(h []float64, npts int) ([]float32, diag.Diagnostic) {
	if npts < 0 {
		npts = 0
	}
	if h == nil {
		return make([]float32, npts), diag.Diagnostic{}
	}

	if len(h) != npts {
		return make([]float32, npts), diag.New(diag.OutOfRangeHypnogram,
			"hypnogram has %d values for %d samples; an empty hypnogram will be used instead", len(h), npts)
	}

	lo, hi := float64(MinStage), float64(MaxStage)
	for i, v := range h {
		if math.IsNaN(v) || v < lo || v > hi {
			return make([]float32, npts), diag.New(diag.OutOfRangeHypnogram,
				"hypnogram value %v at sample %d is outside [%d, %d]; an empty hypnogram will be used instead", v, i, int(lo), int(hi))
		}
	}

	out := make([]float32, npts)
	for i, v := range h {
		out[i] = float32(v)
	}

	return out, diag.Diagnostic{}
}

// Decimate keeps every factor-th stage value.
func Decimate(h []float32, factor int) []float32 {
	return rate.DecimateSlice(h, factor)
}

// Counts returns the number of samples per stage. Values that are not a
// known stage are ignored.
func Counts(h []float32) map[Stage]int {
	out := make(map[Stage]int, len(stageNames))
	for _, v := range h {
		s := Stage(v)
		if float32(s) != v {
			continue
		}
		if _, ok := stageNames[s]; ok {
			out[s]++
		}
	}

	return out
}
