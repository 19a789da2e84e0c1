// Package channel computes per-channel time-domain statistics of a
// recording, the summary display and scaling code needs for each row.
package channel

import (
	"math"

	"github.com/cwbudde/algo-eeg/eeg/signal"
)

// Stats holds statistics of one channel.
type Stats struct {
	Length        int
	Mean          float64
	Std           float64 // population standard deviation
	Variance      float64
	RMS           float64
	Min           float64
	MinPos        int
	Max           float64
	MaxPos        int
	Dist          float64 // max - min
	Peak          float64 // max(|max|, |min|)
	ZeroCrossings int
}

// Calculate computes all statistics in a single pass using Welford's
// online algorithm for the variance.
func Calculate(row []float32) Stats {
	n := len(row)
	if n == 0 {
		return Stats{}
	}

	var (
		mean          float64
		m2            float64
		sumSq         float64
		maxVal        = float64(row[0])
		maxPos        int
		minVal        = float64(row[0])
		minPos        int
		zeroCrossings int
	)

	for i, v := range row {
		x := float64(v)

		ni := float64(i + 1)
		delta := x - mean
		mean += delta / ni
		m2 += delta * (x - mean)

		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}

		if i > 0 && float64(row[i-1])*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	variance := m2 / nf

	return Stats{
		Length:        n,
		Mean:          mean,
		Std:           math.Sqrt(variance),
		Variance:      variance,
		RMS:           math.Sqrt(sumSq / nf),
		Min:           minVal,
		MinPos:        minPos,
		Max:           maxVal,
		MaxPos:        maxPos,
		Dist:          maxVal - minVal,
		Peak:          math.Max(math.Abs(maxVal), math.Abs(minVal)),
		ZeroCrossings: zeroCrossings,
	}
}

// Summarize returns the statistics of every row of m.
func Summarize(m *signal.Matrix) []Stats {
	out := make([]Stats, m.Rows())
	for i := range out {
		out[i] = Calculate(m.Row(i))
	}

	return out
}

// Mean returns the mean of row, accumulated with Kahan summation.
func Mean(row []float32) float64 {
	if len(row) == 0 {
		return 0
	}

	var sum, c float64
	for _, v := range row {
		y := float64(v) - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(row))
}
