package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-eeg/eeg/recording"
)

func load(t *testing.T, labels []string, values ...float64) *recording.Recording {
	t.Helper()
	data := make([][]float64, len(values))
	for i, v := range values {
		data[i] = []float64{v, v, v, v}
	}
	rec, err := recording.Load(recording.Input{Data: data, Channels: labels, SampleRate: 4})
	require.NoError(t, err)
	return rec
}

func TestRunReference(t *testing.T) {
	rec := load(t, []string{"C3", "C4", "Cz", "EOG1"}, 5, 7, 1, 100)
	cfg := DefaultConfig()
	cfg.Montage = MontageConfig{Scheme: SchemeReference, Reference: "Cz"}

	res, err := Run(rec, cfg)
	require.NoError(t, err)

	assert.Equal(t, SchemeReference, res.Scheme)
	assert.Equal(t, []bool{false, false, false, true}, res.Ignored)
	assert.Equal(t, []bool{true, true, false, false}, res.Consider)
	assert.Equal(t, []string{"C3-Cz", "C4-Cz", "Cz", "EOG1"}, rec.Labels())
	assert.Equal(t, []string{"C3-Cz", "C4-Cz"}, res.Considered(rec.Channels))
	assert.Equal(t, float32(4), rec.Data.At(0, 0))
	assert.Equal(t, float32(100), rec.Data.At(3, 0))
}

func TestRunBipolarWithExplicitIgnore(t *testing.T) {
	rec := load(t, []string{"h1", "h2", "h3", "ECG"}, 10, 5, 2, 0)
	cfg := DefaultConfig()
	cfg.Montage.Scheme = SchemeBipolar
	cfg.Ignore.Channels = []string{"h1"}

	res, err := Run(rec, cfg)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false, false, true}, res.Ignored)
	assert.Equal(t, []bool{false, false, true, false}, res.Consider)
	assert.Equal(t, []string{"h1", "h2", "h3-h2", "ECG"}, rec.Labels())
	assert.Equal(t, float32(-3), rec.Data.At(2, 1))
}

func TestRunAverage(t *testing.T) {
	rec := load(t, []string{"a", "b", "c", "emg"}, 1, 2, 6, 50)
	cfg := DefaultConfig()
	cfg.Montage.Scheme = SchemeAverage

	res, err := Run(rec, cfg)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, true, true, false}, res.Consider)
	assert.Equal(t, []string{"a-m", "b-m", "c-m", "emg"}, rec.Labels())
	assert.Equal(t, float32(3), rec.Data.At(2, 3))
}

func TestRunNone(t *testing.T) {
	rec := load(t, []string{"a", "ecg"}, 1, 2)
	res, err := Run(rec, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, SchemeNone, res.Scheme)
	assert.Equal(t, []bool{true, false}, res.Consider)
	assert.Equal(t, []string{"a", "ecg"}, rec.Labels())
}

func TestRunKeepsNonEEGWhenDisabled(t *testing.T) {
	rec := load(t, []string{"a", "ecg"}, 1, 2)
	cfg := DefaultConfig()
	cfg.Ignore.NonEEG = false
	cfg.Montage.Scheme = SchemeAverage

	res, err := Run(rec, cfg)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, res.Consider)
}

func TestRunUnknownChannels(t *testing.T) {
	rec := load(t, []string{"a", "b"}, 1, 2)

	cfg := DefaultConfig()
	cfg.Montage = MontageConfig{Scheme: SchemeReference, Reference: "Cz"}
	_, err := Run(rec, cfg)
	assert.ErrorIs(t, err, ErrUnknownChannel)

	cfg = DefaultConfig()
	cfg.Ignore.Channels = []string{"zz"}
	_, err = Run(rec, cfg)
	assert.ErrorIs(t, err, ErrUnknownChannel)

	_, err = Run(nil, cfg)
	assert.ErrorIs(t, err, ErrNilRecording)
}

func TestConfigInputCarriesDownsample(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Downsample = 2

	in := cfg.Input([][]float64{{1, 2, 3, 4}}, []string{"a"}, 4, nil)
	rec, err := recording.Load(in)
	require.NoError(t, err)
	assert.Equal(t, 2.0, rec.SampleRate)
	assert.Equal(t, []float32{1, 3}, rec.Data.Row(0))
}

func TestIgnoreMaskCombinesClassifierAndChannels(t *testing.T) {
	labels := []string{"C3", "EMG", "C4", "Cz"}

	mask, err := IgnoreMask(labels, IgnoreConfig{NonEEG: true, Channels: []string{"Cz", "EMG"}})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true}, mask)

	mask, err = IgnoreMask(labels, IgnoreConfig{Channels: []string{"C4"}})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, false}, mask)
}
