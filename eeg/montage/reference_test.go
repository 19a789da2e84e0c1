package montage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-eeg/eeg/channel"
	"github.com/cwbudde/algo-eeg/internal/testutil"
)

func TestRereferenceSubtractsReferenceRow(t *testing.T) {
	m := testutil.NoiseMatrix(3, 4, 128, 50)
	pre := m.Clone()
	names := channel.NewNames([]string{"Fz", "Cz", "Pz", "Oz"})

	consider, err := Rereference(m, names, 1)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false, true, true}, consider)
	assert.Equal(t, []string{"Fz-Cz", "Cz", "Pz-Cz", "Oz-Cz"}, names.Strings())

	for c := 0; c < 4; c++ {
		want := append([]float32(nil), pre.Row(c)...)
		if c != 1 {
			for j := range want {
				want[j] -= pre.At(1, j)
			}
		}
		testutil.RequireSliceNearlyEqual(t, m.Row(c), want, 0)
	}
}

func TestRereferenceIgnoredRowsUntouched(t *testing.T) {
	m := testutil.ConstantRows(4, 1, 2, 3, 10)
	names := channel.NewNames([]string{"C3", "C4", "EOG", "A1"})

	consider, err := Rereference(m, names, 3, WithIgnore([]bool{false, false, true, false}))
	require.NoError(t, err)

	assert.Equal(t, []bool{true, true, false, false}, consider)
	assert.Equal(t, []string{"C3-A1", "C4-A1", "EOG", "A1"}, names.Strings())
	testutil.RequireRowsEqual(t, m, [][]float32{
		{-9, -9, -9, -9},
		{-8, -8, -8, -8},
		{3, 3, 3, 3},
		{10, 10, 10, 10},
	})
}

func TestRereferenceIgnoreIndicesUnion(t *testing.T) {
	m := testutil.ConstantRows(2, 1, 2, 3)
	names := channel.NewNames([]string{"a", "b", "c"})

	consider, err := Rereference(m, names, 0,
		WithIgnore([]bool{false, true, false}),
		WithIgnoreIndices(2),
	)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, consider)
	assert.Equal(t, []string{"a", "b", "c"}, names.Strings())
}

func TestRereferenceErrors(t *testing.T) {
	m := testutil.ConstantRows(2, 1, 2)

	_, err := Rereference(m, channel.NewNames([]string{"a", "b"}), 2)
	assert.ErrorIs(t, err, ErrReferenceIndex)

	_, err = Rereference(m, channel.NewNames([]string{"a", "b"}), -1)
	assert.ErrorIs(t, err, ErrReferenceIndex)

	_, err = Rereference(m, channel.NewNames([]string{"a"}), 0)
	assert.ErrorIs(t, err, ErrChannelCount)

	_, err = Rereference(m, channel.NewNames([]string{"a", "b"}), 0, WithIgnore([]bool{true}))
	assert.ErrorIs(t, err, ErrChannelCount)

	_, err = Rereference(m, channel.NewNames([]string{"a", "b"}), 0, WithIgnoreIndices(5))
	assert.ErrorIs(t, err, ErrIgnoreIndex)

	_, err = Rereference(nil, nil, 0)
	assert.ErrorIs(t, err, ErrNilMatrix)

	testutil.RequireRowsEqual(t, m, [][]float32{{1, 1}, {2, 2}})
}

func TestRereferenceUsesRenderedReferenceName(t *testing.T) {
	m := testutil.ConstantRows(1, 5, 1)
	names := channel.NewNames([]string{"C3", "A2"})
	names[1] = names[1].Derive("m")

	_, err := Rereference(m, names, 1)
	require.NoError(t, err)
	assert.Equal(t, "C3-A2-m", names[0].String())
	assert.Equal(t, []string{"A2-m"}, names[0].Derivations)
}
