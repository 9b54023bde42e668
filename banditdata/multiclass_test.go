package banditdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opelib/opelib/classifier"
)

func TestNewMultiClassValidation(t *testing.T) {
	X := [][]float64{{1, 2}, {3, 4}}
	y := []int{0, 1}

	_, err := NewMultiClass(X, y, nil, 0.8)
	assert.Error(t, err, "nil classifier")

	_, err = NewMultiClass(X, y, &classifier.NearestCentroid{}, -0.1)
	assert.Error(t, err, "negative alpha")

	_, err = NewMultiClass(X, y, &classifier.NearestCentroid{}, 1.0)
	assert.Error(t, err, "alpha of 1 has no support outside the prediction")

	_, err = NewMultiClass(nil, nil, &classifier.NearestCentroid{}, 0.8)
	assert.Error(t, err, "empty dataset")

	_, err = NewMultiClass(X, []int{0}, &classifier.NearestCentroid{}, 0.8)
	assert.Error(t, err, "label count mismatch")

	_, err = NewMultiClass([][]float64{{1, 2}, {3}}, y, &classifier.NearestCentroid{}, 0.8)
	assert.Error(t, err, "ragged feature matrix")

	_, err = NewMultiClass([][]float64{{}, {}}, y, &classifier.NearestCentroid{}, 0.8)
	assert.Error(t, err, "empty feature rows")
}

func TestLabelNormalization(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}, {4}}
	y := []int{7, 3, 7, 10}

	m, err := NewMultiClass(X, y, &classifier.NearestCentroid{}, 0.8)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 1, 2}, m.y, "labels re-indexed by numeric order")
	assert.Equal(t, 3, m.NActions(), "")
	assert.Equal(t, 4, m.NRounds(), "")

	for i, row := range m.yFull {
		require.Len(t, row, 3, "")
		for j, v := range row {
			if j == m.y[i] {
				assert.Equal(t, 1.0, v, "one-hot at the true class")
			} else {
				assert.Equal(t, 0.0, v, "")
			}
		}
	}
}

func TestAccessors(t *testing.T) {
	X, y := fourClusterData(20)
	m, err := NewMultiClass(X, y, &classifier.NearestCentroid{}, 0.8, WithDatasetName("four-clusters"))
	require.NoError(t, err)

	assert.Equal(t, 4, m.NActions(), "")
	assert.Equal(t, 20, m.NRounds(), "")
	assert.Equal(t, 0, m.NRoundsEval(), "no split yet")
	assert.Equal(t, 1, m.LenList(), "")
	assert.Equal(t, "four-clusters", m.DatasetName(), "")

	require.NoError(t, m.SplitTrainEval(0.25, 1))
	assert.Equal(t, 5, m.NRoundsEval(), "")
}
