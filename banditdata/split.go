package banditdata

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrNotSplit is returned when feedback or ground-truth operations run
// before SplitTrainEval has partitioned the dataset.
var ErrNotSplit = errors.New("banditdata: SplitTrainEval must be called first")

// SplitTrainEval partitions the rounds into a training set (used to fit
// base classifiers) and an evaluation set (used to generate feedback and
// score policies) with a shuffle driven by seed. evalSize in (0, 1) is a
// fraction of rounds, rounded up; evalSize >= 1 must be an integer and is
// an absolute evaluation row count. Any previous split and everything
// derived from it is replaced.
func (m *MultiClass) SplitTrainEval(evalSize float64, seed uint64) error {
	n := m.NRounds()
	nEv, err := resolveEvalSize(evalSize, n)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)
	ev, tr := perm[:nEv], perm[nEv:]

	m.xEv = gatherRows(m.x, ev)
	m.yEv = gatherLabels(m.y, ev)
	m.yFullEv = gatherRows(m.yFull, ev)
	m.xTr = gatherRows(m.x, tr)
	m.yTr = gatherLabels(m.y, tr)
	m.split = true
	return nil
}

func resolveEvalSize(evalSize float64, n int) (int, error) {
	if evalSize <= 0 {
		return 0, errors.Errorf("banditdata: evaluation size must be positive, got %v", evalSize)
	}
	var nEv int
	if evalSize < 1 {
		nEv = int(math.Ceil(evalSize * float64(n)))
	} else {
		if evalSize != math.Trunc(evalSize) {
			return 0, errors.Errorf("banditdata: absolute evaluation size must be an integer, got %v", evalSize)
		}
		nEv = int(evalSize)
	}
	if nEv >= n {
		return 0, errors.Errorf("banditdata: evaluation size %d leaves no training rounds out of %d", nEv, n)
	}
	return nEv, nil
}

func gatherRows(src [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = src[j]
	}
	return out
}

func gatherLabels(src []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = src[j]
	}
	return out
}
