// Package banditdata converts multi-class classification data into
// synthetic logged bandit feedback, so that off-policy evaluation
// estimators can be benchmarked against an exactly known ground truth.
//
// A deterministic classifier is turned into a stochastic behavior policy by
// mixing its hard predictions with a uniform random policy, one action is
// sampled per evaluation round under that policy, and the factual reward is
// revealed from the fully observed labels. Because every label is known,
// the true value of any evaluation policy is computable by plain averaging.
package banditdata

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/opelib/opelib/classifier"
)

// MultiClass owns a normalized classification dataset and derives bandit
// feedback from it. It is not safe for concurrent use: SplitTrainEval
// replaces the train/eval partition in place.
type MultiClass struct {
	x      [][]float64
	y      []int       // labels re-indexed to 0..k-1 by dense rank
	yFull  [][]float64 // one-hot rewards, fully observed
	clfB   classifier.Classifier
	alphaB float64
	name   string

	// split state; rebuilt wholesale by SplitTrainEval
	xTr     [][]float64
	yTr     []int
	xEv     [][]float64
	yEv     []int
	yFullEv [][]float64
	split   bool
}

// Option configures a MultiClass at construction.
type Option func(*MultiClass)

// WithDatasetName labels the dataset, for callers tracking several.
func WithDatasetName(name string) Option {
	return func(m *MultiClass) { m.name = name }
}

// NewMultiClass validates and normalizes a classification dataset. X is the
// feature matrix, y the class labels (any ints; they are re-indexed to
// 0..k-1 preserving numeric order). clfB is the behavior classifier and
// alphaB its mixing coefficient, which must lie in [0, 1) so the behavior
// policy keeps full support over actions.
func NewMultiClass(X [][]float64, y []int, clfB classifier.Classifier, alphaB float64, opts ...Option) (*MultiClass, error) {
	if clfB == nil {
		return nil, errors.Errorf("banditdata: behavior classifier must not be nil")
	}
	if alphaB < 0 || alphaB >= 1 {
		return nil, errors.Errorf("banditdata: behavior mixing coefficient must be in [0, 1), got %v", alphaB)
	}
	n := len(X)
	if n == 0 {
		return nil, errors.Errorf("banditdata: feature matrix is empty")
	}
	if len(y) != n {
		return nil, errors.Errorf("banditdata: %d feature rows but %d labels", n, len(y))
	}
	d := len(X[0])
	if d == 0 {
		return nil, errors.Errorf("banditdata: feature rows are empty")
	}
	for i, row := range X {
		if len(row) != d {
			return nil, errors.Errorf("banditdata: row %d has %d features, want %d", i, len(row), d)
		}
	}

	labels, k := denseRank(y)
	yFull := make([][]float64, n)
	for i, label := range labels {
		row := make([]float64, k)
		row[label] = 1
		yFull[i] = row
	}

	m := &MultiClass{
		x:      X,
		y:      labels,
		yFull:  yFull,
		clfB:   clfB,
		alphaB: alphaB,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// denseRank re-indexes labels to 0..k-1 by the numeric order of the
// distinct values, equal labels getting equal rank.
func denseRank(y []int) ([]int, int) {
	distinct := make([]int, 0, len(y))
	seen := make(map[int]bool, len(y))
	for _, v := range y {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Ints(distinct)
	rank := make(map[int]int, len(distinct))
	for i, v := range distinct {
		rank[v] = i
	}
	out := make([]int, len(y))
	for i, v := range y {
		out[i] = rank[v]
	}
	return out, len(distinct)
}

// NActions returns the number of actions (distinct classes).
func (m *MultiClass) NActions() int {
	seen := make(map[int]bool, len(m.y))
	for _, v := range m.y {
		seen[v] = true
	}
	return len(seen)
}

// NRounds returns the number of rounds in the full dataset.
func (m *MultiClass) NRounds() int {
	return len(m.y)
}

// NRoundsEval returns the evaluation set size, 0 before SplitTrainEval.
func (m *MultiClass) NRoundsEval() int {
	return len(m.yEv)
}

// LenList returns the recommendation list length, always 1 here.
func (m *MultiClass) LenList() int {
	return 1
}

// DatasetName returns the name set with WithDatasetName, if any.
func (m *MultiClass) DatasetName() string {
	return m.name
}
