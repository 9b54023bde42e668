package banditdata

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/opelib/opelib/classifier"
)

// policyMatrix clones clf, fits the clone on the training set, predicts the
// evaluation rounds, and mixes the hard predictions with a uniform policy:
// every action gets (1-alpha)/k mass, the predicted action additionally
// gets alpha. Each row of the result sums to 1.
func (m *MultiClass) policyMatrix(clf classifier.Classifier, alpha float64) ([][]float64, error) {
	c := clf.Clone()
	if err := c.Fit(m.xTr, m.yTr); err != nil {
		return nil, errors.Wrapf(err, "banditdata: fitting base classifier")
	}
	preds, err := c.Predict(m.xEv)
	if err != nil {
		return nil, errors.Wrapf(err, "banditdata: predicting evaluation rounds")
	}

	k := m.NActions()
	uniform := (1 - alpha) / float64(k)
	pi := make([][]float64, len(m.xEv))
	for i := range pi {
		row := make([]float64, k)
		for j := range row {
			row[j] = uniform
		}
		p := preds[i]
		if p < 0 || p >= k {
			return nil, errors.Errorf("banditdata: classifier predicted label %d outside the %d-action space", p, k)
		}
		row[p] += alpha
		pi[i] = row
	}
	return pi, nil
}

// ObtainActionDistByEvalPolicy builds the action choice probabilities of an
// evaluation policy over the current evaluation set. clfE nil means a fresh
// clone of the behavior classifier. alphaE must be in [0, 1]; at 1 the
// policy deterministically follows the classifier's predictions.
func (m *MultiClass) ObtainActionDistByEvalPolicy(clfE classifier.Classifier, alphaE float64) (ActionDist, error) {
	if alphaE < 0 || alphaE > 1 {
		return nil, errors.Errorf("banditdata: evaluation mixing coefficient must be in [0, 1], got %v", alphaE)
	}
	if !m.split {
		return nil, ErrNotSplit
	}
	if clfE == nil {
		clfE = m.clfB
	}
	pi, err := m.policyMatrix(clfE, alphaE)
	if err != nil {
		return nil, err
	}
	dist := make(ActionDist, len(pi))
	for i, row := range pi {
		cells := make([][]float64, len(row))
		for j, p := range row {
			cells[j] = []float64{p}
		}
		dist[i] = cells
	}
	return dist, nil
}

// CalcGroundTruthPolicyValue computes the exact expected reward of the
// policy described by dist: the mean, over evaluation rounds, of the
// probability mass dist puts on each round's true class. Rewards are 0/1
// and fully observed, so no estimation is involved.
func (m *MultiClass) CalcGroundTruthPolicyValue(dist ActionDist) (float64, error) {
	if !m.split {
		return 0, ErrNotSplit
	}
	nEv, k := len(m.yEv), m.NActions()
	if len(dist) != nEv {
		return 0, errors.Errorf("banditdata: action distribution has %d rounds, evaluation set has %d", len(dist), nEv)
	}
	mass := make([]float64, nEv)
	for i, row := range dist {
		if len(row) != k {
			return 0, errors.Errorf("banditdata: action distribution round %d covers %d actions, want %d", i, len(row), k)
		}
		for j, cell := range row {
			if len(cell) != 1 {
				return 0, errors.Errorf("banditdata: action distribution entry (%d, %d) has list length %d, want 1", i, j, len(cell))
			}
		}
		mass[i] = row[m.yEv[i]][0]
	}
	return stat.Mean(mass, nil), nil
}
