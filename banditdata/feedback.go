package banditdata

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// ObtainBatchBanditFeedback generates logged bandit feedback under the
// behavior policy: the behavior classifier is cloned and fit on the
// training set, its predictions are mixed into a stochastic policy, and one
// action per evaluation round is drawn from that policy using seed. The
// factual reward is revealed from the fully observed labels and the
// behavior probability of the drawn action is recorded as the propensity
// score. Identical seed and split always reproduce identical feedback.
func (m *MultiClass) ObtainBatchBanditFeedback(seed uint64) (*BanditFeedback, error) {
	if !m.split {
		return nil, ErrNotSplit
	}
	piB, err := m.policyMatrix(m.clfB, m.alphaB)
	if err != nil {
		return nil, err
	}

	nEv := len(m.xEv)
	src := rand.NewSource(seed)
	action := make([]int, nEv)
	reward := make([]float64, nEv)
	pscore := make([]float64, nEv)
	for i, p := range piB {
		// A single draw per round; the without-replacement behavior of the
		// sampler is irrelevant at one Take.
		idx, ok := sampleuv.NewWeighted(p, src).Take()
		if !ok {
			return nil, errors.Errorf("banditdata: behavior policy row %d has no probability mass", i)
		}
		action[i] = idx
		reward[i] = m.yFullEv[i][idx]
		pscore[i] = p[idx]
	}

	return &BanditFeedback{
		NActions: m.NActions(),
		NRounds:  nEv,
		Context:  m.xEv,
		Action:   action,
		Reward:   reward,
		Position: nil,
		Pscore:   pscore,
	}, nil
}
