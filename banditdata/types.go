package banditdata

// BanditFeedback is logged bandit feedback generated from a multi-class
// classification dataset. Its field layout is the contract off-policy
// estimators consume.
type BanditFeedback struct {
	// NActions is the number of actions (distinct classes).
	NActions int
	// NRounds is the number of rounds, equal to the evaluation set size.
	NRounds int
	// Context holds the feature vectors of the evaluation rounds in order.
	Context [][]float64
	// Action holds the action sampled from the behavior policy per round.
	Action []int
	// Reward is 1 if the sampled action equals the round's true class, else 0.
	Reward []float64
	// Position is always nil: each round recommends a single action, so
	// there is no slate position to record.
	Position []int
	// Pscore holds the probability the behavior policy assigned to the
	// sampled action per round.
	Pscore []float64
}

// ActionDist holds a policy's action choice probabilities with axes
// (round, action, list position). The list axis always has length 1 in
// this reduction.
type ActionDist [][][]float64
