package classifier

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

const (
	defaultLearningRate = 0.1
	defaultIterations   = 200
)

// LogisticRegression is a multinomial (softmax) regression classifier
// trained with full-batch gradient descent. Weights start at zero and the
// iteration count is fixed, so training is fully deterministic.
type LogisticRegression struct {
	// LearningRate is the gradient step size. Zero means 0.1.
	LearningRate float64
	// Iterations is the number of full-batch gradient steps. Zero means 200.
	Iterations int
	// L2 is the ridge penalty applied to the weights, not the biases.
	L2 float64

	weights  *mat.Dense // (classes, features)
	bias     []float64
	classes  int
	features int
}

// Fit trains the model on X and labels y in 0..k-1, where k is one more
// than the largest label seen.
func (l *LogisticRegression) Fit(X [][]float64, y []int) error {
	n, d, err := checkXY(X, y)
	if err != nil {
		return err
	}
	k := 0
	for _, label := range y {
		if label+1 > k {
			k = label + 1
		}
	}

	lr := l.LearningRate
	if lr == 0 {
		lr = defaultLearningRate
	}
	iters := l.Iterations
	if iters == 0 {
		iters = defaultIterations
	}

	flat := make([]float64, 0, n*d)
	for _, row := range X {
		flat = append(flat, row...)
	}
	xm := mat.NewDense(n, d, flat)

	w := mat.NewDense(k, d, nil)
	b := make([]float64, k)
	var resid, grad mat.Dense
	for it := 0; it < iters; it++ {
		// resid holds softmax probabilities minus the one-hot targets.
		resid.Mul(xm, w.T())
		for i := 0; i < n; i++ {
			row := resid.RawRowView(i)
			max := math.Inf(-1)
			for j := range row {
				row[j] += b[j]
				if row[j] > max {
					max = row[j]
				}
			}
			var sum float64
			for j := range row {
				row[j] = math.Exp(row[j] - max)
				sum += row[j]
			}
			for j := range row {
				row[j] /= sum
			}
			row[y[i]]--
		}
		grad.Mul(resid.T(), xm)
		for c := 0; c < k; c++ {
			var bsum float64
			for i := 0; i < n; i++ {
				bsum += resid.At(i, c)
			}
			b[c] -= lr * bsum / float64(n)
			gr := grad.RawRowView(c)
			wr := w.RawRowView(c)
			for j := range wr {
				wr[j] -= lr * (gr[j]/float64(n) + l.L2*wr[j])
			}
		}
	}

	l.weights = w
	l.bias = b
	l.classes = k
	l.features = d
	return nil
}

// Predict returns the highest-scoring class per row of X.
func (l *LogisticRegression) Predict(X [][]float64) ([]int, error) {
	if l.weights == nil {
		return nil, errors.Errorf("classifier: logistic regression used before Fit")
	}
	if err := checkPredictInput(X, l.features); err != nil {
		return nil, err
	}
	preds := make([]int, len(X))
	for i, row := range X {
		best, bestScore := 0, math.Inf(-1)
		for c := 0; c < l.classes; c++ {
			score := l.bias[c]
			wr := l.weights.RawRowView(c)
			for j, v := range row {
				score += v * wr[j]
			}
			if score > bestScore {
				best, bestScore = c, score
			}
		}
		preds[i] = best
	}
	return preds, nil
}

// Clone returns an unfitted copy with the same hyperparameters.
func (l *LogisticRegression) Clone() Classifier {
	return &LogisticRegression{
		LearningRate: l.LearningRate,
		Iterations:   l.Iterations,
		L2:           l.L2,
	}
}
