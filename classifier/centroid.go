package classifier

import (
	"math"

	"github.com/pkg/errors"
)

// NearestCentroid classifies by Euclidean distance to the per-class mean
// feature vector. Ties resolve to the lower class index.
type NearestCentroid struct {
	centroids [][]float64 // indexed by class; nil for classes absent at fit time
	features  int
}

// Fit computes one centroid per class seen in y.
func (n *NearestCentroid) Fit(X [][]float64, y []int) error {
	rows, d, err := checkXY(X, y)
	if err != nil {
		return err
	}
	k := 0
	for _, label := range y {
		if label+1 > k {
			k = label + 1
		}
	}
	sums := make([][]float64, k)
	counts := make([]int, k)
	for i := 0; i < rows; i++ {
		c := y[i]
		if sums[c] == nil {
			sums[c] = make([]float64, d)
		}
		for j, v := range X[i] {
			sums[c][j] += v
		}
		counts[c]++
	}
	for c := range sums {
		if sums[c] == nil {
			continue
		}
		for j := range sums[c] {
			sums[c][j] /= float64(counts[c])
		}
	}
	n.centroids = sums
	n.features = d
	return nil
}

// Predict returns the class of the nearest centroid per row of X.
func (n *NearestCentroid) Predict(X [][]float64) ([]int, error) {
	if n.centroids == nil {
		return nil, errors.Errorf("classifier: nearest centroid used before Fit")
	}
	if err := checkPredictInput(X, n.features); err != nil {
		return nil, err
	}
	preds := make([]int, len(X))
	for i, row := range X {
		best, bestDist := -1, math.Inf(1)
		for c, centroid := range n.centroids {
			if centroid == nil {
				continue
			}
			var dist float64
			for j, v := range row {
				diff := v - centroid[j]
				dist += diff * diff
			}
			if dist < bestDist {
				best, bestDist = c, dist
			}
		}
		preds[i] = best
	}
	return preds, nil
}

// Clone returns an unfitted copy.
func (n *NearestCentroid) Clone() Classifier {
	return &NearestCentroid{}
}
