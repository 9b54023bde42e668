package banditdata

import (
	"golang.org/x/exp/rand"
)

// fourClusterData builds n rounds of 2-feature data in four well separated
// clusters, labeled by cluster. Jitter comes from a fixed seed so every run
// sees the same dataset.
func fourClusterData(n int) ([][]float64, []int) {
	centers := [][]float64{{0, 0}, {10, 0}, {0, 10}, {10, 10}}
	rng := rand.New(rand.NewSource(7))
	X := make([][]float64, n)
	y := make([]int, n)
	for i := range X {
		c := i % 4
		X[i] = []float64{
			centers[c][0] + rng.Float64(),
			centers[c][1] + rng.Float64(),
		}
		y[i] = c
	}
	return X, y
}

// fourClusterDataNoisy is fourClusterData with every tenth label rotated to
// the next class, so no classifier can be perfectly accurate.
func fourClusterDataNoisy(n int) ([][]float64, []int) {
	X, y := fourClusterData(n)
	for i := 0; i < n; i += 10 {
		y[i] = (y[i] + 1) % 4
	}
	return X, y
}
