// Package classifier defines the multi-class classification capability the
// bandit reduction consumes, along with two concrete deterministic models.
package classifier

// A Classifier is a multi-class model that can be trained on labeled feature
// vectors and then predict hard labels for new ones. Implementations must be
// deterministic: identical training data and inputs always produce identical
// predictions.
type Classifier interface {
	// Fit trains the model on feature matrix X and integer labels y.
	// Labels are expected in 0..k-1.
	Fit(X [][]float64, y []int) error
	// Predict returns one predicted label per row of X. Calling Predict
	// before Fit is an error.
	Predict(X [][]float64) ([]int, error)
	// Clone returns a fresh unfitted copy carrying the same hyperparameters.
	Clone() Classifier
}
