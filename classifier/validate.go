package classifier

import (
	"github.com/pkg/errors"
)

// checkXY validates that X is a non-empty rectangular matrix and that y has
// one label per row. It returns the number of rows and features.
func checkXY(X [][]float64, y []int) (n, d int, err error) {
	n = len(X)
	if n == 0 {
		return 0, 0, errors.Errorf("classifier: feature matrix is empty")
	}
	if len(y) != n {
		return 0, 0, errors.Errorf("classifier: %d feature rows but %d labels", n, len(y))
	}
	d = len(X[0])
	if d == 0 {
		return 0, 0, errors.Errorf("classifier: feature rows are empty")
	}
	for i, row := range X {
		if len(row) != d {
			return 0, 0, errors.Errorf("classifier: row %d has %d features, want %d", i, len(row), d)
		}
	}
	for i, label := range y {
		if label < 0 {
			return 0, 0, errors.Errorf("classifier: negative label %d at row %d", label, i)
		}
	}
	return n, d, nil
}

// checkPredictInput validates the feature matrix passed to Predict against
// the feature width seen during Fit.
func checkPredictInput(X [][]float64, features int) error {
	for i, row := range X {
		if len(row) != features {
			return errors.Errorf("classifier: row %d has %d features, model was fit on %d", i, len(row), features)
		}
	}
	return nil
}
