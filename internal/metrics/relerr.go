package metrics

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// RelativeError returns ||actual - truth||_2 / ||truth||_2.
//
// The slices must have equal length. A zero truth vector is not guarded
// and yields +Inf (or NaN when actual is zero too).
func RelativeError(actual, truth []float64) float64 {
	return floats.Distance(actual, truth, 2) / floats.Norm(truth, 2)
}

// RelativeErrorC is RelativeError for complex vectors.
func RelativeErrorC(actual, truth []complex128) float64 {
	if len(actual) != len(truth) {
		panic("metrics: slice lengths do not match")
	}
	var diff, norm float64
	for i, t := range truth {
		d := cmplx.Abs(actual[i] - t)
		diff += d * d
		m := cmplx.Abs(t)
		norm += m * m
	}
	return math.Sqrt(diff) / math.Sqrt(norm)
}

// RelativeErrorDense is RelativeError for matrices using the Frobenius norm.
func RelativeErrorDense(actual, truth mat.Matrix) float64 {
	var diff mat.Dense
	diff.Sub(actual, truth)
	return mat.Norm(&diff, 2) / mat.Norm(truth, 2)
}
