package bezier

import "gonum.org/v1/gonum/floats"

// NewtonRefine performs a single Newton iteration refining the parameter
// seed s toward the curve point closest to point: given Delta = point -
// B(s) and D = B'(s), it returns s + (Delta.D)/(D.D). It does not clamp the
// result into [0,1], and LocatePoint returns the refined value as-is.
// Complexity: O(N) time, O(D) extra space.
func NewtonRefine(nodes Nodes, point []float64, s float64) float64 {
	// 1) Evaluate the curve and its tangent at the seed parameter.
	b := EvaluateMulti(nodes, []float64{s})[0]
	delta := make([]float64, len(point))
	for c := range point {
		delta[c] = point[c] - b[c]
	}

	deriv := EvaluateHodograph(nodes, s)

	// 2) One Newton step along the tangent direction.
	return s + floats.Dot(delta, deriv)/floats.Dot(deriv, deriv)
}
