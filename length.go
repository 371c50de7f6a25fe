package bezier

import (
	"math"

	"github.com/kestrelmath/bezier/quad"
)

// ComputeLength returns the arc length of the curve over [0,1] and a
// quadrature status code (quad.StatusConverged on success).
//
// For N=2 (a line segment) the length is the closed-form Euclidean
// distance between the two nodes. For N>=3 it is the adaptive
// Gauss-Kronrod integral of ||B'(s)|| over [0,1], to SqrtPrec absolute and
// relative tolerance within a 50-panel budget.
// Complexity: O(1) for N=2; O(panels*21) quadrature evaluations for N>=3.
func ComputeLength(nodes Nodes) (length float64, errCode int) {
	return LengthAt(nodes, 1)
}

// LengthAt returns the arc length of the curve over [0,s] (s in [0,1]),
// and a quadrature status code. It is the supplemental, partial-interval
// counterpart to ComputeLength, grounded on the same hodograph-norm
// integral restricted to [0,s].
// Complexity: O(1) for N=2; O(panels*21) quadrature evaluations for N>=3.
func LengthAt(nodes Nodes, s float64) (length float64, errCode int) {
	// Stage 1: degenerate (single point) and linear closed forms.
	if nodes.Degree() == 0 {
		return 0, quad.StatusConverged
	}

	if len(nodes) == 2 {
		full := euclideanNorm(subtract(nodes[1], nodes[0]))
		return full * s, quad.StatusConverged
	}

	// Stage 2: adaptive quadrature of the hodograph norm over [0,s].
	integrand := func(t float64) float64 {
		return euclideanNorm(EvaluateHodograph(nodes, t))
	}

	result, status := quad.Integrate(integrand, 0, s,
		quad.WithAbsTol(SqrtPrec),
		quad.WithRelTol(SqrtPrec),
		quad.WithMaxSubdivisions(50),
	)

	return math.Abs(result), status
}

func subtract(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}
